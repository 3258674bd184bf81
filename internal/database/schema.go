package database

import (
	"time"

	"gorm.io/datatypes"
)

// Chunk document types, stored in metadata so retrieval results can report
// where a passage came from.
const (
	DocTypePolicy      = "policy"
	DocTypeEmployee    = "employee"
	DocTypeCoordinator = "project_coordinator"
	DocTypeManagement  = "management"
)

// DocumentChunk is one embedded span of the HR corpus. The embedding vector
// is stored as a JSON array; the full index is loaded into memory for
// similarity search, so no vector-native column type is needed.
type DocumentChunk struct {
	ID        uint   `gorm:"primaryKey"`
	Text      string `gorm:"not null"`
	Source    string `gorm:"index"`
	DocType   string `gorm:"size:30;index"`
	Team      string `gorm:"size:30"`
	Embedding datatypes.JSON
	CreatedAt time.Time
}
