package database

import (
	"fmt"
	"os"
	"path/filepath"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open creates (if needed) and migrates the SQLite chunk index at the given
// path. The index directory doubles as the marker for whether ingestion has
// already run.
func Open(path string) (*gorm.DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		return nil, fmt.Errorf("could not create database directory: %w", err)
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("could not open database: %w", err)
	}

	if err := GetMigrator(db).Migrate(); err != nil {
		return nil, fmt.Errorf("could not migrate database: %w", err)
	}

	return db, nil
}

// OpenInMemory is used by tests.
func OpenInMemory() (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("could not open in-memory database: %w", err)
	}

	if err := GetMigrator(db).Migrate(); err != nil {
		return nil, fmt.Errorf("could not migrate database: %w", err)
	}

	return db, nil
}
