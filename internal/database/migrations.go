package database

import (
	"log"

	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/gorm"
)

func GetMigrator(db *gorm.DB) *gormigrate.Gormigrate {
	migrator := gormigrate.New(db, gormigrate.DefaultOptions, []*gormigrate.Migration{
		{
			ID: "0",
			Migrate: func(txn *gorm.DB) error {
				return txn.AutoMigrate(&DocumentChunk{})
			},
			Rollback: func(txn *gorm.DB) error {
				return txn.Migrator().DropTable(&DocumentChunk{})
			},
		},
	})

	migrator.InitSchema(func(txn *gorm.DB) error {
		// This is run by the migrator if no previous migration is detected.
		// It allows it to bypass running all the migrations sequentially and
		// just create the latest database state.
		log.Println("clean database detected, running full schema initialization")
		return txn.AutoMigrate(&DocumentChunk{})
	})

	return migrator
}
