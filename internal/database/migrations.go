package database

import (
	"leasehold/internal/models"

	logger "github.com/Bparsons0904/goLogger"
	"gorm.io/gorm"
)

// Models lists every table owned by the service, parents before children.
var Models = []any{
	&models.Listing{},
	&models.Application{},
	&models.ApplicationNote{},
}

// extraIndexes covers the orderings the dashboard and lists rely on that the
// gorm tags do not express.
var extraIndexes = []string{
	"CREATE INDEX IF NOT EXISTS idx_listings_created_at ON listings(created_at DESC)",
	"CREATE INDEX IF NOT EXISTS idx_applications_created_at ON applications(created_at DESC)",
	"CREATE INDEX IF NOT EXISTS idx_application_notes_app_created ON application_notes(application_id, created_at DESC)",
}

func MigrateModels(db *gorm.DB) error {
	log := logger.New("database").Function("MigrateModels")
	log.Info("Starting database migration")

	if err := db.AutoMigrate(Models...); err != nil {
		return log.Err("failed to migrate models", err)
	}

	for _, indexSQL := range extraIndexes {
		if err := db.Exec(indexSQL).Error; err != nil {
			log.Warn("Failed to create index", "sql", indexSQL, "error", err)
		}
	}

	log.Info("Database migration completed successfully")
	return nil
}
