package database

import (
	"log"

	"gorm.io/gorm"

	"github.com/kinlog/backend/internal/models"
)

// RunMigrations brings the schema up to date. GORM auto-migration covers the
// small schema this service has; SQLite (used by tests) and Postgres both go
// through the same path.
func RunMigrations(db *gorm.DB) error {
	log.Printf("Running auto-migration (%s)", db.Dialector.Name())
	return db.AutoMigrate(
		&models.User{},
		&models.UserProfile{},
		&models.MealLog{},
	)
}
