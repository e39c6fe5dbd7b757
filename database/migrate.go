package database

import (
	"tappyid_backend/internal/models"

	"gorm.io/gorm"
)

// AutoMigrate creates or updates the schema for every model. The handle is
// injected; this package holds no connection state of its own.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Profile{},
		&models.ProfileClickStat{},
		&models.Plan{},
		&models.Order{},
	)
}
