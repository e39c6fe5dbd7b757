package app

import (
	"errors"

	"tappyid_backend/internal/auth"
	"tappyid_backend/internal/config"
	"tappyid_backend/internal/logger"
	"tappyid_backend/internal/models"

	"gorm.io/gorm"
)

// seedFirstAdmin creates the back-office admin account on first boot when
// configured. Plans and orders are seeded externally.
func seedFirstAdmin(db *gorm.DB, cfg *config.Config) error {
	if cfg.Admin.Email == "" || cfg.Admin.Password == "" {
		logger.Info("Admin seed skipped: no admin credentials configured")
		return nil
	}

	var existing models.User
	err := db.Where("email = ?", cfg.Admin.Email).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := auth.HashPassword(cfg.Admin.Password)
	if err != nil {
		return err
	}

	name := cfg.Admin.Name
	if name == "" {
		name = "Administrador"
	}

	admin := &models.User{
		Email:        cfg.Admin.Email,
		PasswordHash: hash,
		Role:         models.UserRoleAdmin,
		Profile: &models.Profile{
			Name: name,
		},
	}

	if err := db.Create(admin).Error; err != nil {
		return err
	}

	logger.Info("First admin user seeded", "email", cfg.Admin.Email)
	return nil
}
