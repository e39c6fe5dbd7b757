package repositories

import (
	"tappyid_backend/internal/models"

	"gorm.io/gorm"
)

type PlanRepository interface {
	// FindActive returns active plans ordered by ascending price.
	FindActive(db *gorm.DB) ([]models.Plan, error)
}

type PlanRepositoryImpl struct{}

func NewPlanRepository() PlanRepository {
	return &PlanRepositoryImpl{}
}

func (r *PlanRepositoryImpl) FindActive(db *gorm.DB) ([]models.Plan, error) {
	var plans []models.Plan
	err := db.Where("is_active = ?", true).Order("price ASC").Find(&plans).Error
	if err != nil {
		return nil, err
	}
	return plans, nil
}
