package repositories

import (
	"errors"
	"fmt"

	"tappyid_backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrProfileNotFound = errors.New("profile not found")

// CounterField is the closed set of profile counter columns. Using a
// dedicated type keeps handler input away from SQL identifiers.
type CounterField string

const (
	CounterViews  CounterField = "views"
	CounterClicks CounterField = "clicks"
	CounterShares CounterField = "shares"
)

type ProfileRepository interface {
	FindByUserID(db *gorm.DB, userID string) (*models.Profile, error)
	// IncrementCounter bumps one counter in a single server-side UPDATE.
	// Two concurrent increments on the same profile both land.
	IncrementCounter(db *gorm.DB, userID string, field CounterField) error
	// RecordClickType upserts the per-type click tally.
	RecordClickType(db *gorm.DB, profileID, clickType string) error
}

type ProfileRepositoryImpl struct{}

func NewProfileRepository() ProfileRepository {
	return &ProfileRepositoryImpl{}
}

func (r *ProfileRepositoryImpl) FindByUserID(db *gorm.DB, userID string) (*models.Profile, error) {
	var profile models.Profile
	err := db.First(&profile, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepositoryImpl) IncrementCounter(db *gorm.DB, userID string, field CounterField) error {
	column := string(field)
	res := db.Model(&models.Profile{}).
		Where("user_id = ?", userID).
		UpdateColumn(column, gorm.Expr(fmt.Sprintf("COALESCE(%s, 0) + 1", column)))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrProfileNotFound
	}
	return nil
}

func (r *ProfileRepositoryImpl) RecordClickType(db *gorm.DB, profileID, clickType string) error {
	stat := models.ProfileClickStat{
		ProfileID: profileID,
		ClickType: clickType,
		Count:     1,
	}
	return db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "profile_id"}, {Name: "click_type"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"count": gorm.Expr("profile_click_stats.count + 1"),
		}),
	}).Create(&stat).Error
}
