package services

import (
	"tappyid_backend/internal/logger"
	"tappyid_backend/internal/metrics"
	"tappyid_backend/internal/repositories"
	"tappyid_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type ProfileService interface {
	RegisterView(db *gorm.DB, userID string) error
	// RegisterClick bumps the aggregate click counter; when clickType is
	// non-empty the per-type tally is updated as well.
	RegisterClick(db *gorm.DB, userID, clickType string) error
	RegisterShare(db *gorm.DB, userID string) error
}

type ProfileServiceImpl struct {
	profileRepo repositories.ProfileRepository
}

func NewProfileService(profileRepo repositories.ProfileRepository) ProfileService {
	return &ProfileServiceImpl{profileRepo: profileRepo}
}

func (s *ProfileServiceImpl) RegisterView(db *gorm.DB, userID string) error {
	return s.increment(db, userID, repositories.CounterViews, "view")
}

func (s *ProfileServiceImpl) RegisterShare(db *gorm.DB, userID string) error {
	return s.increment(db, userID, repositories.CounterShares, "share")
}

func (s *ProfileServiceImpl) RegisterClick(db *gorm.DB, userID, clickType string) error {
	if err := s.increment(db, userID, repositories.CounterClicks, "click"); err != nil {
		return err
	}

	if clickType == "" {
		return nil
	}

	// The aggregate counter is the number that matters; a failed breakdown
	// update must not fail the request.
	profile, err := s.profileRepo.FindByUserID(db, userID)
	if err != nil {
		logger.Warn("click type tally skipped", "user_id", userID, "error", err.Error())
		return nil
	}
	if err := s.profileRepo.RecordClickType(db, profile.ID, clickType); err != nil {
		logger.Warn("click type tally failed", "user_id", userID, "type", clickType, "error", err.Error())
	}
	return nil
}

func (s *ProfileServiceImpl) increment(db *gorm.DB, userID string, field repositories.CounterField, kind string) error {
	if err := s.profileRepo.IncrementCounter(db, userID, field); err != nil {
		if apperrors.Is(err, repositories.ErrProfileNotFound) {
			return apperrors.ErrProfileNotFound
		}
		return apperrors.InternalError(err)
	}
	metrics.ProfileEngagementTotal.WithLabelValues(kind).Inc()
	return nil
}
