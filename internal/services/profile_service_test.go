package services_test

import (
	"sync"
	"testing"

	"tappyid_backend/internal/models"
	"tappyid_backend/internal/repositories"
	"tappyid_backend/internal/services"
	"tappyid_backend/internal/testutil"
	"tappyid_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func newProfileService() services.ProfileService {
	return services.NewProfileService(repositories.NewProfileRepository())
}

func createProfile(t *testing.T, db *gorm.DB) *models.Profile {
	t.Helper()

	user := &models.User{
		Email:        "card@example.com",
		PasswordHash: "irrelevante",
		Role:         models.UserRoleAssinante,
		Profile:      &models.Profile{Name: "Card Owner"},
	}
	assert.NoError(t, db.Create(user).Error)
	return user.Profile
}

func reloadProfile(t *testing.T, db *gorm.DB, id string) *models.Profile {
	t.Helper()
	var profile models.Profile
	assert.NoError(t, db.First(&profile, "id = ?", id).Error)
	return &profile
}

func TestCounters_SequentialIncrements(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := newProfileService()
	profile := createProfile(t, db)

	const n = 7
	for i := 0; i < n; i++ {
		assert.NoError(t, svc.RegisterView(db, profile.UserID))
	}
	for i := 0; i < n; i++ {
		assert.NoError(t, svc.RegisterClick(db, profile.UserID, ""))
	}
	for i := 0; i < n; i++ {
		assert.NoError(t, svc.RegisterShare(db, profile.UserID))
	}

	stored := reloadProfile(t, db, profile.ID)
	assert.EqualValues(t, n, stored.Views)
	assert.EqualValues(t, n, stored.Clicks)
	assert.EqualValues(t, n, stored.Shares)
}

func TestCounters_FirstIncrementFromNull(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := newProfileService()
	profile := createProfile(t, db)

	// Simulate a legacy row where the counter was never initialized.
	assert.NoError(t, db.Exec("UPDATE profiles SET views = NULL WHERE id = ?", profile.ID).Error)

	assert.NoError(t, svc.RegisterView(db, profile.UserID))

	stored := reloadProfile(t, db, profile.ID)
	assert.EqualValues(t, 1, stored.Views)
}

func TestCounters_ProfileNotFound(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := newProfileService()

	for _, fn := range []func() error{
		func() error { return svc.RegisterView(db, "missing-user") },
		func() error { return svc.RegisterClick(db, "missing-user", "whatsapp") },
		func() error { return svc.RegisterShare(db, "missing-user") },
	} {
		err := fn()
		var appErr *apperrors.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperrors.CodeProfileNotFound, appErr.Code)
		assert.Equal(t, 404, appErr.HTTPCode)
	}
}

// Firing K concurrent increments at the same profile must land exactly K:
// the increment is a single server-side UPDATE, not read-modify-write.
func TestCounters_ConcurrentIncrements(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := newProfileService()
	profile := createProfile(t, db)

	const k = 32
	var wg sync.WaitGroup
	errs := make(chan error, k)

	for i := 0; i < k; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- svc.RegisterView(db, profile.UserID)
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		assert.NoError(t, err)
	}

	stored := reloadProfile(t, db, profile.ID)
	assert.EqualValues(t, k, stored.Views)
}

func TestClick_TypeBreakdown(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := newProfileService()
	profile := createProfile(t, db)

	assert.NoError(t, svc.RegisterClick(db, profile.UserID, "whatsapp"))
	assert.NoError(t, svc.RegisterClick(db, profile.UserID, "whatsapp"))
	assert.NoError(t, svc.RegisterClick(db, profile.UserID, "instagram"))
	assert.NoError(t, svc.RegisterClick(db, profile.UserID, ""))

	stored := reloadProfile(t, db, profile.ID)
	assert.EqualValues(t, 4, stored.Clicks)

	var stats []models.ProfileClickStat
	assert.NoError(t, db.Where("profile_id = ?", profile.ID).Order("click_type ASC").Find(&stats).Error)
	assert.Len(t, stats, 2)
	assert.Equal(t, "instagram", stats[0].ClickType)
	assert.EqualValues(t, 1, stats[0].Count)
	assert.Equal(t, "whatsapp", stats[1].ClickType)
	assert.EqualValues(t, 2, stats[1].Count)
}
