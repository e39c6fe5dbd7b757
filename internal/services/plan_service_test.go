package services_test

import (
	"encoding/json"
	"testing"

	"tappyid_backend/internal/models"
	"tappyid_backend/internal/repositories"
	"tappyid_backend/internal/services"
	"tappyid_backend/internal/testutil"
	"tappyid_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func newPlanService() services.PlanService {
	return services.NewPlanService(repositories.NewPlanRepository())
}

func createPlan(t *testing.T, db *gorm.DB, name string, price float64, active bool, features ...string) *models.Plan {
	t.Helper()

	if features == nil {
		features = []string{}
	}
	featureJSON, err := json.Marshal(features)
	assert.NoError(t, err)

	plan := &models.Plan{
		Name:     name,
		Price:    price,
		IsActive: &active,
		Features: datatypes.JSON(featureJSON),
	}
	assert.NoError(t, db.Create(plan).Error)
	return plan
}

func TestFormatBRL(t *testing.T) {
	assert.Equal(t, "R$ 29,90", services.FormatBRL(29.90))
	assert.Equal(t, "R$ 0,00", services.FormatBRL(0))
	assert.Equal(t, "R$ 120,00", services.FormatBRL(120))
	assert.Equal(t, "R$ 19,99", services.FormatBRL(19.99))
}

func TestListPlans_ActiveOrderedByPrice(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := newPlanService()

	createPlan(t, db, "Ouro", 89.90, true, "tudo ilimitado")
	createPlan(t, db, "Bronze", 19.90, true, "1 cartão")
	createPlan(t, db, "Desativado", 9.90, false)

	plans, err := svc.ListPlans(db)
	assert.NoError(t, err)
	assert.Len(t, plans, 2)
	assert.Equal(t, "Bronze", plans[0].Name)
	assert.Equal(t, "Ouro", plans[1].Name)
	assert.Equal(t, []string{"1 cartão"}, plans[0].Features)
}

func TestCreatePlan_InactiveSurvivesCreate(t *testing.T) {
	db := testutil.NewTestDB(t)

	inactive := createPlan(t, db, "Desativado", 9.90, false)
	defaulted := &models.Plan{Name: "Sem Flag", Price: 5}
	assert.NoError(t, db.Create(defaulted).Error)

	var stored models.Plan
	assert.NoError(t, db.First(&stored, "id = ?", inactive.ID).Error)
	assert.NotNil(t, stored.IsActive)
	assert.False(t, *stored.IsActive)

	assert.NoError(t, db.First(&stored, "id = ?", defaulted.ID).Error)
	assert.NotNil(t, stored.IsActive)
	assert.True(t, *stored.IsActive)
}

func TestListPlanPresentation_Empty(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := newPlanService()

	_, err := svc.ListPlanPresentation(db)
	var appErr *apperrors.AppError
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.CodeNoPlansAvailable, appErr.Code)
	assert.Equal(t, 404, appErr.HTTPCode)
}

func TestListPlanPresentation_Shape(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := newPlanService()

	prata := createPlan(t, db, "Prata", 59.94, true, "até 3 cartões", "analytics")
	basico := createPlan(t, db, "Básico", 29.90, true)

	plans, err := svc.ListPlanPresentation(db)
	assert.NoError(t, err)
	assert.Len(t, plans, 2)

	// cheapest first
	assert.Equal(t, basico.ID, plans[0].ID)
	assert.Equal(t, "R$ 29,90", plans[0].Price)
	assert.False(t, plans[0].Popular)
	assert.Equal(t, "/checkout/"+basico.ID, plans[0].CheckoutURL)
	assert.Equal(t, []string{}, plans[0].Features)

	assert.Equal(t, prata.ID, plans[1].ID)
	assert.Equal(t, "R$ 59,94", plans[1].Price)
	assert.Equal(t, "R$ 9,99", plans[1].InstallmentPrice)
	assert.True(t, plans[1].Popular)
	assert.Equal(t, []string{"até 3 cartões", "analytics"}, plans[1].Features)
}

func TestListPlanPresentation_PopularMatching(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := newPlanService()

	createPlan(t, db, "PRATA Premium", 10, true)
	createPlan(t, db, "Plano Profissional", 20, true)
	createPlan(t, db, "Empresarial", 30, true)

	plans, err := svc.ListPlanPresentation(db)
	assert.NoError(t, err)
	assert.True(t, plans[0].Popular)
	assert.True(t, plans[1].Popular)
	assert.False(t, plans[2].Popular)
}
