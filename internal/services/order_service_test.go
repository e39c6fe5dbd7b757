package services_test

import (
	"testing"
	"time"

	"tappyid_backend/internal/models"
	"tappyid_backend/internal/repositories"
	"tappyid_backend/internal/services"
	"tappyid_backend/internal/testutil"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func newOrderService() services.OrderService {
	return services.NewOrderService(repositories.NewOrderRepository())
}

func createOrder(t *testing.T, db *gorm.DB, user *models.User, plan *models.Plan, method models.PaymentMethod, createdAt time.Time) *models.Order {
	t.Helper()

	order := &models.Order{
		UserID:        user.ID,
		PlanID:        plan.ID,
		Amount:        plan.Price,
		PaymentMethod: method,
		PaymentStatus: models.PaymentStatusPaid,
	}
	order.CreatedAt = createdAt
	assert.NoError(t, db.Create(order).Error)
	return order
}

func TestPaymentMethodLabel(t *testing.T) {
	assert.Equal(t, "Cartão de Crédito", services.PaymentMethodLabel(models.PaymentMethodCartaoCredito))
	assert.Equal(t, "Boleto", services.PaymentMethodLabel(models.PaymentMethodBoleto))
	assert.Equal(t, "PIX", services.PaymentMethodLabel(models.PaymentMethodPix))
	assert.Equal(t, "Transferência Bancária", services.PaymentMethodLabel(models.PaymentMethodTransferencia))
	assert.Equal(t, "Não especificado", services.PaymentMethodLabel(""))
	assert.Equal(t, "Não especificado", services.PaymentMethodLabel("DINHEIRO"))
}

func TestRecentOrders_JoinAndOrdering(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := newOrderService()

	user := &models.User{
		Email:        "cliente@example.com",
		PasswordHash: "irrelevante",
		Role:         models.UserRoleAssinante,
		Profile:      &models.Profile{Name: "Cliente Um"},
	}
	assert.NoError(t, db.Create(user).Error)

	plan := &models.Plan{Name: "Prata", Price: 59.90}
	assert.NoError(t, db.Create(plan).Error)

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	older := createOrder(t, db, user, plan, models.PaymentMethodBoleto, base)
	newer := createOrder(t, db, user, plan, models.PaymentMethodPix, base.Add(time.Hour))

	orders, err := svc.RecentOrders(db)
	assert.NoError(t, err)
	assert.Len(t, orders, 2)

	// newest first
	assert.Equal(t, newer.ID, orders[0].ID)
	assert.Equal(t, older.ID, orders[1].ID)

	assert.Equal(t, "Cliente Um", orders[0].CustomerName)
	assert.Equal(t, "cliente@example.com", orders[0].CustomerEmail)
	assert.Equal(t, "Prata", orders[0].PlanName)
	assert.InDelta(t, 59.90, orders[0].Amount, 0.0001)
	assert.Equal(t, "PIX", orders[0].PaymentMethod)
	assert.Equal(t, "Boleto", orders[1].PaymentMethod)
}

func TestRecentOrders_MissingProfileName(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := newOrderService()

	user := &models.User{
		Email:        "semnome@example.com",
		PasswordHash: "irrelevante",
		Role:         models.UserRoleAssinante,
	}
	assert.NoError(t, db.Create(user).Error)

	plan := &models.Plan{Name: "Básico", Price: 19.90}
	assert.NoError(t, db.Create(plan).Error)

	createOrder(t, db, user, plan, models.PaymentMethodCartaoCredito, time.Now())

	orders, err := svc.RecentOrders(db)
	assert.NoError(t, err)
	assert.Len(t, orders, 1)
	assert.Equal(t, "", orders[0].CustomerName)
}
