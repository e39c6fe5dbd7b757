package services

import (
	"tappyid_backend/internal/dto"
	"tappyid_backend/internal/models"
	"tappyid_backend/internal/repositories"
	"tappyid_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// At most this many rows in the back-office listing.
const orderReportLimit = 100

var paymentMethodLabels = map[models.PaymentMethod]string{
	models.PaymentMethodCartaoCredito: "Cartão de Crédito",
	models.PaymentMethodBoleto:        "Boleto",
	models.PaymentMethodPix:           "PIX",
	models.PaymentMethodTransferencia: "Transferência Bancária",
}

const paymentMethodUnknown = "Não especificado"

type OrderService interface {
	RecentOrders(db *gorm.DB) ([]dto.OrderReportEntry, error)
}

type OrderServiceImpl struct {
	orderRepo repositories.OrderRepository
}

func NewOrderService(orderRepo repositories.OrderRepository) OrderService {
	return &OrderServiceImpl{orderRepo: orderRepo}
}

func (s *OrderServiceImpl) RecentOrders(db *gorm.DB) ([]dto.OrderReportEntry, error) {
	rows, err := s.orderRepo.RecentOrders(db, orderReportLimit)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	out := make([]dto.OrderReportEntry, 0, len(rows))
	for _, row := range rows {
		out = append(out, dto.OrderReportEntry{
			ID:            row.ID,
			CustomerName:  row.CustomerName,
			CustomerEmail: row.CustomerEmail,
			PlanName:      row.PlanName,
			Amount:        row.Amount,
			PaymentMethod: PaymentMethodLabel(models.PaymentMethod(row.PaymentMethod)),
			PaymentStatus: row.PaymentStatus,
			CreatedAt:     row.CreatedAt,
		})
	}
	return out, nil
}

// PaymentMethodLabel maps a payment method code to its display string.
func PaymentMethodLabel(method models.PaymentMethod) string {
	if label, ok := paymentMethodLabels[method]; ok {
		return label
	}
	return paymentMethodUnknown
}
