package repositories

import (
	"time"

	"gorm.io/gorm"
)

// OrderReportRow is the raw join row for the sales report.
type OrderReportRow struct {
	ID            string
	Amount        float64
	PaymentMethod string
	PaymentStatus string
	CreatedAt     time.Time
	CustomerEmail string
	CustomerName  string
	PlanName      string
}

type OrderRepository interface {
	// RecentOrders joins orders with users, plans and profiles, newest
	// first, capped at limit rows.
	RecentOrders(db *gorm.DB, limit int) ([]OrderReportRow, error)
}

type OrderRepositoryImpl struct{}

func NewOrderRepository() OrderRepository {
	return &OrderRepositoryImpl{}
}

func (r *OrderRepositoryImpl) RecentOrders(db *gorm.DB, limit int) ([]OrderReportRow, error) {
	query := `
		SELECT o.id,
		       o.amount,
		       o.payment_method,
		       o.payment_status,
		       o.created_at,
		       u.email            AS customer_email,
		       COALESCE(p.name, '') AS customer_name,
		       pl.name            AS plan_name
		FROM orders o
		JOIN users u  ON u.id  = o.user_id
		JOIN plans pl ON pl.id = o.plan_id
		LEFT JOIN profiles p ON p.user_id = u.id
		ORDER BY o.created_at DESC
		LIMIT ?
	`

	var rows []OrderReportRow
	if err := db.Raw(query, limit).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
