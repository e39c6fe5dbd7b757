package models

// Order records a purchase linking a user to a plan. Orders are written by
// the checkout integration; this application only reports on them.
type Order struct {
	BaseModel
	UserID        string        `gorm:"type:uuid;not null;index" json:"userId"`
	PlanID        string        `gorm:"type:uuid;not null;index" json:"planId"`
	Amount        float64       `gorm:"not null" json:"amount"`
	PaymentMethod PaymentMethod `gorm:"type:varchar(30)" json:"paymentMethod"`
	PaymentStatus PaymentStatus `gorm:"type:varchar(20);default:'PENDENTE'" json:"paymentStatus"`

	// Relations
	User User `gorm:"foreignKey:UserID" json:"-"`
	Plan Plan `gorm:"foreignKey:PlanID" json:"-"`
}
