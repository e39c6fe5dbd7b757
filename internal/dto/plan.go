package dto

// PlanResponse is the raw plan projection.
type PlanResponse struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Price    float64  `json:"price"`
	IsActive bool     `json:"isActive"`
	Features []string `json:"features"`
}

// PlanPresentation is the checkout-page shape: localized prices, a derived
// 6-installment price, a popularity flag and a synthesized checkout URL.
type PlanPresentation struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Price            string   `json:"price"`
	InstallmentPrice string   `json:"installmentPrice"`
	Features         []string `json:"features"`
	Popular          bool     `json:"popular"`
	CheckoutURL      string   `json:"checkoutUrl"`
}
