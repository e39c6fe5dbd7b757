package handlers

// AppHandlers groups the handlers wired at startup.
type AppHandlers struct {
	AuthHandler    *AuthHandler
	ProfileHandler *ProfileHandler
	PlanHandler    *PlanHandler
	OrderHandler   *OrderHandler
}
