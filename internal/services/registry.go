package services

// ServiceContainer groups the services wired at startup.
type ServiceContainer struct {
	AuthService    AuthService
	ProfileService ProfileService
	PlanService    PlanService
	OrderService   OrderService
}
