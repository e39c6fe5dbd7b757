package app

import (
	"database/sql"
	"fmt"

	"tappyid_backend/database"
	"tappyid_backend/internal/auth"
	"tappyid_backend/internal/config"
	"tappyid_backend/internal/handlers"
	"tappyid_backend/internal/logger"
	"tappyid_backend/internal/metrics"
	"tappyid_backend/internal/middleware"
	"tappyid_backend/internal/repositories"
	"tappyid_backend/internal/routes"
	"tappyid_backend/internal/services"
	"tappyid_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...")
	gormDB, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		logger.Fatal("Failed to connect to GORM", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := database.AutoMigrate(gormDB); err != nil {
		logger.Fatal("Migration failed", "error", err)
	}

	if err := seedFirstAdmin(gormDB, cfg); err != nil {
		logger.Fatal("Failed to seed first admin user", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB, sqlDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("🚀 Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// SetupRouter assembles the full gin engine. Tests drive it directly via
// httptest with a database of their own.
func SetupRouter(cfg *config.Config, gormDB *gorm.DB, sqlDB *sql.DB) *gin.Engine {
	metrics.Register()

	tokens := auth.NewJWTService(cfg.JWT.Secret, cfg.JWT.TTL)

	serviceContainer := initializeServices(tokens)
	appHandlers := initializeHandlers(serviceContainer, tokens)

	if cfg.Server.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(metrics.Middleware())
	router.Use(middleware.DBMiddleware(gormDB))
	router.Use(middleware.AuthGate(tokens, middleware.GateConfig{
		ProtectedPrefixes: cfg.AuthGate.ProtectedPrefixes,
		LoginPath:         cfg.AuthGate.LoginPath,
		OnError:           cfg.AuthGate.OnError,
	}))

	routes.RegisterRoutes(router, appHandlers, tokens, sqlDB)

	return router
}

func initializeServices(tokens *auth.JWTService) *services.ServiceContainer {
	userRepo := repositories.NewUserRepository()
	profileRepo := repositories.NewProfileRepository()
	planRepo := repositories.NewPlanRepository()
	orderRepo := repositories.NewOrderRepository()

	return &services.ServiceContainer{
		AuthService:    services.NewAuthService(userRepo, tokens),
		ProfileService: services.NewProfileService(profileRepo),
		PlanService:    services.NewPlanService(planRepo),
		OrderService:   services.NewOrderService(orderRepo),
	}
}

func initializeHandlers(container *services.ServiceContainer, tokens *auth.JWTService) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	return &handlers.AppHandlers{
		AuthHandler:    handlers.NewAuthHandler(baseHandler, container.AuthService, tokens),
		ProfileHandler: handlers.NewProfileHandler(baseHandler, container.ProfileService),
		PlanHandler:    handlers.NewPlanHandler(baseHandler, container.PlanService),
		OrderHandler:   handlers.NewOrderHandler(baseHandler, container.OrderService),
	}
}
