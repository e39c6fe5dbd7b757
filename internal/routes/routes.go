package routes

import (
	"database/sql"
	"net/http"

	"tappyid_backend/internal/auth"
	"tappyid_backend/internal/handlers"
	"tappyid_backend/internal/metrics"
	"tappyid_backend/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers every HTTP route on the engine.
func RegisterRoutes(
	router *gin.Engine,
	appHandlers *handlers.AppHandlers,
	tokens *auth.JWTService,
	sqlDB *sql.DB,
) {
	api := router.Group("/api")
	{
		appHandlers.AuthHandler.RegisterRoutes(api)
		appHandlers.ProfileHandler.RegisterRoutes(api)
		appHandlers.PlanHandler.RegisterRoutes(api)
		appHandlers.OrderHandler.RegisterRoutes(api, middleware.SessionMiddleware(tokens))

		api.GET("/health", healthHandler(sqlDB))
	}

	router.GET("/metrics", metrics.Handler())
}

func healthHandler(sqlDB *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if sqlDB != nil {
			if err := sqlDB.PingContext(c.Request.Context()); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "error": err.Error()})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
