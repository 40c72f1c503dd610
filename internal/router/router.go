package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kinlog/backend/internal/api"
	"github.com/kinlog/backend/internal/database"
	"github.com/kinlog/backend/internal/middleware"
)

// Handlers collects the API handlers wired into the router.
type Handlers struct {
	Auth    *api.AuthHandler
	Profile *api.ProfileHandler
	MealLog *api.MealLogHandler
	Image   *api.ImageHandler
}

// SetupRouter configures the application routes
func SetupRouter(h Handlers, validator middleware.TokenValidator, healthDB *database.DB) *gin.Engine {
	router := gin.Default()

	// CORS middleware
	router.Use(middleware.CORS())

	router.GET("/health", func(c *gin.Context) {
		if healthDB != nil {
			if err := healthDB.HealthCheck(c.Request.Context()); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy", "error": err.Error()})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")

	// Auth routes are public
	h.Auth.RegisterRoutes(v1)

	// Protected routes
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(validator))
	{
		h.Profile.RegisterRoutes(protected)
		h.MealLog.RegisterRoutes(protected)
		h.Image.RegisterRoutes(protected)
	}

	return router
}
