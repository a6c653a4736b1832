// Package router assembles the gin engine: global middleware, health and
// metrics endpoints, and the versioned API surface.
package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/wayfarer-app/wayfarer-backend/config"
	"github.com/wayfarer-app/wayfarer-backend/handlers"
	"github.com/wayfarer-app/wayfarer-backend/middleware"
)

// Dependencies holds everything SetupRouter needs to wire the routes.
type Dependencies struct {
	Config        *config.Config
	RedisClient   *redis.Client
	TripHandler   *handlers.TripHandler
	AuthHandler   *handlers.AuthHandler
	HealthHandler *handlers.HealthHandler
	Logger        *zap.SugaredLogger
}

// SetupRouter configures and returns the main gin engine with all routes
// defined.
func SetupRouter(deps Dependencies) *gin.Engine {
	r := gin.Default()

	// Global middleware
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.CORSMiddleware(&deps.Config.Server))

	// Health and metrics (no auth)
	r.GET("/health", deps.HealthHandler.DetailedHealth)
	r.GET("/health/liveness", deps.HealthHandler.LivenessCheck)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	{
		// Auth routes: public, but rate-limited against brute force.
		authRoutes := api.Group("/auth")
		if deps.RedisClient != nil {
			authRoutes.Use(middleware.AuthRateLimiter(
				deps.RedisClient,
				deps.Config.RateLimit.AuthRequestsPerMinute,
				time.Duration(deps.Config.RateLimit.WindowSeconds)*time.Second,
			))
		}
		{
			authRoutes.POST("/register", deps.AuthHandler.RegisterHandler)
			authRoutes.POST("/login", deps.AuthHandler.LoginHandler)
		}

		// Trip routes: every one of them requires a resolved identity.
		tripRoutes := api.Group("/trips")
		tripRoutes.Use(middleware.AuthMiddleware(&deps.Config.Server))
		{
			tripRoutes.GET("", deps.TripHandler.ListTripsHandler)
			tripRoutes.POST("", deps.TripHandler.CreateTripHandler)
			tripRoutes.GET("/:id", deps.TripHandler.GetTripHandler)
			tripRoutes.PATCH("/:id", deps.TripHandler.UpdateTripHandler)
			tripRoutes.DELETE("/:id", deps.TripHandler.DeleteTripHandler)
		}
	}

	return r
}
