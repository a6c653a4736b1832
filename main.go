package main

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/wayfarer-app/wayfarer-backend/config"
	"github.com/wayfarer-app/wayfarer-backend/db"
	"github.com/wayfarer-app/wayfarer-backend/handlers"
	"github.com/wayfarer-app/wayfarer-backend/logger"
	tripmodel "github.com/wayfarer-app/wayfarer-backend/models/trip"
	usermodel "github.com/wayfarer-app/wayfarer-backend/models/user"
	"github.com/wayfarer-app/wayfarer-backend/router"
	"github.com/wayfarer-app/wayfarer-backend/services"
	"github.com/wayfarer-app/wayfarer-backend/store/postgres"
)

func main() {
	logger.InitLogger()
	log := logger.GetLogger()
	defer func() {
		_ = logger.Close()
	}()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Database
	dbURL := cfg.Database.URL()
	log.Infow("Connecting to database", "url", logger.MaskConnectionString(dbURL))

	poolConfig, err := pgxpool.ParseConfig(dbURL)
	if err != nil {
		log.Fatalf("Failed to parse database config: %v", err)
	}
	poolConfig.MaxConns = int32(cfg.Database.MaxOpenConns)
	poolConfig.MinConns = int32(cfg.Database.MinIdleConns)

	pool, err := pgxpool.NewWithConfig(context.Background(), poolConfig)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	if err := db.RunMigrations(dbURL); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Redis backs the auth rate limiter; the API runs without it.
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Address,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		log.Warnw("Redis unavailable, auth rate limiting disabled", "error", err)
		redisClient = nil
	}

	// Stores and models
	tripStore := postgres.NewTripStore(pool)
	userStore := postgres.NewUserStore(pool)

	tripModel := tripmodel.NewModel(tripStore)
	userModel := usermodel.NewModel(
		userStore,
		cfg.Server.JwtSecretKey,
		time.Duration(cfg.Server.TokenExpiryHours)*time.Hour,
	)

	// Handlers
	healthService := services.NewHealthService(pool, redisClient, cfg.Server.Version)
	deps := router.Dependencies{
		Config:        cfg,
		RedisClient:   redisClient,
		TripHandler:   handlers.NewTripHandler(tripModel),
		AuthHandler:   handlers.NewAuthHandler(userModel),
		HealthHandler: handlers.NewHealthHandler(healthService),
		Logger:        log,
	}

	r := router.SetupRouter(deps)

	log.Infof("Starting server on port %s", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
