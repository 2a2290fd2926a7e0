package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"trip-desk/internal/api"
	"trip-desk/internal/api/handlers"
	"trip-desk/internal/bootstrap"
	"trip-desk/internal/service"
	"trip-desk/pkg/auth"
	"trip-desk/pkg/config"
	"trip-desk/pkg/logger"
	"trip-desk/pkg/middleware"

	"go.uber.org/zap"
)

// @title Trip Desk API
// @version 1.0
// @description Operator API for editing trip recommendations.

// @BasePath /

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize global logger
	if err := logger.Init(cfg.Logger.Level); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	appLogger := logger.Get()
	appLogger.Info("Starting trip desk", zap.String("store", cfg.Store.Driver))

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	stores, err := bootstrap.Open(ctx, cfg, appLogger)
	cancel()
	if err != nil {
		appLogger.Fatal("Failed to open stores", zap.Error(err))
	}
	defer stores.Close()

	var jwtManager *auth.JWTManager
	if cfg.JWT.SecretKey != "" {
		jwtManager = auth.NewJWTManager(cfg.JWT.SecretKey, cfg.JWT.Expiration)
	} else {
		appLogger.Warn("JWT_SECRET_KEY not set, operator API is unauthenticated")
	}

	// Initialize services
	tripService := service.NewTripService(stores.Trips, logger.Named("trips"))
	recService := service.NewRecommendationService(stores.Trips, stores.Drafts, stores.Notifier, logger.Named("drafts"))

	// Initialize handlers
	tripHandler := handlers.NewTripHandler(tripService, appLogger)
	draftHandler := handlers.NewDraftHandler(recService, appLogger)

	saveLimiter := middleware.NewRateLimiter(cfg.Limits.SavesPerMinute, cfg.Limits.SaveBurst)

	app := api.SetupRouter(tripHandler, draftHandler, jwtManager, saveLimiter, appLogger)
	app.Server().ReadTimeout = cfg.Server.ReadTimeout
	app.Server().WriteTimeout = cfg.Server.WriteTimeout

	// Start server
	go func() {
		addr := ":" + cfg.Server.Port
		appLogger.Info("Server starting", zap.String("address", addr))
		if err := app.Listen(addr); err != nil {
			appLogger.Fatal("Server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		appLogger.Error("Server shutdown error", zap.Error(err))
	}
}
