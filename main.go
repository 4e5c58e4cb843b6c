// File: solarcare/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"solarcare/config"
	"solarcare/database"
	orderRepo "solarcare/database/repository/order"
	"solarcare/handlers"
	"solarcare/middleware"
	"solarcare/routes"
	"solarcare/services/auth"
	"solarcare/services/booking"
	"solarcare/services/catalog"
	"solarcare/services/session"
	"solarcare/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	defer logger.Sync() //nolint:errcheck

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	otpCache := utils.GetOTPCacheClient()

	// The order ledger mirror is optional; without it bookings live in memory only.
	var (
		ledger      booking.Ledger
		mongoClient *mongo.Client
	)
	if config.AppConfig.DatabaseURL != "" {
		client, err := database.Connect(config.AppConfig.DatabaseURL)
		if err != nil {
			logger.Fatal("main: failed to connect to MongoDB", zap.Error(err))
		}
		mongoClient = client
		repo := orderRepo.NewMongoOrderRepo(client.Database(config.AppConfig.DatabaseName))
		if err := repo.EnsureIndexes(context.Background()); err != nil {
			logger.Warn("main: failed to create order indexes", zap.Error(err))
		}
		ledger = repo
		logger.Info("Order ledger mirror enabled", zap.String("database", config.AppConfig.DatabaseName))
	}

	healthCtx, stopHealth := context.WithCancel(context.Background())
	defer stopHealth()
	utils.StartHealthMonitor(healthCtx, 60*time.Second, otpCache, mongoClient)

	// services.
	authService := auth.NewService(
		otpCache,
		config.AppConfig.JWTSecret,
		time.Duration(config.AppConfig.TokenTTLHours)*time.Hour,
		time.Duration(config.AppConfig.OTPTTLMinutes)*time.Minute,
		!config.IsProduction(),
		logger,
	)
	serviceCatalog := catalog.New(config.AppConfig.SlotDays)
	sessions := session.NewRegistry(ledger, logger)

	handlerBundle := handlers.NewHandlerBundle(authService, serviceCatalog, sessions, logger)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(handlers.RequestLogger(logger))
	router.Use(middleware.RateLimitMiddleware(config.AppConfig.MaxRequestsPerMin, logger))

	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Errorf("main: server forced to shutdown: %v", err)
	}
	if mongoClient != nil {
		if err := mongoClient.Disconnect(ctx); err != nil {
			logger.Warn("main: failed to disconnect MongoDB", zap.Error(err))
		}
	}
	_ = otpCache.Close()

	logger.Sugar().Info("main: server stopped gracefully")
}
