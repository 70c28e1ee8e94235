package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gtm-crm-backend/internal/api/routes"
	"gtm-crm-backend/internal/config"
	"gtm-crm-backend/internal/database"
	"gtm-crm-backend/internal/logger"
	"gtm-crm-backend/internal/notify"

	"github.com/avast/retry-go/v4"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	_ "gtm-crm-backend/docs" // This is needed for swag
)

//	@title			GTM CRM Backend API
//	@version		1.0
//	@description	Backend API for the GTM CRM: companies, contacts, leads, deals, lists and create forms.

//	@contact.name	API Support
//	@contact.email	support@example.com

//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT

//	@host		localhost:7008
//	@BasePath	/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Type "Bearer" followed by a space and JWT token.

const shutdownTimeout = 15 * time.Second

func main() {
	// Load environment variables from .env file in development
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	// Initialize configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Set up logging
	logger.Setup(cfg.LogLevel, cfg.LogFile)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize database
	db, err := connectDatabase(ctx, cfg.DatabaseURL)
	if err != nil {
		logrus.Fatal("Failed to initialize database: ", err)
	}

	// Notifications go to a Redis stream when configured, otherwise to the log
	redisClient, notifier := setupNotifier(ctx, cfg)
	if redisClient != nil {
		defer redisClient.Close()
	}

	// Set Gin mode
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize router
	router, err := routes.SetupRoutes(db, cfg, redisClient, notifier)
	if err != nil {
		logrus.Fatal("Failed to set up routes: ", err)
	}

	// Start server
	port := cfg.Port
	if port == "" {
		port = "7008"
	}
	server := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logrus.Infof("Starting server on port %s", port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatal("Failed to start server: ", err)
		}
	}()

	<-ctx.Done()
	logrus.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logrus.Error("Server shutdown failed: ", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

// connectDatabase retries the initial connection so the server can start alongside Postgres
func connectDatabase(ctx context.Context, dsn string) (*gorm.DB, error) {
	var db *gorm.DB
	err := retry.Do(
		func() error {
			var err error
			db, err = database.Initialize(dsn, nil)
			return err
		},
		retry.Context(ctx),
		retry.Attempts(10),
		retry.Delay(time.Second),
		retry.DelayType(retry.BackOffDelay),
		retry.MaxDelay(10*time.Second),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			logrus.Warnf("Database not ready (attempt %d): %v", n+1, err)
		}),
	)
	return db, err
}

func setupNotifier(ctx context.Context, cfg *config.Config) (*redis.Client, notify.Publisher) {
	if cfg.RedisAddr == "" {
		logrus.Info("REDIS_ADDR not set, logging notifications")
		return nil, notify.NewLogPublisher()
	}

	client, err := notify.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		logrus.Warn("Redis unavailable, logging notifications: ", err)
		return nil, notify.NewLogPublisher()
	}
	return client, notify.NewRedisStreamPublisher(client, cfg.NotifyStream)
}
