package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"agency-console-api/internal/client"
	"agency-console-api/internal/config"
	"agency-console-api/internal/database"
	"agency-console-api/internal/job"
	"agency-console-api/internal/metrics"
	"agency-console-api/internal/repository"
	"agency-console-api/internal/router"
	"agency-console-api/internal/service"
)

func main() {
	cfg, err := config.Load("configs/config.yaml")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger, err := initLogger(cfg.Logger.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	logger.Info("Starting agency console API",
		zap.String("port", cfg.Server.Port),
		zap.String("mode", cfg.Server.Mode),
		zap.String("base_path", cfg.Server.BasePath),
	)

	// Metrics registry comes first so the DB layer can record into it
	m := metrics.NewWithLogger(logger)

	dbConfig := database.Config{
		DSN:             cfg.Database.GetDSN(),
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	}

	db, err := database.New(dbConfig)
	if err != nil {
		logger.Warn("Failed to connect to database on startup, will retry in background", zap.Error(err))
		database.NewAsync(dbConfig, 5*time.Second, logger)
		db = database.GetDB()
	} else {
		if err := database.AutoMigrate(db); err != nil {
			logger.Warn("Failed to run database migrations", zap.Error(err))
		}
		database.RegisterMetricsCallbacks(db, m)
	}

	if err := database.InitRedis(cfg.Redis, logger); err != nil {
		logger.Warn("Redis unavailable, token revocation disabled", zap.Error(err))
	}
	redisClient := database.GetRedis()

	s3Client, err := client.NewS3Client(&cfg.S3)
	if err != nil {
		logger.Fatal("Failed to initialize object storage client", zap.Error(err))
	}

	aiClient := client.NewAIClient(&cfg.AI, logger, m)
	mailer := client.NewSMTPMailer(&cfg.SMTP)

	if db != nil {
		adminRepo := repository.NewAdminRepository(db)
		authService := service.NewAuthService(adminRepo, redisClient, cfg.JWT, cfg.Agency, logger)
		if err := authService.SeedAdmin(context.Background()); err != nil {
			logger.Warn("Failed to seed admin account", zap.Error(err))
		}
	}

	r := router.Setup(router.Config{
		DB:          db,
		RedisClient: redisClient,
		Logger:      logger,
		Metrics:     m,
		S3Client:    s3Client,
		AIClient:    aiClient,
		Mailer:      mailer,
		JWT:         cfg.JWT,
		Agency:      cfg.Agency,
		BasePath:    cfg.Server.BasePath,
	})

	// Hourly sweep of abandoned temporary uploads
	var cronRunner *cron.Cron
	if db != nil {
		cronRunner = cron.New()
		cleanupJob := job.NewCleanupJob(repository.NewMediaRepository(db), s3Client, logger)
		if _, err := cronRunner.AddJob("@hourly", cleanupJob); err != nil {
			logger.Warn("Failed to schedule media cleanup job", zap.Error(err))
		}
		cronRunner.Start()
	}

	var collector *metrics.BusinessMetricsCollector
	if db != nil {
		collector = metrics.NewBusinessMetricsCollector(db, m, logger)
		collector.Start()
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		logger.Info("Agency console API started", zap.String("address", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	if cronRunner != nil {
		cronRunner.Stop()
	}
	if collector != nil {
		collector.Stop()
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited gracefully")
}

// initLogger initializes the zap logger with the specified level
func initLogger(level string) (*zap.Logger, error) {
	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		zapLevel = zapcore.InfoLevel
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(zapLevel),
		Development:      zapLevel == zapcore.DebugLevel,
		Encoding:         "json",
		EncoderConfig:    zap.NewProductionEncoderConfig(),
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}

	return config.Build()
}
