package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/segyhp/travel-crm/internal/config"
	"github.com/segyhp/travel-crm/internal/handler"
	"github.com/segyhp/travel-crm/internal/logger"
	"github.com/segyhp/travel-crm/internal/repository"
	"github.com/segyhp/travel-crm/internal/service"
	"github.com/segyhp/travel-crm/internal/storage"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to load configuration: %v", err)
	}

	log := logger.New(cfg.Logging)

	// Initialize database
	db, err := initDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	// Initialize Redis
	redisClient := initRedis(cfg)
	defer redisClient.Close()

	// Initialize document storage
	documents, err := initStorage(cfg, log)
	if err != nil {
		log.Fatalf("Failed to initialize document storage: %v", err)
	}

	// Initialize repositories
	recordRepo := repository.NewRecordRepository(db)
	cache := repository.NewCache(redisClient, cfg.Business.DashboardCacheTTL, log)

	// Initialize services
	recordService := service.NewRecordService(recordRepo, cache, log)
	reminderService := service.NewReminderService(recordRepo, log)
	dashboardService := service.NewDashboardService(recordRepo, cache, cfg, log)
	documentService := service.NewDocumentService(recordRepo, documents, log)

	checks := map[string]handler.Check{
		"database": recordRepo.Ping,
		"redis":    cache.Ping,
	}
	if documents != nil {
		checks["storage"] = documents.HealthCheck
	}

	if cfg.Seed.AdminEmail == "" {
		log.Warn("ADMIN_EMAIL not set, API is not protected by basic auth")
	}

	router := handler.NewRouter(handler.Handlers{
		Records:   handler.NewRecordHandler(recordService, log),
		Dashboard: handler.NewDashboardHandler(reminderService, dashboardService, cfg.GetSchedulerLocation(), log),
		Documents: handler.NewDocumentHandler(documentService, log),
		Health:    handler.NewHealthHandler(checks, cfg.Health.Timeout),
	}, cfg.Seed, log)

	// Start server
	server := &http.Server{
		Addr:         cfg.Server.Host + ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in a goroutine
	go func() {
		log.WithField("addr", server.Addr).Info("Server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Info("Server exited")
}

func initDB(cfg *config.Config) (*sqlx.DB, error) {
	db, err := sqlx.Connect("postgres", cfg.Database.DSN())
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	return db, nil
}

func initRedis(cfg *config.Config) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.GetRedisAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
}

// initStorage returns a nil store when no credentials are configured
func initStorage(cfg *config.Config, log *logrus.Logger) (storage.DocumentStore, error) {
	if !cfg.StorageEnabled() {
		log.Warn("Document storage not configured, attachments are disabled")
		return nil, nil
	}

	store, err := storage.NewSupabaseStorage(context.Background(), cfg.Storage, log)
	if err != nil {
		return nil, err
	}
	return store, nil
}
