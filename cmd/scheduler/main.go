package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/segyhp/travel-crm/internal/config"
	"github.com/segyhp/travel-crm/internal/domain"
	"github.com/segyhp/travel-crm/internal/logger"
	"github.com/segyhp/travel-crm/internal/repository"
	"github.com/segyhp/travel-crm/internal/service"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

const jobTimeout = 2 * time.Minute

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to load configuration: %v", err)
	}

	log := logger.New(cfg.Logging)
	log.Info("Starting reminder scheduler...")

	db, err := sqlx.Connect("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.GetRedisAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	recordRepo := repository.NewRecordRepository(db)
	cache := repository.NewCache(redisClient, cfg.Business.DashboardCacheTTL, log)

	jobs := &jobs{
		reminders: service.NewReminderService(recordRepo, log),
		dashboard: service.NewDashboardService(recordRepo, cache, cfg, log),
		location:  cfg.GetSchedulerLocation(),
		logger:    log,
	}

	// Initialize cron scheduler
	c := cron.New(
		cron.WithSeconds(),
		cron.WithLocation(jobs.location),
		cron.WithChain(cron.Recover(cron.DiscardLogger), cron.SkipIfStillRunning(cron.DiscardLogger)),
	)

	if _, err := c.AddFunc(cfg.Scheduler.ReminderSpec, jobs.reminderSweep); err != nil {
		log.Fatalf("Error scheduling reminder sweep: %v", err)
	}

	// Start the scheduler
	c.Start()
	log.WithFields(logrus.Fields{
		"spec":     cfg.Scheduler.ReminderSpec,
		"timezone": jobs.location.String(),
	}).Info("Scheduler started successfully")

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down scheduler...")
	<-c.Stop().Done()
	log.Info("Scheduler stopped")
}

type jobs struct {
	reminders *service.ReminderService
	dashboard *service.DashboardService
	location  *time.Location
	logger    *logrus.Logger
}

// reminderSweep logs the day's high priority reminders and rebuilds the
// dashboard cache for the new day.
func (j *jobs) reminderSweep() {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	now := time.Now().In(j.location)

	reminders, err := j.reminders.List(ctx, now)
	if err != nil {
		j.logger.WithError(err).Error("reminder sweep failed")
		return
	}

	for _, r := range reminders {
		if r.Priority != domain.PriorityHigh {
			continue
		}
		j.logger.WithFields(logrus.Fields{
			"customer_id": r.CustomerID,
			"type":        r.Type,
			"days_left":   r.DaysLeft,
			"date":        r.DisplayDate,
		}).Warn(r.Message)
	}

	counts := service.CountByPriority(reminders)
	j.logger.WithFields(logrus.Fields{
		"high":   counts[domain.PriorityHigh],
		"medium": counts[domain.PriorityMedium],
		"low":    counts[domain.PriorityLow],
	}).Info("reminder sweep finished")

	if _, err := j.dashboard.Refresh(ctx, now); err != nil {
		j.logger.WithError(err).Error("dashboard refresh failed")
	}
}
