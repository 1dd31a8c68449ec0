package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"crop-compass/advisory-portal/advisory-portal-backend/internal/config"
	"crop-compass/advisory-portal/advisory-portal-backend/internal/market"
)

// MarketSnapshotWorker periodically re-records the latest known price per crop
// so the feed keeps a continuous time series even when no fresh quotes arrive
type MarketSnapshotWorker struct {
	service  *market.Service
	logger   *zap.Logger
	schedule string
	cron     *cron.Cron
}

// NewMarketSnapshotWorker creates a new market snapshot worker
func NewMarketSnapshotWorker(service *market.Service, logger *zap.Logger, schedule string) *MarketSnapshotWorker {
	return &MarketSnapshotWorker{
		service:  service,
		logger:   logger,
		schedule: schedule,
		cron:     cron.New(),
	}
}

// Start schedules the snapshot job and begins execution
func (w *MarketSnapshotWorker) Start() error {
	w.logger.Info("Starting market snapshot worker",
		zap.String("schedule", w.schedule))

	if _, err := w.cron.AddFunc(w.schedule, w.snapshot); err != nil {
		return err
	}

	w.cron.Start()
	return nil
}

// Stop halts the cron scheduler and waits for a running job to finish
func (w *MarketSnapshotWorker) Stop() {
	ctx := w.cron.Stop()
	<-ctx.Done()
	w.logger.Info("Market snapshot worker stopped")
}

// snapshot records one carry-forward observation per crop
func (w *MarketSnapshotWorker) snapshot() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	records, err := w.service.RecentPrices(ctx, market.DefaultFeedWindow)
	if err != nil {
		w.logger.Warn("Snapshot skipped, market feed unavailable", zap.Error(err))
		return
	}

	// Records are newest first, so the first price seen per crop is its latest
	latest := make(map[string]market.PriceRecord)
	for _, record := range records {
		if _, seen := latest[record.CropName]; !seen {
			latest[record.CropName] = record
		}
	}

	now := time.Now()
	recorded := 0
	for crop, record := range latest {
		snapshot := &market.PriceRecord{
			CropName:       crop,
			PricePerKg:     record.PricePerKg,
			MarketLocation: "snapshot",
			ObservedAt:     now,
		}
		if err := w.service.RecordPrice(ctx, snapshot); err != nil {
			w.logger.Error("Failed to record snapshot", zap.String("crop", crop), zap.Error(err))
			continue
		}
		recorded++
	}

	w.logger.Info("Market snapshot recorded",
		zap.Int("crops", recorded),
		zap.Time("observed_at", now))
}

func main() {
	logger, _ := zap.NewDevelopment()
	defer logger.Sync()

	if err := godotenv.Load(); err != nil {
		logger.Debug("No .env file found, relying on environment")
	}

	cfg, err := config.LoadConfig("config.json")
	if err != nil {
		logger.Fatal("Failed to load configuration", zap.Error(err))
	}

	db, err := sqlx.Connect("postgres", cfg.Database.GetDatabaseURL())
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	gormDB, err := gorm.Open(gormpostgres.New(gormpostgres.Config{Conn: db.DB}), &gorm.Config{})
	if err != nil {
		logger.Fatal("Failed to initialize gorm", zap.Error(err))
	}

	service := market.NewService(market.NewGormRepository(gormDB), logger)
	worker := NewMarketSnapshotWorker(service, logger, cfg.Market.SnapshotSchedule)

	if err := worker.Start(); err != nil {
		logger.Fatal("Failed to start worker", zap.Error(err))
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	worker.Stop()
}
