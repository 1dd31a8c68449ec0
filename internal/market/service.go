package market

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// DefaultFeedWindow is how many recent observations the ranking considers
const DefaultFeedWindow = 50

// Service provides market price queries and the profitability ranking
type Service struct {
	repo   Repository
	logger *zap.Logger
}

// NewService creates a new market service
func NewService(repo Repository, logger *zap.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// RecentPrices returns the latest price observations, newest first
func (s *Service) RecentPrices(ctx context.Context, limit int) ([]PriceRecord, error) {
	if limit <= 0 {
		limit = DefaultFeedWindow
	}

	records, err := s.repo.GetRecentPrices(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to load recent prices: %w", err)
	}

	return records, nil
}

// Profitability computes the per-crop profitability ranking from the recent
// price feed. Feed unavailability degrades to an empty ranking so the dashboard
// can still render.
func (s *Service) Profitability(ctx context.Context) []CropProfitability {
	records, err := s.repo.GetRecentPrices(ctx, DefaultFeedWindow)
	if err != nil {
		s.logger.Warn("Market feed unavailable, returning empty ranking", zap.Error(err))
		return []CropProfitability{}
	}

	ranking := RankProfitability(records)

	s.logger.Info("Market profitability ranking computed",
		zap.Int("crops", len(ranking)),
		zap.Int("observations", len(records)))

	return ranking
}

// RecordPrice stores a new observation. Used by the snapshot worker and the
// ingestion endpoint.
func (s *Service) RecordPrice(ctx context.Context, record *PriceRecord) error {
	if record.CropName == "" {
		return fmt.Errorf("crop name is required")
	}
	if record.PricePerKg < 0 {
		record.PricePerKg = 0
	}

	if err := s.repo.InsertPrice(ctx, record); err != nil {
		return err
	}

	s.logger.Info("Market price recorded",
		zap.String("crop", record.CropName),
		zap.Float64("price_per_kg", record.PricePerKg),
		zap.String("market", record.MarketLocation))

	return nil
}
