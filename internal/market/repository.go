package market

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// Repository defines the interface for market price data access
type Repository interface {
	GetRecentPrices(ctx context.Context, limit int) ([]PriceRecord, error)
	InsertPrice(ctx context.Context, record *PriceRecord) error
}

// GormRepository implements Repository using PostgreSQL via gorm
type GormRepository struct {
	db *gorm.DB
}

// NewGormRepository creates a new market price repository
func NewGormRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

// GetRecentPrices returns the most recent price observations across all crops,
// newest first
func (r *GormRepository) GetRecentPrices(ctx context.Context, limit int) ([]PriceRecord, error) {
	var records []PriceRecord
	err := r.db.WithContext(ctx).
		Order("observed_at DESC").
		Limit(limit).
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch market prices: %w", err)
	}

	return records, nil
}

// InsertPrice stores a new price observation
func (r *GormRepository) InsertPrice(ctx context.Context, record *PriceRecord) error {
	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		return fmt.Errorf("failed to insert market price: %w", err)
	}
	return nil
}
