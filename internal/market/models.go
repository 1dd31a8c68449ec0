package market

import (
	"time"

	"github.com/google/uuid"
)

// PriceRecord represents one observed market price for a crop
type PriceRecord struct {
	ID             uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	CropName       string    `json:"crop_name" gorm:"not null;index"`
	PricePerKg     float64   `json:"price_per_kg" gorm:"type:decimal(10,2);not null"`
	MarketLocation string    `json:"market_location"`
	ObservedAt     time.Time `json:"observed_at" gorm:"not null;index"`
	CreatedAt      time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// TableName overrides the gorm table name
func (PriceRecord) TableName() string {
	return "market_prices"
}

// Trend describes the short-term price direction for a crop
type Trend string

const (
	TrendUp     Trend = "up"
	TrendDown   Trend = "down"
	TrendStable Trend = "stable"
)

// CropProfitability is one entry of the market profitability ranking
type CropProfitability struct {
	CropName           string  `json:"crop_name"`
	AveragePrice       float64 `json:"average_price"`
	LatestPrice        float64 `json:"latest_price"`
	Trend              Trend   `json:"trend"`
	ProfitabilityScore int     `json:"profitability_score"`
	Observations       int     `json:"observations"`
}
