package market

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// MockRepository is a mock implementation of the Repository interface
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) GetRecentPrices(ctx context.Context, limit int) ([]PriceRecord, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]PriceRecord), args.Error(1)
}

func (m *MockRepository) InsertPrice(ctx context.Context, record *PriceRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func TestProfitabilityUsesFeedWindow(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, zap.NewNop())

	ctx := context.Background()
	mockRepo.On("GetRecentPrices", ctx, DefaultFeedWindow).
		Return(priceSeries("rice", 11, 10, 10, 10), nil)

	ranking := service.Profitability(ctx)

	require.Len(t, ranking, 1)
	assert.Equal(t, "rice", ranking[0].CropName)
	assert.Equal(t, TrendUp, ranking[0].Trend)

	mockRepo.AssertExpectations(t)
}

func TestProfitabilityFeedUnavailableReturnsEmptyRanking(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, zap.NewNop())

	ctx := context.Background()
	mockRepo.On("GetRecentPrices", ctx, DefaultFeedWindow).
		Return(nil, errors.New("connection refused"))

	ranking := service.Profitability(ctx)

	assert.NotNil(t, ranking)
	assert.Empty(t, ranking)
}

func TestRecordPriceValidation(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, zap.NewNop())

	ctx := context.Background()

	err := service.RecordPrice(ctx, &PriceRecord{PricePerKg: 12})
	assert.Error(t, err, "missing crop name must be rejected")

	mockRepo.On("InsertPrice", ctx, mock.AnythingOfType("*market.PriceRecord")).Return(nil)

	record := &PriceRecord{CropName: "rice", PricePerKg: -3}
	err = service.RecordPrice(ctx, record)
	require.NoError(t, err)
	assert.Equal(t, 0.0, record.PricePerKg, "negative price coerces to zero")

	mockRepo.AssertExpectations(t)
}

func TestRecentPricesDefaultsLimit(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, zap.NewNop())

	ctx := context.Background()
	mockRepo.On("GetRecentPrices", ctx, DefaultFeedWindow).Return([]PriceRecord{}, nil)

	records, err := service.RecentPrices(ctx, 0)

	require.NoError(t, err)
	assert.Empty(t, records)
	mockRepo.AssertExpectations(t)
}
