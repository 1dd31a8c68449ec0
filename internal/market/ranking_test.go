package market

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// priceSeries builds records for one crop, newest first
func priceSeries(crop string, prices ...float64) []PriceRecord {
	now := time.Now()
	records := make([]PriceRecord, len(prices))
	for i, p := range prices {
		records[i] = PriceRecord{
			CropName:   crop,
			PricePerKg: p,
			ObservedAt: now.Add(-time.Duration(i) * 24 * time.Hour),
		}
	}
	return records
}

func TestRankProfitabilityTrendUp(t *testing.T) {
	// Latest is 10% above the mean of the prior three observations
	ranking := RankProfitability(priceSeries("rice", 11, 10, 10, 10))

	require.Len(t, ranking, 1)
	assert.Equal(t, TrendUp, ranking[0].Trend)
}

func TestRankProfitabilityTrendDown(t *testing.T) {
	ranking := RankProfitability(priceSeries("rice", 9, 10, 10, 10))

	require.Len(t, ranking, 1)
	assert.Equal(t, TrendDown, ranking[0].Trend)
}

func TestRankProfitabilityTrendStable(t *testing.T) {
	ranking := RankProfitability(priceSeries("rice", 10, 10, 10, 10))

	require.Len(t, ranking, 1)
	assert.Equal(t, TrendStable, ranking[0].Trend)
}

func TestRankProfitabilitySingleObservationIsStable(t *testing.T) {
	ranking := RankProfitability(priceSeries("rice", 42))

	require.Len(t, ranking, 1)
	assert.Equal(t, TrendStable, ranking[0].Trend)
	assert.Equal(t, 42.0, ranking[0].LatestPrice)
	assert.Equal(t, 1, ranking[0].Observations)
}

func TestRankProfitabilityScore(t *testing.T) {
	// avg = 10.25, priceScore = 20.5, stability = 100 - |11-10.25|/10.25*100
	ranking := RankProfitability(priceSeries("rice", 11, 10, 10, 10))

	require.Len(t, ranking, 1)
	assert.Equal(t, 57, ranking[0].ProfitabilityScore)
	assert.Equal(t, 10.25, ranking[0].AveragePrice)
	assert.Equal(t, 4, ranking[0].Observations)
}

func TestRankProfitabilityPriceScoreCapsAt100(t *testing.T) {
	// avg 60/kg maxes the price component; flat series maxes stability
	ranking := RankProfitability(priceSeries("saffron", 60, 60, 60))

	require.Len(t, ranking, 1)
	assert.Equal(t, 100, ranking[0].ProfitabilityScore)
}

func TestRankProfitabilityGroupsAndSorts(t *testing.T) {
	records := append(priceSeries("rice", 10, 10, 10), priceSeries("cotton", 40, 40, 40)...)

	ranking := RankProfitability(records)

	require.Len(t, ranking, 2)
	// cotton's higher price level must rank first
	assert.Equal(t, "cotton", ranking[0].CropName)
	assert.Equal(t, "rice", ranking[1].CropName)
	assert.Greater(t, ranking[0].ProfitabilityScore, ranking[1].ProfitabilityScore)
}

func TestRankProfitabilityEmptyFeed(t *testing.T) {
	ranking := RankProfitability(nil)

	assert.Empty(t, ranking)
}

func TestRankProfitabilityTrendWindowLimitedToThree(t *testing.T) {
	// Only the three most recent prior observations feed the trend; the old
	// spike at the end must not affect it
	ranking := RankProfitability(priceSeries("rice", 10, 10, 10, 10, 1000))

	require.Len(t, ranking, 1)
	assert.Equal(t, TrendStable, ranking[0].Trend)
}
