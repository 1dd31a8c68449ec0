package market

import (
	"math"
	"sort"
)

// Number of prior observations the trend comparison averages over
const trendWindow = 3

// Price movement beyond these ratios of the prior mean counts as a trend
const (
	trendUpRatio   = 1.05
	trendDownRatio = 0.95
)

// RankProfitability groups price records by crop and scores each crop's market
// attractiveness. Records must be ordered by observation date descending, so
// the first record seen for a crop is its latest price. The result is sorted
// by profitability score, highest first; equal scores keep first-seen crop
// order.
func RankProfitability(records []PriceRecord) []CropProfitability {
	byCrop := make(map[string][]float64)
	var order []string

	for _, record := range records {
		if _, seen := byCrop[record.CropName]; !seen {
			order = append(order, record.CropName)
		}
		byCrop[record.CropName] = append(byCrop[record.CropName], record.PricePerKg)
	}

	ranking := make([]CropProfitability, 0, len(order))
	for _, crop := range order {
		prices := byCrop[crop]
		avg := mean(prices)
		latest := prices[0]

		ranking = append(ranking, CropProfitability{
			CropName:           crop,
			AveragePrice:       math.Round(avg*100) / 100,
			LatestPrice:        latest,
			Trend:              detectTrend(prices),
			ProfitabilityScore: profitabilityScore(latest, avg),
			Observations:       len(prices),
		})
	}

	sort.SliceStable(ranking, func(i, j int) bool {
		return ranking[i].ProfitabilityScore > ranking[j].ProfitabilityScore
	})

	return ranking
}

// detectTrend compares the latest price against the mean of the prior
// observations (up to trendWindow of them). With no prior data the trend is
// stable.
func detectTrend(prices []float64) Trend {
	if len(prices) < 2 {
		return TrendStable
	}

	prior := prices[1:]
	if len(prior) > trendWindow {
		prior = prior[:trendWindow]
	}
	priorMean := mean(prior)
	if priorMean == 0 {
		return TrendStable
	}

	latest := prices[0]
	switch {
	case latest > trendUpRatio*priorMean:
		return TrendUp
	case latest < trendDownRatio*priorMean:
		return TrendDown
	default:
		return TrendStable
	}
}

// profitabilityScore averages a price-level score with a stability score.
// A crop priced at 50/kg or above maxes out the price component.
func profitabilityScore(latest, avg float64) int {
	priceScore := math.Min(100, avg/10*20)

	stabilityScore := 0.0
	if avg > 0 {
		stabilityScore = math.Max(0, 100-math.Abs(latest-avg)/avg*100)
	}

	return int(math.Round((priceScore + stabilityScore) / 2))
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
