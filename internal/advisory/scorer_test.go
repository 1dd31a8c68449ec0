package advisory

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRiskLevelMapping(t *testing.T) {
	tests := []struct {
		name     string
		profile  SoilProfile
		expected RiskLevel
	}{
		{
			name:     "all within safe ranges",
			profile:  SoilProfile{Temperature: 25, Humidity: 60, PH: 6.5, Rainfall: 120},
			expected: RiskLow,
		},
		{
			name:     "ph out of range alone is medium",
			profile:  SoilProfile{Temperature: 25, Humidity: 60, PH: 9.2, Rainfall: 120},
			expected: RiskMedium,
		},
		{
			name:     "humidity out of range alone stays low",
			profile:  SoilProfile{Temperature: 25, Humidity: 95, PH: 6.5, Rainfall: 120},
			expected: RiskLow,
		},
		{
			name:     "ph and temperature out of range is high",
			profile:  SoilProfile{Temperature: 42, Humidity: 60, PH: 4.8, Rainfall: 120},
			expected: RiskHigh,
		},
		{
			name:     "all four out of range is high",
			profile:  SoilProfile{Temperature: 45, Humidity: 10, PH: 3.0, Rainfall: 500},
			expected: RiskHigh,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score := Score(tt.profile, "rice")
			assert.Equal(t, tt.expected, score.RiskLevel)
		})
	}
}

func TestRiskIsMonotonicInPH(t *testing.T) {
	base := SoilProfile{Temperature: 25, Humidity: 60, Rainfall: 120}

	inRange := base
	inRange.PH = 6.5
	outOfRange := base
	outOfRange.PH = 4.0

	assert.GreaterOrEqual(t,
		Score(outOfRange, "wheat").RiskLevel.Rank(),
		Score(inRange, "wheat").RiskLevel.Rank())
}

func TestYieldIndexRice(t *testing.T) {
	// Optimal rice conditions: 100 * 1.3 (temp+humidity) * 1.2 (rainfall) * 1.15 (pH)
	profile := SoilProfile{Temperature: 25, Humidity: 80, PH: 6.5, Rainfall: 200}

	score := Score(profile, "rice")

	assert.Equal(t, 179, score.YieldIndex)
}

func TestYieldIndexUnmodeledCrop(t *testing.T) {
	// Unmodeled crops only get the universal pH adjustment
	profile := SoilProfile{Temperature: 25, Humidity: 80, PH: 7.0, Rainfall: 200}

	score := Score(profile, "banana")

	assert.Equal(t, 115, score.YieldIndex)
}

func TestYieldIndexPHPenalty(t *testing.T) {
	profile := SoilProfile{Temperature: 5, Humidity: 40, PH: 4.5, Rainfall: 60}

	score := Score(profile, "banana")

	assert.Equal(t, 70, score.YieldIndex)
}

func TestProfitabilityIndexScalesWithYield(t *testing.T) {
	// cotton base 80; temp 25 in range (x1.2), potassium 50 (x1.15), pH 7 (x1.15)
	profile := SoilProfile{Temperature: 25, Humidity: 55, PH: 7.0, Rainfall: 100, Potassium: 50}

	score := Score(profile, "cotton")

	// yield = round(100 * 1.2 * 1.15 * 1.15) = 159, profitability = round(80 * 1.59)
	assert.Equal(t, 159, score.YieldIndex)
	assert.Equal(t, 127, score.ProfitabilityIndex)
}

func TestProfitabilityIndexDefaultBase(t *testing.T) {
	profile := SoilProfile{Temperature: 25, Humidity: 55, PH: 5.7, Rainfall: 100}

	score := Score(profile, "sugarcane")

	// neutral pH band missed, no crop modifier: yield 100, base 60
	assert.Equal(t, 100, score.YieldIndex)
	assert.Equal(t, 60, score.ProfitabilityIndex)
}

func TestConfidenceScoreDeterministicWithFixedSource(t *testing.T) {
	// rnd 0.5 lands exactly on the baseline
	assert.Equal(t, 80.0, ConfidenceScore(func() float64 { return 0.5 }))
	// extremes stay within the presentation bounds
	assert.Equal(t, 65.0, ConfidenceScore(func() float64 { return 0 }))
	assert.Equal(t, 95.0, ConfidenceScore(func() float64 { return 0.9999999 }))
}

func TestConfidenceScoreBounds(t *testing.T) {
	steps := []float64{0, 0.1, 0.25, 0.5, 0.75, 0.9, 0.999}
	for _, v := range steps {
		conf := ConfidenceScore(func() float64 { return v })
		assert.GreaterOrEqual(t, conf, 65.0)
		assert.LessOrEqual(t, conf, 98.0)
	}
}
