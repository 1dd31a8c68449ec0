package advisory

import "math"

// AgronomicScore bundles the derived indices for a crop grown on a soil profile
type AgronomicScore struct {
	RiskLevel          RiskLevel `json:"risk_level"`
	YieldIndex         int       `json:"yield_index"`
	ProfitabilityIndex int       `json:"profitability_index"`
}

// Base profitability scores per crop. Unmodeled crops fall back to the default.
var profitabilityBase = map[string]float64{
	"rice":   75,
	"wheat":  70,
	"maize":  65,
	"cotton": 80,
}

const profitabilityDefault = 60

// Risk thresholds are fixed agronomic constants, independent of crop
const (
	phSafeMin       = 5.5
	phSafeMax       = 8.5
	tempSafeMin     = 10
	tempSafeMax     = 35
	humiditySafeMin = 30
	humiditySafeMax = 90
	rainfallSafeMin = 50
	rainfallSafeMax = 300
)

// Score computes risk level, yield index and profitability index for growing
// cropLabel under the given soil conditions
func Score(profile SoilProfile, cropLabel string) AgronomicScore {
	yield := yieldIndex(profile, cropLabel)

	base, ok := profitabilityBase[cropLabel]
	if !ok {
		base = profitabilityDefault
	}
	profitability := int(math.Round(base * float64(yield) / 100))

	return AgronomicScore{
		RiskLevel:          riskLevel(profile),
		YieldIndex:         yield,
		ProfitabilityIndex: profitability,
	}
}

// riskLevel accumulates a score from out-of-range conditions and maps it to a level.
// Out-of-range pH and temperature weigh twice as much as humidity and rainfall.
func riskLevel(profile SoilProfile) RiskLevel {
	score := 0
	if profile.PH < phSafeMin || profile.PH > phSafeMax {
		score += 2
	}
	if profile.Temperature < tempSafeMin || profile.Temperature > tempSafeMax {
		score += 2
	}
	if profile.Humidity < humiditySafeMin || profile.Humidity > humiditySafeMax {
		score++
	}
	if profile.Rainfall < rainfallSafeMin || profile.Rainfall > rainfallSafeMax {
		score++
	}

	switch {
	case score >= 4:
		return RiskHigh
	case score >= 2:
		return RiskMedium
	default:
		return RiskLow
	}
}

// yieldIndex starts from a baseline of 100 and applies crop-specific climate
// multipliers followed by a universal pH adjustment
func yieldIndex(profile SoilProfile, cropLabel string) int {
	yield := 100.0

	switch cropLabel {
	case "rice":
		if profile.Temperature >= 20 && profile.Temperature <= 35 && profile.Humidity > 60 {
			yield *= 1.3
		}
		if profile.Rainfall > 150 {
			yield *= 1.2
		}
	case "wheat":
		if profile.Temperature >= 10 && profile.Temperature <= 25 {
			yield *= 1.25
		}
		if profile.Nitrogen > 40 {
			yield *= 1.15
		}
	case "maize":
		if profile.Temperature >= 18 && profile.Temperature <= 32 && profile.Humidity > 50 {
			yield *= 1.28
		}
		if profile.Nitrogen > 60 {
			yield *= 1.1
		}
	case "cotton":
		if profile.Temperature >= 21 && profile.Temperature <= 35 {
			yield *= 1.2
		}
		if profile.Potassium > 40 {
			yield *= 1.15
		}
	}

	if profile.PH >= 6 && profile.PH <= 7.5 {
		yield *= 1.15
	} else if profile.PH < 5.5 || profile.PH > 8 {
		yield *= 0.7
	}

	return int(math.Round(yield))
}

// Confidence presentation bounds. The jittered value is a UX affordance for the
// dashboard, not a statistical confidence interval.
const (
	confidenceBaseline = 80.0
	confidenceJitter   = 15.0
	confidenceMin      = 65.0
	confidenceMax      = 98.0
)

// ConfidenceScore derives a display confidence from the baseline plus bounded
// jitter. rnd must return a value in [0, 1); injecting it keeps tests deterministic.
func ConfidenceScore(rnd func() float64) float64 {
	confidence := confidenceBaseline + (rnd()*2-1)*confidenceJitter

	if confidence < confidenceMin {
		confidence = confidenceMin
	}
	if confidence > confidenceMax {
		confidence = confidenceMax
	}

	return math.Round(confidence*10) / 10
}
