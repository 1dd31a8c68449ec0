package advisory

// RiskLevel classifies the agronomic risk of growing a crop under given conditions
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// Rank returns the ordinal weight of a risk level for sorting and comparison
func (r RiskLevel) Rank() int {
	switch r {
	case RiskHigh:
		return 3
	case RiskMedium:
		return 2
	default:
		return 1
	}
}

// Priority represents the urgency of a fertilizer recommendation
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Rank returns the ordinal weight of a priority for sorting
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	default:
		return 1
	}
}

// AmendmentType identifies the kind of soil amendment being recommended
type AmendmentType string

const (
	AmendmentNitrogen      AmendmentType = "nitrogen"
	AmendmentPhosphorus    AmendmentType = "phosphorus"
	AmendmentPotassium     AmendmentType = "potassium"
	AmendmentLime          AmendmentType = "lime"
	AmendmentGypsum        AmendmentType = "gypsum"
	AmendmentOrganic       AmendmentType = "organic"
	AmendmentMicronutrient AmendmentType = "micronutrient"
)

// SoilProfile describes a plot's growing conditions as submitted by the user
type SoilProfile struct {
	Temperature float64 `json:"temperature"` // Celsius
	Humidity    float64 `json:"humidity"`    // percent, 0-100
	PH          float64 `json:"ph"`
	Rainfall    float64 `json:"rainfall"` // mm
	Nitrogen    float64 `json:"nitrogen"` // ppm
	Phosphorus  float64 `json:"phosphorus"`
	Potassium   float64 `json:"potassium"`
}

// CropRecord is a labeled reference soil profile used for nearest-neighbor matching
type CropRecord struct {
	Label       string  `json:"label" db:"label"`
	Temperature float64 `json:"temperature" db:"temperature"`
	Humidity    float64 `json:"humidity" db:"humidity"`
	PH          float64 `json:"ph" db:"ph"`
	Rainfall    float64 `json:"rainfall" db:"rainfall"`
	Nitrogen    float64 `json:"nitrogen" db:"nitrogen"`
	Phosphorus  float64 `json:"phosphorus" db:"phosphorus"`
	Potassium   float64 `json:"potassium" db:"potassium"`
}

// PredictionResult is the full recommendation bundle for one submitted soil profile
type PredictionResult struct {
	Crop               string    `json:"crop"`
	YieldIndex         int       `json:"yield_index"`
	RiskLevel          RiskLevel `json:"risk_level"`
	Confidence         float64   `json:"confidence"`
	ProfitabilityIndex int       `json:"profitability_index"`
	Recommendations    []string  `json:"recommendations"`
	UsedFallback       bool      `json:"used_fallback"`
}

// NutrientLevels captures the soil chemistry inputs for fertilizer planning
type NutrientLevels struct {
	Nitrogen      float64 `json:"nitrogen"`
	Phosphorus    float64 `json:"phosphorus"`
	Potassium     float64 `json:"potassium"`
	PH            float64 `json:"ph"`
	OrganicMatter float64 `json:"organic_matter"` // percent
}

// FertilizerAdvice is a single amendment recommendation
type FertilizerAdvice struct {
	Type              AmendmentType `json:"type"`
	Amount            float64       `json:"amount"`
	Unit              string        `json:"unit"`
	ApplicationMethod string        `json:"application_method"`
	Timing            string        `json:"timing"`
	Benefits          []string      `json:"benefits"`
	Priority          Priority      `json:"priority"`
}
