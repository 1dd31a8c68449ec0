package profit

import "crop-compass/advisory-portal/advisory-portal-backend/internal/advisory"

// Inputs holds the cost and revenue line items for one cultivation scenario.
// All quantities are non-negative; the form layer coerces invalid input to 0.
type Inputs struct {
	CropType       string  `json:"crop_type"`
	Area           float64 `json:"area"`           // acres
	ExpectedYield  float64 `json:"expected_yield"` // quintals per acre
	SellingPrice   float64 `json:"selling_price"`  // currency per quintal
	SeedCost       float64 `json:"seed_cost"`
	FertilizerCost float64 `json:"fertilizer_cost"`
	LaborCost      float64 `json:"labor_cost"`
	IrrigationCost float64 `json:"irrigation_cost"`
	OtherCost      float64 `json:"other_cost"`
}

// Analysis is the derived profitability breakdown for a set of inputs
type Analysis struct {
	TotalRevenue    float64            `json:"total_revenue"`
	TotalCosts      float64            `json:"total_costs"`
	GrossProfit     float64            `json:"gross_profit"`
	ProfitMargin    float64            `json:"profit_margin"`    // percent
	ROI             float64            `json:"roi"`              // percent
	BreakEvenYield  float64            `json:"break_even_yield"` // quintals per acre
	ProfitPerAcre   float64            `json:"profit_per_acre"`
	RiskAssessment  advisory.RiskLevel `json:"risk_assessment"`
	Recommendations []string           `json:"recommendations"`
}
