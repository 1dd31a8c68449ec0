package profit

import (
	"fmt"

	"crop-compass/advisory-portal/advisory-portal-backend/internal/advisory"
)

// Margin thresholds (percent) separating the risk bands
const (
	marginRiskHigh   = 10
	marginRiskMedium = 25
)

// Analyze computes the full profitability breakdown for the given inputs.
// Every division is guarded: a zero denominator yields a zero rate instead of
// an error, so the analysis always completes.
func Analyze(inputs Inputs) Analysis {
	totalRevenue := inputs.Area * inputs.ExpectedYield * inputs.SellingPrice
	totalCosts := inputs.SeedCost + inputs.FertilizerCost + inputs.LaborCost +
		inputs.IrrigationCost + inputs.OtherCost
	grossProfit := totalRevenue - totalCosts

	analysis := Analysis{
		TotalRevenue: totalRevenue,
		TotalCosts:   totalCosts,
		GrossProfit:  grossProfit,
	}

	if totalRevenue > 0 {
		analysis.ProfitMargin = grossProfit / totalRevenue * 100
	}
	if totalCosts > 0 {
		analysis.ROI = grossProfit / totalCosts * 100
	}
	if inputs.SellingPrice > 0 && inputs.Area > 0 {
		analysis.BreakEvenYield = totalCosts / (inputs.SellingPrice * inputs.Area)
	}
	if inputs.Area > 0 {
		analysis.ProfitPerAcre = grossProfit / inputs.Area
	}

	analysis.RiskAssessment = assessRisk(analysis.ProfitMargin)
	analysis.Recommendations = buildRecommendations(inputs, analysis)

	return analysis
}

func assessRisk(margin float64) advisory.RiskLevel {
	switch {
	case margin < marginRiskHigh:
		return advisory.RiskHigh
	case margin < marginRiskMedium:
		return advisory.RiskMedium
	default:
		return advisory.RiskLow
	}
}

// buildRecommendations assembles the advice lines in display order: one margin
// verdict, conditional cost notes, and the break-even summary last
func buildRecommendations(inputs Inputs, analysis Analysis) []string {
	var recs []string

	switch {
	case analysis.GrossProfit < 0:
		recs = append(recs, "This scenario runs at a loss; revisit crop choice or reduce input costs before committing")
	case analysis.ProfitMargin < marginRiskMedium:
		recs = append(recs, "Profit margin is thin; small price or yield swings could erase it")
	default:
		recs = append(recs, "Margin is healthy; current cost structure supports this crop")
	}

	if analysis.ROI < 20 {
		recs = append(recs, "Return on investment is below 20%; consider higher-value crops or staggered planting")
	}
	if analysis.TotalCosts > 0 && inputs.LaborCost > 0.4*analysis.TotalCosts {
		recs = append(recs, "Labor is over 40% of total costs; mechanization could improve the margin")
	}
	if analysis.TotalCosts > 0 && inputs.FertilizerCost > 0.3*analysis.TotalCosts {
		recs = append(recs, "Fertilizer is over 30% of total costs; soil testing may allow a leaner dosage")
	}

	recs = append(recs, fmt.Sprintf("Break-even yield is %.1f quintals/acre; anything above that is profit", analysis.BreakEvenYield))

	return recs
}
