package advisory

import (
	"math"
	"sort"
)

// Nutrient sufficiency thresholds (ppm) and the points below which a deficiency
// becomes urgent
const (
	nitrogenTarget     = 40
	nitrogenCritical   = 25
	phosphorusTarget   = 30
	phosphorusCritical = 15
	potassiumTarget    = 35
	potassiumCritical  = 20

	phAcidic   = 6.0
	phAlkaline = 8.0

	organicMatterTarget = 3.0
)

// PlanFertilizer evaluates each amendment rule independently against the given
// nutrient levels and returns the triggered recommendations sorted by priority,
// highest first. Ties keep rule-evaluation order. A micronutrient baseline entry
// is always present, so the plan is never empty.
func PlanFertilizer(nutrients NutrientLevels) []FertilizerAdvice {
	var plan []FertilizerAdvice

	if nutrients.Nitrogen < nitrogenTarget {
		priority := PriorityMedium
		if nutrients.Nitrogen < nitrogenCritical {
			priority = PriorityHigh
		}
		plan = append(plan, FertilizerAdvice{
			Type:              AmendmentNitrogen,
			Amount:            math.Round((nitrogenTarget - nutrients.Nitrogen) * 2.5),
			Unit:              "kg/ha",
			ApplicationMethod: "Broadcast and incorporate before sowing, remainder as top dressing",
			Timing:            "Split application: half at sowing, half at vegetative stage",
			Benefits:          []string{"Promotes leaf and stem growth", "Improves protein content"},
			Priority:          priority,
		})
	}

	if nutrients.Phosphorus < phosphorusTarget {
		priority := PriorityMedium
		if nutrients.Phosphorus < phosphorusCritical {
			priority = PriorityHigh
		}
		plan = append(plan, FertilizerAdvice{
			Type:              AmendmentPhosphorus,
			Amount:            math.Round((phosphorusTarget - nutrients.Phosphorus) * 3),
			Unit:              "kg/ha",
			ApplicationMethod: "Band placement near the seed row",
			Timing:            "Full dose at sowing",
			Benefits:          []string{"Strengthens root development", "Improves flowering and seed set"},
			Priority:          priority,
		})
	}

	if nutrients.Potassium < potassiumTarget {
		priority := PriorityMedium
		if nutrients.Potassium < potassiumCritical {
			priority = PriorityHigh
		}
		plan = append(plan, FertilizerAdvice{
			Type:              AmendmentPotassium,
			Amount:            math.Round((potassiumTarget - nutrients.Potassium) * 2),
			Unit:              "kg/ha",
			ApplicationMethod: "Broadcast and incorporate into topsoil",
			Timing:            "At sowing, or split for sandy soils",
			Benefits:          []string{"Improves drought tolerance", "Enhances grain filling and quality"},
			Priority:          priority,
		})
	}

	// Lime and gypsum thresholds do not overlap, so at most one fires
	if nutrients.PH < phAcidic {
		plan = append(plan, FertilizerAdvice{
			Type:              AmendmentLime,
			Amount:            math.Round((6.5 - nutrients.PH) * 500),
			Unit:              "kg/ha",
			ApplicationMethod: "Broadcast evenly and incorporate into topsoil",
			Timing:            "2-3 months before sowing",
			Benefits:          []string{"Raises soil pH", "Unlocks phosphorus availability", "Reduces aluminium toxicity"},
			Priority:          PriorityHigh,
		})
	} else if nutrients.PH > phAlkaline {
		plan = append(plan, FertilizerAdvice{
			Type:              AmendmentGypsum,
			Amount:            math.Round((nutrients.PH - 7.5) * 300),
			Unit:              "kg/ha",
			ApplicationMethod: "Surface application followed by irrigation",
			Timing:            "Before land preparation",
			Benefits:          []string{"Lowers sodicity", "Improves soil structure and drainage"},
			Priority:          PriorityMedium,
		})
	}

	if nutrients.OrganicMatter < organicMatterTarget {
		plan = append(plan, FertilizerAdvice{
			Type:              AmendmentOrganic,
			Amount:            2500,
			Unit:              "kg/ha",
			ApplicationMethod: "Spread well-decomposed compost and incorporate",
			Timing:            "3-4 weeks before sowing",
			Benefits:          []string{"Builds organic matter", "Improves water retention", "Feeds soil microbiology"},
			Priority:          PriorityMedium,
		})
	}

	// Baseline advice, always present
	plan = append(plan, FertilizerAdvice{
		Type:              AmendmentMicronutrient,
		Amount:            25,
		Unit:              "kg/ha",
		ApplicationMethod: "Foliar spray or soil application with the first irrigation",
		Timing:            "Early vegetative stage",
		Benefits:          []string{"Covers zinc, boron and iron deficiencies", "Supports enzyme function"},
		Priority:          PriorityLow,
	})

	sort.SliceStable(plan, func(i, j int) bool {
		return plan[i].Priority.Rank() > plan[j].Priority.Rank()
	})

	return plan
}
