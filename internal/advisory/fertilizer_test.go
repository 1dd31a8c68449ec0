package advisory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanFertilizerDepletedSoil(t *testing.T) {
	nutrients := NutrientLevels{
		Nitrogen:      20,
		Phosphorus:    10,
		Potassium:     15,
		PH:            5.0,
		OrganicMatter: 2.0,
	}

	plan := PlanFertilizer(nutrients)

	require.Len(t, plan, 6)

	byType := make(map[AmendmentType]FertilizerAdvice)
	for _, advice := range plan {
		byType[advice.Type] = advice
	}

	assert.Equal(t, PriorityHigh, byType[AmendmentNitrogen].Priority)
	assert.Equal(t, 50.0, byType[AmendmentNitrogen].Amount) // (40-20) * 2.5
	assert.Equal(t, PriorityHigh, byType[AmendmentPhosphorus].Priority)
	assert.Equal(t, 60.0, byType[AmendmentPhosphorus].Amount) // (30-10) * 3
	assert.Equal(t, PriorityHigh, byType[AmendmentPotassium].Priority)
	assert.Equal(t, 40.0, byType[AmendmentPotassium].Amount) // (35-15) * 2
	assert.Equal(t, PriorityHigh, byType[AmendmentLime].Priority)
	assert.Equal(t, 750.0, byType[AmendmentLime].Amount) // (6.5-5.0) * 500
	assert.Equal(t, PriorityMedium, byType[AmendmentOrganic].Priority)
	assert.Equal(t, PriorityLow, byType[AmendmentMicronutrient].Priority)

	// Gypsum must not fire alongside lime
	_, hasGypsum := byType[AmendmentGypsum]
	assert.False(t, hasGypsum)
}

func TestPlanFertilizerSortedByPriority(t *testing.T) {
	plans := []NutrientLevels{
		{Nitrogen: 20, Phosphorus: 10, Potassium: 15, PH: 5.0, OrganicMatter: 2.0},
		{Nitrogen: 35, Phosphorus: 28, Potassium: 33, PH: 6.8, OrganicMatter: 4.0},
		{Nitrogen: 10, Phosphorus: 50, Potassium: 50, PH: 8.5, OrganicMatter: 1.0},
		{Nitrogen: 80, Phosphorus: 60, Potassium: 70, PH: 7.0, OrganicMatter: 5.0},
	}

	for _, nutrients := range plans {
		plan := PlanFertilizer(nutrients)
		for i := 1; i < len(plan); i++ {
			assert.GreaterOrEqual(t, plan[i-1].Priority.Rank(), plan[i].Priority.Rank(),
				"plan must be sorted by priority descending")
		}
	}
}

func TestPlanFertilizerMicronutrientAlwaysPresent(t *testing.T) {
	// Fully sufficient soil still gets the baseline advice, and nothing else
	plan := PlanFertilizer(NutrientLevels{
		Nitrogen: 80, Phosphorus: 60, Potassium: 70, PH: 7.0, OrganicMatter: 5.0,
	})

	require.Len(t, plan, 1)
	assert.Equal(t, AmendmentMicronutrient, plan[0].Type)
	assert.Equal(t, PriorityLow, plan[0].Priority)
}

func TestPlanFertilizerModerateDeficiencyIsMediumPriority(t *testing.T) {
	plan := PlanFertilizer(NutrientLevels{
		Nitrogen: 30, Phosphorus: 50, Potassium: 50, PH: 7.0, OrganicMatter: 4.0,
	})

	require.Len(t, plan, 2)
	assert.Equal(t, AmendmentNitrogen, plan[0].Type)
	assert.Equal(t, PriorityMedium, plan[0].Priority)
	assert.Equal(t, 25.0, plan[0].Amount) // (40-30) * 2.5
}

func TestPlanFertilizerAlkalineSoilGetsGypsum(t *testing.T) {
	plan := PlanFertilizer(NutrientLevels{
		Nitrogen: 80, Phosphorus: 60, Potassium: 70, PH: 8.5, OrganicMatter: 4.0,
	})

	require.Len(t, plan, 2)
	assert.Equal(t, AmendmentGypsum, plan[0].Type)
	assert.Equal(t, PriorityMedium, plan[0].Priority)
	assert.Equal(t, 300.0, plan[0].Amount) // (8.5-7.5) * 300
	assert.Equal(t, AmendmentMicronutrient, plan[1].Type)
}

func TestPlanFertilizerStableOrderWithinPriority(t *testing.T) {
	// N, P, K all critical plus acidic pH: rule-evaluation order must survive the sort
	plan := PlanFertilizer(NutrientLevels{
		Nitrogen: 20, Phosphorus: 10, Potassium: 15, PH: 5.0, OrganicMatter: 2.0,
	})

	require.Len(t, plan, 6)
	assert.Equal(t, AmendmentNitrogen, plan[0].Type)
	assert.Equal(t, AmendmentPhosphorus, plan[1].Type)
	assert.Equal(t, AmendmentPotassium, plan[2].Type)
	assert.Equal(t, AmendmentLime, plan[3].Type)
	assert.Equal(t, AmendmentOrganic, plan[4].Type)
	assert.Equal(t, AmendmentMicronutrient, plan[5].Type)
}
