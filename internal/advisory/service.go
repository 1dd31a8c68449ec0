package advisory

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"go.uber.org/zap"
)

// Repository defines the interface for crop reference data access
type Repository interface {
	GetAllCropRecords(ctx context.Context) ([]CropRecord, error)
}

// Service composes the classifier, scorer and fertilizer planner into the
// advisory pipeline. It holds no per-request state; concurrent calls are
// independent.
type Service struct {
	repo   Repository
	logger *zap.Logger
	rnd    func() float64
}

// NewService creates a new advisory service
func NewService(repo Repository, logger *zap.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
		rnd:    rand.Float64,
	}
}

// SetRandSource overrides the confidence jitter source. Tests use this to make
// the confidence value deterministic.
func (s *Service) SetRandSource(rnd func() float64) {
	s.rnd = rnd
}

// Recommend produces the full recommendation bundle for one soil profile.
// Dataset unavailability is absorbed: the rule-based fallback crop is used and
// the result is flagged, never an error.
func (s *Service) Recommend(ctx context.Context, profile SoilProfile) (*PredictionResult, error) {
	crop, usedFallback := s.matchCrop(ctx, profile)

	score := Score(profile, crop)

	result := &PredictionResult{
		Crop:               crop,
		YieldIndex:         score.YieldIndex,
		RiskLevel:          score.RiskLevel,
		Confidence:         ConfidenceScore(s.rnd),
		ProfitabilityIndex: score.ProfitabilityIndex,
		UsedFallback:       usedFallback,
	}
	result.Recommendations = buildRecommendations(result)

	s.logger.Info("Crop recommendation generated",
		zap.String("crop", crop),
		zap.Int("yield_index", score.YieldIndex),
		zap.String("risk_level", string(score.RiskLevel)),
		zap.Bool("used_fallback", usedFallback))

	return result, nil
}

// matchCrop classifies against the reference dataset, degrading to the
// threshold-cascade fallback when the dataset cannot be retrieved or is empty
func (s *Service) matchCrop(ctx context.Context, profile SoilProfile) (string, bool) {
	records, err := s.repo.GetAllCropRecords(ctx)
	if err != nil {
		s.logger.Warn("Crop dataset unavailable, using rule-based fallback", zap.Error(err))
		return FallbackCrop(profile), true
	}

	crop, err := Classify(profile, records)
	if errors.Is(err, ErrDataUnavailable) {
		s.logger.Warn("Crop dataset empty, using rule-based fallback")
		return FallbackCrop(profile), true
	}

	return crop, false
}

// FertilizerPlan produces the prioritized amendment plan for the given
// nutrient levels
func (s *Service) FertilizerPlan(nutrients NutrientLevels) []FertilizerAdvice {
	plan := PlanFertilizer(nutrients)

	s.logger.Info("Fertilizer plan generated",
		zap.Int("recommendations", len(plan)))

	return plan
}

// ListCropLabels returns the distinct crop labels present in the reference
// dataset, preserving dataset order
func (s *Service) ListCropLabels(ctx context.Context) ([]string, error) {
	records, err := s.repo.GetAllCropRecords(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list crops: %w", err)
	}

	seen := make(map[string]bool)
	var labels []string
	for _, r := range records {
		if !seen[r.Label] {
			seen[r.Label] = true
			labels = append(labels, r.Label)
		}
	}

	return labels, nil
}

// buildRecommendations renders the human-readable advice lines shown on the
// dashboard result card
func buildRecommendations(result *PredictionResult) []string {
	recs := []string{
		fmt.Sprintf("%s is the best match for the submitted soil conditions", result.Crop),
		fmt.Sprintf("Expected yield potential is %d%% of the optimal baseline", result.YieldIndex),
	}

	switch result.RiskLevel {
	case RiskHigh:
		recs = append(recs, "Growing conditions carry high risk; correct pH and temperature exposure before planting")
	case RiskMedium:
		recs = append(recs, "Growing conditions carry moderate risk; monitor soil moisture and pH through the season")
	default:
		recs = append(recs, "Growing conditions are favorable; follow the standard nutrient schedule")
	}

	return recs
}
