package advisory

import (
	"errors"
	"math"
)

// ErrDataUnavailable indicates the crop reference dataset could not be obtained
var ErrDataUnavailable = errors.New("crop reference dataset unavailable")

// Classify returns the label of the dataset record closest to the given profile
// in 7-dimensional Euclidean space. Distances are computed on raw values without
// normalization, so high-magnitude dimensions (rainfall) dominate low-magnitude
// ones (pH). That matching behavior is load-bearing for existing users and must
// not change without a dataset migration.
//
// Ties keep the first record encountered, so the result is deterministic for a
// fixed dataset order.
func Classify(profile SoilProfile, dataset []CropRecord) (string, error) {
	if len(dataset) == 0 {
		return "", ErrDataUnavailable
	}

	best := dataset[0].Label
	bestDist := distance(profile, dataset[0])

	for _, record := range dataset[1:] {
		if d := distance(profile, record); d < bestDist {
			best = record.Label
			bestDist = d
		}
	}

	return best, nil
}

// distance computes the unnormalized Euclidean distance between a query profile
// and a reference record across all seven soil dimensions
func distance(p SoilProfile, r CropRecord) float64 {
	dt := p.Temperature - r.Temperature
	dh := p.Humidity - r.Humidity
	dph := p.PH - r.PH
	dr := p.Rainfall - r.Rainfall
	dn := p.Nitrogen - r.Nitrogen
	dp := p.Phosphorus - r.Phosphorus
	dk := p.Potassium - r.Potassium

	return math.Sqrt(dt*dt + dh*dh + dph*dph + dr*dr + dn*dn + dp*dp + dk*dk)
}

// FallbackCrop picks a crop from a fixed threshold cascade when the reference
// dataset cannot be retrieved. The cascade is intentionally coarse; it exists so
// a dataset outage degrades to generic advice instead of an error page.
func FallbackCrop(profile SoilProfile) string {
	switch {
	case profile.Rainfall > 200 && profile.Humidity > 70 && profile.Temperature >= 20:
		return "rice"
	case profile.Nitrogen > 80 && profile.Temperature >= 18 && profile.Temperature <= 30:
		return "maize"
	case profile.Potassium > 45 && profile.Temperature > 25:
		return "cotton"
	case profile.Temperature < 25 && profile.Rainfall < 100:
		return "wheat"
	case profile.Phosphorus > 60 && profile.Humidity > 60:
		return "banana"
	default:
		return "maize"
	}
}
