// Package scoring combines two route feature vectors into a single bounded
// similarity score using a fixed weighted rubric.
package scoring

import (
	"math"

	"github.com/gpx-analysis/routesim/internal/features"
)

// relCap is the relative difference at which two values are considered
// completely dissimilar (200% of their average).
const relCap = 2.0

// denomFloor guards the relative difference against near-zero averages.
const denomFloor = 1e-9

// weight pairs a feature name with its share of the total score.
type weight struct {
	Feature string
	Weight  float64
}

// rubric is the fixed, ordered scoring rubric. Weights sum to 1.0. The
// remaining extracted features (max/min elevation, grade stddev, steep20
// share) are diagnostic only and carry no weight.
var rubric = []weight{
	{features.TotalDistanceKm, 0.25},
	{features.TotalElevGainM, 0.25},
	{features.KmEffort, 0.15},
	{features.ElevRangeM, 0.10},
	{features.AvgGrade, 0.10},
	{features.Steep10Share, 0.10},
	{features.Sinuosity, 0.05},
}

// Component returns the similarity of two scalar feature values in [0,1],
// based on their relative difference capped at relCap. Identical values score
// 1; values differing by at least 200% of their average score 0.
func Component(a, b float64) float64 {
	if a == 0 && b == 0 {
		return 1.0
	}

	denom := math.Max((a+b)/2.0, denomFloor)
	rel := math.Abs(a-b) / denom
	if rel > relCap {
		rel = relCap
	}

	sim := 1.0 - rel/relCap
	return math.Max(0.0, math.Min(1.0, sim))
}

// Score returns a 0-100 similarity score between two feature vectors,
// rounded to two decimal places.
func Score(a, b features.Vector) float64 {
	var total float64
	for _, w := range rubric {
		va, _ := a.ByName(w.Feature)
		vb, _ := b.ByName(w.Feature)
		total += w.Weight * Component(va, vb)
	}

	// Half-to-even rounding, matching the banker's rounding of the
	// upstream tooling that consumers may compare against.
	return math.RoundToEven(total*100.0*100.0) / 100.0
}

// Verdict maps a score to a human-readable similarity band.
func Verdict(score float64) string {
	switch {
	case score >= 90:
		return "almost identical type of route"
	case score >= 75:
		return "very similar overall difficulty and profile"
	case score >= 60:
		return "moderately similar; same category but different feel"
	case score >= 40:
		return "somewhat related but clearly different"
	default:
		return "very different routes"
	}
}
