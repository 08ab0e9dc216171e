// Package route defines the per-point sample model for a recorded track and
// loads it from the CSV tables produced by the ingestion pipeline.
package route

// Sample represents one measured point of a route, in traversal order.
type Sample struct {
	DistanceKm      float64 // cumulative distance from route start
	ElevationM      float64
	GradePercent    float64 // NaN when no prior point exists to compute slope from
	CumulativeGainM float64 // running sum of positive elevation deltas
	Latitude        float64
	Longitude       float64
}

// Route is an ordered, non-empty sequence of samples. It is built once per
// comparison and not modified afterwards.
type Route struct {
	Samples []Sample
	Source  string // file path the route was loaded from
}

// Len returns the number of samples in the route.
func (r *Route) Len() int {
	return len(r.Samples)
}

// First returns the first sample of the route.
func (r *Route) First() Sample {
	return r.Samples[0]
}

// Last returns the last sample of the route.
func (r *Route) Last() Sample {
	return r.Samples[len(r.Samples)-1]
}

// Coords returns the route geometry as [lat, lon] pairs.
func (r *Route) Coords() [][]float64 {
	coords := make([][]float64, len(r.Samples))
	for i, s := range r.Samples {
		coords[i] = []float64{s.Latitude, s.Longitude}
	}
	return coords
}
