// Package features reduces a route's sample sequence to a fixed set of
// summary features used for similarity scoring and diagnostic display.
package features

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/gpx-analysis/routesim/internal/geo"
	"github.com/gpx-analysis/routesim/internal/route"
)

// Grade thresholds (percent) for the steep-share features.
const (
	steep10Threshold = 10.0
	steep20Threshold = 20.0
)

// Vector holds the summary features of one route. All values are metric.
type Vector struct {
	TotalDistanceKm float64
	TotalElevGainM  float64
	KmEffort        float64
	MaxElevM        float64
	MinElevM        float64
	ElevRangeM      float64
	AvgGrade        float64
	StdGrade        float64
	Steep10Share    float64
	Steep20Share    float64
	Sinuosity       float64
}

// Field is one named feature value, used for ordered display.
type Field struct {
	Name  string
	Value float64
}

// Field names, in canonical display order.
const (
	TotalDistanceKm = "total_distance_km"
	TotalElevGainM  = "total_elev_gain_m"
	KmEffort        = "km_effort"
	MaxElevM        = "max_elev_m"
	MinElevM        = "min_elev_m"
	ElevRangeM      = "elev_range_m"
	AvgGrade        = "avg_grade"
	StdGrade        = "std_grade"
	Steep10Share    = "steep10_share"
	Steep20Share    = "steep20_share"
	Sinuosity       = "sinuosity"
)

// Fields returns all features as (name, value) pairs in canonical order.
func (v Vector) Fields() []Field {
	return []Field{
		{TotalDistanceKm, v.TotalDistanceKm},
		{TotalElevGainM, v.TotalElevGainM},
		{KmEffort, v.KmEffort},
		{MaxElevM, v.MaxElevM},
		{MinElevM, v.MinElevM},
		{ElevRangeM, v.ElevRangeM},
		{AvgGrade, v.AvgGrade},
		{StdGrade, v.StdGrade},
		{Steep10Share, v.Steep10Share},
		{Steep20Share, v.Steep20Share},
		{Sinuosity, v.Sinuosity},
	}
}

// ByName returns the feature value for a canonical field name.
func (v Vector) ByName(name string) (float64, bool) {
	for _, f := range v.Fields() {
		if f.Name == name {
			return f.Value, true
		}
	}
	return 0, false
}

// Extract computes the feature vector for a route. It returns a DataError
// when the route has no samples.
func Extract(r *route.Route) (Vector, error) {
	if r == nil || r.Len() == 0 {
		source := ""
		if r != nil {
			source = r.Source
		}
		return Vector{}, &route.DataError{Source: source}
	}

	var v Vector
	first := r.First()
	v.MaxElevM = first.ElevationM
	v.MinElevM = first.ElevationM

	var grades []float64
	for _, s := range r.Samples {
		if s.DistanceKm > v.TotalDistanceKm {
			v.TotalDistanceKm = s.DistanceKm
		}
		if s.CumulativeGainM > v.TotalElevGainM {
			v.TotalElevGainM = s.CumulativeGainM
		}
		if s.ElevationM > v.MaxElevM {
			v.MaxElevM = s.ElevationM
		}
		if s.ElevationM < v.MinElevM {
			v.MinElevM = s.ElevationM
		}
		// Undefined slope (first point of a segment) is excluded from
		// grade statistics rather than propagated through them.
		if !math.IsNaN(s.GradePercent) {
			grades = append(grades, s.GradePercent)
		}
	}
	v.ElevRangeM = v.MaxElevM - v.MinElevM

	if len(grades) > 0 {
		v.AvgGrade = stat.Mean(grades, nil)
		v.StdGrade = stat.PopStdDev(grades, nil)
	}

	var uphill, steep10, steep20 int
	for _, g := range grades {
		if g <= 0 {
			continue
		}
		uphill++
		if g >= steep10Threshold {
			steep10++
		}
		if g >= steep20Threshold {
			steep20++
		}
	}
	if uphill > 0 {
		v.Steep10Share = float64(steep10) / float64(uphill)
		v.Steep20Share = float64(steep20) / float64(uphill)
	}

	last := r.Last()
	beelineKm := geo.Haversine(first.Latitude, first.Longitude, last.Latitude, last.Longitude)
	if beelineKm > 0 {
		v.Sinuosity = v.TotalDistanceKm / beelineKm
	} else {
		// Loop routes end where they start; a zero beeline is not an error.
		v.Sinuosity = 1.0
	}

	v.KmEffort = v.TotalDistanceKm + v.TotalElevGainM/100.0

	return v, nil
}
