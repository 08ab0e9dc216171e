package gpx

import (
	"math"

	"github.com/gpx-analysis/routesim/internal/geo"
	"github.com/gpx-analysis/routesim/internal/route"
)

// Metrics summarizes a derived route for the ingestion report.
type Metrics struct {
	TotalDistanceKm float64 `json:"total_distance_km"`
	ElevationGainM  float64 `json:"elevation_gain_m"`
	ElevationLossM  float64 `json:"elevation_loss_m"`
	MaxElevationM   float64 `json:"max_elevation_m"`
	MinElevationM   float64 `json:"min_elevation_m"`
	KmEffort        float64 `json:"km_effort"`
}

// Derive walks the document's points in traversal order and computes the
// per-point samples: cumulative distance, instantaneous grade, and cumulative
// elevation gain. Grade is NaN for the first point of each segment and for
// zero-length legs, where no slope is defined.
func Derive(d *Document) []route.Sample {
	var samples []route.Sample
	var totalKm, gainM float64

	for _, seg := range d.Segments() {
		for i, p := range seg {
			s := route.Sample{
				ElevationM:   p.Elevation,
				GradePercent: math.NaN(),
				Latitude:     p.Latitude,
				Longitude:    p.Longitude,
			}
			if i > 0 {
				prev := seg[i-1]
				legKm := geo.Haversine(prev.Latitude, prev.Longitude, p.Latitude, p.Longitude)
				totalKm += legKm

				elevDiff := p.Elevation - prev.Elevation
				if elevDiff > 0 {
					gainM += elevDiff
				}
				if legKm > 0 {
					s.GradePercent = elevDiff / (legKm * 1000.0) * 100.0
				}
			}
			s.DistanceKm = totalKm
			s.CumulativeGainM = gainM
			samples = append(samples, s)
		}
	}

	return samples
}

// Summarize computes the ingestion metrics for a document.
func Summarize(d *Document) Metrics {
	segments := d.Segments()
	if len(segments) == 0 {
		return Metrics{}
	}

	first := segments[0][0]
	m := Metrics{
		MaxElevationM: first.Elevation,
		MinElevationM: first.Elevation,
	}
	for _, seg := range segments {
		for i, p := range seg {
			if p.Elevation > m.MaxElevationM {
				m.MaxElevationM = p.Elevation
			}
			if p.Elevation < m.MinElevationM {
				m.MinElevationM = p.Elevation
			}
			if i == 0 {
				continue
			}
			prev := seg[i-1]
			m.TotalDistanceKm += geo.Haversine(prev.Latitude, prev.Longitude, p.Latitude, p.Longitude)
			elevDiff := p.Elevation - prev.Elevation
			if elevDiff > 0 {
				m.ElevationGainM += elevDiff
			} else {
				m.ElevationLossM -= elevDiff
			}
		}
	}
	m.KmEffort = m.TotalDistanceKm + m.ElevationGainM/100.0

	return m
}
