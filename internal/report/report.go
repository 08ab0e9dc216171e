// Package report builds the optional JSON comparison report emitted by the
// routecompare driver.
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/twpayne/go-polyline"

	"github.com/gpx-analysis/routesim/internal/features"
	"github.com/gpx-analysis/routesim/internal/route"
	"github.com/gpx-analysis/routesim/internal/scoring"
)

// Report is the serialized outcome of one comparison run.
type Report struct {
	ID          string       `json:"id"`
	GeneratedAt time.Time    `json:"generated_at"`
	Routes      [2]RouteInfo `json:"routes"`
	Score       float64      `json:"score"`
	Verdict     string       `json:"verdict"`
}

// RouteInfo describes one side of the comparison.
type RouteInfo struct {
	Source   string   `json:"source"`
	Points   int      `json:"points"`
	Geometry string   `json:"geometry"` // Google encoded polyline of the route
	Features Features `json:"features"`
}

// Features mirrors features.Vector with the canonical JSON field names.
type Features struct {
	TotalDistanceKm float64 `json:"total_distance_km"`
	TotalElevGainM  float64 `json:"total_elev_gain_m"`
	KmEffort        float64 `json:"km_effort"`
	MaxElevM        float64 `json:"max_elev_m"`
	MinElevM        float64 `json:"min_elev_m"`
	ElevRangeM      float64 `json:"elev_range_m"`
	AvgGrade        float64 `json:"avg_grade"`
	StdGrade        float64 `json:"std_grade"`
	Steep10Share    float64 `json:"steep10_share"`
	Steep20Share    float64 `json:"steep20_share"`
	Sinuosity       float64 `json:"sinuosity"`
}

func newFeatures(v features.Vector) Features {
	return Features{
		TotalDistanceKm: v.TotalDistanceKm,
		TotalElevGainM:  v.TotalElevGainM,
		KmEffort:        v.KmEffort,
		MaxElevM:        v.MaxElevM,
		MinElevM:        v.MinElevM,
		ElevRangeM:      v.ElevRangeM,
		AvgGrade:        v.AvgGrade,
		StdGrade:        v.StdGrade,
		Steep10Share:    v.Steep10Share,
		Steep20Share:    v.Steep20Share,
		Sinuosity:       v.Sinuosity,
	}
}

func newRouteInfo(r *route.Route, v features.Vector) RouteInfo {
	return RouteInfo{
		Source:   r.Source,
		Points:   r.Len(),
		Geometry: string(polyline.EncodeCoords(r.Coords())),
		Features: newFeatures(v),
	}
}

// New builds a report for one comparison run.
func New(routeA, routeB *route.Route, vecA, vecB features.Vector, score float64) *Report {
	return &Report{
		ID:          uuid.NewString(),
		GeneratedAt: time.Now().UTC(),
		Routes:      [2]RouteInfo{newRouteInfo(routeA, vecA), newRouteInfo(routeB, vecB)},
		Score:       score,
		Verdict:     scoring.Verdict(score),
	}
}

// WriteFile writes the report to path as indented JSON.
func (r *Report) WriteFile(path string) error {
	b, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("error encoding report: %w", err)
	}
	if err := os.WriteFile(path, append(b, '\n'), 0o644); err != nil {
		return fmt.Errorf("error writing report: %w", err)
	}
	return nil
}
