package features

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gpx-analysis/routesim/internal/route"
)

func twoPointRoute() *route.Route {
	return &route.Route{
		Source: "test",
		Samples: []route.Sample{
			{DistanceKm: 0, ElevationM: 100, GradePercent: 0, CumulativeGainM: 0, Latitude: 45.0, Longitude: 9.0},
			{DistanceKm: 1.0, ElevationM: 200, GradePercent: 10.0, CumulativeGainM: 100, Latitude: 45.01, Longitude: 9.0},
		},
	}
}

func TestExtract(t *testing.T) {
	v, err := Extract(twoPointRoute())
	require.NoError(t, err)

	assert.Equal(t, 1.0, v.TotalDistanceKm)
	assert.Equal(t, 100.0, v.TotalElevGainM)
	assert.Equal(t, 2.0, v.KmEffort)
	assert.Equal(t, 200.0, v.MaxElevM)
	assert.Equal(t, 100.0, v.MinElevM)
	assert.Equal(t, 100.0, v.ElevRangeM)
	assert.Equal(t, 5.0, v.AvgGrade)
	assert.Equal(t, 5.0, v.StdGrade)
	assert.Equal(t, 1.0, v.Steep10Share)
	assert.Equal(t, 0.0, v.Steep20Share)
	// 45.0,9.0 to 45.01,9.0 is ~1.11 km beeline for 1 km traveled.
	assert.InDelta(t, 0.9, v.Sinuosity, 0.01)
}

func TestExtractEmptyRoute(t *testing.T) {
	_, err := Extract(&route.Route{Source: "empty"})
	require.Error(t, err)

	var dataErr *route.DataError
	assert.True(t, errors.As(err, &dataErr))
}

func TestExtractSinglePointRoute(t *testing.T) {
	r := &route.Route{
		Source: "single",
		Samples: []route.Sample{
			{DistanceKm: 0, ElevationM: 500, GradePercent: math.NaN(), CumulativeGainM: 0, Latitude: 46.0, Longitude: 8.0},
		},
	}

	v, err := Extract(r)
	require.NoError(t, err)

	// Zero beeline must fall back to sinuosity 1.0, not divide by zero.
	assert.Equal(t, 1.0, v.Sinuosity)
	assert.Equal(t, 0.0, v.TotalDistanceKm)
	assert.Equal(t, 0.0, v.AvgGrade)
	assert.Equal(t, 0.0, v.StdGrade)
	assert.Equal(t, 0.0, v.ElevRangeM)
}

func TestExtractLoopRoute(t *testing.T) {
	r := &route.Route{
		Source: "loop",
		Samples: []route.Sample{
			{DistanceKm: 0, ElevationM: 100, GradePercent: math.NaN(), CumulativeGainM: 0, Latitude: 45.0, Longitude: 9.0},
			{DistanceKm: 2.5, ElevationM: 150, GradePercent: 4.0, CumulativeGainM: 50, Latitude: 45.01, Longitude: 9.01},
			{DistanceKm: 5.0, ElevationM: 100, GradePercent: -4.0, CumulativeGainM: 50, Latitude: 45.0, Longitude: 9.0},
		},
	}

	v, err := Extract(r)
	require.NoError(t, err)
	assert.Equal(t, 1.0, v.Sinuosity)
	assert.Equal(t, 5.0, v.TotalDistanceKm)
	assert.Equal(t, 50.0, v.TotalElevGainM)
}

func TestExtractNaNGradesExcluded(t *testing.T) {
	r := &route.Route{
		Source: "nan-grades",
		Samples: []route.Sample{
			{DistanceKm: 0, ElevationM: 0, GradePercent: math.NaN(), Latitude: 45.0, Longitude: 9.0},
			{DistanceKm: 1, ElevationM: 120, GradePercent: 12.0, CumulativeGainM: 120, Latitude: 45.005, Longitude: 9.0},
			{DistanceKm: 2, ElevationM: 360, GradePercent: 24.0, CumulativeGainM: 360, Latitude: 45.015, Longitude: 9.0},
		},
	}

	v, err := Extract(r)
	require.NoError(t, err)

	assert.Equal(t, 18.0, v.AvgGrade)
	assert.Equal(t, 6.0, v.StdGrade)
	assert.Equal(t, 1.0, v.Steep10Share)
	assert.Equal(t, 0.5, v.Steep20Share)
	assert.False(t, math.IsNaN(v.AvgGrade))
}

func TestExtractAllGradesNaN(t *testing.T) {
	r := &route.Route{
		Source: "undefined-slope",
		Samples: []route.Sample{
			{DistanceKm: 0, ElevationM: 100, GradePercent: math.NaN(), Latitude: 45.0, Longitude: 9.0},
			{DistanceKm: 1, ElevationM: 100, GradePercent: math.NaN(), Latitude: 45.01, Longitude: 9.0},
		},
	}

	v, err := Extract(r)
	require.NoError(t, err)
	assert.Equal(t, 0.0, v.AvgGrade)
	assert.Equal(t, 0.0, v.StdGrade)
	assert.Equal(t, 0.0, v.Steep10Share)
	assert.Equal(t, 0.0, v.Steep20Share)
}

func TestExtractDownhillOnly(t *testing.T) {
	r := &route.Route{
		Source: "downhill",
		Samples: []route.Sample{
			{DistanceKm: 0, ElevationM: 1000, GradePercent: math.NaN(), Latitude: 45.0, Longitude: 9.0},
			{DistanceKm: 3, ElevationM: 700, GradePercent: -10.0, CumulativeGainM: 0, Latitude: 45.02, Longitude: 9.0},
		},
	}

	v, err := Extract(r)
	require.NoError(t, err)

	// No uphill samples: steep shares stay zero instead of dividing by zero.
	assert.Equal(t, 0.0, v.Steep10Share)
	assert.Equal(t, 0.0, v.Steep20Share)
	assert.Equal(t, -10.0, v.AvgGrade)
}

func TestVectorFieldsOrder(t *testing.T) {
	v := Vector{TotalDistanceKm: 1, TotalElevGainM: 2, KmEffort: 3, MaxElevM: 4, MinElevM: 5,
		ElevRangeM: 6, AvgGrade: 7, StdGrade: 8, Steep10Share: 9, Steep20Share: 10, Sinuosity: 11}

	fields := v.Fields()
	require.Len(t, fields, 11)

	expected := []string{
		TotalDistanceKm, TotalElevGainM, KmEffort, MaxElevM, MinElevM,
		ElevRangeM, AvgGrade, StdGrade, Steep10Share, Steep20Share, Sinuosity,
	}
	for i, f := range fields {
		assert.Equal(t, expected[i], f.Name)
		assert.Equal(t, float64(i+1), f.Value)
	}
}

func TestVectorByName(t *testing.T) {
	v := Vector{KmEffort: 42.0}

	val, ok := v.ByName(KmEffort)
	assert.True(t, ok)
	assert.Equal(t, 42.0, val)

	_, ok = v.ByName("no_such_feature")
	assert.False(t, ok)
}
