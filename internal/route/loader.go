package route

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"
)

// Column names expected in the route data table header.
const (
	ColDistanceKm      = "Distance_km"
	ColElevationM      = "Elevation_m"
	ColGradePercent    = "Grade_percent"
	ColCumulativeGainM = "Cumulative_Elevation_Gain_m"
	ColLatitude        = "Latitude"
	ColLongitude       = "Longitude"
)

var requiredColumns = []string{
	ColDistanceKm,
	ColElevationM,
	ColGradePercent,
	ColCumulativeGainM,
	ColLatitude,
	ColLongitude,
}

// LoadCSV reads a route data table from path and builds a Route. Files ending
// in .gz are decompressed transparently. It returns a SchemaError, ParseError
// or DataError when the table is malformed or empty.
func LoadCSV(path string) (*Route, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening route data: %w", err)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		zr, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("error decompressing %s: %w", path, err)
		}
		defer zr.Close()
		r = zr
	}

	return ReadRoute(r, path)
}

// ReadRoute parses a route data table from r. The source argument is used in
// error messages only.
func ReadRoute(r io.Reader, source string) (*Route, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, &DataError{Source: source}
	}
	if err != nil {
		return nil, fmt.Errorf("error reading header of %s: %w", source, err)
	}

	colIndex := make(map[string]int, len(header))
	for i, name := range header {
		colIndex[strings.TrimSpace(name)] = i
	}
	for _, name := range requiredColumns {
		if _, ok := colIndex[name]; !ok {
			return nil, &SchemaError{Source: source, Column: name}
		}
	}

	var samples []Sample
	line := 1
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading %s: %w", source, err)
		}
		line++

		cell := func(name string) (float64, error) {
			i := colIndex[name]
			if i >= len(record) {
				return 0, &ParseError{Source: source, Line: line, Column: name, Value: ""}
			}
			v, err := strconv.ParseFloat(strings.TrimSpace(record[i]), 64)
			if err != nil {
				return 0, &ParseError{Source: source, Line: line, Column: name, Value: record[i], Err: err}
			}
			return v, nil
		}

		var s Sample
		fields := []struct {
			name string
			dst  *float64
		}{
			{ColDistanceKm, &s.DistanceKm},
			{ColElevationM, &s.ElevationM},
			{ColGradePercent, &s.GradePercent},
			{ColCumulativeGainM, &s.CumulativeGainM},
			{ColLatitude, &s.Latitude},
			{ColLongitude, &s.Longitude},
		}
		for _, f := range fields {
			v, err := cell(f.name)
			if err != nil {
				return nil, err
			}
			*f.dst = v
		}
		samples = append(samples, s)
	}

	if len(samples) == 0 {
		return nil, &DataError{Source: source}
	}

	return &Route{Samples: samples, Source: source}, nil
}
