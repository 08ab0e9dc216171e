package route

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
)

// WriteSamples writes samples to w as a canonical route data table.
func WriteSamples(w io.Writer, samples []Sample) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(requiredColumns); err != nil {
		return fmt.Errorf("error writing header: %w", err)
	}
	for _, s := range samples {
		record := []string{
			formatCell(s.DistanceKm),
			formatCell(s.ElevationM),
			formatCell(s.GradePercent),
			formatCell(s.CumulativeGainM),
			formatCell(s.Latitude),
			formatCell(s.Longitude),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("error writing sample row: %w", err)
		}
	}
	cw.Flush()

	return cw.Error()
}

// WriteCSV writes samples to a route data table at path.
func WriteCSV(path string, samples []Sample) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating route data file: %w", err)
	}

	if err := WriteSamples(f, samples); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func formatCell(v float64) string {
	// Undefined slope round-trips as textual "nan".
	if math.IsNaN(v) {
		return "nan"
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}
