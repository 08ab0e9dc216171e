// Command gpxingest converts a GPX recording into the six-column route data
// table consumed by routecompare, and optionally a JSON metrics summary.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/gpx-analysis/routesim/internal/gpx"
	"github.com/gpx-analysis/routesim/internal/route"
)

const version = "0.1.0"

// Config holds the CLI configuration
type Config struct {
	// Input GPX path and output table path
	InputPath  string
	OutputPath string

	// Optional JSON metrics output path
	MetricsPath string

	// Raw positional arguments, for validation
	Args []string

	// Show version
	ShowVersion bool
}

func main() {
	config := parseFlags()

	if config.ShowVersion {
		fmt.Printf("gpxingest version %s\n", version)
		os.Exit(0)
	}

	if err := validateConfig(config); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n\n", err)
		flag.Usage()
		os.Exit(1)
	}

	if err := run(config); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func parseFlags() *Config {
	config := &Config{}

	flag.StringVar(&config.MetricsPath, "metrics", "",
		"Write a JSON metrics summary to the given path")
	flag.BoolVar(&config.ShowVersion, "version", false,
		"Show version information")

	flag.Usage = printUsage

	flag.Parse()

	config.Args = flag.Args()
	if len(config.Args) == 2 {
		config.InputPath = config.Args[0]
		config.OutputPath = config.Args[1]
	}

	return config
}

func validateConfig(config *Config) error {
	if config.ShowVersion {
		return nil
	}

	if len(config.Args) != 2 {
		return fmt.Errorf("an input GPX file and an output path are required")
	}

	if _, err := os.Stat(config.InputPath); os.IsNotExist(err) {
		return fmt.Errorf("input file does not exist: %s", config.InputPath)
	}

	return nil
}

func run(config *Config) error {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	doc, err := gpx.ParseFile(config.InputPath)
	if err != nil {
		return err
	}

	samples := gpx.Derive(doc)
	if len(samples) == 0 {
		return &route.DataError{Source: config.InputPath}
	}
	logger.Info("derived route data",
		"track", doc.Name("Activity"), "samples", len(samples))

	if err := route.WriteCSV(config.OutputPath, samples); err != nil {
		return err
	}

	if config.MetricsPath != "" {
		metrics := gpx.Summarize(doc)
		b, err := json.MarshalIndent(metrics, "", "  ")
		if err != nil {
			return fmt.Errorf("error encoding metrics: %w", err)
		}
		if err := os.WriteFile(config.MetricsPath, append(b, '\n'), 0o644); err != nil {
			return fmt.Errorf("error writing metrics: %w", err)
		}
	}

	return nil
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `gpxingest - Derive a route data table from a GPX recording

Usage:
  gpxingest [options] input.gpx output_route_data.csv

Reads track points (or route points when the file has no tracks) and writes
one sample row per point: cumulative distance, elevation, grade, cumulative
elevation gain and coordinates. Gzip-compressed input (.gpx.gz) is accepted.

Options:
  --metrics=<path>
        Write a JSON metrics summary (distance, gain, loss, elevation
        range, km-effort) to the given path

  --version
        Show version information
`)
}
