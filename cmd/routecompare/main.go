// Command routecompare scores how similar two recorded routes are, given
// their per-point sample tables, and prints both feature vectors alongside a
// 0-100 similarity score.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/davecgh/go-spew/spew"

	"github.com/gpx-analysis/routesim/internal/features"
	"github.com/gpx-analysis/routesim/internal/report"
	"github.com/gpx-analysis/routesim/internal/route"
	"github.com/gpx-analysis/routesim/internal/scoring"
)

const version = "0.1.0"

// Config holds the CLI configuration
type Config struct {
	// Input paths, in comparison order
	RouteAPath string
	RouteBPath string

	// Raw positional arguments, for validation
	Args []string

	// Optional JSON report output path
	ReportPath string

	// Dump parsed routes to stderr
	Debug bool

	// Show version
	ShowVersion bool
}

func main() {
	config := parseFlags()

	if config.ShowVersion {
		fmt.Printf("routecompare version %s\n", version)
		os.Exit(0)
	}

	if err := validateConfig(config); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n\n", err)
		flag.Usage()
		os.Exit(1)
	}

	if err := run(config, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func parseFlags() *Config {
	config := &Config{}

	flag.StringVar(&config.ReportPath, "json", "",
		"Write a JSON comparison report to the given path")
	flag.BoolVar(&config.Debug, "debug", false,
		"Dump parsed route data to stderr")
	flag.BoolVar(&config.ShowVersion, "version", false,
		"Show version information")

	flag.Usage = printUsage

	flag.Parse()

	config.Args = flag.Args()
	if len(config.Args) == 2 {
		config.RouteAPath = config.Args[0]
		config.RouteBPath = config.Args[1]
	}

	return config
}

func validateConfig(config *Config) error {
	if config.ShowVersion {
		return nil
	}

	if len(config.Args) != 2 {
		return fmt.Errorf("exactly 2 route data files are required")
	}

	for _, path := range []string{config.RouteAPath, config.RouteBPath} {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return fmt.Errorf("input file does not exist: %s", path)
		}
	}

	return nil
}

func run(config *Config, out io.Writer) error {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	routeA, vecA, err := loadAndExtract(config.RouteAPath, config.Debug, logger)
	if err != nil {
		return err
	}
	routeB, vecB, err := loadAndExtract(config.RouteBPath, config.Debug, logger)
	if err != nil {
		return err
	}

	score := scoring.Score(vecA, vecB)

	printFeatures(out, "Route 1 features:", vecA)
	fmt.Fprintln(out)
	printFeatures(out, "Route 2 features:", vecB)
	fmt.Fprintf(out, "\nSimilarity score: %.2f/100\n", score)

	if config.ReportPath != "" {
		rep := report.New(routeA, routeB, vecA, vecB, score)
		if err := rep.WriteFile(config.ReportPath); err != nil {
			return err
		}
		logger.Info("wrote comparison report", "path", config.ReportPath, "id", rep.ID)
	}

	return nil
}

func loadAndExtract(path string, debug bool, logger *slog.Logger) (*route.Route, features.Vector, error) {
	r, err := route.LoadCSV(path)
	if err != nil {
		return nil, features.Vector{}, err
	}
	logger.Debug("loaded route", "path", path, "samples", r.Len())

	if debug {
		fmt.Fprintf(os.Stderr, "%s: %d samples\n", path, r.Len())
		spew.Fdump(os.Stderr, r.First(), r.Last())
	}

	vec, err := features.Extract(r)
	if err != nil {
		return nil, features.Vector{}, err
	}
	return r, vec, nil
}

func printFeatures(out io.Writer, header string, v features.Vector) {
	fmt.Fprintln(out, header)
	for _, f := range v.Fields() {
		fmt.Fprintf(out, "  %s: %s\n", f.Name, strconv.FormatFloat(f.Value, 'g', -1, 64))
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `routecompare - Score the similarity of two recorded routes

Usage:
  routecompare [options] route1_route_data.csv route2_route_data.csv

Input files are the six-column route data tables produced by gpxingest
(Distance_km, Elevation_m, Grade_percent, Cumulative_Elevation_Gain_m,
Latitude, Longitude). Gzip-compressed tables (.csv.gz) are accepted.

Options:
  --json=<path>
        Write a JSON comparison report (feature vectors, encoded route
        geometry, score and verdict) to the given path

  --debug
        Dump parsed route data to stderr

  --version
        Show version information
`)
}
