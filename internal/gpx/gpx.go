// Package gpx parses GPX recordings and derives the per-point sample table
// consumed by the route comparison tooling.
package gpx

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
)

// Point is one recorded track point.
type Point struct {
	Latitude  float64 `xml:"lat,attr"`
	Longitude float64 `xml:"lon,attr"`
	Elevation float64 `xml:"ele"`
}

// Segment is one contiguous run of track points.
type Segment struct {
	Points []Point `xml:"trkpt"`
}

// Track is a named sequence of segments.
type Track struct {
	Name     string    `xml:"name"`
	Segments []Segment `xml:"trkseg"`
}

// Document is the parsed GPX file.
type Document struct {
	XMLName xml.Name `xml:"gpx"`
	Creator string   `xml:"creator,attr"`
	Tracks  []Track  `xml:"trk"`
	// Some devices export planned courses as routes instead of tracks.
	RoutePoints []Point `xml:"rte>rtept"`
}

// Parse reads a GPX document from r.
func Parse(r io.Reader) (*Document, error) {
	var doc Document
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("error parsing GPX: %w", err)
	}
	return &doc, nil
}

// ParseFile reads a GPX document from path. Files ending in .gz are
// decompressed transparently.
func ParseFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening GPX file: %w", err)
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

	return Parse(r)
}

// Name returns the first track's name, or fallback when the document carries
// no named track.
func (d *Document) Name(fallback string) string {
	for _, trk := range d.Tracks {
		if trk.Name != "" {
			return trk.Name
		}
	}
	return fallback
}

// Segments returns the point sequences of the document in traversal order.
// When the document has no tracks, its route points are returned as a single
// synthetic segment.
func (d *Document) Segments() [][]Point {
	var segments [][]Point
	for _, trk := range d.Tracks {
		for _, seg := range trk.Segments {
			if len(seg.Points) > 0 {
				segments = append(segments, seg.Points)
			}
		}
	}
	if len(segments) == 0 && len(d.RoutePoints) > 0 {
		segments = append(segments, d.RoutePoints)
	}
	return segments
}
