// Package scenario loads sets of polyclip queries from files and runs them.
//
// A scenario is one polygon plus any number of query points, paths to clip
// and segment pairs to intersect. Coordinates are held as float64 and
// converted to the requested coordinate type when the scenario is run.
package scenario

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/osuushi/polyclip"
	"github.com/osuushi/polyclip/dbg"
	"github.com/pkg/errors"
)

// CoordType selects the coordinate type a scenario is run with.
type CoordType string

const (
	Unspecified CoordType = ""
	Int         CoordType = "int"
	Float       CoordType = "float"
)

type Scenario struct {
	Type     CoordType
	Polygon  []polyclip.Point[float64]
	Points   []Query
	Paths    []Path
	Segments []SegmentPair
}

// Query is a point to classify against the polygon.
type Query struct {
	Name string
	At   polyclip.Point[float64]
}

// Path is a polyline to clip against the polygon.
type Path struct {
	Name   string
	Points []polyclip.Point[float64]
}

// SegmentPair is two segments to intersect with each other.
type SegmentPair struct {
	Name string
	A, B [2]polyclip.Point[float64]
}

// Format is a scenario file format.
type Format string

const (
	Auto    Format = "auto"
	YAML    Format = "yaml"
	GeoJSON Format = "geojson"
	SVG     Format = "svg"
	Text    Format = "text"
)

// Formats lists every format accepted by Load, in the order they are documented.
var Formats = []Format{Auto, YAML, GeoJSON, SVG, Text}

// DetectFormat picks a format from a file extension. Unknown extensions are
// read as text.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML
	case ".geojson", ".json":
		return GeoJSON
	case ".svg":
		return SVG
	}
	return Text
}

// Load reads a scenario in the given format. Auto is not accepted here since
// there is no file name to detect it from.
func Load(r io.Reader, format Format) (*Scenario, error) {
	switch format {
	case YAML:
		return LoadYAML(r)
	case GeoJSON:
		return LoadGeoJSON(r)
	case SVG:
		return LoadSVG(r)
	case Text:
		return LoadText(r)
	}
	return nil, errors.Errorf("unsupported scenario format %q", format)
}

// LoadFile opens and reads a scenario file. With format Auto the format is
// detected from the extension.
func LoadFile(path string, format Format) (*Scenario, error) {
	if format == Auto || format == "" {
		format = DetectFormat(path)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening scenario")
	}
	defer f.Close()

	s, err := Load(f, format)
	if err != nil {
		return nil, errors.Wrapf(err, "loading %s", path)
	}
	return s, nil
}

type caseKey struct {
	kind  string
	index int
}

// finish is shared by every loader: it checks the result and gives every
// unnamed case a readable name.
func (s *Scenario) finish() {
	switch s.Type {
	case Unspecified, Int, Float:
	default:
		fatalf("unknown coordinate type %q", s.Type)
	}
	if len(s.Polygon) == 0 {
		fatalf("scenario has no polygon")
	}

	for i := range s.Points {
		if s.Points[i].Name == "" {
			s.Points[i].Name = dbg.Name(caseKey{"point", i})
		}
	}
	for i := range s.Paths {
		if s.Paths[i].Name == "" {
			s.Paths[i].Name = dbg.Name(caseKey{"path", i})
		}
	}
	for i := range s.Segments {
		if s.Segments[i].Name == "" {
			s.Segments[i].Name = dbg.Name(caseKey{"segments", i})
		}
	}
}
