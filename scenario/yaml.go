package scenario

import (
	"fmt"
	"io"

	"github.com/osuushi/polyclip"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// The on-disk layout of a YAML scenario:
//
//	type: int
//	polygon: [[0,0],[3,0],[3,3],[0,3]]
//	points:
//	  - {name: center, at: [1,1]}
//	paths:
//	  - {name: zigzag, points: [[-4,3],[0,0],[1,0],[4,3],[1,5]]}
//	segments:
//	  - {name: overlap, a: [[0,0],[4,0]], b: [[2,0],[6,0]]}
type yamlScenario struct {
	Type    string      `yaml:"type"`
	Polygon [][]float64 `yaml:"polygon"`
	Points  []struct {
		Name string    `yaml:"name"`
		At   []float64 `yaml:"at"`
	} `yaml:"points"`
	Paths []struct {
		Name   string      `yaml:"name"`
		Points [][]float64 `yaml:"points"`
	} `yaml:"paths"`
	Segments []struct {
		Name string      `yaml:"name"`
		A    [][]float64 `yaml:"a"`
		B    [][]float64 `yaml:"b"`
	} `yaml:"segments"`
}

// LoadYAML reads a YAML scenario. Unknown keys are rejected.
func LoadYAML(r io.Reader) (s *Scenario, err error) {
	var doc yamlScenario
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if err == io.EOF {
			return nil, errors.New("empty scenario")
		}
		return nil, errors.Wrap(err, "decoding yaml")
	}

	defer func() {
		if recoveredErr := handleParsePanicRecover(recover()); recoveredErr != nil {
			s = nil
			err = recoveredErr
		}
	}()

	s = &Scenario{
		Type:    CoordType(doc.Type),
		Polygon: yamlPoints("polygon", doc.Polygon),
	}
	for i, p := range doc.Points {
		s.Points = append(s.Points, Query{Name: p.Name, At: yamlPoint(fmt.Sprintf("points[%d]", i), p.At)})
	}
	for i, p := range doc.Paths {
		s.Paths = append(s.Paths, Path{Name: p.Name, Points: yamlPoints(fmt.Sprintf("paths[%d]", i), p.Points)})
	}
	for i, seg := range doc.Segments {
		s.Segments = append(s.Segments, SegmentPair{
			Name: seg.Name,
			A:    yamlSegment(fmt.Sprintf("segments[%d].a", i), seg.A),
			B:    yamlSegment(fmt.Sprintf("segments[%d].b", i), seg.B),
		})
	}
	s.finish()
	return s, nil
}

func yamlPoint(where string, xy []float64) polyclip.Point[float64] {
	if len(xy) != 2 {
		fatalf("%s: want [x, y], got %d values", where, len(xy))
	}
	return polyclip.Point[float64]{X: xy[0], Y: xy[1]}
}

func yamlPoints(where string, coords [][]float64) []polyclip.Point[float64] {
	points := make([]polyclip.Point[float64], 0, len(coords))
	for i, xy := range coords {
		points = append(points, yamlPoint(fmt.Sprintf("%s[%d]", where, i), xy))
	}
	return points
}

func yamlSegment(where string, coords [][]float64) [2]polyclip.Point[float64] {
	if len(coords) != 2 {
		fatalf("%s: a segment needs 2 points, got %d", where, len(coords))
	}
	points := yamlPoints(where, coords)
	return [2]polyclip.Point[float64]{points[0], points[1]}
}
