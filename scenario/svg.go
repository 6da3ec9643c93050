package scenario

import (
	"io"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/osuushi/polyclip"
	"github.com/pkg/errors"
)

// This is not a full svg parser. It reads the handful of elements a scenario
// drawn in an editor uses:
//
//   - the first <polygon> is the polygon
//   - every <circle> is a query point at its center
//   - every <polyline> is a path to clip
//   - <line> elements are taken in consecutive pairs as segments to intersect
//
// Element ids become case names. Coordinates are kept as written, so y grows
// downward as it does on screen.

// LoadSVG reads a scenario drawn as an SVG document.
func LoadSVG(r io.Reader) (s *Scenario, err error) {
	root, err := svgparser.Parse(r, true)
	if err != nil {
		return nil, errors.Wrap(err, "parsing svg")
	}

	defer func() {
		if recoveredErr := handleParsePanicRecover(recover()); recoveredErr != nil {
			s = nil
			err = recoveredErr
		}
	}()

	s = &Scenario{Type: CoordType(root.Attributes["data-type"])}

	polygons := root.FindAll("polygon")
	if len(polygons) == 0 {
		fatalf("no polygon element found")
	}
	if len(polygons) > 1 {
		polyclip.Logger().Debug("scenario: ignoring extra svg polygons", "count", len(polygons)-1)
	}
	s.Polygon = parseSVGPoints(polygons[0].Attributes["points"])

	for _, circle := range root.FindAll("circle") {
		s.Points = append(s.Points, Query{
			Name: circle.Attributes["id"],
			At: polyclip.Point[float64]{
				X: parseSVGNumber(circle.Attributes["cx"]),
				Y: parseSVGNumber(circle.Attributes["cy"]),
			},
		})
	}

	for _, polyline := range root.FindAll("polyline") {
		s.Paths = append(s.Paths, Path{
			Name:   polyline.Attributes["id"],
			Points: parseSVGPoints(polyline.Attributes["points"]),
		})
	}

	lines := root.FindAll("line")
	if len(lines)%2 != 0 {
		fatalf("segments come in pairs, found %d line elements", len(lines))
	}
	for i := 0; i < len(lines); i += 2 {
		name := lines[i].Attributes["id"]
		if name == "" {
			name = lines[i+1].Attributes["id"]
		}
		s.Segments = append(s.Segments, SegmentPair{
			Name: name,
			A:    parseSVGLine(lines[i]),
			B:    parseSVGLine(lines[i+1]),
		})
	}

	s.finish()
	return s, nil
}

func parseSVGLine(el *svgparser.Element) [2]polyclip.Point[float64] {
	return [2]polyclip.Point[float64]{
		{X: parseSVGNumber(el.Attributes["x1"]), Y: parseSVGNumber(el.Attributes["y1"])},
		{X: parseSVGNumber(el.Attributes["x2"]), Y: parseSVGNumber(el.Attributes["y2"])},
	}
}

// Parses a points attribute of the form "x1,y1 x2,y2 ...".
func parseSVGPoints(attr string) []polyclip.Point[float64] {
	var points []polyclip.Point[float64]
	for _, pointString := range strings.Fields(attr) {
		parts := strings.Split(pointString, ",")
		if len(parts) != 2 {
			fatalf("invalid point string %q", pointString)
		}
		points = append(points, polyclip.Point[float64]{
			X: parseSVGNumber(parts[0]),
			Y: parseSVGNumber(parts[1]),
		})
	}
	return points
}

func parseSVGNumber(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		fatalf("invalid number %q", s)
	}
	return v
}
