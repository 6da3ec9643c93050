package scenario

import (
	"io"

	"github.com/osuushi/polyclip"
	"github.com/osuushi/polyclip/adapt"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/pkg/errors"
)

// A GeoJSON scenario is a FeatureCollection. The Polygon feature is the
// polygon (only its outer ring is used), Point features are queries,
// LineString features are paths and a MultiLineString of two 2-point lines is
// a segment pair. The "name" property names a case, and a "coordType"
// property on the polygon feature sets the coordinate type.

// LoadGeoJSON reads a scenario from a GeoJSON FeatureCollection.
func LoadGeoJSON(r io.Reader) (s *Scenario, err error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "reading geojson")
	}
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, errors.Wrap(err, "decoding geojson")
	}

	defer func() {
		if recoveredErr := handleParsePanicRecover(recover()); recoveredErr != nil {
			s = nil
			err = recoveredErr
		}
	}()

	s = &Scenario{}
	for i, f := range fc.Features {
		name := f.Properties.MustString("name", "")
		switch g := f.Geometry.(type) {
		case orb.Polygon:
			if s.Polygon != nil {
				fatalf("feature %d: only one polygon is allowed", i)
			}
			if len(g) == 0 {
				fatalf("feature %d: polygon has no rings", i)
			}
			s.Polygon = adapt.FromOrbRing(g[0]).Points
			s.Type = CoordType(f.Properties.MustString("coordType", ""))
		case orb.Point:
			s.Points = append(s.Points, Query{Name: name, At: adapt.FromOrb(g)})
		case orb.LineString:
			s.Paths = append(s.Paths, Path{Name: name, Points: adapt.FromOrbLineString(g)})
		case orb.MultiLineString:
			if len(g) != 2 || len(g[0]) != 2 || len(g[1]) != 2 {
				fatalf("feature %d: a segment pair is two lines of two points", i)
			}
			s.Segments = append(s.Segments, SegmentPair{
				Name: name,
				A:    [2]polyclip.Point[float64]{adapt.FromOrb(g[0][0]), adapt.FromOrb(g[0][1])},
				B:    [2]polyclip.Point[float64]{adapt.FromOrb(g[1][0]), adapt.FromOrb(g[1][1])},
			})
		default:
			fatalf("feature %d: unsupported geometry %T", i, f.Geometry)
		}
	}

	s.finish()
	return s, nil
}
