package scenario

import (
	"github.com/osuushi/polyclip"
	"github.com/osuushi/polyclip/adapt"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/pkg/errors"
)

// FeatureCollection converts a report to GeoJSON. The polygon is a Polygon
// feature, each query point is a Point feature with its classification in the
// "class" property, each clipped path is a MultiLineString of the retained
// sub-segments and each segment pair is a MultiPoint of the intersections.
func (r *Report[T]) FeatureCollection() *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()

	polygon := geojson.NewFeature(orb.Polygon{adapt.ToOrbRing(r.Polygon)})
	polygon.Properties["name"] = "polygon"
	if r.Err != nil {
		polygon.Properties["error"] = r.Err.Error()
	}
	fc.Append(polygon)

	for _, p := range r.Points {
		f := geojson.NewFeature(adapt.ToOrb(p.At))
		f.Properties["name"] = p.Name
		f.Properties["class"] = p.Class.String()
		fc.Append(f)
	}

	for _, p := range r.Paths {
		f := geojson.NewFeature(adapt.ToOrbMultiLineString(p.Clipped))
		f.Properties["name"] = p.Name
		fc.Append(f)
	}

	for _, s := range r.Segments {
		f := geojson.NewFeature(toOrbMultiPoint(s.Intersections))
		f.Properties["name"] = s.Name
		f.Properties["count"] = len(s.Intersections)
		fc.Append(f)
	}
	return fc
}

// GeoJSON encodes the report with FeatureCollection.
func (r *Report[T]) GeoJSON() ([]byte, error) {
	data, err := r.FeatureCollection().MarshalJSON()
	if err != nil {
		return nil, errors.Wrap(err, "encoding report")
	}
	return data, nil
}

func toOrbMultiPoint[T polyclip.Scalar](points []polyclip.Point[T]) orb.MultiPoint {
	result := make(orb.MultiPoint, 0, len(points))
	for _, p := range points {
		result = append(result, adapt.ToOrb(p))
	}
	return result
}
