// Package adapt converts between polyclip points and the point types of other
// geometry packages. polyclip only knows its own Point; anything else comes
// in and goes out through here.
package adapt

import (
	"github.com/golang/geo/r2"
	"github.com/osuushi/polyclip"
	"github.com/paulmach/orb"
)

// XYer is a point exposing its coordinates through accessor methods. orb.Point
// is one.
type XYer[T polyclip.Scalar] interface {
	X() T
	Y() T
}

func FromXYer[T polyclip.Scalar](p XYer[T]) polyclip.Point[T] {
	return polyclip.Point[T]{X: p.X(), Y: p.Y()}
}

// FromXYers converts a slice of accessor style points.
func FromXYers[T polyclip.Scalar, P XYer[T]](points []P) []polyclip.Point[T] {
	result := make([]polyclip.Point[T], len(points))
	for i, p := range points {
		result[i] = FromXYer[T](p)
	}
	return result
}

func FromOrb(p orb.Point) polyclip.Point[float64] {
	return FromXYer[float64](p)
}

func ToOrb[T polyclip.Scalar](p polyclip.Point[T]) orb.Point {
	x, y := polyclip.Float(p)
	return orb.Point{x, y}
}

func FromOrbLineString(ls orb.LineString) []polyclip.Point[float64] {
	return FromXYers[float64](ls)
}

// FromOrbRing converts a ring to a polygon. GeoJSON style rings repeat the
// first point at the end; polyclip polygons close implicitly, so the repeat
// is dropped.
func FromOrbRing(r orb.Ring) polyclip.Polygon[float64] {
	if len(r) > 1 && r.Closed() {
		r = r[:len(r)-1]
	}
	return polyclip.Polygon[float64]{Points: FromXYers[float64](r)}
}

// ToOrbRing converts a polygon to a closed ring.
func ToOrbRing[T polyclip.Scalar](poly polyclip.Polygon[T]) orb.Ring {
	ring := make(orb.Ring, 0, len(poly.Points)+1)
	for _, p := range poly.Points {
		ring = append(ring, ToOrb(p))
	}
	if len(ring) > 0 {
		ring = append(ring, ring[0])
	}
	return ring
}

// ToOrbMultiLineString turns clipper output, where each consecutive pair of
// points is one retained sub-segment, into one line string per pair. A
// trailing unpaired point is ignored.
func ToOrbMultiLineString[T polyclip.Scalar](clipped []polyclip.Point[T]) orb.MultiLineString {
	result := make(orb.MultiLineString, 0, len(clipped)/2)
	for i := 0; i+1 < len(clipped); i += 2 {
		result = append(result, orb.LineString{ToOrb(clipped[i]), ToOrb(clipped[i+1])})
	}
	return result
}

func FromR2(p r2.Point) polyclip.Point[float64] {
	return polyclip.Point[float64]{X: p.X, Y: p.Y}
}

func ToR2[T polyclip.Scalar](p polyclip.Point[T]) r2.Point {
	x, y := polyclip.Float(p)
	return r2.Point{X: x, Y: y}
}
