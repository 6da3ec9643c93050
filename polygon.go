package polyclip

import "github.com/pkg/errors"

// Polygon is a read-only view over a caller owned slice of vertices. Vertex i
// is connected to vertex (i+1) mod n. The polygon does not copy the slice: it
// must stay alive, and unmodified, for as long as the polygon is queried.
type Polygon[T Scalar] struct {
	Points []Point[T]
}

var (
	// ErrDegenerate is reported for polygons with fewer than 3 vertices.
	ErrDegenerate = errors.New("degenerate polygon")
	// ErrOverlappingEdges is reported when two adjacent edges share more than
	// their common vertex.
	ErrOverlappingEdges = errors.New("adjacent polygon edges overlap")
)

// Edge returns edge i, running from vertex i to the vertex after it. Any i is
// accepted; it is wrapped around the vertex count.
func (poly Polygon[T]) Edge(i int) (start, end Point[T]) {
	n := len(poly.Points)
	return poly.Points[CircularIndex(i, n)], poly.Points[CircularIndex(i+1, n)]
}

// Validate checks the conditions every query relies on: at least 3 vertices,
// and every pair of adjacent edges meeting in exactly one point. Queries
// against a polygon that fails validation report Unknown.
func (poly Polygon[T]) Validate() error {
	n := len(poly.Points)
	if n < 3 {
		return errors.Wrapf(ErrDegenerate, "%d vertices", n)
	}

	var scratch [2]Point[T]
	for i := 0; i < n; i++ {
		a, b := poly.Edge(i)
		c, d := poly.Edge(i + 1)
		if hits := Intersect(scratch[:0], a, b, c, d); len(hits) != 1 {
			return errors.Wrapf(ErrOverlappingEdges, "edges %d and %d", i, CircularIndex(i+1, n))
		}
	}
	return nil
}

// Bounds returns the corners of the axis aligned bounding box. The zero points
// are returned for an empty polygon.
func (poly Polygon[T]) Bounds() (min, max Point[T]) {
	if len(poly.Points) == 0 {
		return
	}
	min, max = poly.Points[0], poly.Points[0]
	for _, p := range poly.Points[1:] {
		if p.X < min.X {
			min.X = p.X
		}
		if p.Y < min.Y {
			min.Y = p.Y
		}
		if p.X > max.X {
			max.X = p.X
		}
		if p.Y > max.Y {
			max.Y = p.Y
		}
	}
	return
}

// SignedArea is positive for counterclockwise polygons and negative for
// clockwise ones (shoelace formula).
func (poly Polygon[T]) SignedArea() float64 {
	var sum float64
	for i := range poly.Points {
		ax, ay := Float(poly.Points[i])
		bx, by := Float(poly.Points[CircularIndex(i+1, len(poly.Points))])
		sum += ax*by - bx*ay
	}
	return sum / 2
}

func (poly Polygon[T]) IsCCW() bool {
	return poly.SignedArea() > 0
}

// Reverse returns a polygon over a new slice with the vertex order reversed.
func (poly Polygon[T]) Reverse() Polygon[T] {
	newPoly := Polygon[T]{Points: make([]Point[T], 0, len(poly.Points))}
	for i := len(poly.Points) - 1; i >= 0; i-- {
		newPoly.Points = append(newPoly.Points, poly.Points[i])
	}
	return newPoly
}
