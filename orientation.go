package polyclip

import "math"

// Orientation is the turn direction of an ordered triple of points.
type Orientation int

const (
	Collinear Orientation = iota
	Clockwise
	CounterClockwise
)

func (o Orientation) String() string {
	switch o {
	case Collinear:
		return "Collinear"
	case Clockwise:
		return "Clockwise"
	case CounterClockwise:
		return "CounterClockwise"
	}
	return "Orientation(?)"
}

// Orient computes the orientation of the triple (p, q, r) from the cross
// product of (q-p) and (r-q). Integer coordinates are evaluated exactly, with
// 128 bit products. Floating results within Tolerance of zero count as
// collinear.
func Orient[T Scalar](p, q, r Point[T]) Orientation {
	if IsIntegral[T]() {
		px, py := Wide(p)
		qx, qy := Wide(q)
		rx, ry := Wide(r)
		return orientationOf(crossSign(qy-py, rx-qx, qx-px, ry-qy))
	}

	px, py := Float(p)
	qx, qy := Float(q)
	rx, ry := Float(r)
	v := (qy-py)*(rx-qx) - (qx-px)*(ry-qy)
	if Equal(v, 0) {
		return Collinear
	}
	return orientationOf(v)
}

func orientationOf[N int64 | float64](v N) Orientation {
	switch {
	case v > 0:
		return Clockwise
	case v < 0:
		return CounterClockwise
	}
	return Collinear
}

// OnSegment reports whether p is collinear with the segment (start, end) and
// lies within its bounding box. A zero length segment contains only its own
// point.
func OnSegment[T Scalar](p, start, end Point[T]) bool {
	if Orient(start, end, p) != Collinear {
		return false
	}
	return inBounds(p, start, end)
}

// inBounds is the bounding box half of OnSegment.
func inBounds[T Scalar](p, start, end Point[T]) bool {
	minX, maxX := minMax(start.X, end.X)
	minY, maxY := minMax(start.Y, end.Y)
	if IsIntegral[T]() {
		return minX <= p.X && p.X <= maxX && minY <= p.Y && p.Y <= maxY
	}

	x, y := Float(p)
	return inBoundsFloat(x, y, float64(minX), float64(minY), float64(maxX), float64(maxY))
}

// OnSegmentFloat is OnSegment for a point whose coordinates were computed in
// floating point (an intersection, a midpoint) and must not be rounded into T
// before the test. The point must lie within Tolerance of the segment's
// bounding box and within Tolerance of its supporting line, measured as a
// perpendicular distance so the slack does not grow with segment length.
func OnSegmentFloat[T Scalar](x, y float64, start, end Point[T]) bool {
	sx, sy := Float(start)
	ex, ey := Float(end)
	if !inBoundsFloat(x, y, sx, sy, ex, ey) {
		return false
	}
	dx, dy := ex-sx, ey-sy
	length := math.Hypot(dx, dy)
	if length == 0 {
		return Equal(distance(x, y, sx, sy), 0)
	}
	return Equal((dx*(y-sy)-dy*(x-sx))/length, 0)
}

// inBoundsFloat is the bounding box test with Tolerance slack on all sides.
func inBoundsFloat(x, y, sx, sy, ex, ey float64) bool {
	minX, maxX := minMax(sx, ex)
	minY, maxY := minMax(sy, ey)
	return minX-Tolerance <= x && x <= maxX+Tolerance &&
		minY-Tolerance <= y && y <= maxY+Tolerance
}
