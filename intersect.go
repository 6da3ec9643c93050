package polyclip

import "math"

// Intersect appends the intersection of the segments (p1, q1) and (p2, q2) to
// dst and returns the extended slice. dst is never cleared, so pass nil (or a
// slice truncated to zero length) for a fresh result.
//
// Zero, one or two points are appended. Two points only occur when the
// segments are collinear and overlap, in which case the extremes of the shared
// range are appended in ascending Point.Compare order. The result is the same
// set of points when the two segments are swapped.
func Intersect[T Scalar](dst []Point[T], p1, q1, p2, q2 Point[T]) []Point[T] {
	o1 := Orient(p1, q1, p2)
	o2 := Orient(p1, q1, q2)
	o3 := Orient(p2, q2, p1)
	o4 := Orient(p2, q2, q1)

	if o1 == Collinear && o2 == Collinear && o3 == Collinear && o4 == Collinear {
		return appendOverlap(dst, p1, q1, p2, q2)
	}

	// An endpoint lying on the other segment is returned as is. The supporting
	// lines are not parallel here, so it is the only common point.
	switch {
	case o1 == Collinear && inBounds(p2, p1, q1):
		return append(dst, p2)
	case o2 == Collinear && inBounds(q2, p1, q1):
		return append(dst, q2)
	case o3 == Collinear && inBounds(p1, p2, q2):
		return append(dst, p1)
	case o4 == Collinear && inBounds(q1, p2, q2):
		return append(dst, q1)
	}

	// A collinear triple left over here is an endpoint on the other
	// segment's line but beyond its end, where the lines meet outside the
	// segment.
	if o1 == Collinear || o2 == Collinear || o3 == Collinear || o4 == Collinear {
		return dst
	}
	if o1 != o2 && o3 != o4 {
		return appendCrossing(dst, p1, q1, p2, q2)
	}
	return dst
}

// appendOverlap handles two collinear segments. Every endpoint of one segment
// lying on the other is a candidate; the candidates are sorted and the
// extremes kept.
func appendOverlap[T Scalar](dst []Point[T], p1, q1, p2, q2 Point[T]) []Point[T] {
	var candidates [4]Point[T]
	n := 0
	for _, c := range [4]struct{ p, start, end Point[T] }{
		{p1, p2, q2},
		{q1, p2, q2},
		{p2, p1, q1},
		{q2, p1, q1},
	} {
		if inBounds(c.p, c.start, c.end) {
			candidates[n] = c.p
			n++
		}
	}

	points := sortUnique(candidates[:n])
	switch len(points) {
	case 0:
		return dst
	case 1:
		return append(dst, points[0])
	}
	return append(dst, points[0], points[len(points)-1])
}

// Relative coordinates below this bound keep every product in appendCrossing
// inside int64.
const exactLimit = 1 << 30

func withinExactLimit(values ...int64) bool {
	for _, v := range values {
		if v >= exactLimit || v <= -exactLimit {
			return false
		}
	}
	return true
}

// appendCrossing solves the two implicit line equations A*x + B*y = C for the
// single crossing point. Coordinates are taken relative to p1 first, which
// keeps C small. For integer input whose relative coordinates stay below
// exactLimit, A, B, C and the determinant are exact in int64 and only the
// final division happens in float64. Larger integer input is solved in
// float64; the caller has already decided exactly that the segments cross.
func appendCrossing[T Scalar](dst []Point[T], p1, q1, p2, q2 Point[T]) []Point[T] {
	var a1, b1, c1, a2, b2, c2, det float64
	var ox, oy float64

	if IsIntegral[T]() {
		px, py := Wide(p1)
		qx, qy := Wide(q1)
		rx, ry := Wide(p2)
		sx, sy := Wide(q2)
		qx, qy = qx-px, qy-py
		rx, ry = rx-px, ry-py
		sx, sy = sx-px, sy-py
		ox, oy = float64(px), float64(py)

		if withinExactLimit(qx, qy, rx, ry, sx, sy) {
			ia1, ib1 := qy, -qx
			ia2, ib2 := sy-ry, rx-sx
			ic2 := ia2*rx + ib2*ry
			idet := ia1*ib2 - ia2*ib1
			if idet == 0 {
				return dst
			}
			a1, b1, c1 = float64(ia1), float64(ib1), 0
			a2, b2, c2 = float64(ia2), float64(ib2), float64(ic2)
			det = float64(idet)
		} else {
			a1, b1, c1 = float64(qy), -float64(qx), 0
			a2, b2 = float64(sy)-float64(ry), float64(rx)-float64(sx)
			c2 = a2*float64(rx) + b2*float64(ry)
			det = a1*b2 - a2*b1
			if det == 0 {
				return dst
			}
		}
	} else {
		px, py := Float(p1)
		qx, qy := Float(q1)
		rx, ry := Float(p2)
		sx, sy := Float(q2)
		qx, qy = qx-px, qy-py
		rx, ry = rx-px, ry-py
		sx, sy = sx-px, sy-py

		a1, b1, c1 = qy, -qx, 0
		a2, b2 = sy-ry, rx-sx
		c2 = a2*rx + b2*ry
		det = a1*b2 - a2*b1
		if math.Abs(det) < DeterminantTolerance {
			return dst
		}
		ox, oy = px, py
	}

	x := ox + (b2*c1-b1*c2)/det
	y := oy + (a1*c2-a2*c1)/det
	// The point is on both supporting lines by construction. Integer
	// orientations are exact, so the crossing is known to lie on both segments;
	// floating ones are not, so the point is checked against both boxes.
	if !IsIntegral[T]() {
		x1, y1 := Float(p1)
		x2, y2 := Float(q1)
		x3, y3 := Float(p2)
		x4, y4 := Float(q2)
		if !inBoundsFloat(x, y, x1, y1, x2, y2) || !inBoundsFloat(x, y, x3, y3, x4, y4) {
			return dst
		}
	}
	return append(dst, Point[T]{X: fromFloat[T](x), Y: fromFloat[T](y)})
}
