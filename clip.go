package polyclip

import "golang.org/x/exp/slices"

// Clip appends to dst the parts of path lying inside poly or on its boundary.
// See Polygon.Clip.
func Clip[T Scalar](dst []Point[T], poly Polygon[T], path []Point[T]) []Point[T] {
	return poly.Clip(dst, path)
}

// Clip walks path one segment at a time and appends the retained parts of
// each segment to dst as pairs of points: elements 2k and 2k+1 of the appended
// output are the ends of one retained sub-segment. Pieces of one path segment
// that touch are merged; pieces from different path segments never are.
//
// Nothing is appended when the polygon has fewer than 3 vertices or the path
// fewer than 2 points. Segments are skipped when either endpoint classifies as
// Unknown.
func (poly Polygon[T]) Clip(dst, path []Point[T]) []Point[T] {
	if len(poly.Points) < 3 || len(path) < 2 {
		return dst
	}

	var crossings PointSet[T]
	var hits []Point[T]
	for i := 0; i+1 < len(path); i++ {
		start, end := path[i], path[i+1]
		startClass, endClass := poly.Classify(start), poly.Classify(end)
		if startClass == Unknown || endClass == Unknown {
			Logger().Debug("polyclip: skipping path segment",
				"index", i, "start", start.String(), "end", end.String())
			continue
		}

		if start == end {
			if startClass != Outside {
				dst = append(dst, start, end)
			}
			continue
		}

		crossings.Reset()
		for j := range poly.Points {
			a, b := poly.Edge(j)
			hits = Intersect(hits[:0], start, end, a, b)
			crossings.AddAll(hits)
		}

		// A segment between two inside points that never meets the boundary
		// is kept whole.
		if startClass == Inside && endClass == Inside && crossings.Len() == 0 {
			dst = append(dst, start, end)
			continue
		}
		dst = poly.appendPieces(dst, start, end, crossings.Points())
	}
	return dst
}

// appendPieces cuts (start, end) at every boundary crossing and keeps each
// piece whose midpoint is inside or on the boundary. Consecutive kept pieces
// are emitted as one pair.
func (poly Polygon[T]) appendPieces(dst []Point[T], start, end Point[T], crossings []Point[T]) []Point[T] {
	stops := make([]Point[T], 0, len(crossings)+2)
	stops = append(stops, start)
	stops = append(stops, crossings...)
	stops = append(stops, end)

	sx, sy := Float(start)
	distanceFromStart := func(p Point[T]) float64 {
		x, y := Float(p)
		return (x-sx)*(x-sx) + (y-sy)*(y-sy)
	}
	slices.SortStableFunc(stops, func(a, b Point[T]) int {
		da, db := distanceFromStart(a), distanceFromStart(b)
		switch {
		case da < db:
			return -1
		case da > db:
			return 1
		}
		return 0
	})
	stops = slices.Compact(stops)

	runStart := -1
	for i := 0; i+1 < len(stops); i++ {
		ax, ay := Float(stops[i])
		bx, by := Float(stops[i+1])
		kept := poly.locate((ax+bx)/2, (ay+by)/2) != Outside
		switch {
		case kept && runStart < 0:
			runStart = i
		case !kept && runStart >= 0:
			dst = append(dst, stops[runStart], stops[i])
			runStart = -1
		}
	}
	if runStart >= 0 {
		dst = append(dst, stops[runStart], stops[len(stops)-1])
	}
	return dst
}
