package polyclip

// Classification is the position of a point relative to a polygon.
type Classification int

const (
	// Unknown is the result for malformed polygons. See Polygon.Validate.
	Unknown Classification = iota
	Inside
	OnEdge
	Outside
)

func (c Classification) String() string {
	switch c {
	case Unknown:
		return "Unknown"
	case Inside:
		return "Inside"
	case OnEdge:
		return "OnEdge"
	case Outside:
		return "Outside"
	}
	return "Classification(?)"
}

// Classify reports where p lies relative to poly.
func Classify[T Scalar](poly Polygon[T], p Point[T]) Classification {
	return poly.Classify(p)
}

// Classify reports whether p is inside the polygon, outside it, or on its
// boundary. Malformed polygons give Unknown, and a point on the boundary is
// OnEdge regardless of anything else.
func (poly Polygon[T]) Classify(p Point[T]) Classification {
	if err := poly.Validate(); err != nil {
		Logger().Debug("polyclip: cannot classify against malformed polygon",
			"point", p.String(), "err", err)
		return Unknown
	}
	return poly.classify(p)
}

// classify assumes the polygon has been validated.
func (poly Polygon[T]) classify(p Point[T]) Classification {
	for i := range poly.Points {
		a, b := poly.Edge(i)
		if OnSegment(p, a, b) {
			return OnEdge
		}
	}

	min, max := poly.Bounds()
	if p.X < min.X || p.X > max.X || p.Y < min.Y || p.Y > max.Y {
		return Outside
	}

	// Cast a ray along each axis direction, ending on the bounding box. A ray
	// from an inside point has to leave the polygon before it gets there, so a
	// ray that hits nothing proves the point is outside. This settles most
	// outside points without any parity counting.
	rays := [4]Point[T]{
		{X: max.X, Y: p.Y},
		{X: p.X, Y: max.Y},
		{X: min.X, Y: p.Y},
		{X: p.X, Y: min.Y},
	}
	var crossings PointSet[T]
	var hits []Point[T]
	for _, end := range rays {
		crossings.Reset()
		for i := range poly.Points {
			a, b := poly.Edge(i)
			hits = Intersect(hits[:0], p, end, a, b)
			crossings.AddAll(hits)
		}
		if crossings.Len() == 0 {
			return Outside
		}
	}

	if poly.CrossingCount(p)%2 == 1 {
		return Inside
	}
	return Outside
}

// CrossingCount counts the edges crossed by a ray from p towards +x. An edge
// counts when one endpoint is strictly above p and the other is not, so a ray
// grazing a vertex counts it either twice or not at all.
func (poly Polygon[T]) CrossingCount(p Point[T]) int {
	if len(poly.Points) == 0 {
		return 0
	}
	_, max := poly.Bounds()
	if p.X > max.X {
		return 0
	}
	end := Point[T]{X: max.X, Y: p.Y}

	count := 0
	var hits []Point[T]
	for i := range poly.Points {
		a, b := poly.Edge(i)
		if (a.Y > p.Y) == (b.Y > p.Y) {
			continue
		}
		if hits = Intersect(hits[:0], p, end, a, b); len(hits) > 0 {
			count++
		}
	}
	return count
}

// Locate classifies a point given in float64 coordinates, such as a computed
// midpoint, without rounding it into T first.
func (poly Polygon[T]) Locate(x, y float64) Classification {
	if err := poly.Validate(); err != nil {
		return Unknown
	}
	return poly.locate(x, y)
}

func (poly Polygon[T]) locate(x, y float64) Classification {
	inside := false
	for i := range poly.Points {
		a, b := poly.Edge(i)
		if OnSegmentFloat(x, y, a, b) {
			return OnEdge
		}
		ax, ay := Float(a)
		bx, by := Float(b)
		if (ay > y) != (by > y) {
			if cx := ax + (y-ay)*(bx-ax)/(by-ay); cx > x {
				inside = !inside
			}
		}
	}
	if inside {
		return Inside
	}
	return Outside
}
