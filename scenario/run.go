package scenario

import "github.com/osuushi/polyclip"

type PointResult[T polyclip.Scalar] struct {
	Name  string
	At    polyclip.Point[T]
	Class polyclip.Classification
}

type PathResult[T polyclip.Scalar] struct {
	Name string
	Path []polyclip.Point[T]
	// Retained sub-segments as consecutive pairs of points.
	Clipped []polyclip.Point[T]
}

type SegmentResult[T polyclip.Scalar] struct {
	Name          string
	A, B          [2]polyclip.Point[T]
	Intersections []polyclip.Point[T]
}

// Report is the outcome of running a scenario with coordinate type T.
type Report[T polyclip.Scalar] struct {
	Polygon polyclip.Polygon[T]
	// Err explains why the polygon is malformed, in which case every point
	// classifies as Unknown and nothing is clipped. Segment intersection does
	// not depend on the polygon and runs regardless.
	Err      error
	Points   []PointResult[T]
	Paths    []PathResult[T]
	Segments []SegmentResult[T]
}

// Run converts the scenario to coordinate type T and runs every case in it.
// Conversion to an integer type rounds.
func Run[T polyclip.Scalar](s *Scenario) *Report[T] {
	report := &Report[T]{
		Polygon: polyclip.Polygon[T]{Points: polyclip.ConvertAll[T](s.Polygon)},
	}
	report.Err = report.Polygon.Validate()

	for _, q := range s.Points {
		at := polyclip.Convert[T](q.At)
		report.Points = append(report.Points, PointResult[T]{
			Name:  q.Name,
			At:    at,
			Class: report.Polygon.Classify(at),
		})
	}

	for _, p := range s.Paths {
		path := polyclip.ConvertAll[T](p.Points)
		report.Paths = append(report.Paths, PathResult[T]{
			Name:    p.Name,
			Path:    path,
			Clipped: report.Polygon.Clip(nil, path),
		})
	}

	for _, seg := range s.Segments {
		result := SegmentResult[T]{
			Name: seg.Name,
			A:    [2]polyclip.Point[T]{polyclip.Convert[T](seg.A[0]), polyclip.Convert[T](seg.A[1])},
			B:    [2]polyclip.Point[T]{polyclip.Convert[T](seg.B[0]), polyclip.Convert[T](seg.B[1])},
		}
		result.Intersections = polyclip.Intersect(nil, result.A[0], result.A[1], result.B[0], result.B[1])
		report.Segments = append(report.Segments, result)
	}
	return report
}
