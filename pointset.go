package polyclip

import "golang.org/x/exp/slices"

// PointSet is an ordered set of points, kept sorted by Point.Compare. The zero
// value is an empty set ready to use.
type PointSet[T Scalar] struct {
	points []Point[T]
}

func comparePoints[T Scalar](a, b Point[T]) int {
	return a.Compare(b)
}

// Add inserts p, reporting whether it was not already present.
func (s *PointSet[T]) Add(p Point[T]) bool {
	i, found := slices.BinarySearchFunc(s.points, p, comparePoints[T])
	if found {
		return false
	}
	s.points = slices.Insert(s.points, i, p)
	return true
}

// AddAll inserts every point of points.
func (s *PointSet[T]) AddAll(points []Point[T]) {
	for _, p := range points {
		s.Add(p)
	}
}

func (s *PointSet[T]) Contains(p Point[T]) bool {
	_, found := slices.BinarySearchFunc(s.points, p, comparePoints[T])
	return found
}

func (s *PointSet[T]) Len() int {
	return len(s.points)
}

// Points returns the members in ascending order. The slice is owned by the set
// and must not be modified.
func (s *PointSet[T]) Points() []Point[T] {
	return s.points
}

// Reset empties the set, keeping its storage.
func (s *PointSet[T]) Reset() {
	s.points = s.points[:0]
}

// sortUnique sorts points in place and drops duplicates.
func sortUnique[T Scalar](points []Point[T]) []Point[T] {
	slices.SortFunc(points, comparePoints[T])
	return slices.Compact(points)
}
