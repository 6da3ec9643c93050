package polyclip

import "math"

const (
	// Tolerance absorbs rounding noise when floating coordinates are compared
	// against zero or against each other. Integer coordinates are always
	// compared exactly.
	Tolerance = 1e-6

	// DeterminantTolerance is the smallest determinant magnitude for which two
	// floating point lines are treated as non-parallel.
	DeterminantTolerance = 1e-5
)

// Equal compares two floating point values within Tolerance. Every tolerance
// test on float coordinates goes through it.
func Equal(a, b float64) bool {
	return math.Abs(a-b) < Tolerance
}

// Often we want to treat an array as a circular buffer. This gives the modular
// index given length n, but unlike the raw modulo operator, it only gives positive values
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}

func minMax[T Scalar](a, b T) (T, T) {
	if a < b {
		return a, b
	}
	return b, a
}

func distance(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x2-x1, y2-y1)
}
