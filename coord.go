package polyclip

import (
	"math"
	"math/bits"

	"golang.org/x/exp/constraints"
)

// Scalar is the set of coordinate types the package can handle. Any signed or
// unsigned integer works, as do both float sizes.
type Scalar interface {
	constraints.Integer | constraints.Float
}

// Every computation runs on one of two paths, picked by the coordinate type.
// Integer coordinates are widened to int64 and their differences taken there,
// which is exact for every integer type of 32 bits or less and for 64 bit
// values within ±2^62. Products of two such differences can need 67 bits, so
// signs of cross products come from crossSign, which multiplies into 128 bits.
// Floating coordinates are widened to float64 and compared with a tolerance.

// IsIntegral reports whether T is an integer type. Integer division by two
// truncates 1 to 0, which also catches named types like `type Meter int32`.
func IsIntegral[T Scalar]() bool {
	one, two := T(1), T(2)
	return one/two == 0
}

// Wide returns the coordinates of p widened to int64. Only meaningful for
// integer coordinate types. Unsigned values above math.MaxInt64 wrap, which
// is accepted as precision loss.
func Wide[T Scalar](p Point[T]) (x, y int64) {
	return int64(p.X), int64(p.Y)
}

// Float returns the coordinates of p as float64.
func Float[T Scalar](p Point[T]) (x, y float64) {
	return float64(p.X), float64(p.Y)
}

// fromFloat converts a computed coordinate back into T. Integers are rounded
// to the nearest value rather than truncated.
func fromFloat[T Scalar](v float64) T {
	if IsIntegral[T]() {
		return T(math.Round(v))
	}
	return T(v)
}

// crossSign returns the sign of a*b - c*d as -1, 0 or +1, exactly, for any
// int64 operands.
func crossSign(a, b, c, d int64) int64 {
	s1, hi1, lo1 := mulAbs(a, b)
	s2, hi2, lo2 := mulAbs(c, d)
	switch {
	case s1 > s2:
		return 1
	case s1 < s2:
		return -1
	case s1 == 0:
		return 0
	}

	// Same sign: the larger magnitude wins
	cmp := int64(0)
	switch {
	case hi1 > hi2 || (hi1 == hi2 && lo1 > lo2):
		cmp = 1
	case hi1 < hi2 || (hi1 == hi2 && lo1 < lo2):
		cmp = -1
	}
	return s1 * cmp
}

// mulAbs returns the sign of a*b and the 128 bit magnitude of the product.
func mulAbs(a, b int64) (sign int64, hi, lo uint64) {
	if a == 0 || b == 0 {
		return 0, 0, 0
	}
	sign = 1
	if (a < 0) != (b < 0) {
		sign = -1
	}
	hi, lo = bits.Mul64(absUint(a), absUint(b))
	return sign, hi, lo
}

// absUint is |v| as a uint64. It is correct for math.MinInt64 too.
func absUint(v int64) uint64 {
	if v < 0 {
		return uint64(^v) + 1
	}
	return uint64(v)
}
