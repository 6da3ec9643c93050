package polyclip

import "fmt"

// Point is a 2D point with coordinates of type T. Points are plain values;
// two points are equal when both coordinates are equal.
type Point[T Scalar] struct {
	X T
	Y T
}

// Pt is shorthand for Point[T]{x, y}.
func Pt[T Scalar](x, y T) Point[T] {
	return Point[T]{X: x, Y: y}
}

// Compare orders points lexicographically, by X and then by Y. It returns -1,
// 0 or +1.
func (p Point[T]) Compare(other Point[T]) int {
	switch {
	case p.X < other.X:
		return -1
	case p.X > other.X:
		return 1
	case p.Y < other.Y:
		return -1
	case p.Y > other.Y:
		return 1
	}
	return 0
}

func (p Point[T]) Less(other Point[T]) bool {
	return p.Compare(other) < 0
}

func (p Point[T]) String() string {
	return fmt.Sprintf("%v,%v", p.X, p.Y)
}

// Converts a point to another coordinate type. Conversions to integer types
// round to the nearest value.
func Convert[To, From Scalar](p Point[From]) Point[To] {
	x, y := Float(p)
	return Point[To]{X: fromFloat[To](x), Y: fromFloat[To](y)}
}

// ConvertAll converts every point of a slice. See Convert.
func ConvertAll[To, From Scalar](points []Point[From]) []Point[To] {
	result := make([]Point[To], len(points))
	for i, p := range points {
		result[i] = Convert[To](p)
	}
	return result
}
