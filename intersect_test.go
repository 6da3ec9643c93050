package polyclip

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntersect(t *testing.T) {
	var tts = []struct {
		name     string
		p1, q1   Point[int]
		p2, q2   Point[int]
		expected []Point[int]
	}{
		{"crossing", Pt(0, 0), Pt(4, 4), Pt(0, 4), Pt(4, 0), []Point[int]{{2, 2}}},
		{"parallel", Pt(1, 3), Pt(2, 3), Pt(1, 5), Pt(4, 5), nil},
		{"disjoint", Pt(0, 0), Pt(1, 1), Pt(3, 0), Pt(5, -4), nil},
		{"lines cross outside both segments", Pt(0, 0), Pt(1, 1), Pt(4, 0), Pt(3, 1), nil},
		{"shared endpoint", Pt(0, 0), Pt(2, 2), Pt(2, 2), Pt(3, 0), []Point[int]{{2, 2}}},
		{"T junction", Pt(0, 0), Pt(4, 0), Pt(2, 0), Pt(2, 3), []Point[int]{{2, 0}}},
		{"crossing at interior point", Pt(0, 0), Pt(4, 0), Pt(2, -2), Pt(2, 2), []Point[int]{{2, 0}}},
		{"overlap", Pt(0, 0), Pt(4, 0), Pt(2, 0), Pt(6, 0), []Point[int]{{2, 0}, {4, 0}}},
		{"reversed overlap", Pt(4, 0), Pt(0, 0), Pt(6, 0), Pt(2, 0), []Point[int]{{2, 0}, {4, 0}}},
		{"contained", Pt(0, 0), Pt(4, 0), Pt(1, 0), Pt(2, 0), []Point[int]{{1, 0}, {2, 0}}},
		{"vertical overlap", Pt(0, 0), Pt(0, 4), Pt(0, 1), Pt(0, 6), []Point[int]{{0, 1}, {0, 4}}},
		{"identical", Pt(0, 0), Pt(2, 2), Pt(0, 0), Pt(2, 2), []Point[int]{{0, 0}, {2, 2}}},
		{"identical reversed", Pt(0, 0), Pt(2, 2), Pt(2, 2), Pt(0, 0), []Point[int]{{0, 0}, {2, 2}}},
		{"collinear touching", Pt(0, 0), Pt(4, 0), Pt(4, 0), Pt(6, 0), []Point[int]{{4, 0}}},
		{"collinear disjoint", Pt(0, 0), Pt(4, 0), Pt(5, 0), Pt(6, 0), nil},
		{"degenerate on segment", Pt(2, 2), Pt(2, 2), Pt(0, 0), Pt(4, 4), []Point[int]{{2, 2}}},
		{"degenerate off segment", Pt(2, 2), Pt(2, 2), Pt(0, 0), Pt(4, 0), nil},
		{"rounded crossing", Pt(0, 0), Pt(3, 1), Pt(0, 1), Pt(3, 0), []Point[int]{{2, 1}}},
	}
	for _, tt := range tts {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Intersect(nil, tt.p1, tt.q1, tt.p2, tt.q2))
			assert.ElementsMatch(t, tt.expected, Intersect(nil, tt.p2, tt.q2, tt.p1, tt.q1), "swapped")
		})
	}
}

func TestIntersect_Floats(t *testing.T) {
	result := Intersect(nil, Pt(0.0, 0.0), Pt(1.0, 1.0), Pt(0.0, 1.0), Pt(1.0, 0.0))
	require.Len(t, result, 1)
	assert.InDelta(t, 0.5, result[0].X, Tolerance)
	assert.InDelta(t, 0.5, result[0].Y, Tolerance)

	result = Intersect(nil, Pt(0.0, 0.0), Pt(3.0, 1.0), Pt(0.0, 1.0), Pt(3.0, 0.0))
	require.Len(t, result, 1)
	assert.InDelta(t, 1.5, result[0].X, Tolerance)
	assert.InDelta(t, 0.5, result[0].Y, Tolerance)

	assert.Empty(t, Intersect(nil, Pt(0.0, 0.0), Pt(1.0, 0.0), Pt(0.0, 1e-3), Pt(1.0, 1e-3)))
	assert.Equal(t,
		[]Point[float64]{{0.5, 0.5}, {1, 1}},
		Intersect(nil, Pt(0.0, 0.0), Pt(1.0, 1.0), Pt(0.5, 0.5), Pt(2.0, 2.0)))
}

func TestIntersect_Unsigned(t *testing.T) {
	assert.Empty(t, Intersect(nil, Pt[uint64](1, 3), Pt[uint64](2, 3), Pt[uint64](1, 5), Pt[uint64](4, 5)))
	assert.Equal(t,
		[]Point[uint8]{{2, 2}},
		Intersect(nil, Pt[uint8](4, 0), Pt[uint8](0, 4), Pt[uint8](0, 0), Pt[uint8](4, 4)))
}

func TestIntersect_LargeCoordinates(t *testing.T) {
	const big = 1 << 29
	result := Intersect(nil, Pt[int32](-big, -big), Pt[int32](big, big), Pt[int32](-big, big), Pt[int32](big, -big))
	assert.Equal(t, []Point[int32]{{0, 0}}, result)
}

func TestIntersect_FullRangeInt32(t *testing.T) {
	horizontal := [2]Point[int32]{{math.MinInt32, 5}, {math.MaxInt32, 5}}
	vertical := [2]Point[int32]{{7, math.MinInt32}, {7, math.MaxInt32}}
	assert.Equal(t, []Point[int32]{{7, 5}},
		Intersect(nil, horizontal[0], horizontal[1], vertical[0], vertical[1]))
	assert.Equal(t, []Point[int32]{{7, 5}},
		Intersect(nil, vertical[0], vertical[1], horizontal[0], horizontal[1]))

	diagonal := [2]Point[int32]{{math.MinInt32, math.MinInt32}, {math.MaxInt32, math.MaxInt32}}
	assert.Equal(t, []Point[int32]{{-1000, -1000}, {1000, 1000}},
		Intersect(nil, diagonal[0], diagonal[1], Pt[int32](-1000, -1000), Pt[int32](1000, 1000)))
	assert.Empty(t, Intersect(nil, diagonal[0], diagonal[1], Pt[int32](0, 1), Pt[int32](5, 6)))
}

func TestIntersect_AppendsToDestination(t *testing.T) {
	dst := []Point[int]{{9, 9}}
	dst = Intersect(dst, Pt(0, 0), Pt(4, 0), Pt(2, 0), Pt(6, 0))
	dst = Intersect(dst, Pt(0, 0), Pt(1, 1), Pt(5, 5), Pt(6, 7))
	assert.Equal(t, []Point[int]{{9, 9}, {2, 0}, {4, 0}}, dst)
}

// Swapping the two segments, or the ends of either, never changes the set.
func TestIntersect_Symmetric(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	coord := func() int { return r.Intn(7) - 3 }
	point := func() Point[int] { return Pt(coord(), coord()) }

	for i := 0; i < 2000; i++ {
		a, b, c, d := point(), point(), point(), point()
		expected := Intersect(nil, a, b, c, d)
		assert.LessOrEqual(t, len(expected), 2)
		for j, result := range [][]Point[int]{
			Intersect(nil, c, d, a, b),
			Intersect(nil, b, a, c, d),
			Intersect(nil, a, b, d, c),
			Intersect(nil, d, c, b, a),
		} {
			if !assert.ElementsMatch(t, expected, result, fmt.Sprintf("permutation %d of %v-%v %v-%v", j, a, b, c, d)) {
				return
			}
		}
	}
}
