package polyclip

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClip_Square(t *testing.T) {
	poly := square()
	var tts = []struct {
		name     string
		path     []Point[int]
		expected []Point[int]
	}{
		{"crossing", []Point[int]{{-1, 1}, {4, 1}}, []Point[int]{{0, 1}, {3, 1}}},
		{"inside", []Point[int]{{1, 1}, {2, 2}}, []Point[int]{{1, 1}, {2, 2}}},
		{"diagonal between corners", []Point[int]{{0, 0}, {3, 3}}, []Point[int]{{0, 0}, {3, 3}}},
		{"along an edge", []Point[int]{{0, 0}, {3, 0}}, []Point[int]{{0, 0}, {3, 0}}},
		{"through corners", []Point[int]{{-1, -1}, {4, 4}}, []Point[int]{{0, 0}, {3, 3}}},
		{"leaves and comes back", []Point[int]{{1, 1}, {5, 1}, {5, 2}, {2, 2}}, []Point[int]{{1, 1}, {3, 1}, {3, 2}, {2, 2}}},
		{"outside", []Point[int]{{4, 0}, {5, 5}, {-1, 5}}, nil},
		{"zero length inside", []Point[int]{{1, 1}, {1, 1}}, []Point[int]{{1, 1}, {1, 1}}},
		{"zero length outside", []Point[int]{{5, 1}, {5, 1}}, nil},
	}
	for _, tt := range tts {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Clip(nil, poly, tt.path))
		})
	}
}

func TestClip_Pentagon(t *testing.T) {
	poly := Polygon[int]{Points: []Point[int]{{-1, -1}, {3, -2}, {2, 1}, {4, 5}, {-2, 2}}}
	path := []Point[int]{{-4, 3}, {0, 0}, {1, 0}, {4, 3}, {1, 5}}

	// Crossings are rounded to the nearest integer point
	assert.Equal(t, []Point[int]{
		{-2, 1}, {0, 0},
		{0, 0}, {1, 0},
		{1, 0}, {2, 1},
		{3, 4}, {2, 4},
	}, poly.Clip(nil, path))

	t.Run("floats", func(t *testing.T) {
		fpoly := Polygon[float64]{Points: ConvertAll[float64](poly.Points)}
		clipped := fpoly.Clip(nil, ConvertAll[float64](path))
		expected := []Point[float64]{
			{-16.0 / 9, 4.0 / 3}, {0, 0},
			{0, 0}, {1, 0},
			{1, 0}, {2, 1},
			{3.25, 3.5}, {16.0 / 7, 29.0 / 7},
		}
		require.Len(t, clipped, len(expected))
		for i := range expected {
			assert.InDelta(t, expected[i].X, clipped[i].X, Tolerance, "x of point %d", i)
			assert.InDelta(t, expected[i].Y, clipped[i].Y, Tolerance, "y of point %d", i)
			assert.NotEqual(t, Outside, fpoly.Locate(clipped[i].X, clipped[i].Y))
		}
	})
}

func TestClip_Concave(t *testing.T) {
	poly := Polygon[float64]{Points: []Point[float64]{{0, 0}, {4, 0}, {4, 4}, {2, 1}, {0, 4}}}

	t.Run("inside endpoints across the notch", func(t *testing.T) {
		clipped := poly.Clip(nil, []Point[float64]{{1, 2}, {3, 2}})
		assertPointsInDelta(t, []Point[float64]{{1, 2}, {4.0 / 3, 2}, {8.0 / 3, 2}, {3, 2}}, clipped)
	})

	t.Run("outside endpoints", func(t *testing.T) {
		clipped := poly.Clip(nil, []Point[float64]{{-1, 2}, {5, 2}})
		assertPointsInDelta(t, []Point[float64]{{0, 2}, {4.0 / 3, 2}, {8.0 / 3, 2}, {4, 2}}, clipped)
	})

	t.Run("boundary endpoints bridging the notch", func(t *testing.T) {
		assert.Empty(t, poly.Clip(nil, []Point[float64]{{0, 4}, {4, 4}}))
	})

	t.Run("integer crossings", func(t *testing.T) {
		ipoly := Polygon[int]{Points: ConvertAll[int](poly.Points)}
		assert.Equal(t,
			[]Point[int]{{0, 3}, {1, 3}, {3, 3}, {4, 3}},
			ipoly.Clip(nil, []Point[int]{{0, 3}, {4, 3}}))
	})
}

func TestClip_NoOp(t *testing.T) {
	dst := []Point[int]{{7, 7}, {8, 8}}

	assert.Equal(t, dst, Clip(dst, Polygon[int]{Points: []Point[int]{{0, 0}, {1, 1}}}, []Point[int]{{0, 0}, {1, 0}}))
	assert.Equal(t, dst, Clip(dst, square(), []Point[int]{{1, 1}}))
	assert.Equal(t, dst, Clip(dst, square(), nil))

	malformed := Polygon[int]{Points: []Point[int]{{0, 0}, {4, 0}, {2, 0}, {2, 3}}}
	assert.Equal(t, dst, Clip(dst, malformed, []Point[int]{{1, 1}, {2, 1}}))
}

func TestClip_AppendsToDestination(t *testing.T) {
	dst := []Point[int]{{7, 7}, {8, 8}}
	dst = Clip(dst, square(), []Point[int]{{-1, 1}, {4, 1}})
	assert.Equal(t, []Point[int]{{7, 7}, {8, 8}, {0, 1}, {3, 1}}, dst)
}

func TestClip_EvenLength(t *testing.T) {
	polygons := []Polygon[int]{
		square(),
		{Points: []Point[int]{{0, 0}, {6, 0}, {6, 4}, {4, 2}, {2, 4}, {0, 4}}},
		{Points: []Point[int]{{-1, -1}, {3, -2}, {2, 1}, {4, 5}, {-2, 2}}},
	}
	r := rand.New(rand.NewSource(7))
	for i := 0; i < 200; i++ {
		path := make([]Point[int], 2+r.Intn(6))
		for j := range path {
			path[j] = Pt(r.Intn(11)-3, r.Intn(11)-3)
		}
		for _, poly := range polygons {
			clipped := poly.Clip(nil, path)
			if !assert.Zero(t, len(clipped)%2, "clipping %v by %v", path, poly.Points) {
				return
			}
		}
	}
}

func assertPointsInDelta(t *testing.T, expected, actual []Point[float64]) {
	t.Helper()
	require.Len(t, actual, len(expected))
	for i := range expected {
		assert.InDelta(t, expected[i].X, actual[i].X, Tolerance, "x of point %d", i)
		assert.InDelta(t, expected[i].Y, actual[i].Y, Tolerance, "y of point %d", i)
	}
}

func TestClip_LongEdge(t *testing.T) {
	poly := Polygon[int]{Points: []Point[int]{{0, 0}, {1000, 0}, {1000, 1000}, {0, 1000}}}
	require.Equal(t, Outside, poly.Classify(Pt(500, -1)))
	assert.Equal(t, Outside, poly.Locate(500, -0.5))

	assert.Equal(t, []Point[int]{{500, 500}, {500, 0}}, poly.Clip(nil, []Point[int]{{500, 500}, {500, -1}}))
	assert.Empty(t, poly.Clip(nil, []Point[int]{{500, 0}, {500, -1}}))
	assert.Empty(t, poly.Clip(nil, []Point[int]{{-1, -1}, {1001, -1}}), "runs alongside the edge, just outside")

	t.Run("floats", func(t *testing.T) {
		fpoly := Polygon[float64]{Points: ConvertAll[float64](poly.Points)}
		clipped := fpoly.Clip(nil, []Point[float64]{{500, 500}, {500, -1.2}})
		assertPointsInDelta(t, []Point[float64]{{500, 500}, {500, 0}}, clipped)
		for _, p := range clipped {
			assert.NotEqual(t, Outside, fpoly.Locate(p.X, p.Y))
		}
	})
}
