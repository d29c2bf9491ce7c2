package internal

// This contains no actual tests. It is a helper for checking the structure of
// a finished reduction.

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Helper to check that a finished reduction is consistent. The rules are:
// 1. The hull is a subsequence of the input, in original order.
// 2. The hull has at least three points, unless the input had fewer.
// 3. No active triangle was generated by an inactive point.
// 4. Every active triangle was built from three consecutive active points.
// 5. If more than three points survive, every active triangle is within alpha.
func AssertValidReduction(t *testing.T, r *Reducer, input []Point) {
	hull := r.Hull()
	indices := r.HullIndices()
	require.Len(t, indices, len(hull))

	if len(input) < minActivePoints {
		assert.Empty(t, hull)
		return
	}
	require.GreaterOrEqual(t, len(hull), minActivePoints, "hull dropped below the minimum ring")

	for i, index := range indices {
		if i > 0 {
			require.Greater(t, index, indices[i-1], "hull is out of ring order")
		}
		assert.Equal(t, input[index], hull[i])
	}

	active := make(map[int]bool, len(indices))
	position := make(map[int]int, len(indices))
	for i, index := range indices {
		active[index] = true
		position[index] = i
	}

	n := len(indices)
	for i, tri := range r.Triangles() {
		if !tri.Active {
			continue
		}
		require.True(t, active[tri.Front] && active[tri.Mid] && active[tri.End],
			"active triangle %d names an inactive point: %+v", i, tri)
		mid := position[tri.Mid]
		assert.Equal(t, indices[CircularIndex(mid-1, n)], tri.Front, "triangle %d front is not adjacent", i)
		assert.Equal(t, indices[CircularIndex(mid+1, n)], tri.End, "triangle %d end is not adjacent", i)
		if n > minActivePoints {
			assert.LessOrEqual(t, tri.Circumradius, r.Alpha(), "triangle %d exceeds alpha", i)
		}
	}
}

// Rebuild the triangles of a finished ring and report the largest
// circumradius.
func maxRingCircumradius(t *testing.T, ring []Point) float64 {
	var largest float64
	for i := range ring {
		radius, err := Circumradius(
			ring[CircularIndex(i-1, len(ring))],
			ring[i],
			ring[CircularIndex(i+1, len(ring))],
		)
		require.NoError(t, err)
		if radius > largest {
			largest = radius
		}
	}
	return largest
}

// Strict convexity: every turn along the ring has the same nonzero sign.
func isConvex(ring []Point) bool {
	var sign float64
	for i := range ring {
		a := ring[CircularIndex(i-1, len(ring))]
		b := ring[i]
		c := ring[CircularIndex(i+1, len(ring))]
		turn := (b.X-a.X)*(c.Y-b.Y) - (b.Y-a.Y)*(c.X-b.X)
		if turn == 0 {
			return false
		}
		if sign == 0 {
			sign = turn
		} else if (turn > 0) != (sign > 0) {
			return false
		}
	}
	return true
}

// Deterministic generator for random star-shaped rings. A fixed LCG keeps the
// rings identical across platforms and Go versions.
type ringGenerator struct {
	state uint64
}

func (g *ringGenerator) float() float64 {
	g.state = g.state*6364136223846793005 + 1442695040888963407
	return float64(g.state>>11) / (1 << 53)
}

// A ring of 5 to 12 points at increasing angles with random radii in [1, 5).
func (g *ringGenerator) ring() []Point {
	n := 5 + int(g.float()*8)
	points := make([]Point, 0, n)
	for i := 0; i < n; i++ {
		angle := 2 * math.Pi * (float64(i) + 0.8*g.float()) / float64(n)
		radius := 1 + 4*g.float()
		points = append(points, Point{X: radius * math.Cos(angle), Y: radius * math.Sin(angle)})
	}
	return points
}
