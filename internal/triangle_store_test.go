package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTriangleStore(t *testing.T) {
	ring := NewPointRing([]Point{{0, 0}, {3, 0}, {0, 4}, {-1, 2}, {1, 1}})
	store := NewTriangleStore(ring)

	index, tri, err := store.Add(0, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, 0, index)
	assert.True(t, tri.Active)
	assert.InDelta(t, 2.5, tri.Circumradius, Tolerance)
	assert.Equal(t, Point{3, 0}, tri.B)
	assert.Equal(t, 1, tri.Mid)

	index, _, err = store.Add(1, 2, 3)
	require.NoError(t, err)
	assert.Equal(t, 1, index)
	index, _, err = store.Add(2, 3, 4)
	require.NoError(t, err)
	assert.Equal(t, 2, index)
	assert.Equal(t, 3, store.Len())

	t.Run("deactivate", func(t *testing.T) {
		store.Deactivate(1)
		assert.False(t, store.IsActive(1))
		store.Deactivate(1)
		assert.False(t, store.IsActive(1))
		assert.True(t, store.IsActive(0))
		// Indexes are permanent; the triangle is still there
		assert.Equal(t, 2, store.Get(1).Mid)
		assert.Equal(t, 3, store.Len())
	})

	t.Run("deactivate touching", func(t *testing.T) {
		// Point 2 generated all three triangles, but triangle 1 is already gone
		assert.Equal(t, []int{0, 2}, store.DeactivateTouching(2))
		assert.Empty(t, store.DeactivateTouching(2))
		for i := 0; i < store.Len(); i++ {
			assert.False(t, store.IsActive(i))
		}
	})

	t.Run("degenerate", func(t *testing.T) {
		ring := NewPointRing([]Point{{0, 0}, {1, 1}, {2, 2}})
		store := NewTriangleStore(ring)
		_, _, err := store.Add(0, 1, 2)
		assert.ErrorIs(t, err, ErrDegenerateTriangle)
		assert.Zero(t, store.Len())
	})

	t.Run("snapshot is a copy", func(t *testing.T) {
		triangles := store.Triangles()
		triangles[0].Active = true
		assert.False(t, store.IsActive(0))
	})
}
