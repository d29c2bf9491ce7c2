package internal

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDrawHull(t *testing.T) {
	points := LoadFixture("hexagon")
	r := NewReducer(points, 2.5)
	hull, err := reduce(r)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "hull.png")
	require.NoError(t, DrawHull(path, points, hull, 2.5, 50))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))

	t.Run("nothing to draw", func(t *testing.T) {
		assert.Error(t, DrawHull(filepath.Join(t.TempDir(), "empty.png"), nil, nil, 2.5, 50))
	})
}
