package search

import (
	"math"
	"testing"

	"github.com/alexvelea/go-sc2ai/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// gridOf parses rows of '.' (pathable) and '#' (blocked), first row at y = 0.
func gridOf(rows ...string) api.ImageDataBits {
	grid := api.NewImageDataBits(int32(len(rows[0])), int32(len(rows)))
	for y, row := range rows {
		for x, c := range row {
			grid.Set(int32(x), int32(y), c == '.')
		}
	}
	return grid
}

func TestDistanceFieldOpen(t *testing.T) {
	grid := gridOf(
		".....",
		".....",
		".....",
		".....",
		".....",
	)
	f := NewDistanceField(grid, pt(0.5, 0.5))

	d, ok := f.To(pt(4.5, 4.5))
	require.True(t, ok)
	assert.InDelta(t, 4*math.Sqrt2, d, 1e-5)

	d, ok = f.To(pt(4.5, 1.5))
	require.True(t, ok)
	assert.InDelta(t, 3+math.Sqrt2, d, 1e-5)
}

func TestDistanceFieldCorners(t *testing.T) {
	// Diagonal moves may not squeeze between two blocked tiles
	grid := gridOf(
		".#.",
		"#..",
		"...",
	)
	f := NewDistanceField(grid, pt(0.5, 0.5))
	_, ok := f.To(pt(2.5, 0.5))
	assert.False(t, ok)

	f = NewDistanceField(grid, pt(1.5, 1.5))
	d, ok := f.To(pt(2.5, 0.5))
	require.True(t, ok)
	assert.InDelta(t, 2, d, 1e-5)
	d, ok = f.To(pt(0.5, 2.5))
	require.True(t, ok)
	assert.InDelta(t, 2, d, 1e-5)
}

func TestDistanceFieldDetour(t *testing.T) {
	grid := gridOf(
		".....",
		"####.",
		".....",
	)
	f := NewDistanceField(grid, pt(0.5, 0.5))
	d, ok := f.To(pt(0.5, 2.5))
	require.True(t, ok)
	assert.InDelta(t, 10, d, 1e-5)
}

func TestNearestPathable(t *testing.T) {
	grid := gridOf(
		"#####",
		"#####",
		"##..#",
		"#####",
	)
	tile, ok := nearestPathable(grid, pt(2.5, 2.5))
	require.True(t, ok)
	assert.Equal(t, api.Point2DI{X: 2, Y: 2}, tile)

	tile, ok = nearestPathable(grid, pt(4.5, 3.5))
	require.True(t, ok)
	assert.Equal(t, api.Point2DI{X: 3, Y: 2}, tile)

	_, ok = nearestPathable(gridOf("##", "##"), pt(0.5, 0.5))
	assert.False(t, ok)
}
