package search

import (
	"testing"

	"github.com/alexvelea/go-sc2ai/api"
	"github.com/stretchr/testify/assert"
)

func TestHeightMap(t *testing.T) {
	img := api.NewImageDataBytes(4, 4)
	for y := int32(0); y < 4; y++ {
		for x := int32(0); x < 4; x++ {
			img.Set(x, y, 100)
		}
	}
	img.Set(3, 3, 255)
	hm := NewHeightMap(img.ImageData())

	assert.Equal(t, byte(100), hm.Raw(0, 0))
	assert.InDelta(t, -16+32*100.0/255, hm.Get(0, 0), 1e-5)
	assert.InDelta(t, 16, hm.Get(3, 3), 1e-5)

	// Tile centers sample exactly, half way between two tiles is the mean
	assert.InDelta(t, hm.Get(1, 1), hm.Interpolate(1.5, 1.5), 1e-5)
	assert.InDelta(t, (hm.Get(3, 2)+hm.Get(3, 3))/2, hm.Interpolate(3.5, 3), 1e-5)

	assert.True(t, hm.EqualAround(0, 0))
	assert.True(t, hm.EqualAround(1, 1))
	assert.False(t, hm.EqualAround(2, 2))
	assert.False(t, hm.EqualAround(3, 3))
}
