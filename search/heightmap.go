package search

import (
	"math"

	"github.com/alexvelea/go-sc2ai/api"
)

// HeightMap wraps the terrain height image. Raw values are compared for equality; Get converts
// them to world heights.
type HeightMap struct {
	raw api.ImageDataBytes
}

// NewHeightMap ...
func NewHeightMap(img *api.ImageData) HeightMap {
	return HeightMap{raw: img.Bytes()}
}

func (hm HeightMap) Width() int32  { return hm.raw.Width() }
func (hm HeightMap) Height() int32 { return hm.raw.Height() }

// Raw returns the stored height byte of tile (x, y).
func (hm HeightMap) Raw(x, y int32) byte {
	return hm.raw.Get(x, y)
}

// Get returns the world height of tile (x, y).
func (hm HeightMap) Get(x, y int32) float32 {
	return -16 + 32*float32(hm.raw.Get(x, y))/255
}

// Interpolate returns the bilinear height at a world position, treating tile centers as samples.
func (hm HeightMap) Interpolate(x, y float32) float32 {
	fx, fy := float64(x)-0.5, float64(y)-0.5
	x0, y0 := math.Floor(fx), math.Floor(fy)
	tx, ty := float32(fx-x0), float32(fy-y0)
	ix, iy := int32(x0), int32(y0)

	h00, h10 := hm.Get(ix, iy), hm.Get(ix+1, iy)
	h01, h11 := hm.Get(ix, iy+1), hm.Get(ix+1, iy+1)
	return (h00*(1-tx)+h10*tx)*(1-ty) + (h01*(1-tx)+h11*tx)*ty
}

// EqualAround reports whether every in-bounds tile of the 3x3 block centered on (x, y) has the
// same height.
func (hm HeightMap) EqualAround(x, y int32) bool {
	h := hm.raw.Get(x, y)
	for dy := int32(-1); dy <= 1; dy++ {
		for dx := int32(-1); dx <= 1; dx++ {
			if hm.raw.InBounds(x+dx, y+dy) && hm.raw.Get(x+dx, y+dy) != h {
				return false
			}
		}
	}
	return true
}
