package search

import (
	"sort"

	"github.com/alexvelea/go-sc2ai/api"
)

// TileMask is a read-only boolean tile grid.
type TileMask interface {
	Width() int32
	Height() int32
	Get(x, y int32) bool
}

// Region is one connected group of tiles, sorted by (Y, X). Points are tile corners.
type Region []api.Point2D

// Min returns the lowest tile of the region.
func (r Region) Min() api.Point2D {
	return r[0]
}

var (
	offsets4 = [][2]int32{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	offsets8 = [][2]int32{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
)

func (c Connectivity) offsets() [][2]int32 {
	if c == Conn8 {
		return offsets8
	}
	return offsets4
}

// FindRegions labels the connected components of the true tiles of mask and returns those with at
// least minSize tiles, ordered by their lowest tile.
func FindRegions(mask TileMask, conn Connectivity, minSize int) []Region {
	w, h := mask.Width(), mask.Height()
	seen := make([]bool, int(w)*int(h))
	offsets := conn.offsets()

	var regions []Region
	queue := make([]int32, 0, 64)
	for y := int32(0); y < h; y++ {
		for x := int32(0); x < w; x++ {
			if seen[x+y*w] || !mask.Get(x, y) {
				continue
			}

			// Flood fill from (x, y)
			seen[x+y*w] = true
			queue = append(queue[:0], x+y*w)
			var region Region
			for len(queue) > 0 {
				i := queue[0]
				queue = queue[1:]
				cx, cy := i%w, i/w
				region = append(region, api.Point2D{X: float32(cx), Y: float32(cy)})

				for _, d := range offsets {
					nx, ny := cx+d[0], cy+d[1]
					if nx < 0 || ny < 0 || nx >= w || ny >= h || seen[nx+ny*w] || !mask.Get(nx, ny) {
						continue
					}
					seen[nx+ny*w] = true
					queue = append(queue, nx+ny*w)
				}
			}

			if len(region) < minSize {
				continue
			}
			sort.Slice(region, func(i, j int) bool { return region[i].Less(region[j]) })
			regions = append(regions, region)
		}
	}

	sort.SliceStable(regions, func(i, j int) bool { return regions[i].Min().Less(regions[j].Min()) })
	return regions
}
