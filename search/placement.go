package search

import (
	"log"

	"github.com/alexvelea/go-sc2ai/api"
)

var (
	mineralSize  = api.Size2DI{X: 2, Y: 1}
	geyserSize   = api.Size2DI{X: 3, Y: 3}
	townHallSize = api.Size2DI{X: 5, Y: 5}
)

// PlacementGrid ...
type PlacementGrid struct {
	raw        api.ImageDataBits
	grid       api.ImageDataBits
	structures map[api.UnitTag]structureInfo
	sizeCache  map[api.UnitTypeID]api.Size2DI
}

type structureInfo struct {
	point api.Point2D
	size  api.Size2DI
}

// NewPlacementGrid ...
func NewPlacementGrid(raw api.ImageDataBits) *PlacementGrid {
	return &PlacementGrid{
		raw:        raw,
		grid:       raw.Copy(),
		structures: map[api.UnitTag]structureInfo{},
		sizeCache:  map[api.UnitTypeID]api.Size2DI{},
	}
}

// UnitPlacementSize estimates building footprints based on unit radius. Resources have fixed
// footprints and are never estimated.
func (pg *PlacementGrid) UnitPlacementSize(u *api.Unit) api.Size2DI {
	switch {
	case u.IsMineral():
		return mineralSize
	case u.IsGeyser():
		return geyserSize
	}
	if s, ok := pg.sizeCache[u.UnitType]; ok {
		return s
	}
	pos := u.Pos2D()

	// Round coordinate to the nearest half (not needed except for things like the KD8Charge)
	x, y := float32(int32(pos.X*2+0.5))/2, float32(int32(pos.Y*2+0.5))/2
	xEven, yEven := int(pos.X*2+0.5)%2 == 0, int(pos.Y*2+0.5)%2 == 0

	// Compute bounds based on the (bad) radius provided by the game
	xMin, yMin := int32(x-u.Radius+0.5), int32(y-u.Radius+0.5)
	xMax, yMax := int32(x+u.Radius+0.5), int32(y+u.Radius+0.5)

	// Get the real radius in all four directions as calculated above
	rxMin, ryMin := x-float32(xMin), y-float32(yMin)
	rxMax, ryMax := float32(xMax)-x, float32(yMax)-y

	// If the radii are not symetric, take the smaller value
	rx, ry := rxMin, ryMin
	if rxMax < rx {
		rx = rxMax
	}
	if ryMax < ry {
		ry = ryMax
	}

	// Re-compute bounds with the hopefully better radii
	xMin, yMin = int32(pos.X-rx+0.5), int32(pos.Y-ry+0.5)
	xMax, yMax = int32(pos.X+rx+0.5), int32(pos.Y+ry+0.5)

	// Non-square footprints
	if xEven != yEven {
		if yEven {
			xMin++
			xMax--
		} else {
			yMin++
			yMax--
		}
	}

	size := api.Size2DI{X: xMax - xMin, Y: yMax - yMin}
	pg.sizeCache[u.UnitType] = size
	log.Printf("%v %v %v -> %v", u.Name, pos, u.Radius, size)
	return size
}

func markGrid(grid api.ImageDataBits, pos api.Point2D, size api.Size2DI, value bool) {
	xMin, yMin := int32(pos.X-float32(size.X)/2), int32(pos.Y-float32(size.Y)/2)
	xMax, yMax := xMin+size.X, yMin+size.Y

	for y := yMin; y < yMax; y++ {
		for x := xMin; x < xMax; x++ {
			grid.Set(x, y, value)
		}
	}
}

func checkGrid(grid api.ImageDataBits, pos api.Point2D, size api.Size2DI, value bool) bool {
	xMin, yMin := int32(pos.X-float32(size.X)/2), int32(pos.Y-float32(size.Y)/2)
	xMax, yMax := xMin+size.X, yMin+size.Y

	for y := yMin; y < yMax; y++ {
		for x := xMin; x < xMax; x++ {
			if grid.Get(x, y) != value {
				return false
			}
		}
	}
	return true
}

// restore resets the footprint of v to the raw grid.
func (pg *PlacementGrid) restore(v structureInfo) {
	xMin, yMin := int32(v.point.X-float32(v.size.X)/2), int32(v.point.Y-float32(v.size.Y)/2)
	for y := yMin; y < yMin+v.size.Y; y++ {
		for x := xMin; x < xMin+v.size.X; x++ {
			pg.grid.Set(x, y, pg.raw.Get(x, y))
		}
	}
}

// stampResources returns a copy of the raw grid with every resource footprint marked unbuildable.
func stampResources(raw api.ImageDataBits, resources []*api.Unit) api.ImageDataBits {
	grid := raw.Copy()
	for _, u := range resources {
		switch {
		case u.IsMineral():
			markGrid(grid, u.Pos2D(), mineralSize, false)
		case u.IsGeyser():
			markGrid(grid, u.Pos2D(), geyserSize, false)
		}
	}
	return grid
}

// CanPlace checks if a structure of a certain type can currently be placed at the given location.
func (pg *PlacementGrid) CanPlace(u *api.Unit, pos api.Point2D) bool {
	return checkGrid(pg.grid, pos, pg.UnitPlacementSize(u), true)
}

// CanPlaceSize checks a footprint of the given size.
func (pg *PlacementGrid) CanPlaceSize(pos api.Point2D, size api.Size2DI) bool {
	return checkGrid(pg.grid, pos, size, true)
}

// Buildable reports the current state of tile (x, y).
func (pg *PlacementGrid) Buildable(x, y int32) bool {
	return pg.grid.Get(x, y)
}

// Update tracks structures and resources in units, restoring the footprints of those that are gone.
func (pg *PlacementGrid) Update(units []*api.Unit) {
	byTag := make(map[api.UnitTag]*api.Unit, len(units))
	for _, u := range units {
		if u.IsStructure || u.IsResource() {
			byTag[u.Tag] = u
		}
	}

	// Remove any units that are gone or have changed type or position
	for k, v := range pg.structures {
		if u, ok := byTag[k]; !ok || u.Pos2D() != v.point || pg.UnitPlacementSize(u) != v.size {
			pg.restore(v)
			delete(pg.structures, k)
		}
	}

	// Freed tiles may overlap another footprint, so re-stamp everything still present
	for _, v := range pg.structures {
		markGrid(pg.grid, v.point, v.size, false)
	}

	// (Re-)add new units or ones that have changed type or position
	for _, u := range units {
		if _, ok := pg.structures[u.Tag]; !ok && byTag[u.Tag] == u {
			v := structureInfo{u.Pos2D(), pg.UnitPlacementSize(u)}
			markGrid(pg.grid, v.point, v.size, false)
			pg.structures[u.Tag] = v
		}
	}
}
