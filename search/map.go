package search

import (
	"fmt"
	"log"

	"github.com/alexvelea/go-sc2ai/api"
	"github.com/google/uuid"
)

// Map is the analysed terrain of one game.
type Map struct {
	bases
	opts  Options
	cache *GeometryCache

	GameID              uuid.UUID
	MapName             string
	StartLocation       api.Point2D
	EnemyStartLocations []api.Point2D

	HeightMap      HeightMap
	Pathing        api.ImageDataBits
	PlacementGrid  *PlacementGrid
	Ramps          []*Ramp
	VisionBlockers []api.Point2D
	BaseLocations  []BaseLocation
}

// NewMap analyses snap. Derived geometry is looked up in cache first; a nil cache gives the map a
// private one.
func NewMap(snap *api.Snapshot, opts Options, cache *GeometryCache) (*Map, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if err := snap.Validate(); err != nil {
		return nil, err
	}
	if cache == nil {
		cache = NewGeometryCache()
	}

	game, err := uuid.Parse(snap.GameId)
	if err != nil {
		game = uuid.New()
		log.Printf("snapshot of %v has no usable game id %q, using %v", snap.MapName, snap.GameId, game)
	}

	m := &Map{
		opts:                opts,
		cache:               cache,
		GameID:              game,
		MapName:             snap.MapName,
		StartLocation:       *snap.PlayerStartLocation,
		EnemyStartLocations: snap.StartLocations()[1:],
		HeightMap:           NewHeightMap(snap.TerrainHeight),
		Pathing:             snap.PathingGrid.Bits(),
		PlacementGrid:       NewPlacementGrid(snap.PlacementGrid.Bits()),
	}
	m.Ramps, m.VisionBlockers = FindRampsAndVisionBlockers(snap, m.HeightMap, opts)

	m.BaseLocations, err = cache.BaseLocations(game, opts, snap.MapName, func() ([]BaseLocation, error) {
		return CalculateBaseLocations(snap.Resources(), snap.PlacementGrid.Bits(), opts)
	})
	if err != nil {
		return nil, fmt.Errorf("%v: %w", snap.MapName, err)
	}
	m.bases = newBases(m, m.BaseLocations, m.Pathing)

	m.Update(snap.Units)
	return m, nil
}

// Update refreshes resources, town halls and building footprints from the units of a new tick.
func (m *Map) Update(units []*api.Unit) {
	m.bases.update(units)
	m.PlacementGrid.Update(units)
}

// MainBaseRamp returns the ramp leading out of the player's main base.
func (m *Map) MainBaseRamp() (*Ramp, error) {
	return m.MainBaseRampFor(m.StartLocation)
}

// MainBaseRampFor returns the ramp leading out of the main base at start.
func (m *Map) MainBaseRampFor(start api.Point2D) (*Ramp, error) {
	return m.cache.MainBaseRamp(m.GameID, m.opts, start, func() (*Ramp, error) {
		return MainBaseRamp(m.Ramps, start)
	})
}

// VisionBlockerRegions groups the vision blocker tiles into connected regions, ordered by their
// lowest tile.
func (m *Map) VisionBlockerRegions() []Region {
	mask := api.NewImageDataBits(m.Pathing.Width(), m.Pathing.Height())
	for _, p := range m.VisionBlockers {
		mask.Set(int32(p.X), int32(p.Y), true)
	}
	return FindRegions(mask, m.opts.Connectivity, 1)
}

// ExpansionLocations returns every town hall position on the map, ordered by X, then Y.
func (m *Map) ExpansionLocations() []api.Point2D {
	locs := make([]api.Point2D, len(m.BaseLocations))
	for i, loc := range m.BaseLocations {
		locs[i] = loc.Location
	}
	return locs
}

// ExpansionLocationsDict maps every town hall position to the resources it mines.
func (m *Map) ExpansionLocationsDict() map[api.Point2D][]*api.Unit {
	dict := make(map[api.Point2D][]*api.Unit, len(m.BaseLocations))
	for _, loc := range m.BaseLocations {
		dict[loc.Location] = append([]*api.Unit(nil), loc.Resources.Units()...)
	}
	return dict
}

// OwnedExpansions maps each expansion occupied by one of the player's town halls to that town hall.
func (m *Map) OwnedExpansions() map[api.Point2D]*api.Unit {
	owned := map[api.Point2D]*api.Unit{}
	for _, base := range m.Bases {
		if base.IsSelfOwned() && base.TownHall.Pos2D().Distance(base.Location) < m.opts.OwnedExpansionRadius {
			owned[base.Location] = base.TownHall
		}
	}
	return owned
}

// Natural returns the base closest by ground to the player's main.
func (m *Map) Natural() *Base {
	main := m.NearestBase(m.StartLocation)
	if main == nil {
		return nil
	}
	return main.Natural()
}
