package api

import (
	"errors"
	"fmt"
)

// ErrMalformedSnapshot reports a snapshot that cannot be analysed.
var ErrMalformedSnapshot = errors.New("malformed snapshot")

// Snapshot is the frozen game state of one tick: the static map grids from game info plus the
// observed units.
type Snapshot struct {
	GameId              string      `protobuf:"bytes,1,opt,name=game_id,json=gameId,proto3"`
	MapName             string      `protobuf:"bytes,2,opt,name=map_name,json=mapName,proto3"`
	MapSize             *Size2DI    `protobuf:"bytes,3,opt,name=map_size,json=mapSize,proto3"`
	PathingGrid         *ImageData  `protobuf:"bytes,4,opt,name=pathing_grid,json=pathingGrid,proto3"`
	PlacementGrid       *ImageData  `protobuf:"bytes,5,opt,name=placement_grid,json=placementGrid,proto3"`
	TerrainHeight       *ImageData  `protobuf:"bytes,6,opt,name=terrain_height,json=terrainHeight,proto3"`
	PlayableArea        *RectangleI `protobuf:"bytes,7,opt,name=playable_area,json=playableArea,proto3"`
	PlayerStartLocation *Point2D    `protobuf:"bytes,8,opt,name=player_start_location,json=playerStartLocation,proto3"`
	EnemyStartLocations []*Point2D  `protobuf:"bytes,9,rep,name=enemy_start_locations,json=enemyStartLocations,proto3"`
	Units               []*Unit     `protobuf:"bytes,10,rep,name=units,proto3"`
	GameLoop            uint32      `protobuf:"varint,11,opt,name=game_loop,json=gameLoop,proto3"`
}

func (s *Snapshot) Reset()      { *s = Snapshot{} }
func (*Snapshot) ProtoMessage() {}

func (s *Snapshot) String() string {
	if s == nil {
		return "<nil>"
	}
	return fmt.Sprintf("Snapshot{map: %q, game: %v, size: %v, loop: %v, units: %v}",
		s.MapName, s.GameId, s.MapSize, s.GameLoop, len(s.Units))
}

// Validate checks that the grids agree with the map size and that there is something to analyse.
func (s *Snapshot) Validate() error {
	if s.MapSize == nil || s.MapSize.X <= 0 || s.MapSize.Y <= 0 {
		return fmt.Errorf("%w: missing map size", ErrMalformedSnapshot)
	}
	grids := []struct {
		name string
		img  *ImageData
		bpp  int32
	}{
		{"pathing grid", s.PathingGrid, 1},
		{"placement grid", s.PlacementGrid, 1},
		{"terrain height", s.TerrainHeight, 8},
	}
	for _, g := range grids {
		if err := g.img.check(g.bpp); err != nil {
			return fmt.Errorf("%v: %w", g.name, err)
		}
		if *g.img.Size != *s.MapSize {
			return fmt.Errorf("%w: %v is %v, map is %v", ErrMalformedSnapshot, g.name, g.img.Size, s.MapSize)
		}
	}
	if s.PlayerStartLocation == nil {
		return fmt.Errorf("%w: missing player start location", ErrMalformedSnapshot)
	}
	for _, u := range s.Units {
		if u.IsResource() {
			return nil
		}
	}
	return fmt.Errorf("%w: no resources", ErrMalformedSnapshot)
}

// StartLocations returns the player start followed by the enemy starts.
func (s *Snapshot) StartLocations() []Point2D {
	starts := make([]Point2D, 0, len(s.EnemyStartLocations)+1)
	if s.PlayerStartLocation != nil {
		starts = append(starts, *s.PlayerStartLocation)
	}
	for _, p := range s.EnemyStartLocations {
		starts = append(starts, *p)
	}
	return starts
}

// Resources returns every mineral field and vespene geyser.
func (s *Snapshot) Resources() []*Unit {
	var resources []*Unit
	for _, u := range s.Units {
		if u.IsResource() {
			resources = append(resources, u)
		}
	}
	return resources
}
