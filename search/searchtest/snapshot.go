// Package searchtest builds synthetic snapshots for exercising the map analysis.
package searchtest

import (
	"github.com/alexvelea/go-sc2ai/api"
)

// MapSize is the width and height of the synthetic map.
const MapSize = 96

// GameID is the game id stamped on every synthetic snapshot.
const GameID = "6f1c2a4e-8d3b-4c1e-9a57-0b2d3e4f5a61"

const (
	highGround = 180
	lowGround  = 100
	podGround  = 140
)

var (
	PlayerStart = api.Point2D{X: 12.5, Y: 12.5}
	EnemyStart  = api.Point2D{X: 83.5, Y: 83.5}

	// BaseLocations lists the town hall position of every base, ordered by X, then Y.
	BaseLocations = []api.Point2D{
		{X: 12.5, Y: 12.5},
		{X: 18.5, Y: 40.5},
		{X: 34.5, Y: 26.5},
		{X: 40.5, Y: 58.5},
		{X: 55.5, Y: 37.5},
		{X: 61.5, Y: 69.5},
		{X: 77.5, Y: 55.5},
		{X: 83.5, Y: 83.5},
	}
)

// Mineral line and geysers of a base, relative to its town hall.
var (
	mineralOffsets = []api.Vec2D{
		{X: -6.5, Y: -1}, {X: -6.5, Y: 1}, {X: -6.5, Y: 3}, {X: -5.5, Y: -3},
		{X: -3.5, Y: -5}, {X: -1.5, Y: -6}, {X: 0.5, Y: -6}, {X: 2.5, Y: -6},
	}
	geyserOffsets = []api.Vec2D{{X: 7, Y: -3}, {X: -3, Y: 7}}
)

// baseLayout places the resource layout around center, mirrored along the axes with a negative flip.
type baseLayout struct {
	center api.Point2D
	fx, fy float32
}

// Player one's bases; player two's are their point mirrors.
var playerBases = []baseLayout{
	{api.Point2D{X: 12.5, Y: 12.5}, 1, 1},
	{api.Point2D{X: 34.5, Y: 26.5}, -1, 1},
	{api.Point2D{X: 18.5, Y: 40.5}, 1, -1},
	{api.Point2D{X: 40.5, Y: 58.5}, 1, -1},
}

type terrain struct {
	height    api.ImageDataBytes
	pathing   api.ImageDataBits
	placement api.ImageDataBits
}

// set applies f to tile (x, y) and its point mirror.
func (t *terrain) set(x, y int32, f func(x, y int32)) {
	f(x, y)
	f(MapSize-1-x, MapSize-1-y)
}

func (t *terrain) tile(x, y int32, height byte, pathable, buildable bool) {
	t.set(x, y, func(x, y int32) {
		t.height.Set(x, y, height)
		t.pathing.Set(x, y, pathable)
		t.placement.Set(x, y, buildable)
	})
}

// TwoPlayerSnapshot returns a point symmetric two player map. Each main sits on high ground in a
// corner and leaves through a diagonal ramp with a two tile upper edge. Each side also has a
// raised pod with a straight four tile wide ramp, and a vision blocker sits in the middle of the
// map. Every base has eight mineral fields and two geysers; two reduced mineral patches lie
// between the bases.
func TwoPlayerSnapshot() *api.Snapshot {
	t := &terrain{
		height:    api.NewImageDataBytes(MapSize, MapSize),
		pathing:   api.NewImageDataBits(MapSize, MapSize),
		placement: api.NewImageDataBits(MapSize, MapSize),
	}
	for y := int32(0); y < MapSize; y++ {
		for x := int32(0); x < MapSize; x++ {
			t.height.Set(x, y, lowGround)
			t.pathing.Set(x, y, true)
			t.placement.Set(x, y, true)
		}
	}

	// Main plateau and its cliff, with the ramp cut through the cliff along the diagonal
	for y := int32(0); y < MapSize; y++ {
		for x := int32(0); x < MapSize; x++ {
			s, d := x+y, x-y
			switch {
			case s <= 39:
				t.set(x, y, func(x, y int32) { t.height.Set(x, y, highGround) })
			case s <= 45:
				h := byte(highGround - (s-40)*16)
				t.tile(x, y, h, d >= -1 && d <= 2, false)
			}
		}
	}

	// Pod enclosed by a cliff ring
	for y := int32(5); y <= 18; y++ {
		for x := int32(59); x <= 72; x++ {
			if x == 59 || x == 72 || y == 5 || y == 18 {
				t.tile(x, y, podGround, false, false)
			} else {
				t.set(x, y, func(x, y int32) { t.height.Set(x, y, podGround) })
			}
		}
	}
	podRamp := []byte{140, 127, 113, 100}
	for y := int32(18); y <= 21; y++ {
		for x := int32(64); x <= 67; x++ {
			t.tile(x, y, podRamp[y-18], true, false)
		}
	}

	// Vision blocker
	for y := int32(46); y <= 49; y++ {
		for x := int32(46); x <= 49; x++ {
			t.set(x, y, func(x, y int32) { t.placement.Set(x, y, false) })
		}
	}

	units := []*api.Unit{
		townHall(1, api.UnitType_CommandCenter, "CommandCenter", api.Alliance_Self, PlayerStart, t.height),
		townHall(2, api.UnitType_Nexus, "Nexus", api.Alliance_Enemy, EnemyStart, t.height),
	}
	tag := api.UnitTag(1000)
	add := func(u *api.Unit) {
		u.Tag = tag
		tag++
		units = append(units, u)
	}
	for _, b := range playerBases {
		mirror := baseLayout{api.Point2D{X: MapSize - b.center.X, Y: MapSize - b.center.Y}, -b.fx, -b.fy}
		for _, l := range []baseLayout{b, mirror} {
			for _, o := range mineralOffsets {
				add(mineral(api.UnitType_MineralField, "MineralField", l.center.Offset(l.fx*o.X, l.fy*o.Y), t.height))
			}
			for _, o := range geyserOffsets {
				add(geyser(l.center.Offset(l.fx*o.X, l.fy*o.Y), t.height))
			}
		}
	}
	add(mineral(api.UnitType_MineralField450, "MineralField450", api.Point2D{X: 48, Y: 66.5}, t.height))
	add(mineral(api.UnitType_MineralField450, "MineralField450", api.Point2D{X: 48, Y: 29.5}, t.height))

	// Resources block pathing but are not part of the placement grid
	for _, u := range units {
		p := u.Pos2D()
		x, y := int32(p.X), int32(p.Y)
		switch {
		case u.IsMineral():
			t.pathing.Set(x-1, y, false)
			t.pathing.Set(x, y, false)
		case u.IsGeyser():
			for dy := int32(-1); dy <= 1; dy++ {
				for dx := int32(-1); dx <= 1; dx++ {
					t.pathing.Set(x+dx, y+dy, false)
				}
			}
		}
	}

	return &api.Snapshot{
		GameId:              GameID,
		MapName:             "SyntheticLE",
		MapSize:             &api.Size2DI{X: MapSize, Y: MapSize},
		PathingGrid:         t.pathing.ImageData(),
		PlacementGrid:       t.placement.ImageData(),
		TerrainHeight:       t.height.ImageData(),
		PlayableArea:        &api.RectangleI{P0: &api.Point2DI{X: 0, Y: 0}, P1: &api.Point2DI{X: MapSize, Y: MapSize}},
		PlayerStartLocation: &api.Point2D{X: PlayerStart.X, Y: PlayerStart.Y},
		EnemyStartLocations: []*api.Point2D{{X: EnemyStart.X, Y: EnemyStart.Y}},
		Units:               units,
	}
}

func position(p api.Point2D, height api.ImageDataBytes) *api.Point {
	t := p.Floor()
	return &api.Point{X: p.X, Y: p.Y, Z: -16 + 32*float32(height.Get(t.X, t.Y))/255}
}

func townHall(tag api.UnitTag, unitType api.UnitTypeID, name string, alliance api.Alliance, p api.Point2D, height api.ImageDataBytes) *api.Unit {
	return &api.Unit{
		Tag:           tag,
		UnitType:      unitType,
		Name:          name,
		Alliance:      alliance,
		Pos:           position(p, height),
		Radius:        2.75,
		BuildProgress: 1,
		IsStructure:   true,
	}
}

func mineral(unitType api.UnitTypeID, name string, p api.Point2D, height api.ImageDataBytes) *api.Unit {
	return &api.Unit{
		UnitType:        unitType,
		Name:            name,
		Alliance:        api.Alliance_Neutral,
		Pos:             position(p, height),
		Radius:          1.125,
		MineralContents: 1800,
	}
}

func geyser(p api.Point2D, height api.ImageDataBytes) *api.Unit {
	return &api.Unit{
		UnitType:        api.UnitType_VespeneGeyser,
		Name:            "VespeneGeyser",
		Alliance:        api.Alliance_Neutral,
		Pos:             position(p, height),
		Radius:          2.125,
		VespeneContents: 2250,
	}
}
