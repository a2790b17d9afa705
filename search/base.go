package search

import (
	"log"

	"github.com/alexvelea/go-sc2ai/api"
)

// Base ...
type Base struct {
	m *Map
	i int

	ResourceCenter api.Point2D
	MineralCenter  api.Point2D
	Minerals       []*api.Unit
	Geysers        []*api.Unit
	Resources      map[api.UnitTag]*api.Unit

	Location     api.Point2D
	TownHall     *api.Unit
	GasBuildings map[api.Point2D]*api.Unit
}

func newBase(m *Map, i int, loc BaseLocation) *Base {
	// Re-compute center with 4x weight on geysers to better represent unbalanced gas bases
	cluster := UnitCluster{}
	minerals := UnitCluster{}
	for _, u := range loc.Resources.Units() {
		if u.IsGeyser() {
			cluster.Add(u)
			cluster.Add(u)
			cluster.Add(u)
		} else {
			minerals.Add(u)
		}
		cluster.Add(u)
	}

	base := &Base{
		m:              m,
		i:              i,
		ResourceCenter: cluster.Center(),
		MineralCenter:  loc.Location,
		Minerals:       make([]*api.Unit, 0, loc.Resources.Count()),
		Geysers:        make([]*api.Unit, 0, 2),
		Resources:      make(map[api.UnitTag]*api.Unit),
		Location:       loc.Location,
		GasBuildings:   map[api.Point2D]*api.Unit{},
	}
	if minerals.Count() > 0 {
		base.MineralCenter = minerals.Center()
	}
	return base
}

func (base *Base) updateResource(u *api.Unit) {
	switch {
	case u.IsMineral():
		base.Minerals = base.updateOrAdd(base.Minerals, u)
	case u.IsGeyser():
		base.Geysers = base.updateOrAdd(base.Geysers, u)
	default:
		log.Panicf("unknown resource: %v", u)
	}

	base.Resources[u.Tag] = u
}

func (base *Base) update(observed map[api.UnitTag]bool) {
	// Check for exhausted minerals
	for i := 0; i < len(base.Minerals); i++ {
		u := base.Minerals[i]
		if !observed[u.Tag] {
			delete(base.Resources, u.Tag)
			copy(base.Minerals[i:], base.Minerals[i+1:])
			base.Minerals = base.Minerals[:len(base.Minerals)-1]
			i--
		}
	}

	// Clear fields that are re-computed each loop
	base.TownHall = nil
	for k := range base.GasBuildings {
		delete(base.GasBuildings, k)
	}
}

func (base *Base) updateOrAdd(units []*api.Unit, u *api.Unit) []*api.Unit {
	for i, u2 := range units {
		if u2.Pos2D().Distance2(u.Pos2D()) < 1 {
			if u2.Pos2D() != u.Pos2D() {
				log.Panicf("%v != %v", u2.Pos2D(), u.Pos2D())
			}
			units[i] = u
			return units
		}
	}

	// Not found, append
	units = append(units, u)

	// Keep sorted
	uIsSmall, uDist := u.IsSmallMineral(), u.Pos2D().Distance2(base.Location)
	for i := 0; i < len(units)-1; i++ {
		isSmall := units[i].IsSmallMineral()
		if !isSmall && uIsSmall {
			continue // small patches after big ones, regardless of distance
		}

		dist := units[i].Pos2D().Distance2(base.Location)
		if uIsSmall != isSmall || uDist < dist {
			// found insertion point, shift back the rest and insert again
			copy(units[i+1:], units[i:])
			units[i] = u
			return units
		}
	}

	return units
}

// IsSelfOwned returns true if the current player owns the TownHall at this base.
func (base *Base) IsSelfOwned() bool {
	return base.TownHall != nil && base.TownHall.Alliance == api.Alliance_Self
}

func (base *Base) IsUnderConstruction() bool {
	return base.IsSelfOwned() && base.TownHall.BuildProgress != 1.0
}

func (base *Base) IsFinished() bool {
	return base.IsSelfOwned() && base.TownHall.BuildProgress == 1.0
}

// IsEnemyOwned returns true if the enemy player owns the TownHall at this base.
func (base *Base) IsEnemyOwned() bool {
	return base.TownHall != nil && base.TownHall.Alliance == api.Alliance_Enemy
}

// IsUnowned returns true if no player owns a TownHall at this base.
func (base *Base) IsUnowned() bool {
	return base.TownHall == nil
}

// Natural returns the closest other base.
func (base *Base) Natural() *Base {
	best, minDist := (*Base)(nil), float32(256*256)
	for _, other := range base.m.Bases {
		if dist := base.WalkDistance(other); dist > 0 && dist < minDist {
			best, minDist = other, dist
		}
	}
	return best
}

// WalkDistance returns the ground pathfinding distances between the bases.
func (base *Base) WalkDistance(other *Base) float32 {
	return base.m.distance(base.i, other.i)
}

func (base *Base) String() string {
	return "Base@" + base.Location.String()
}
