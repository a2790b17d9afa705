package search

import (
	"math"

	"github.com/alexvelea/go-sc2ai/api"
)

type bases struct {
	Bases     []*Base
	distances []float32 // from i <-> j where i < j at index j*(j-1)/2 + i
	cache     map[api.Point2D]*Base
}

func (b *bases) distance(i, j int) float32 {
	if i == j {
		return 0
	}
	if i > j {
		i, j = j, i
	}
	return b.distances[j*(j-1)/2+i]
}

func newBases(m *Map, locs []BaseLocation, pathing api.ImageDataBits) bases {
	b := bases{cache: map[api.Point2D]*Base{}}

	b.Bases = make([]*Base, len(locs))
	b.distances = make([]float32, len(locs)*(len(locs)-1)/2)

	fields := make([]DistanceField, len(locs))
	for j, loc := range locs {
		b.Bases[j] = newBase(m, j, loc)
		fields[j] = NewDistanceField(pathing, loc.Location)

		for i := 0; i < j; i++ {
			// Should be at least as far as the crow flies, in case both searches fail this is better than nothing
			dist := b.Bases[i].Location.Distance(b.Bases[j].Location)

			// Take the maximum computed distance
			if d, ok := fields[i].To(b.Bases[j].Location); ok && d > dist {
				dist = d
			}
			if d, ok := fields[j].To(b.Bases[i].Location); ok && d > dist {
				dist = d
			}
			b.distances[j*(j-1)/2+i] = dist
		}
	}

	return b
}

func (b *bases) update(units []*api.Unit) {
	observed := make(map[api.UnitTag]bool, len(units))
	for _, u := range units {
		observed[u.Tag] = true
	}

	for _, u := range units {
		if u.IsResource() && !u.IsReducedMineral() {
			b.NearestBase(u.Pos2D()).updateResource(u)
		}
	}

	for _, base := range b.Bases {
		base.update(observed)
	}

	for _, u := range units {
		if u.IsTownHall() {
			pos := u.Pos2D()
			base := b.NearestBase(pos)
			if base.TownHall == nil || pos.Distance2(base.Location) < base.TownHall.Pos2D().Distance2(base.Location) {
				base.TownHall = u
			}
		} else if u.IsGasBuilding() {
			pos := u.Pos2D()
			b.NearestBase(pos).GasBuildings[pos] = u
		}
	}
}

// NearestBase ...
func (b *bases) NearestBase(pos api.Point2D) *Base {
	// Round to the nearest half tile
	pos.X, pos.Y = float32(int(pos.X*2))/2, float32(int(pos.Y*2))/2

	// Memoize results for faster repeated use
	base, ok := b.cache[pos]
	if !ok {
		base = b.NearestBaseIf(pos, func(*Base) bool { return true })
		b.cache[pos] = base
	}
	return base
}

// NearestBaseIf ...
func (b *bases) NearestBaseIf(pos api.Point2D, f func(*Base) bool) *Base {
	best, minDist := (*Base)(nil), float32(math.MaxFloat32)
	for _, e := range b.Bases {
		if dist := pos.Distance2(e.Location); dist < minDist && f(e) {
			best, minDist = e, dist
		}
	}
	return best
}

// NearestSelfBase ...
func (b *bases) NearestSelfBase(pos api.Point2D) *Base {
	return b.NearestBaseIf(pos, (*Base).IsSelfOwned)
}

// NearestEnemyBase ...
func (b *bases) NearestEnemyBase(pos api.Point2D) *Base {
	return b.NearestBaseIf(pos, (*Base).IsEnemyOwned)
}
