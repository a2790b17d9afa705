package search

import (
	"fmt"
	"math"
	"sort"

	"github.com/alexvelea/go-sc2ai/api"
)

var (
	barracksRadius = math.Sqrt(5)
	depotRadius    = math.Sqrt(2.5)
	cornerRadius   = math.Sqrt(5)
)

// WallPlacement holds the building positions that close off a wallable ramp from its upper tier.
// Terran walls use one barracks and three supply depots; protoss walls use a pylon behind two
// 3x3 buildings with a one tile gap left for a warp-in.
type WallPlacement struct {
	BarracksInMiddle         api.Point2D
	BarracksCorrectPlacement api.Point2D
	BarracksCanFitAddon      bool
	DepotInMiddle            api.Point2D
	// CornerDepots are ordered by X.
	CornerDepots [2]api.Point2D

	ProtossPylon     api.Point2D
	ProtossBuildings [2]api.Point2D
	ProtossWarpIn    api.Point2D
}

func (w *WallPlacement) String() string {
	if w == nil {
		return "<no wall>"
	}
	return fmt.Sprintf("Wall{barracks: %v, depots: %v %v, pylon: %v, gateways: %v, warp-in: %v}",
		w.BarracksCorrectPlacement, w.DepotInMiddle, w.CornerDepots, w.ProtossPylon, w.ProtossBuildings, w.ProtossWarpIn)
}

// Wall computes the wall for a player starting at start. It returns nil when the ramp is not
// wallable or its geometry is degenerate; a non-nil wall always has every position set.
func (r *Ramp) Wall(start api.Point2D) *WallPlacement {
	upper2 := r.Upper2ForRampWall()
	if upper2 == nil {
		return nil
	}
	p1, p2 := upper2[0].Offset(0.5, 0.5), upper2[1].Offset(0.5, 0.5)

	barracks, ok := r.awayFromBottom(p1, p2, barracksRadius)
	if !ok {
		return nil
	}
	depot, ok := r.awayFromBottom(p1, p2, depotRadius)
	if !ok {
		return nil
	}
	mid := api.Centroid([]api.Point2D{p1, p2})
	c1, c2, ok := mid.CircleIntersection(depot, cornerRadius)
	if !ok {
		return nil
	}

	w := &WallPlacement{
		BarracksInMiddle: barracks,
		DepotInMiddle:    depot,
		CornerDepots:     [2]api.Point2D{c1, c2},
	}
	if w.CornerDepots[1].X < w.CornerDepots[0].X {
		w.CornerDepots[0], w.CornerDepots[1] = w.CornerDepots[1], w.CornerDepots[0]
	}

	// The addon sits to the right of the barracks and must clear the right corner depot
	w.BarracksCanFitAddon = barracks.X+1 > w.CornerDepots[1].X
	w.BarracksCorrectPlacement = barracks
	if !w.BarracksCanFitAddon {
		w.BarracksCorrectPlacement = barracks.Offset(-2, 0)
	}

	direction := barracks.Sub(depot)
	w.ProtossPylon = depot.Add(direction.Mul(6))

	corners := w.CornerDepots
	sort.SliceStable(corners[:], func(i, j int) bool {
		return corners[i].Distance2(start) < corners[j].Distance2(start)
	})
	near, far := corners[0], corners[1]
	first := far.Add(direction)
	second := depot.Add(direction).Add(depot.Sub(first).Mul(1 / 1.5))
	w.ProtossBuildings = [2]api.Point2D{first, second}
	w.ProtossWarpIn = near.Add(direction.Mul(-1))
	return w
}

// awayFromBottom returns the intersection of the circles around p1 and p2 that lies farther from
// the bottom of the ramp.
func (r *Ramp) awayFromBottom(p1, p2 api.Point2D, radius float64) (api.Point2D, bool) {
	a, b, ok := p1.CircleIntersection(p2, radius)
	if !ok {
		return api.Point2D{}, false
	}
	if b.Distance2(r.BottomCenter) > a.Distance2(r.BottomCenter) {
		return b, true
	}
	return a, true
}
