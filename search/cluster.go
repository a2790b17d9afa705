package search

import (
	"fmt"
	"log"
	"math"
	"sort"

	"github.com/alexvelea/go-sc2ai/api"
)

// UnitCluster is a cluster of units and the associated center of mass.
type UnitCluster struct {
	sumX, sumY float64
	units      []*api.Unit
}

// Add adds a new unit to the cluster and updates the center of mass.
func (c *UnitCluster) Add(u *api.Unit) {
	p := u.Pos2D()
	c.sumX += float64(p.X)
	c.sumY += float64(p.Y)
	c.units = append(c.units, u)
}

// Center is the center of mass of the cluster.
func (c *UnitCluster) Center() api.Point2D {
	n := float64(len(c.units))
	return api.Point2D{X: float32(c.sumX / n), Y: float32(c.sumY / n)}
}

// Units is the list of units in the cluster.
func (c *UnitCluster) Units() []*api.Unit {
	return c.units
}

// Count returns the number of units in the cluster.
func (c *UnitCluster) Count() int {
	return len(c.units)
}

// BaseLocation is a town hall position together with the resources it mines.
type BaseLocation struct {
	Location  api.Point2D
	Resources UnitCluster
}

// clusterResources groups resources so that every pair closer than threshold ends up in the same
// cluster. Reduced mineral patches are left out.
func clusterResources(resources []*api.Unit, threshold float32) []UnitCluster {
	var units []*api.Unit
	for _, u := range resources {
		if u.IsResource() && !u.IsReducedMineral() {
			units = append(units, u)
		}
	}

	parent := make([]int, len(units))
	for i := range parent {
		parent[i] = i
	}
	var find func(i int) int
	find = func(i int) int {
		if parent[i] != i {
			parent[i] = find(parent[i])
		}
		return parent[i]
	}

	limit := threshold * threshold
	for j := range units {
		for i := 0; i < j; i++ {
			if units[i].Pos2D().Distance2(units[j].Pos2D()) <= limit {
				if a, b := find(i), find(j); a != b {
					parent[b] = a
				}
			}
		}
	}

	var clusters []UnitCluster
	index := map[int]int{}
	for i, u := range units {
		root := find(i)
		k, ok := index[root]
		if !ok {
			k = len(clusters)
			index[root] = k
			clusters = append(clusters, UnitCluster{})
		}
		clusters[k].Add(u)
	}
	return clusters
}

// CalculateBaseLocations groups resources into bases and finds the town hall position for each
// one. placement is the map's raw placement grid; resource footprints are stamped on a copy.
// The result is ordered by X, then Y, and holds every location once.
func CalculateBaseLocations(resources []*api.Unit, placement api.ImageDataBits, opts Options) ([]BaseLocation, error) {
	clusters := clusterResources(resources, opts.ResourceSpreadThreshold)
	if len(clusters) == 0 {
		return nil, ErrNoResources
	}

	grid := stampResources(placement, resources)
	offsets := townHallOffsets(opts.TownHallSearchRange, opts.TownHallSearchRadius)

	locs := make([]BaseLocation, 0, len(clusters))
	for _, cluster := range clusters {
		pos, ok := townHallSpot(grid, cluster, offsets, opts)
		if !ok {
			return nil, fmt.Errorf("%w: %v resources around %v", ErrNoTownHallSpot, cluster.Count(), cluster.Center())
		}
		locs = append(locs, BaseLocation{Location: pos, Resources: cluster})
	}

	sort.Slice(locs, func(i, j int) bool {
		a, b := locs[i].Location, locs[j].Location
		if a.X != b.X {
			return a.X < b.X
		}
		return a.Y < b.Y
	})
	for i := 1; i < len(locs); i++ {
		if locs[i].Location == locs[i-1].Location {
			return nil, fmt.Errorf("%w: %v and %v resources at %v", ErrDuplicateBaseLocation,
				locs[i-1].Resources.Count(), locs[i].Resources.Count(), locs[i].Location)
		}
	}
	log.Printf("found %v base locations from %v resources", len(locs), len(resources))
	return locs, nil
}

// townHallOffsets lists the integer offsets within radius, x-major.
func townHallOffsets(r int32, radius float32) [][2]int32 {
	var offsets [][2]int32
	for dx := -r; dx <= r; dx++ {
		for dy := -r; dy <= r; dy++ {
			if math.Hypot(float64(dx), float64(dy)) <= float64(radius) {
				offsets = append(offsets, [2]int32{dx, dy})
			}
		}
	}
	return offsets
}

// townHallSpot returns the free town hall position closest overall to the cluster's resources.
func townHallSpot(grid api.ImageDataBits, cluster UnitCluster, offsets [][2]int32, opts Options) (api.Point2D, bool) {
	c := cluster.Center()
	cx, cy := float32(math.Floor(float64(c.X)))+0.5, float32(math.Floor(float64(c.Y)))+0.5

	best, found, minSum := api.Point2D{}, false, math.MaxFloat64
	for _, o := range offsets {
		p := api.Point2D{X: cx + float32(o[0]), Y: cy + float32(o[1])}
		if !checkGrid(grid, p, townHallSize, true) {
			continue
		}

		sum, ok := 0.0, true
		for _, u := range cluster.Units() {
			d := distance64(p, u.Pos2D())
			if (u.IsGeyser() && d < float64(opts.GeyserClearance)) || (!u.IsGeyser() && d < float64(opts.MineralClearance)) {
				ok = false
				break
			}
			sum += d
		}
		if ok && sum < minSum {
			best, found, minSum = p, true, sum
		}
	}
	return best, found
}

func distance64(a, b api.Point2D) float64 {
	return math.Hypot(float64(a.X-b.X), float64(a.Y-b.Y))
}
