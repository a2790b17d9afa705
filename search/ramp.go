package search

import (
	"errors"
	"fmt"
	"log"
	"math"
	"sort"

	"github.com/alexvelea/go-sc2ai/api"
)

// ErrNotARamp is returned by NewRamp for regions that do not connect two height levels.
var ErrNotARamp = errors.New("search: region has a single height level")

// Ramp is a sloped region connecting two height tiers. Upper holds the tiles at the top height of
// the region and Lower holds every other tile, so together they partition Points.
type Ramp struct {
	Points       []api.Point2D
	Upper        []api.Point2D
	Lower        []api.Point2D
	TopCenter    api.Point2D
	BottomCenter api.Point2D
}

// NewRamp splits a region into its upper and lower tiles.
func NewRamp(region Region, hm HeightMap) (*Ramp, error) {
	top := byte(0)
	for _, p := range region {
		if h := hm.Raw(int32(p.X), int32(p.Y)); h > top {
			top = h
		}
	}

	r := &Ramp{Points: region}
	for _, p := range region {
		if hm.Raw(int32(p.X), int32(p.Y)) == top {
			r.Upper = append(r.Upper, p)
		} else {
			r.Lower = append(r.Lower, p)
		}
	}
	if len(r.Upper) == 0 || len(r.Lower) == 0 {
		return nil, ErrNotARamp
	}

	r.TopCenter = api.Centroid(r.Upper)
	r.BottomCenter = api.Centroid(r.Lower)
	return r, nil
}

// Size returns the number of tiles in the ramp.
func (r *Ramp) Size() int {
	return len(r.Points)
}

// String ...
func (r *Ramp) String() string {
	return fmt.Sprintf("Ramp{size: %v, upper: %v, top: %v, bottom: %v}", r.Size(), len(r.Upper), r.TopCenter, r.BottomCenter)
}

// IsWallable reports whether the upper tier has one of the widths the wall layouts are built for.
func (r *Ramp) IsWallable() bool {
	return len(r.Upper) == 2 || len(r.Upper) == 5
}

// Upper2ForRampWall returns the two upper tiles farthest from the bottom of the ramp, or nil if
// the ramp is not wallable.
func (r *Ramp) Upper2ForRampWall() []api.Point2D {
	if !r.IsWallable() {
		return nil
	}
	upper := append([]api.Point2D(nil), r.Upper...)
	sort.SliceStable(upper, func(i, j int) bool {
		return upper[i].Distance2(r.BottomCenter) > upper[j].Distance2(r.BottomCenter)
	})
	return upper[:2]
}

// FindRampsAndVisionBlockers scans the tiles that are pathable but not placeable. Tiles on a
// height change are grouped into ramps; flat ones are vision blockers.
func FindRampsAndVisionBlockers(snap *api.Snapshot, hm HeightMap, opts Options) ([]*Ramp, []api.Point2D) {
	pathing, placement := snap.PathingGrid.Bits(), snap.PlacementGrid.Bits()

	candidates := api.NewImageDataBits(pathing.Width(), pathing.Height())
	var blockers []api.Point2D
	for y := int32(0); y < pathing.Height(); y++ {
		for x := int32(0); x < pathing.Width(); x++ {
			if !pathing.Get(x, y) || placement.Get(x, y) || !snap.PlayableArea.Contains(x, y) {
				continue
			}
			if hm.EqualAround(x, y) {
				blockers = append(blockers, api.Point2D{X: float32(x), Y: float32(y)})
			} else {
				candidates.Set(x, y, true)
			}
		}
	}

	var ramps []*Ramp
	for _, region := range FindRegions(candidates, opts.Connectivity, opts.MinRegionSize) {
		r, err := NewRamp(region, hm)
		if err != nil {
			continue
		}
		ramps = append(ramps, r)
	}
	log.Printf("found %v ramps and %v vision blocker tiles", len(ramps), len(blockers))
	return ramps, blockers
}

// MainBaseRamp picks the ramp leading out of the main base at start: the closest wallable ramp,
// then the closest wide one, then the closest of any shape.
func MainBaseRamp(ramps []*Ramp, start api.Point2D) (*Ramp, error) {
	if len(ramps) == 0 {
		return nil, ErrNoRamp
	}

	tiers := []func(r *Ramp) bool{
		func(r *Ramp) bool { return r.IsWallable() },
		func(r *Ramp) bool { return len(r.Upper) == 4 || len(r.Upper) == 9 },
		func(r *Ramp) bool { return true },
	}
	for _, f := range tiers {
		if r := closestRamp(ramps, start, f); r != nil {
			return r, nil
		}
	}
	return nil, ErrNoRamp
}

func closestRamp(ramps []*Ramp, start api.Point2D, f func(*Ramp) bool) *Ramp {
	best, minDist := (*Ramp)(nil), float32(math.MaxFloat32)
	for _, r := range ramps {
		if dist := r.TopCenter.Distance2(start); dist < minDist && f(r) {
			best, minDist = r, dist
		}
	}
	return best
}
