package search

import (
	"errors"
	"fmt"
)

var (
	// ErrNoResources is returned when there is nothing to build bases around.
	ErrNoResources = errors.New("search: no resources to cluster")
	// ErrNoTownHallSpot is returned when a resource group has no legal town hall position nearby.
	ErrNoTownHallSpot = errors.New("search: no town hall position for resource group")
	// ErrDuplicateBaseLocation is returned when two resource groups resolve to the same town hall
	// position, usually because the spread threshold splits one base.
	ErrDuplicateBaseLocation = errors.New("search: resource groups share a town hall position")
	// ErrNoRamp is returned when a map has no ramp to pick a main base ramp from.
	ErrNoRamp = errors.New("search: no ramps on map")
	// ErrInvalidOptions is returned by Options.Validate.
	ErrInvalidOptions = errors.New("search: invalid options")
)

// Connectivity selects which neighbours belong to the same region.
type Connectivity int

const (
	Conn4 Connectivity = 4
	Conn8 Connectivity = 8
)

// Options tunes the map analysis.
type Options struct {
	// Connectivity used when grouping ramp tiles.
	Connectivity Connectivity `yaml:"connectivity"`
	// MinRegionSize drops smaller tile groups as noise.
	MinRegionSize int `yaml:"min_region_size"`

	// ResourceSpreadThreshold merges resource groups with members this close.
	ResourceSpreadThreshold float32 `yaml:"resource_spread_threshold"`
	// TownHallSearchRange bounds the integer offsets tried around a resource group center.
	TownHallSearchRange int32 `yaml:"town_hall_search_range"`
	// TownHallSearchRadius drops offsets farther than this from the center.
	TownHallSearchRadius float32 `yaml:"town_hall_search_radius"`
	MineralClearance     float32 `yaml:"mineral_clearance"`
	GeyserClearance      float32 `yaml:"geyser_clearance"`

	// OwnedExpansionRadius is how close a town hall must be to count as occupying a base.
	OwnedExpansionRadius float32 `yaml:"owned_expansion_radius"`
}

// DefaultOptions returns the tuning that matches the ladder map pool.
func DefaultOptions() Options {
	return Options{
		Connectivity:            Conn4,
		MinRegionSize:           8,
		ResourceSpreadThreshold: 8.5,
		TownHallSearchRange:     7,
		TownHallSearchRadius:    8,
		MineralClearance:        6,
		GeyserClearance:         7,
		OwnedExpansionRadius:    15,
	}
}

func (o Options) Validate() error {
	switch {
	case o.Connectivity != Conn4 && o.Connectivity != Conn8:
		return fmt.Errorf("%w: connectivity must be 4 or 8, got %v", ErrInvalidOptions, o.Connectivity)
	case o.MinRegionSize < 1:
		return fmt.Errorf("%w: min region size must be positive, got %v", ErrInvalidOptions, o.MinRegionSize)
	case o.ResourceSpreadThreshold <= 0:
		return fmt.Errorf("%w: resource spread threshold must be positive, got %v", ErrInvalidOptions, o.ResourceSpreadThreshold)
	case o.TownHallSearchRange < 0 || o.TownHallSearchRadius < 0:
		return fmt.Errorf("%w: town hall search bounds must not be negative", ErrInvalidOptions)
	case o.MineralClearance < 0 || o.GeyserClearance < 0:
		return fmt.Errorf("%w: resource clearance must not be negative", ErrInvalidOptions)
	case o.OwnedExpansionRadius <= 0:
		return fmt.Errorf("%w: owned expansion radius must be positive, got %v", ErrInvalidOptions, o.OwnedExpansionRadius)
	}
	return nil
}
