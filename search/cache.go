package search

import (
	"github.com/alexvelea/go-sc2ai/api"
	"github.com/google/uuid"
)

// Cache memoizes computed values by key until they are invalidated. Failed computations are not
// stored. A Cache is not safe for concurrent use; give every game instance its own.
type Cache[K comparable, V any] struct {
	values map[K]V
}

// NewCache ...
func NewCache[K comparable, V any]() *Cache[K, V] {
	return &Cache[K, V]{values: map[K]V{}}
}

// GetOrCompute returns the cached value for key, calling compute on a miss.
func (c *Cache[K, V]) GetOrCompute(key K, compute func() (V, error)) (V, error) {
	if v, ok := c.values[key]; ok {
		return v, nil
	}
	v, err := compute()
	if err != nil {
		return v, err
	}
	c.values[key] = v
	return v, nil
}

// Invalidate drops key so the next lookup recomputes it.
func (c *Cache[K, V]) Invalidate(key K) {
	delete(c.values, key)
}

// Clear drops every entry.
func (c *Cache[K, V]) Clear() {
	c.values = map[K]V{}
}

func (c *Cache[K, V]) Len() int {
	return len(c.values)
}

type rampKey struct {
	game  uuid.UUID
	opts  Options
	start api.Point2D
}

type baseLocationsKey struct {
	game    uuid.UUID
	opts    Options
	mapName string
}

// GeometryCache holds the derived map geometry of one game. Keys include the game id and the
// options the geometry was computed with, so a cache that outlives its game never answers for
// the next one and maps analysed with different options never share entries.
type GeometryCache struct {
	mainRamps     *Cache[rampKey, *Ramp]
	baseLocations *Cache[baseLocationsKey, []BaseLocation]
}

// NewGeometryCache ...
func NewGeometryCache() *GeometryCache {
	return &GeometryCache{
		mainRamps:     NewCache[rampKey, *Ramp](),
		baseLocations: NewCache[baseLocationsKey, []BaseLocation](),
	}
}

// MainBaseRamp returns the main base ramp of start in game, computing it on a miss.
func (gc *GeometryCache) MainBaseRamp(game uuid.UUID, opts Options, start api.Point2D, compute func() (*Ramp, error)) (*Ramp, error) {
	return gc.mainRamps.GetOrCompute(rampKey{game, opts, start}, compute)
}

// BaseLocations returns the base locations of mapName in game, computing them on a miss.
func (gc *GeometryCache) BaseLocations(game uuid.UUID, opts Options, mapName string, compute func() ([]BaseLocation, error)) ([]BaseLocation, error) {
	return gc.baseLocations.GetOrCompute(baseLocationsKey{game, opts, mapName}, compute)
}

// InvalidateMainBaseRamp forces the next MainBaseRamp lookup for start to recompute.
func (gc *GeometryCache) InvalidateMainBaseRamp(game uuid.UUID, opts Options, start api.Point2D) {
	gc.mainRamps.Invalidate(rampKey{game, opts, start})
}

// InvalidateBaseLocations forces the next BaseLocations lookup for mapName to recompute.
func (gc *GeometryCache) InvalidateBaseLocations(game uuid.UUID, opts Options, mapName string) {
	gc.baseLocations.Invalidate(baseLocationsKey{game, opts, mapName})
}

// Clear drops every entry of every game.
func (gc *GeometryCache) Clear() {
	gc.mainRamps.Clear()
	gc.baseLocations.Clear()
}

// Len returns the number of cached values.
func (gc *GeometryCache) Len() int {
	return gc.mainRamps.Len() + gc.baseLocations.Len()
}
