package search

import (
	"testing"

	"github.com/alexvelea/go-sc2ai/api"
	"github.com/alexvelea/go-sc2ai/search/searchtest"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMap(t *testing.T, cache *GeometryCache) *Map {
	t.Helper()
	m, err := NewMap(searchtest.TwoPlayerSnapshot(), DefaultOptions(), cache)
	require.NoError(t, err)
	return m
}

func TestMapExpansionLocations(t *testing.T) {
	m := newTestMap(t, nil)

	locs := m.ExpansionLocations()
	assert.Equal(t, searchtest.BaseLocations, locs)
	assert.Contains(t, locs, searchtest.PlayerStart)
	assert.Contains(t, locs, searchtest.EnemyStart)
	assert.Zero(t, len(locs)%(len(m.EnemyStartLocations)+1))

	dict := m.ExpansionLocationsDict()
	require.Len(t, dict, len(locs))
	for _, loc := range locs {
		resources := dict[loc]
		assert.GreaterOrEqual(t, len(resources), 5, "%v", loc)
		assert.LessOrEqual(t, len(resources), 12, "%v", loc)
	}

	require.Len(t, m.Bases, len(locs))
	for _, base := range m.Bases {
		assert.Len(t, base.Minerals, 8, "%v", base)
		assert.Len(t, base.Geysers, 2, "%v", base)
		assert.Len(t, base.Resources, 10, "%v", base)
	}
}

func TestMapExpansionLocationsDictCopies(t *testing.T) {
	m := newTestMap(t, nil)

	dict := m.ExpansionLocationsDict()
	resources := dict[searchtest.PlayerStart]
	require.NotEmpty(t, resources)
	first := resources[0]
	resources[0] = nil

	assert.Same(t, first, m.ExpansionLocationsDict()[searchtest.PlayerStart][0])
	assert.Same(t, first, m.BaseLocations[0].Resources.Units()[0])
}

func TestMapVisionBlockerRegions(t *testing.T) {
	m := newTestMap(t, nil)

	regions := m.VisionBlockerRegions()
	require.Len(t, regions, 1)
	assert.Len(t, regions[0], len(m.VisionBlockers))
	assert.Equal(t, pt(46, 46), regions[0].Min())
	assert.Equal(t, pt(49, 49), regions[0][len(regions[0])-1])
}

func TestMapMainBaseRamp(t *testing.T) {
	m := newTestMap(t, nil)

	r, err := m.MainBaseRamp()
	require.NoError(t, err)
	assert.Equal(t, pt(21, 19), r.Points[0])
	assert.Less(t, r.TopCenter.Distance(m.StartLocation), float32(30))
	assert.NotNil(t, r.Wall(m.StartLocation))

	for _, start := range m.EnemyStartLocations {
		r, err := m.MainBaseRampFor(start)
		require.NoError(t, err)
		assert.Less(t, r.TopCenter.Distance(start), float32(30))
	}
}

func TestMapOwnedExpansions(t *testing.T) {
	m := newTestMap(t, nil)
	snap := searchtest.TwoPlayerSnapshot()

	owned := m.OwnedExpansions()
	require.Len(t, owned, 1)
	assert.Equal(t, api.UnitTag(1), owned[searchtest.PlayerStart].Tag)
	assert.True(t, m.NearestBase(searchtest.EnemyStart).IsEnemyOwned())

	// A town hall slightly off the natural's spot still occupies it
	natural := structure(3, api.UnitType_CommandCenter, pt(35.5, 27.5), 2.75)
	natural.BuildProgress = 0.5
	m.Update(append(snap.Units, natural))

	owned = m.OwnedExpansions()
	require.Len(t, owned, 2)
	assert.Same(t, natural, owned[searchtest.BaseLocations[2]])
	assert.True(t, m.NearestBase(natural.Pos2D()).IsUnderConstruction())
	assert.False(t, m.NearestBase(natural.Pos2D()).IsFinished())
	assert.True(t, m.NearestBase(searchtest.PlayerStart).IsFinished())
	assert.False(t, m.PlacementGrid.CanPlaceSize(searchtest.BaseLocations[2], townHallSize))

	m.Update(snap.Units)
	assert.Len(t, m.OwnedExpansions(), 1)
	assert.True(t, m.NearestBase(natural.Pos2D()).IsUnowned())
}

func TestMapNatural(t *testing.T) {
	m := newTestMap(t, nil)

	main := m.NearestBase(searchtest.PlayerStart)
	require.Equal(t, searchtest.PlayerStart, main.Location)
	assert.Equal(t, pt(34.5, 26.5), m.Natural().Location)
	assert.Equal(t, pt(61.5, 69.5), m.NearestBase(searchtest.EnemyStart).Natural().Location)

	assert.InDelta(t, 27.799, main.WalkDistance(m.Natural()), 0.01)
	assert.InDelta(t, 33.799, main.WalkDistance(m.NearestBase(pt(18.5, 40.5))), 0.01)
	assert.Equal(t, float32(0), main.WalkDistance(main))

	// Distances are symmetric and never shorter than a straight line
	for _, a := range m.Bases {
		for _, b := range m.Bases {
			assert.Equal(t, a.WalkDistance(b), b.WalkDistance(a))
			assert.GreaterOrEqual(t, a.WalkDistance(b), a.Location.Distance(b.Location))
		}
	}
}

func TestMapNearestBase(t *testing.T) {
	m := newTestMap(t, nil)

	assert.Equal(t, searchtest.BaseLocations[2], m.NearestBase(pt(33, 25)).Location)
	assert.Same(t, m.NearestBase(pt(33, 25)), m.NearestBase(pt(33.2, 25.1)))
	assert.Equal(t, searchtest.PlayerStart, m.NearestSelfBase(pt(90, 90)).Location)
	assert.Equal(t, searchtest.EnemyStart, m.NearestEnemyBase(pt(1, 1)).Location)
}

func TestMapIdempotent(t *testing.T) {
	a, b := newTestMap(t, nil), newTestMap(t, nil)

	assert.Equal(t, a.Ramps, b.Ramps)
	assert.Equal(t, a.VisionBlockers, b.VisionBlockers)
	assert.Equal(t, a.ExpansionLocations(), b.ExpansionLocations())

	ra, err := a.MainBaseRamp()
	require.NoError(t, err)
	rb, err := b.MainBaseRamp()
	require.NoError(t, err)
	assert.Equal(t, ra, rb)
	assert.Equal(t, ra.Wall(a.StartLocation), rb.Wall(b.StartLocation))
}

func TestMapSharedCache(t *testing.T) {
	cache := NewGeometryCache()
	a := newTestMap(t, cache)
	assert.Equal(t, 1, cache.Len())

	ra, err := a.MainBaseRamp()
	require.NoError(t, err)
	assert.Equal(t, 2, cache.Len())

	// Same game: the second map reuses the first one's geometry
	b := newTestMap(t, cache)
	rb, err := b.MainBaseRamp()
	require.NoError(t, err)
	assert.Same(t, ra, rb)
	assert.Equal(t, 2, cache.Len())

	cache.InvalidateMainBaseRamp(b.GameID, b.opts, b.StartLocation)
	rb, err = b.MainBaseRamp()
	require.NoError(t, err)
	assert.NotSame(t, ra, rb)
	assert.Equal(t, ra, rb)

	// Another game on the same map gets its own entries
	snap := searchtest.TwoPlayerSnapshot()
	snap.GameId = uuid.NewString()
	c, err := NewMap(snap, DefaultOptions(), cache)
	require.NoError(t, err)
	assert.NotEqual(t, a.GameID, c.GameID)
	rc, err := c.MainBaseRamp()
	require.NoError(t, err)
	assert.NotSame(t, ra, rc)
	assert.Equal(t, 4, cache.Len())

	cache.Clear()
	assert.Equal(t, 0, cache.Len())
}

func TestMapSharedCacheOptions(t *testing.T) {
	cache := NewGeometryCache()
	a := newTestMap(t, cache)
	_, err := a.MainBaseRamp()
	require.NoError(t, err)

	// Same game, but no region is large enough to become a ramp
	opts := DefaultOptions()
	opts.MinRegionSize = 1000
	b, err := NewMap(searchtest.TwoPlayerSnapshot(), opts, cache)
	require.NoError(t, err)
	require.Equal(t, a.GameID, b.GameID)
	assert.Empty(t, b.Ramps)

	_, err = b.MainBaseRamp()
	assert.ErrorIs(t, err, ErrNoRamp)
	assert.Equal(t, a.ExpansionLocations(), b.ExpansionLocations())
	assert.Equal(t, 3, cache.Len())
}

func TestNewMapGameID(t *testing.T) {
	m := newTestMap(t, nil)
	assert.Equal(t, uuid.MustParse(searchtest.GameID), m.GameID)

	snap := searchtest.TwoPlayerSnapshot()
	snap.GameId = "not a uuid"
	m2, err := NewMap(snap, DefaultOptions(), nil)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, m2.GameID)
	assert.NotEqual(t, m.GameID, m2.GameID)
}

func TestNewMapErrors(t *testing.T) {
	snap := searchtest.TwoPlayerSnapshot()
	snap.TerrainHeight = api.NewImageDataBytes(96, 64).ImageData()
	_, err := NewMap(snap, DefaultOptions(), nil)
	assert.ErrorIs(t, err, api.ErrMalformedSnapshot)

	snap = searchtest.TwoPlayerSnapshot()
	snap.Units = snap.Units[:2]
	_, err = NewMap(snap, DefaultOptions(), nil)
	assert.ErrorIs(t, err, api.ErrMalformedSnapshot)

	opts := DefaultOptions()
	opts.Connectivity = 3
	_, err = NewMap(searchtest.TwoPlayerSnapshot(), opts, nil)
	assert.ErrorIs(t, err, ErrInvalidOptions)

	// No room for a town hall anywhere
	snap = searchtest.TwoPlayerSnapshot()
	snap.PlacementGrid = api.NewImageDataBits(96, 96).ImageData()
	_, err = NewMap(snap, DefaultOptions(), nil)
	assert.ErrorIs(t, err, ErrNoTownHallSpot)

	opts = DefaultOptions()
	opts.ResourceSpreadThreshold = 2.5
	_, err = NewMap(searchtest.TwoPlayerSnapshot(), opts, nil)
	assert.ErrorIs(t, err, ErrDuplicateBaseLocation)
}
