package api_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alexvelea/go-sc2ai/api"
	"github.com/alexvelea/go-sc2ai/search/searchtest"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotValidate(t *testing.T) {
	require.NoError(t, searchtest.TwoPlayerSnapshot().Validate())

	tests := []struct {
		name   string
		modify func(s *api.Snapshot)
	}{
		{"no map size", func(s *api.Snapshot) { s.MapSize = nil }},
		{"no pathing grid", func(s *api.Snapshot) { s.PathingGrid = nil }},
		{"placement grid size", func(s *api.Snapshot) {
			s.PlacementGrid = api.NewImageDataBits(64, 96).ImageData()
		}},
		{"height bits per pixel", func(s *api.Snapshot) {
			s.TerrainHeight = api.NewImageDataBits(96, 96).ImageData()
		}},
		{"truncated data", func(s *api.Snapshot) {
			s.PathingGrid.Data = s.PathingGrid.Data[:100]
		}},
		{"no start location", func(s *api.Snapshot) { s.PlayerStartLocation = nil }},
		{"no resources", func(s *api.Snapshot) { s.Units = s.Units[:2] }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := searchtest.TwoPlayerSnapshot()
			tt.modify(s)
			assert.ErrorIs(t, s.Validate(), api.ErrMalformedSnapshot)
		})
	}
}

func TestSnapshotAccessors(t *testing.T) {
	s := searchtest.TwoPlayerSnapshot()

	assert.Equal(t, []api.Point2D{searchtest.PlayerStart, searchtest.EnemyStart}, s.StartLocations())

	resources := s.Resources()
	require.Len(t, resources, 8*10+2)
	for _, u := range resources {
		assert.True(t, u.IsResource(), "%v", u)
		assert.False(t, u.IsTownHall())
	}
	assert.True(t, resources[len(resources)-1].IsReducedMineral())
	assert.False(t, resources[0].IsReducedMineral())
}

func TestSnapshotCodec(t *testing.T) {
	s := searchtest.TwoPlayerSnapshot()

	data, err := api.MarshalSnapshot(s)
	require.NoError(t, err)
	decoded, err := api.UnmarshalSnapshot(data)
	require.NoError(t, err)
	assert.Equal(t, s, decoded)
}

func TestUnmarshalSnapshotGameID(t *testing.T) {
	s := searchtest.TwoPlayerSnapshot()
	s.GameId = ""

	data, err := api.MarshalSnapshot(s)
	require.NoError(t, err)
	decoded, err := api.UnmarshalSnapshot(data)
	require.NoError(t, err)

	_, err = uuid.Parse(decoded.GameId)
	assert.NoError(t, err)
}

func TestUnmarshalSnapshotErrors(t *testing.T) {
	_, err := api.UnmarshalSnapshot([]byte{0xff})
	assert.Error(t, err)

	data, err := api.MarshalSnapshot(&api.Snapshot{MapName: "Empty"})
	require.NoError(t, err)
	_, err = api.UnmarshalSnapshot(data)
	assert.ErrorIs(t, err, api.ErrMalformedSnapshot)
}

func TestSaveLoadSnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "synthetic.pb")
	s := searchtest.TwoPlayerSnapshot()

	require.NoError(t, api.SaveSnapshot(path, s))
	loaded, err := api.LoadSnapshot(path)
	require.NoError(t, err)
	assert.Equal(t, s, loaded)

	_, err = api.LoadSnapshot(filepath.Join(t.TempDir(), "missing.pb"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
