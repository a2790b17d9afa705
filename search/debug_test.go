package search

import (
	"strings"
	"testing"

	"github.com/alexvelea/go-sc2ai/search/searchtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDebugString(t *testing.T) {
	m := newTestMap(t, nil)

	rows := strings.Split(strings.TrimSuffix(m.DebugString(), "\n"), "\n")
	require.Len(t, rows, searchtest.MapSize)
	for _, row := range rows {
		require.Len(t, row, searchtest.MapSize)
	}

	at := func(x, y int) byte { return rows[y][x] }
	assert.Equal(t, byte(debugStart), at(12, 12))
	assert.Equal(t, byte(debugOccupied), at(10, 10))
	assert.Equal(t, byte(debugTownHall), at(34, 26))
	assert.Equal(t, byte(debugUpper), at(21, 19))
	assert.Equal(t, byte(debugLower), at(23, 21))
	assert.Equal(t, byte(debugVisionBlocker), at(46, 46))
	assert.Equal(t, byte(debugUnpathable), at(10, 31))
	assert.Equal(t, byte(debugMineral), at(6, 11))
	assert.Equal(t, byte(debugGeyser), at(19, 9))
	assert.Equal(t, byte(debugBuildable), at(50, 50))
}

func TestDebugWindow(t *testing.T) {
	m := newTestMap(t, nil)

	window := m.DebugWindow(searchtest.PlayerStart, 6)
	rows := strings.Split(strings.TrimSuffix(window, "\n"), "\n")
	require.Len(t, rows, 6)
	assert.Equal(t, byte(debugStart), rows[3][3])

	// Clipped to the map
	rows = strings.Split(strings.TrimSuffix(m.DebugWindow(pt(0, 0), 4), "\n"), "\n")
	require.Len(t, rows, 2)
	assert.Len(t, rows[0], 2)

	assert.Empty(t, m.DebugWindow(pt(500, 500), 4))
}
