package search

import (
	"strings"

	"github.com/alexvelea/go-sc2ai/api"
)

// Tile symbols used by the debug dumps.
const (
	debugUnpathable    = '#'
	debugBuildable     = '.'
	debugPathable      = ','
	debugOccupied      = 'o'
	debugUpper         = 'U'
	debugLower         = 'L'
	debugVisionBlocker = 'v'
	debugMineral       = 'm'
	debugGeyser        = 'g'
	debugTownHall      = 'T'
	debugStart         = 'S'
)

// DebugString renders the whole map, one row per tile line with y increasing downwards.
func (m *Map) DebugString() string {
	return m.DebugWindow(api.Point2D{X: float32(m.Pathing.Width()) / 2, Y: float32(m.Pathing.Height()) / 2},
		max32(m.Pathing.Width(), m.Pathing.Height()))
}

// DebugWindow renders the distance x distance tiles around pos.
func (m *Map) DebugWindow(pos api.Point2D, distance int32) string {
	xMin, yMin := int32(pos.X-float32(distance)/2), int32(pos.Y-float32(distance)/2)
	xMax, yMax := xMin+distance, yMin+distance
	if xMin < 0 {
		xMin = 0
	}
	if yMin < 0 {
		yMin = 0
	}
	if xMax > m.Pathing.Width() {
		xMax = m.Pathing.Width()
	}
	if yMax > m.Pathing.Height() {
		yMax = m.Pathing.Height()
	}
	if xMin >= xMax || yMin >= yMax {
		return ""
	}

	w := xMax - xMin
	rows := make([][]byte, yMax-yMin)
	for y := yMin; y < yMax; y++ {
		row := make([]byte, w)
		for x := xMin; x < xMax; x++ {
			switch {
			case !m.Pathing.Get(x, y) && !m.PlacementGrid.raw.Get(x, y):
				row[x-xMin] = debugUnpathable
			case m.PlacementGrid.raw.Get(x, y) && !m.PlacementGrid.Buildable(x, y):
				row[x-xMin] = debugOccupied
			case m.PlacementGrid.raw.Get(x, y):
				row[x-xMin] = debugBuildable
			default:
				row[x-xMin] = debugPathable
			}
		}
		rows[y-yMin] = row
	}

	set := func(p api.Point2D, c byte) {
		t := p.Floor()
		if t.X >= xMin && t.X < xMax && t.Y >= yMin && t.Y < yMax {
			rows[t.Y-yMin][t.X-xMin] = c
		}
	}
	for _, p := range m.VisionBlockers {
		set(p, debugVisionBlocker)
	}
	for _, r := range m.Ramps {
		for _, p := range r.Upper {
			set(p, debugUpper)
		}
		for _, p := range r.Lower {
			set(p, debugLower)
		}
	}
	for _, base := range m.Bases {
		for _, u := range base.Minerals {
			set(u.Pos2D(), debugMineral)
		}
		for _, u := range base.Geysers {
			set(u.Pos2D(), debugGeyser)
		}
		set(base.Location, debugTownHall)
	}
	set(m.StartLocation, debugStart)

	var sb strings.Builder
	sb.Grow(len(rows) * (int(w) + 1))
	for _, row := range rows {
		sb.Write(row)
		sb.WriteByte('\n')
	}
	return sb.String()
}

func max32(a, b int32) int32 {
	if a > b {
		return a
	}
	return b
}
