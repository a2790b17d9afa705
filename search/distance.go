package search

import (
	"container/heap"
	"math"

	"github.com/alexvelea/go-sc2ai/api"
)

// DistanceField holds the ground distance from one source to every tile of the pathing grid.
// Moves go to the 8 neighbours, diagonals cost √2 and may not cut unpathable corners.
type DistanceField struct {
	pathing api.ImageDataBits
	dist    []float64
}

// NewDistanceField runs a shortest path search from the pathable tile nearest to from.
func NewDistanceField(pathing api.ImageDataBits, from api.Point2D) DistanceField {
	w, h := pathing.Width(), pathing.Height()
	f := DistanceField{pathing: pathing, dist: make([]float64, int(w)*int(h))}
	for i := range f.dist {
		f.dist[i] = math.Inf(1)
	}

	src, ok := nearestPathable(pathing, from)
	if !ok {
		return f
	}
	f.dist[src.X+src.Y*w] = 0
	pq := &tileQueue{{idx: src.X + src.Y*w}}
	for pq.Len() > 0 {
		cur := heap.Pop(pq).(tileCost)
		if cur.cost > f.dist[cur.idx] {
			continue
		}
		x, y := cur.idx%w, cur.idx/w
		for _, d := range offsets8 {
			nx, ny := x+d[0], y+d[1]
			if !pathing.Get(nx, ny) {
				continue
			}
			step := 1.0
			if d[0] != 0 && d[1] != 0 {
				if !pathing.Get(nx, y) || !pathing.Get(x, ny) {
					continue
				}
				step = math.Sqrt2
			}
			if c := cur.cost + step; c < f.dist[nx+ny*w] {
				f.dist[nx+ny*w] = c
				heap.Push(pq, tileCost{idx: nx + ny*w, cost: c})
			}
		}
	}
	return f
}

// To returns the distance to the pathable tile nearest to p, and false if it cannot be reached.
func (f DistanceField) To(p api.Point2D) (float32, bool) {
	t, ok := nearestPathable(f.pathing, p)
	if !ok {
		return 0, false
	}
	d := f.dist[t.X+t.Y*f.pathing.Width()]
	if math.IsInf(d, 1) {
		return 0, false
	}
	return float32(d), true
}

// nearestPathable searches square rings of growing radius around the tile containing p.
func nearestPathable(pathing api.ImageDataBits, p api.Point2D) (api.Point2DI, bool) {
	x0, y0 := int32(p.X), int32(p.Y)
	maxR := pathing.Width()
	if pathing.Height() > maxR {
		maxR = pathing.Height()
	}
	for r := int32(0); r <= maxR; r++ {
		for y := y0 - r; y <= y0+r; y++ {
			for x := x0 - r; x <= x0+r; x++ {
				if x != x0-r && x != x0+r && y != y0-r && y != y0+r {
					continue
				}
				if pathing.Get(x, y) {
					return api.Point2DI{X: x, Y: y}, true
				}
			}
		}
	}
	return api.Point2DI{}, false
}

type tileCost struct {
	idx  int32
	cost float64
}

type tileQueue []tileCost

func (q tileQueue) Len() int            { return len(q) }
func (q tileQueue) Less(i, j int) bool  { return q[i].cost < q[j].cost }
func (q tileQueue) Swap(i, j int)       { q[i], q[j] = q[j], q[i] }
func (q *tileQueue) Push(x interface{}) { *q = append(*q, x.(tileCost)) }

func (q *tileQueue) Pop() interface{} {
	old := *q
	n := len(old)
	x := old[n-1]
	*q = old[:n-1]
	return x
}
