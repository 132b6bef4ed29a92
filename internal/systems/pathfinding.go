package systems

import (
	"container/heap"

	"github.com/maximpopov11/pokeworld/internal/domain"
)

// nodeQueue is an indexed binary min-heap of cell indices keyed by their
// tentative distance. slot maps a cell index to its heap position, so a
// shorter path found later is applied with heap.Fix instead of pushing a
// duplicate node.
type nodeQueue struct {
	cells []int
	slot  []int
	dist  []int
}

const notQueued = -1

func newNodeQueue(dist []int) *nodeQueue {
	slot := make([]int, len(dist))
	for i := range slot {
		slot[i] = notQueued
	}
	return &nodeQueue{
		cells: make([]int, 0, len(dist)),
		slot:  slot,
		dist:  dist,
	}
}

func (q nodeQueue) Len() int { return len(q.cells) }

func (q nodeQueue) Less(i, j int) bool {
	return q.dist[q.cells[i]] < q.dist[q.cells[j]]
}

func (q nodeQueue) Swap(i, j int) {
	q.cells[i], q.cells[j] = q.cells[j], q.cells[i]
	q.slot[q.cells[i]] = i
	q.slot[q.cells[j]] = j
}

func (q *nodeQueue) Push(x interface{}) {
	cell := x.(int)
	q.slot[cell] = len(q.cells)
	q.cells = append(q.cells, cell)
}

func (q *nodeQueue) Pop() interface{} {
	old := q.cells
	n := len(old)
	cell := old[n-1]
	q.slot[cell] = notQueued
	q.cells = old[:n-1]
	return cell
}

// decrease lowers the key of cell, inserting it if it is not queued yet.
func (q *nodeQueue) decrease(cell, d int) {
	q.dist[cell] = d
	if q.slot[cell] == notQueued {
		heap.Push(q, cell)
		return
	}
	heap.Fix(q, q.slot[cell])
}

// ComputeDistances runs Dijkstra from source over the 8-connected grid.
// Entering a cell costs that cell's class cost. Cells the class cannot
// enter are never queued; the source itself is always seeded with 0.
func ComputeDistances(tile *domain.Tile, source domain.Position, class domain.MoverClass) *domain.DistanceField {
	dist := make([]int, len(tile.Cells))
	for i := range dist {
		dist[i] = domain.Infinite
	}
	if !tile.InBounds(source) {
		return domain.NewDistanceField(class, source, dist)
	}

	done := make([]bool, len(tile.Cells))
	q := newNodeQueue(dist)
	q.decrease(tile.GetIndex(source.X, source.Y), 0)

	for q.Len() > 0 {
		cur := heap.Pop(q).(int)
		done[cur] = true
		p := domain.Position{X: cur % domain.TileWidth, Y: cur / domain.TileWidth}

		for _, d := range domain.Directions {
			n := p.Step(d)
			if !tile.InBounds(n) {
				continue
			}
			idx := tile.GetIndex(n.X, n.Y)
			if done[idx] {
				continue
			}
			cost := tile.CostAt(n, class)
			if cost == domain.Infinite {
				continue
			}
			if alt := dist[cur] + cost; alt < dist[idx] {
				q.decrease(idx, alt)
			}
		}
	}

	return domain.NewDistanceField(class, source, dist)
}

// RecomputeChaserFields refreshes both chaser fields of tile against source.
func RecomputeChaserFields(tile *domain.Tile, source domain.Position) {
	for _, class := range domain.ChaserClasses {
		tile.SetField(ComputeDistances(tile, source, class))
	}
}
