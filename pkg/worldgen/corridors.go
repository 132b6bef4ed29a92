package worldgen

import (
	"github.com/maximpopov11/pokeworld/internal/domain"
)

// maxRepeat is how many consecutive steps a walk may take in one direction
// before that direction is forbidden for the next step.
const maxRepeat = 3

// walk tracks the anti-oscillation state of a corridor walk.
type walk struct {
	tile  *domain.Tile
	pos   domain.Position
	last  domain.Direction
	run   int
	cells []domain.Position
}

func newWalk(tile *domain.Tile, start domain.Position) *walk {
	w := &walk{tile: tile, pos: start}
	w.carve()
	return w
}

func (w *walk) carve() {
	w.tile.SetTerrain(w.pos, domain.TerrainPath)
	w.cells = append(w.cells, w.pos)
}

// repeating reports whether d has already been taken more than maxRepeat times in a row.
func (w *walk) repeating(d domain.Direction) bool {
	return w.run > maxRepeat && w.last == d
}

// cost is the generic cost of stepping in d, Infinite when not allowed.
func (w *walk) cost(d domain.Direction, allowed bool) int {
	if !allowed {
		return domain.Infinite
	}
	c := w.tile.Cell(w.pos.Step(d))
	if c == nil {
		return domain.Infinite
	}
	return c.PathCost
}

func (w *walk) step(d domain.Direction) {
	if d == w.last {
		w.run++
	} else {
		w.last = d
		w.run = 1
	}
	w.pos = w.pos.Step(d)
	w.carve()
}

// straighten walks along one axis until the coordinate matches target.
func (w *walk) straighten(target int, horizontal bool) {
	for {
		cur := w.pos.Y
		pos, neg := domain.South, domain.North
		if horizontal {
			cur = w.pos.X
			pos, neg = domain.East, domain.West
		}
		switch {
		case cur < target:
			w.step(pos)
		case cur > target:
			w.step(neg)
		default:
			return
		}
	}
}

// CarveNorthSouth carves a corridor from the north gate column to the south
// gate column and returns its cells in walk order.
func CarveNorthSouth(tile *domain.Tile, north, south int) []domain.Position {
	w := newWalk(tile, domain.Position{X: north, Y: 0})

	for w.pos.Y < domain.TileHeight-2 {
		x, y := w.pos.X, w.pos.Y
		e := w.cost(domain.East, x < domain.TileWidth-4 && w.last != domain.West && !w.repeating(domain.East))
		west := w.cost(domain.West, x > 2 && w.last != domain.East && !w.repeating(domain.West))
		s := w.cost(domain.South, y < domain.TileHeight-1 && !w.repeating(domain.South))

		switch {
		case e < west && e < s:
			w.step(domain.East)
		case west < s:
			w.step(domain.West)
		default:
			w.step(domain.South)
		}
	}

	w.straighten(south, true)
	w.step(domain.South)
	return w.cells
}

// CarveWestEast carves a corridor from the west gate row to the east gate
// row and returns its cells in walk order.
func CarveWestEast(tile *domain.Tile, west, east int) []domain.Position {
	w := newWalk(tile, domain.Position{X: 0, Y: west})

	for w.pos.X < domain.TileWidth-2 {
		x, y := w.pos.X, w.pos.Y
		s := w.cost(domain.South, y < domain.TileHeight-3 && w.last != domain.North && !w.repeating(domain.South))
		n := w.cost(domain.North, y > 2 && w.last != domain.South && !w.repeating(domain.North))
		e := w.cost(domain.East, x < domain.TileWidth-2 && !w.repeating(domain.East))

		switch {
		case n < s && n < e:
			w.step(domain.North)
		case s < e:
			w.step(domain.South)
		default:
			w.step(domain.East)
		}
	}

	w.straighten(east, false)
	w.step(domain.East)
	return w.cells
}
