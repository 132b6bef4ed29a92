package domain

import "math"

// Step returns the neighbouring position in direction d.
func (p Position) Step(d Direction) Position {
	return Position{X: p.X + d.DX, Y: p.Y + d.DY}
}

// Shift returns p offset by (dx, dy).
func (p Position) Shift(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// ManhattanTo is |dx| + |dy|.
func (p Position) ManhattanTo(other Position) int {
	return abs(p.X-other.X) + abs(p.Y-other.Y)
}

// ChebyshevTo is the number of 8-connected steps between two cells.
func (p Position) ChebyshevTo(other Position) int {
	return max(abs(p.X-other.X), abs(p.Y-other.Y))
}

// IsAdjacent reports whether other is one of the 8 neighbours.
func (p Position) IsAdjacent(other Position) bool {
	return p.ChebyshevTo(other) == 1
}

// Neighbor returns the tile coordinate one step away.
func (c Coord) Neighbor(d Direction) Coord {
	return Coord{X: c.X + d.DX, Y: c.Y + d.DY}
}

// InWorld reports whether the tile lies inside the fixed world extent.
func (c Coord) InWorld() bool {
	return c.X >= -WorldRadius && c.X <= WorldRadius &&
		c.Y >= -WorldRadius && c.Y <= WorldRadius
}

// DistanceFromOrigin is the euclidean tile distance to (0, 0).
func (c Coord) DistanceFromOrigin() float64 {
	return math.Hypot(float64(c.X), float64(c.Y))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
