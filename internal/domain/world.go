package domain

import "github.com/maximpopov11/pokeworld/internal/core/types"

// Cell is one square of a tile.
type Cell struct {
	Terrain TerrainKind `json:"terrain"`
	// PathCost starts at the kind's generic cost and is lowered by
	// boundary relief. Only corridor carving reads it.
	PathCost int `json:"pathCost"`
	// Occupant is NilAgentID for an empty cell.
	Occupant types.AgentID `json:"occupant"`
}

// Gates holds where the two corridors meet the tile edges: North and South
// are columns on the top and bottom rows, West and East are rows on the left
// and right columns.
type Gates struct {
	North int `json:"north"`
	South int `json:"south"`
	West  int `json:"west"`
	East  int `json:"east"`
}

// DistanceField is the cost of reaching every cell of one tile from a single
// source for one mover class. It is a cache: it is only meaningful while
// Valid is true, and the owner recomputes it whenever the source moves.
type DistanceField struct {
	Class  MoverClass
	Source Position
	Dist   []int
	valid  bool
}

// NewDistanceField wraps a computed distance grid.
func NewDistanceField(class MoverClass, source Position, dist []int) *DistanceField {
	return &DistanceField{Class: class, Source: source, Dist: dist, valid: true}
}

func (f *DistanceField) Valid() bool {
	return f != nil && f.valid
}

func (f *DistanceField) Invalidate() {
	if f != nil {
		f.valid = false
	}
}

// At returns the distance at p, Infinite when unreachable or out of the grid.
func (f *DistanceField) At(p Position) int {
	if !f.Valid() || p.X < 0 || p.X >= TileWidth || p.Y < 0 || p.Y >= TileHeight {
		return Infinite
	}
	return f.Dist[p.Y*TileWidth+p.X]
}

// Reachable reports whether p has a finite distance.
func (f *DistanceField) Reachable(p Position) bool {
	return f.At(p) != Infinite
}

// Tile is one fixed-size screen of the world. Tiles are created once per
// coordinate and kept for the rest of the session.
type Tile struct {
	Coord Coord  `json:"coord"`
	Cells []Cell `json:"-"`
	Gates Gates  `json:"gates"`

	// Player is the player's id while the player stands on this tile.
	Player types.AgentID `json:"player"`
	// Residents are the trainers generated on this tile.
	Residents []types.AgentID `json:"residents"`
	// LeftAt is the player's counter when the player last left the tile.
	// Residents stand still while the player is away.
	LeftAt int `json:"leftAt"`

	fields [moverClassCount]*DistanceField
}
