package domain

import (
	"fmt"

	"github.com/maximpopov11/pokeworld/internal/core/types"
)

// NewTile allocates a tile with every cell unassigned.
func NewTile(coord Coord, gates Gates) *Tile {
	return &Tile{
		Coord:     coord,
		Cells:     make([]Cell, TileWidth*TileHeight),
		Gates:     gates,
		Residents: make([]types.AgentID, 0),
	}
}

// GetIndex maps a position to its slot in Cells.
func (t *Tile) GetIndex(x, y int) int {
	return y*TileWidth + x
}

// InBounds reports whether p is on the tile, border ring included.
func (t *Tile) InBounds(p Position) bool {
	return p.X >= 0 && p.X < TileWidth && p.Y >= 0 && p.Y < TileHeight
}

// IsInterior reports whether p is on the tile and off the border ring.
func (t *Tile) IsInterior(p Position) bool {
	return p.X > 0 && p.X < TileWidth-1 && p.Y > 0 && p.Y < TileHeight-1
}

// IsEdge reports whether p lies on the outer ring.
func (t *Tile) IsEdge(p Position) bool {
	return t.InBounds(p) && !t.IsInterior(p)
}

// Cell returns a pointer to the cell at p, nil when out of bounds.
func (t *Tile) Cell(p Position) *Cell {
	if !t.InBounds(p) {
		return nil
	}
	return &t.Cells[t.GetIndex(p.X, p.Y)]
}

// TerrainAt returns the terrain at p; out of bounds reads as border.
func (t *Tile) TerrainAt(p Position) TerrainKind {
	c := t.Cell(p)
	if c == nil {
		return TerrainBorder
	}
	return c.Terrain
}

// SetTerrain overwrites the terrain at p and resets the generic cost.
func (t *Tile) SetTerrain(p Position, kind TerrainKind) {
	c := t.Cell(p)
	if c == nil {
		return
	}
	c.Terrain = kind
	c.PathCost = kind.Info().PathCost
}

// CostAt returns the class cost of entering p. Out of bounds is Infinite.
func (t *Tile) CostAt(p Position, class MoverClass) int {
	c := t.Cell(p)
	if c == nil {
		return Infinite
	}
	return c.Terrain.Cost(class)
}

// OccupantAt returns the id standing on p.
func (t *Tile) OccupantAt(p Position) types.AgentID {
	c := t.Cell(p)
	if c == nil {
		return types.NilAgentID
	}
	return c.Occupant
}

// Place puts id on an empty cell.
func (t *Tile) Place(id types.AgentID, p Position) error {
	c := t.Cell(p)
	if c == nil {
		return fmt.Errorf("place %v at %v: %w", id, p, ErrOutOfBounds)
	}
	if !c.Occupant.IsNil() && c.Occupant != id {
		return fmt.Errorf("place %v at %v: %w", id, p, ErrOccupied)
	}
	c.Occupant = id
	return nil
}

// Vacate clears p if it holds id.
func (t *Tile) Vacate(id types.AgentID, p Position) {
	if c := t.Cell(p); c != nil && c.Occupant == id {
		c.Occupant = types.NilAgentID
	}
}

// MoveOccupant moves id between two cells. Nothing changes on error.
func (t *Tile) MoveOccupant(id types.AgentID, from, to Position) error {
	dst := t.Cell(to)
	if dst == nil {
		return fmt.Errorf("move %v to %v: %w", id, to, ErrOutOfBounds)
	}
	if !dst.Occupant.IsNil() && dst.Occupant != id {
		return fmt.Errorf("move %v to %v: %w", id, to, ErrOccupied)
	}
	t.Vacate(id, from)
	dst.Occupant = id
	return nil
}

// AddResident records a trainer generated on this tile.
func (t *Tile) AddResident(id types.AgentID) {
	t.Residents = append(t.Residents, id)
}

// Field returns the cached distance field for class, possibly invalid.
func (t *Tile) Field(class MoverClass) *DistanceField {
	if class >= moverClassCount {
		return nil
	}
	return t.fields[class]
}

// SetField stores a freshly computed field.
func (t *Tile) SetField(f *DistanceField) {
	if f == nil || f.Class >= moverClassCount {
		return
	}
	t.fields[f.Class] = f
}

// InvalidateFields drops every cached field, e.g. when the player leaves.
func (t *Tile) InvalidateFields() {
	for _, f := range t.fields {
		f.Invalidate()
	}
}

// Find returns the first position holding the given terrain, scanning rows.
func (t *Tile) Find(kind TerrainKind) (Position, bool) {
	for y := 0; y < TileHeight; y++ {
		for x := 0; x < TileWidth; x++ {
			if t.Cells[t.GetIndex(x, y)].Terrain == kind {
				return Position{X: x, Y: y}, true
			}
		}
	}
	return Position{}, false
}

// GatePositions returns the four gate cells on the border ring.
func (t *Tile) GatePositions() [4]Position {
	return [4]Position{
		{X: t.Gates.North, Y: 0},
		{X: t.Gates.South, Y: TileHeight - 1},
		{X: 0, Y: t.Gates.West},
		{X: TileWidth - 1, Y: t.Gates.East},
	}
}
