package domain

import "math"

// Tile geometry. Every tile has the same size.
const (
	TileWidth  = 80
	TileHeight = 21
)

// WorldRadius bounds tile coordinates to [-WorldRadius, WorldRadius] on both axes.
const WorldRadius = 199

// Infinite marks a cost that can never be paid, and an unreachable distance.
const Infinite = math.MaxInt32

// Time costs, in turn-counter units.
const (
	// MinimumTurn is charged for resting and for any turn without a legal move.
	MinimumTurn = 5
	// BorderDiscount is the generic cost given to cells on a terrain boundary.
	BorderDiscount = 1
)

// Trainer population per tile.
const (
	DefaultTrainers = 10
	MaxTrainers     = 77
)

// DefaultEncounterChance is the percent chance of a wild encounter per step
// onto encounter terrain.
const DefaultEncounterChance = 10
