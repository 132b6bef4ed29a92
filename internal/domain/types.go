package domain

// Position is a tile-local cell coordinate.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Coord is a signed world coordinate of a tile. The origin tile is (0, 0).
type Coord struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Direction is a unit step on the 8-connected grid.
type Direction struct {
	DX int `json:"dx"`
	DY int `json:"dy"`
}

var (
	North     = Direction{0, -1}
	NorthEast = Direction{1, -1}
	East      = Direction{1, 0}
	SouthEast = Direction{1, 1}
	South     = Direction{0, 1}
	SouthWest = Direction{-1, 1}
	West      = Direction{-1, 0}
	NorthWest = Direction{-1, -1}
)

// Directions is the fixed neighbour scan order. Policies that break ties
// by scan order rely on it never changing.
var Directions = [8]Direction{
	NorthWest, North, NorthEast,
	West, East,
	SouthWest, South, SouthEast,
}

// Cardinals are the 4-neighbour steps used by building placement.
var Cardinals = [4]Direction{North, West, East, South}

// Reverse returns the opposite step.
func (d Direction) Reverse() Direction {
	return Direction{DX: -d.DX, DY: -d.DY}
}

// IsZero reports whether d is the "no direction" value.
func (d Direction) IsZero() bool {
	return d.DX == 0 && d.DY == 0
}

// MoverClass selects which per-class cost column of the terrain catalog applies.
type MoverClass uint8

const (
	MoverPlayer MoverClass = iota
	MoverRival
	MoverHiker

	moverClassCount
)

// ChaserClasses are the classes that get a distance field per tile.
var ChaserClasses = [2]MoverClass{MoverRival, MoverHiker}

func (c MoverClass) String() string {
	switch c {
	case MoverPlayer:
		return "player"
	case MoverRival:
		return "rival"
	case MoverHiker:
		return "hiker"
	}
	return "unknown"
}
