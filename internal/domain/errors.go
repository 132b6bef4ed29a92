package domain

import "errors"

// Movement rejections. A rejected move changes nothing.
var (
	ErrImpassable       = errors.New("terrain is impassable")
	ErrOutOfBounds      = errors.New("out of bounds")
	ErrOccupied         = errors.New("cell is occupied")
	ErrOpponentDefeated = errors.New("opponent already defeated")
	ErrWorldEdge        = errors.New("edge of the world")
	ErrNotInBuilding    = errors.New("not inside a building")
	ErrNoBuilding       = errors.New("no building here")
)
