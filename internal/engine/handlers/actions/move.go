package actions

import (
	"errors"

	"github.com/maximpopov11/pokeworld/internal/domain"
	"github.com/maximpopov11/pokeworld/internal/engine/handlers"
	"github.com/maximpopov11/pokeworld/internal/systems"
)

var moveRejections = []struct {
	err error
	msg string
}{
	{domain.ErrImpassable, "You can't go that way."},
	{domain.ErrOutOfBounds, "There is nothing out there."},
	{domain.ErrOpponentDefeated, "That trainer has already been defeated."},
	{domain.ErrOccupied, "Something is in the way."},
}

func rejection(err error) string {
	for _, r := range moveRejections {
		if errors.Is(err, r.err) {
			return r.msg
		}
	}
	return err.Error()
}

// HandleMove steps the actor one cell. Walking into a trainer challenges it,
// stepping onto a gate hands the crossing to the engine.
func HandleMove(ctx handlers.Context, d domain.Direction) (handlers.Result, error) {
	if ctx.Actor.InBuilding {
		return handlers.Rejected("You are inside. Press < to leave."), nil
	}

	res := systems.CalculateMove(ctx.Actor, d, ctx.Tile, ctx.Roster)
	switch {
	case res.Err != nil:
		return handlers.Rejected(rejection(res.Err)), nil
	case !res.Engage.IsNil():
		return handlers.Result{Consumed: true, Cost: res.Cost, Engage: res.Engage}, nil
	case res.LeavesTile:
		return handlers.Result{Consumed: true, Cost: res.Cost, Exit: true, Gate: res.Target}, nil
	}

	if err := ctx.Tile.MoveOccupant(ctx.Actor.ID, ctx.Actor.Pos, res.Target); err != nil {
		return handlers.EmptyResult(), err
	}
	ctx.Actor.Pos = res.Target
	return handlers.Result{Consumed: true, Cost: res.Cost, Moved: true}, nil
}
