package systems

import (
	"github.com/maximpopov11/pokeworld/internal/core/types"
	"github.com/maximpopov11/pokeworld/internal/domain"
)

// MovementResult describes what a player step would do. CalculateMove never
// changes the tile or any agent.
type MovementResult struct {
	Target   domain.Position
	HasMoved bool
	// Engage is the trainer the step would challenge instead of moving.
	Engage types.AgentID
	// LeavesTile is set when the step lands on a gate of the border ring.
	LeavesTile bool
	Cost       int
	// Err is one of the domain movement sentinels when the step is rejected.
	Err error
}

// CalculateMove evaluates a player step in direction d.
func CalculateMove(a *domain.Agent, d domain.Direction, tile *domain.Tile, roster *domain.Roster) MovementResult {
	target := a.Pos.Step(d)
	res := MovementResult{Target: target}

	if !tile.InBounds(target) {
		res.Err = domain.ErrOutOfBounds
		return res
	}

	cost := tile.CostAt(target, a.Class())
	if cost == domain.Infinite {
		res.Err = domain.ErrImpassable
		return res
	}
	res.Cost = cost

	if occ := tile.OccupantAt(target); !occ.IsNil() && occ != a.ID {
		other := roster.Get(occ)
		if other != nil && other.Disabled {
			res.Err = domain.ErrOpponentDefeated
			return res
		}
		if other == nil {
			res.Err = domain.ErrOccupied
			return res
		}
		res.Engage = occ
		return res
	}

	res.HasMoved = true
	res.LeavesTile = tile.IsEdge(target)
	return res
}

// CanEnter reports whether a trainer may step onto dest: off the border
// ring, passable for class, and either empty or holding the player while
// the trainer can still battle.
func CanEnter(a *domain.Agent, dest domain.Position, class domain.MoverClass, tile *domain.Tile) bool {
	if !tile.IsInterior(dest) {
		return false
	}
	if tile.CostAt(dest, class) == domain.Infinite {
		return false
	}
	occ := tile.OccupantAt(dest)
	if occ.IsNil() {
		return true
	}
	return occ == tile.Player && !a.Disabled
}
