package engine

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/maximpopov11/pokeworld/internal/core/types"
	"github.com/maximpopov11/pokeworld/internal/domain"
	"github.com/maximpopov11/pokeworld/internal/systems"
)

// exitDirection maps a cell of the border ring to the neighbouring tile it
// leads to.
func exitDirection(gate domain.Position) (domain.Direction, bool) {
	switch {
	case gate.Y == 0:
		return domain.North, true
	case gate.Y == domain.TileHeight-1:
		return domain.South, true
	case gate.X == 0:
		return domain.West, true
	case gate.X == domain.TileWidth-1:
		return domain.East, true
	}
	return domain.Direction{}, false
}

// arrivalCell is the first interior cell past the matching gate of the
// neighbour.
func arrivalCell(gate domain.Position, d domain.Direction) domain.Position {
	switch d {
	case domain.North:
		return domain.Position{X: gate.X, Y: domain.TileHeight - 2}
	case domain.South:
		return domain.Position{X: gate.X, Y: 1}
	case domain.West:
		return domain.Position{X: domain.TileWidth - 2, Y: gate.Y}
	default:
		return domain.Position{X: 1, Y: gate.Y}
	}
}

// arrivalGuard returns the live trainer standing on the far side of gate.
// Stepping through the gate challenges it like any other step onto a trainer.
func (i *Instance) arrivalGuard(gate domain.Position) *domain.Agent {
	d, ok := exitDirection(gate)
	if !ok {
		return nil
	}
	next, err := i.World.Get(i.tile.Coord.Neighbor(d))
	if err != nil {
		return nil
	}
	id := next.OccupantAt(arrivalCell(gate, d))
	if id.IsNil() {
		return nil
	}
	a := i.Roster.Get(id)
	if a == nil || !a.Kind.IsTrainer() || a.Disabled {
		return nil
	}
	return a
}

// crossTile moves the player through gate onto the neighbouring tile.
// Everything is checked before anything changes: on error the player, both
// tiles and the scheduler are untouched. counter is the player's counter
// once the step is paid. The departed tile's clock stops at counter and the
// arrival tile's residents move forward by the time it was stopped.
func (i *Instance) crossTile(player *domain.Agent, gate domain.Position, counter int) error {
	d, ok := exitDirection(gate)
	if !ok {
		return fmt.Errorf("gate %d,%d: %w", gate.X, gate.Y, domain.ErrOutOfBounds)
	}

	prev := i.tile
	dest := prev.Coord.Neighbor(d)
	next, err := i.World.Get(dest)
	if err != nil {
		return err
	}

	arrival := arrivalCell(gate, d)
	if next.CostAt(arrival, player.Class()) == domain.Infinite {
		return fmt.Errorf("arrival %d,%d: %w", arrival.X, arrival.Y, domain.ErrImpassable)
	}
	if err := next.Place(player.ID, arrival); err != nil {
		return fmt.Errorf("arrival: %w", err)
	}

	prev.Vacate(player.ID, player.Pos)
	prev.Player = types.NilAgentID
	prev.LeftAt = counter
	i.unregisterResidents(prev)
	prev.InvalidateFields()

	player.Tile = dest
	player.Pos = arrival
	next.Player = player.ID
	i.tile = next

	i.registerResidents(next, counter)
	systems.RecomputeChaserFields(next, arrival)

	i.log.WithFields(logrus.Fields{
		"from_x": prev.Coord.X,
		"from_y": prev.Coord.Y,
		"to_x":   dest.X,
		"to_y":   dest.Y,
	}).Info("Player changed tile")
	return nil
}
