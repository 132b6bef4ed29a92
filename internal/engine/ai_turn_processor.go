package engine

import (
	"github.com/sirupsen/logrus"

	"github.com/maximpopov11/pokeworld/internal/domain"
	"github.com/maximpopov11/pokeworld/internal/systems"
)

// processAITurn asks the trainer's policy for a step and applies it. A step
// onto the player starts a battle instead; the trainer stays put and still
// pays for the step.
func (i *Instance) processAITurn(npc *domain.Agent) {
	tile := i.tile
	if npc.Tile != tile.Coord {
		// Residents of other tiles are never scheduled; drop it.
		i.log.WithField("agent_id", npc.ID.String()).Warn("Off-tile agent was scheduled")
		return
	}

	d := systems.PolicyFor(npc.Kind).Decide(npc, tile, i.Rng)
	npc.Dir, npc.DirSet = d.Dir, d.DirSet

	if d.Move {
		if occ := tile.OccupantAt(d.Target); !occ.IsNil() && occ == i.player {
			if player := i.Player(); !player.InBuilding {
				i.resolveBattle(npc, player)
			}
		} else if err := tile.MoveOccupant(npc.ID, npc.Pos, d.Target); err != nil {
			i.log.WithError(err).WithFields(logrus.Fields{
				"agent_id": npc.ID.String(),
				"x":        d.Target.X,
				"y":        d.Target.Y,
			}).Debug("Trainer step refused")
		} else {
			npc.Pos = d.Target
		}
	}

	npc.Wait(d.Cost)
	i.Turns.Schedule(npc.ID, npc.Turn)
}
