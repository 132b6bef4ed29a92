package engine

import (
	"errors"
	"fmt"
	"strings"

	"github.com/maximpopov11/pokeworld/internal/core/types/enums"
	"github.com/maximpopov11/pokeworld/internal/domain"
	"github.com/maximpopov11/pokeworld/internal/engine/handlers"
	"github.com/maximpopov11/pokeworld/internal/systems"
	"github.com/maximpopov11/pokeworld/pkg/utils"
)

// processResult applies the parts of a command result that reach beyond the
// handler: crossings, time, battles, encounters and the distance fields.
func (i *Instance) processResult(actor *domain.Agent, res handlers.Result) handlers.Result {
	if res.Exit {
		if guard := i.arrivalGuard(res.Gate); guard != nil {
			res.Exit = false
			res.Engage = guard.ID
		} else if err := i.crossTile(actor, res.Gate, actor.Turn+res.Cost); err != nil {
			i.log.WithError(err).Debug("Crossing refused")
			return handlers.Rejected(crossingRejection(err))
		}
	}

	if res.Consumed {
		actor.Wait(res.Cost)
	}

	if !res.Engage.IsNil() {
		if trainer := i.Roster.Get(res.Engage); trainer != nil {
			i.resolveBattle(actor, trainer)
		}
	}

	if res.Moved {
		systems.RecomputeChaserFields(i.tile, actor.Pos)
		i.rollEncounter(actor)
	}

	if res.Overlay != nil {
		i.overlay = res.Overlay
	}
	return res
}

func crossingRejection(err error) string {
	switch {
	case errors.Is(err, domain.ErrWorldEdge):
		return "You have reached the edge of the world."
	case errors.Is(err, domain.ErrOccupied), errors.Is(err, domain.ErrImpassable):
		return "The way is blocked."
	}
	return "You can't leave this way."
}

// resolveBattle runs a battle between the player and a trainer, whichever
// started it, and disables the trainer if it lost.
func (i *Instance) resolveBattle(challenger, defender *domain.Agent) {
	trainer := defender
	if trainer.Kind == enums.AgentKindPlayer {
		trainer = challenger
	}
	if trainer.Disabled {
		return
	}

	name := strings.ToLower(trainer.Kind.String())
	out := i.battles.Battle(challenger, defender)
	switch {
	case out.Defeated:
		trainer.Disabled = true
		i.AddLog(fmt.Sprintf("You defeated the %s!", name), handlers.MsgBattle)
	case out.Fled:
		i.AddLog(fmt.Sprintf("You fled from the %s.", name), handlers.MsgBattle)
	default:
		i.AddLog(fmt.Sprintf("The %s beat you.", name), handlers.MsgBattle)
	}
}

// rollEncounter may start a wild encounter when the player stands on
// encounter terrain.
func (i *Instance) rollEncounter(player *domain.Agent) {
	if !i.tile.TerrainAt(player.Pos).Info().Encounter {
		return
	}
	if !utils.Percent(i.Rng, i.cfg.EncounterChance) {
		return
	}

	wild := i.store.RandomCreature(i.Rng)
	out := i.battles.Encounter(player, wild)
	switch {
	case out.Captured:
		player.Party = append(player.Party, wild)
		i.AddLog(fmt.Sprintf("You caught a wild %s!", wild), handlers.MsgBattle)
	case out.Defeated:
		i.AddLog(fmt.Sprintf("You defeated a wild %s.", wild), handlers.MsgBattle)
	case out.Fled:
		i.AddLog(fmt.Sprintf("You ran from a wild %s.", wild), handlers.MsgBattle)
	default:
		i.AddLog(fmt.Sprintf("The wild %s got away.", wild), handlers.MsgBattle)
	}
}
