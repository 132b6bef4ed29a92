package engine

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"

	"github.com/sirupsen/logrus"

	"github.com/maximpopov11/pokeworld/internal/core/types"
	"github.com/maximpopov11/pokeworld/internal/core/types/enums"
	"github.com/maximpopov11/pokeworld/internal/domain"
	"github.com/maximpopov11/pokeworld/internal/engine/handlers"
	"github.com/maximpopov11/pokeworld/internal/engine/handlers/actions"
	"github.com/maximpopov11/pokeworld/internal/systems"
	"github.com/maximpopov11/pokeworld/pkg/api"
	"github.com/maximpopov11/pokeworld/pkg/logger"
	"github.com/maximpopov11/pokeworld/pkg/utils"
	"github.com/maximpopov11/pokeworld/pkg/worldgen"
)

var (
	ErrNoInput = errors.New("session needs an input source")
	ErrNoSpawn = errors.New("no free path cell to spawn the player on")
)

// Options are the collaborators of a session. Only Input is required.
type Options struct {
	Input    InputSource
	Renderer Renderer
	Battles  BattleEngine
	Store    DataStore
	Recorder Recorder
}

// Instance is one running session: the world, its agents and the single
// scheduler that orders them. It is not safe for concurrent use; front ends
// only see the frames it hands out.
type Instance struct {
	cfg Config

	World  *WorldMap
	Roster *domain.Roster
	Turns  *TurnManager
	Rng    *rand.Rand

	// tile is the tile the player is on. Only its residents are scheduled.
	tile   *domain.Tile
	player types.AgentID
	tick   int

	input    InputSource
	renderer Renderer
	battles  BattleEngine
	store    DataStore
	recorder Recorder

	actionHandlers map[api.Action]handlers.HandlerFunc

	message string
	overlay []string
	quit    bool

	log *logrus.Entry
}

func defaultHandlers() map[api.Action]handlers.HandlerFunc {
	return map[api.Action]handlers.HandlerFunc{
		api.ActionMove:          handlers.WithDirection(actions.HandleMove),
		api.ActionRest:          handlers.WithEmptyPayload(actions.HandleRest),
		api.ActionEnterBuilding: handlers.WithEmptyPayload(actions.HandleEnter),
		api.ActionLeaveBuilding: handlers.WithEmptyPayload(actions.HandleLeave),
		api.ActionListTrainers:  handlers.WithEmptyPayload(actions.HandleListTrainers),
		api.ActionQuit:          handlers.WithEmptyPayload(actions.HandleQuit),
	}
}

// NewInstance generates the origin tile, places the player on a path cell
// and schedules everyone on it.
func NewInstance(cfg Config, opts Options) (*Instance, error) {
	if opts.Input == nil {
		return nil, ErrNoInput
	}
	if opts.Renderer == nil {
		opts.Renderer = NopRenderer{}
	}
	if opts.Battles == nil {
		opts.Battles = InstantVictory{}
	}
	if opts.Store == nil {
		opts.Store = NewCreatureRoster(cfg.Creatures...)
	}
	cfg = cfg.normalized()

	i := &Instance{
		cfg:            cfg,
		Roster:         domain.NewRoster(),
		Turns:          NewTurnManager(),
		Rng:            utils.NewRand(cfg.Seed),
		input:          opts.Input,
		renderer:       opts.Renderer,
		battles:        opts.Battles,
		store:          opts.Store,
		recorder:       opts.Recorder,
		actionHandlers: defaultHandlers(),
		log:            logger.Log.WithField("component", "session"),
	}
	i.World = NewWorldMap(cfg, i.Roster, i.store)

	tile, err := i.World.Get(domain.Coord{})
	if err != nil {
		return nil, fmt.Errorf("origin tile: %w", err)
	}
	pos, ok := worldgen.PickSpawn(tile, i.Rng)
	if !ok {
		return nil, ErrNoSpawn
	}

	i.player = i.Roster.Add(domain.Agent{
		Kind:  enums.AgentKindPlayer,
		Tile:  tile.Coord,
		Pos:   pos,
		Party: []domain.Creature{i.store.RandomCreature(i.Rng)},
	})
	if err := tile.Place(i.player, pos); err != nil {
		return nil, fmt.Errorf("place player: %w", err)
	}
	tile.Player = i.player
	i.tile = tile

	// The player goes first on a fresh session.
	i.Turns.Schedule(i.player, 0)
	i.registerResidents(tile, 0)
	systems.RecomputeChaserFields(tile, pos)

	i.log.WithFields(logrus.Fields{
		"seed":     cfg.Seed,
		"trainers": cfg.Trainers,
		"x":        pos.X,
		"y":        pos.Y,
	}).Info("Session created")
	return i, nil
}

// Player returns the player's agent.
func (i *Instance) Player() *domain.Agent {
	return i.Roster.Get(i.player)
}

// Tile returns the tile the player is on.
func (i *Instance) Tile() *domain.Tile {
	return i.tile
}

// Tick is the counter of the agent that acted last.
func (i *Instance) Tick() int {
	return i.tick
}

// Run drives the scheduler until the player quits, the input runs dry, ctx
// is cancelled or nobody is left to act.
func (i *Instance) Run(ctx context.Context) error {
	i.log.Info("Session loop started")
	for !i.quit {
		if ctx.Err() != nil {
			i.log.Info("Session cancelled")
			return nil
		}
		ok, err := i.Step(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				i.log.WithError(err).Info("Input closed, session over")
				return nil
			}
			return err
		}
		if !ok {
			i.log.Info("Nobody left to act")
			return nil
		}
	}
	i.log.WithField("tick", i.tick).Info("Session ended by player")
	return nil
}

// Step runs one turn: the agent with the lowest counter acts and is
// rescheduled. ok is false when the queue is empty.
func (i *Instance) Step(ctx context.Context) (ok bool, err error) {
	id, counter, ok := i.Turns.PopNext()
	if !ok {
		return false, nil
	}
	i.tick = counter

	agent := i.Roster.Get(id)
	if agent == nil {
		i.log.WithField("agent_id", id.String()).Warn("Scheduled agent missing from roster")
		return true, nil
	}

	if id != i.player {
		i.processAITurn(agent)
		return true, nil
	}

	if err := i.playerTurn(ctx, agent); err != nil {
		// Keep the player scheduled so the session stays consistent.
		i.Turns.Schedule(id, agent.Turn)
		return true, err
	}
	return true, nil
}

// playerTurn asks for commands until one uses up the turn.
func (i *Instance) playerTurn(ctx context.Context, player *domain.Agent) error {
	for {
		i.render()

		cmd, err := i.input.NextCommand(ctx)
		if err != nil {
			return err
		}
		if i.recorder != nil {
			if err := i.recorder.Record(player.Turn, cmd); err != nil {
				i.log.WithError(err).Warn("Failed to record command")
			}
		}

		i.message = ""
		i.overlay = nil

		res := i.executeCommand(cmd, player)
		if res.Quit {
			i.quit = true
			i.render()
			return nil
		}
		if res.Consumed {
			break
		}
	}
	i.Turns.Schedule(player.ID, player.Turn)
	return nil
}

// executeCommand runs the handler of cmd and applies what it reports.
func (i *Instance) executeCommand(cmd api.Command, actor *domain.Agent) handlers.Result {
	handler, ok := i.actionHandlers[cmd.Action]
	if !ok {
		i.AddLog(fmt.Sprintf("Unknown command %s.", cmd), handlers.MsgError)
		return handlers.EmptyResult()
	}

	ctx := handlers.Context{
		Tile:   i.tile,
		Roster: i.Roster,
		Actor:  actor,
	}

	result, err := handler(ctx, cmd)
	if err != nil {
		i.log.WithError(err).WithField("command", cmd.String()).Warn("Command rejected")
		result = handlers.Rejected("That does not work.")
	}

	result = i.processResult(actor, result)
	if result.Msg != "" {
		i.AddLog(result.Msg, result.MsgType)
	}
	return result
}

func (i *Instance) render() {
	player := i.Player()
	frame := buildFrame(i.tile, i.Roster, player, i.tick, i.message, i.overlay)
	i.renderer.Render(frame)
	if o, ok := i.renderer.(QueueObserver); ok {
		o.ObserveQueue(i.Turns.Snapshot())
	}
}

// registerResidents schedules every trainer of tile. The tile's clock was
// stopped at tile.LeftAt, so every counter moves forward by the time the
// player spent away and the residents keep their order among themselves.
func (i *Instance) registerResidents(tile *domain.Tile, now int) {
	offset := now - tile.LeftAt
	if offset < 0 {
		offset = 0
	}
	for _, id := range tile.Residents {
		a := i.Roster.Get(id)
		if a == nil {
			continue
		}
		a.Turn += offset
		i.Turns.Schedule(id, a.Turn)
	}
}

func (i *Instance) unregisterResidents(tile *domain.Tile) {
	for _, id := range tile.Residents {
		i.Turns.Remove(id)
	}
}
