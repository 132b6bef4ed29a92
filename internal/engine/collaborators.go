package engine

import (
	"context"
	"io"
	"math/rand"

	"github.com/maximpopov11/pokeworld/internal/domain"
	"github.com/maximpopov11/pokeworld/pkg/api"
)

// Renderer draws a frame. It is called once per player turn and must not keep
// the frame past the call unless it copies it.
type Renderer interface {
	Render(f api.Frame)
}

// InputSource delivers player commands. NextCommand blocks until a command is
// available, the source is exhausted (io.EOF) or ctx is done.
type InputSource interface {
	NextCommand(ctx context.Context) (api.Command, error)
}

// Outcome is what a battle or encounter did. The core applies it.
type Outcome struct {
	// Defeated is set when the player beat the trainer or wild creature.
	Defeated bool
	// Fled is set when the player ran; nothing changes.
	Fled bool
	// Captured is set when a wild creature joins the party.
	Captured bool
}

// BattleEngine resolves fights. The agents are the live roster entries and
// must not be mutated by the engine.
type BattleEngine interface {
	Battle(challenger, defender *domain.Agent) Outcome
	Encounter(player *domain.Agent, wild domain.Creature) Outcome
}

// DataStore hands out creatures.
type DataStore interface {
	RandomCreature(rng *rand.Rand) domain.Creature
}

// Recorder receives every command the player issues.
type Recorder interface {
	Record(turn int, cmd api.Command) error
}

// QueueObserver is an optional Renderer extension that also wants the
// scheduler snapshot.
type QueueObserver interface {
	ObserveQueue(entries []api.QueueEntry)
}

const maxParty = 6

// InstantVictory wins every trainer battle and catches wild creatures until
// the party is full.
type InstantVictory struct{}

func (InstantVictory) Battle(_, _ *domain.Agent) Outcome {
	return Outcome{Defeated: true}
}

func (InstantVictory) Encounter(player *domain.Agent, _ domain.Creature) Outcome {
	if len(player.Party) >= maxParty {
		return Outcome{Fled: true}
	}
	return Outcome{Captured: true}
}

var defaultSpecies = []string{
	"bulbasaur", "charmander", "squirtle", "pidgey", "rattata",
	"caterpie", "weedle", "spearow", "ekans", "pikachu",
	"sandshrew", "nidoran", "zubat", "oddish", "geodude",
}

// CreatureRoster is a DataStore drawing from a fixed species list.
type CreatureRoster struct {
	species []string
}

// NewCreatureRoster uses the built-in list when species is empty.
func NewCreatureRoster(species ...string) *CreatureRoster {
	if len(species) == 0 {
		species = defaultSpecies
	}
	return &CreatureRoster{species: species}
}

func (r *CreatureRoster) RandomCreature(rng *rand.Rand) domain.Creature {
	return domain.Creature{
		Species: r.species[rng.Intn(len(r.species))],
		Level:   1 + rng.Intn(10),
	}
}

// ScriptedInput replays a fixed list of commands, then reports io.EOF.
type ScriptedInput struct {
	cmds []api.Command
	next int
}

func NewScriptedInput(cmds ...api.Command) *ScriptedInput {
	return &ScriptedInput{cmds: cmds}
}

func (s *ScriptedInput) NextCommand(ctx context.Context) (api.Command, error) {
	if err := ctx.Err(); err != nil {
		return api.Command{}, err
	}
	if s.next >= len(s.cmds) {
		return api.Command{}, io.EOF
	}
	cmd := s.cmds[s.next]
	s.next++
	return cmd, nil
}

// NopRenderer discards frames.
type NopRenderer struct{}

func (NopRenderer) Render(api.Frame) {}

// Renderers fans a frame out to several renderers in order.
type Renderers []Renderer

func (rs Renderers) Render(f api.Frame) {
	for _, r := range rs {
		r.Render(f)
	}
}

func (rs Renderers) ObserveQueue(entries []api.QueueEntry) {
	for _, r := range rs {
		if o, ok := r.(QueueObserver); ok {
			o.ObserveQueue(entries)
		}
	}
}
