package domain

import (
	"fmt"

	"github.com/maximpopov11/pokeworld/internal/core/types"
	"github.com/maximpopov11/pokeworld/internal/core/types/enums"
)

// Creature is an opaque statted entity handed out by the data store.
// The core only carries it around in parties.
type Creature struct {
	Species string `json:"species"`
	Level   int    `json:"level"`
}

func (c Creature) String() string {
	return fmt.Sprintf("%s (lv %d)", c.Species, c.Level)
}

// Agent is the full state of the player or a trainer.
// Only the Roster owns agents; cells and the scheduler hold AgentIDs.
type Agent struct {
	ID   types.AgentID   `json:"id"`
	Kind enums.AgentKind `json:"kind"`
	Tile Coord           `json:"tile"`
	Pos  Position        `json:"pos"`

	// Turn is the accumulated time cost; the scheduler orders by it.
	Turn int `json:"turn"`

	// Dir is meaningful only when DirSet is true.
	Dir    Direction `json:"dir"`
	DirSet bool      `json:"dirSet"`

	// Disabled is set once a trainer has been defeated. Disabled trainers
	// neither move nor start battles.
	Disabled bool `json:"disabled"`

	// InBuilding is used by the player only.
	InBuilding bool `json:"inBuilding"`

	Party []Creature `json:"party,omitempty"`
}

var kindSymbols = map[enums.AgentKind]byte{
	enums.AgentKindPlayer:     '@',
	enums.AgentKindRival:      'r',
	enums.AgentKindHiker:      'h',
	enums.AgentKindRoamer:     'n',
	enums.AgentKindPacer:      'p',
	enums.AgentKindWanderer:   'w',
	enums.AgentKindStationary: 's',
}

// Glyph is the map symbol of the agent.
func (a *Agent) Glyph() types.Glyph {
	sym, ok := kindSymbols[a.Kind]
	if !ok {
		sym = '?'
	}
	switch {
	case a.Kind == enums.AgentKindPlayer:
		return types.MakeGlyph(types.ColorCyan, sym)
	case a.Disabled:
		return types.MakeGlyph(types.ColorYellow, sym)
	default:
		return types.MakeGlyph(types.ColorRed, sym)
	}
}

// Class returns the cost column the agent moves with. Hikers use their own
// column, the player has its own, every other trainer moves like a rival.
func (a *Agent) Class() MoverClass {
	switch a.Kind {
	case enums.AgentKindPlayer:
		return MoverPlayer
	case enums.AgentKindHiker:
		return MoverHiker
	default:
		return MoverRival
	}
}

// Wait charges time without moving.
func (a *Agent) Wait(cost int) {
	a.Turn += cost
}

// Roster is the arena of every agent created during a session.
// Slots are never reused, so an AgentID stays valid for the whole session.
type Roster struct {
	agents []*Agent
}

func NewRoster() *Roster {
	return &Roster{agents: make([]*Agent, 0, 64)}
}

// Add stores a copy of a, assigns its id and returns it.
func (r *Roster) Add(a Agent) types.AgentID {
	id := types.PackAgentID(a.Kind, uint32(len(r.agents)))
	a.ID = id
	r.agents = append(r.agents, &a)
	return id
}

// Get returns the agent for id, or nil for the nil id and foreign ids.
func (r *Roster) Get(id types.AgentID) *Agent {
	if id.IsNil() {
		return nil
	}
	idx := int(id.Index())
	if idx >= len(r.agents) {
		return nil
	}
	a := r.agents[idx]
	if a.ID != id {
		return nil
	}
	return a
}

func (r *Roster) Len() int {
	return len(r.agents)
}

// All returns every agent in creation order.
func (r *Roster) All() []*Agent {
	return r.agents
}
