package systems

import (
	"math/rand"

	"github.com/maximpopov11/pokeworld/internal/core/types/enums"
	"github.com/maximpopov11/pokeworld/internal/domain"
)

// Decision is a policy's verdict for one trainer turn. Policies only read
// state; the engine applies the decision.
type Decision struct {
	Move   bool
	Target domain.Position
	Cost   int

	// Dir and DirSet replace the agent's remembered direction.
	Dir    domain.Direction
	DirSet bool
}

// Policy decides the next step of one trainer kind.
type Policy interface {
	Decide(a *domain.Agent, tile *domain.Tile, rng *rand.Rand) Decision
}

var policies = map[enums.AgentKind]Policy{
	enums.AgentKindRival:      chaserPolicy{class: domain.MoverRival},
	enums.AgentKindHiker:      chaserPolicy{class: domain.MoverHiker},
	enums.AgentKindRoamer:     roamerPolicy{},
	enums.AgentKindPacer:      pacerPolicy{},
	enums.AgentKindWanderer:   roamerPolicy{sameTerrain: true},
	enums.AgentKindStationary: stationaryPolicy{},
}

// PolicyFor returns the policy of a trainer kind. Unknown kinds and the
// player stand still.
func PolicyFor(kind enums.AgentKind) Policy {
	if p, ok := policies[kind]; ok {
		return p
	}
	return stationaryPolicy{}
}

func idle(a *domain.Agent) Decision {
	return Decision{Cost: domain.MinimumTurn, Dir: a.Dir, DirSet: a.DirSet}
}

type stationaryPolicy struct{}

func (stationaryPolicy) Decide(a *domain.Agent, _ *domain.Tile, _ *rand.Rand) Decision {
	return idle(a)
}

// chaserPolicy descends the distance field of its class toward the player.
type chaserPolicy struct {
	class domain.MoverClass
}

func (c chaserPolicy) Decide(a *domain.Agent, tile *domain.Tile, _ *rand.Rand) Decision {
	if a.Disabled {
		return idle(a)
	}
	field := tile.Field(c.class)
	if !field.Valid() {
		return idle(a)
	}

	best := domain.Infinite
	var target domain.Position
	for _, d := range domain.Directions {
		n := a.Pos.Step(d)
		if !CanEnter(a, n, c.class, tile) {
			continue
		}
		if dist := field.At(n); dist < best {
			best = dist
			target = n
		}
	}
	if best == domain.Infinite {
		return idle(a)
	}
	return Decision{Move: true, Target: target, Cost: tile.CostAt(target, c.class), Dir: a.Dir, DirSet: a.DirSet}
}

// roamerPolicy keeps walking its remembered direction and picks a new random
// one when blocked. With sameTerrain it never leaves its terrain region.
type roamerPolicy struct {
	sameTerrain bool
}

func (r roamerPolicy) legal(a *domain.Agent, d domain.Direction, tile *domain.Tile) bool {
	n := a.Pos.Step(d)
	if !CanEnter(a, n, domain.MoverRival, tile) {
		return false
	}
	return !r.sameTerrain || tile.TerrainAt(n) == tile.TerrainAt(a.Pos)
}

func (r roamerPolicy) Decide(a *domain.Agent, tile *domain.Tile, rng *rand.Rand) Decision {
	if a.DirSet && r.legal(a, a.Dir, tile) {
		return step(a, a.Dir, tile)
	}
	d, ok := sampleDirection(rng, func(d domain.Direction) bool { return r.legal(a, d, tile) })
	if !ok {
		return idle(a)
	}
	return step(a, d, tile)
}

// pacerPolicy walks back and forth along one line, turning around on blockage.
type pacerPolicy struct{}

func (pacerPolicy) Decide(a *domain.Agent, tile *domain.Tile, rng *rand.Rand) Decision {
	legal := func(d domain.Direction) bool {
		return CanEnter(a, a.Pos.Step(d), domain.MoverRival, tile)
	}

	if !a.DirSet {
		d, ok := sampleDirection(rng, legal)
		if !ok {
			return idle(a)
		}
		return step(a, d, tile)
	}

	if legal(a.Dir) {
		return step(a, a.Dir, tile)
	}
	rev := a.Dir.Reverse()
	if legal(rev) {
		return step(a, rev, tile)
	}
	return Decision{Cost: domain.MinimumTurn, Dir: rev, DirSet: true}
}

func step(a *domain.Agent, d domain.Direction, tile *domain.Tile) Decision {
	target := a.Pos.Step(d)
	return Decision{
		Move:   true,
		Target: target,
		Cost:   tile.CostAt(target, domain.MoverRival),
		Dir:    d,
		DirSet: true,
	}
}

// sampleDirection draws uniformly among the 8 directions until one is legal.
// It checks first that some direction is legal so the loop always ends.
func sampleDirection(rng *rand.Rand, legal func(domain.Direction) bool) (domain.Direction, bool) {
	found := false
	for _, d := range domain.Directions {
		if legal(d) {
			found = true
			break
		}
	}
	if !found {
		return domain.Direction{}, false
	}
	for {
		d := domain.Directions[rng.Intn(len(domain.Directions))]
		if legal(d) {
			return d, true
		}
	}
}
