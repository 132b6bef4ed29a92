package engine

import (
	"fmt"
	"math/rand"

	"github.com/sirupsen/logrus"

	"github.com/maximpopov11/pokeworld/internal/core/types"
	"github.com/maximpopov11/pokeworld/internal/domain"
	"github.com/maximpopov11/pokeworld/pkg/logger"
	"github.com/maximpopov11/pokeworld/pkg/utils"
	"github.com/maximpopov11/pokeworld/pkg/worldgen"
)

// gateSalt separates the gate stream of a tile from its terrain stream.
const gateSalt = 0x67617465

// WorldMap is the sparse grid of generated tiles. Tiles are created on first
// visit and kept for the rest of the session.
type WorldMap struct {
	seed   int64
	tiles  map[domain.Coord]*domain.Tile
	gen    *worldgen.Generator
	roster *domain.Roster
	store  DataStore
}

func NewWorldMap(cfg Config, roster *domain.Roster, store DataStore) *WorldMap {
	return &WorldMap{
		seed:   cfg.Seed,
		tiles:  make(map[domain.Coord]*domain.Tile),
		gen:    worldgen.New(cfg.Seed, worldgen.Options{Trainers: cfg.Trainers, Strict: cfg.Strict}),
		roster: roster,
		store:  store,
	}
}

// Lookup returns an already generated tile.
func (w *WorldMap) Lookup(c domain.Coord) (*domain.Tile, bool) {
	t, ok := w.tiles[c]
	return t, ok
}

// Get returns the tile at c, generating it on first use.
func (w *WorldMap) Get(c domain.Coord) (*domain.Tile, error) {
	if !c.InWorld() {
		return nil, fmt.Errorf("tile %d,%d: %w", c.X, c.Y, domain.ErrWorldEdge)
	}
	if t, ok := w.tiles[c]; ok {
		return t, nil
	}

	t := w.gen.Generate(c, w.gatesFor(c), w)
	w.tiles[c] = t

	logger.Log.WithFields(logrus.Fields{
		"tile_x":    c.X,
		"tile_y":    c.Y,
		"residents": len(t.Residents),
		"generated": len(w.tiles),
	}).Info("Tile created")
	return t, nil
}

// Len is the number of generated tiles.
func (w *WorldMap) Len() int {
	return len(w.tiles)
}

// gatesFor draws random gates and then copies every gate shared with an
// existing neighbour, so corridors line up across tile edges.
func (w *WorldMap) gatesFor(c domain.Coord) domain.Gates {
	g := worldgen.RandomGates(utils.NewRand(utils.DeriveSeed(w.seed^gateSalt, c.X, c.Y)))
	if n, ok := w.tiles[c.Neighbor(domain.North)]; ok {
		g.North = n.Gates.South
	}
	if n, ok := w.tiles[c.Neighbor(domain.South)]; ok {
		g.South = n.Gates.North
	}
	if n, ok := w.tiles[c.Neighbor(domain.West)]; ok {
		g.West = n.Gates.East
	}
	if n, ok := w.tiles[c.Neighbor(domain.East)]; ok {
		g.East = n.Gates.West
	}
	return g
}

// Spawn implements worldgen.Spawner.
func (w *WorldMap) Spawn(a domain.Agent) types.AgentID {
	return w.roster.Add(a)
}

// RandomCreature implements worldgen.Spawner.
func (w *WorldMap) RandomCreature(rng *rand.Rand) domain.Creature {
	return w.store.RandomCreature(rng)
}
