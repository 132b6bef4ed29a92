package worldgen

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/sirupsen/logrus"

	"github.com/maximpopov11/pokeworld/internal/core/types"
	"github.com/maximpopov11/pokeworld/internal/domain"
	"github.com/maximpopov11/pokeworld/pkg/logger"
	"github.com/maximpopov11/pokeworld/pkg/utils"
)

// Attempt caps for the rejection-sampled placements.
const (
	maxSeedAttempts     = 100
	maxBuildingAttempts = 2000
	maxTrainerAttempts  = 2000
)

// MaxGrowthPasses bounds region growth: a seed reaches every interior cell
// within the interior's Chebyshev diameter.
const MaxGrowthPasses = max(domain.TileWidth, domain.TileHeight) - 2

var (
	ErrGrowthStalled  = errors.New("region growth made no progress")
	ErrGrowthTooLong  = errors.New("region growth exceeded its pass bound")
	errNoValidCell    = errors.New("no valid cell within the attempt cap")
	errNothingToPlant = errors.New("no free interior cell for seed")
)

// Spawner receives the trainers created during generation.
type Spawner interface {
	// Spawn stores a new agent and returns its id.
	Spawn(a domain.Agent) types.AgentID
	// RandomCreature hands out a creature for the trainer's party.
	RandomCreature(rng *rand.Rand) domain.Creature
}

// Options tune a Generator.
type Options struct {
	// Trainers per tile, clamped to [0, domain.MaxTrainers].
	Trainers int
	// Strict turns invariant failures into panics.
	Strict bool
}

// Generator builds tiles. Each tile draws from its own stream derived from
// the master seed and the tile coordinate, so a tile's content does not
// depend on the order tiles are visited in.
type Generator struct {
	seed int64
	opts Options
}

func New(seed int64, opts Options) *Generator {
	opts.Trainers = min(max(opts.Trainers, 0), domain.MaxTrainers)
	return &Generator{seed: seed, opts: opts}
}

// Generate builds the tile at coord with the given corridor gates.
// Trainers are only created when sp is not nil.
func (g *Generator) Generate(coord domain.Coord, gates domain.Gates, sp Spawner) *domain.Tile {
	rng := utils.NewRand(utils.DeriveSeed(g.seed, coord.X, coord.Y))
	log := logger.Log.WithFields(logrus.Fields{
		"component": "worldgen",
		"tile_x":    coord.X,
		"tile_y":    coord.Y,
	})

	tile := domain.NewTile(coord, gates)

	plantSeeds(tile, rng)
	passes, err := GrowRegions(tile)
	if err != nil {
		g.invariant(log, fmt.Errorf("grow regions: %w", err))
		fillUnassigned(tile, domain.TerrainClearing)
	}
	stampBorder(tile)
	relieveBoundaries(tile)
	CarveNorthSouth(tile, gates.North, gates.South)
	CarveWestEast(tile, gates.West, gates.East)
	placeBuildings(tile, rng, log)

	trainers := 0
	if sp != nil {
		trainers = placeTrainers(tile, rng, g.opts.Trainers, sp, log)
	}

	log.WithFields(logrus.Fields{
		"growth_passes": passes,
		"trainers":      trainers,
	}).Debug("Tile generated")
	return tile
}

func (g *Generator) invariant(log *logrus.Entry, err error) {
	if g.opts.Strict {
		panic(err)
	}
	log.WithError(err).Error("Generation invariant failed, continuing")
}

// RandomGates draws gate coordinates away from the corners.
func RandomGates(rng *rand.Rand) domain.Gates {
	col := func() int { return utils.RandRange(rng, 5, domain.TileWidth-6) }
	row := func() int { return utils.RandRange(rng, 5, domain.TileHeight-6) }
	return domain.Gates{North: col(), South: col(), West: row(), East: row()}
}

func randomInterior(rng *rand.Rand) domain.Position {
	return domain.Position{
		X: utils.RandRange(rng, 1, domain.TileWidth-2),
		Y: utils.RandRange(rng, 1, domain.TileHeight-2),
	}
}

// plantSeeds drops single cells of each seedable terrain on free interior cells.
func plantSeeds(tile *domain.Tile, rng *rand.Rand) {
	for _, s := range domain.SeedableTerrains {
		n := utils.RandRange(rng, s.Min, s.Max)
		for i := 0; i < n; i++ {
			if p, err := freeInterior(tile, rng); err == nil {
				tile.SetTerrain(p, s.Kind)
			}
		}
	}
}

func freeInterior(tile *domain.Tile, rng *rand.Rand) (domain.Position, error) {
	for attempt := 0; attempt < maxSeedAttempts; attempt++ {
		p := randomInterior(rng)
		if tile.TerrainAt(p) == domain.TerrainNone {
			return p, nil
		}
	}
	return domain.Position{}, errNothingToPlant
}

// GrowRegions floods unassigned interior cells from their assigned
// neighbours. Assignments found during a pass are committed together after
// the pass. Returns the number of passes; a full tile takes zero.
func GrowRegions(tile *domain.Tile) (int, error) {
	type pending struct {
		p    domain.Position
		kind domain.TerrainKind
	}

	passes := 0
	for {
		var grow []pending
		unassigned := 0

		for y := 1; y < domain.TileHeight-1; y++ {
			for x := 1; x < domain.TileWidth-1; x++ {
				p := domain.Position{X: x, Y: y}
				if tile.TerrainAt(p) != domain.TerrainNone {
					continue
				}
				unassigned++
				for _, d := range domain.Directions {
					n := p.Step(d)
					if !tile.IsInterior(n) {
						continue
					}
					if kind := tile.TerrainAt(n); kind != domain.TerrainNone {
						grow = append(grow, pending{p: p, kind: kind})
						break
					}
				}
			}
		}

		if unassigned == 0 {
			return passes, nil
		}
		if len(grow) == 0 {
			return passes, ErrGrowthStalled
		}
		passes++
		if passes > MaxGrowthPasses {
			return passes, ErrGrowthTooLong
		}
		for _, g := range grow {
			tile.SetTerrain(g.p, g.kind)
		}
	}
}

func fillUnassigned(tile *domain.Tile, kind domain.TerrainKind) {
	for y := 1; y < domain.TileHeight-1; y++ {
		for x := 1; x < domain.TileWidth-1; x++ {
			p := domain.Position{X: x, Y: y}
			if tile.TerrainAt(p) == domain.TerrainNone {
				tile.SetTerrain(p, kind)
			}
		}
	}
}

func stampBorder(tile *domain.Tile) {
	for y := 0; y < domain.TileHeight; y++ {
		for x := 0; x < domain.TileWidth; x++ {
			p := domain.Position{X: x, Y: y}
			if tile.IsEdge(p) {
				tile.SetTerrain(p, domain.TerrainBorder)
			}
		}
	}
}

// relieveBoundaries discounts the generic cost of every interior cell that
// touches a different interior terrain, so corridors follow region edges.
func relieveBoundaries(tile *domain.Tile) {
	for y := 1; y < domain.TileHeight-1; y++ {
		for x := 1; x < domain.TileWidth-1; x++ {
			p := domain.Position{X: x, Y: y}
			kind := tile.TerrainAt(p)
			for _, d := range domain.Directions {
				n := p.Step(d)
				if tile.IsInterior(n) && tile.TerrainAt(n) != kind {
					tile.Cell(p).PathCost = domain.BorderDiscount
					break
				}
			}
		}
	}
}
