package worldgen

import (
	"math/rand"

	"github.com/sirupsen/logrus"

	"github.com/maximpopov11/pokeworld/internal/core/types/enums"
	"github.com/maximpopov11/pokeworld/internal/domain"
	"github.com/maximpopov11/pokeworld/internal/systems"
)

// trainerKind picks the kind of the i-th trainer of a tile: a rival and a
// hiker first, then a weighted draw.
func trainerKind(i int, rng *rand.Rand) enums.AgentKind {
	switch i {
	case 0:
		return enums.AgentKindRival
	case 1:
		return enums.AgentKindHiker
	}
	switch r := rng.Intn(10); {
	case r < 3:
		return enums.AgentKindRival
	case r < 6:
		return enums.AgentKindHiker
	case r == 6:
		return enums.AgentKindRoamer
	case r == 7:
		return enums.AgentKindPacer
	case r == 8:
		return enums.AgentKindWanderer
	default:
		return enums.AgentKindStationary
	}
}

// SpawnAnchor is the first interior cell of the north-south corridor. Trainers
// are only placed where they can walk to it.
func SpawnAnchor(tile *domain.Tile) domain.Position {
	return domain.Position{X: tile.Gates.North, Y: 1}
}

// ArrivalCells are the cells a player lands on when entering the tile
// through each of its gates, in North, South, West, East order.
func ArrivalCells(tile *domain.Tile) [4]domain.Position {
	return [4]domain.Position{
		SpawnAnchor(tile),
		{X: tile.Gates.South, Y: domain.TileHeight - 2},
		{X: 1, Y: tile.Gates.West},
		{X: domain.TileWidth - 2, Y: tile.Gates.East},
	}
}

func placeTrainers(tile *domain.Tile, rng *rand.Rand, n int, sp Spawner, log *logrus.Entry) int {
	anchor := SpawnAnchor(tile)
	fields := map[domain.MoverClass]*domain.DistanceField{}
	for _, class := range domain.ChaserClasses {
		fields[class] = systems.ComputeDistances(tile, anchor, class)
	}
	reserved := map[domain.Position]bool{}
	for _, p := range ArrivalCells(tile) {
		reserved[p] = true
	}

	placed := 0
	for i := 0; i < n; i++ {
		agent := domain.Agent{Kind: trainerKind(i, rng), Tile: tile.Coord}
		p, err := trainerSite(tile, rng, reserved, fields[agent.Class()])
		if err != nil {
			log.WithError(err).WithField("kind", agent.Kind.String()).Warn("Trainer skipped")
			continue
		}
		agent.Pos = p
		agent.Party = []domain.Creature{sp.RandomCreature(rng)}

		id := sp.Spawn(agent)
		if err := tile.Place(id, p); err != nil {
			log.WithError(err).Error("Trainer site already taken")
			continue
		}
		tile.AddResident(id)
		placed++
	}
	return placed
}

// trainerSite picks a free cell the trainer can walk to the anchor from.
// Reserved cells are kept clear so no gate is ever blocked on arrival.
func trainerSite(tile *domain.Tile, rng *rand.Rand, reserved map[domain.Position]bool, field *domain.DistanceField) (domain.Position, error) {
	for attempt := 0; attempt < maxTrainerAttempts; attempt++ {
		p := randomInterior(rng)
		if reserved[p] || !tile.OccupantAt(p).IsNil() {
			continue
		}
		if field.Reachable(p) {
			return p, nil
		}
	}
	return domain.Position{}, errNoValidCell
}

// PickSpawn returns a random free path cell for the player.
func PickSpawn(tile *domain.Tile, rng *rand.Rand) (domain.Position, bool) {
	for attempt := 0; attempt < maxTrainerAttempts; attempt++ {
		p := randomInterior(rng)
		if tile.TerrainAt(p) == domain.TerrainPath && tile.OccupantAt(p).IsNil() {
			return p, true
		}
	}
	// Sampling can miss on a crowded tile; fall back to a scan.
	for y := 1; y < domain.TileHeight-1; y++ {
		for x := 1; x < domain.TileWidth-1; x++ {
			p := domain.Position{X: x, Y: y}
			if tile.TerrainAt(p) == domain.TerrainPath && tile.OccupantAt(p).IsNil() {
				return p, true
			}
		}
	}
	return domain.Position{}, false
}
