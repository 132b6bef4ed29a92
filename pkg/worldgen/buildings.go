package worldgen

import (
	"math/rand"

	"github.com/sirupsen/logrus"

	"github.com/maximpopov11/pokeworld/internal/domain"
	"github.com/maximpopov11/pokeworld/pkg/utils"
)

// Building chance falloff: 100% at the origin, then a linear drop with the
// tile distance, never below minBuildingChance.
const (
	minBuildingChance = 5
	buildingFalloff   = 45
	buildingBase      = 50
)

// BuildingChance returns the percent chance of each building on the tile at c.
func BuildingChance(c domain.Coord) int {
	if c == (domain.Coord{}) {
		return 100
	}
	d := c.DistanceFromOrigin()
	chance := int(-buildingFalloff*d/200) + buildingBase
	return max(chance, minBuildingChance)
}

func placeBuildings(tile *domain.Tile, rng *rand.Rand, log *logrus.Entry) {
	chance := BuildingChance(tile.Coord)
	for _, kind := range []domain.TerrainKind{domain.TerrainCenter, domain.TerrainMart} {
		if !utils.Percent(rng, chance) {
			continue
		}
		p, err := buildingSite(tile, rng)
		if err != nil {
			log.WithError(err).WithField("building", kind.String()).Warn("Building skipped")
			continue
		}
		tile.SetTerrain(p, kind)
	}
}

// buildingSite finds an unprotected interior cell with a path cell as a 4-neighbour.
func buildingSite(tile *domain.Tile, rng *rand.Rand) (domain.Position, error) {
	for attempt := 0; attempt < maxBuildingAttempts; attempt++ {
		p := randomInterior(rng)
		if tile.TerrainAt(p).IsProtected() {
			continue
		}
		for _, d := range domain.Cardinals {
			if tile.TerrainAt(p.Step(d)) == domain.TerrainPath {
				return p, nil
			}
		}
	}
	return domain.Position{}, errNoValidCell
}
