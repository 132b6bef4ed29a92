package systems

import (
	"os"
	"testing"

	"github.com/maximpopov11/pokeworld/internal/core/types/enums"
	"github.com/maximpopov11/pokeworld/internal/domain"
	"github.com/maximpopov11/pokeworld/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

// newTestTile returns a tile with a border ring and the interior filled with kind.
func newTestTile(kind domain.TerrainKind) *domain.Tile {
	tile := domain.NewTile(domain.Coord{}, domain.Gates{North: 39, South: 39, West: 10, East: 10})
	for y := 0; y < domain.TileHeight; y++ {
		for x := 0; x < domain.TileWidth; x++ {
			p := domain.Position{X: x, Y: y}
			if tile.IsInterior(p) {
				tile.SetTerrain(p, kind)
			} else {
				tile.SetTerrain(p, domain.TerrainBorder)
			}
		}
	}
	return tile
}

// spawn adds an agent to the roster and places it on the tile.
func spawn(t *testing.T, tile *domain.Tile, roster *domain.Roster, kind enums.AgentKind, p domain.Position) *domain.Agent {
	t.Helper()
	id := roster.Add(domain.Agent{Kind: kind, Pos: p})
	if err := tile.Place(id, p); err != nil {
		t.Fatalf("place %v: %v", kind, err)
	}
	if kind == enums.AgentKindPlayer {
		tile.Player = id
	}
	return roster.Get(id)
}
