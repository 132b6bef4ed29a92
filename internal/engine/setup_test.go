package engine

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/maximpopov11/pokeworld/internal/core/types/enums"
	"github.com/maximpopov11/pokeworld/internal/domain"
	"github.com/maximpopov11/pokeworld/internal/systems"
	"github.com/maximpopov11/pokeworld/pkg/api"
	"github.com/maximpopov11/pokeworld/pkg/logger"
	"github.com/maximpopov11/pokeworld/pkg/utils"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

var testGates = domain.Gates{North: 39, South: 39, West: 10, East: 10}

// openTile is a tile of clearing with a border ring and path gates.
func openTile(coord domain.Coord, gates domain.Gates) *domain.Tile {
	tile := domain.NewTile(coord, gates)
	for y := 0; y < domain.TileHeight; y++ {
		for x := 0; x < domain.TileWidth; x++ {
			p := domain.Position{X: x, Y: y}
			if tile.IsInterior(p) {
				tile.SetTerrain(p, domain.TerrainClearing)
			} else {
				tile.SetTerrain(p, domain.TerrainBorder)
			}
		}
	}
	for _, g := range tile.GatePositions() {
		tile.SetTerrain(g, domain.TerrainPath)
	}
	return tile
}

// recordingRenderer keeps every frame and queue snapshot it is given.
type recordingRenderer struct {
	frames []api.Frame
	queues [][]api.QueueEntry
}

func (r *recordingRenderer) Render(f api.Frame) {
	r.frames = append(r.frames, f)
}

func (r *recordingRenderer) ObserveQueue(q []api.QueueEntry) {
	r.queues = append(r.queues, q)
}

type recorder struct {
	cmds []api.Command
}

func (r *recorder) Record(_ int, cmd api.Command) error {
	r.cmds = append(r.cmds, cmd)
	return nil
}

// newBareInstance builds a session on a hand-made open tile at coord, with
// no player and no trainers yet.
func newBareInstance(t *testing.T, coord domain.Coord, cmds ...api.Command) *Instance {
	t.Helper()
	cfg := Config{Seed: 7}
	i := &Instance{
		cfg:            cfg,
		Roster:         domain.NewRoster(),
		Turns:          NewTurnManager(),
		Rng:            utils.NewRand(cfg.Seed),
		input:          NewScriptedInput(cmds...),
		renderer:       NopRenderer{},
		battles:        InstantVictory{},
		store:          NewCreatureRoster(),
		actionHandlers: defaultHandlers(),
		log:            logger.Log.WithField("test", t.Name()),
	}
	i.World = NewWorldMap(cfg, i.Roster, i.store)

	tile := openTile(coord, testGates)
	i.World.tiles[coord] = tile
	i.tile = tile
	return i
}

func (i *Instance) placeTestPlayer(t *testing.T, p domain.Position) *domain.Agent {
	t.Helper()
	i.player = i.Roster.Add(domain.Agent{Kind: enums.AgentKindPlayer, Tile: i.tile.Coord, Pos: p})
	require.NoError(t, i.tile.Place(i.player, p))
	i.tile.Player = i.player
	i.Turns.Schedule(i.player, 0)
	systems.RecomputeChaserFields(i.tile, p)
	return i.Player()
}

// addTestTrainer puts a trainer on tile. It is only scheduled when tile is
// the player's tile.
func (i *Instance) addTestTrainer(t *testing.T, tile *domain.Tile, kind enums.AgentKind, p domain.Position) *domain.Agent {
	t.Helper()
	id := i.Roster.Add(domain.Agent{Kind: kind, Tile: tile.Coord, Pos: p})
	require.NoError(t, tile.Place(id, p))
	tile.AddResident(id)
	if tile == i.tile {
		i.Turns.Schedule(id, 0)
	}
	return i.Roster.Get(id)
}

func rests(n int) []api.Command {
	cmds := make([]api.Command, n)
	for k := range cmds {
		cmds[k] = api.Simple(api.ActionRest)
	}
	return cmds
}
