package engine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maximpopov11/pokeworld/internal/core/types"
	"github.com/maximpopov11/pokeworld/internal/core/types/enums"
	"github.com/maximpopov11/pokeworld/internal/domain"
	"github.com/maximpopov11/pokeworld/pkg/api"
)

func TestNewInstance(t *testing.T) {
	_, err := NewInstance(Config{Seed: 1}, Options{})
	require.ErrorIs(t, err, ErrNoInput)

	cfg := Config{Seed: 11, Trainers: 8, EncounterChance: 10}
	i, err := NewInstance(cfg, Options{Input: NewScriptedInput()})
	require.NoError(t, err)

	player := i.Player()
	require.NotNil(t, player)
	tile := i.Tile()
	assert.Equal(t, domain.Coord{}, tile.Coord)
	assert.Equal(t, domain.TerrainPath, tile.TerrainAt(player.Pos))
	assert.Equal(t, player.ID, tile.OccupantAt(player.Pos))
	assert.Equal(t, player.ID, tile.Player)
	assert.Len(t, player.Party, 1)

	assert.NotEmpty(t, tile.Residents)
	assert.Equal(t, len(tile.Residents)+1, i.Turns.Len())
	assert.Equal(t, player.ID, i.Turns.PeekNext().ID, "the player moves first")
	for _, class := range domain.ChaserClasses {
		require.True(t, tile.Field(class).Valid())
		assert.Zero(t, tile.Field(class).At(player.Pos))
	}
}

func TestStationaryNeverMoves(t *testing.T) {
	i := newBareInstance(t, domain.Coord{}, rests(10)...)
	i.placeTestPlayer(t, domain.Position{X: 10, Y: 10})
	s := i.addTestTrainer(t, i.tile, enums.AgentKindStationary, domain.Position{X: 30, Y: 10})

	require.NoError(t, i.Run(context.Background()))

	assert.Equal(t, domain.Position{X: 30, Y: 10}, s.Pos)
	assert.Equal(t, 10*domain.MinimumTurn, s.Turn)
	assert.Equal(t, 10*domain.MinimumTurn, i.Player().Turn)
}

func TestChaserClosesIn(t *testing.T) {
	i := newBareInstance(t, domain.Coord{}, rests(30)...)
	player := i.placeTestPlayer(t, domain.Position{X: 10, Y: 10})
	r := i.addTestTrainer(t, i.tile, enums.AgentKindRival, domain.Position{X: 16, Y: 13})

	ctx := context.Background()
	last := r.Pos.ChebyshevTo(player.Pos)
	for !r.Disabled {
		ok, err := i.Step(ctx)
		require.NoError(t, err)
		require.True(t, ok)

		d := r.Pos.ChebyshevTo(player.Pos)
		require.LessOrEqual(t, d, last, "rival moved away at tick %d", i.Tick())
		last = d
	}
	assert.Equal(t, 1, last)
	assert.Equal(t, domain.Position{X: 10, Y: 10}, player.Pos)
}

func TestAdjacentChaserBattlesWithinOneTick(t *testing.T) {
	for _, kind := range []enums.AgentKind{enums.AgentKindRival, enums.AgentKindHiker} {
		t.Run(kind.String(), func(t *testing.T) {
			i := newBareInstance(t, domain.Coord{}, rests(1)...)
			i.placeTestPlayer(t, domain.Position{X: 10, Y: 10})
			c := i.addTestTrainer(t, i.tile, kind, domain.Position{X: 11, Y: 11})

			ctx := context.Background()
			_, err := i.Step(ctx) // player rests
			require.NoError(t, err)
			_, err = i.Step(ctx) // trainer acts
			require.NoError(t, err)

			assert.True(t, c.Disabled)
			assert.Equal(t, domain.Position{X: 11, Y: 11}, c.Pos, "the challenger stays put")
			assert.Equal(t, domain.TerrainClearing.Cost(c.Class()), c.Turn, "the step is still charged")
		})
	}
}

func TestPlayerChallengesTrainer(t *testing.T) {
	i := newBareInstance(t, domain.Coord{}, api.Move(1, 0), api.Move(1, 0))
	rr := &recordingRenderer{}
	i.renderer = rr
	player := i.placeTestPlayer(t, domain.Position{X: 10, Y: 10})
	p := i.addTestTrainer(t, i.tile, enums.AgentKindPacer, domain.Position{X: 11, Y: 10})
	// Box the pacer in so it cannot walk away before the second challenge.
	for _, d := range domain.Directions {
		if n := p.Pos.Step(d); n != player.Pos {
			i.tile.SetTerrain(n, domain.TerrainLake)
		}
	}

	require.NoError(t, i.Run(context.Background()))

	assert.True(t, p.Disabled)
	assert.Equal(t, domain.Position{X: 10, Y: 10}, player.Pos)
	assert.Equal(t, domain.TerrainClearing.Cost(domain.MoverPlayer), player.Turn, "only the first challenge costs time")

	var msgs []string
	for _, f := range rr.frames {
		msgs = append(msgs, f.Message)
	}
	assert.Contains(t, msgs, "You defeated the pacer!")
	assert.Contains(t, msgs, "That trainer has already been defeated.")
}

func TestRejectedCommandsKeepTheTurn(t *testing.T) {
	i := newBareInstance(t, domain.Coord{},
		api.Move(1, 0),
		api.Simple(api.ActionListTrainers),
		api.Simple(api.ActionEnterBuilding),
		api.Simple(api.ActionRest),
	)
	rr := &recordingRenderer{}
	rec := &recorder{}
	i.renderer = rr
	i.recorder = rec
	player := i.placeTestPlayer(t, domain.Position{X: 10, Y: 10})
	i.tile.SetTerrain(domain.Position{X: 11, Y: 10}, domain.TerrainLake)

	require.NoError(t, i.Run(context.Background()))

	assert.Equal(t, domain.MinimumTurn, player.Turn)
	assert.Equal(t, domain.Position{X: 10, Y: 10}, player.Pos)
	assert.Len(t, rec.cmds, 4)

	require.Len(t, rr.frames, 5)
	assert.Equal(t, "You can't go that way.", rr.frames[1].Message)
	assert.NotEmpty(t, rr.frames[2].Overlay)
	assert.Equal(t, "There is no building here.", rr.frames[3].Message)
	assert.Empty(t, rr.frames[4].Overlay)
	assert.Len(t, rr.queues, 5)
}

func TestQuitEndsTheSession(t *testing.T) {
	i := newBareInstance(t, domain.Coord{}, api.Simple(api.ActionQuit), api.Simple(api.ActionRest))
	player := i.placeTestPlayer(t, domain.Position{X: 10, Y: 10})

	require.NoError(t, i.Run(context.Background()))
	assert.Zero(t, player.Turn)
	assert.True(t, i.quit)
}

func TestRunStopsOnCancelledContext(t *testing.T) {
	i := newBareInstance(t, domain.Coord{}, rests(5)...)
	player := i.placeTestPlayer(t, domain.Position{X: 10, Y: 10})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.NoError(t, i.Run(ctx))
	assert.Zero(t, player.Turn)
}

func TestRunEndsWhenQueueIsEmpty(t *testing.T) {
	i := newBareInstance(t, domain.Coord{})
	require.NoError(t, i.Run(context.Background()))
}

func TestEncounterCapturesIntoParty(t *testing.T) {
	i := newBareInstance(t, domain.Coord{}, api.Move(1, 0))
	i.cfg.EncounterChance = 100
	player := i.placeTestPlayer(t, domain.Position{X: 10, Y: 10})
	i.tile.SetTerrain(domain.Position{X: 11, Y: 10}, domain.TerrainGrass)

	require.NoError(t, i.Run(context.Background()))

	assert.Equal(t, domain.Position{X: 11, Y: 10}, player.Pos)
	require.Len(t, player.Party, 1)
	assert.Contains(t, i.message, "You caught a wild")
}

func TestNoEncounterOffGrass(t *testing.T) {
	i := newBareInstance(t, domain.Coord{}, api.Move(1, 0))
	i.cfg.EncounterChance = 100
	player := i.placeTestPlayer(t, domain.Position{X: 10, Y: 10})

	require.NoError(t, i.Run(context.Background()))
	assert.Empty(t, player.Party)
}

func TestFieldsFollowThePlayer(t *testing.T) {
	i := newBareInstance(t, domain.Coord{}, api.Move(1, 1))
	player := i.placeTestPlayer(t, domain.Position{X: 10, Y: 10})

	require.NoError(t, i.Run(context.Background()))
	for _, class := range domain.ChaserClasses {
		assert.Zero(t, i.tile.Field(class).At(player.Pos))
		assert.Equal(t, domain.TerrainClearing.Cost(class), i.tile.Field(class).At(domain.Position{X: 10, Y: 10}))
	}
}

// Trainers on a generated tile never share a cell and always sit where the
// tile says they are.
func TestGeneratedSessionKeepsOccupancyConsistent(t *testing.T) {
	i, err := NewInstance(Config{Seed: 3, Trainers: 20}, Options{Input: NewScriptedInput(rests(200)...)})
	require.NoError(t, err)
	require.NoError(t, i.Run(context.Background()))

	tile := i.Tile()
	seen := map[domain.Position]bool{}
	for _, id := range append([]types.AgentID{i.player}, tile.Residents...) {
		a := i.Roster.Get(id)
		require.NotNil(t, a)
		require.False(t, seen[a.Pos], "two agents on %v", a.Pos)
		seen[a.Pos] = true
		require.Equal(t, id, tile.OccupantAt(a.Pos))
		require.True(t, tile.IsInterior(a.Pos))
	}
}

func TestSameSeedSameSession(t *testing.T) {
	cmds := append(rests(20), api.Move(0, 1), api.Move(0, -1))
	run := func() *Instance {
		i, err := NewInstance(Config{Seed: 99, Trainers: 6}, Options{Input: NewScriptedInput(cmds...)})
		require.NoError(t, err)
		require.NoError(t, i.Run(context.Background()))
		return i
	}
	a, b := run(), run()

	assert.Equal(t, a.Player().Pos, b.Player().Pos)
	assert.Equal(t, a.Player().Turn, b.Player().Turn)
	for k, id := range a.Tile().Residents {
		assert.Equal(t, a.Roster.Get(id).Pos, b.Roster.Get(b.Tile().Residents[k]).Pos)
	}
}
