package actions

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maximpopov11/pokeworld/internal/core/types/enums"
	"github.com/maximpopov11/pokeworld/internal/domain"
	"github.com/maximpopov11/pokeworld/internal/engine/handlers"
	"github.com/maximpopov11/pokeworld/pkg/api"
)

func newContext(t *testing.T, playerAt domain.Position) handlers.Context {
	t.Helper()
	tile := domain.NewTile(domain.Coord{}, domain.Gates{North: 39, South: 39, West: 10, East: 10})
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
	roster := domain.NewRoster()
	id := roster.Add(domain.Agent{Kind: enums.AgentKindPlayer, Pos: playerAt})
	require.NoError(t, tile.Place(id, playerAt))
	tile.Player = id
	return handlers.Context{Tile: tile, Roster: roster, Actor: roster.Get(id)}
}

func addTrainer(t *testing.T, ctx handlers.Context, kind enums.AgentKind, p domain.Position) *domain.Agent {
	t.Helper()
	id := ctx.Roster.Add(domain.Agent{Kind: kind, Pos: p})
	require.NoError(t, ctx.Tile.Place(id, p))
	ctx.Tile.AddResident(id)
	return ctx.Roster.Get(id)
}

func TestHandleMove(t *testing.T) {
	t.Run("moves and charges the destination cost", func(t *testing.T) {
		ctx := newContext(t, domain.Position{X: 5, Y: 5})
		ctx.Tile.SetTerrain(domain.Position{X: 6, Y: 5}, domain.TerrainGrass)

		res, err := HandleMove(ctx, domain.East)
		require.NoError(t, err)
		assert.True(t, res.Consumed)
		assert.True(t, res.Moved)
		assert.Equal(t, 15, res.Cost)
		assert.Equal(t, domain.Position{X: 6, Y: 5}, ctx.Actor.Pos)
		assert.Equal(t, ctx.Actor.ID, ctx.Tile.OccupantAt(ctx.Actor.Pos))
		assert.True(t, ctx.Tile.OccupantAt(domain.Position{X: 5, Y: 5}).IsNil())
	})

	t.Run("impassable is rejected without cost", func(t *testing.T) {
		ctx := newContext(t, domain.Position{X: 5, Y: 5})
		ctx.Tile.SetTerrain(domain.Position{X: 5, Y: 4}, domain.TerrainLake)

		res, err := HandleMove(ctx, domain.North)
		require.NoError(t, err)
		assert.False(t, res.Consumed)
		assert.Equal(t, handlers.MsgError, res.MsgType)
		assert.Equal(t, domain.Position{X: 5, Y: 5}, ctx.Actor.Pos)
	})

	t.Run("walking into a trainer engages it", func(t *testing.T) {
		ctx := newContext(t, domain.Position{X: 5, Y: 5})
		r := addTrainer(t, ctx, enums.AgentKindRival, domain.Position{X: 6, Y: 6})

		res, err := HandleMove(ctx, domain.SouthEast)
		require.NoError(t, err)
		assert.True(t, res.Consumed)
		assert.Equal(t, r.ID, res.Engage)
		assert.False(t, res.Moved)
		assert.Equal(t, domain.Position{X: 5, Y: 5}, ctx.Actor.Pos)
	})

	t.Run("defeated trainer blocks", func(t *testing.T) {
		ctx := newContext(t, domain.Position{X: 5, Y: 5})
		r := addTrainer(t, ctx, enums.AgentKindHiker, domain.Position{X: 4, Y: 5})
		r.Disabled = true

		res, err := HandleMove(ctx, domain.West)
		require.NoError(t, err)
		assert.False(t, res.Consumed)
		assert.Contains(t, res.Msg, "defeated")
	})

	t.Run("gate hands over to the engine", func(t *testing.T) {
		ctx := newContext(t, domain.Position{X: 39, Y: 1})
		gate := domain.Position{X: 39, Y: 0}
		ctx.Tile.SetTerrain(gate, domain.TerrainPath)

		res, err := HandleMove(ctx, domain.North)
		require.NoError(t, err)
		assert.True(t, res.Exit)
		assert.Equal(t, gate, res.Gate)
		assert.Equal(t, domain.Position{X: 39, Y: 1}, ctx.Actor.Pos, "the crossing is applied by the engine")
	})

	t.Run("no walking inside a building", func(t *testing.T) {
		ctx := newContext(t, domain.Position{X: 5, Y: 5})
		ctx.Actor.InBuilding = true
		res, err := HandleMove(ctx, domain.East)
		require.NoError(t, err)
		assert.False(t, res.Consumed)
	})
}

func TestWithDirection_RejectsBadVectors(t *testing.T) {
	ctx := newContext(t, domain.Position{X: 5, Y: 5})
	h := handlers.WithDirection(HandleMove)

	_, err := h(ctx, api.Move(0, 0))
	assert.ErrorIs(t, err, api.ErrZeroVector)
	_, err = h(ctx, api.Move(3, 0))
	assert.ErrorIs(t, err, api.ErrStepTooLarge)

	res, err := h(ctx, api.Move(1, 0))
	require.NoError(t, err)
	assert.True(t, res.Moved)
}

func TestHandleRest(t *testing.T) {
	ctx := newContext(t, domain.Position{X: 5, Y: 5})
	res, err := HandleRest(ctx)
	require.NoError(t, err)
	assert.True(t, res.Consumed)
	assert.Equal(t, domain.MinimumTurn, res.Cost)
}

func TestHandleEnterLeave(t *testing.T) {
	ctx := newContext(t, domain.Position{X: 5, Y: 5})

	res, err := HandleEnter(ctx)
	require.NoError(t, err)
	assert.Equal(t, handlers.MsgError, res.MsgType, "no building under the player")
	assert.False(t, ctx.Actor.InBuilding)

	ctx.Tile.SetTerrain(ctx.Actor.Pos, domain.TerrainCenter)
	res, err = HandleEnter(ctx)
	require.NoError(t, err)
	assert.False(t, res.Consumed, "entering takes no time")
	assert.Contains(t, res.Msg, "Pokémon Center")
	assert.True(t, ctx.Actor.InBuilding)

	res, _ = HandleEnter(ctx)
	assert.Equal(t, handlers.MsgError, res.MsgType)

	res, err = HandleLeave(ctx)
	require.NoError(t, err)
	assert.False(t, res.Consumed)
	assert.False(t, ctx.Actor.InBuilding)

	res, _ = HandleLeave(ctx)
	assert.Equal(t, handlers.MsgError, res.MsgType)
}

func TestHandleListTrainers(t *testing.T) {
	ctx := newContext(t, domain.Position{X: 10, Y: 10})
	addTrainer(t, ctx, enums.AgentKindRival, domain.Position{X: 7, Y: 8})
	h := addTrainer(t, ctx, enums.AgentKindHiker, domain.Position{X: 22, Y: 10})
	h.Disabled = true

	res, err := HandleListTrainers(ctx)
	require.NoError(t, err)
	assert.False(t, res.Consumed)
	require.Len(t, res.Overlay, 4)
	assert.Equal(t, "r  2 North, 3 West", res.Overlay[2])
	assert.Equal(t, "h  12 East  (defeated)", res.Overlay[3])
}

func TestOffset(t *testing.T) {
	tests := []struct {
		dx, dy int
		want   string
	}{
		{0, -4, "4 North"},
		{0, 2, "2 South"},
		{-1, 0, "1 West"},
		{5, 7, "7 South, 5 East"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, offset(tt.dx, tt.dy))
		})
	}
}

func TestHandleQuit(t *testing.T) {
	res, err := HandleQuit(newContext(t, domain.Position{X: 5, Y: 5}))
	require.NoError(t, err)
	assert.True(t, res.Quit)
}
