package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/maximpopov11/pokeworld/internal/core/types/enums"
	"github.com/maximpopov11/pokeworld/internal/domain"
)

func TestCalculateMove(t *testing.T) {
	tile := newTestTile(domain.TerrainClearing)
	tile.SetTerrain(domain.Position{X: 11, Y: 10}, domain.TerrainForest)
	tile.SetTerrain(domain.Position{X: 39, Y: 0}, domain.TerrainPath)

	roster := domain.NewRoster()
	player := spawn(t, tile, roster, enums.AgentKindPlayer, domain.Position{X: 10, Y: 10})
	rival := spawn(t, tile, roster, enums.AgentKindRival, domain.Position{X: 9, Y: 10})
	beaten := spawn(t, tile, roster, enums.AgentKindHiker, domain.Position{X: 10, Y: 9})
	beaten.Disabled = true

	t.Run("open ground", func(t *testing.T) {
		res := CalculateMove(player, domain.South, tile, roster)
		assert.NoError(t, res.Err)
		assert.True(t, res.HasMoved)
		assert.Equal(t, domain.Position{X: 10, Y: 11}, res.Target)
		assert.Equal(t, 10, res.Cost)
		assert.False(t, res.LeavesTile)
	})

	t.Run("impassable terrain", func(t *testing.T) {
		res := CalculateMove(player, domain.East, tile, roster)
		assert.ErrorIs(t, res.Err, domain.ErrImpassable)
		assert.False(t, res.HasMoved)
	})

	t.Run("trainer is engaged", func(t *testing.T) {
		res := CalculateMove(player, domain.West, tile, roster)
		assert.NoError(t, res.Err)
		assert.False(t, res.HasMoved)
		assert.Equal(t, rival.ID, res.Engage)
	})

	t.Run("defeated trainer blocks", func(t *testing.T) {
		res := CalculateMove(player, domain.North, tile, roster)
		assert.ErrorIs(t, res.Err, domain.ErrOpponentDefeated)
	})

	t.Run("border is impassable", func(t *testing.T) {
		player.Pos = domain.Position{X: 10, Y: 1}
		res := CalculateMove(player, domain.North, tile, roster)
		assert.ErrorIs(t, res.Err, domain.ErrImpassable)
	})

	t.Run("gate leaves the tile", func(t *testing.T) {
		player.Pos = domain.Position{X: 39, Y: 1}
		res := CalculateMove(player, domain.North, tile, roster)
		assert.NoError(t, res.Err)
		assert.True(t, res.HasMoved)
		assert.True(t, res.LeavesTile)
	})

	t.Run("off the grid", func(t *testing.T) {
		player.Pos = domain.Position{X: 39, Y: 0}
		res := CalculateMove(player, domain.North, tile, roster)
		assert.ErrorIs(t, res.Err, domain.ErrOutOfBounds)
	})

	// CalculateMove never touches the grid.
	assert.Equal(t, player.ID, tile.OccupantAt(domain.Position{X: 10, Y: 10}))
	assert.Equal(t, rival.ID, tile.OccupantAt(domain.Position{X: 9, Y: 10}))
}

func TestCanEnter(t *testing.T) {
	tile := newTestTile(domain.TerrainClearing)
	tile.SetTerrain(domain.Position{X: 5, Y: 6}, domain.TerrainMountain)
	roster := domain.NewRoster()
	spawn(t, tile, roster, enums.AgentKindPlayer, domain.Position{X: 6, Y: 5})
	other := spawn(t, tile, roster, enums.AgentKindStationary, domain.Position{X: 4, Y: 5})
	rival := spawn(t, tile, roster, enums.AgentKindRival, domain.Position{X: 5, Y: 5})
	_ = other

	tests := []struct {
		name     string
		dest     domain.Position
		class    domain.MoverClass
		disabled bool
		want     bool
	}{
		{"empty clearing", domain.Position{X: 5, Y: 4}, domain.MoverRival, false, true},
		{"player cell", domain.Position{X: 6, Y: 5}, domain.MoverRival, false, true},
		{"player cell when disabled", domain.Position{X: 6, Y: 5}, domain.MoverRival, true, false},
		{"other trainer", domain.Position{X: 4, Y: 5}, domain.MoverRival, false, false},
		{"mountain for rival", domain.Position{X: 5, Y: 6}, domain.MoverRival, false, false},
		{"mountain for hiker", domain.Position{X: 5, Y: 6}, domain.MoverHiker, false, true},
		{"border ring", domain.Position{X: 0, Y: 5}, domain.MoverHiker, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rival.Disabled = tt.disabled
			assert.Equal(t, tt.want, CanEnter(rival, tt.dest, tt.class, tile))
		})
	}
}
