package actions

import (
	"fmt"

	"github.com/maximpopov11/pokeworld/internal/domain"
	"github.com/maximpopov11/pokeworld/internal/engine/handlers"
)

var buildingNames = map[domain.TerrainKind]string{
	domain.TerrainCenter: "the Pokémon Center",
	domain.TerrainMart:   "the Poké Mart",
}

// HandleEnter puts the player inside the building it stands on. Entering and
// leaving take no time.
func HandleEnter(ctx handlers.Context) (handlers.Result, error) {
	if ctx.Actor.InBuilding {
		return handlers.Rejected("You are already inside."), nil
	}
	kind := ctx.Tile.TerrainAt(ctx.Actor.Pos)
	if !kind.IsBuilding() {
		return handlers.Rejected("There is no building here."), nil
	}
	ctx.Actor.InBuilding = true
	return handlers.Result{
		Msg:     fmt.Sprintf("You enter %s. Press < to leave.", buildingNames[kind]),
		MsgType: handlers.MsgInfo,
	}, nil
}

func HandleLeave(ctx handlers.Context) (handlers.Result, error) {
	if !ctx.Actor.InBuilding {
		return handlers.Rejected("You are not inside a building."), nil
	}
	ctx.Actor.InBuilding = false
	return handlers.Result{
		Msg:     fmt.Sprintf("You leave %s.", buildingNames[ctx.Tile.TerrainAt(ctx.Actor.Pos)]),
		MsgType: handlers.MsgInfo,
	}, nil
}
