package engine

import (
	"github.com/maximpopov11/pokeworld/internal/domain"
	"github.com/maximpopov11/pokeworld/pkg/api"
)

// BuildFrame snapshots the player's tile for renderers.
func (i *Instance) BuildFrame() api.Frame {
	return buildFrame(i.tile, i.Roster, i.Player(), i.tick, i.message, i.overlay)
}

// buildFrame copies everything a front end needs out of the live state.
// The frame shares no memory with the tile or the roster.
func buildFrame(tile *domain.Tile, roster *domain.Roster, player *domain.Agent, tick int, msg string, overlay []string) api.Frame {
	frame := api.Frame{
		Type:    "FRAME",
		Tick:    tick,
		Tile:    api.TileCoord{X: tile.Coord.X, Y: tile.Coord.Y},
		Grid:    api.GridMeta{Width: domain.TileWidth, Height: domain.TileHeight},
		Cells:   make([]api.CellView, 0, len(tile.Cells)),
		Agents:  make([]api.AgentView, 0, len(tile.Residents)+1),
		Message: msg,
	}
	if len(overlay) > 0 {
		frame.Overlay = append([]string(nil), overlay...)
	}

	for _, c := range tile.Cells {
		g := c.Terrain.Info().Glyph
		frame.Cells = append(frame.Cells, api.CellView{
			Symbol: string(rune(g.Char())),
			Color:  g.HexColor(),
		})
	}

	if player != nil {
		frame.Agents = append(frame.Agents, agentView(player))
		frame.InBuilding = player.InBuilding
		for _, c := range player.Party {
			frame.Party = append(frame.Party, c.String())
		}
	}
	for _, id := range tile.Residents {
		if a := roster.Get(id); a != nil {
			frame.Agents = append(frame.Agents, agentView(a))
		}
	}
	return frame
}

func agentView(a *domain.Agent) api.AgentView {
	g := a.Glyph()
	return api.AgentView{
		ID:       a.ID.String(),
		Kind:     a.Kind.String(),
		X:        a.Pos.X,
		Y:        a.Pos.Y,
		Symbol:   string(rune(g.Char())),
		Color:    g.HexColor(),
		Turn:     a.Turn,
		Defeated: a.Disabled,
	}
}
