package actions

import (
	"fmt"

	"github.com/maximpopov11/pokeworld/internal/engine/handlers"
)

// HandleListTrainers shows where every trainer on the tile is relative to
// the actor. It takes no time.
func HandleListTrainers(ctx handlers.Context) (handlers.Result, error) {
	lines := []string{fmt.Sprintf("Trainers on this tile: %d", len(ctx.Tile.Residents)), ""}
	for _, id := range ctx.Tile.Residents {
		a := ctx.Roster.Get(id)
		if a == nil {
			continue
		}
		line := fmt.Sprintf("%c  %s", a.Glyph().Char(), offset(a.Pos.X-ctx.Actor.Pos.X, a.Pos.Y-ctx.Actor.Pos.Y))
		if a.Disabled {
			line += "  (defeated)"
		}
		lines = append(lines, line)
	}
	return handlers.Result{Overlay: lines}, nil
}

// offset renders a relative position as "3 North, 12 West".
func offset(dx, dy int) string {
	ns := "North"
	if dy > 0 {
		ns = "South"
	}
	we := "West"
	if dx > 0 {
		we = "East"
	}
	switch {
	case dy == 0:
		return fmt.Sprintf("%d %s", abs(dx), we)
	case dx == 0:
		return fmt.Sprintf("%d %s", abs(dy), ns)
	}
	return fmt.Sprintf("%d %s, %d %s", abs(dy), ns, abs(dx), we)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
