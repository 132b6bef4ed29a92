package agent

import (
	"context"
	"io"
	"math/rand"

	"github.com/sirupsen/logrus"

	"github.com/maximpopov11/pokeworld/internal/domain"
	"github.com/maximpopov11/pokeworld/pkg/api"
	"github.com/maximpopov11/pokeworld/pkg/logger"
	"github.com/maximpopov11/pokeworld/pkg/utils"
)

// Bot plays the player without a human.
//
// It sees the world the same way any front end does: the session renders a
// frame to it before every player turn, and the bot answers the following
// NextCommand from that frame alone. It never touches the simulation.
//
// The bot wanders. It keeps its heading while the way ahead is open and picks
// a new random open direction otherwise, so it ends up crossing tiles through
// their gates. Render and NextCommand are called from the session goroutine.
type Bot struct {
	rng     *rand.Rand
	left    int
	frame   api.Frame
	seen    bool
	heading domain.Direction
	blocked map[byte]bool
	log     *logrus.Entry
}

// NewBot returns a bot that issues steps commands and then reports io.EOF.
// A negative steps means no limit.
func NewBot(seed int64, steps int) *Bot {
	return &Bot{
		rng:     utils.NewRand(seed),
		left:    steps,
		blocked: blockedGlyphs(domain.MoverPlayer),
		log:     logger.Log.WithField("component", "bot"),
	}
}

// blockedGlyphs collects the map symbols of every terrain the class can
// never enter.
func blockedGlyphs(class domain.MoverClass) map[byte]bool {
	out := map[byte]bool{}
	for k := domain.TerrainBorder; k <= domain.TerrainMart; k++ {
		if !k.Passable(class) {
			out[k.Info().Glyph.Char()] = true
		}
	}
	return out
}

// Render implements engine.Renderer.
func (b *Bot) Render(f api.Frame) {
	b.frame = f
	b.seen = true
}

// NextCommand implements engine.InputSource.
func (b *Bot) NextCommand(ctx context.Context) (api.Command, error) {
	if err := ctx.Err(); err != nil {
		return api.Command{}, err
	}
	if b.left == 0 {
		return api.Command{}, io.EOF
	}
	if b.left > 0 {
		b.left--
	}

	cmd := b.decide()
	b.log.WithFields(logrus.Fields{
		"tick":    b.frame.Tick,
		"command": cmd.String(),
	}).Debug("Bot command")
	return cmd, nil
}

func (b *Bot) decide() api.Command {
	if !b.seen {
		return api.Simple(api.ActionRest)
	}
	if b.frame.InBuilding {
		return api.Simple(api.ActionLeaveBuilding)
	}
	me, ok := b.self()
	if !ok {
		return api.Simple(api.ActionRest)
	}

	if !b.heading.IsZero() && b.open(me, b.heading) && b.rng.Intn(8) != 0 {
		return api.Move(b.heading.DX, b.heading.DY)
	}

	var options []domain.Direction
	for _, d := range domain.Directions {
		if b.open(me, d) {
			options = append(options, d)
		}
	}
	if len(options) == 0 {
		b.heading = domain.Direction{}
		return api.Simple(api.ActionRest)
	}
	b.heading = options[b.rng.Intn(len(options))]
	return api.Move(b.heading.DX, b.heading.DY)
}

func (b *Bot) self() (api.AgentView, bool) {
	for _, a := range b.frame.Agents {
		if a.Kind == "PLAYER" {
			return a, true
		}
	}
	return api.AgentView{}, false
}

// open reports whether stepping from me in d looks legal on the last frame.
// Defeated trainers block the way; live ones are fair game.
func (b *Bot) open(me api.AgentView, d domain.Direction) bool {
	x, y := me.X+d.DX, me.Y+d.DY
	g := b.frame.Grid
	if x < 0 || y < 0 || x >= g.Width || y >= g.Height {
		return false
	}
	cell := b.frame.Cells[y*g.Width+x]
	if cell.Symbol == "" || b.blocked[cell.Symbol[0]] {
		return false
	}
	for _, a := range b.frame.Agents {
		if a.X == x && a.Y == y && a.Defeated {
			return false
		}
	}
	return true
}
