package terminal

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/maximpopov11/pokeworld/pkg/api"
	"github.com/maximpopov11/pokeworld/pkg/logger"
)

// Screen layout: one status row, the map, then two info rows.
const (
	statusRow = 0
	mapTop    = 1
)

// Terminal draws frames on a tcell screen and turns key presses into player
// commands. It implements both engine.Renderer and engine.InputSource.
type Terminal struct {
	screen tcell.Screen
	events chan tcell.Event

	mu   sync.Mutex
	last api.Frame
}

// Open initialises the real terminal.
func Open() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("new screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	return New(screen), nil
}

// New wraps an initialised screen and starts reading its events.
func New(screen tcell.Screen) *Terminal {
	t := &Terminal{
		screen: screen,
		events: make(chan tcell.Event, 64),
	}
	go t.pollEvents()
	return t
}

func (t *Terminal) pollEvents() {
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			close(t.events)
			return
		}
		t.events <- ev
	}
}

// Close restores the terminal.
func (t *Terminal) Close() {
	t.screen.Fini()
}

// Render implements engine.Renderer.
func (t *Terminal) Render(f api.Frame) {
	t.mu.Lock()
	t.last = f
	t.mu.Unlock()
	t.draw(f)
}

func (t *Terminal) draw(f api.Frame) {
	t.screen.Clear()
	t.drawText(0, statusRow, f.Message, tcell.StyleDefault)

	switch {
	case len(f.Overlay) > 0:
		t.drawLines(f.Overlay)
	case f.InBuilding:
		t.drawLines([]string{"You are inside.", "", "Press < to leave."})
	default:
		t.drawMap(f)
	}

	info := fmt.Sprintf("Tile (%d, %d)  Turn %d", f.Tile.X, f.Tile.Y, f.Tick)
	t.drawText(0, mapTop+f.Grid.Height, info, tcell.StyleDefault)
	if len(f.Party) > 0 {
		t.drawText(0, mapTop+f.Grid.Height+1, "Party: "+strings.Join(f.Party, ", "), tcell.StyleDefault)
	}
	t.screen.Show()
}

func (t *Terminal) drawMap(f api.Frame) {
	w := f.Grid.Width
	for i, c := range f.Cells {
		t.setCell(i%w, mapTop+i/w, c.Symbol, c.Color)
	}
	for _, a := range f.Agents {
		t.setCell(a.X, mapTop+a.Y, a.Symbol, a.Color)
	}
}

func (t *Terminal) setCell(x, y int, symbol, color string) {
	r := ' '
	if symbol != "" {
		r = []rune(symbol)[0]
	}
	t.screen.SetContent(x, y, r, nil, tcell.StyleDefault.Foreground(tcell.GetColor(color)))
}

func (t *Terminal) drawLines(lines []string) {
	for i, line := range lines {
		t.drawText(2, mapTop+1+i, line, tcell.StyleDefault)
	}
}

func (t *Terminal) drawText(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		t.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

// NextCommand implements engine.InputSource. It blocks until a key maps to
// a command or ctx is done.
func (t *Terminal) NextCommand(ctx context.Context) (api.Command, error) {
	for {
		ev, err := t.nextEvent(ctx)
		if err != nil {
			return api.Command{}, err
		}

		switch ev := ev.(type) {
		case *tcell.EventResize:
			t.screen.Sync()
			t.redraw()
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyCtrlC {
				return api.Simple(api.ActionQuit), nil
			}
			if ev.Key() == tcell.KeyRune {
				switch ev.Rune() {
				case 'Q':
					if ok, err := t.confirm(ctx, "Really quit? (y/n)"); err != nil || ok {
						return api.Simple(api.ActionQuit), err
					}
					t.redraw()
					continue
				case '?':
					t.showHelp(ctx)
					continue
				}
			}
			if cmd, ok := commandForKey(ev.Key(), ev.Rune()); ok {
				return cmd, nil
			}
			logger.Log.WithField("key", ev.Name()).Debug("Unbound key")
		}
	}
}

func (t *Terminal) nextEvent(ctx context.Context) (tcell.Event, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case ev, ok := <-t.events:
		if !ok {
			return nil, context.Canceled
		}
		return ev, nil
	}
}

func (t *Terminal) confirm(ctx context.Context, prompt string) (bool, error) {
	t.screen.Clear()
	t.drawText(0, statusRow, prompt, tcell.StyleDefault.Bold(true))
	t.screen.Show()
	for {
		ev, err := t.nextEvent(ctx)
		if err != nil {
			return false, err
		}
		if k, ok := ev.(*tcell.EventKey); ok {
			return k.Key() == tcell.KeyRune && (k.Rune() == 'y' || k.Rune() == 'Y'), nil
		}
	}
}

func (t *Terminal) showHelp(ctx context.Context) {
	t.screen.Clear()
	t.drawLines(helpLines)
	t.screen.Show()
	for {
		ev, err := t.nextEvent(ctx)
		if err != nil {
			return
		}
		if _, ok := ev.(*tcell.EventKey); ok {
			t.redraw()
			return
		}
	}
}

func (t *Terminal) redraw() {
	t.mu.Lock()
	f := t.last
	t.mu.Unlock()
	t.draw(f)
}
