package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/maximpopov11/pokeworld/pkg/api"
)

// Movement keys: the number pad and the vi letters.
var moveKeys = map[rune][2]int{
	'7': {-1, -1}, 'y': {-1, -1},
	'8': {0, -1}, 'k': {0, -1},
	'9': {1, -1}, 'u': {1, -1},
	'6': {1, 0}, 'l': {1, 0},
	'3': {1, 1}, 'n': {1, 1},
	'2': {0, 1}, 'j': {0, 1},
	'1': {-1, 1}, 'b': {-1, 1},
	'4': {-1, 0}, 'h': {-1, 0},
}

var arrowKeys = map[tcell.Key][2]int{
	tcell.KeyUp:    {0, -1},
	tcell.KeyDown:  {0, 1},
	tcell.KeyLeft:  {-1, 0},
	tcell.KeyRight: {1, 0},
}

var actionKeys = map[rune]api.Action{
	'5': api.ActionRest,
	' ': api.ActionRest,
	'.': api.ActionRest,
	'>': api.ActionEnterBuilding,
	'<': api.ActionLeaveBuilding,
	't': api.ActionListTrainers,
}

// commandForKey maps a key press to a player command. Quit and help are
// handled by the input loop since they need a second key.
func commandForKey(key tcell.Key, r rune) (api.Command, bool) {
	if v, ok := arrowKeys[key]; ok {
		return api.Move(v[0], v[1]), true
	}
	if key != tcell.KeyRune {
		return api.Command{}, false
	}
	if v, ok := moveKeys[r]; ok {
		return api.Move(v[0], v[1]), true
	}
	if a, ok := actionKeys[r]; ok {
		return api.Simple(a), true
	}
	return api.Command{}, false
}

var helpLines = []string{
	"Keys",
	"",
	"  y k u    7 8 9    move",
	"  h   l    4   6",
	"  b j n    1 2 3",
	"",
	"  5 . space         rest",
	"  >                 enter a Pokemon Center or Poke Mart",
	"  <                 leave it",
	"  t                 list the trainers on this tile",
	"  Q                 quit",
	"  ?                 this help",
	"",
	"Press any key.",
}
