package api

import "fmt"

// --- CORE -> FRONT ENDS ---

// Frame is a read-only snapshot of the player's tile, handed to renderers and
// pushed to spectators. It is built fresh for every player turn and never
// shares memory with the simulation.
type Frame struct {
	// Type is always "FRAME" for now.
	Type string `json:"type"`

	// Tick is the player's turn counter when the frame was built.
	Tick int `json:"tick"`

	// Tile is the world coordinate of the rendered tile.
	Tile TileCoord `json:"tile"`

	Grid GridMeta `json:"grid"`

	// Cells is the terrain, row-major, Grid.Width*Grid.Height entries.
	Cells []CellView `json:"cells"`

	// Agents lists the player and every trainer on the tile.
	Agents []AgentView `json:"agents"`

	// Message is the status line, empty when there is nothing to say.
	Message string `json:"message,omitempty"`

	// Overlay holds full screen lines such as the trainer list or help.
	// Renderers draw it over the map when it is not empty.
	Overlay []string `json:"overlay,omitempty"`

	InBuilding bool     `json:"inBuilding,omitempty"`
	Party      []string `json:"party,omitempty"`
}

type TileCoord struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// GridMeta carries the tile size so clients can lay out the grid.
type GridMeta struct {
	Width  int `json:"w"`
	Height int `json:"h"`
}

// CellView is one terrain square.
type CellView struct {
	Symbol string `json:"symbol"`
	Color  string `json:"color"`
}

// AgentView is one agent as a front end sees it.
type AgentView struct {
	ID       string `json:"id"`
	Kind     string `json:"kind"`
	X        int    `json:"x"`
	Y        int    `json:"y"`
	Symbol   string `json:"symbol"`
	Color    string `json:"color"`
	Turn     int    `json:"turn"`
	Defeated bool   `json:"defeated,omitempty"`
}

// QueueEntry is one row of the scheduler snapshot.
type QueueEntry struct {
	ID       string `json:"id"`
	Kind     string `json:"kind"`
	Priority int    `json:"priority"`
	Seq      uint64 `json:"seq"`
	Index    int    `json:"index"`
}

// --- FRONT ENDS -> CORE ---

// Action is what the player asks for on their turn.
type Action uint8

const (
	ActionNone Action = iota
	ActionMove
	ActionRest
	ActionEnterBuilding
	ActionLeaveBuilding
	ActionListTrainers
	ActionQuit
)

var actionNames = map[Action]string{
	ActionNone:          "NONE",
	ActionMove:          "MOVE",
	ActionRest:          "REST",
	ActionEnterBuilding: "ENTER",
	ActionLeaveBuilding: "LEAVE",
	ActionListTrainers:  "TRAINERS",
	ActionQuit:          "QUIT",
}

func (a Action) String() string {
	if s, ok := actionNames[a]; ok {
		return s
	}
	return fmt.Sprintf("ACTION(%d)", uint8(a))
}

// Command is one player command. Dx and Dy are only used by ActionMove.
type Command struct {
	Action Action `json:"action"`
	Dx     int    `json:"dx,omitempty"`
	Dy     int    `json:"dy,omitempty"`
}

// Move builds a movement command.
func Move(dx, dy int) Command {
	return Command{Action: ActionMove, Dx: dx, Dy: dy}
}

// Simple builds a command without a payload.
func Simple(a Action) Command {
	return Command{Action: a}
}

func (c Command) String() string {
	if c.Action == ActionMove {
		return fmt.Sprintf("MOVE(%d,%d)", c.Dx, c.Dy)
	}
	return c.Action.String()
}
