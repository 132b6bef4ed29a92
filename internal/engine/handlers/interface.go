package handlers

import (
	"github.com/maximpopov11/pokeworld/internal/core/types"
	"github.com/maximpopov11/pokeworld/internal/domain"
	"github.com/maximpopov11/pokeworld/pkg/api"
)

// Message types carried by Result.MsgType.
const (
	MsgInfo   = "INFO"
	MsgError  = "ERROR"
	MsgBattle = "BATTLE"
)

// Context is the state a handler works on. Handlers may mutate the tile and
// the actor; anything that spans tiles or the scheduler is left to the engine
// through the Result.
type Context struct {
	Tile   *domain.Tile
	Roster *domain.Roster
	Actor  *domain.Agent
}

// Result describes what a command did. Handlers do not log; they report.
type Result struct {
	Msg     string
	MsgType string

	// Consumed is set when the command used up the actor's turn. Rejected
	// commands leave it false and the player is asked again.
	Consumed bool
	// Cost is added to the actor's turn counter when Consumed.
	Cost int

	// Moved is set when the actor changed cell on its tile.
	Moved bool
	// Engage is the trainer the actor walked into.
	Engage types.AgentID
	// Exit is set when the actor stepped onto a gate; Gate is that cell.
	Exit bool
	Gate domain.Position

	// Overlay replaces the map view for one frame.
	Overlay []string
	Quit    bool
}

// HandlerFunc is the contract of every player command.
type HandlerFunc func(ctx Context, cmd api.Command) (Result, error)

// EmptyResult is a successful command that did nothing.
func EmptyResult() Result {
	return Result{}
}

// Rejected is a command refused with a message to the player.
func Rejected(msg string) Result {
	return Result{Msg: msg, MsgType: MsgError}
}
