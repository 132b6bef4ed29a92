package actions

import "github.com/maximpopov11/pokeworld/internal/engine/handlers"

func HandleQuit(ctx handlers.Context) (handlers.Result, error) {
	return handlers.Result{Quit: true, Msg: "Goodbye.", MsgType: handlers.MsgInfo}, nil
}
