package actions

import (
	"github.com/maximpopov11/pokeworld/internal/domain"
	"github.com/maximpopov11/pokeworld/internal/engine/handlers"
)

// HandleRest skips the turn at the minimum cost.
func HandleRest(ctx handlers.Context) (handlers.Result, error) {
	return handlers.Result{Consumed: true, Cost: domain.MinimumTurn}, nil
}
