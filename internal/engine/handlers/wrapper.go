package handlers

import (
	"fmt"

	"github.com/maximpopov11/pokeworld/internal/domain"
	"github.com/maximpopov11/pokeworld/pkg/api"
)

// DirectionHandlerFunc is a handler that works on a validated step.
type DirectionHandlerFunc func(ctx Context, d domain.Direction) (Result, error)

// EmptyHandlerFunc is a handler that needs no payload.
type EmptyHandlerFunc func(ctx Context) (Result, error)

// WithDirection validates the command and hands its vector to handler.
func WithDirection(handler DirectionHandlerFunc) HandlerFunc {
	return func(ctx Context, cmd api.Command) (Result, error) {
		if err := validate(cmd); err != nil {
			return Result{}, err
		}
		return handler(ctx, domain.Direction{DX: cmd.Dx, DY: cmd.Dy})
	}
}

// WithEmptyPayload validates the command and ignores its payload.
func WithEmptyPayload(handler EmptyHandlerFunc) HandlerFunc {
	return func(ctx Context, cmd api.Command) (Result, error) {
		if err := validate(cmd); err != nil {
			return Result{}, err
		}
		return handler(ctx)
	}
}

func validate(cmd any) error {
	if v, ok := cmd.(api.Validator); ok {
		if err := v.Validate(); err != nil {
			return fmt.Errorf("validation failed: %w", err)
		}
	}
	return nil
}
