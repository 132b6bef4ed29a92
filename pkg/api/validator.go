package api

import "errors"

// Validator is implemented by DTOs that can check themselves.
type Validator interface {
	Validate() error
}

var (
	ErrUnknownAction = errors.New("unknown action")
	ErrZeroVector    = errors.New("movement vector cannot be zero")
	ErrStepTooLarge  = errors.New("movement step too large")
)

func (c Command) Validate() error {
	if c.Action == ActionNone || c.Action > ActionQuit {
		return ErrUnknownAction
	}
	if c.Action != ActionMove {
		return nil
	}
	if c.Dx == 0 && c.Dy == 0 {
		return ErrZeroVector
	}
	if c.Dx < -1 || c.Dx > 1 || c.Dy < -1 || c.Dy > 1 {
		return ErrStepTooLarge
	}
	return nil
}
