package engine

import "errors"

// Rejections leave the state untouched and are never retried by the engine.
var (
	ErrOutOfTurn     = errors.New("not this seat's turn")
	ErrPhaseMismatch = errors.New("action not valid in current phase")
	ErrIllegalMove   = errors.New("illegal move")

	// ErrEmptyStock can only mean the distribution arithmetic is broken.
	// It is raised as a panic, not returned.
	ErrEmptyStock = errors.New("stock unexpectedly empty")
)
