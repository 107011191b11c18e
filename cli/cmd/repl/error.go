package repl

import "errors"

// Sentinel errors.
var (
	ErrNoSource    = errors.New("no root shell provided")
	ErrOutOfBounds = errors.New("index out of range")
)
