package ir

import (
	"errors"
)

var (
	// ErrType reports a node whose Type is not one of the five
	// recognized variants. It indicates a contract violation by the
	// caller, not malformed input.
	ErrType = errors.New("unexpected expression type")
)
