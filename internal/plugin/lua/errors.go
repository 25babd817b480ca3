package lua

import "errors"

// Errors for Lua script modules.
var (
	// ErrStateClosed is returned when operating on a closed state.
	ErrStateClosed = errors.New("lua state is closed")

	// ErrInvalidDescriptor is returned when an entry point does not return a
	// plugin descriptor table.
	ErrInvalidDescriptor = errors.New("invalid plugin descriptor")
)
