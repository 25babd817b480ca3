// Package app wires the plugin manager to the frame loop.
package app

import (
	"errors"
	"fmt"
)

// Host errors.
var (
	// ErrNotStarted indicates plugins have not been loaded yet.
	ErrNotStarted = errors.New("host not started")

	// ErrAlreadyStarted indicates Start was called twice.
	ErrAlreadyStarted = errors.New("host already started")

	// ErrNoGraphics indicates no graphics backend was loaded.
	ErrNoGraphics = errors.New("no graphics plugin loaded")
)

// FrameError reports a frame that could not be presented.
type FrameError struct {
	Frame int
	Err   error
}

func (e *FrameError) Error() string {
	return fmt.Sprintf("frame %d: %v", e.Frame, e.Err)
}

func (e *FrameError) Unwrap() error {
	return e.Err
}
