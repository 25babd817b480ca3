// Package device provides the text-stream displays graphics backends commit
// frames to.
package device

import (
	"errors"
	"fmt"

	"github.com/dshills/mep/internal/renderer"
)

// Device is a text-stream sink with an addressable cursor and RGB foreground.
// Backends issue operations in order and call Flush once per frame.
type Device interface {
	// MoveTo places the cursor at column x, row y (zero-based).
	MoveTo(x, y int) error

	// SetForeground selects the color for subsequent text.
	SetForeground(c renderer.Color) error

	// Print emits text at the cursor. "\n" moves to the start of the next row.
	Print(text string) error

	// Flush pushes everything written so far to the display.
	Flush() error
}

// Initializer is implemented by devices that need setup before first use.
type Initializer interface {
	Init() error
}

// Closer is implemented by devices holding terminal state to restore.
type Closer interface {
	Close() error
}

// ErrClosed is returned by operations on a closed device.
var ErrClosed = errors.New("device is closed")

// OutputError reports a failed device operation during a commit.
type OutputError struct {
	Op  string
	Err error
}

func (e *OutputError) Error() string {
	return fmt.Sprintf("display %s: %v", e.Op, e.Err)
}

func (e *OutputError) Unwrap() error {
	return e.Err
}
