package backend

import (
	"errors"
	"fmt"
)

// ErrOutOfBounds is matched by every *BoundsError.
var ErrOutOfBounds = errors.New("coordinate out of bounds")

// BoundsError reports direct grid access outside [0,Width)×[0,Height).
type BoundsError struct {
	X, Y          int
	Width, Height int
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("pixel (%d, %d) outside %dx%d buffer", e.X, e.Y, e.Width, e.Height)
}

// Is reports whether target is ErrOutOfBounds.
func (e *BoundsError) Is(target error) bool {
	return target == ErrOutOfBounds
}
