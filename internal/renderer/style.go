package renderer

// Style is the drawing state a graphics backend paints with.
//
// A Style is never edited in place: the host builds a new one and hands it to
// the backend, which only swaps the pointer it holds.
type Style struct {
	color Color
}

// NewStyle creates a style painting with the given color.
func NewStyle(c Color) *Style {
	return &Style{color: c}
}

// DefaultStyle returns the style backends start with (transparent black).
func DefaultStyle() *Style {
	return &Style{color: Transparent}
}

// Color returns the current drawing color.
// A nil style paints transparent black.
func (s *Style) Color() Color {
	if s == nil {
		return Transparent
	}
	return s.color
}

// WithColor returns a new style with the given color, leaving s untouched.
func (s *Style) WithColor(c Color) *Style {
	return &Style{color: c}
}
