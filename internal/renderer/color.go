package renderer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is an 8-bit-per-channel RGBA value.
// Two colors are the same run color only if all four channels match.
type Color struct {
	R, G, B, A uint8
}

// Transparent is fully transparent black, the initial value of every pixel.
var Transparent = Color{}

// Common opaque colors.
var (
	ColorBlack   = Color{R: 0, G: 0, B: 0, A: 255}
	ColorWhite   = Color{R: 255, G: 255, B: 255, A: 255}
	ColorRed     = Color{R: 255, G: 0, B: 0, A: 255}
	ColorGreen   = Color{R: 0, G: 255, B: 0, A: 255}
	ColorBlue    = Color{R: 0, G: 0, B: 255, A: 255}
	ColorYellow  = Color{R: 255, G: 255, B: 0, A: 255}
	ColorCyan    = Color{R: 0, G: 255, B: 255, A: 255}
	ColorMagenta = Color{R: 255, G: 0, B: 255, A: 255}
)

// ColorFromRGB creates an opaque color from RGB components.
func ColorFromRGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// ColorFromRGBA creates a color from all four components.
func ColorFromRGBA(r, g, b, a uint8) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// ColorFromHex creates a color from a hex string.
// Supports "#RGB", "#RRGGBB" and "#RRGGBBAA", with or without the leading '#'.
// Colors without an alpha component are opaque.
func ColorFromHex(hex string) (Color, error) {
	hex = strings.TrimPrefix(strings.TrimSpace(hex), "#")

	alpha := uint64(255)
	if len(hex) == 8 {
		a, err := strconv.ParseUint(hex[6:], 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("invalid hex color: %s", hex)
		}
		alpha = a
		hex = hex[:6]
	}

	if len(hex) != 3 && len(hex) != 6 {
		return Color{}, fmt.Errorf("invalid hex color length: %s", hex)
	}

	c, err := colorful.Hex("#" + hex)
	if err != nil {
		return Color{}, fmt.Errorf("invalid hex color: %s", hex)
	}

	r, g, b := c.RGB255()
	return Color{R: r, G: g, B: b, A: uint8(alpha)}, nil
}

// IsTransparent returns true if the alpha channel is zero.
func (c Color) IsTransparent() bool {
	return c.A == 0
}

// RGBA implements image/color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	a = uint32(c.A)
	a |= a << 8
	return
}

// Hex returns the "#RRGGBB" form of the color, ignoring alpha.
func (c Color) Hex() string {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}.Hex()
}

// String returns a string representation of the color.
func (c Color) String() string {
	return fmt.Sprintf("#%02X%02X%02X%02X", c.R, c.G, c.B, c.A)
}
