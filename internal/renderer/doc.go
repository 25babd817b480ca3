// Package renderer holds the drawing state shared between the host and
// graphics backends.
//
// The package is pure data:
//   - Color is a 4-channel RGBA value compared by exact equality
//   - Style carries the current drawing color
//
// Backends own their pixel storage (see the backend package); the host only
// swaps the Style a backend points at:
//
//	gfx.SetStyle(renderer.NewStyle(renderer.ColorRed))
//	gfx.FillRect(0, 0, 10, 4)
package renderer
