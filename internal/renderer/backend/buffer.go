package backend

import (
	"github.com/dshills/mep/internal/renderer"
)

// PixelBuffer is a fixed-size grid of colors addressed by (x, y),
// with 0 <= x < width and 0 <= y < height.
type PixelBuffer struct {
	width, height int
	pixels        []renderer.Color
}

// NewPixelBuffer creates a buffer with every pixel transparent black.
// Non-positive dimensions produce an empty buffer.
func NewPixelBuffer(width, height int) *PixelBuffer {
	width = max(width, 0)
	height = max(height, 0)
	return &PixelBuffer{
		width:  width,
		height: height,
		pixels: make([]renderer.Color, width*height),
	}
}

// Size returns the buffer dimensions.
func (pb *PixelBuffer) Size() (width, height int) {
	return pb.width, pb.height
}

// InBounds reports whether (x, y) addresses a pixel.
func (pb *PixelBuffer) InBounds(x, y int) bool {
	return x >= 0 && x < pb.width && y >= 0 && y < pb.height
}

// Read returns the color at (x, y).
func (pb *PixelBuffer) Read(x, y int) (renderer.Color, error) {
	if !pb.InBounds(x, y) {
		return renderer.Color{}, pb.boundsError(x, y)
	}
	return pb.pixels[y*pb.width+x], nil
}

// Write sets the color at (x, y).
func (pb *PixelBuffer) Write(x, y int, c renderer.Color) error {
	if !pb.InBounds(x, y) {
		return pb.boundsError(x, y)
	}
	pb.pixels[y*pb.width+x] = c
	return nil
}

// Set writes c at (x, y) if it is inside the buffer and reports whether it was.
// Drawing primitives use Set so they clip instead of failing.
func (pb *PixelBuffer) Set(x, y int, c renderer.Color) bool {
	if !pb.InBounds(x, y) {
		return false
	}
	pb.pixels[y*pb.width+x] = c
	return true
}

// Clear sets every pixel to c.
func (pb *PixelBuffer) Clear(c renderer.Color) {
	for i := range pb.pixels {
		pb.pixels[i] = c
	}
}

// Row returns the pixels of row y. The slice aliases the buffer and must not
// be retained past the next write.
func (pb *PixelBuffer) Row(y int) []renderer.Color {
	if y < 0 || y >= pb.height {
		return nil
	}
	start := y * pb.width
	return pb.pixels[start : start+pb.width]
}

func (pb *PixelBuffer) boundsError(x, y int) error {
	return &BoundsError{X: x, Y: y, Width: pb.width, Height: pb.height}
}
