// Package backend provides the pixel grid graphics backends draw into.
//
// A PixelBuffer is a flat width×height grid of renderer.Color. Direct access
// (Read, Write) is bounds-checked and reports *BoundsError; the drawing
// primitives (DrawLine, DrawRect, FillRect) clip silently instead.
//
// Compress turns the grid into the output stream consumed by text displays:
// one Segment per maximal run of equal color, each a run of full-block glyphs,
// plus a line terminator per row. The number of segments scales with color
// transitions, not pixel count.
package backend
