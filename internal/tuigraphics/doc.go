// Package tuigraphics is the terminal graphics backend: a pixel grid drawn
// with full-block glyphs, one glyph per pixel.
//
// Drawing calls write the current style color into the grid. CommitBuffer
// run-length encodes every row and streams the runs to a device, issuing a
// color command only where the color changes. A frame costs one cursor
// reposition, one flush and as many color commands as there are color
// transitions in row-major order, plus one.
package tuigraphics
