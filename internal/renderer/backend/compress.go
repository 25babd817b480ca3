package backend

import (
	"strings"

	"github.com/dshills/mep/internal/renderer"
)

const (
	// BlockGlyph is the full-block character one pixel is drawn with.
	BlockGlyph = "█"

	// RowTerminator ends every row of compressed output.
	RowTerminator = "\n"
)

// Run is a maximal horizontal sequence of pixels sharing one color.
type Run struct {
	Length int
	Color  renderer.Color
}

// Segment is one unit of display output: a text run drawn in a color.
type Segment struct {
	Text  string
	Color renderer.Color
}

// IsTerminator reports whether the segment ends a row.
func (s Segment) IsTerminator() bool {
	return s.Text == RowTerminator
}

// CompressRow groups row y into maximal equal-color runs, left to right.
func (pb *PixelBuffer) CompressRow(y int) []Run {
	row := pb.Row(y)
	if len(row) == 0 {
		return nil
	}

	runs := make([]Run, 0, 4)
	current := Run{Length: 1, Color: row[0]}
	for _, c := range row[1:] {
		if c == current.Color {
			current.Length++
			continue
		}
		runs = append(runs, current)
		current = Run{Length: 1, Color: c}
	}
	return append(runs, current)
}

// Compress converts the whole grid, top to bottom, into glyph segments with
// one terminator segment after each row. The result is rebuilt on every call.
func (pb *PixelBuffer) Compress() []Segment {
	segments := make([]Segment, 0, pb.height*2)
	for y := 0; y < pb.height; y++ {
		for _, run := range pb.CompressRow(y) {
			segments = append(segments, Segment{
				Text:  strings.Repeat(BlockGlyph, run.Length),
				Color: run.Color,
			})
		}
		segments = append(segments, Segment{Text: RowTerminator, Color: renderer.Transparent})
	}
	return segments
}
