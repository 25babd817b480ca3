package tuigraphics

import (
	"github.com/dshills/mep/internal/renderer"
	"github.com/dshills/mep/internal/renderer/device"
)

// CommitBuffer renders the buffer to the device.
//
// The buffer is only read, so a failed commit can be retried. Device
// failures are returned as *device.OutputError.
func (g *Graphics) CommitBuffer() error {
	segments := g.buffer.Compress()

	if err := g.dev.MoveTo(0, 0); err != nil {
		return &device.OutputError{Op: "move", Err: err}
	}

	var (
		current   renderer.Color
		hasColor  bool
		colorCmds int
	)
	for _, seg := range segments {
		// Terminators carry no color of their own
		if !seg.IsTerminator() && (!hasColor || seg.Color != current) {
			if err := g.dev.SetForeground(seg.Color); err != nil {
				return &device.OutputError{Op: "set color", Err: err}
			}
			current, hasColor = seg.Color, true
			colorCmds++
		}
		if err := g.dev.Print(seg.Text); err != nil {
			return &device.OutputError{Op: "print", Err: err}
		}
	}

	if err := g.dev.Flush(); err != nil {
		return &device.OutputError{Op: "flush", Err: err}
	}

	g.log.Trace().
		Int("segments", len(segments)).
		Int("colors", colorCmds).
		Msg("Committed frame")
	return nil
}
