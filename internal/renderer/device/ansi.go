package device

import (
	"bufio"
	"io"

	"github.com/dshills/mep/internal/renderer"
)

// Pre-allocated ANSI sequence fragments
var (
	csiCursorPos = []byte("\x1b[")      // followed by row;colH
	csiFgRGB     = []byte("\x1b[38;2;") // followed by R;G;Bm
)

// ANSI writes frames as raw escape sequences to a buffered stream.
// Nothing reaches the underlying writer until Flush. A failed write
// discards the pending frame so the next one starts clean.
type ANSI struct {
	w      io.Writer
	out    *bufio.Writer
	closed bool
}

// NewANSI creates an ANSI device writing to w.
func NewANSI(w io.Writer) *ANSI {
	return &ANSI{w: w, out: bufio.NewWriterSize(w, 64*1024)}
}

// MoveTo writes an absolute cursor position (CUP).
func (a *ANSI) MoveTo(x, y int) error {
	if a.closed {
		return ErrClosed
	}
	a.out.Write(csiCursorPos)
	writeInt(a.out, y+1)
	a.out.WriteByte(';')
	writeInt(a.out, x+1)
	return a.check(a.out.WriteByte('H'))
}

// SetForeground writes a truecolor foreground SGR sequence.
// Alpha cannot be represented on a terminal and is dropped.
func (a *ANSI) SetForeground(c renderer.Color) error {
	if a.closed {
		return ErrClosed
	}
	a.out.Write(csiFgRGB)
	writeInt(a.out, int(c.R))
	a.out.WriteByte(';')
	writeInt(a.out, int(c.G))
	a.out.WriteByte(';')
	writeInt(a.out, int(c.B))
	return a.check(a.out.WriteByte('m'))
}

// Print writes text verbatim.
func (a *ANSI) Print(text string) error {
	if a.closed {
		return ErrClosed
	}
	_, err := a.out.WriteString(text)
	return a.check(err)
}

// Flush writes buffered output to the underlying stream.
func (a *ANSI) Flush() error {
	if a.closed {
		return ErrClosed
	}
	return a.check(a.out.Flush())
}

// Close flushes pending output and rejects further operations.
func (a *ANSI) Close() error {
	if a.closed {
		return nil
	}
	err := a.check(a.out.Flush())
	a.closed = true
	return err
}

// check drops the buffered bytes and the error bufio.Writer would
// otherwise return from every later call.
func (a *ANSI) check(err error) error {
	if err != nil {
		a.out.Reset(a.w)
	}
	return err
}

// writeInt writes a non-negative integer without allocation.
func writeInt(w *bufio.Writer, n int) {
	if n < 0 {
		n = 0
	}
	if n < 10 {
		w.WriteByte(byte(n) + '0')
		return
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte(n%10) + '0'
		n /= 10
	}
	w.Write(buf[i:])
}
