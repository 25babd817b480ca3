package device

import (
	"strings"

	"github.com/dshills/mep/internal/renderer"
)

// OpKind identifies a recorded device operation.
type OpKind int

const (
	OpMoveTo OpKind = iota
	OpSetForeground
	OpPrint
	OpFlush
)

// String returns a string representation of the operation kind.
func (k OpKind) String() string {
	switch k {
	case OpMoveTo:
		return "move"
	case OpSetForeground:
		return "color"
	case OpPrint:
		return "print"
	case OpFlush:
		return "flush"
	default:
		return "unknown"
	}
}

// Op is one recorded device call.
type Op struct {
	Kind  OpKind
	X, Y  int
	Color renderer.Color
	Text  string
}

// Recorder is an in-memory device for tests and headless runs.
// It records every call and can be told to fail a given operation kind.
type Recorder struct {
	Ops []Op

	failOn  map[OpKind]error
	flushes int
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{failOn: make(map[OpKind]error)}
}

// FailOn makes every later call of kind return err. A nil err clears it.
func (r *Recorder) FailOn(kind OpKind, err error) {
	if err == nil {
		delete(r.failOn, kind)
		return
	}
	r.failOn[kind] = err
}

func (r *Recorder) MoveTo(x, y int) error {
	return r.record(Op{Kind: OpMoveTo, X: x, Y: y})
}

func (r *Recorder) SetForeground(c renderer.Color) error {
	return r.record(Op{Kind: OpSetForeground, Color: c})
}

func (r *Recorder) Print(text string) error {
	return r.record(Op{Kind: OpPrint, Text: text})
}

func (r *Recorder) Flush() error {
	if err := r.record(Op{Kind: OpFlush}); err != nil {
		return err
	}
	r.flushes++
	return nil
}

// Flushes returns how many flushes succeeded.
func (r *Recorder) Flushes() int {
	return r.flushes
}

// Count returns how many recorded operations are of the given kind.
func (r *Recorder) Count(kind OpKind) int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}

// Text returns everything printed, concatenated.
func (r *Recorder) Text() string {
	var sb strings.Builder
	for _, op := range r.Ops {
		if op.Kind == OpPrint {
			sb.WriteString(op.Text)
		}
	}
	return sb.String()
}

// Reset discards recorded operations.
func (r *Recorder) Reset() {
	r.Ops = r.Ops[:0]
	r.flushes = 0
}

func (r *Recorder) record(op Op) error {
	if err, ok := r.failOn[op.Kind]; ok {
		return err
	}
	r.Ops = append(r.Ops, op)
	return nil
}
