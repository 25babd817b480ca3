package device

import (
	"github.com/gdamore/tcell/v2"

	"github.com/dshills/mep/internal/renderer"
)

// Tcell maps the device contract onto a tcell screen.
// Text is placed cell by cell; Flush calls Show.
type Tcell struct {
	screen tcell.Screen
	style  tcell.Style
	x, y   int
	owned  bool
	active bool
}

// NewTcell creates a device on the process terminal. The screen is
// initialized by Init and finalized by Close.
func NewTcell() (*Tcell, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return &Tcell{screen: screen, style: tcell.StyleDefault, owned: true}, nil
}

// NewTcellWithScreen wraps an already initialized screen, such as a
// simulation screen. The caller keeps ownership of it.
func NewTcellWithScreen(screen tcell.Screen) *Tcell {
	return &Tcell{screen: screen, style: tcell.StyleDefault, active: true}
}

// Init initializes an owned screen.
func (t *Tcell) Init() error {
	if t.active {
		return nil
	}
	if err := t.screen.Init(); err != nil {
		return err
	}
	t.screen.HideCursor()
	t.active = true
	return nil
}

// Size returns the screen dimensions.
func (t *Tcell) Size() (width, height int) {
	return t.screen.Size()
}

func (t *Tcell) MoveTo(x, y int) error {
	if !t.active {
		return ErrClosed
	}
	t.x, t.y = x, y
	return nil
}

func (t *Tcell) SetForeground(c renderer.Color) error {
	if !t.active {
		return ErrClosed
	}
	t.style = t.style.Foreground(convertColor(c))
	return nil
}

func (t *Tcell) Print(text string) error {
	if !t.active {
		return ErrClosed
	}
	for _, r := range text {
		if r == '\n' {
			t.x = 0
			t.y++
			continue
		}
		t.screen.SetContent(t.x, t.y, r, nil, t.style)
		t.x++
	}
	return nil
}

func (t *Tcell) Flush() error {
	if !t.active {
		return ErrClosed
	}
	t.screen.Show()
	return nil
}

// Close restores the terminal if the device owns the screen.
func (t *Tcell) Close() error {
	if !t.active {
		return nil
	}
	t.active = false
	if t.owned {
		t.screen.Fini()
	}
	return nil
}

func convertColor(c renderer.Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
