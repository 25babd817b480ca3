package tuigraphics

import (
	"github.com/rs/zerolog"

	"github.com/dshills/mep/internal/logging"
	"github.com/dshills/mep/internal/plugin"
	"github.com/dshills/mep/internal/renderer"
	"github.com/dshills/mep/internal/renderer/backend"
	"github.com/dshills/mep/internal/renderer/device"
	"github.com/dshills/mep/internal/version"
)

// Name is the name the backend reports.
const Name = "Tui Graphics"

// Graphics implements plugin.GraphicPlugin over a pixel buffer.
//
// The buffer and style are owned by one Graphics and mutated only through
// its methods. Like every plugin handle it is used from one goroutine.
type Graphics struct {
	buffer *backend.PixelBuffer
	style  *renderer.Style
	dev    device.Device
	log    zerolog.Logger
}

// Compile-time interface checks
var (
	_ plugin.GraphicPlugin = (*Graphics)(nil)
	_ plugin.Shutdowner    = (*Graphics)(nil)
)

// New creates a backend with a width×height buffer of transparent pixels
// committing to dev.
func New(dev device.Device, width, height int) *Graphics {
	return &Graphics{
		buffer: backend.NewPixelBuffer(width, height),
		style:  renderer.DefaultStyle(),
		dev:    dev,
		log:    logging.Component("tuigraphics"),
	}
}

// Init prepares the device.
func (g *Graphics) Init() error {
	if in, ok := g.dev.(device.Initializer); ok {
		return in.Init()
	}
	return nil
}

// Info reports the backend's identity.
func (g *Graphics) Info() plugin.PluginInfo {
	return plugin.PluginInfo{
		Name:    Name,
		Version: version.Version,
		Type:    plugin.TypeGraphics,
	}
}

// Shutdown releases the device, restoring the terminal if it owns one.
func (g *Graphics) Shutdown() error {
	if c, ok := g.dev.(device.Closer); ok {
		return c.Close()
	}
	return nil
}

// Size returns the buffer dimensions.
func (g *Graphics) Size() (width, height int) {
	return g.buffer.Size()
}

// Read returns the pixel at (x, y), or a *backend.BoundsError.
func (g *Graphics) Read(x, y int) (renderer.Color, error) {
	return g.buffer.Read(x, y)
}

// Write sets the pixel at (x, y), or returns a *backend.BoundsError.
func (g *Graphics) Write(x, y int, c renderer.Color) error {
	return g.buffer.Write(x, y, c)
}

// Clear sets every pixel to c.
func (g *Graphics) Clear(c renderer.Color) {
	g.buffer.Clear(c)
}

// Style returns the current style.
func (g *Graphics) Style() *renderer.Style {
	return g.style
}

// SetStyle swaps the style subsequent drawing calls use. The style itself is
// never modified. A nil style restores the default.
func (g *Graphics) SetStyle(style *renderer.Style) {
	if style == nil {
		style = renderer.DefaultStyle()
	}
	g.style = style
}

// DrawLine draws a line in the current color, clipped to the buffer.
func (g *Graphics) DrawLine(x1, y1, x2, y2 int) {
	g.buffer.DrawLine(x1, y1, x2, y2, g.style.Color())
}

// DrawRect outlines a rectangle in the current color, clipped to the buffer.
func (g *Graphics) DrawRect(x, y, width, height int) {
	g.buffer.DrawRect(x, y, width, height, g.style.Color())
}

// FillRect fills a rectangle in the current color, clipped to the buffer.
func (g *Graphics) FillRect(x, y, width, height int) {
	g.buffer.FillRect(x, y, width, height, g.style.Color())
}
