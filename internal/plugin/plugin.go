package plugin

import (
	"github.com/dshills/mep/internal/renderer"
)

// PluginType is the capability category a module declares.
type PluginType int

// Plugin types.
const (
	// TypeGraphics - drawing backend implementing GraphicPlugin.
	TypeGraphics PluginType = iota

	// TypeInput - input backend implementing InputPlugin.
	TypeInput
)

// String returns a string representation of the type.
func (t PluginType) String() string {
	switch t {
	case TypeGraphics:
		return "graphics"
	case TypeInput:
		return "input"
	default:
		return "unknown"
	}
}

// ParsePluginType converts a type name back into a PluginType.
func ParsePluginType(s string) (PluginType, bool) {
	switch s {
	case "graphics":
		return TypeGraphics, true
	case "input":
		return TypeInput, true
	default:
		return 0, false
	}
}

// PluginInfo is the description a module reports about itself.
type PluginInfo struct {
	Name    string
	Version string
	Type    PluginType
}

// Plugin is the root capability every module handle implements.
type Plugin interface {
	// Init prepares the plugin. It is called once, right after the entry
	// point returns. A no-op is allowed.
	Init() error

	// Info reports the plugin's name, version and type.
	Info() PluginInfo
}

// GraphicPlugin is a drawing backend.
// Drawing calls clip to the backend's surface; CommitBuffer renders it.
type GraphicPlugin interface {
	Plugin

	// CommitBuffer renders the current surface to the display.
	// A failed commit leaves the surface intact and may be retried.
	CommitBuffer() error

	// DrawLine draws a straight segment between two points, inclusive.
	DrawLine(x1, y1, x2, y2 int)

	// DrawRect draws the outline of a rectangle with top-left corner (x, y).
	DrawRect(x, y, width, height int)

	// FillRect fills a rectangle with top-left corner (x, y).
	FillRect(x, y, width, height int)

	// SetStyle replaces the style used by subsequent drawing calls.
	SetStyle(style *renderer.Style)
}

// InputPlugin is an input backend. It adds nothing to Plugin yet.
type InputPlugin interface {
	Plugin
}

// Shutdowner is implemented by plugins holding resources that must be
// released before their module is closed.
type Shutdowner interface {
	Shutdown() error
}

// implements reports whether p provides the capability its type declares.
func implements(p Plugin, t PluginType) bool {
	switch t {
	case TypeGraphics:
		_, ok := p.(GraphicPlugin)
		return ok
	case TypeInput:
		_, ok := p.(InputPlugin)
		return ok
	default:
		return false
	}
}
