// Package native loads modules built with -buildmode=plugin.
//
// A native module is a Go plugin exporting
//
//	func MepGetPlugin() plugin.Plugin
//
// It must be built with the same toolchain and package versions as the host.
package native

import (
	"fmt"
	goplugin "plugin"

	"github.com/dshills/mep/internal/plugin"
)

// Opener opens Go plugin shared objects.
type Opener struct{}

// NewOpener creates a shared-object opener.
func NewOpener() *Opener {
	return &Opener{}
}

// Open loads the shared object at path.
func (o *Opener) Open(path string) (plugin.Module, error) {
	p, err := goplugin.Open(path)
	if err != nil {
		return nil, err
	}
	return &Module{path: path, lookup: p.Lookup}, nil
}

// Module is a loaded Go plugin.
//
// The Go runtime cannot unload shared objects, so Close only marks the module
// closed; its code stays mapped for the life of the process.
type Module struct {
	path   string
	lookup func(string) (goplugin.Symbol, error)
	closed bool
}

// Path returns the file the module was loaded from.
func (m *Module) Path() string {
	return m.path
}

// Lookup resolves symbol as an entry point.
func (m *Module) Lookup(symbol string) (plugin.EntryFunc, error) {
	if m.closed {
		return nil, fmt.Errorf("module %s is closed", m.path)
	}
	sym, err := m.lookup(symbol)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", plugin.ErrNoEntryPoint, err)
	}
	return entryFromSymbol(sym)
}

// Close marks the module closed.
func (m *Module) Close() error {
	m.closed = true
	return nil
}

// entryFromSymbol accepts an exported function, or a variable holding one.
func entryFromSymbol(sym goplugin.Symbol) (plugin.EntryFunc, error) {
	switch fn := sym.(type) {
	case func() plugin.Plugin:
		return fn, nil
	case *func() plugin.Plugin:
		if fn == nil || *fn == nil {
			return nil, plugin.ErrEntrySignature
		}
		return *fn, nil
	case *plugin.EntryFunc:
		if fn == nil || *fn == nil {
			return nil, plugin.ErrEntrySignature
		}
		return *fn, nil
	default:
		return nil, fmt.Errorf("%w: got %T", plugin.ErrEntrySignature, sym)
	}
}
