package lua

import (
	"fmt"

	"github.com/rs/zerolog"
	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/mep/internal/logging"
	"github.com/dshills/mep/internal/plugin"
)

// Opener opens Lua script modules.
type Opener struct {
	log zerolog.Logger
}

// NewOpener creates a script module opener.
func NewOpener() *Opener {
	return &Opener{log: logging.Component("lua")}
}

// Open runs the script at path in a fresh interpreter.
func (o *Opener) Open(path string) (plugin.Module, error) {
	state := NewState(o.log.With().Str("module", path).Logger())
	if err := state.DoFile(path); err != nil {
		state.Close()
		return nil, err
	}
	return &Module{path: path, state: state}, nil
}

// Module is a loaded script. It owns the interpreter its plugins run in.
type Module struct {
	path  string
	state *State
}

// Path returns the file the module was loaded from.
func (m *Module) Path() string {
	return m.path
}

// State returns the module's interpreter.
func (m *Module) State() *State {
	return m.state
}

// Lookup resolves a global Lua function as an entry point.
//
// The returned entry panics if the script fails or returns something other
// than a descriptor table; the manager reports that as a load failure.
func (m *Module) Lookup(symbol string) (plugin.EntryFunc, error) {
	fn := m.state.GetGlobal(symbol)
	if fn == lua.LNil {
		return nil, fmt.Errorf("%w: %s", plugin.ErrNoEntryPoint, symbol)
	}
	if fn.Type() != lua.LTFunction {
		return nil, fmt.Errorf("%w: %s is a %s", plugin.ErrEntrySignature, symbol, fn.Type())
	}

	return func() plugin.Plugin {
		ret, err := m.state.CallValue(fn)
		if err != nil {
			panic(fmt.Errorf("%s: %w", symbol, err))
		}
		p, err := newScriptPlugin(m.state, ret)
		if err != nil {
			panic(fmt.Errorf("%s: %w", symbol, err))
		}
		return p
	}, nil
}

// Close closes the interpreter.
func (m *Module) Close() error {
	m.state.Close()
	return nil
}
