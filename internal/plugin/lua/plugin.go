package lua

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/mep/internal/plugin"
)

// ScriptPlugin is a handle produced by a script module.
type ScriptPlugin struct {
	state  *State
	info   plugin.PluginInfo
	initFn lua.LValue
}

// newScriptPlugin converts a descriptor table into a handle.
func newScriptPlugin(state *State, v lua.LValue) (*ScriptPlugin, error) {
	tbl, ok := v.(*lua.LTable)
	if !ok {
		return nil, fmt.Errorf("%w: expected table, got %s", ErrInvalidDescriptor, v.Type())
	}

	name := lua.LVAsString(tbl.RawGetString("name"))
	if name == "" {
		return nil, fmt.Errorf("%w: missing name", ErrInvalidDescriptor)
	}

	version := lua.LVAsString(tbl.RawGetString("version"))
	if version == "" {
		version = "unknown"
	}

	typeName := lua.LVAsString(tbl.RawGetString("type"))
	pt, ok := plugin.ParsePluginType(typeName)
	if !ok {
		return nil, fmt.Errorf("%w: unknown type %q", ErrInvalidDescriptor, typeName)
	}

	p := &ScriptPlugin{
		state: state,
		info:  plugin.PluginInfo{Name: name, Version: version, Type: pt},
	}

	switch initFn := tbl.RawGetString("init"); initFn.Type() {
	case lua.LTFunction:
		p.initFn = initFn
	case lua.LTNil:
	default:
		return nil, fmt.Errorf("%w: init is a %s", ErrInvalidDescriptor, initFn.Type())
	}

	return p, nil
}

// Init runs the descriptor's init function, if any.
func (p *ScriptPlugin) Init() error {
	if p.initFn == nil {
		return nil
	}
	_, err := p.state.CallValue(p.initFn)
	return err
}

// Info returns the descriptor's name, version and type.
func (p *ScriptPlugin) Info() plugin.PluginInfo {
	return p.info
}
