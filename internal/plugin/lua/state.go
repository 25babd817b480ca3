package lua

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	lua "github.com/yuin/gopher-lua"
)

// State wraps a gopher-lua interpreter for one script module.
//
// gopher-lua's LState is not goroutine-safe; a State must only be used from
// the goroutine driving the host.
type State struct {
	L      *lua.LState
	closed bool
}

// NewState creates an interpreter with only safe libraries opened.
// The script's print function writes to logger.
func NewState(logger zerolog.Logger) *State {
	L := lua.NewState(lua.Options{
		SkipOpenLibs: true, // We'll open selectively
	})
	openSafeLibraries(L)
	installPrint(L, logger)
	return &State{L: L}
}

// openSafeLibraries opens only safe Lua standard libraries.
func openSafeLibraries(L *lua.LState) {
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)

	// Note: io, os, debug and package are intentionally NOT opened

	// Base library file loaders would bypass the above
	L.SetGlobal("dofile", lua.LNil)
	L.SetGlobal("loadfile", lua.LNil)
}

// installPrint routes print() to the logger at debug level.
func installPrint(L *lua.LState, logger zerolog.Logger) {
	L.SetGlobal("print", L.NewFunction(func(L *lua.LState) int {
		n := L.GetTop()
		parts := make([]string, 0, n)
		for i := 1; i <= n; i++ {
			parts = append(parts, L.ToStringMeta(L.Get(i)).String())
		}
		logger.Debug().Msg(strings.Join(parts, "\t"))
		return 0
	}))
}

// DoFile executes a Lua file.
func (s *State) DoFile(path string) error {
	if s.closed {
		return ErrStateClosed
	}
	return s.doWithRecovery(func() error {
		return s.L.DoFile(path)
	})
}

// DoString executes a Lua string.
func (s *State) DoString(code string) error {
	if s.closed {
		return ErrStateClosed
	}
	return s.doWithRecovery(func() error {
		return s.L.DoString(code)
	})
}

// GetGlobal returns a global variable value.
func (s *State) GetGlobal(name string) lua.LValue {
	if s.closed {
		return lua.LNil
	}
	return s.L.GetGlobal(name)
}

// CallValue calls fn and returns its first result, or LNil if it returned
// nothing.
func (s *State) CallValue(fn lua.LValue) (lua.LValue, error) {
	if s.closed {
		return lua.LNil, ErrStateClosed
	}
	if fn.Type() != lua.LTFunction {
		return lua.LNil, fmt.Errorf("not a function (got %s)", fn.Type())
	}

	var ret lua.LValue = lua.LNil
	err := s.doWithRecovery(func() error {
		if err := s.L.CallByParam(lua.P{Fn: fn, NRet: 1, Protect: true}); err != nil {
			return err
		}
		ret = s.L.Get(-1)
		s.L.Pop(1)
		return nil
	})
	return ret, err
}

// Close closes the interpreter. It is safe to call more than once.
func (s *State) Close() {
	if s.closed {
		return
	}
	s.closed = true
	s.L.Close()
}

// IsClosed returns true if the state has been closed.
func (s *State) IsClosed() bool {
	return s.closed
}

// doWithRecovery executes a function with panic recovery.
func (s *State) doWithRecovery(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("lua panic: %v", r)
		}
	}()
	return fn()
}
