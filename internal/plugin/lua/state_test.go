package lua

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	glua "github.com/yuin/gopher-lua"
)

func TestNewStateOpensSafeLibraries(t *testing.T) {
	state := NewState(zerolog.Nop())
	defer state.Close()

	assert.False(t, state.IsClosed())

	for _, lib := range []string{"string", "table", "math"} {
		assert.Equal(t, glua.LTTable, state.GetGlobal(lib).Type(), lib)
	}
	for _, lib := range []string{"io", "os", "debug", "package", "dofile", "loadfile"} {
		assert.Equal(t, glua.LNil, state.GetGlobal(lib), lib)
	}
}

func TestStatePrintGoesToLogger(t *testing.T) {
	var buf bytes.Buffer
	state := NewState(zerolog.New(&buf).Level(zerolog.DebugLevel))
	defer state.Close()

	require.NoError(t, state.DoString(`print("hello", 42)`))
	assert.Contains(t, buf.String(), `hello\t42`)
}

func TestStateDoFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "script.lua")
	require.NoError(t, os.WriteFile(path, []byte("answer = 6 * 7"), 0o644))

	state := NewState(zerolog.Nop())
	defer state.Close()

	require.NoError(t, state.DoFile(path))
	assert.Equal(t, glua.LNumber(42), state.GetGlobal("answer"))
}

func TestStateDoStringSyntaxError(t *testing.T) {
	state := NewState(zerolog.Nop())
	defer state.Close()

	assert.Error(t, state.DoString("this is not lua"))
}

func TestStateCallValue(t *testing.T) {
	state := NewState(zerolog.Nop())
	defer state.Close()

	require.NoError(t, state.DoString(`
		function twice(x) return (x or 21) * 2 end
		function nothing() end
		function boom() error("kaboom") end
		notfn = 3
	`))

	ret, err := state.CallValue(state.GetGlobal("twice"))
	require.NoError(t, err)
	assert.Equal(t, glua.LNumber(42), ret)

	ret, err = state.CallValue(state.GetGlobal("nothing"))
	require.NoError(t, err)
	assert.Equal(t, glua.LNil, ret)

	_, err = state.CallValue(state.GetGlobal("boom"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "kaboom")

	_, err = state.CallValue(state.GetGlobal("notfn"))
	assert.Error(t, err)
}

func TestStateClosed(t *testing.T) {
	state := NewState(zerolog.Nop())
	require.NoError(t, state.DoString("function f() end"))
	fn := state.GetGlobal("f")

	state.Close()
	state.Close() // idempotent

	assert.True(t, state.IsClosed())
	assert.ErrorIs(t, state.DoString("x = 1"), ErrStateClosed)
	assert.ErrorIs(t, state.DoFile("missing.lua"), ErrStateClosed)
	assert.Equal(t, glua.LNil, state.GetGlobal("f"))

	_, err := state.CallValue(fn)
	assert.ErrorIs(t, err, ErrStateClosed)
}
