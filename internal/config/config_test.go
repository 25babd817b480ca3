package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/mep/internal/renderer"
)

// chdir moves into a fresh directory for the duration of the test.
func chdir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	testChdir(t, dir)
	return dir
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLoadDefaults(t *testing.T) {
	chdir(t)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, ".", cfg.Plugins.Dir)
	assert.Empty(t, cfg.Plugins.Patterns)
	assert.False(t, cfg.Plugins.Scripts)
	assert.Equal(t, DeviceANSI, cfg.Display.Device)
	assert.Equal(t, 100, cfg.Display.Width)
	assert.Equal(t, 100, cfg.Display.Height)
	assert.Zero(t, cfg.Log.Verbosity)

	clear, err := cfg.Display.ClearColor()
	require.NoError(t, err)
	assert.Equal(t, renderer.Transparent, clear)
}

func TestLoadTOML(t *testing.T) {
	dir := chdir(t)
	writeFile(t, filepath.Join(dir, "mep.toml"), `
[plugins]
dir = "plugins"
patterns = ["libmep_extra*.so"]
scripts = true

[display]
device = "tcell"
width = 80
clear = "#102030"

[log]
verbosity = 2
`)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "plugins", cfg.Plugins.Dir)
	assert.Equal(t, []string{"libmep_extra*.so"}, cfg.Plugins.Patterns)
	assert.True(t, cfg.Plugins.Scripts)
	assert.Equal(t, DeviceTcell, cfg.Display.Device)
	assert.Equal(t, 80, cfg.Display.Width)
	assert.Equal(t, 100, cfg.Display.Height, "unset keys keep defaults")
	assert.Equal(t, 2, cfg.Log.Verbosity)

	clear, err := cfg.Display.ClearColor()
	require.NoError(t, err)
	assert.Equal(t, renderer.ColorFromRGB(0x10, 0x20, 0x30), clear)
}

func TestLoadYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	writeFile(t, path, `
display:
  height: 24
log:
  verbosity: 1
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 24, cfg.Display.Height)
	assert.Equal(t, 1, cfg.Log.Verbosity)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := chdir(t)
	writeFile(t, filepath.Join(dir, "mep.toml"), "[display]\ndevice = \"tcell\"\n")

	t.Setenv("MEP_DISPLAY_DEVICE", "ansi")
	t.Setenv("MEP_DISPLAY_WIDTH", "40")
	t.Setenv("MEP_PLUGINS_SCRIPTS", "true")
	t.Setenv("MEP_PLUGINS_PATTERNS", "a*.so,b*.so")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, DeviceANSI, cfg.Display.Device)
	assert.Equal(t, 40, cfg.Display.Width)
	assert.True(t, cfg.Plugins.Scripts)
	assert.Equal(t, []string{"a*.so", "b*.so"}, cfg.Plugins.Patterns)
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing named file", func(t *testing.T) {
		_, err := Load(filepath.Join(dir, "nope.toml"))
		assert.Error(t, err)
	})

	t.Run("unsupported format", func(t *testing.T) {
		path := filepath.Join(dir, "mep.json")
		writeFile(t, path, "{}")
		_, err := Load(path)
		assert.ErrorIs(t, err, ErrUnsupportedFormat)
	})

	t.Run("bad toml", func(t *testing.T) {
		path := filepath.Join(dir, "bad.toml")
		writeFile(t, path, "[display\n")
		_, err := Load(path)
		assert.Error(t, err)
	})

	t.Run("invalid value", func(t *testing.T) {
		path := filepath.Join(dir, "invalid.toml")
		writeFile(t, path, "[display]\ndevice = \"sdl\"\n")
		_, err := Load(path)

		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "display.device", verr.Key)
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		key    string
	}{
		{"valid", func(*Config) {}, ""},
		{"zero width", func(c *Config) { c.Display.Width = 0 }, "display.width"},
		{"negative height", func(c *Config) { c.Display.Height = -1 }, "display.height"},
		{"bad clear", func(c *Config) { c.Display.Clear = "red" }, "display.clear"},
		{"negative verbosity", func(c *Config) { c.Log.Verbosity = -1 }, "log.verbosity"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)

			err := cfg.Validate()
			if tt.key == "" {
				assert.NoError(t, err)
				return
			}

			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.key, verr.Key)
			assert.Contains(t, verr.Error(), tt.key)
		})
	}
}

func TestEnvKey(t *testing.T) {
	assert.Equal(t, "display.device", envKey("MEP_DISPLAY_DEVICE"))
	assert.Equal(t, "log.verbosity", envKey("MEP_LOG_VERBOSITY"))
}

func TestCurrent(t *testing.T) {
	dir := chdir(t)
	t.Cleanup(func() { SetCurrent(nil) })

	// A default file exists, but the published config must win
	writeFile(t, filepath.Join(dir, "mep.toml"), "[display]\nwidth = 10\n")
	custom := filepath.Join(dir, "other.toml")
	writeFile(t, custom, "[display]\nwidth = 42\nclear = \"#102030\"\n")

	SetCurrent(nil)
	cfg, err := Current()
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.Display.Width, "falls back to the default file")

	loaded, err := Load(custom)
	require.NoError(t, err)
	SetCurrent(loaded)

	cfg, err = Current()
	require.NoError(t, err)
	assert.Same(t, loaded, cfg)
	assert.Equal(t, 42, cfg.Display.Width)
}

// testChdir changes the working directory to dir and restores it when the
// test finishes (equivalent to testing.T.Chdir, which needs Go 1.24).
func testChdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}
