package config

import (
	"slices"

	"github.com/dshills/mep/internal/renderer"
)

// Display devices.
const (
	DeviceANSI  = "ansi"
	DeviceTcell = "tcell"
)

// Config is the full set of settings.
type Config struct {
	Plugins PluginsConfig `koanf:"plugins"`
	Display DisplayConfig `koanf:"display"`
	Log     LogConfig     `koanf:"log"`
}

// PluginsConfig controls module discovery.
type PluginsConfig struct {
	Dir      string   `koanf:"dir"`
	Patterns []string `koanf:"patterns"`
	Scripts  bool     `koanf:"scripts"`
}

// DisplayConfig controls the terminal graphics backend.
type DisplayConfig struct {
	Device string `koanf:"device"`
	Width  int    `koanf:"width"`
	Height int    `koanf:"height"`
	Clear  string `koanf:"clear"`
}

// LogConfig controls diagnostics.
type LogConfig struct {
	Verbosity int `koanf:"verbosity"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Plugins: PluginsConfig{Dir: "."},
		Display: DisplayConfig{
			Device: DeviceANSI,
			Width:  100,
			Height: 100,
			Clear:  "#00000000",
		},
	}
}

// defaults is Default in koanf's flat key form.
func defaults() map[string]any {
	d := Default()
	return map[string]any{
		"plugins.dir":      d.Plugins.Dir,
		"plugins.patterns": []string{},
		"plugins.scripts":  d.Plugins.Scripts,
		"display.device":   d.Display.Device,
		"display.width":    d.Display.Width,
		"display.height":   d.Display.Height,
		"display.clear":    d.Display.Clear,
		"log.verbosity":    d.Log.Verbosity,
	}
}

// ClearColor parses display.clear.
func (d DisplayConfig) ClearColor() (renderer.Color, error) {
	return renderer.ColorFromHex(d.Clear)
}

// Validate checks settings that cannot be fixed up later.
func (c *Config) Validate() error {
	if !slices.Contains([]string{DeviceANSI, DeviceTcell}, c.Display.Device) {
		return &ValidationError{Key: "display.device", Value: c.Display.Device, Message: "must be ansi or tcell"}
	}
	if c.Display.Width <= 0 {
		return &ValidationError{Key: "display.width", Value: c.Display.Width, Message: "must be positive"}
	}
	if c.Display.Height <= 0 {
		return &ValidationError{Key: "display.height", Value: c.Display.Height, Message: "must be positive"}
	}
	if _, err := c.Display.ClearColor(); err != nil {
		return &ValidationError{Key: "display.clear", Value: c.Display.Clear, Message: err.Error()}
	}
	if c.Log.Verbosity < 0 {
		return &ValidationError{Key: "log.verbosity", Value: c.Log.Verbosity, Message: "must not be negative"}
	}
	return nil
}
