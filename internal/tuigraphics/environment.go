package tuigraphics

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"golang.org/x/term"

	"github.com/dshills/mep/internal/config"
	"github.com/dshills/mep/internal/logging"
	"github.com/dshills/mep/internal/renderer/device"
)

// Environment is what NewFromEnvironment probes. Tests replace it.
type Environment struct {
	Stdout   *os.File
	IsTTY    func(fd uintptr) bool
	TermSize func(fd int) (width, height int, err error)
	NewTcell func() (device.Device, error)
}

// DefaultEnvironment probes the process's stdout.
func DefaultEnvironment() Environment {
	return Environment{
		Stdout: os.Stdout,
		IsTTY: func(fd uintptr) bool {
			return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
		},
		TermSize: term.GetSize,
		NewTcell: func() (device.Device, error) {
			return device.NewTcell()
		},
	}
}

// NewFromEnvironment creates a backend sized to the terminal on stdout.
// When the size cannot be detected it falls back to cfg's width and height.
// The ansi device leaves the bottom terminal row free, since the terminator
// after the last pixel row would otherwise scroll the frame up by one.
func NewFromEnvironment(cfg config.DisplayConfig) (*Graphics, error) {
	return newFromEnvironment(cfg, DefaultEnvironment(), logging.Component("tuigraphics"))
}

func newFromEnvironment(cfg config.DisplayConfig, env Environment, logger zerolog.Logger) (*Graphics, error) {
	fd := env.Stdout.Fd()

	if !env.IsTTY(fd) {
		logger.Warn().Msg("Stdout was detected as not being a tty")
	}

	width, height, err := env.TermSize(int(fd))
	if err != nil || width <= 0 || height <= 0 {
		logger.Warn().Err(err).
			Int("width", cfg.Width).
			Int("height", cfg.Height).
			Msg("Could not retrieve terminal size, using configured size")
		width, height = cfg.Width, cfg.Height
	} else if isANSI(cfg.Device) && height > 1 {
		height--
	}
	logger.Info().Int("width", width).Int("height", height).Msg("Display size")

	clear, err := cfg.ClearColor()
	if err != nil {
		return nil, fmt.Errorf("display.clear: %w", err)
	}

	dev, err := openDevice(cfg.Device, env)
	if err != nil {
		return nil, err
	}

	g := New(dev, width, height)
	g.log = logger
	g.Clear(clear)
	return g, nil
}

func isANSI(name string) bool {
	return name == config.DeviceANSI || name == ""
}

func openDevice(name string, env Environment) (device.Device, error) {
	switch name {
	case config.DeviceANSI, "":
		return device.NewANSI(env.Stdout), nil
	case config.DeviceTcell:
		dev, err := env.NewTcell()
		if err != nil {
			return nil, fmt.Errorf("opening tcell screen: %w", err)
		}
		return dev, nil
	default:
		return nil, fmt.Errorf("unknown display device %q", name)
	}
}
