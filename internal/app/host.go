package app

import (
	"errors"

	"github.com/rs/zerolog"

	"github.com/dshills/mep/internal/config"
	"github.com/dshills/mep/internal/logging"
	"github.com/dshills/mep/internal/plugin"
	"github.com/dshills/mep/internal/plugin/lua"
	"github.com/dshills/mep/internal/plugin/native"
	"github.com/dshills/mep/internal/renderer/device"
)

// Host owns the plugin manager and drives the selected graphics backend.
type Host struct {
	cfg      *config.Config
	manager  *plugin.Manager
	graphics plugin.GraphicPlugin
	started  bool
	log      zerolog.Logger
}

// Option configures a Host.
type Option func(*hostOptions)

type hostOptions struct {
	patterns []plugin.Pattern
	logger   *zerolog.Logger
}

// WithPatterns replaces the patterns derived from the configuration.
func WithPatterns(patterns ...plugin.Pattern) Option {
	return func(o *hostOptions) {
		o.patterns = patterns
	}
}

// WithLogger sets the logger for the host and its manager.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *hostOptions) {
		o.logger = &logger
	}
}

// Patterns returns the module patterns cfg asks for: the platform's shared
// object glob followed by any extra globs, then mep*.lua when scripts are
// enabled.
func Patterns(cfg *config.Config) []plugin.Pattern {
	opener := native.NewOpener()

	patterns := []plugin.Pattern{{Glob: plugin.SharedObjectGlob(), Opener: opener}}
	for _, glob := range cfg.Plugins.Patterns {
		patterns = append(patterns, plugin.Pattern{Glob: glob, Opener: opener})
	}
	if cfg.Plugins.Scripts {
		patterns = append(patterns, plugin.Pattern{Glob: plugin.ScriptGlob, Opener: lua.NewOpener()})
	}
	return patterns
}

// New creates a host. Nothing is loaded until Start.
func New(cfg *config.Config, opts ...Option) *Host {
	o := hostOptions{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.patterns == nil {
		o.patterns = Patterns(cfg)
	}

	logger := logging.Component("host")
	managerLogger := logging.Component("plugin")
	if o.logger != nil {
		logger, managerLogger = *o.logger, *o.logger
	}

	return &Host{
		cfg: cfg,
		manager: plugin.NewManager(plugin.ManagerConfig{
			Dir:      cfg.Plugins.Dir,
			Patterns: o.patterns,
		}, plugin.WithLogger(managerLogger)),
		log: logger,
	}
}

// Start discovers and loads every module. Load failures are fatal and are
// returned as *plugin.DiscoveryError or *plugin.LoadError.
func (h *Host) Start() error {
	if h.started {
		return ErrAlreadyStarted
	}
	if err := h.manager.DiscoverAndLoad(); err != nil {
		return err
	}
	h.started = true

	if graphics := h.manager.Graphics(); len(graphics) > 0 {
		h.graphics = graphics[0]
		h.log.Info().Str("name", h.graphics.Info().Name).Msg("Using graphics plugin")
	}
	return nil
}

// Manager returns the plugin manager.
func (h *Host) Manager() *plugin.Manager {
	return h.manager
}

// Graphics returns the first loaded graphics backend.
func (h *Host) Graphics() (plugin.GraphicPlugin, error) {
	if !h.started {
		return nil, ErrNotStarted
	}
	if h.graphics == nil {
		return nil, ErrNoGraphics
	}
	return h.graphics, nil
}

// Frame runs draw against the graphics backend and commits the result.
// A *device.OutputError means the frame was lost; the caller may go on.
func (h *Host) Frame(draw func(g plugin.GraphicPlugin)) error {
	g, err := h.Graphics()
	if err != nil {
		return err
	}
	if draw != nil {
		draw(g)
	}
	return g.CommitBuffer()
}

// Run presents frames 0 through frames-1. Frames lost to output errors are
// logged and skipped; any other error stops the loop.
func (h *Host) Run(frames int, draw func(frame int, g plugin.GraphicPlugin)) error {
	skipped := 0
	for i := 0; i < frames; i++ {
		err := h.Frame(func(g plugin.GraphicPlugin) {
			if draw != nil {
				draw(i, g)
			}
		})

		var outErr *device.OutputError
		switch {
		case err == nil:
		case errors.As(err, &outErr):
			skipped++
			h.log.Warn().Err(err).Int("frame", i).Msg("Skipping frame")
		default:
			return &FrameError{Frame: i, Err: err}
		}
	}

	h.log.Debug().Int("frames", frames).Int("skipped", skipped).Msg("Run finished")
	return nil
}

// Shutdown releases every plugin and module.
func (h *Host) Shutdown() error {
	h.graphics = nil
	return h.manager.Close()
}

// sizer is implemented by graphics backends that know their surface size.
type sizer interface {
	Size() (width, height int)
}

// SurfaceSize returns the graphics backend's size, or the configured display
// size if the backend does not report one.
func (h *Host) SurfaceSize() (width, height int) {
	if s, ok := h.graphics.(sizer); ok {
		return s.Size()
	}
	return h.cfg.Display.Width, h.cfg.Display.Height
}
