package plugin

import (
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/dshills/mep/internal/logging"
)

// Record pairs a loaded handle with the module that produced it.
type Record struct {
	ID     uuid.UUID
	Path   string
	Info   PluginInfo
	Plugin Plugin
	Module Module
}

// Manager loads modules and keeps them alive for its own lifetime.
//
// Handles and modules are kept in parallel slices that only grow until Close;
// plugins[i] was produced by modules[i].
type Manager struct {
	mu sync.RWMutex

	// Loader for module discovery
	loader *Loader

	plugins []Plugin
	modules []Module
	records []Record

	// Paths already loaded, so a second pass does not reload them
	loaded map[string]bool

	closed bool
	log    zerolog.Logger
}

// ManagerConfig configures the plugin manager.
type ManagerConfig struct {
	// Dir is the directory searched for modules
	Dir string

	// Patterns bind filename globs to openers, in priority order
	Patterns []Pattern
}

// ManagerOption configures a Manager.
type ManagerOption func(*Manager)

// WithLogger sets the logger used for load diagnostics.
func WithLogger(logger zerolog.Logger) ManagerOption {
	return func(m *Manager) {
		m.log = logger
	}
}

// NewManager creates a new plugin manager.
func NewManager(config ManagerConfig, opts ...ManagerOption) *Manager {
	dir := config.Dir
	if dir == "" {
		dir = "."
	}

	m := &Manager{
		loader: NewLoader(WithDir(dir), WithPatterns(config.Patterns...)),
		loaded: make(map[string]bool),
		log:    logging.Component("plugin"),
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// DiscoverAndLoad loads every module the loader finds, in discovery order.
//
// The pass stops at the first failure and returns it as a *DiscoveryError or
// *LoadError; modules loaded before the failure stay loaded. Modules already
// loaded by an earlier pass are skipped.
func (m *Manager) DiscoverAndLoad() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrManagerClosed
	}

	candidates, err := m.loader.Discover()
	if err != nil {
		m.log.Error().Err(err).Msg("Looking for plugins failed")
		return err
	}

	for _, c := range candidates {
		if m.loaded[c.Path] {
			continue
		}

		m.log.Info().Str("path", c.Path).Msg("Found potential plugin")

		rec, err := m.load(c)
		if err != nil {
			m.log.Error().Err(err).Str("path", c.Path).Msg("Could not load plugin")
			return err
		}

		m.plugins = append(m.plugins, rec.Plugin)
		m.modules = append(m.modules, rec.Module)
		m.records = append(m.records, rec)
		m.loaded[c.Path] = true

		m.log.Info().
			Str("name", rec.Info.Name).
			Str("version", rec.Info.Version).
			Stringer("type", rec.Info.Type).
			Str("id", rec.ID.String()).
			Msg("Loaded plugin")
	}

	m.log.Info().Int("count", len(m.plugins)).Msg("Loaded plugins")
	return nil
}

// load opens one candidate and instantiates its plugin. On failure the
// module is closed again and no record is produced.
func (m *Manager) load(c Candidate) (Record, error) {
	if c.Opener == nil {
		return Record{}, &LoadError{Path: c.Path, Stage: StageOpen, Err: fmt.Errorf("no opener for pattern %q", c.Glob)}
	}

	mod, err := c.Opener.Open(c.Path)
	if err != nil {
		return Record{}, &LoadError{Path: c.Path, Stage: StageOpen, Err: err}
	}

	p, info, err := instantiate(c.Path, mod)
	if err != nil {
		if p != nil {
			shutdown(p)
		}
		if cerr := mod.Close(); cerr != nil {
			m.log.Warn().Err(cerr).Str("path", c.Path).Msg("Closing failed module")
		}
		return Record{}, err
	}

	return Record{
		ID:     uuid.New(),
		Path:   c.Path,
		Info:   info,
		Plugin: p,
		Module: mod,
	}, nil
}

// instantiate resolves and calls the module entry point, validates the
// handle against its declared type and initializes it. A non-nil plugin is
// returned alongside an error only if it was created but failed later.
func instantiate(path string, mod Module) (Plugin, PluginInfo, error) {
	loadErr := func(stage LoadStage, err error) *LoadError {
		return &LoadError{Path: path, Symbol: EntrySymbol, Stage: stage, Err: err}
	}

	entry, err := mod.Lookup(EntrySymbol)
	if err != nil {
		return nil, PluginInfo{}, loadErr(StageSymbol, err)
	}
	if entry == nil {
		return nil, PluginInfo{}, loadErr(StageSymbol, ErrEntrySignature)
	}

	var p Plugin
	if err := guard(func() { p = entry() }); err != nil {
		return nil, PluginInfo{}, loadErr(StageEntry, err)
	}
	if p == nil {
		return nil, PluginInfo{}, loadErr(StageEntry, ErrNilPlugin)
	}

	var info PluginInfo
	if err := guard(func() { info = p.Info() }); err != nil {
		return p, PluginInfo{}, loadErr(StageEntry, err)
	}
	if !implements(p, info.Type) {
		return p, info, loadErr(StageEntry, fmt.Errorf("%w: %s declares %s", ErrCapabilityMismatch, info.Name, info.Type))
	}

	var initErr error
	if err := guard(func() { initErr = p.Init() }); err != nil {
		return p, info, loadErr(StageInit, err)
	}
	if initErr != nil {
		return p, info, loadErr(StageInit, initErr)
	}

	return p, info, nil
}

// guard runs fn, turning a panic into an error. A panic value that is
// itself an error stays in the chain.
func guard(fn func()) (err error) {
	defer func() {
		switch r := recover().(type) {
		case nil:
		case error:
			err = fmt.Errorf("%w: %w", ErrEntryPanic, r)
		default:
			err = fmt.Errorf("%w: %v", ErrEntryPanic, r)
		}
	}()
	fn()
	return nil
}

func shutdown(p Plugin) error {
	s, ok := p.(Shutdowner)
	if !ok {
		return nil
	}
	var serr error
	if err := guard(func() { serr = s.Shutdown() }); err != nil {
		return err
	}
	return serr
}

// Plugins returns every loaded handle in load order.
func (m *Manager) Plugins() []Plugin {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]Plugin, len(m.plugins))
	copy(result, m.plugins)
	return result
}

// Records returns the load records in load order.
func (m *Manager) Records() []Record {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]Record, len(m.records))
	copy(result, m.records)
	return result
}

// ByType returns the handles whose declared type is t, in load order.
func (m *Manager) ByType(t PluginType) []Plugin {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]Plugin, 0)
	for _, rec := range m.records {
		if rec.Info.Type == t {
			result = append(result, rec.Plugin)
		}
	}
	return result
}

// Graphics returns the loaded graphics backends in load order.
func (m *Manager) Graphics() []GraphicPlugin {
	var result []GraphicPlugin
	for _, p := range m.ByType(TypeGraphics) {
		// Type was validated at load time
		result = append(result, p.(GraphicPlugin))
	}
	return result
}

// Inputs returns the loaded input backends in load order.
func (m *Manager) Inputs() []InputPlugin {
	var result []InputPlugin
	for _, p := range m.ByType(TypeInput) {
		result = append(result, p.(InputPlugin))
	}
	return result
}

// Count returns the number of loaded plugins.
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.plugins)
}

// Loader returns the underlying loader.
func (m *Manager) Loader() *Loader {
	return m.loader
}

// Close releases every handle and then every module, both in reverse load
// order. Handles obtained from the manager must not be used afterwards.
func (m *Manager) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return nil
	}
	m.closed = true

	var errs []error
	for i := len(m.records) - 1; i >= 0; i-- {
		if err := shutdown(m.records[i].Plugin); err != nil {
			errs = append(errs, fmt.Errorf("shutting down %s: %w", m.records[i].Info.Name, err))
		}
	}
	m.plugins = nil

	// Modules go last, after nothing references their handles
	for i := len(m.modules) - 1; i >= 0; i-- {
		if err := m.modules[i].Close(); err != nil {
			errs = append(errs, fmt.Errorf("closing module %s: %w", m.modules[i].Path(), err))
		}
	}
	m.modules = nil
	m.records = nil

	m.log.Debug().Msg("Plugin manager closed")
	return errors.Join(errs...)
}
