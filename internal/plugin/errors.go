package plugin

import (
	"errors"
	"fmt"
)

// Plugin system errors.
var (
	// ErrNoEntryPoint is returned when a module does not export EntrySymbol.
	ErrNoEntryPoint = errors.New("module has no entry point " + EntrySymbol)

	// ErrEntrySignature is returned when EntrySymbol has the wrong shape.
	ErrEntrySignature = errors.New("entry point has the wrong signature")

	// ErrNilPlugin is returned when an entry point returns no handle.
	ErrNilPlugin = errors.New("entry point returned a nil plugin")

	// ErrCapabilityMismatch is returned when a handle does not implement the
	// capability its declared type requires.
	ErrCapabilityMismatch = errors.New("plugin does not implement its declared capability")

	// ErrEntryPanic is returned when an entry point or Init panics.
	ErrEntryPanic = errors.New("plugin panicked")

	// ErrManagerClosed is returned when using a closed manager.
	ErrManagerClosed = errors.New("plugin manager is closed")
)

// DiscoveryError reports a failure enumerating candidate module files.
type DiscoveryError struct {
	Dir     string
	Pattern string
	Err     error
}

func (e *DiscoveryError) Error() string {
	if e.Pattern != "" {
		return fmt.Sprintf("discovering modules in %s (%s): %v", e.Dir, e.Pattern, e.Err)
	}
	return fmt.Sprintf("discovering modules in %s: %v", e.Dir, e.Err)
}

func (e *DiscoveryError) Unwrap() error {
	return e.Err
}

// LoadStage identifies where loading a module failed.
type LoadStage int

// Load stages.
const (
	StageOpen LoadStage = iota
	StageSymbol
	StageEntry
	StageInit
)

// String returns a string representation of the stage.
func (s LoadStage) String() string {
	switch s {
	case StageOpen:
		return "open"
	case StageSymbol:
		return "symbol"
	case StageEntry:
		return "entry"
	case StageInit:
		return "init"
	default:
		return "unknown"
	}
}

// LoadError reports a module that could not be loaded.
type LoadError struct {
	Path   string
	Symbol string
	Stage  LoadStage
	Err    error
}

func (e *LoadError) Error() string {
	if e.Stage == StageOpen {
		return fmt.Sprintf("loading module %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("loading module %s: %s %s: %v", e.Path, e.Stage, e.Symbol, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// IsFatal reports whether err is a discovery or load failure, which leaves
// the host without a usable deployment.
func IsFatal(err error) bool {
	var de *DiscoveryError
	var le *LoadError
	return errors.As(err, &de) || errors.As(err, &le)
}
