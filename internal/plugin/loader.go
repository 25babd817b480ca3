package plugin

import (
	"os"
	"path/filepath"
	"runtime"
)

// ScriptGlob matches script modules.
const ScriptGlob = "mep*.lua"

// SharedObjectGlob returns the platform's naming pattern for shared-object
// modules.
func SharedObjectGlob() string {
	return sharedObjectGlob(runtime.GOOS)
}

func sharedObjectGlob(goos string) string {
	switch goos {
	case "windows":
		return "mep*.dll"
	case "darwin":
		return "libmep*.dylib"
	default:
		return "libmep*.so"
	}
}

// Pattern binds a filename glob to the opener for files matching it.
type Pattern struct {
	Glob   string
	Opener Opener
}

// Candidate is a discovered module file, not yet loaded.
type Candidate struct {
	Path   string
	Glob   string
	Opener Opener
}

// Loader discovers candidate module files in a directory.
type Loader struct {
	dir      string
	patterns []Pattern
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithDir sets the directory searched for modules.
func WithDir(dir string) LoaderOption {
	return func(l *Loader) {
		l.dir = dir
	}
}

// WithPatterns sets the patterns candidates are matched against, in priority
// order.
func WithPatterns(patterns ...Pattern) LoaderOption {
	return func(l *Loader) {
		l.patterns = patterns
	}
}

// NewLoader creates a loader searching the working directory.
func NewLoader(opts ...LoaderOption) *Loader {
	l := &Loader{dir: "."}

	for _, opt := range opts {
		opt(l)
	}

	return l
}

// Dir returns the directory searched.
func (l *Loader) Dir() string {
	return l.dir
}

// Patterns returns the configured patterns.
func (l *Loader) Patterns() []Pattern {
	return l.patterns
}

// AddPattern appends a pattern with the lowest priority.
func (l *Loader) AddPattern(p Pattern) {
	l.patterns = append(l.patterns, p)
}

// Discover lists the files matching any pattern, in pattern order and then
// lexical order. A file matching several patterns is listed once, under the
// first. A missing directory yields no candidates.
func (l *Loader) Discover() ([]Candidate, error) {
	for _, p := range l.patterns {
		if _, err := filepath.Match(p.Glob, ""); err != nil {
			return nil, &DiscoveryError{Dir: l.dir, Pattern: p.Glob, Err: err}
		}
	}

	entries, err := os.ReadDir(l.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil // Not an error if the directory doesn't exist
		}
		return nil, &DiscoveryError{Dir: l.dir, Err: err}
	}

	seen := make(map[string]bool)
	var candidates []Candidate
	for _, p := range l.patterns {
		for _, entry := range entries {
			if entry.IsDir() || seen[entry.Name()] {
				continue
			}
			// Pattern validity was checked above
			if ok, _ := filepath.Match(p.Glob, entry.Name()); !ok {
				continue
			}
			seen[entry.Name()] = true
			candidates = append(candidates, Candidate{
				Path:   filepath.Join(l.dir, entry.Name()),
				Glob:   p.Glob,
				Opener: p.Opener,
			})
		}
	}

	return candidates, nil
}
