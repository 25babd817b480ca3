package config

import "sync/atomic"

var current atomic.Pointer[Config]

// SetCurrent publishes cfg as the configuration the process was started
// with. Modules loaded into the host read it through Current, so they
// see the same file and flags instead of resolving their own.
func SetCurrent(cfg *Config) {
	current.Store(cfg)
}

// Current returns the published configuration. When nothing has been
// published it loads the default files and environment.
func Current() (*Config, error) {
	if cfg := current.Load(); cfg != nil {
		return cfg, nil
	}
	return Load("")
}
