package config

import (
	"errors"
	"fmt"
)

// ErrUnsupportedFormat is returned for config files that are neither TOML
// nor YAML.
var ErrUnsupportedFormat = errors.New("unsupported config format")

// ValidationError reports an invalid setting.
type ValidationError struct {
	Key     string
	Value   any
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config %s=%v: %s", e.Key, e.Value, e.Message)
}
