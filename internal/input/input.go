// Package input is the terminal input backend. It only identifies itself;
// it is the extension point for future input capture.
package input

import (
	"github.com/dshills/mep/internal/plugin"
	"github.com/dshills/mep/internal/version"
)

// Name is the name the backend reports.
const Name = "Terminal Input"

// Input implements plugin.InputPlugin.
type Input struct{}

var _ plugin.InputPlugin = (*Input)(nil)

// New creates an input backend.
func New() *Input {
	return &Input{}
}

// Init is a no-op.
func (*Input) Init() error {
	return nil
}

// Info reports the backend's identity.
func (*Input) Info() plugin.PluginInfo {
	return plugin.PluginInfo{
		Name:    Name,
		Version: version.Version,
		Type:    plugin.TypeInput,
	}
}
