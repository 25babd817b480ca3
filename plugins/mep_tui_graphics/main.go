// Command mep_tui_graphics is the terminal graphics module.
//
// Build it as a shared object next to the host:
//
//	go build -buildmode=plugin -o libmep_tui_graphics.so ./plugins/mep_tui_graphics
//
// The module uses the configuration the host published, falling back to
// the default files when loaded by something else.
package main

import (
	"github.com/dshills/mep/internal/config"
	"github.com/dshills/mep/internal/plugin"
	"github.com/dshills/mep/internal/tuigraphics"
)

// MepGetPlugin is the module entry point.
func MepGetPlugin() plugin.Plugin {
	cfg, err := config.Current()
	if err != nil {
		panic(err)
	}

	g, err := tuigraphics.NewFromEnvironment(cfg.Display)
	if err != nil {
		panic(err)
	}
	return g
}

func main() {}
