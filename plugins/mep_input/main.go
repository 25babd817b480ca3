// Command mep_input is the terminal input module.
//
// Build it as a shared object next to the host:
//
//	go build -buildmode=plugin -o libmep_input.so ./plugins/mep_input
package main

import (
	"github.com/dshills/mep/internal/input"
	"github.com/dshills/mep/internal/plugin"
)

// MepGetPlugin is the module entry point.
func MepGetPlugin() plugin.Plugin {
	return input.New()
}

func main() {}
