// Package plugin discovers, loads and retains the backend modules the host
// drives.
//
// A module is a file in the plugin directory matching one of the loader's
// patterns (libmep*.so on Linux, mep*.dll on Windows, mep*.lua for script
// modules). Each module exports one entry point, EntrySymbol, a no-argument
// function returning a Plugin. The handle it returns is tagged with a
// PluginType in its PluginInfo so the host can pick handles by capability:
//
//	m := plugin.NewManager(plugin.ManagerConfig{
//	    Dir:      ".",
//	    Patterns: []plugin.Pattern{{Glob: "libmep*.so", Opener: native.NewOpener()}},
//	})
//	if err := m.DiscoverAndLoad(); err != nil {
//	    // Discovery and load failures are fatal for the host.
//	}
//	defer m.Close()
//
//	for _, g := range m.Graphics() {
//	    g.FillRect(0, 0, 10, 4)
//	    g.CommitBuffer()
//	}
//
// # Lifetime
//
// The code behind a handle lives in its module. The manager keeps every module
// it opened until Close, and Close releases handles (calling Shutdown where
// implemented) strictly before closing the modules that produced them, in
// reverse load order. Modules are never closed while the manager is open.
//
// # Failure policy
//
// Discovery and load failures stop the pass and are returned as
// *DiscoveryError or *LoadError; IsFatal identifies them. A module that fails
// at any stage is closed again and leaves no record behind. Finding no
// modules is not an error.
package plugin
