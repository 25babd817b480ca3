package plugin

// EntrySymbol is the name every module exports its entry point under.
const EntrySymbol = "MepGetPlugin"

// EntryFunc is the shape of a module entry point.
type EntryFunc func() Plugin

// Module is a loaded unit of foreign code. It must stay open for as long as
// any handle produced by its entry point is in use.
type Module interface {
	// Path returns the file the module was loaded from.
	Path() string

	// Lookup resolves an exported entry point. It returns an error wrapping
	// ErrNoEntryPoint if the symbol is missing and ErrEntrySignature if it is
	// not an EntryFunc.
	Lookup(symbol string) (EntryFunc, error)

	// Close releases the module. Handles from it must not be used afterwards.
	Close() error
}

// Opener loads module files of one kind.
type Opener interface {
	Open(path string) (Module, error)
}

// OpenerFunc adapts a function to Opener.
type OpenerFunc func(path string) (Module, error)

// Open calls f(path).
func (f OpenerFunc) Open(path string) (Module, error) {
	return f(path)
}
