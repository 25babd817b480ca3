package plugin

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/dshills/mep/internal/renderer"
)

// fakePlugin is a minimal Plugin double.
type fakePlugin struct {
	info     PluginInfo
	initErr  error
	inits    int
	shutdown *[]string
}

func (p *fakePlugin) Init() error {
	p.inits++
	return p.initErr
}

func (p *fakePlugin) Info() PluginInfo { return p.info }

func (p *fakePlugin) Shutdown() error {
	if p.shutdown != nil {
		*p.shutdown = append(*p.shutdown, "shutdown:"+p.info.Name)
	}
	return nil
}

// fakeGraphics adds the GraphicPlugin methods.
type fakeGraphics struct {
	fakePlugin
	commits int
}

func (g *fakeGraphics) CommitBuffer() error             { g.commits++; return nil }
func (g *fakeGraphics) DrawLine(x1, y1, x2, y2 int)     {}
func (g *fakeGraphics) DrawRect(x, y, width, height int) {}
func (g *fakeGraphics) FillRect(x, y, width, height int) {}
func (g *fakeGraphics) SetStyle(style *renderer.Style)   {}

// fakeModule resolves entry points from a map.
type fakeModule struct {
	path    string
	entries map[string]EntryFunc
	closed  bool
	events  *[]string
}

func (m *fakeModule) Path() string { return m.path }

func (m *fakeModule) Lookup(symbol string) (EntryFunc, error) {
	entry, ok := m.entries[symbol]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNoEntryPoint, symbol)
	}
	return entry, nil
}

func (m *fakeModule) Close() error {
	m.closed = true
	if m.events != nil {
		*m.events = append(*m.events, "close:"+filepath.Base(m.path))
	}
	return nil
}

// fakeOpener builds modules from per-file behaviours keyed by base name.
type fakeOpener struct {
	entries map[string]EntryFunc
	openErr map[string]error
	opened  []*fakeModule
	events  *[]string
}

func newFakeOpener() *fakeOpener {
	return &fakeOpener{
		entries: make(map[string]EntryFunc),
		openErr: make(map[string]error),
	}
}

func (o *fakeOpener) Open(path string) (Module, error) {
	base := filepath.Base(path)
	if err, ok := o.openErr[base]; ok {
		return nil, err
	}
	mod := &fakeModule{path: path, entries: make(map[string]EntryFunc), events: o.events}
	if entry, ok := o.entries[base]; ok {
		mod.entries[EntrySymbol] = entry
	}
	o.opened = append(o.opened, mod)
	return mod, nil
}

func graphicsEntry(name string) EntryFunc {
	return func() Plugin {
		return &fakeGraphics{fakePlugin: fakePlugin{info: PluginInfo{Name: name, Version: "1.0.0", Type: TypeGraphics}}}
	}
}

func inputEntry(name string) EntryFunc {
	return func() Plugin {
		return &fakePlugin{info: PluginInfo{Name: name, Version: "0.1.0", Type: TypeInput}}
	}
}

var errNotAModule = errors.New("not a valid dynamic module")

// touch creates empty files in dir.
func touch(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, name := range names {
		if err := os.WriteFile(filepath.Join(dir, name), nil, 0644); err != nil {
			t.Fatal(err)
		}
	}
}
