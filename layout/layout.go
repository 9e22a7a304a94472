// Package layout loads description trees from YAML files. It gives
// static layouts — fixtures, previews, tooling — the same rendering
// pipeline a scripting layer drives, by implementing loom.Source over
// a file on disk.
package layout

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/loomui/loom"
)

// nodeSpec is the YAML shape of a description node.
type nodeSpec struct {
	Kind     string            `yaml:"kind"`
	Class    string            `yaml:"class"`
	Text     string            `yaml:"text"`
	Value    *int              `yaml:"value"`
	Min      *int              `yaml:"min"`
	Max      *int              `yaml:"max"`
	Children []nodeSpec        `yaml:"children"`
	Handlers map[string]string `yaml:"handlers"`
}

type document struct {
	Root *nodeSpec `yaml:"root"`
}

// Funcs maps handler names referenced by a layout file to callbacks.
type Funcs map[string]loom.Callback

// Loader converts layout files into description trees.
type Loader struct {
	// Funcs resolves handler names to callbacks.
	Funcs Funcs

	// AllowUnbound binds handler names missing from Funcs to no-op
	// callbacks instead of failing the load. Meant for validation
	// tooling, not for applications.
	AllowUnbound bool
}

// Load reads a layout file and resolves its handler references.
// Unknown node kinds are kept as invalid nodes so the builder can
// report and skip them; unknown event names and unresolved handler
// names are load errors, since a static file has no way to recover.
func (l Loader) Load(path string) (*loom.Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read layout: %w", err)
	}
	return l.Parse(data)
}

// Parse decodes YAML layout bytes. See Load.
func (l Loader) Parse(data []byte) (*loom.Node, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse layout: %w", err)
	}
	if doc.Root == nil {
		return nil, fmt.Errorf("layout has no root node")
	}
	return l.convert(doc.Root)
}

// Load reads a layout file with a plain handler table.
func Load(path string, funcs Funcs) (*loom.Node, error) {
	return Loader{Funcs: funcs}.Load(path)
}

var noop = loom.CallbackFunc(func() error { return nil })

func (l Loader) convert(spec *nodeSpec) (*loom.Node, error) {
	n := &loom.Node{
		Kind:  loom.ParseKind(spec.Kind),
		Class: spec.Class,
		Text:  spec.Text,
		Value: spec.Value,
		Min:   spec.Min,
		Max:   spec.Max,
	}

	for event, name := range spec.Handlers {
		kind, ok := loom.ParseEventKind(event)
		if !ok {
			return nil, fmt.Errorf("node %q: unknown event %q", spec.Kind, event)
		}
		fn, ok := l.Funcs[name]
		if !ok {
			if !l.AllowUnbound {
				return nil, fmt.Errorf("node %q: no callback registered for %q", spec.Kind, name)
			}
			fn = noop
		}
		if n.Handlers == nil {
			n.Handlers = make(map[loom.EventKind]loom.Callback)
		}
		n.Handlers[kind] = fn
	}

	for i := range spec.Children {
		child, err := l.convert(&spec.Children[i])
		if err != nil {
			return nil, err
		}
		n.Children = append(n.Children, child)
	}
	return n, nil
}

// Source produces a description tree from a layout file, re-reading it
// on every Produce so edits show up on the next re-render.
type Source struct {
	path   string
	loader Loader
}

var _ loom.Source = (*Source)(nil)

// NewSource creates a file-backed source.
func NewSource(path string, funcs Funcs) *Source {
	return &Source{path: path, loader: Loader{Funcs: funcs}}
}

// Produce loads the layout file.
func (s *Source) Produce() (*loom.Node, error) {
	return s.loader.Load(s.path)
}

// Drain is a no-op; a file has no deferred work.
func (s *Source) Drain() error { return nil }
