package commands

import (
	"fmt"
	"sort"
	"strings"
)

// Registry maps command names to definitions. It is filled once at startup and only
// read afterwards, so lookups need no locking.
type Registry struct {
	defs map[string]Definition
}

func NewRegistry() *Registry {
	return &Registry{defs: make(map[string]Definition)}
}

// NewRegistryFrom registers defs in order and fails on the first rejected definition.
func NewRegistryFrom(defs []Definition) (*Registry, error) {
	r := NewRegistry()
	for _, d := range defs {
		if err := r.Register(d); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Register adds def. Names must be non-empty, contain no whitespace, and carry no
// leading slash. Registering a name twice is an error; the first definition stays.
func (r *Registry) Register(def Definition) error {
	name := def.Name
	if name == "" || strings.HasPrefix(name, "/") || strings.ContainsAny(name, " \t\r\n") {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	if _, exists := r.defs[name]; exists {
		return fmt.Errorf("%w: /%s", ErrDuplicateCommand, name)
	}
	r.defs[name] = def
	return nil
}

func (r *Registry) Lookup(name string) (Definition, error) {
	def, ok := r.defs[name]
	if !ok {
		return Definition{}, fmt.Errorf("%w: /%s", ErrNotFound, name)
	}
	return def, nil
}

// List returns all definitions sorted by name.
func (r *Registry) List() []Definition {
	out := make([]Definition, 0, len(r.defs))
	for _, d := range r.defs {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func (r *Registry) Names() []string {
	defs := r.List()
	names := make([]string, len(defs))
	for i, d := range defs {
		names[i] = d.Name
	}
	return names
}

func (r *Registry) Len() int {
	return len(r.defs)
}
