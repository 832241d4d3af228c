// Package templates holds the instruction templates that slash commands expand into.
//
// Each template set is a versioned artifact: the exact wording is what the downstream
// agent acts on, so sets are never merged and a build selects exactly one by version.
package templates

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ArgToken marks every insertion point of the raw command argument in a template body.
const ArgToken = "{{args}}"

var (
	ErrUnknownTemplate = errors.New("unknown template")
	ErrUnknownVersion  = errors.New("unknown template version")
)

// Template renders instruction text from the raw command argument.
type Template func(arg string) string

// Entry is one command's template together with the metadata needed to register it.
type Entry struct {
	Name        string
	Description string
	// Placeholder is the usage hint for the argument, e.g. "<description>".
	// Empty means the command ignores its argument.
	Placeholder string
	// Body is the template text with ArgToken at each insertion point.
	Body   string
	Render Template
}

// TakesArgument reports whether the command requires a non-empty argument.
func (e Entry) TakesArgument() bool {
	return e.Placeholder != ""
}

// Catalog is an immutable, versioned set of templates keyed by command name.
type Catalog struct {
	version string
	entries map[string]Entry
}

func newCatalog(version string, entries []Entry) *Catalog {
	c := &Catalog{
		version: version,
		entries: make(map[string]Entry, len(entries)),
	}
	for _, e := range entries {
		if e.Render == nil {
			e.Render = literal(e.Body)
		}
		c.entries[e.Name] = e
	}
	return c
}

// literal substitutes arg verbatim at every ArgToken in body.
func literal(body string) Template {
	return func(arg string) string {
		return strings.ReplaceAll(body, ArgToken, arg)
	}
}

func (c *Catalog) Version() string {
	return c.version
}

// Lookup returns the entry registered under name.
func (c *Catalog) Lookup(name string) (Entry, bool) {
	e, ok := c.entries[name]
	return e, ok
}

// Render expands the named template with the raw, untrimmed argument.
func (c *Catalog) Render(name, arg string) (string, error) {
	e, ok := c.entries[name]
	if !ok {
		return "", fmt.Errorf("%w: %s (templates %s)", ErrUnknownTemplate, name, c.version)
	}
	return e.Render(arg), nil
}

// Entries returns all entries sorted by name.
func (c *Catalog) Entries() []Entry {
	out := make([]Entry, 0, len(c.entries))
	for _, e := range c.entries {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

const (
	V1 = "v1"
	V2 = "v2"

	// DefaultVersion is the canonical template set.
	DefaultVersion = V2
)

var builders = map[string]func() *Catalog{
	V1: v1Catalog,
	V2: v2Catalog,
}

// ForVersion builds the catalog for a template set version.
// An empty version selects DefaultVersion.
func ForVersion(version string) (*Catalog, error) {
	if version == "" {
		version = DefaultVersion
	}
	build, ok := builders[version]
	if !ok {
		return nil, fmt.Errorf("%w: %q (known: %s)", ErrUnknownVersion, version, strings.Join(Versions(), ", "))
	}
	return build(), nil
}

// Default returns the canonical catalog.
func Default() *Catalog {
	return v2Catalog()
}

// Versions lists the known template set versions.
func Versions() []string {
	out := make([]string, 0, len(builders))
	for v := range builders {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
