// Package catalog fetches Biome's rule catalog and normalizes it into a
// mapping table of documented ESLint equivalences.
package catalog

import (
	"net/url"
	"sort"
	"strings"
)

// Entry records one documented equivalence between an ESLint rule and a
// Biome rule.
type Entry struct {
	Source   string `json:"eslint"`
	Target   string `json:"biome"`
	Category string `json:"category,omitempty"`
}

// Table is the normalized rule-mapping catalog: equivalence entries keyed by
// ESLint rule id, plus Biome-exclusive rules with no ESLint counterpart.
// Exclusive rules are informational only and never matched against.
type Table struct {
	entries   map[string]Entry
	order     []string
	exclusive []string
	seen      map[string]struct{}
}

func NewTable() *Table {
	return &Table{
		entries: make(map[string]Entry),
		seen:    make(map[string]struct{}),
	}
}

// Add records an equivalence entry. The first entry for a source rule id
// wins; later duplicates (malformed input) are dropped.
func (t *Table) Add(e Entry) {
	if e.Source == "" || e.Target == "" {
		return
	}
	if _, ok := t.entries[e.Source]; ok {
		return
	}
	t.entries[e.Source] = e
	t.order = append(t.order, e.Source)
}

// AddExclusive records a Biome rule with no documented ESLint equivalent.
func (t *Table) AddExclusive(id string) {
	if id == "" {
		return
	}
	if _, ok := t.seen[id]; ok {
		return
	}
	t.seen[id] = struct{}{}
	t.exclusive = append(t.exclusive, id)
}

// Lookup returns the entry for an ESLint rule id. Equality is case-sensitive
// exact string equality.
func (t *Table) Lookup(id string) (Entry, bool) {
	e, ok := t.entries[id]
	return e, ok
}

// Entries returns all equivalence entries in insertion order.
func (t *Table) Entries() []Entry {
	out := make([]Entry, 0, len(t.order))
	for _, src := range t.order {
		out = append(out, t.entries[src])
	}
	return out
}

// Exclusive returns the Biome-exclusive rule ids in insertion order.
func (t *Table) Exclusive() []string {
	return append([]string(nil), t.exclusive...)
}

// Len returns the number of equivalence entries.
func (t *Table) Len() int {
	return len(t.entries)
}

// Merge folds other into t. First-match-wins applies across tables, so
// entries from earlier sources take precedence.
func (t *Table) Merge(other *Table) {
	if other == nil {
		return
	}
	for _, e := range other.Entries() {
		t.Add(e)
	}
	for _, id := range other.exclusive {
		t.AddExclusive(id)
	}
}

// Parser turns one fetched catalog document into a Table. The structured JSON
// catalog and the legacy markdown docs pages are interchangeable strategies
// behind this interface; downstream matching never sees the difference.
type Parser interface {
	Parse(data []byte) (*Table, error)
}

// ParserFor picks the parsing strategy for a source URL: a .json document is
// the structured catalog, anything else is treated as markdown docs.
func ParserFor(rawURL string) Parser {
	path := rawURL
	if u, err := url.Parse(rawURL); err == nil && u.Path != "" {
		path = u.Path
	}
	if strings.HasSuffix(strings.ToLower(strings.TrimSuffix(path, "/")), ".json") {
		return StructuredParser{}
	}
	return MarkdownParser{}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
