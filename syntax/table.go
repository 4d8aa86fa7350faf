package syntax

import (
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/albertocavalcante/go-esx/compat"
	"github.com/albertocavalcante/go-esx/edition"
)

// Entry is how one edition resolves to browserslist queries. It is one of
// [LiteralEntry], [RequirementEntry] or [LatestEntry].
type Entry interface {
	isEntry()
}

// LiteralEntry is a fixed query list emitted verbatim.
type LiteralEntry struct {
	Queries []string
}

// RequirementEntry emits one "<engine> >= <version>" query per engine.
type RequirementEntry struct {
	Requirement *compat.Requirement
}

// LatestEntry is resolved against the deployment target at call time.
type LatestEntry struct {
	Resolve func(Target) []string
}

func (LiteralEntry) isEntry()     {}
func (RequirementEntry) isEntry() {}
func (LatestEntry) isEntry()      {}

// es5Minimums is the es5 record, which is not derived from features.
// Engine names keep the casing downstream resolvers expect.
var es5Minimums = []struct {
	engine  string
	version string
}{
	{"Chrome", "5.0.0"},
	{"Edge", "12.0.0"},
	{"Firefox", "2.0.0"},
	{"ie", "9.0.0"},
	{"iOS", "6.0.0"},
	{"Node", "0.4.0"},
	{"Opera", "10.10.0"},
	{"Safari", "3.1.0"},
}

func es5Queries() []string {
	queries := make([]string, 0, len(es5Minimums))
	for _, m := range es5Minimums {
		queries = append(queries, m.engine+" >= "+m.version)
	}
	return queries
}

// Table maps every known edition to its [Entry]. A Table is immutable and
// safe for concurrent use.
type Table struct {
	entries map[edition.Edition]Entry
	logger  *slog.Logger
}

// NewTable builds the edition table around synthesized requirements:
//
//   - es5 is a literal list
//   - es6 aliases es2015
//   - es2015 through es2022 come from reqs
//   - es2023 aliases es2022
//   - es2024 and esnext resolve through [LatestQueries]
//
// reqs must contain es2015 and es2022 and nothing outside edition.Fixed.
func NewTable(reqs *compat.Table) (*Table, error) {
	entries := make(map[edition.Edition]Entry, len(edition.Known))
	fixed := edition.Fixed()
	for _, e := range reqs.Editions() {
		if !slices.Contains(fixed, e) {
			return nil, fmt.Errorf("requirement table has an entry for %s, which has no fixed feature list", e)
		}
		req, _ := reqs.Lookup(e)
		entries[e] = RequirementEntry{Requirement: req}
	}
	entries[edition.ES5] = LiteralEntry{Queries: es5Queries()}

	for alias, of := range map[edition.Edition]edition.Edition{
		edition.ES6:    edition.ES2015,
		edition.ES2023: edition.ES2022,
	} {
		entry, ok := entries[of]
		if !ok {
			return nil, fmt.Errorf("requirement table has no %s entry for %s to alias", of, alias)
		}
		entries[alias] = entry
	}

	latest := LatestEntry{Resolve: LatestQueries}
	entries[edition.ES2024] = latest
	entries[edition.ESNext] = latest

	return &Table{entries: entries}, nil
}

var defaultTable = sync.OnceValues(func() (*Table, error) {
	reqs, err := compat.DefaultTable()
	if err != nil {
		return nil, fmt.Errorf("synthesize edition table: %w", err)
	}
	return NewTable(reqs)
})

// DefaultTable returns the table built from compat.DefaultTable.
func DefaultTable() (*Table, error) {
	return defaultTable()
}

// WithLogger returns a copy of t that logs each resolved descriptor at
// debug level.
func (t *Table) WithLogger(l *slog.Logger) *Table {
	return &Table{entries: t.entries, logger: l}
}

// Entry returns the entry for e.
func (t *Table) Entry(e edition.Edition) (Entry, bool) {
	entry, ok := t.entries[e]
	return entry, ok
}

func (t *Table) log() *slog.Logger {
	if t.logger != nil {
		return t.logger
	}
	return slog.New(slog.DiscardHandler)
}
