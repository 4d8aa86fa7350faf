package compat

import (
	"slices"

	"github.com/albertocavalcante/go-esx/edition"
)

// Table holds one Requirement per fixed edition, oldest edition first.
// A Table is immutable once built and safe for concurrent use.
type Table struct {
	editions []edition.Edition
	entries  map[edition.Edition]*Requirement
}

func newTable() *Table {
	return &Table{entries: make(map[edition.Edition]*Requirement)}
}

func (t *Table) add(e edition.Edition, r *Requirement) {
	if _, ok := t.entries[e]; !ok {
		t.editions = append(t.editions, e)
	}
	t.entries[e] = r
}

// Lookup returns the requirement for e.
func (t *Table) Lookup(e edition.Edition) (*Requirement, bool) {
	r, ok := t.entries[e]
	return r, ok
}

// Editions returns the editions in the table, in table order.
func (t *Table) Editions() []edition.Edition {
	return slices.Clone(t.editions)
}

// Len returns the number of editions.
func (t *Table) Len() int {
	return len(t.editions)
}
