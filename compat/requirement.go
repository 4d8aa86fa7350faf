package compat

import (
	"slices"

	"github.com/Masterminds/semver/v3"
)

// Requirement maps engines to the minimum version needed to run a whole
// cumulative feature set. Engines keep the order they were first recorded in.
type Requirement struct {
	engines  []string
	versions map[string]string
	parsed   map[string]*semver.Version
}

func newRequirement() *Requirement {
	return &Requirement{
		versions: make(map[string]string),
		parsed:   make(map[string]*semver.Version),
	}
}

// Engines returns the surviving engines in insertion order.
func (r *Requirement) Engines() []string {
	return slices.Clone(r.engines)
}

// Version returns the minimum version recorded for engine, as written in
// the coverage matrix.
func (r *Requirement) Version(engine string) (string, bool) {
	v, ok := r.versions[engine]
	return v, ok
}

// Len returns the number of engines.
func (r *Requirement) Len() int {
	return len(r.engines)
}

// Queries renders one "<engine> >= <version>" query per engine, in order.
func (r *Requirement) Queries() []string {
	queries := make([]string, 0, len(r.engines))
	for _, engine := range r.engines {
		queries = append(queries, engine+" >= "+r.versions[engine])
	}
	return queries
}

// set records v for engine, appending engine if it is new.
func (r *Requirement) set(engine, raw string, v *semver.Version) {
	if _, ok := r.versions[engine]; !ok {
		r.engines = append(r.engines, engine)
	}
	r.versions[engine] = raw
	r.parsed[engine] = v
}

func (r *Requirement) remove(engine string) {
	if _, ok := r.versions[engine]; !ok {
		return
	}
	delete(r.versions, engine)
	delete(r.parsed, engine)
	r.engines = slices.DeleteFunc(r.engines, func(e string) bool { return e == engine })
}
