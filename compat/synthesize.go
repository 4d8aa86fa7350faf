package compat

import (
	"fmt"
	"sync"

	"github.com/Masterminds/semver/v3"

	"github.com/albertocavalcante/go-esx/edition"
)

// MissingFeatureError reports a feature that an edition requires but the
// coverage matrix does not describe.
type MissingFeatureError struct {
	Edition edition.Edition
	Feature string
}

func (e *MissingFeatureError) Error() string {
	return fmt.Sprintf("feature %s (required by %s) not found in coverage matrix", e.Feature, e.Edition)
}

// VersionError reports a coverage entry whose version is not a version.
type VersionError struct {
	Feature string
	Engine  string
	Version string
	Wrapped error
}

func (e *VersionError) Error() string {
	return fmt.Sprintf("feature %s: bad %s version %q: %v", e.Feature, e.Engine, e.Version, e.Wrapped)
}

func (e *VersionError) Unwrap() error {
	return e.Wrapped
}

// Synthesize computes the requirement of every cumulative set, visiting
// engines in the given order. A nil engines list means [DefaultEngines].
//
// An engine lacking a version for any feature of a set is absent from that
// set's requirement, whatever earlier features said about it.
func Synthesize(sets []edition.Cumulative, cov Coverage, engines []string) (*Table, error) {
	if engines == nil {
		engines = defaultEngines
	}

	table := newTable()
	for _, set := range sets {
		req, err := synthesizeOne(set, cov, engines)
		if err != nil {
			return nil, err
		}
		table.add(set.Edition, req)
	}
	return table, nil
}

func synthesizeOne(set edition.Cumulative, cov Coverage, engines []string) (*Requirement, error) {
	req := newRequirement()
	disqualified := make(map[string]bool)

	for _, feature := range set.Features {
		support, ok := cov[feature]
		if !ok {
			return nil, &MissingFeatureError{Edition: set.Edition, Feature: feature}
		}

		for _, engine := range engines {
			if disqualified[engine] {
				continue
			}
			raw, ok := support[engine]
			if !ok {
				req.remove(engine)
				disqualified[engine] = true
				continue
			}

			v, err := semver.NewVersion(raw)
			if err != nil {
				return nil, &VersionError{Feature: feature, Engine: engine, Version: raw, Wrapped: err}
			}
			if cur, recorded := req.parsed[engine]; recorded && !v.GreaterThan(cur) {
				continue
			}
			req.set(engine, raw, v)
		}
	}
	return req, nil
}

var defaultTable = sync.OnceValues(func() (*Table, error) {
	cov, err := DefaultCoverage()
	if err != nil {
		return nil, err
	}
	return Synthesize(edition.Default(), cov, defaultEngines)
})

// DefaultTable returns the table synthesized from the built-in feature lists
// and the embedded coverage matrix. It is computed once and shared.
func DefaultTable() (*Table, error) {
	return defaultTable()
}
