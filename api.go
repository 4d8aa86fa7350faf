// Package goesx resolves ECMAScript syntax descriptors into what a bundler
// and a browserslist-driven transpiler need.
//
// A descriptor is either an edition name ("es2018", "ES6", "esnext") or a
// raw browserslist query ("Chrome 100"). Editions resolve to the engine
// versions that natively run every feature the edition introduced, derived
// from a feature coverage matrix at first use.
//
// # Quick Start
//
//	// Bundler target tokens: ["es2018", "browserslist:Chrome 100"]
//	tokens, err := goesx.ResolveTargets(syntax.Syntax{"es2018", "Chrome 100"})
//
//	// Browserslist queries for a web build
//	queries, err := goesx.ResolveBrowserslist(syntax.Syntax{"esnext"},
//	    goesx.WithTarget(syntax.TargetWeb))
//
// # Library Configs
//
// A config file (see package config) lists library outputs; ComposeConfig
// resolves each of them:
//
//	cfg, err := config.Load("LIB.bazel")
//	libs, err := goesx.ComposeConfig(cfg)
//
// # Thread Safety
//
// All public types in this package are safe for concurrent use.
package goesx

import (
	"fmt"
	"log/slog"

	"github.com/albertocavalcante/go-esx/config"
	"github.com/albertocavalcante/go-esx/syntax"
)

// Resolution holds both renderings of one syntax.
type Resolution struct {
	Syntax syntax.Syntax
	Target syntax.Target

	// Targets are bundler target tokens, one per descriptor.
	Targets []string

	// Browserslist is the flattened query list.
	Browserslist []string
}

// LibResolution is the resolution of one configured library output.
type LibResolution struct {
	Lib config.Lib
	Resolution
}

// Resolver resolves syntax descriptors against one requirement table.
type Resolver struct {
	config *resolverConfig
	table  *syntax.Table
}

// New creates a Resolver. The requirement table is loaded or synthesized
// here, so a bad table source fails at construction.
func New(opts ...Option) (*Resolver, error) {
	cfg, err := newResolverConfig(opts...)
	if err != nil {
		return nil, err
	}
	table, err := cfg.syntaxTable()
	if err != nil {
		return nil, fmt.Errorf("load requirement table: %w", err)
	}
	return &Resolver{config: cfg, table: table}, nil
}

// Targets resolves s to bundler target tokens.
func (r *Resolver) Targets(s syntax.Syntax) ([]string, error) {
	return r.table.Targets(s)
}

// Browserslist resolves s to browserslist queries for the configured
// target.
func (r *Resolver) Browserslist(s syntax.Syntax) ([]string, error) {
	return r.table.Browserslist(s, r.config.target)
}

// Compose resolves s both ways for the configured target.
func (r *Resolver) Compose(s syntax.Syntax) (*Resolution, error) {
	return r.compose(s, r.config.target)
}

func (r *Resolver) compose(s syntax.Syntax, target syntax.Target) (*Resolution, error) {
	targets, err := r.table.Targets(s)
	if err != nil {
		return nil, err
	}
	queries, err := r.table.Browserslist(s, target)
	if err != nil {
		return nil, err
	}
	return &Resolution{
		Syntax:       s,
		Target:       target,
		Targets:      targets,
		Browserslist: queries,
	}, nil
}

// ComposeConfig resolves every lib of cfg, in order. A lib's own target
// takes precedence over WithTarget.
func (r *Resolver) ComposeConfig(cfg *config.Config) ([]LibResolution, error) {
	results := make([]LibResolution, 0, len(cfg.Libs))
	for _, lib := range cfg.Libs {
		target := lib.Target
		if target == syntax.TargetAny {
			target = r.config.target
		}
		res, err := r.compose(lib.Syntax, target)
		if err != nil {
			return nil, fmt.Errorf("lib %s: %w", lib.ID, err)
		}
		r.config.log().Debug("composed lib",
			slog.String("id", lib.ID),
			slog.String("format", string(lib.Format)),
			slog.Any("targets", res.Targets))
		results = append(results, LibResolution{Lib: lib, Resolution: *res})
	}
	return results, nil
}

// ResolveTargets resolves s to bundler target tokens.
func ResolveTargets(s syntax.Syntax, opts ...Option) ([]string, error) {
	r, err := New(opts...)
	if err != nil {
		return nil, err
	}
	return r.Targets(s)
}

// ResolveBrowserslist resolves s to browserslist queries.
func ResolveBrowserslist(s syntax.Syntax, opts ...Option) ([]string, error) {
	r, err := New(opts...)
	if err != nil {
		return nil, err
	}
	return r.Browserslist(s)
}

// Compose resolves s to both target tokens and browserslist queries.
func Compose(s syntax.Syntax, opts ...Option) (*Resolution, error) {
	r, err := New(opts...)
	if err != nil {
		return nil, err
	}
	return r.Compose(s)
}

// ComposeConfig resolves every lib of a loaded config.
func ComposeConfig(cfg *config.Config, opts ...Option) ([]LibResolution, error) {
	r, err := New(opts...)
	if err != nil {
		return nil, err
	}
	return r.ComposeConfig(cfg)
}
