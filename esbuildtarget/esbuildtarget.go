// Package esbuildtarget maps resolved target tokens and browserslist
// queries onto esbuild build options.
//
// Edition tokens become [esbuild.Target]. Queries of the form
// "<engine> >= <version>" or "<engine> <version>" become [esbuild.Engine]
// entries when esbuild knows the engine; everything else is reported in
// [Options.Unmapped] for a browserslist-aware tool to handle.
package esbuildtarget

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
	esbuild "github.com/evanw/esbuild/pkg/api"

	"github.com/albertocavalcante/go-esx/syntax"
)

// editionTargets lists the esbuild targets oldest first. es6 shares the
// es2015 rank.
var editionTargets = []struct {
	token  string
	target esbuild.Target
}{
	{"es5", esbuild.ES5},
	{"es6", esbuild.ES2015},
	{"es2015", esbuild.ES2015},
	{"es2016", esbuild.ES2016},
	{"es2017", esbuild.ES2017},
	{"es2018", esbuild.ES2018},
	{"es2019", esbuild.ES2019},
	{"es2020", esbuild.ES2020},
	{"es2021", esbuild.ES2021},
	{"es2022", esbuild.ES2022},
}

var validEngines = map[string]esbuild.EngineName{
	"chrome":  esbuild.EngineChrome,
	"deno":    esbuild.EngineDeno,
	"edge":    esbuild.EngineEdge,
	"firefox": esbuild.EngineFirefox,
	"ie":      esbuild.EngineIE,
	"ios":     esbuild.EngineIOS,
	"ios_saf": esbuild.EngineIOS,
	"node":    esbuild.EngineNode,
	"opera":   esbuild.EngineOpera,
	"safari":  esbuild.EngineSafari,
}

var engineNames = map[esbuild.EngineName]string{
	esbuild.EngineChrome:  "chrome",
	esbuild.EngineDeno:    "deno",
	esbuild.EngineEdge:    "edge",
	esbuild.EngineFirefox: "firefox",
	esbuild.EngineIE:      "ie",
	esbuild.EngineIOS:     "ios",
	esbuild.EngineNode:    "node",
	esbuild.EngineOpera:   "opera",
	esbuild.EngineSafari:  "safari",
}

// Options is the esbuild side of a resolution.
type Options struct {
	// Target is the oldest edition among the tokens, or
	// esbuild.DefaultTarget when there were none.
	Target esbuild.Target

	// Engines holds one entry per engine, at the lowest version any query
	// named, in first-seen order.
	Engines []esbuild.Engine

	// Unmapped are the queries esbuild cannot express.
	Unmapped []string
}

// FromTokens converts bundler target tokens. Tokens prefixed with
// syntax.BrowserslistPrefix are parsed as queries.
func FromTokens(tokens []string) (*Options, error) {
	opts := &Options{}
	rank := -1
	var queries []string

	for _, token := range tokens {
		if q, ok := strings.CutPrefix(token, syntax.BrowserslistPrefix); ok {
			queries = append(queries, q)
			continue
		}
		i := editionRank(token)
		if i < 0 {
			return nil, fmt.Errorf("target token %q has no esbuild equivalent", token)
		}
		if rank < 0 || i < rank {
			rank = i
			opts.Target = editionTargets[i].target
		}
	}

	q := FromQueries(queries)
	opts.Engines = q.Engines
	opts.Unmapped = q.Unmapped
	return opts, nil
}

func editionRank(token string) int {
	token = strings.ToLower(token)
	for i, et := range editionTargets {
		if et.token == token {
			return i
		}
	}
	return -1
}

// FromQueries converts browserslist queries into esbuild engines.
func FromQueries(queries []string) *Options {
	opts := &Options{}
	lowest := make(map[esbuild.EngineName]*semver.Version)
	index := make(map[esbuild.EngineName]int)

	for _, q := range queries {
		name, raw, v, ok := parseQuery(q)
		if !ok {
			opts.Unmapped = append(opts.Unmapped, q)
			continue
		}
		i, seen := index[name]
		if !seen {
			index[name] = len(opts.Engines)
			lowest[name] = v
			opts.Engines = append(opts.Engines, esbuild.Engine{Name: name, Version: raw})
			continue
		}
		if v.LessThan(lowest[name]) {
			lowest[name] = v
			opts.Engines[i].Version = raw
		}
	}
	return opts
}

// parseQuery accepts "<engine> >= <version>" and "<engine> <version>".
func parseQuery(q string) (esbuild.EngineName, string, *semver.Version, bool) {
	fields := strings.Fields(q)
	switch {
	case len(fields) == 3 && fields[1] == ">=":
		fields = []string{fields[0], fields[2]}
	case len(fields) != 2:
		return 0, "", nil, false
	}

	name, ok := validEngines[strings.ToLower(fields[0])]
	if !ok {
		return 0, "", nil, false
	}
	v, err := semver.NewVersion(fields[1])
	if err != nil {
		return 0, "", nil, false
	}
	return name, fields[1], v, true
}

// Apply sets the target and engines on build options. Fields the
// resolution left empty are not touched.
func (o *Options) Apply(b *esbuild.BuildOptions) {
	if o.Target != esbuild.DefaultTarget {
		b.Target = o.Target
	}
	if len(o.Engines) > 0 {
		b.Engines = append(b.Engines, o.Engines...)
	}
}

// ApplyTransform is Apply for transform options.
func (o *Options) ApplyTransform(t *esbuild.TransformOptions) {
	if o.Target != esbuild.DefaultTarget {
		t.Target = o.Target
	}
	if len(o.Engines) > 0 {
		t.Engines = append(t.Engines, o.Engines...)
	}
}

// Flag renders o as the value of esbuild's --target flag, for example
// "es2020,chrome100,node16.9". Unmapped queries are left out.
func (o *Options) Flag() string {
	var parts []string
	if o.Target != esbuild.DefaultTarget {
		for _, et := range editionTargets {
			if et.target == o.Target && et.token != "es6" {
				parts = append(parts, et.token)
				break
			}
		}
	}
	for _, e := range o.Engines {
		parts = append(parts, engineNames[e.Name]+e.Version)
	}
	return strings.Join(parts, ",")
}
