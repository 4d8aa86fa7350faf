package edition

import (
	"maps"
	"slices"
)

// featuresAdded lists the syntax features each fixed edition introduces.
// Names are Babel plugin names so they can be looked up in the coverage
// matrix directly.
var featuresAdded = map[Edition][]string{
	ES2022: {
		"transform-class-static-block",
		"transform-class-properties",
		"transform-private-property-in-object",
	},
	ES2021: {"proposal-logical-assignment-operators"},
	ES2020: {
		"transform-export-namespace-from",
		"transform-nullish-coalescing-operator",
		"transform-optional-chaining",
	},
	ES2019: {"transform-optional-catch-binding"},
	ES2018: {"transform-object-rest-spread"},
	ES2017: {"transform-async-to-generator"},
	ES2016: {"transform-exponentiation-operator"},
	ES2015: {
		"transform-block-scoped-functions",
		"transform-template-literals",
		"transform-classes",
		"transform-spread",
		"transform-object-super",
		"transform-function-name",
		"transform-shorthand-properties",
		"transform-parameters",
		"transform-arrow-functions",
		"transform-duplicate-keys",
		"transform-sticky-regex",
		"transform-typeof-symbol",
		"transform-for-of",
		"transform-computed-properties",
		"transform-destructuring",
		"transform-block-scoping",
		"transform-regenerator",
		"transform-new-target",
	},
}

// FeaturesAdded returns a copy of the edition -> introduced features map.
func FeaturesAdded() map[Edition][]string {
	out := make(map[Edition][]string, len(featuresAdded))
	for e, features := range featuresAdded {
		out[e] = append([]string(nil), features...)
	}
	return out
}

// Fixed returns the editions that own a feature list, oldest first.
func Fixed() []Edition {
	editions := slices.Collect(maps.Keys(featuresAdded))
	// Every key above is year-named, so Sort cannot fail.
	_ = Sort(editions)
	return editions
}
