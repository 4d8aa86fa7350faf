// Package edition names ECMAScript editions and the language features each
// one introduces.
//
// # Edition Names
//
// An edition is written as a lowercase "es" prefix followed by a suffix:
//
//   - es5, es6: historical names; es6 is a synonym for es2015
//   - es2015 through es2022: fixed editions, each owning a feature list
//   - es2023, es2024, esnext: latest editions with no fixed feature list
//
// Any descriptor starting with "es" (case-insensitive) has the edition
// shape. Callers decide whether an edition-shaped descriptor that is not a
// known edition is an error; this package only classifies.
//
// # Cumulative Feature Sets
//
// [Accumulate] turns the per-edition feature lists into cumulative sets:
// the set for es2018 holds every feature introduced in es2015 through
// es2018. Sets only grow with edition recency.
//
// Feature names follow Babel's plugin naming (for example
// "transform-optional-chaining"), matching the keys of the coverage matrix
// in package compat.
package edition
