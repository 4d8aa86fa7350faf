// Package syntax turns user-facing syntax descriptors into directives a
// bundler understands.
//
// A descriptor is either an edition name ("es2018", "ESNext"; matched
// case-insensitively on a leading "es") or a free-form browserslist query
// ("Chrome 100", "not dead"). A [Syntax] is an ordered list of descriptors.
//
// Two resolutions are offered, both pure:
//
//   - [Table.Targets] yields one bundler target token per descriptor.
//     Editions newer than es2022 collapse to "es2022", the newest the
//     bundler expresses; queries come back prefixed with "browserslist:".
//   - [Table.Browserslist] yields browserslist queries. An edition expands
//     to one "<engine> >= <version>" query per engine, es5 to a fixed list,
//     and es2024/esnext to "last 1 version" queries chosen by [Target].
//
// Output order always follows input order. Any edition-shaped descriptor
// that is not a known edition fails the whole call with an
// [*UnsupportedSyntaxError].
package syntax
