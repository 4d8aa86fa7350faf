// Package compat derives, per ECMAScript edition, the minimum engine
// versions that run every syntax feature of that edition natively.
//
// # Inputs
//
// The feature coverage matrix maps a feature name to the minimum version of
// each engine supporting it. An engine missing from a feature's record does
// not support that feature at all. The built-in matrix is embedded from
// data/plugins.json and validated against data/coverage.schema.json; callers
// may supply their own via [ParseCoverage] or [LoadCoverage].
//
// # Synthesis
//
// [Synthesize] walks the cumulative feature sets produced by
// edition.Accumulate. For each edition it starts from an empty requirement
// and, feature by feature and engine by engine:
//
//   - keeps the higher of the recorded and the feature's version
//   - records the feature's version if nothing is recorded yet
//   - drops the engine for good if the feature has no version for it
//
// Engines are visited in a fixed order ([DefaultEngines]), so a
// requirement's engine order is the order in which engines were first
// recorded. Downstream consumers snapshot that order.
//
// Versions are compared as semantic versions (via Masterminds/semver), so
// "16.11" ranks above "16.9".
//
// # Artifacts
//
// A [Table] marshals to insertion-ordered JSON and can be read back with
// [ParseTable], so the table can be generated once and checked in.
package compat
