// Package config loads library build configuration: which output formats to
// produce and, for each, the syntax and deployment target to compile for.
//
// Two file formats are accepted, chosen by extension.
//
// YAML (.yaml, .yml):
//
//	syntax: es2019        # default for libs that do not set one
//	target: web
//	lib:
//	  - format: esm
//	    syntax: [es2021, "Chrome 100"]
//	  - format: cjs
//	    target: node
//
// Starlark (.star, .bzl, .bazel):
//
//	defaults(syntax = "es2019", target = "web")
//
//	lib(format = "esm", syntax = ["es2021", "Chrome 100"])
//	lib(format = "cjs", target = "node")
//
// In both, syntax is a string or a list of strings. A lib with no syntax
// and no default uses "esnext". A missing target stays unset, which the
// resolver treats as "any".
package config
