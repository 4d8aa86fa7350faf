package config

import (
	"fmt"

	"github.com/bazelbuild/buildtools/build"

	"github.com/albertocavalcante/go-esx/internal/buildutil"
)

// ParseStarlark parses Starlark config content made of lib(...) calls and at
// most one defaults(...) call. Other statements are rejected.
func ParseStarlark(path string, data []byte) (*Config, error) {
	f, err := build.ParseDefault(path, data)
	if err != nil {
		return nil, &Error{Path: path, Message: fmt.Sprintf("syntax error: %v", err)}
	}

	var (
		d           defaults
		sawDefaults bool
		raws        []rawLib
	)
	for _, stmt := range f.Stmt {
		if _, ok := stmt.(*build.CommentBlock); ok {
			continue
		}
		call, ok := stmt.(*build.CallExpr)
		if !ok {
			start, _ := stmt.Span()
			return nil, &Error{Path: path, Line: start.Line, Message: "expected lib(...) or defaults(...)"}
		}
		line := buildutil.Line(call)

		switch name := buildutil.FuncName(call); name {
		case "defaults":
			if sawDefaults {
				return nil, &Error{Path: path, Line: line, Message: "defaults() may only be called once"}
			}
			sawDefaults = true
			values, present, err := buildutil.StringOrList(call, "syntax")
			if err != nil {
				return nil, &Error{Path: path, Line: line, Message: err.Error()}
			}
			d = defaults{
				syntax:    values,
				hasSyntax: present,
				target:    buildutil.String(call, "target"),
			}

		case "lib":
			values, present, err := buildutil.StringOrList(call, "syntax")
			if err != nil {
				return nil, &Error{Path: path, Line: line, Message: err.Error()}
			}
			raws = append(raws, rawLib{
				id:        buildutil.String(call, "id"),
				format:    buildutil.String(call, "format"),
				syntax:    values,
				hasSyntax: present,
				target:    buildutil.String(call, "target"),
				line:      line,
			})

		default:
			return nil, &Error{Path: path, Line: line, Message: fmt.Sprintf("unknown function %q", name)}
		}
	}
	return assemble(path, d, raws)
}
