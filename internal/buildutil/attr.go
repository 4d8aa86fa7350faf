// Package buildutil extracts keyword arguments from Starlark call
// expressions parsed by buildtools.
//
// The config loader reads lib(...) and defaults(...) calls with it.
package buildutil

import (
	"fmt"

	"github.com/bazelbuild/buildtools/build"
)

// Arg returns the value of the keyword argument name, or nil if the call
// does not pass it.
func Arg(call *build.CallExpr, name string) build.Expr {
	for _, arg := range call.List {
		assign, ok := arg.(*build.AssignExpr)
		if !ok {
			continue
		}
		lhs, ok := assign.LHS.(*build.Ident)
		if !ok || lhs.Name != name {
			continue
		}
		return assign.RHS
	}
	return nil
}

// String extracts a string attribute from a function call by name.
// Returns empty string if the attribute is not found or not a string.
func String(call *build.CallExpr, name string) string {
	if str, ok := Arg(call, name).(*build.StringExpr); ok {
		return str.Value
	}
	return ""
}

// StringOrList extracts an attribute that may be a single string or a list
// of strings. The bool result reports whether the attribute was present.
// A present attribute of any other shape is an error.
func StringOrList(call *build.CallExpr, name string) ([]string, bool, error) {
	expr := Arg(call, name)
	switch e := expr.(type) {
	case nil:
		return nil, false, nil
	case *build.StringExpr:
		return []string{e.Value}, true, nil
	case *build.ListExpr:
		result := make([]string, 0, len(e.List))
		for i, elem := range e.List {
			str, ok := elem.(*build.StringExpr)
			if !ok {
				return nil, true, fmt.Errorf("%s[%d]: want string, got %s", name, i, build.FormatString(elem))
			}
			result = append(result, str.Value)
		}
		return result, true, nil
	default:
		return nil, true, fmt.Errorf("%s: want string or list of strings, got %s", name, build.FormatString(expr))
	}
}

// Line returns the 1-based line a call starts on.
func Line(call *build.CallExpr) int {
	start, _ := call.Span()
	return start.Line
}

// FuncName returns the function name from a CallExpr.
// Returns empty string if the call is not a simple function call
// (e.g., method calls like foo.bar()).
func FuncName(call *build.CallExpr) string {
	if ident, ok := call.X.(*build.Ident); ok {
		return ident.Name
	}
	return ""
}

// IsFuncCall returns true if the call is for the specified function name.
func IsFuncCall(call *build.CallExpr, name string) bool {
	return FuncName(call) == name
}
