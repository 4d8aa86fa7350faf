package buildutil

import (
	"strings"
	"testing"

	"github.com/bazelbuild/buildtools/build"
	"github.com/google/go-cmp/cmp"
)

func parseCall(t *testing.T, content string) *build.CallExpr {
	t.Helper()
	f, err := build.ParseBzl("test.bzl", []byte(content))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if len(f.Stmt) == 0 {
		t.Fatal("no statements parsed")
	}
	call, ok := f.Stmt[0].(*build.CallExpr)
	if !ok {
		t.Fatalf("expected CallExpr, got %T", f.Stmt[0])
	}
	return call
}

func TestString(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		attrName string
		want     string
	}{
		{
			name:     "named string attribute",
			input:    `lib(format = "esm")`,
			attrName: "format",
			want:     "esm",
		},
		{
			name:     "missing attribute",
			input:    `lib(other = "value")`,
			attrName: "format",
			want:     "",
		},
		{
			name:     "non-string attribute",
			input:    `lib(format = 123)`,
			attrName: "format",
			want:     "",
		},
		{
			name:     "positional argument ignored",
			input:    `lib("esm")`,
			attrName: "format",
			want:     "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			call := parseCall(t, tt.input)
			if got := String(call, tt.attrName); got != tt.want {
				t.Errorf("String(%q) = %q, want %q", tt.attrName, got, tt.want)
			}
		})
	}
}

func TestStringOrList(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		want        []string
		wantPresent bool
		wantErr     string
	}{
		{
			name:        "single string",
			input:       `lib(syntax = "es2018")`,
			want:        []string{"es2018"},
			wantPresent: true,
		},
		{
			name:        "list",
			input:       `lib(syntax = ["Chrome 100", "es5"])`,
			want:        []string{"Chrome 100", "es5"},
			wantPresent: true,
		},
		{
			name:        "empty list",
			input:       `lib(syntax = [])`,
			want:        []string{},
			wantPresent: true,
		},
		{
			name:  "absent",
			input: `lib(format = "cjs")`,
		},
		{
			name:        "list with number",
			input:       `lib(syntax = ["es5", 6])`,
			wantPresent: true,
			wantErr:     "syntax[1]: want string",
		},
		{
			name:        "dict",
			input:       `lib(syntax = {"a": "b"})`,
			wantPresent: true,
			wantErr:     "want string or list of strings",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			call := parseCall(t, tt.input)
			got, present, err := StringOrList(call, "syntax")
			if present != tt.wantPresent {
				t.Errorf("present = %v, want %v", present, tt.wantPresent)
			}
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("error = %v, want containing %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("StringOrList() error = %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("StringOrList() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFuncName(t *testing.T) {
	if got := FuncName(parseCall(t, `lib(format = "esm")`)); got != "lib" {
		t.Errorf("FuncName() = %q, want %q", got, "lib")
	}
	if got := FuncName(parseCall(t, `native.lib()`)); got != "" {
		t.Errorf("FuncName() on method call = %q, want empty", got)
	}
	if !IsFuncCall(parseCall(t, `defaults()`), "defaults") {
		t.Error("IsFuncCall(defaults) = false")
	}
}

func TestLine(t *testing.T) {
	f, err := build.ParseBzl("test.bzl", []byte("lib()\n\nlib(\n    format = \"cjs\",\n)\n"))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	second := f.Stmt[1].(*build.CallExpr)
	if got := Line(second); got != 3 {
		t.Errorf("Line() = %d, want 3", got)
	}
}
