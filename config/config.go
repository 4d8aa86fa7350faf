package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/albertocavalcante/go-esx/syntax"
)

// Format is a library output format.
type Format string

const (
	FormatESM Format = "esm"
	FormatCJS Format = "cjs"
	FormatUMD Format = "umd"
	FormatMF  Format = "mf"
)

// DefaultSyntax is used by libs that set no syntax and have no default.
var DefaultSyntax = syntax.Syntax{"esnext"}

// Lib is one library output.
type Lib struct {
	// ID names the lib; it defaults to "<format>" or "<format>-<n>" when
	// several libs share a format.
	ID     string
	Format Format
	Syntax syntax.Syntax
	Target syntax.Target
}

// Config is a loaded configuration with defaults applied.
type Config struct {
	// Path is the file the config was read from, if any.
	Path string
	Libs []Lib
}

// Error reports an invalid config, with the location when known.
type Error struct {
	Path    string
	Line    int
	Message string
}

func (e *Error) Error() string {
	switch {
	case e.Path != "" && e.Line > 0:
		return fmt.Sprintf("%s:%d: %s", e.Path, e.Line, e.Message)
	case e.Path != "":
		return fmt.Sprintf("%s: %s", e.Path, e.Message)
	}
	return e.Message
}

// Load reads a config file, picking the parser from the extension.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		return ParseYAML(path, data)
	case ".star", ".bzl", ".bazel":
		return ParseStarlark(path, data)
	default:
		return nil, &Error{Path: path, Message: fmt.Sprintf("unsupported config extension %q", ext)}
	}
}

// rawLib is a lib before defaults and validation. Line is 0 when unknown.
type rawLib struct {
	id        string
	format    string
	syntax    []string
	hasSyntax bool
	target    string
	line      int
}

// defaults are file-level fallbacks for libs.
type defaults struct {
	syntax    []string
	hasSyntax bool
	target    string
}

// assemble validates raw libs and applies defaults.
func assemble(path string, d defaults, raws []rawLib) (*Config, error) {
	if len(raws) == 0 {
		return nil, &Error{Path: path, Message: "no lib entries"}
	}
	if d.target != "" {
		if _, err := syntax.ParseTarget(d.target); err != nil {
			return nil, &Error{Path: path, Message: err.Error()}
		}
	}

	cfg := &Config{Path: path, Libs: make([]Lib, 0, len(raws))}
	perFormat := make(map[Format]int)
	seenIDs := make(map[string]int)

	for _, raw := range raws {
		lib, err := buildLib(d, raw)
		if err != nil {
			return nil, &Error{Path: path, Line: raw.line, Message: err.Error()}
		}

		perFormat[lib.Format]++
		if lib.ID == "" {
			lib.ID = string(lib.Format)
			if n := perFormat[lib.Format]; n > 1 {
				lib.ID = fmt.Sprintf("%s-%d", lib.Format, n-1)
			}
		}
		if line, dup := seenIDs[lib.ID]; dup {
			msg := fmt.Sprintf("duplicate lib id %q", lib.ID)
			if line > 0 {
				msg += fmt.Sprintf(" (first defined on line %d)", line)
			}
			return nil, &Error{Path: path, Line: raw.line, Message: msg}
		}
		seenIDs[lib.ID] = raw.line
		cfg.Libs = append(cfg.Libs, lib)
	}
	return cfg, nil
}

func buildLib(d defaults, raw rawLib) (Lib, error) {
	lib := Lib{ID: raw.id, Format: Format(raw.format)}
	switch lib.Format {
	case FormatESM, FormatCJS, FormatUMD, FormatMF:
	case "":
		return Lib{}, errors.New("lib is missing format")
	default:
		return Lib{}, fmt.Errorf("unknown format %q (want esm, cjs, umd or mf)", raw.format)
	}

	switch {
	case raw.hasSyntax:
		lib.Syntax = syntax.Syntax(raw.syntax)
	case d.hasSyntax:
		lib.Syntax = syntax.Syntax(d.syntax)
	default:
		lib.Syntax = append(syntax.Syntax(nil), DefaultSyntax...)
	}
	if len(lib.Syntax) == 0 {
		return Lib{}, fmt.Errorf("lib %s has an empty syntax list", lib.Format)
	}

	targetName := raw.target
	if targetName == "" {
		targetName = d.target
	}
	target, err := syntax.ParseTarget(targetName)
	if err != nil {
		return Lib{}, err
	}
	lib.Target = target
	return lib, nil
}
