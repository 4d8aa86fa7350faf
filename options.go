package goesx

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/albertocavalcante/go-esx/compat"
	"github.com/albertocavalcante/go-esx/edition"
	"github.com/albertocavalcante/go-esx/syntax"
)

// Option configures resolution behavior.
type Option func(*resolverConfig) error

// resolverConfig holds all resolution configuration.
type resolverConfig struct {
	target syntax.Target

	// At most one table source may be set. With none, the table
	// synthesized from the embedded coverage matrix is used.
	table        *compat.Table
	tableFile    string
	coverageFile string

	// logger is the structured logger for debug output.
	// If nil, logging is disabled (silent mode).
	logger *slog.Logger
}

// WithTarget sets the deployment target used when a latest edition
// (es2024, esnext) is resolved to browserslist queries.
func WithTarget(target syntax.Target) Option {
	return func(c *resolverConfig) error {
		t, err := syntax.ParseTarget(string(target))
		if err != nil {
			return err
		}
		c.target = t
		return nil
	}
}

// WithTable resolves against a prebuilt requirement table instead of the
// embedded one.
func WithTable(t *compat.Table) Option {
	return func(c *resolverConfig) error {
		if t == nil {
			return errors.New("table must not be nil")
		}
		c.table = t
		return nil
	}
}

// WithTableFile resolves against a table artifact written by
// `esx generate` or [compat.Table.WriteFile].
func WithTableFile(path string) Option {
	return func(c *resolverConfig) error {
		c.tableFile = path
		return nil
	}
}

// WithCoverageFile synthesizes the requirement table from a coverage matrix
// file in place of the embedded matrix.
func WithCoverageFile(path string) Option {
	return func(c *resolverConfig) error {
		c.coverageFile = path
		return nil
	}
}

// WithLogger sets a structured logger for resolution diagnostics.
// If not set, logging is disabled (silent mode).
//
// Example:
//
//	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
//	goesx.ResolveTargets(syntax.Syntax{"esnext"}, goesx.WithLogger(logger))
func WithLogger(l *slog.Logger) Option {
	return func(c *resolverConfig) error {
		c.logger = l
		return nil
	}
}

// validate checks the configuration for logical consistency.
func (c *resolverConfig) validate() error {
	sources := 0
	for _, set := range []bool{c.table != nil, c.tableFile != "", c.coverageFile != ""} {
		if set {
			sources++
		}
	}
	if sources > 1 {
		return ErrConflictingTables
	}
	return nil
}

// log returns the configured logger, or a no-op logger if none was set.
func (c *resolverConfig) log() *slog.Logger {
	if c.logger != nil {
		return c.logger
	}
	return slog.New(slog.DiscardHandler)
}

// newResolverConfig creates a new resolver configuration by applying
// the given options and validating the result.
func newResolverConfig(opts ...Option) (*resolverConfig, error) {
	c := &resolverConfig{}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// syntaxTable builds the edition table from the configured source.
func (c *resolverConfig) syntaxTable() (*syntax.Table, error) {
	var (
		table *syntax.Table
		err   error
	)
	switch {
	case c.table != nil:
		table, err = syntax.NewTable(c.table)
	case c.tableFile != "":
		var reqs *compat.Table
		if reqs, err = compat.ReadTableFile(c.tableFile); err == nil {
			c.log().Debug("loaded requirement table", slog.String("path", c.tableFile), slog.Int("editions", reqs.Len()))
			table, err = syntax.NewTable(reqs)
		}
	case c.coverageFile != "":
		table, err = c.synthesizeFromCoverage()
	default:
		table, err = syntax.DefaultTable()
	}
	if err != nil {
		return nil, err
	}
	return table.WithLogger(c.log()), nil
}

func (c *resolverConfig) synthesizeFromCoverage() (*syntax.Table, error) {
	cov, err := compat.ReadCoverageFile(c.coverageFile)
	if err != nil {
		return nil, err
	}
	reqs, err := compat.Synthesize(edition.Default(), cov, nil)
	if err != nil {
		return nil, fmt.Errorf("synthesize from %s: %w", c.coverageFile, err)
	}
	c.log().Debug("synthesized requirement table",
		slog.String("coverage", c.coverageFile),
		slog.Int("features", len(cov)),
		slog.Int("editions", reqs.Len()))
	return syntax.NewTable(reqs)
}
