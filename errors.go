package goesx

import (
	"errors"

	"github.com/albertocavalcante/go-esx/syntax"
)

// Sentinel errors for common resolution failures.
var (
	// ErrUnsupportedSyntax matches errors for edition-shaped descriptors
	// that name no known edition.
	ErrUnsupportedSyntax = syntax.ErrUnsupportedSyntax

	// ErrConflictingTables indicates more than one of WithTable,
	// WithTableFile and WithCoverageFile was given.
	ErrConflictingTables = errors.New("conflicting table sources")
)

// UnsupportedSyntaxError reports the descriptor that failed to resolve.
type UnsupportedSyntaxError = syntax.UnsupportedSyntaxError
