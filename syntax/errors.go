package syntax

import "errors"

// ErrUnsupportedSyntax matches every [*UnsupportedSyntaxError].
var ErrUnsupportedSyntax = errors.New("unsupported syntax")

// UnsupportedSyntaxError reports an edition-shaped descriptor that names no
// known edition. Syntax holds the descriptor as the caller wrote it.
type UnsupportedSyntaxError struct {
	Syntax string
}

func (e *UnsupportedSyntaxError) Error() string {
	return "unsupported ES version: " + e.Syntax
}

// Is reports whether target is [ErrUnsupportedSyntax].
func (e *UnsupportedSyntaxError) Is(target error) bool {
	return target == ErrUnsupportedSyntax
}
