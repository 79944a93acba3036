// SPDX-License-Identifier: MIT

package matrixio

import (
	"errors"
	"fmt"
)

var (
	// ErrMatrixFormat is matched by every input-format failure.
	ErrMatrixFormat = errors.New("matrixio: malformed matrix input")

	// ErrNegativeElement indicates a negative token; inputs must be non-negative.
	ErrNegativeElement = errors.New("matrixio: negative element")

	// ErrBadToken indicates a token that is not a decimal integer, or one that
	// does not fit the element type.
	ErrBadToken = errors.New("matrixio: invalid integer token")

	// ErrBoundTooLarge indicates a random upper bound the element type cannot hold.
	ErrBoundTooLarge = errors.New("matrixio: upper bound exceeds element range")
)

// FormatError locates a rejected token. Line and Col are 1-based; Col counts
// tokens, not bytes.
type FormatError struct {
	Line  int
	Col   int
	Token string
	Err   error // ErrNegativeElement or ErrBadToken, possibly wrapping a strconv error
}

// Error formats the position, the token and the cause.
func (e *FormatError) Error() string {
	return fmt.Sprintf("matrixio: line %d col %d: token %q: %v", e.Line, e.Col, e.Token, e.Err)
}

// Unwrap exposes both ErrMatrixFormat and the specific cause.
func (e *FormatError) Unwrap() []error { return []error{ErrMatrixFormat, e.Err} }
