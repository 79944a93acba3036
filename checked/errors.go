// SPDX-License-Identifier: MIT

package checked

import (
	"errors"
	"fmt"
)

// ErrOverflow is the sentinel matched by every overflow reported by this package.
// Callers MUST match it with errors.Is; the concrete value is an *OverflowError.
var ErrOverflow = errors.New("checked: arithmetic overflow")

// Op identifies the arithmetic operation that overflowed.
type Op uint8

const (
	// OpAdd is a + b.
	OpAdd Op = iota
	// OpSub is a - b.
	OpSub
	// OpMul is a * b.
	OpMul
	// OpNeg is -a (B is unused).
	OpNeg
)

// String returns the lower-case operation name used in error messages.
func (o Op) String() string {
	switch o {
	case OpAdd:
		return "add"
	case OpSub:
		return "sub"
	case OpMul:
		return "mul"
	case OpNeg:
		return "neg"
	default:
		return fmt.Sprintf("op(%d)", uint8(o))
	}
}

// OverflowError reports the operation and operands whose exact result is not
// representable in the element type. Operands are widened to int64, which holds
// every supported width losslessly.
type OverflowError struct {
	Op Op
	A  int64
	B  int64
}

// Error formats the operation and the offending operand pair.
func (e *OverflowError) Error() string {
	if e.Op == OpNeg {
		return fmt.Sprintf("checked: %s overflow for a = %d", e.Op, e.A)
	}

	return fmt.Sprintf("checked: %s overflow for a = %d b = %d", e.Op, e.A, e.B)
}

// Unwrap exposes ErrOverflow so errors.Is(err, ErrOverflow) holds.
func (e *OverflowError) Unwrap() error { return ErrOverflow }

func overflow[T Integer](op Op, a, b T) error {
	return &OverflowError{Op: op, A: int64(a), B: int64(b)}
}
