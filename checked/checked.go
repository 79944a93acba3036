// SPDX-License-Identifier: MIT

package checked

import "unsafe"

// Integer is the set of fixed-width signed integer types accepted as matrix
// elements. Unsigned types are excluded: intermediate Strassen terms are signed.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Max returns the largest value representable by T.
// Complexity: O(1).
func Max[T Integer]() T {
	var zero T
	width := 8 * unsafe.Sizeof(zero)

	return T(1)<<(width-1) - 1
}

// Min returns the smallest value representable by T.
// Complexity: O(1).
func Min[T Integer]() T {
	return -Max[T]() - 1
}

// isMin reports whether a is the minimum of its type: the only non-zero value
// equal to its own two's-complement negation.
func isMin[T Integer](a T) bool {
	return a < 0 && -a == a
}

// Add returns a + b or an *OverflowError when the sum is not representable.
// Implementation:
//   - Stage 1: compute the wrapped sum.
//   - Stage 2: same-signed operands with an opposite-signed sum overflowed.
//
// Complexity: O(1).
func Add[T Integer](a, b T) (T, error) {
	s := a + b
	if a > 0 && b > 0 && s < 0 {
		return 0, overflow(OpAdd, a, b)
	}
	if a < 0 && b < 0 && s >= 0 {
		return 0, overflow(OpAdd, a, b)
	}

	return s, nil
}

// Sub returns a - b, defined as Add(a, -b).
// Negating the minimum value overflows on its own, so b == Min is handled
// explicitly: a - Min equals a + Max + 1, which is representable exactly when
// a < 0. Errors report OpSub with the caller's operands.
// Complexity: O(1).
func Sub[T Integer](a, b T) (T, error) {
	if isMin(b) {
		if a < 0 {
			return a - b, nil
		}

		return 0, overflow(OpSub, a, b)
	}
	d, err := Add(a, -b)
	if err != nil {
		return 0, overflow(OpSub, a, b)
	}

	return d, nil
}

// Neg returns -a; only the minimum value overflows.
// Complexity: O(1).
func Neg[T Integer](a T) (T, error) {
	if isMin(a) {
		return 0, overflow(OpNeg, a, 0)
	}

	return -a, nil
}

// Mul returns a * b or an *OverflowError when the product is not representable.
// Implementation:
//   - Stage 1: zero operands short-circuit.
//   - Stage 2: -1 × Min wraps back to Min and also survives the division
//     round-trip (Min / -1 == Min in Go), so it is rejected up front.
//   - Stage 3: round-trip the wrapped product through division.
//
// Complexity: O(1).
func Mul[T Integer](a, b T) (T, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}
	if (a == -1 && isMin(b)) || (b == -1 && isMin(a)) {
		return 0, overflow(OpMul, a, b)
	}
	p := a * b
	if p/a != b {
		return 0, overflow(OpMul, a, b)
	}

	return p, nil
}
