// SPDX-License-Identifier: MIT

// Package checked provides overflow-checked arithmetic over fixed-width signed
// integers.
//
// What & Why:
//
//	Matrix products accumulate quickly: a 16×16 product of values near 2^15
//	already leaves the int32 range. Every operation in this package either
//	returns the exact mathematical result or an *OverflowError naming the
//	operation and the operand pair; a wrapped value is never returned.
//
// Detection rules:
//   - Add: two same-signed operands whose wrapped sum has the opposite sign.
//   - Sub: Add(a, -b), with the negation of the minimum value checked explicitly.
//   - Mul: round-trip (p/a == b) plus the -1 × min case, so the check holds
//     for every width without a wider intermediate type.
//
// Complexity:
//
//	All operations are O(1), pure and allocation-free on success.
//
// Usage:
//
//	s, err := checked.Add[int32](math.MaxInt32, 1)
//	if errors.Is(err, checked.ErrOverflow) {
//		// handle the overflow; s is zero
//	}
package checked
