// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide the element-wise combination kernels of the Strassen recursion:
//     Add and Sub (overflow-checked, fail-fast) and Assemble (quadrant join).
//   - Keep all loops deterministic and cache-friendly with Dense/View fast-paths.
//
// Determinism & Performance:
//   - Fixed loop order i→j; the first overflowing cell in row-major order is
//     the one reported, and no later cell is computed.
//   - One allocation per call (the output Dense); O(r*c) time and space.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/strassen/checked"
)

// addSub computes element-wise out = a ⊕ b where ⊕ is checked.Add or checked.Sub.
// Inputs must have identical shapes. A fresh Dense is allocated; operands are not mutated.
//
// Implementation:
//   - Stage 1: ValidateBinarySameShape(a, b). Allocate result Dense(rows, cols).
//   - Stage 2: Fast-path when both operands are *Dense or *View (unchecked cell
//     reads after validation); otherwise fallback via At.
//   - Stage 3: stop at the first overflow, wrapping it with cell coordinates.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (validation).
//   - *checked.OverflowError wrapped as "<op>(i,j): ..." (arithmetic).
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the new result.
func addSub[T Element](a, b Matrix[T], op func(x, y T) (T, error), opTag string) (*Dense[T], error) {
	// Validate presence and shapes.
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	rows, cols := a.Rows(), a.Cols()
	res, err := NewDense[T](rows, cols)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	var i, j, base int
	var av, bv, v T

	// Fast path: both operands are package-native blocks.
	ra, okA := a.(cellReader[T])
	rb, okB := b.(cellReader[T])
	if okA && okB {
		for i = 0; i < rows; i++ {
			base = i * cols
			for j = 0; j < cols; j++ {
				v, err = op(ra.cell(i, j), rb.cell(i, j))
				if err != nil {
					return nil, fmt.Errorf("%s(%d,%d): %w", opTag, i, j, err)
				}
				res.data[base+j] = v
			}
		}

		return res, nil
	}

	// Fallback: interface path with fixed i→j order.
	for i = 0; i < rows; i++ {
		base = i * cols
		for j = 0; j < cols; j++ {
			if av, err = a.At(i, j); err != nil {
				return nil, matrixErrorf(opTag, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return nil, matrixErrorf(opTag, err)
			}
			if v, err = op(av, bv); err != nil {
				return nil, fmt.Errorf("%s(%d,%d): %w", opTag, i, j, err)
			}
			res.data[base+j] = v
		}
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B with overflow checking.
// Implementation:
//   - Stage 1: Validate both operands are non-nil and have identical shapes.
//   - Stage 2: checked.Add per cell in row-major order; abort on the first overflow.
//
// Returns:
//   - *Dense: a new matrix with C[i,j] = A[i,j] + B[i,j].
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
//   - checked.ErrOverflow (via *checked.OverflowError) naming the first bad cell.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
//
// Notes:
//   - Inputs are never mutated; the result is always a freshly allocated Dense,
//     so concurrent callers may share their inputs.
func Add[T Element](a, b Matrix[T]) (*Dense[T], error) {
	return addSub(a, b, checked.Add[T], opAdd)
}

// Sub computes the element-wise difference C = A - B with overflow checking.
// Same contract as Add with checked.Sub per cell.
// Complexity: Time O(r*c), Space O(r*c).
func Sub[T Element](a, b Matrix[T]) (*Dense[T], error) {
	return addSub(a, b, checked.Sub[T], opSub)
}

// Assemble joins four s×s blocks into one 2s×2s Dense:
//
//	| tl tr |
//	| bl br |
//
// Implementation:
//   - Stage 1: validate all four blocks are non-nil, square and of one size.
//   - Stage 2: copy each block to its quadrant offset.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrDimensionMismatch for mis-shaped blocks.
//     Well-formed input never fails.
//
// Complexity:
//   - Time O(s²), Space O(s²).
func Assemble[T Element](tl, tr, bl, br Matrix[T]) (*Dense[T], error) {
	blocks := [4]Matrix[T]{tl, tr, bl, br}
	var q int
	for q = 0; q < len(blocks); q++ {
		if err := ValidateNotNil(blocks[q]); err != nil {
			return nil, matrixErrorf(opAssemble, err)
		}
	}
	if err := ValidateSquare(tl); err != nil {
		return nil, matrixErrorf(opAssemble, err)
	}
	s := tl.Rows()
	for q = 1; q < len(blocks); q++ {
		if blocks[q].Rows() != s || blocks[q].Cols() != s {
			return nil, matrixErrorf(opAssemble, fmt.Errorf("%s block: %w", Quadrants[q], ErrDimensionMismatch))
		}
	}

	n := 2 * s
	res := newSquare[T](n)
	var i, j, r0, c0 int
	for q = 0; q < len(blocks); q++ {
		r0, c0 = Quadrants[q].offset(s)
		if d, ok := blocks[q].(*Dense[T]); ok {
			// Row-wise copy from a contiguous buffer.
			for i = 0; i < s; i++ {
				copy(res.data[(r0+i)*n+c0:(r0+i)*n+c0+s], d.data[i*s:(i+1)*s])
			}
			continue
		}
		for i = 0; i < s; i++ {
			for j = 0; j < s; j++ {
				v, err := blocks[q].At(i, j)
				if err != nil {
					return nil, matrixErrorf(opAssemble, err)
				}
				res.data[(r0+i)*n+c0+j] = v
			}
		}
	}

	return res, nil
}
