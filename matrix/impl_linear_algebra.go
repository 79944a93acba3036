// SPDX-License-Identifier: MIT
// Package matrix provides the classical product over any Matrix implementation.
// All functions perform strict fail-fast validation and return clear errors on
// dimension mismatches and arithmetic overflow.
//
// Purpose:
//   - Define operation tags and shared helpers for error reporting.
//   - Provide Mul, the O(N³) reference product used to cross-check Strassen.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/strassen/checked"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd      = "Add"
	opSub      = "Sub"
	opMul      = "Mul"
	opAssemble = "Assemble"
	opIdentity = "NewIdentity"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
//
// Complexity:
//   - Time O(1), Space O(1).
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Mul performs the classical product C = A × B with every step overflow-checked.
// Implementation:
//   - Stage 1: Validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: For each (i,j), accumulate Σ_k A[i,k]·B[k,j] in order k=0..n-1;
//     each product goes through checked.Mul and each accumulation through checked.Add.
//   - Stage 3: abort on the first overflow, naming the output cell and k.
//
// Returns:
//   - *Dense: new matrix C with shape (A.Rows × B.Cols).
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch).
//   - checked.ErrOverflow (via *checked.OverflowError).
//
// Determinism:
//   - Fixed i→j→k order, so the reported overflow is stable for equal inputs.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
//
// Notes:
//   - A zero A[i,k] skips the product but not the accumulation order.
func Mul[T Element](a, b Matrix[T]) (*Dense[T], error) {
	// Validate inputs via canonical validator
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense[T](aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	ra, okA := a.(cellReader[T])
	rb, okB := b.(cellReader[T])
	fast := okA && okB

	var (
		i, j, k          int
		av, bv, acc, prd T
	)
	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			acc = 0
			for k = 0; k < aCols; k++ {
				if fast {
					av, bv = ra.cell(i, k), rb.cell(k, j)
				} else {
					if av, err = a.At(i, k); err != nil {
						return nil, matrixErrorf(opMul, err)
					}
					if bv, err = b.At(k, j); err != nil {
						return nil, matrixErrorf(opMul, err)
					}
				}
				if av == 0 {
					continue // skip zero for performance
				}
				if prd, err = checked.Mul(av, bv); err != nil {
					return nil, fmt.Errorf("%s(%d,%d) k=%d: %w", opMul, i, j, k, err)
				}
				if acc, err = checked.Add(acc, prd); err != nil {
					return nil, fmt.Errorf("%s(%d,%d) k=%d: %w", opMul, i, j, k, err)
				}
			}
			res.data[i*bCols+j] = acc
		}
	}

	return res, nil
}
