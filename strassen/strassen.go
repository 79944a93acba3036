// SPDX-License-Identifier: MIT

package strassen

import (
	"context"
	"fmt"

	"github.com/katalvlaran/strassen/matrix"
)

// Multiply returns C = A·B for two n×n matrices using Strassen's recursion.
// It is MultiplyContext with context.Background().
func Multiply[T matrix.Element](a, b matrix.Matrix[T], n int, opts ...Option) (*matrix.Dense[T], error) {
	return MultiplyContext(context.Background(), a, b, n, opts...)
}

// MultiplyContext returns C = A·B for two n×n matrices using Strassen's
// seven-product recursion.
//
// Implementation:
//   - Stage 1: validate n (positive power of two ≤ max dimension), then that
//     a and b are non-nil and exactly n×n. No arithmetic happens before this.
//   - Stage 2: n = 1 is a single checked product; n = 2 is the scalar base
//     case; larger n splits into quadrant views and recurses seven times.
//   - Stage 3: combine M1..M7 into the four result quadrants and assemble.
//
// Errors:
//   - ErrInvalidDimension (bad n), matrix.ErrNilMatrix, matrix.ErrDimensionMismatch.
//   - ErrOverflow (via *checked.OverflowError), wrapped with the M/Q path.
//   - ctx.Err() when ctx is cancelled before the product completes.
//
// Complexity:
//   - Time O(n^log2(7)), Space O(n²) per level.
//
// Notes:
//   - Inputs are only read. Operands that are neither *matrix.Dense nor
//     *matrix.View are copied once so they can be split without copying.
func MultiplyContext[T matrix.Element](ctx context.Context, a, b matrix.Matrix[T], n int, opts ...Option) (*matrix.Dense[T], error) {
	o := gatherOptions(opts...)
	sa, sb, err := prepare(a, b, n, o)
	if err != nil {
		return nil, err
	}

	r := &recursion[T]{opts: o, trace: debugEnabled(o.log)}
	r.debugf(n, 0, "strassen: multiply start (parallel=%t depth=%d)", o.parallel, o.parallelDepth)

	return r.multiply(ctx, sa, sb, n, 0)
}

// MultiplyNaive applies the same validation as Multiply and then computes the
// classical triple-loop product with matrix.Mul. It is the reference used to
// cross-check Multiply.
func MultiplyNaive[T matrix.Element](a, b matrix.Matrix[T], n int, opts ...Option) (*matrix.Dense[T], error) {
	o := gatherOptions(opts...)
	if _, _, err := prepare(a, b, n, o); err != nil {
		return nil, err
	}

	return matrix.Mul(a, b)
}

// prepare validates n and both operands in the documented order and returns
// them as splittable blocks.
func prepare[T matrix.Element](a, b matrix.Matrix[T], n int, o Options) (matrix.Splitter[T], matrix.Splitter[T], error) {
	if err := validateDimension(n, o.maxDimension); err != nil {
		return nil, nil, err
	}
	if err := matrix.ValidateSquareOf(a, n); err != nil {
		return nil, nil, fmt.Errorf("strassen: operand A: %w", err)
	}
	if err := matrix.ValidateSquareOf(b, n); err != nil {
		return nil, nil, fmt.Errorf("strassen: operand B: %w", err)
	}

	sa, err := asSplitter(a)
	if err != nil {
		return nil, nil, fmt.Errorf("strassen: operand A: %w", err)
	}
	sb, err := asSplitter(b)
	if err != nil {
		return nil, nil, fmt.Errorf("strassen: operand B: %w", err)
	}

	return sa, sb, nil
}

// validateDimension reports ErrInvalidDimension unless n is a power of two in [1, maxDim].
func validateDimension(n, maxDim int) error {
	if !matrix.IsPowerOfTwo(n) || n > maxDim {
		return fmt.Errorf("%w: n=%d (want a power of two in [1, %d])", ErrInvalidDimension, n, maxDim)
	}

	return nil
}

// asSplitter returns m itself when it can be split into quadrant views,
// otherwise an independent Dense copy.
func asSplitter[T matrix.Element](m matrix.Matrix[T]) (matrix.Splitter[T], error) {
	if s, ok := m.(matrix.Splitter[T]); ok {
		return s, nil
	}

	return matrix.Copy(m)
}
