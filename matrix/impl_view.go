// SPDX-License-Identifier: MIT

// Package matrix - View: non-owning read-only windows into a Dense.
//
// Purpose:
//   - Address sub-blocks (quadrants) during recursive splitting without copying.
//   - Compose offsets: a view of a view points straight into the base Dense, so
//     Quadrant(TopLeft) applied twice equals View(0, 0, n/4, n/4) of the base.
//
// Notes:
//   - Views never write. Writable results are always freshly allocated Dense
//     values produced by kernels (Add, Sub, Assemble), so recursive calls never
//     alias mutable storage.

package matrix

import "fmt"

// View is a non-owning window into a Dense (shared, read-only storage).
type View[T Element] struct {
	base *Dense[T] // underlying storage owner
	r0   int       // top-left row offset in base
	c0   int       // top-left col offset in base
	r    int       // view height
	c    int       // view width
}

var (
	_ Matrix[int64]   = (*View[int64])(nil)
	_ Splitter[int64] = (*View[int64])(nil)
)

// Rows returns the number of rows in the view.
// Complexity: O(1).
func (v *View[T]) Rows() int { return v.r }

// Cols returns the number of columns in the view.
// Complexity: O(1).
func (v *View[T]) Cols() int { return v.c }

// Offset returns the top-left coordinates of the view inside its base Dense.
// Complexity: O(1).
func (v *View[T]) Offset() (row, col int) { return v.r0, v.c0 }

// cell reads (i, j) without bounds checks; callers validated the shape.
func (v *View[T]) cell(i, j int) T {
	return v.base.data[(v.r0+i)*v.base.c+(v.c0+j)]
}

// At reads element (i,j) in the view or returns ErrOutOfRange.
// MAIN DESCRIPTION:
//   - Safe read within the view bounds; translates to base coordinates.
//
// Implementation:
//   - Stage 1: check 0≤i<r and 0≤j<c.
//   - Stage 2: return base.data[(r0+i)*base.c + (c0+j)].
//
// Complexity:
//   - Time O(1), Space O(1).
func (v *View[T]) At(i, j int) (T, error) {
	if i < 0 || i >= v.r || j < 0 || j >= v.c {
		return 0, fmt.Errorf("View.At(%d,%d): %w", i, j, ErrOutOfRange)
	}

	return v.cell(i, j), nil
}

// View narrows the window further; offsets are relative to this view and the
// result still points into the original base.
// Errors: ErrBadShape when the window leaves this view.
// Complexity: O(1).
func (v *View[T]) View(r0, c0, rows, cols int) (*View[T], error) {
	if r0 < 0 || c0 < 0 || rows <= 0 || cols <= 0 || r0+rows > v.r || c0+cols > v.c {
		return nil, fmt.Errorf("View.%s(%d,%d,%d,%d): %w", ctxView, r0, c0, rows, cols, ErrBadShape)
	}

	return &View[T]{base: v.base, r0: v.r0 + r0, c0: v.c0 + c0, r: rows, c: cols}, nil
}

// Quadrant returns quadrant q of this (square, even-sized) view.
// Errors: ErrNonSquare, ErrOddDimension, ErrBadShape (see Dense.Quadrant).
// Complexity: O(1).
func (v *View[T]) Quadrant(q Quadrant) (*View[T], error) {
	r0, c0, h, err := quadrantWindow(v.r, v.c, q)
	if err != nil {
		return nil, fmt.Errorf("View.%s(%s): %w", ctxQuadrant, q, err)
	}

	return &View[T]{base: v.base, r0: v.r0 + r0, c0: v.c0 + c0, r: h, c: h}, nil
}

// Materialize copies the window into an independent Dense.
// Complexity: O(r*c).
func (v *View[T]) Materialize() *Dense[T] {
	out := &Dense[T]{r: v.r, c: v.c, data: make([]T, v.r*v.c)}
	var i int
	var src int
	for i = 0; i < v.r; i++ {
		src = (v.r0+i)*v.base.c + v.c0
		copy(out.data[i*v.c:(i+1)*v.c], v.base.data[src:src+v.c])
	}

	return out
}
