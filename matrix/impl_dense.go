// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Support no-copy read-only windows (View, Quadrant) for recursive splitting.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c); View/Quadrant: O(1).

package matrix

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt       = "At"       // method tag used in error wrappers
	ctxSet      = "Set"      // method tag used in error wrappers
	ctxView     = "View"     // ctor tag for Dense.View
	ctxQuadrant = "Quadrant" // ctor tag for Dense.Quadrant
	ctxFromRows = "FromRows" // ctor tag for FromRows
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// MAIN DESCRIPTION:
//   - Attach method context and coordinates to a sentinel error for diagnostics.
//
// Implementation:
//   - Stage 1: format "Dense.<method>(row,col): %w".
//
// Complexity:
//   - Time O(1), Space O(1).
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major integer matrix.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type Dense[T Element] struct {
	r, c int // row and column counts (>0 for public constructors)
	data []T // contiguous row-major storage (len == r*c)
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix[int64]   = (*Dense[int64])(nil)
	_ Splitter[int64] = (*Dense[int64])(nil)
	_ fmt.Stringer    = (*Dense[int64])(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
// MAIN DESCRIPTION:
//   - Public constructor for Dense with strict shape validation.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: allocate zero-filled buffer.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense[T Element](rows, cols int) (*Dense[T], error) {
	// Validate shape.
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	// make() zero-fills the buffer deterministically.
	return &Dense[T]{r: rows, c: cols, data: make([]T, rows*cols)}, nil
}

// newSquare allocates an n×n zero matrix for kernels that already validated
// n > 0; it skips the error path of NewDense.
func newSquare[T Element](n int) *Dense[T] {
	return &Dense[T]{r: n, c: n, data: make([]T, n*n)}
}

// FromRows builds a Dense from a rectangular slice of rows (copying the data).
// MAIN DESCRIPTION:
//   - Convenience constructor for literals and parsed input.
//
// Implementation:
//   - Stage 1: reject empty input (ErrInvalidDimensions).
//   - Stage 2: reject ragged rows (ErrBadShape) citing the first offending row.
//   - Stage 3: copy row by row into the flat buffer.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func FromRows[T Element](rows [][]T) (*Dense[T], error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrInvalidDimensions
	}
	r, c := len(rows), len(rows[0])
	m := &Dense[T]{r: r, c: c, data: make([]T, r*c)}
	for i, row := range rows {
		if len(row) != c {
			return nil, fmt.Errorf("%s: row %d has %d cols, want %d: %w", ctxFromRows, i, len(row), c, ErrBadShape)
		}
		copy(m.data[i*c:(i+1)*c], row)
	}

	return m, nil
}

// Rows returns the row count. No side effects.
// Complexity: O(1).
func (m *Dense[T]) Rows() int { return m.r }

// Cols returns the column count. No side effects.
// Complexity: O(1).
func (m *Dense[T]) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
// Complexity: O(1).
func (m *Dense[T]) Shape() (rows, cols int) { return m.r, m.c }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Public methods (At/Set) wrap the sentinel with coordinates and method name.
// Complexity: O(1).
func (m *Dense[T]) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// cell reads (row, col) without bounds checks; callers validated the shape.
func (m *Dense[T]) cell(row, col int) T { return m.data[row*m.c+col] }

// At returns the value at (row, col) or ErrOutOfRange.
// MAIN DESCRIPTION:
//   - Safe element read at coordinates.
//
// Implementation:
//   - Stage 1: compute offset via indexOf (bounds check).
//   - Stage 2: load from flat buffer.
//
// Errors:
//   - ErrOutOfRange when out of bounds
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense[T]) At(row, col int) (T, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err) // wrap with context
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Dense[T]) Set(row, col int, v T) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err) // wrap with context
	}
	m.data[off] = v // direct flat write

	return nil
}

// Clone returns a deep copy (new buffer).
// Mutations of the clone do not affect the original.
// Complexity: O(r*c).
func (m *Dense[T]) Clone() *Dense[T] {
	cp := make([]T, len(m.data))
	copy(cp, m.data)

	return &Dense[T]{r: m.r, c: m.c, data: cp}
}

// ToRows copies the matrix into a freshly allocated [][]T.
// Complexity: O(r*c).
func (m *Dense[T]) ToRows() [][]T {
	out := make([][]T, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = make([]T, m.c)
		copy(out[i], m.data[i*m.c:(i+1)*m.c])
	}

	return out
}

// Equal reports whether o has the same shape and cells as m.
// A nil o, or an o whose At fails, is never equal.
// Another *Dense is compared buffer to buffer.
// Complexity: O(r*c).
func (m *Dense[T]) Equal(o Matrix[T]) bool {
	if ValidateNotNil(o) != nil {
		return false
	}
	if d, ok := o.(*Dense[T]); ok {
		r, c := d.Shape()
		return r == m.r && c == m.c && slices.Equal(d.data, m.data)
	}
	if o.Rows() != m.r || o.Cols() != m.c {
		return false
	}
	var i, j int
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			v, err := o.At(i, j)
			if err != nil || v != m.data[i*m.c+j] {
				return false
			}
		}
	}

	return true
}

// String HUMAN-READABLE dump of rows for diagnostics.
// Implementation:
//   - Stage 1: iterate rows/cols deterministically.
//   - Stage 2: write values into strings.Builder with standard delimiters.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for formatting.
func (m *Dense[T]) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ { // iterate rows deterministically
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			b.WriteString(strconv.FormatInt(int64(m.data[base+j]), 10))
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// Do visits each element (i,j) in row-major order and calls f(i,j,v).
// Stops early when f returns false.
// Complexity: O(r*c).
func (m *Dense[T]) Do(f func(i, j int, v T) bool) {
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if !f(i, j, m.data[base+j]) {
				return // early exit requested by caller
			}
		}
	}
}

// View creates a no-copy, read-only window [r0:r0+rows, c0:c0+cols).
// MAIN DESCRIPTION:
//   - Lightweight sub-block referencing the base buffer (shared storage).
//
// Implementation:
//   - Stage 1: validate window bounds (positive size, inside the matrix).
//   - Stage 2: return View with offsets.
//
// Errors:
//   - ErrBadShape when the window is invalid.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// Notes:
//   - Views are read-only, so any number of goroutines may share one.
func (m *Dense[T]) View(r0, c0, rows, cols int) (*View[T], error) {
	if r0 < 0 || c0 < 0 || rows <= 0 || cols <= 0 || r0+rows > m.r || c0+cols > m.c {
		return nil, fmt.Errorf("Dense.%s(%d,%d,%d,%d): %w", ctxView, r0, c0, rows, cols, ErrBadShape)
	}

	return &View[T]{base: m, r0: r0, c0: c0, r: rows, c: cols}, nil
}

// Quadrant returns a read-only view over quadrant q of a square matrix.
// MAIN DESCRIPTION:
//   - Pure addressing: (q.row*h, q.col*h) with h = n/2; no data is copied.
//
// Errors:
//   - ErrNonSquare when rows != cols.
//   - ErrOddDimension when n is odd or < 2.
//   - ErrBadShape when q is not one of the four quadrants.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense[T]) Quadrant(q Quadrant) (*View[T], error) {
	r0, c0, h, err := quadrantWindow(m.r, m.c, q)
	if err != nil {
		return nil, fmt.Errorf("Dense.%s(%s): %w", ctxQuadrant, q, err)
	}

	return &View[T]{base: m, r0: r0, c0: c0, r: h, c: h}, nil
}

// quadrantWindow validates a rows×cols block and returns the origin and size
// of quadrant q inside it.
func quadrantWindow(rows, cols int, q Quadrant) (r0, c0, h int, err error) {
	if rows != cols {
		return 0, 0, 0, ErrNonSquare
	}
	if rows < 2 || rows%2 != 0 {
		return 0, 0, 0, ErrOddDimension
	}
	if !q.valid() {
		return 0, 0, 0, ErrBadShape
	}
	h = rows / 2
	r0, c0 = q.offset(h)

	return r0, c0, h, nil
}
