// SPDX-License-Identifier: MIT

// Package matrix: convenience constructors and facades.
package matrix

// NewSquare creates an n×n zero matrix.
// Errors: ErrInvalidDimensions when n <= 0.
func NewSquare[T Element](n int) (*Dense[T], error) { return NewDense[T](n, n) }

// NewIdentity creates the n×n identity matrix (ones on the main diagonal).
// Errors: ErrInvalidDimensions when n <= 0.
// Complexity: O(n²).
func NewIdentity[T Element](n int) (*Dense[T], error) {
	m, err := NewDense[T](n, n)
	if err != nil {
		return nil, matrixErrorf(opIdentity, err)
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}

	return m, nil
}

// Copy materializes any Matrix into an independent Dense.
// *View and *Dense use their copy fast-paths; other implementations go through At.
// Errors: ErrNilMatrix, ErrInvalidDimensions, or an At failure.
// Complexity: O(r*c).
func Copy[T Element](m Matrix[T]) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}
	switch src := m.(type) {
	case *Dense[T]:
		return src.Clone(), nil
	case *View[T]:
		return src.Materialize(), nil
	}
	out, err := NewDense[T](m.Rows(), m.Cols())
	if err != nil {
		return nil, err
	}
	var i, j int
	for i = 0; i < out.r; i++ {
		for j = 0; j < out.c; j++ {
			v, e := m.At(i, j)
			if e != nil {
				return nil, e
			}
			out.data[i*out.c+j] = v
		}
	}

	return out, nil
}
