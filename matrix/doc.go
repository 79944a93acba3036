// Package matrix offers square integer matrices, no-copy quadrant views and
// overflow-checked element-wise kernels for divide-and-conquer products.
//
// The matrix package provides:
//
//   - Dense[T], an owning row-major grid over any fixed-width signed integer.
//   - View[T], a read-only window into a Dense; Quadrant splits a block into
//     four equal halves and views of views address the base directly.
//   - Add / Sub, element-wise kernels that fail fast on the first overflowing
//     cell, and Assemble, which joins four quadrants into one matrix.
//   - Mul, the classical O(N³) product with every step overflow-checked;
//     it is the reference comparator for the Strassen multiplier.
//
// All public entry points return sentinel errors (see errors.go) and never
// panic on user input.
package matrix
