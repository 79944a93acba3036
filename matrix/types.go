// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by storage, views and kernels.
// This file intentionally contains ONLY domain-facing types (element
// constraint, read interface, quadrant identifiers). Errors live in errors.go.
package matrix

import (
	"fmt"

	"github.com/katalvlaran/strassen/checked"
)

// Element is the set of element types a matrix may hold: fixed-width signed
// integers, so every kernel can route arithmetic through package checked.
type Element interface {
	checked.Integer
}

// Matrix is the read-only surface consumed by the kernels and multipliers.
// Both *Dense and *View implement it; multipliers never mutate their inputs.
//
// Complexity notes: all methods are expected O(1).
type Matrix[T Element] interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (T, error)
}

// Splitter is a square block that can be split into quadrant views without
// copying. *Dense and *View implement it.
type Splitter[T Element] interface {
	Matrix[T]

	// Quadrant returns a read-only view over one half-size quadrant.
	Quadrant(q Quadrant) (*View[T], error)
}

// cellReader is the unchecked fast-path accessor used by kernels once bounds
// are validated. It is implemented by *Dense and *View only.
type cellReader[T Element] interface {
	cell(i, j int) T
}

// Quadrant identifies one of the four equal sub-blocks of a square block.
type Quadrant int

const (
	// TopLeft is rows [0,h), cols [0,h).
	TopLeft Quadrant = iota
	// TopRight is rows [0,h), cols [h,2h).
	TopRight
	// BottomLeft is rows [h,2h), cols [0,h).
	BottomLeft
	// BottomRight is rows [h,2h), cols [h,2h).
	BottomRight
)

// Quadrants lists all four quadrants in row-major order.
var Quadrants = [4]Quadrant{TopLeft, TopRight, BottomLeft, BottomRight}

// offset returns the (row, col) origin of q inside a block of half-size h.
func (q Quadrant) offset(h int) (int, int) {
	switch q {
	case TopRight:
		return 0, h
	case BottomLeft:
		return h, 0
	case BottomRight:
		return h, h
	default:
		return 0, 0
	}
}

// valid reports whether q is one of the four defined quadrants.
func (q Quadrant) valid() bool { return q >= TopLeft && q <= BottomRight }

// String returns the quadrant name used in diagnostics.
func (q Quadrant) String() string {
	switch q {
	case TopLeft:
		return "top-left"
	case TopRight:
		return "top-right"
	case BottomLeft:
		return "bottom-left"
	case BottomRight:
		return "bottom-right"
	default:
		return fmt.Sprintf("quadrant(%d)", int(q))
	}
}
