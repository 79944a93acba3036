// SPDX-License-Identifier: MIT

// Package matrix_test contains unit tests for View and quadrant addressing.
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/strassen/matrix"
	"github.com/stretchr/testify/require"
)

// TestQuadrantOffsets checks that each quadrant of a 4×4 block sees the right cells.
func TestQuadrantOffsets(t *testing.T) {
	m := Sequential(t, 4)
	want := map[matrix.Quadrant][][]int64{
		matrix.TopLeft:     {{0, 1}, {4, 5}},
		matrix.TopRight:    {{2, 3}, {6, 7}},
		matrix.BottomLeft:  {{8, 9}, {12, 13}},
		matrix.BottomRight: {{10, 11}, {14, 15}},
	}
	for _, q := range matrix.Quadrants {
		v, err := m.Quadrant(q)
		require.NoError(t, err, q.String())
		require.Equal(t, 2, v.Rows())
		require.Equal(t, 2, v.Cols())
		require.Equal(t, want[q], v.Materialize().ToRows(), q.String())
	}
}

// TestQuadrantComposition verifies that TopLeft∘TopLeft addresses the same
// cells as View(0, 0, n/4, n/4), and that offsets compose for other paths.
func TestQuadrantComposition(t *testing.T) {
	for _, n := range []int{4, 8, 16} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			m := Sequential(t, n)
			q1, err := m.Quadrant(matrix.TopLeft)
			require.NoError(t, err)
			q2, err := q1.Quadrant(matrix.TopLeft)
			require.NoError(t, err)
			w, err := m.View(0, 0, n/4, n/4)
			require.NoError(t, err)

			r, c := q2.Offset()
			require.Equal(t, 0, r)
			require.Equal(t, 0, c)
			require.True(t, q2.Materialize().Equal(w))

			// BottomRight of TopRight starts at (n/4, 3n/4) of the base.
			tr, err := m.Quadrant(matrix.TopRight)
			require.NoError(t, err)
			brtr, err := tr.Quadrant(matrix.BottomRight)
			require.NoError(t, err)
			r, c = brtr.Offset()
			require.Equal(t, n/4, r)
			require.Equal(t, 3*n/4, c)
			require.Equal(t, int64(r*n+c), MustAt[int64](t, brtr, 0, 0))
		})
	}
}

// TestQuadrantErrors covers non-square, odd, too small and unknown quadrants.
func TestQuadrantErrors(t *testing.T) {
	rect, err := matrix.NewDense[int64](2, 4)
	require.NoError(t, err)
	_, err = rect.Quadrant(matrix.TopLeft)
	require.ErrorIs(t, err, matrix.ErrNonSquare)

	odd, err := matrix.NewSquare[int64](3)
	require.NoError(t, err)
	_, err = odd.Quadrant(matrix.TopLeft)
	require.ErrorIs(t, err, matrix.ErrOddDimension)

	one, err := matrix.NewSquare[int64](1)
	require.NoError(t, err)
	_, err = one.Quadrant(matrix.BottomRight)
	require.ErrorIs(t, err, matrix.ErrOddDimension)

	m := Sequential(t, 2)
	_, err = m.Quadrant(matrix.Quadrant(7))
	require.ErrorIs(t, err, matrix.ErrBadShape)

	// A 1×1 quadrant of a 2×2 block cannot be split again.
	q, err := m.Quadrant(matrix.TopLeft)
	require.NoError(t, err)
	_, err = q.Quadrant(matrix.TopLeft)
	require.ErrorIs(t, err, matrix.ErrOddDimension)
}

// TestViewBounds validates window checks on Dense and nested View.
func TestViewBounds(t *testing.T) {
	m := Sequential(t, 4)

	cases := []struct {
		name             string
		r0, c0, rows, cl int
	}{
		{"negative row", -1, 0, 1, 1},
		{"negative col", 0, -1, 1, 1},
		{"zero rows", 0, 0, 0, 1},
		{"past right edge", 0, 3, 1, 2},
		{"past bottom edge", 3, 0, 2, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := m.View(tc.r0, tc.c0, tc.rows, tc.cl)
			require.ErrorIs(t, err, matrix.ErrBadShape)
		})
	}

	v, err := m.View(1, 1, 2, 2)
	require.NoError(t, err)
	_, err = v.View(1, 1, 2, 2)
	require.ErrorIs(t, err, matrix.ErrBadShape)

	inner, err := v.View(1, 0, 1, 2)
	require.NoError(t, err)
	require.Equal(t, [][]int64{{9, 10}}, inner.Materialize().ToRows())
}

// TestViewAt verifies bounds checks are relative to the window, not the base.
func TestViewAt(t *testing.T) {
	m := Sequential(t, 4)
	v, err := m.View(2, 2, 2, 2)
	require.NoError(t, err)

	require.Equal(t, int64(15), MustAt[int64](t, v, 1, 1))
	_, err = v.At(2, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = v.At(0, -1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestViewSharesStorage shows that a view observes later writes to its base.
func TestViewSharesStorage(t *testing.T) {
	m := Sequential(t, 2)
	v, err := m.Quadrant(matrix.BottomRight)
	require.NoError(t, err)

	snapshot := v.Materialize()
	require.NoError(t, m.Set(1, 1, 42))
	require.Equal(t, int64(42), MustAt[int64](t, v, 0, 0))
	require.Equal(t, int64(3), MustAt[int64](t, snapshot, 0, 0))
}

// TestQuadrantString checks diagnostic names.
func TestQuadrantString(t *testing.T) {
	require.Equal(t, "top-left", matrix.TopLeft.String())
	require.Equal(t, "bottom-right", matrix.BottomRight.String())
	require.Equal(t, "quadrant(9)", matrix.Quadrant(9).String())
}
