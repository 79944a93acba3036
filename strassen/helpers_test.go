// SPDX-License-Identifier: MIT

package strassen_test

import (
	"testing"

	"github.com/katalvlaran/strassen/matrix"
	"github.com/katalvlaran/strassen/matrixio"
)

// hide wraps a Matrix so that it is neither *Dense nor *View.
type hide[T matrix.Element] struct{ matrix.Matrix[T] }

func mustRows[T matrix.Element](t testing.TB, rows [][]T) *matrix.Dense[T] {
	t.Helper()
	m, err := matrix.FromRows(rows)
	if err != nil {
		t.Fatalf("FromRows: %v", err)
	}

	return m
}

// randomPair draws two n×n operands with entries in [0, bound) from one seed.
func randomPair(t testing.TB, n int, bound, seed int64) (*matrix.Dense[int64], *matrix.Dense[int64]) {
	t.Helper()
	g := matrixio.NewGenerator(matrixio.WithSeed(seed), matrixio.WithUpperBound(bound))
	a, err := matrixio.Fill[int64](g, n)
	if err != nil {
		t.Fatalf("Fill: %v", err)
	}
	b, err := matrixio.Fill[int64](g, n)
	if err != nil {
		t.Fatalf("Fill: %v", err)
	}

	return a, b
}

// scaledIdentity returns k·I of size n.
func scaledIdentity[T matrix.Element](t testing.TB, n int, k T) *matrix.Dense[T] {
	t.Helper()
	m, err := matrix.NewSquare[T](n)
	if err != nil {
		t.Fatalf("NewSquare: %v", err)
	}
	for i := 0; i < n; i++ {
		_ = m.Set(i, i, k)
	}

	return m
}
