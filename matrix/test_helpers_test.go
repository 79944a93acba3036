// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures and utilities for kernels and views.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/strassen/matrix"
)

// hide WRAPS any Matrix to hide its concrete type from type assertions,
// forcing the generic At-based fallback paths in code under test.
type hide[T matrix.Element] struct{ matrix.Matrix[T] }

// MustRows builds a Dense from row literals or fails the test.
func MustRows[T matrix.Element](t testing.TB, rows [][]T) *matrix.Dense[T] {
	t.Helper()
	m, err := matrix.FromRows(rows)
	if err != nil {
		t.Fatalf("FromRows: %v", err)
	}

	return m
}

// MustAt reads (i,j) or fails the test.
func MustAt[T matrix.Element](t testing.TB, m matrix.Matrix[T], i, j int) T {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// Sequential fills an n×n matrix with 0, 1, 2, ... in row-major order,
// so every cell value encodes its own coordinates (v = i*n + j).
func Sequential(t testing.TB, n int) *matrix.Dense[int64] {
	t.Helper()
	m, err := matrix.NewSquare[int64](n)
	if err != nil {
		t.Fatalf("NewSquare(%d): %v", n, err)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if err = m.Set(i, j, int64(i*n+j)); err != nil {
				t.Fatalf("Set: %v", err)
			}
		}
	}

	return m
}

// RandomSquare returns an n×n matrix with entries in [0, bound) from a fixed seed.
func RandomSquare(t testing.TB, n int, bound int64, seed int64) *matrix.Dense[int64] {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	m, err := matrix.NewSquare[int64](n)
	if err != nil {
		t.Fatalf("NewSquare(%d): %v", n, err)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			_ = m.Set(i, j, rng.Int63n(bound))
		}
	}

	return m
}
