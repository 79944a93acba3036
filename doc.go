// Package strassen is the module root of an overflow-safe integer matrix
// multiplier built around Strassen's seven-product recursion.
//
// 🚀 What is in the module?
//
//	• checked/   — overflow-checked Add, Sub, Neg, Mul for any signed integer width
//	• matrix/    — Dense storage, read-only View windows, quadrant split,
//	               fail-fast element-wise kernels, Assemble and the classical Mul
//	• strassen/  — Multiply / MultiplyContext (sequential or errgroup fork-join)
//	               and MultiplyNaive, with functional options
//	• matrixio/  — text reader/writer and seeded random operands
//	• cmd/strassen — the command line front end (-f, -r, -n)
//
// ✨ Guarantees
//
//   - No wrapped value ever reaches a caller: the first overflow anywhere in the
//     recursion aborts the product with an error naming the M/Q path.
//   - Inputs are never mutated; every intermediate is a fresh matrix.
//   - Deterministic: fixed loop orders, seeded randomness.
//
// Quick start:
//
//	a, _ := matrix.FromRows([][]int64{{1, 2}, {3, 4}})
//	b, _ := matrix.FromRows([][]int64{{5, 6}, {7, 8}})
//	c, err := strassen.Multiply[int64](a, b, 2) // [[19 22] [43 50]]
//
//	go get github.com/katalvlaran/strassen
package strassen
