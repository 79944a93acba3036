// Package strassen multiplies square integer matrices with Strassen's
// seven-product recursion, with every intermediate value overflow-checked.
//
// What & Why:
//
//	The classical product of two N×N matrices needs N³ scalar multiplications.
//	Strassen's scheme splits each operand into four N/2 quadrants and combines
//	them into seven (not eight) half-size products:
//
//	    M1 = (A00 + A11)(B00 + B11)     C00 = M1 + M4 - M5 + M7
//	    M2 = (A10 + A11) B00            C01 = M3 + M5
//	    M3 = A00 (B01 - B11)            C10 = M2 + M4
//	    M4 = A11 (B10 - B00)            C11 = M1 - M2 + M3 + M6
//	    M5 = (A00 + A01) B11
//	    M6 = (A10 - A00)(B00 + B01)
//	    M7 = (A01 - A11)(B10 + B11)
//
//	which gives O(N^log2(7)) ≈ O(N^2.807) time.
//
// Overflow:
//
//	Elements are fixed-width signed integers. Every addition, subtraction and
//	multiplication (including those in the intermediate M-terms, whose
//	magnitude may exceed the final result) goes through package checked. The
//	first overflow aborts the whole call; the returned error names the
//	M-product or Q-block path that hit it and matches ErrOverflow:
//
//	    M6(n=4): M1(n=2): checked: mul overflow for a = 200 b = 200
//
// Dimensions:
//
//	n must be a positive power of two not exceeding the configured maximum
//	(DefaultMaxDimension unless WithMaxDimension is given), and both operands
//	must be exactly n×n. Validation happens before any arithmetic.
//
// Concurrency:
//
//	With WithParallel, the seven sub-products of the top levels run as an
//	errgroup fork-join. Each task builds its own argument matrices from
//	read-only quadrant views, so no writable storage is shared. The first
//	error cancels the group and every pending recursive call returns early.
//
// Usage:
//
//	c, err := strassen.Multiply[int64](a, b, 8)
//	c, err := strassen.MultiplyContext[int64](ctx, a, b, 64,
//	    strassen.WithMaxDimension(64), strassen.WithParallel())
//
// See also: matrix.Mul (the classical reference product) and MultiplyNaive.
package strassen
