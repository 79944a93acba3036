// Package matrixio reads and writes square integer matrices in a plain text
// format and generates random operands for the multipliers.
//
// Text format:
//
//	Each line holds whitespace-separated non-negative integers. For an n×n
//	matrix the first n tokens of the first n lines fill the grid in row-major
//	order. Extra tokens and lines are ignored; cells with no token stay 0.
//	A blank line is a row of zeros.
//
//	    1 2 3 4
//	    5 6 7 8
//
// Errors:
//
//	Every rejected token yields a *FormatError carrying the 1-based line
//	and column and the token text. It matches ErrMatrixFormat and the specific
//	cause (ErrNegativeElement or ErrBadToken) via errors.Is.
//
// Random generation:
//
//	Generator draws entries uniformly from [0, bound). A zero seed selects a
//	fixed default seed, so output is reproducible unless a seed is supplied.
package matrixio
