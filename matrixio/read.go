// SPDX-License-Identifier: MIT

package matrixio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/strassen/checked"
	"github.com/katalvlaran/strassen/matrix"
)

// maxLineBytes bounds a single input line.
const maxLineBytes = 1 << 20

// Read parses an n×n matrix from r.
//
// Implementation:
//   - Stage 1: allocate a zero n×n Dense (ErrInvalidDimensions for n <= 0).
//   - Stage 2: scan at most n lines; split each on whitespace and parse its first
//     n tokens as base-10 integers.
//   - Stage 3: reject negatives and tokens outside the range of T with a
//     *FormatError naming line and column.
//
// Errors:
//   - matrix.ErrInvalidDimensions, *FormatError, or the reader's own error.
//
// Complexity:
//   - Time O(input), Space O(n²).
func Read[T matrix.Element](r io.Reader, n int) (*matrix.Dense[T], error) {
	m, err := matrix.NewSquare[T](n)
	if err != nil {
		return nil, fmt.Errorf("matrixio: Read(n=%d): %w", n, err)
	}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), maxLineBytes)

	var (
		row, col int
		fields   []string
		v        T
	)
	for row = 0; row < n && sc.Scan(); row++ {
		fields = strings.Fields(sc.Text())
		for col = 0; col < n && col < len(fields); col++ {
			if v, err = parseElement[T](fields[col]); err != nil {
				return nil, &FormatError{Line: row + 1, Col: col + 1, Token: fields[col], Err: err}
			}
			_ = m.Set(row, col, v) // in range by construction
		}
	}
	if err = sc.Err(); err != nil {
		return nil, fmt.Errorf("matrixio: Read: %w", err)
	}

	return m, nil
}

// ReadFile opens path and parses an n×n matrix from it with Read.
func ReadFile[T matrix.Element](path string, n int) (*matrix.Dense[T], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("matrixio: %w", err)
	}
	defer f.Close()

	m, err := Read[T](f, n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return m, nil
}

// parseElement converts one token into a non-negative T.
func parseElement[T matrix.Element](tok string) (T, error) {
	v, err := strconv.ParseInt(tok, 10, 64)
	if err != nil {
		var ne *strconv.NumError
		if errors.As(err, &ne) && errors.Is(ne.Err, strconv.ErrRange) && strings.HasPrefix(tok, "-") {
			return 0, ErrNegativeElement
		}

		return 0, fmt.Errorf("%w: %w", ErrBadToken, err)
	}
	if v < 0 {
		return 0, ErrNegativeElement
	}
	if v > int64(checked.Max[T]()) {
		return 0, fmt.Errorf("%w: %w", ErrBadToken, strconv.ErrRange)
	}

	return T(v), nil
}
