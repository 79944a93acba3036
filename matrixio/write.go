// SPDX-License-Identifier: MIT

package matrixio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/strassen/matrix"
)

// Write prints m one row per line, each cell followed by a tab.
// Errors: matrix.ErrNilMatrix, a failing At, or the writer's error.
// Complexity: O(r*c).
func Write[T matrix.Element](w io.Writer, m matrix.Matrix[T]) error {
	if err := matrix.ValidateNotNil(m); err != nil {
		return fmt.Errorf("matrixio: Write: %w", err)
	}

	bw := bufio.NewWriter(w)
	buf := make([]byte, 0, 24)
	var i, j int
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			v, err := m.At(i, j)
			if err != nil {
				return fmt.Errorf("matrixio: Write: %w", err)
			}
			buf = strconv.AppendInt(buf[:0], int64(v), 10)
			buf = append(buf, '\t')
			_, _ = bw.Write(buf) // bufio keeps the first error for Flush
		}
		_ = bw.WriteByte('\n')
	}

	return bw.Flush()
}
