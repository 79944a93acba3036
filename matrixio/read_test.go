// SPDX-License-Identifier: MIT

package matrixio_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/strassen/matrix"
	"github.com/katalvlaran/strassen/matrixio"
)

func TestReadBasic(t *testing.T) {
	m, err := matrixio.Read[int64](strings.NewReader("1 2\n3 4\n"), 2)
	require.NoError(t, err)
	require.Equal(t, [][]int64{{1, 2}, {3, 4}}, m.ToRows())
}

// TestReadLayout covers extra tokens, extra lines, short rows, blank lines
// and mixed whitespace.
func TestReadLayout(t *testing.T) {
	cases := []struct {
		name  string
		input string
		n     int
		want  [][]int32
	}{
		{"extra tokens and lines", "1 2 9\n3 4 9\n9 9 9\n", 2, [][]int32{{1, 2}, {3, 4}}},
		{"short row", "1\n3 4\n", 2, [][]int32{{1, 0}, {3, 4}}},
		{"missing lines", "5 6\n", 2, [][]int32{{5, 6}, {0, 0}}},
		{"blank line is a zero row", "\n7 8\n", 2, [][]int32{{0, 0}, {7, 8}}},
		{"tabs and CRLF", "1\t2\r\n  3   4\r\n", 2, [][]int32{{1, 2}, {3, 4}}},
		{"empty input", "", 1, [][]int32{{0}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m, err := matrixio.Read[int32](strings.NewReader(tc.input), tc.n)
			require.NoError(t, err)
			assert.Equal(t, tc.want, m.ToRows())
		})
	}
}

func TestReadNegative(t *testing.T) {
	_, err := matrixio.Read[int64](strings.NewReader("1 2\n3 -4\n"), 2)
	require.ErrorIs(t, err, matrixio.ErrMatrixFormat)
	require.ErrorIs(t, err, matrixio.ErrNegativeElement)

	var fe *matrixio.FormatError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, 2, fe.Line)
	assert.Equal(t, 2, fe.Col)
	assert.Equal(t, "-4", fe.Token)

	// A negative token past column n is ignored.
	_, err = matrixio.Read[int64](strings.NewReader("1 -2\n"), 1)
	require.NoError(t, err)
}

func TestReadBadToken(t *testing.T) {
	for _, in := range []string{"1 x\n", "1 2.5\n", "1 0x10\n"} {
		_, err := matrixio.Read[int64](strings.NewReader(in), 2)
		require.ErrorIs(t, err, matrixio.ErrBadToken, in)
		require.ErrorIs(t, err, matrixio.ErrMatrixFormat, in)
	}

	// 128 does not fit int8; a huge negative literal is still "negative".
	_, err := matrixio.Read[int8](strings.NewReader("128"), 1)
	require.ErrorIs(t, err, matrixio.ErrBadToken)
	_, err = matrixio.Read[int8](strings.NewReader("-99999999999999999999"), 1)
	require.ErrorIs(t, err, matrixio.ErrNegativeElement)
	m, err := matrixio.Read[int8](strings.NewReader("127"), 1)
	require.NoError(t, err)
	require.Equal(t, [][]int8{{127}}, m.ToRows())
}

func TestReadInvalidSize(t *testing.T) {
	_, err := matrixio.Read[int64](strings.NewReader("1"), 0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.txt")
	require.NoError(t, os.WriteFile(path, []byte("1 2\n3 4\n"), 0o600))

	m, err := matrixio.ReadFile[int64](path, 2)
	require.NoError(t, err)
	require.Equal(t, [][]int64{{1, 2}, {3, 4}}, m.ToRows())

	_, err = matrixio.ReadFile[int64](filepath.Join(dir, "missing.txt"), 2)
	require.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(dir, "bad.txt")
	require.NoError(t, os.WriteFile(bad, []byte("-1\n"), 0o600))
	_, err = matrixio.ReadFile[int64](bad, 1)
	require.ErrorIs(t, err, matrixio.ErrNegativeElement)
	require.Contains(t, err.Error(), "bad.txt")
}
