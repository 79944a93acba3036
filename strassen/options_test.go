// SPDX-License-Identifier: MIT

package strassen_test

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/strassen/strassen"
)

func TestOptionPanics(t *testing.T) {
	for _, n := range []int{0, -1, 3, 24} {
		assert.Panics(t, func() { strassen.WithMaxDimension(n) }, "n=%d", n)
	}
	assert.NotPanics(t, func() { strassen.WithMaxDimension(1) })

	assert.Panics(t, func() { strassen.WithParallelDepth(0) })
	assert.Panics(t, func() { strassen.WithLogger(nil) })
}

func TestNilOptionIgnored(t *testing.T) {
	a, b := randomPair(t, 2, 10, 1)
	_, err := strassen.Multiply[int64](a, b, 2, nil)
	require.NoError(t, err)
}

func TestMaxDimensionLowered(t *testing.T) {
	a, b := randomPair(t, 4, 10, 1)
	_, err := strassen.Multiply[int64](a, b, 4, strassen.WithMaxDimension(2))
	require.ErrorIs(t, err, strassen.ErrInvalidDimension)
}

// TestWithLogger checks that an injected logger receives Debug traces.
func TestWithLogger(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	a, b := randomPair(t, 4, 10, 2)
	_, err := strassen.Multiply[int64](a, b, 4, strassen.WithLogger(logger))
	require.NoError(t, err)

	entries := hook.AllEntries()
	require.NotEmpty(t, entries)
	first := entries[0]
	assert.Equal(t, logrus.DebugLevel, first.Level)
	assert.Equal(t, "strassen: multiply start (parallel=false depth=1)", first.Message)
	assert.Equal(t, 4, first.Data["n"])

	// One split at n=4, seven base cases, one recombination.
	var bases int
	for _, e := range entries {
		if e.Data["n"] == 2 {
			bases++
		}
	}
	assert.Equal(t, 7, bases)

	// Info level suppresses the traces.
	hook.Reset()
	logger.SetLevel(logrus.InfoLevel)
	_, err = strassen.Multiply[int64](a, b, 4, strassen.WithLogger(logger))
	require.NoError(t, err)
	assert.Empty(t, hook.AllEntries())
}

// TestLoggerBelowDebug checks that a logger filtering out Debug costs nothing
// on the recursion path, and that an *logrus.Entry at Debug still traces.
func TestLoggerBelowDebug(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.WarnLevel)
	entry := logrus.NewEntry(logger).WithField("run_id", "x")

	a, b := randomPair(t, 8, 10, 3)
	allocs := func(opts ...strassen.Option) float64 {
		return testing.AllocsPerRun(10, func() {
			_, _ = strassen.Multiply[int64](a, b, 8, opts...)
		})
	}
	assert.Equal(t, allocs(strassen.WithSequential()), allocs(strassen.WithLogger(entry)))
	assert.Empty(t, hook.AllEntries())

	logger.SetLevel(logrus.DebugLevel)
	_, err := strassen.Multiply[int64](a, b, 8, strassen.WithLogger(entry))
	require.NoError(t, err)
	require.NotEmpty(t, hook.AllEntries())
	assert.Equal(t, "x", hook.LastEntry().Data["run_id"])
}
