// SPDX-License-Identifier: MIT

// Package strassen: functional configuration for the multipliers.
//
// Defaults:
//   - DefaultMaxDimension bounds n (the reference capacity is 16×16).
//   - Sequential execution; parallel fork-join is opt-in.
//   - No logging unless a logger is injected.
package strassen

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/strassen/matrix"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultMaxDimension is the largest n accepted without WithMaxDimension.
	DefaultMaxDimension = 16

	// DefaultParallel controls whether the seven sub-products run concurrently.
	DefaultParallel = false

	// DefaultParallelDepth is the number of recursion levels that fork when
	// parallel execution is enabled. Depth 1 runs up to 7 goroutines, depth 2
	// up to 49.
	DefaultParallelDepth = 1
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicMaxDimensionInvalid  = "strassen: WithMaxDimension: n must be a power of two >= 1, got %d"
	panicParallelDepthInvalid = "strassen: WithParallelDepth: depth must be >= 1, got %d"
	panicLoggerNil            = "strassen: WithLogger(nil)"
)

// Option mutates Options. Constructors panic only on nonsensical values
// (programmer error); they never fail at call time.
type Option func(*Options)

// Options holds the effective configuration after applying Option setters.
// Fields are unexported; entry points resolve them via gatherOptions.
type Options struct {
	maxDimension  int                // power of two; DefaultMaxDimension
	parallel      bool               // DefaultParallel
	parallelDepth int                // >= 1; DefaultParallelDepth
	log           logrus.FieldLogger // nil disables tracing
}

// WithMaxDimension raises (or lowers) the largest accepted n.
// Panics unless n is a power of two >= 1.
func WithMaxDimension(n int) Option {
	if !matrix.IsPowerOfTwo(n) {
		panic(fmt.Sprintf(panicMaxDimensionInvalid, n))
	}

	return func(o *Options) { o.maxDimension = n }
}

// WithParallel runs the seven sub-products of the top recursion levels as an
// errgroup fork-join. See WithParallelDepth.
func WithParallel() Option {
	return func(o *Options) { o.parallel = true }
}

// WithSequential restores the default single-goroutine recursion.
func WithSequential() Option {
	return func(o *Options) { o.parallel = false }
}

// WithParallelDepth sets how many recursion levels fork when parallel
// execution is enabled. It has no effect without WithParallel.
// Panics when depth < 1.
func WithParallelDepth(depth int) Option {
	if depth < 1 {
		panic(fmt.Sprintf(panicParallelDepthInvalid, depth))
	}

	return func(o *Options) { o.parallelDepth = depth }
}

// WithLogger injects a logger that receives Debug-level traces of the
// recursion (splits, base-case products, recombination).
// Panics on a nil logger.
func WithLogger(l logrus.FieldLogger) Option {
	if l == nil {
		panic(panicLoggerNil)
	}

	return func(o *Options) { o.log = l }
}

// defaultOptions returns Options populated with the documented defaults.
func defaultOptions() Options {
	return Options{
		maxDimension:  DefaultMaxDimension,
		parallel:      DefaultParallel,
		parallelDepth: DefaultParallelDepth,
	}
}

// gatherOptions applies opts left to right on top of the defaults.
// Later options win.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
