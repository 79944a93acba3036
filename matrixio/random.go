// SPDX-License-Identifier: MIT

// Package matrixio - deterministic random operands.
//
// Concurrency:
//   - A Generator wraps a math/rand.Rand and is NOT goroutine-safe.
package matrixio

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/strassen/checked"
	"github.com/katalvlaran/strassen/matrix"
)

const (
	// DefaultUpperBound is the exclusive upper bound of generated entries.
	DefaultUpperBound int64 = 100

	// defaultSeed is used when callers pass seed == 0.
	defaultSeed int64 = 1
)

const panicUpperBoundInvalid = "matrixio: WithUpperBound: bound must be >= 1, got %d"

// RandomOption configures a Generator.
type RandomOption func(*randomOptions)

type randomOptions struct {
	seed  int64
	bound int64
}

// WithSeed fixes the random stream. Zero selects the default seed.
func WithSeed(seed int64) RandomOption {
	return func(o *randomOptions) { o.seed = seed }
}

// WithUpperBound sets the exclusive upper bound of generated entries.
// Panics when bound < 1.
func WithUpperBound(bound int64) RandomOption {
	if bound < 1 {
		panic(fmt.Sprintf(panicUpperBoundInvalid, bound))
	}

	return func(o *randomOptions) { o.bound = bound }
}

// Generator produces matrices whose entries are drawn uniformly from [0, bound).
// Successive calls continue the same stream, so two matrices drawn from one
// Generator differ.
type Generator struct {
	rng   *rand.Rand
	bound int64
}

// NewGenerator returns a Generator configured by opts.
func NewGenerator(opts ...RandomOption) *Generator {
	o := randomOptions{seed: 0, bound: DefaultUpperBound}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}
	seed := o.seed
	if seed == 0 {
		seed = defaultSeed
	}

	return &Generator{rng: rand.New(rand.NewSource(seed)), bound: o.bound}
}

// Fill draws the next n×n matrix from g in row-major order.
// Errors: matrix.ErrInvalidDimensions (n <= 0), ErrBoundTooLarge when bound-1
// does not fit T.
// Complexity: O(n²).
func Fill[T matrix.Element](g *Generator, n int) (*matrix.Dense[T], error) {
	if g.bound-1 > int64(checked.Max[T]()) {
		return nil, fmt.Errorf("%w: %d", ErrBoundTooLarge, g.bound)
	}
	m, err := matrix.NewSquare[T](n)
	if err != nil {
		return nil, fmt.Errorf("matrixio: Fill(n=%d): %w", n, err)
	}
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			_ = m.Set(i, j, T(g.rng.Int63n(g.bound)))
		}
	}

	return m, nil
}

// Random is Fill on a fresh Generator built from opts.
func Random[T matrix.Element](n int, opts ...RandomOption) (*matrix.Dense[T], error) {
	return Fill[T](NewGenerator(opts...), n)
}
