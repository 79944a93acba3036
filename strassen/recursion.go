// SPDX-License-Identifier: MIT

// Package strassen - recursive case and fork-join.
//
// Both execution modes share one table of operand terms and one table of
// recombination coefficients, so the sequential and parallel paths compute
// exactly the same expressions in the same order.
package strassen

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/strassen/matrix"
)

// products is the number of half-size products per level.
const products = 7

// combineOp selects how a term's two quadrants are combined.
type combineOp uint8

const (
	opNone combineOp = iota // the quadrant itself
	opPlus                  // x + y
	opMinus                 // x - y
)

// term is one operand of an M-product: a quadrant, or the sum or difference
// of two quadrants of the same matrix.
type term struct {
	x, y matrix.Quadrant
	op   combineOp
}

const (
	q00 = matrix.TopLeft
	q01 = matrix.TopRight
	q10 = matrix.BottomLeft
	q11 = matrix.BottomRight
)

// operands lists the (left, right) terms of M1..M7.
var operands = [products][2]term{
	{{q00, q11, opPlus}, {q00, q11, opPlus}},  // M1 = (A00 + A11)(B00 + B11)
	{{q10, q11, opPlus}, {q00, 0, opNone}},    // M2 = (A10 + A11) B00
	{{q00, 0, opNone}, {q01, q11, opMinus}},   // M3 = A00 (B01 - B11)
	{{q11, 0, opNone}, {q10, q00, opMinus}},   // M4 = A11 (B10 - B00)
	{{q00, q01, opPlus}, {q11, 0, opNone}},    // M5 = (A00 + A01) B11
	{{q10, q00, opMinus}, {q00, q01, opPlus}}, // M6 = (A10 - A00)(B00 + B01)
	{{q01, q11, opMinus}, {q10, q11, opPlus}}, // M7 = (A01 - A11)(B10 + B11)
}

// coef is one signed M-term of a result quadrant.
type coef struct {
	m   int // index into M1..M7
	neg bool
}

// recombination lists the result quadrants in matrix.Quadrants order.
var recombination = [4][]coef{
	{{0, false}, {3, false}, {4, true}, {6, false}}, // C00 = M1 + M4 - M5 + M7
	{{2, false}, {4, false}},                        // C01 = M3 + M5
	{{1, false}, {3, false}},                        // C10 = M2 + M4
	{{0, false}, {1, true}, {2, false}, {5, false}}, // C11 = M1 - M2 + M3 + M6
}

// recursion carries the resolved options through one Multiply call.
type recursion[T matrix.Element] struct {
	opts  Options
	trace bool // Debug traces enabled on opts.log
}

// multiply computes a·b for n×n blocks at the given recursion depth.
// It checks ctx on entry so cancelled siblings and descendants stop early.
func (r *recursion[T]) multiply(ctx context.Context, a, b matrix.Splitter[T], n, depth int) (*matrix.Dense[T], error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	switch n {
	case 1:
		return scalarProduct[T](a, b)
	case 2:
		return r.base(a, b, depth)
	}

	var qa, qb [4]*matrix.View[T]
	var err error
	for i, q := range matrix.Quadrants {
		if qa[i], err = a.Quadrant(q); err != nil {
			return nil, err
		}
		if qb[i], err = b.Quadrant(q); err != nil {
			return nil, err
		}
	}
	r.debugf(n, depth, "strassen: split into %d×%d quadrants", n/2, n/2)

	var ms [products]*matrix.Dense[T]
	if r.opts.parallel && depth < r.opts.parallelDepth {
		err = r.forkJoin(ctx, &qa, &qb, &ms, n, depth)
	} else {
		for i := 0; i < products; i++ {
			if ms[i], err = r.product(ctx, &qa, &qb, i, n, depth); err != nil {
				break
			}
		}
	}
	if err != nil {
		return nil, err
	}

	return r.recombine(&ms, n, depth)
}

// product builds the operands of M(i+1) and multiplies them one level down.
func (r *recursion[T]) product(ctx context.Context, qa, qb *[4]*matrix.View[T], i, n, depth int) (*matrix.Dense[T], error) {
	left, err := evalTerm(qa, operands[i][0])
	if err != nil {
		return nil, fmt.Errorf("M%d(n=%d): %w", i+1, n, err)
	}
	right, err := evalTerm(qb, operands[i][1])
	if err != nil {
		return nil, fmt.Errorf("M%d(n=%d): %w", i+1, n, err)
	}
	m, err := r.multiply(ctx, left, right, n/2, depth+1)
	if err != nil {
		return nil, fmt.Errorf("M%d(n=%d): %w", i+1, n, err)
	}

	return m, nil
}

// forkJoin runs the seven products as an errgroup. Each task writes only its
// own slot of ms. The first failure cancels gctx; Wait returns that failure.
func (r *recursion[T]) forkJoin(ctx context.Context, qa, qb *[4]*matrix.View[T], ms *[products]*matrix.Dense[T], n, depth int) error {
	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < products; i++ {
		g.Go(func() error {
			m, err := r.product(gctx, qa, qb, i, n, depth)
			if err != nil {
				return err
			}
			ms[i] = m

			return nil
		})
	}
	r.debugf(n, depth, "strassen: forked %d products", products)

	return g.Wait()
}

// recombine forms the four result quadrants from M1..M7 and assembles them.
func (r *recursion[T]) recombine(ms *[products]*matrix.Dense[T], n, depth int) (*matrix.Dense[T], error) {
	var qs [4]matrix.Matrix[T]
	for qi, terms := range recombination {
		acc := ms[terms[0].m]
		var err error
		for _, t := range terms[1:] {
			if t.neg {
				acc, err = matrix.Sub[T](acc, ms[t.m])
			} else {
				acc, err = matrix.Add[T](acc, ms[t.m])
			}
			if err != nil {
				return nil, fmt.Errorf("Q%d(n=%d): %w", qi+1, n, err)
			}
		}
		qs[qi] = acc
	}
	r.debugf(n, depth, "strassen: recombined")

	return matrix.Assemble(qs[0], qs[1], qs[2], qs[3])
}

// evalTerm materializes one operand term over the quadrants of a block.
func evalTerm[T matrix.Element](q *[4]*matrix.View[T], t term) (matrix.Splitter[T], error) {
	switch t.op {
	case opPlus:
		return matrix.Add[T](q[t.x], q[t.y])
	case opMinus:
		return matrix.Sub[T](q[t.x], q[t.y])
	default:
		return q[t.x], nil
	}
}

// debugf emits a Debug trace tagged with the block size and depth when the
// injected logger accepts Debug.
func (r *recursion[T]) debugf(n, depth int, format string, args ...interface{}) {
	if !r.trace {
		return
	}
	r.opts.log.WithFields(logrus.Fields{"n": n, "depth": depth}).Debugf(format, args...)
}

// debugEnabled reports whether l would emit Debug entries. Loggers other than
// *logrus.Logger and *logrus.Entry cannot be asked and are assumed enabled.
func debugEnabled(l logrus.FieldLogger) bool {
	switch x := l.(type) {
	case nil:
		return false
	case *logrus.Logger:
		return x.IsLevelEnabled(logrus.DebugLevel)
	case *logrus.Entry:
		return x.Logger.IsLevelEnabled(logrus.DebugLevel)
	}

	return true
}
