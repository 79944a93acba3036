// SPDX-License-Identifier: MIT

package strassen

import (
	"fmt"

	"github.com/katalvlaran/strassen/checked"
	"github.com/katalvlaran/strassen/matrix"
)

// scalarProduct multiplies two 1×1 blocks.
func scalarProduct[T matrix.Element](a, b matrix.Matrix[T]) (*matrix.Dense[T], error) {
	x, err := a.At(0, 0)
	if err != nil {
		return nil, err
	}
	y, err := b.At(0, 0)
	if err != nil {
		return nil, err
	}
	p, err := checked.Mul(x, y)
	if err != nil {
		return nil, err
	}

	return matrix.FromRows([][]T{{p}})
}

// base computes a 2×2 product with the seven scalar Strassen products,
// evaluating the same operand and recombination tables as the recursive case.
func (r *recursion[T]) base(a, b matrix.Matrix[T], depth int) (*matrix.Dense[T], error) {
	qa, err := entries(a)
	if err != nil {
		return nil, err
	}
	qb, err := entries(b)
	if err != nil {
		return nil, err
	}

	var ms [products]T
	var x, y T
	for i := 0; i < products; i++ {
		if x, err = evalScalar(&qa, operands[i][0]); err == nil {
			if y, err = evalScalar(&qb, operands[i][1]); err == nil {
				ms[i], err = checked.Mul(x, y)
			}
		}
		if err != nil {
			return nil, fmt.Errorf("M%d(n=2): %w", i+1, err)
		}
	}

	var cs [4]T
	for qi, terms := range recombination {
		acc := ms[terms[0].m]
		for _, t := range terms[1:] {
			if t.neg {
				acc, err = checked.Sub(acc, ms[t.m])
			} else {
				acc, err = checked.Add(acc, ms[t.m])
			}
			if err != nil {
				return nil, fmt.Errorf("Q%d(n=2): %w", qi+1, err)
			}
		}
		cs[qi] = acc
	}
	if r.trace { // skip boxing the arrays on the hot path
		r.debugf(2, depth, "strassen: base M=%v C=%v", ms, cs)
	}

	return matrix.FromRows([][]T{{cs[0], cs[1]}, {cs[2], cs[3]}})
}

// entries reads a 2×2 block in matrix.Quadrants order.
func entries[T matrix.Element](m matrix.Matrix[T]) ([4]T, error) {
	var out [4]T
	var err error
	for i := range out {
		if out[i], err = m.At(i/2, i%2); err != nil {
			return out, err
		}
	}

	return out, nil
}

// evalScalar evaluates one operand term over the four entries of a 2×2 block.
func evalScalar[T matrix.Element](e *[4]T, t term) (T, error) {
	switch t.op {
	case opPlus:
		return checked.Add(e[t.x], e[t.y])
	case opMinus:
		return checked.Sub(e[t.x], e[t.y])
	default:
		return e[t.x], nil
	}
}
