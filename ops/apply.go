// SPDX-License-Identifier: MIT
// Package: tricks/ops

package ops

import (
	"fmt"

	"github.com/katalvlaran/tricks/grid"
)

// Pair is one input to a BinaryOp.
type Pair struct {
	A, B float64
}

// Pairs returns (i, i*scale) for i = 1..n.
// Returns ErrBadSize if n < 1.
func Pairs(n int, scale float64) ([]Pair, error) {
	if n < 1 {
		return nil, fmt.Errorf("Pairs(%d): %w", n, ErrBadSize)
	}
	out := make([]Pair, n)
	for i := range out {
		x := float64(i + 1)
		out[i] = Pair{A: x, B: x * scale}
	}

	return out, nil
}

// Apply evaluates every op of table on every pair. Row i of the result holds
// table[i] applied to each pair in order.
//
// Errors:
//   - ErrBadSize if table or pairs is empty.
//   - ErrNilOp if an entry has no function.
//   - any op error, wrapped with the op name and column.
//
// Complexity: O(len(table)·len(pairs)).
func Apply(table []Op, pairs []Pair) (*grid.Dense, error) {
	if len(table) == 0 || len(pairs) == 0 {
		return nil, fmt.Errorf("Apply(%d ops, %d pairs): %w", len(table), len(pairs), ErrBadSize)
	}
	for _, op := range table {
		if op.Fn == nil {
			return nil, fmt.Errorf("Apply: op %q: %w", op.Name, ErrNilOp)
		}
	}

	out, err := grid.NewDense(len(table), len(pairs))
	if err != nil {
		return nil, err
	}
	for i, op := range table {
		for j, p := range pairs {
			v, err := op.Fn(p.A, p.B)
			if err != nil {
				return nil, fmt.Errorf("Apply: %s(%g, %g) at column %d: %w", op.Name, p.A, p.B, j, err)
			}
			if err = out.Set(i, j, v); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}
