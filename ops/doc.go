// SPDX-License-Identifier: MIT
// Package: tricks/ops

// Package ops treats arithmetic functions as values: a fixed table of binary
// operations is applied uniformly to a list of number pairs, producing one
// result row per operation.
//
//	pairs, _ := ops.Pairs(9, 10)                // (1,10) … (9,90)
//	g, _ := ops.Apply(ops.DefaultTable(), pairs) // 4×9 grid
//
// Division by zero is reported as ErrDivideByZero; no operation in this
// package produces NaN or ±Inf from finite inputs.
package ops
