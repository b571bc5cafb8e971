// SPDX-License-Identifier: MIT
// Package: tricks/ops

package ops

import "errors"

var (
	// ErrDivideByZero is returned by Divide for a zero denominator.
	ErrDivideByZero = errors.New("ops: division by zero")

	// ErrBadSize indicates an empty table, empty pair list or n < 1.
	ErrBadSize = errors.New("ops: invalid size")

	// ErrNilOp indicates a table entry without a function.
	ErrNilOp = errors.New("ops: nil operation")
)
