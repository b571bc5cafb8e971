// SPDX-License-Identifier: MIT
// Package: tricks/fib
//
// errors.go — sentinel errors for the fib package.

package fib

import "errors"

var (
	// ErrNegativeCount indicates a negative length was requested.
	ErrNegativeCount = errors.New("fib: count must be >= 0")

	// ErrOverflow indicates the request needs a value past the uint64 range.
	ErrOverflow = errors.New("fib: value exceeds uint64 range")
)
