// SPDX-License-Identifier: MIT
// Package: tricks/node
//
// types.go — record types and the invocation contract.

package node

import "fmt"

// Default field values used when an option is not supplied.
const (
	DefaultP = 1 // first field default
	DefaultQ = 4 // second field default
)

// Binary is the function shape a Node can be turned into:
// two numbers in, two numbers out.
type Binary func(a, b int) (int, int)

// Caller is implemented by values that can be invoked with two numbers.
type Caller interface {
	Call(a, b int) (int, int)
}

// Node is a labeled pair record. Fields are set once by New/Of and never
// changed by this package.
type Node struct {
	P int // first value
	Q int // second value
}

// Node satisfies Caller and fmt.Stringer.
var (
	_ Caller       = (*Node)(nil)
	_ fmt.Stringer = (*Node)(nil)
)

// Dumb carries no data and deliberately has no String method.
type Dumb struct{}
