// SPDX-License-Identifier: MIT
// Package: tricks/ops

package ops

// BinaryOp combines two numbers.
type BinaryOp func(a, b float64) (float64, error)

// Op is a named table entry.
type Op struct {
	Name string
	Fn   BinaryOp
}

// Add returns a+b.
func Add(a, b float64) (float64, error) { return a + b, nil }

// Subtract returns a-b.
func Subtract(a, b float64) (float64, error) { return a - b, nil }

// Multiply returns a*b.
func Multiply(a, b float64) (float64, error) { return a * b, nil }

// Divide returns a/b, or ErrDivideByZero when b is zero (either sign).
func Divide(a, b float64) (float64, error) {
	if b == 0 {
		return 0, ErrDivideByZero
	}

	return a / b, nil
}

// DefaultTable returns add, subtract, multiply, divide in that order.
// The slice is freshly allocated on each call.
func DefaultTable() []Op {
	return []Op{
		{Name: "add", Fn: Add},
		{Name: "subtract", Fn: Subtract},
		{Name: "multiply", Fn: Multiply},
		{Name: "divide", Fn: Divide},
	}
}

// Names lists the op names of table, in order.
func Names(table []Op) []string {
	names := make([]string, len(table))
	for i, op := range table {
		names[i] = op.Name
	}

	return names
}
