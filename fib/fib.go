// SPDX-License-Identifier: MIT
// Package: tricks/fib
//
// fib.go — eager and lazy Fibonacci producers.

package fib

import (
	"fmt"
	"iter"
	"math/big"
)

// MaxCount is the longest prefix whose last element, F(93), fits in uint64.
const MaxCount = 94

// Slice returns the first n Fibonacci numbers, starting 0, 1.
//
// Errors:
//   - ErrNegativeCount if n < 0.
//   - ErrOverflow if n > MaxCount.
//
// Complexity: O(n) time, O(n) memory.
func Slice(n int) ([]uint64, error) {
	if n < 0 {
		return nil, fmt.Errorf("Slice(%d): %w", n, ErrNegativeCount)
	}
	if n > MaxCount {
		return nil, fmt.Errorf("Slice(%d): %w", n, ErrOverflow)
	}

	out := make([]uint64, n)
	if n > 1 {
		out[1] = 1
	}
	for i := 2; i < n; i++ {
		out[i] = out[i-1] + out[i-2]
	}

	return out, nil
}

// Generator pulls Fibonacci numbers one at a time.
// A Generator is not safe for concurrent use; create one per consumer.
type Generator struct {
	cur, next uint64 // F(count), F(count+1)
	count     int    // values handed out so far
}

// New returns a Generator positioned at F(0).
// Complexity: O(1).
func New() *Generator {
	return &Generator{cur: 0, next: 1}
}

// HasNext reports whether another value fits in uint64.
// Complexity: O(1).
func (g *Generator) HasNext() bool {
	return g.count < MaxCount
}

// Next returns the next value and true, or 0 and false once the uint64
// range is exhausted.
// Complexity: O(1).
func (g *Generator) Next() (uint64, bool) {
	if !g.HasNext() {
		return 0, false
	}
	v := g.cur
	// next wraps on the final step; it is never returned.
	g.cur, g.next = g.next, g.cur+g.next
	g.count++

	return v, true
}

// Count reports how many values Next has produced.
// Complexity: O(1).
func (g *Generator) Count() int {
	return g.count
}

// Seq returns the sequence as a range-over-func iterator. Each call starts
// a fresh sequence.
// Complexity: O(1) per value, O(1) memory.
func Seq() iter.Seq[uint64] {
	return func(yield func(uint64) bool) {
		g := New()
		for {
			v, ok := g.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// FirstAbove returns the smallest Fibonacci number strictly greater than
// threshold, or ErrOverflow when no uint64 value qualifies.
// Complexity: O(log threshold) pulls, since the sequence grows geometrically.
func FirstAbove(threshold uint64) (uint64, error) {
	for v := range Seq() {
		if v > threshold {
			return v, nil
		}
	}

	return 0, fmt.Errorf("FirstAbove(%d): %w", threshold, ErrOverflow)
}

// BigSeq is the unbounded form of Seq. Yielded values are fresh copies the
// consumer may keep or modify.
// Complexity: O(k) per value, where k is the value's bit length.
func BigSeq() iter.Seq[*big.Int] {
	return func(yield func(*big.Int) bool) {
		a, b := big.NewInt(0), big.NewInt(1)
		for {
			if !yield(new(big.Int).Set(a)) {
				return
			}
			a.Add(a, b)
			a, b = b, a
		}
	}
}
