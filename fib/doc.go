// SPDX-License-Identifier: MIT
// Package: tricks/fib

// Package fib produces the Fibonacci sequence 0, 1, 1, 2, 3, 5, … two ways.
//
// Eager:
//
//	Slice(n) materializes the first n values. The caller must know n up
//	front and pays O(n) memory; asking for the 11th value after Slice(10)
//	means building the slice again.
//
// Lazy:
//
//	Generator and Seq hand out one value per pull with O(1) state and no
//	upper bound chosen in advance. Iteration stops when the consumer stops
//	(break, threshold reached) or when the next value would not fit in a
//	uint64. BigSeq drops even that limit by switching to math/big.
//
//	for v := range fib.Seq() {
//		if v > 2016 {
//			fmt.Println(v) // 2584
//			break
//		}
//	}
//
// For every n in [0, MaxCount], pulling n values from a fresh Generator
// yields exactly Slice(n).
package fib
