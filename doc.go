// SPDX-License-Identifier: MIT
// Package: tricks

// Package tricks is a small, hands-on tour of everyday Go techniques, each
// shown with a runnable demo and a test suite.
//
// 🚀 What is in the box?
//
//	• node/  — a record with defaulted, named construction (functional
//	           options), a String method and a Call method / closure form
//	• fib/   — Fibonacci two ways: eager Slice(n) vs. lazy Generator / Seq
//	• ops/   — arithmetic functions as values in a dispatch table
//	• grid/  — the row-major result grid and its console table
//	• demo/  — the ordered walkthrough with a pause between sections
//
// ✨ Run it:
//
//	go run ./cmd/tricks            # all sections, Enter between them
//	go run ./cmd/tricks --no-pause --section generators
//	go run ./cmd/tricks list
//	go run ./cmd/tricks config --config tricks.yaml
//
// Quick taste:
//
//	for v := range fib.Seq() {
//		if v > 2016 {
//			fmt.Println(v) // 2584
//			break
//		}
//	}
package tricks
