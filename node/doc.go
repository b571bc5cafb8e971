// SPDX-License-Identifier: MIT
// Package: tricks/node

// Package node holds two small records used to contrast plain data with a
// record that knows how to describe itself and can be invoked like a function.
//
// 🚀 What is in here?
//
//	• Node — a labeled pair (P, Q) with defaults P=1, Q=4.
//	  Built with functional options, so every field is optional and named:
//	    node.New()                        // (1, 4)
//	    node.New(node.WithP(9))           // (9, 4)
//	    node.New(node.WithQ(5), node.WithP(4)) // (4, 5)
//	    node.Of(0, 0)                     // positional form
//	• Dumb — an empty record with no String method; fmt and spew fall back to
//	  their default rendering.
//
// ✨ Callable records:
//
//	Go has no call operator overloading. A Node exposes Call(a, b) and hands
//	out the same behaviour as a closure via Func(), which can be stored in any
//	variable or table of type Binary.
//
//	n := node.New()
//	p, q := n.Call(7, 8) // (8, 12)
//	f := n.Func()
//	p, q = f(7, 8)       // (8, 12)
//
// Complexity: every operation is O(1) time and memory.
package node
