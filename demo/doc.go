// SPDX-License-Identifier: MIT
// Package: tricks/demo

// Package demo strings the node, fib and ops packages together into an
// ordered console walkthrough.
//
// Each Section writes plain text to an io.Writer. A Runner executes the
// chosen sections in their canonical order (class, generators, pointers) and,
// between sections, prints "Press Enter for next demo" and blocks on one
// line of input unless pausing is disabled.
package demo
