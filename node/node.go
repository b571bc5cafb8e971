// SPDX-License-Identifier: MIT
// Package: tricks/node
//
// node.go — construction, rendering and invocation of Node.

package node

import "fmt"

// New builds a Node from the defaults (P=1, Q=4) overridden by opts,
// then runs any WithOnCreate hooks.
//
// Example:
//
//	n := New(WithQ(99)) // P=1, Q=99
func New(opts ...Option) *Node {
	cfg := newConfig(opts...)
	n := &Node{P: cfg.p, Q: cfg.q}
	for _, hook := range cfg.onCreate {
		hook(n)
	}

	return n
}

// Of is the positional form of New: Of(p, q) == New(WithP(p), WithQ(q), opts...).
func Of(p, q int, opts ...Option) *Node {
	return New(append([]Option{WithP(p), WithQ(q)}, opts...)...)
}

// String renders the node for humans.
func (n *Node) String() string {
	return fmt.Sprintf("Node object with p=%d, and q=%d", n.P, n.Q)
}

// Call adds the stored fields to the arguments: (a+P, b+Q).
func (n *Node) Call(a, b int) (int, int) {
	return a + n.P, b + n.Q
}

// Func returns Call as a standalone closure bound to a copy of n.
func (n *Node) Func() Binary {
	p, q := n.P, n.Q

	return func(a, b int) (int, int) {
		return a + p, b + q
	}
}

// NewDumb returns an empty record.
func NewDumb() *Dumb {
	return &Dumb{}
}
