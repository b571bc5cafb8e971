// SPDX-License-Identifier: MIT
// Package: tricks/node
//
// options.go — functional options for Node construction.
//
// Contract:
//   • Options are applied in the order given; later options override earlier.
//   • Option constructors PANIC on meaningless input (nil hooks).
//   • Field options accept any int, including zero and negatives.

package node

// Option customizes a Node under construction.
type Option func(*config)

// config is the resolved set of construction knobs.
type config struct {
	p, q     int
	onCreate []func(*Node)
}

// newConfig starts from the defaults and applies opts in order.
// Complexity: O(len(opts)).
func newConfig(opts ...Option) config {
	cfg := config{p: DefaultP, q: DefaultQ}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithP sets the first field.
func WithP(p int) Option {
	return func(c *config) {
		c.p = p
	}
}

// WithQ sets the second field.
func WithQ(q int) Option {
	return func(c *config) {
		c.q = q
	}
}

// WithOnCreate registers a hook that receives the finished Node.
// Multiple hooks run in registration order. Panics on nil.
func WithOnCreate(fn func(*Node)) Option {
	if fn == nil {
		panic("node: WithOnCreate(nil)")
	}
	return func(c *config) {
		c.onCreate = append(c.onCreate, fn)
	}
}
