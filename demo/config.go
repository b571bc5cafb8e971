// SPDX-License-Identifier: MIT
// Package: tricks/demo
//
// config.go — section parameters and their validation.

package demo

import (
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// Config parameterizes the sections.
type Config struct {
	// FibCount is how many values the generators section pulls. One more is
	// pulled lazily afterwards, so the ceiling is one below fib.MaxCount.
	FibCount int `mapstructure:"fib-count" yaml:"fib-count" validate:"min=1,max=93"`
	// Threshold is the bound for the "first value above" search.
	Threshold uint64 `mapstructure:"threshold" yaml:"threshold" validate:"lt=12200160415121876738"`
	// PairCount is the number of (i, i*Scale) pairs fed to the dispatch table.
	PairCount int `mapstructure:"pairs" yaml:"pairs" validate:"min=1,max=1000"`
	// Scale multiplies i to form the second member of each pair.
	Scale float64 `mapstructure:"scale" yaml:"scale" validate:"gt=0"`
}

// DefaultConfig reproduces the classic walkthrough: 10 values, threshold
// 2016, pairs (1,10)…(9,90).
func DefaultConfig() Config {
	return Config{
		FibCount:  10,
		Threshold: 2016,
		PairCount: 9,
		Scale:     10,
	}
}

var validate = validator.New()

// Validate checks field ranges.
func (c Config) Validate() error {
	return errors.Wrap(validate.Struct(c), "demo config")
}
