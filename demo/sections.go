// SPDX-License-Identifier: MIT
// Package: tricks/demo
//
// sections.go — the walkthrough sections.

package demo

import (
	"fmt"
	"io"

	"github.com/davecgh/go-spew/spew"

	"github.com/katalvlaran/tricks/fib"
	"github.com/katalvlaran/tricks/grid"
	"github.com/katalvlaran/tricks/node"
	"github.com/katalvlaran/tricks/ops"
)

// Section is one step of the walkthrough.
type Section struct {
	Name  string
	Title string
	Run   func(w io.Writer) error
}

// Names lists the section names in the order given.
func Names(sections []Section) []string {
	names := make([]string, len(sections))
	for i, s := range sections {
		names[i] = s.Name
	}

	return names
}

// Section names in canonical order.
const (
	ClassSection      = "class"
	GeneratorsSection = "generators"
	PointersSection   = "pointers"
)

// Sections returns the walkthrough in canonical order, bound to cfg.
func Sections(cfg Config) ([]Section, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return []Section{
		{
			Name:  ClassSection,
			Title: "records with defaults, String and Call",
			Run:   classDemo,
		},
		{
			Name:  GeneratorsSection,
			Title: "eager slice vs. lazy generator",
			Run:   func(w io.Writer) error { return generatorsDemo(w, cfg) },
		},
		{
			Name:  PointersSection,
			Title: "functions as values in a dispatch table",
			Run:   func(w io.Writer) error { return pointersDemo(w, cfg) },
		},
	}, nil
}

// dumper prints pointers and skips Stringer methods so a Dumb record shows
// its raw form.
var dumper = spew.ConfigState{Indent: " ", DisableMethods: true, DisableCapacities: true}

func classDemo(w io.Writer) error {
	announce := node.WithOnCreate(func(*node.Node) {
		fmt.Fprintln(w, "Node object created!")
	})

	dd := node.NewDumb()
	fmt.Fprintln(w, "DumbNode object created!")
	a := node.New(announce)
	b := node.New(node.WithP(9), announce)
	c := node.Of(0, 0, announce)
	d := node.New(node.WithQ(5), node.WithP(4), announce)
	_ = node.New(node.WithQ(99), announce)

	// Dumb has no String method, so only its address and shape are shown.
	dumper.Fdump(w, dd)
	for _, n := range []*node.Node{a, b, c, d} {
		fmt.Fprintln(w, n)
	}
	p, q := a.Call(7, 8)
	_, err := fmt.Fprintf(w, "(%d, %d)\n", p, q)

	return err
}

func generatorsDemo(w io.Writer, cfg Config) error {
	count := cfg.FibCount

	fmt.Fprintln(w, "First Fib")
	p, err := fib.Slice(count)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%T\n", p)
	var num uint64
	for i := 0; i < count; i++ {
		num = p[i]
	}
	// Getting value count+1 from p means calling Slice again.
	fmt.Fprintln(w, num)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Second Fib")
	q := fib.New()
	fmt.Fprintf(w, "%T\n", q)
	for i := 0; i < count; i++ {
		num, _ = q.Next()
	}
	fmt.Fprintln(w, num)
	next, ok := q.Next()
	if !ok {
		return fib.ErrOverflow
	}
	fmt.Fprintln(w, next)
	fmt.Fprintf(w, "(%d values pulled, none stored)\n", q.Count())
	fmt.Fprintln(w)

	above, err := fib.FirstAbove(cfg.Threshold)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, above)

	// One step past the uint64 range.
	i := 0
	for v := range fib.BigSeq() {
		if i == fib.MaxCount {
			_, err = fmt.Fprintf(w, "F(%d) = %s\n", i, v)
			break
		}
		i++
	}

	return err
}

func pointersDemo(w io.Writer, cfg Config) error {
	pairs, err := ops.Pairs(cfg.PairCount, cfg.Scale)
	if err != nil {
		return err
	}
	table := ops.DefaultTable()
	results, err := ops.Apply(table, pairs)
	if err != nil {
		return err
	}
	if _, err = io.WriteString(w, results.String()); err != nil {
		return err
	}
	fmt.Fprintln(w)

	cols := make([]string, len(pairs))
	for j, pr := range pairs {
		cols[j] = fmt.Sprintf("(%g,%g)", pr.A, pr.B)
	}

	if err = grid.Render(w, results, ops.Names(table), cols); err != nil {
		return err
	}

	first := pairs[0]
	for i, op := range table {
		v, err := results.At(i, 0)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s(%g, %g) = %s\n", op.Name, first.A, first.B, grid.FormatValue(v))
	}

	return nil
}
