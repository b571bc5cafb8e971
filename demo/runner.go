// SPDX-License-Identifier: MIT
// Package: tricks/demo
//
// runner.go — ordered execution with a pause between sections.

package demo

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"

	"github.com/katalvlaran/tricks/internal/log"
)

// Prompt is printed after every section.
const Prompt = "Press Enter for next demo"

// ErrUnknownSection indicates a section name not present in the runner.
var ErrUnknownSection = errors.New("demo: unknown section")

// Option customizes a Runner.
type Option func(*Runner)

// WithOutput redirects section output. Panics on nil.
func WithOutput(w io.Writer) Option {
	if w == nil {
		panic("demo: WithOutput(nil)")
	}
	return func(r *Runner) { r.out = w }
}

// WithInput sets where the pause prompt reads from. Panics on nil.
func WithInput(in io.Reader) Option {
	if in == nil {
		panic("demo: WithInput(nil)")
	}
	return func(r *Runner) { r.in = bufio.NewReader(in) }
}

// WithPause toggles the blocking read after each section.
func WithPause(pause bool) Option {
	return func(r *Runner) { r.pause = pause }
}

// WithLogger sets the progress logger. Panics on nil.
func WithLogger(l log.Logger) Option {
	if l == nil {
		panic("demo: WithLogger(nil)")
	}
	return func(r *Runner) { r.log = l }
}

// Runner executes sections one after another. It is not safe for
// concurrent use.
type Runner struct {
	sections []Section
	out      io.Writer
	in       *bufio.Reader
	pause    bool
	log      log.Logger

	// pending carries the result of a prompt read abandoned by a cancelled
	// context; the next wait consumes it instead of starting a second reader.
	pending chan error
}

// NewRunner defaults to stdout/stdin with pausing on and logging off.
func NewRunner(sections []Section, opts ...Option) *Runner {
	r := &Runner{
		sections: sections,
		out:      os.Stdout,
		in:       bufio.NewReader(os.Stdin),
		pause:    true,
		log:      log.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Names lists the runner's sections in canonical order.
func (r *Runner) Names() []string {
	return Names(r.sections)
}

// Run executes the named sections, or all of them when names is empty.
// Sections always run in canonical order and at most once, whatever the
// order or repetition of names. The context is checked before each section
// and interrupts the pause prompt.
func (r *Runner) Run(ctx context.Context, names ...string) error {
	selected, err := r.pick(names)
	if err != nil {
		return err
	}

	r.log.Infow("Starting walkthrough", "sections", len(selected), "pause", r.pause)
	for _, s := range selected {
		if err = ctx.Err(); err != nil {
			r.log.Warnw("Walkthrough interrupted", "before", s.Name)
			return errors.Wrapf(err, "before section %s", s.Name)
		}
		r.log.Debugw("Running demo section", "name", s.Name)
		if err = s.Run(r.out); err != nil {
			r.log.Errorw("Demo section failed", "name", s.Name, "err", err)
			return errors.Wrapf(err, "section %s", s.Name)
		}
		if err = r.wait(ctx); err != nil {
			if ctx.Err() != nil {
				r.log.Warnw("Walkthrough interrupted", "after", s.Name)
			}
			return errors.Wrapf(err, "after section %s", s.Name)
		}
		r.log.Debugw("Finished demo section", "name", s.Name)
	}
	r.log.Infow("Walkthrough finished", "sections", len(selected))

	return nil
}

func (r *Runner) pick(names []string) ([]Section, error) {
	if len(names) == 0 {
		return r.sections, nil
	}
	want := make(map[string]bool, len(names))
	for _, n := range names {
		want[n] = true
	}
	out := make([]Section, 0, len(want))
	for _, s := range r.sections {
		if want[s.Name] {
			out = append(out, s)
			delete(want, s.Name)
		}
	}
	for _, n := range names {
		if want[n] {
			return nil, errors.Wrapf(ErrUnknownSection, "%q", n)
		}
	}

	return out, nil
}

// wait prints the prompt and, when pausing, consumes one line or returns
// ctx.Err() once ctx is done. EOF counts as Enter.
func (r *Runner) wait(ctx context.Context) error {
	if _, err := fmt.Fprintf(r.out, "\n%s\n", Prompt); err != nil {
		return err
	}
	if !r.pause {
		return nil
	}

	if r.pending == nil {
		done := make(chan error, 1)
		r.pending = done
		go func() {
			_, err := r.in.ReadString('\n')
			done <- err
		}()
	}
	select {
	case err := <-r.pending:
		r.pending = nil
		if err != nil && err != io.EOF {
			return err
		}
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
