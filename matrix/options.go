// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for constructors.
//
// The only knob is the value source used by New to fill cells. One source is
// shared by every row of a matrix, so a seeded matrix is reproducible as a
// whole, not just row by row.

package matrix

import "github.com/katalvlaran/vecmat/vector"

const panicNilSource = "matrix: WithSource: source must not be nil"

// Option mutates Options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective constructor configuration. Fields are
// unexported; callers go through the WithX setters.
type Options struct {
	src vector.Source // nil ⇒ vector.DefaultSource()
}

// WithSource fills cells from src. A nil src panics (programmer error).
func WithSource(src vector.Source) Option {
	if src == nil {
		panic(panicNilSource)
	}

	return func(o *Options) { o.src = src }
}

// WithSeed fills cells from a deterministic stream; see vector.NewSource.
func WithSeed(seed int64) Option {
	return WithSource(vector.NewSource(seed))
}

// gatherOptions applies opts in order over the defaults.
func gatherOptions(opts ...Option) Options {
	o := Options{}
	for _, fn := range opts {
		fn(&o)
	}
	if o.src == nil {
		o.src = vector.DefaultSource()
	}

	return o
}
