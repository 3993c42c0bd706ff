// SPDX-License-Identifier: MIT

package vector

const panicNilSource = "vector: WithSource: source must not be nil"

// Option configures a constructor. Options are applied in order; the last
// one touching a field wins.
type Option func(*Options)

// Options holds the resolved constructor configuration.
type Options struct {
	src Source // value source for New; DefaultSource() when unset
}

// WithSource makes New draw values from src. A nil src is a programmer error
// and panics.
func WithSource(src Source) Option {
	if src == nil {
		panic(panicNilSource)
	}

	return func(o *Options) { o.src = src }
}

// WithSeed is shorthand for WithSource(NewSource(seed)).
func WithSeed(seed int64) Option {
	return WithSource(NewSource(seed))
}

// gatherOptions resolves opts over the defaults.
func gatherOptions(opts ...Option) Options {
	o := Options{}
	for _, fn := range opts {
		fn(&o)
	}
	if o.src == nil {
		o.src = DefaultSource()
	}

	return o
}
