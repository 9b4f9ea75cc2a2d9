package interpolate

import (
	"math"

	"github.com/katalvlaran/colorimetry/sampling"
)

// DefaultEpsilon mirrors sampling.DefaultEpsilon so that "this domain is
// uniform" and "this query sits on a node" agree across the library.
const DefaultEpsilon = sampling.DefaultEpsilon

// Options holds the resolved interpolant configuration. Fields are
// unexported; construct via DefaultOptions and mutate through With*
// functional options only.
type Options struct {
	eps float64
}

// Option mutates Options. Applied in order; the last setter for a field
// wins.
type Option func(*Options)

// DefaultOptions returns the canonical configuration: DefaultEpsilon as
// the node-snapping and boundary tolerance.
func DefaultOptions() Options {
	return Options{eps: DefaultEpsilon}
}

// WithEpsilon overrides the tolerance used for node snapping, the
// inclusive-boundary clamp and (for Sprague) the uniformity check.
//
// Panics on NaN, ±Inf or negative eps: an invalid tolerance is a
// programmer error, not a data condition.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic("interpolate: WithEpsilon requires a finite, non-negative eps")
	}

	return func(o *Options) { o.eps = eps }
}

func gatherOptions(opts []Option) Options {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
