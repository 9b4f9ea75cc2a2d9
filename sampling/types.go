// Package sampling: sentinel errors, tolerance defaults and functional
// options shared by the domain utilities.
package sampling

import (
	"errors"
	"math"
)

// DefaultEpsilon is the tolerance applied to every float comparison in
// this package when no WithEpsilon option is supplied. It is used both
// as the absolute and as the relative bound of the combined policy.
const DefaultEpsilon = 1e-10

// Sentinel errors returned by the sampling utilities.
var (
	// ErrNoValues indicates that an empty values slice was passed to a
	// lookup that needs at least one candidate.
	ErrNoValues = errors.New("sampling: values must be non-empty")

	// ErrNaNInf indicates that a NaN lookup target was supplied; no
	// candidate has a defined distance to NaN.
	ErrNaNInf = errors.New("sampling: target is NaN")
)

// Options holds the resolved configuration for the sampling utilities.
// Fields are unexported; construct via DefaultOptions and mutate through
// the With* functional options only.
type Options struct {
	eps float64
}

// Option mutates Options. Options are applied in order; the last setter
// for a field wins.
type Option func(*Options)

// DefaultOptions returns the canonical configuration: DefaultEpsilon as
// the comparison tolerance.
func DefaultOptions() Options {
	return Options{eps: DefaultEpsilon}
}

// WithEpsilon overrides the comparison tolerance.
//
// Panics on NaN, ±Inf or negative eps: an invalid tolerance is a
// programmer error, not a data condition.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic("sampling: WithEpsilon requires a finite, non-negative eps")
	}

	return func(o *Options) { o.eps = eps }
}

// gatherOptions resolves defaults plus user-supplied setters.
func gatherOptions(opts []Option) Options {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
