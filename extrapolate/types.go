// Package extrapolate: extrapolation method enum, sentinel errors and
// functional options.
package extrapolate

import (
	"errors"
	"fmt"
	"math"
)

// Method selects how values outside the domain are computed.
//
//   - MethodLinear   — straight-line continuation of the edge segment.
//   - MethodConstant — hold the boundary value.
type Method int

const (
	// MethodLinear extrapolates along the slope of the two samples
	// nearest the crossed bound. Default.
	MethodLinear Method = iota

	// MethodConstant clamps to the value at the crossed bound.
	MethodConstant
)

// String returns the lower-case method name used in messages.
func (m Method) String() string {
	switch m {
	case MethodLinear:
		return "linear"
	case MethodConstant:
		return "constant"
	default:
		return fmt.Sprintf("unknown(%d)", int(m))
	}
}

// Sentinel errors returned by New.
var (
	// ErrNilInterpolator indicates that a nil interpolant was supplied.
	ErrNilInterpolator = errors.New("extrapolate: interpolator is nil")

	// ErrUnknownMethod indicates an unrecognized Method value.
	// Configuration error, detected at construction.
	ErrUnknownMethod = errors.New("extrapolate: unknown extrapolation method")

	// ErrBadBounds indicates that explicit bounds are unordered or lie
	// outside the wrapped interpolant's domain.
	ErrBadBounds = errors.New("extrapolate: invalid explicit bounds")
)

// Options holds the resolved Extrapolator configuration. Fields are
// unexported; construct via DefaultOptions and mutate through With*
// functional options only.
type Options struct {
	method            Method
	left, right       float64
	hasLeft, hasRight bool
}

// Option mutates Options. Applied in order; the last setter for a field
// wins.
type Option func(*Options)

// DefaultOptions returns the canonical configuration: MethodLinear and
// the wrapped interpolant's own domain edges as bounds.
func DefaultOptions() Options {
	return Options{method: MethodLinear}
}

// WithMethod selects the extrapolation method. Validity is checked by
// New (an undefined value yields ErrUnknownMethod), so a method read
// from configuration can be passed through without pre-checking.
func WithMethod(m Method) Option {
	return func(o *Options) { o.method = m }
}

// WithLeftBound replaces the wrapped domain's lower edge: extrapolation
// applies to every query below x.
//
// Panics on NaN or ±Inf: a non-finite bound is a programmer error.
// Ordering against the right bound and containment in the wrapped
// domain are validated by New.
func WithLeftBound(x float64) Option {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		panic("extrapolate: WithLeftBound requires a finite bound")
	}

	return func(o *Options) { o.left, o.hasLeft = x, true }
}

// WithRightBound replaces the wrapped domain's upper edge: extrapolation
// applies to every query above x. Same contract as WithLeftBound.
func WithRightBound(x float64) Option {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		panic("extrapolate: WithRightBound requires a finite bound")
	}

	return func(o *Options) { o.right, o.hasRight = x, true }
}

func gatherOptions(opts []Option) Options {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
