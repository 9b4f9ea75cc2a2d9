package extrapolate

import (
	"fmt"
	"math"

	"github.com/katalvlaran/colorimetry/interpolate"
)

// Extrapolator extends a wrapped interpolant beyond its domain. It
// satisfies interpolate.Interpolator itself, with an unbounded domain.
type Extrapolator struct {
	in     interpolate.Interpolator
	method Method

	lo, hi           float64 // effective bounds where extrapolation kicks in
	fLo, fHi         float64 // anchor values at the bounds
	slopeLo, slopeHi float64 // edge-segment slopes (MethodLinear)
}

var _ interpolate.Interpolator = (*Extrapolator)(nil)

// New wraps in with out-of-domain handling.
//
// Preconditions and validation (in order):
//  1. in non-nil                                  (ErrNilInterpolator)
//  2. configured method is a defined one          (ErrUnknownMethod)
//  3. explicit bounds, if any, ordered and inside
//     the wrapped domain                          (ErrBadBounds)
//
// Anchor values at the effective bounds and the edge-segment slopes are
// precomputed here; a wrapped-interpolant failure while anchoring is
// returned wrapped with context.
func New(in interpolate.Interpolator, opts ...Option) (*Extrapolator, error) {
	if in == nil {
		return nil, ErrNilInterpolator
	}

	cfg := gatherOptions(opts)
	if cfg.method != MethodLinear && cfg.method != MethodConstant {
		return nil, fmt.Errorf("%w: %s", ErrUnknownMethod, cfg.method)
	}

	lo, hi := in.Domain()
	if cfg.hasLeft {
		if cfg.left < lo || cfg.left > hi {
			return nil, fmt.Errorf("%w: left=%g outside wrapped domain [%g, %g]",
				ErrBadBounds, cfg.left, lo, hi)
		}
		lo = cfg.left
	}
	if cfg.hasRight {
		if cfg.right < lo || cfg.right > hi {
			return nil, fmt.Errorf("%w: right=%g outside [%g, %g]",
				ErrBadBounds, cfg.right, lo, hi)
		}
		hi = cfg.right
	}
	if lo >= hi {
		return nil, fmt.Errorf("%w: left=%g must be below right=%g", ErrBadBounds, lo, hi)
	}

	ex := &Extrapolator{in: in, method: cfg.method, lo: lo, hi: hi}

	xs, ys := in.Samples()
	n := len(xs)
	ex.slopeLo = (ys[1] - ys[0]) / (xs[1] - xs[0])
	ex.slopeHi = (ys[n-1] - ys[n-2]) / (xs[n-1] - xs[n-2])

	var err error
	if ex.fLo, err = in.Evaluate(lo); err != nil {
		return nil, fmt.Errorf("anchoring left bound: %w", err)
	}
	if ex.fHi, err = in.Evaluate(hi); err != nil {
		return nil, fmt.Errorf("anchoring right bound: %w", err)
	}

	return ex, nil
}

// Evaluate returns the extrapolated value for x outside [lo, hi] and
// delegates in-range queries to the wrapped interpolant, whose errors
// propagate unmodified.
func (ex *Extrapolator) Evaluate(x float64) (float64, error) {
	switch {
	case x < ex.lo:
		if ex.method == MethodConstant {
			return ex.fLo, nil
		}
		return ex.fLo + (x-ex.lo)*ex.slopeLo, nil
	case x > ex.hi:
		if ex.method == MethodConstant {
			return ex.fHi, nil
		}
		return ex.fHi + (x-ex.hi)*ex.slopeHi, nil
	}

	return ex.in.Evaluate(x)
}

// EvaluateAll classifies and evaluates each element independently,
// preserving input order; no cross-element interaction. Same
// output-slice and whole-batch-failure contract as the interpolants.
func (ex *Extrapolator) EvaluateAll(xs []float64, out ...[]float64) ([]float64, error) {
	if len(out) == 0 {
		out = [][]float64{make([]float64, len(xs))}
	}

	for i, x := range xs {
		y, err := ex.Evaluate(x)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		out[0][i] = y
	}

	return out[0], nil
}

// Domain is unbounded: every finite query has a defined value.
func (ex *Extrapolator) Domain() (lo, hi float64) {
	return math.Inf(-1), math.Inf(1)
}

// Samples returns the wrapped interpolant's fitted series.
func (ex *Extrapolator) Samples() (xs, ys []float64) {
	return ex.in.Samples()
}

// Method returns the configured extrapolation method.
func (ex *Extrapolator) Method() Method {
	return ex.method
}

// Bounds returns the effective bounds beyond which extrapolation
// applies (the wrapped domain edges unless overridden).
func (ex *Extrapolator) Bounds() (lo, hi float64) {
	return ex.lo, ex.hi
}
