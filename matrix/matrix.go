package matrix

import (
	"math"

	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/colorimetry/sampling"
)

// Options holds the resolved predicate configuration. Fields are
// unexported; construct via DefaultOptions and mutate through With*
// functional options only.
type Options struct {
	eps float64
}

// Option mutates Options. Applied in order; the last setter for a field
// wins.
type Option func(*Options)

// DefaultOptions returns the canonical configuration: the library-wide
// sampling.DefaultEpsilon tolerance.
func DefaultOptions() Options {
	return Options{eps: sampling.DefaultEpsilon}
}

// WithEpsilon overrides the comparison tolerance.
//
// Panics on NaN, ±Inf or negative eps: an invalid tolerance is a
// programmer error, not a data condition.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic("matrix: WithEpsilon requires a finite, non-negative eps")
	}

	return func(o *Options) { o.eps = eps }
}

// IsIdentity reports whether m is square with every entry within eps of
// the Kronecker delta: ones on the diagonal, zeros elsewhere.
//
// Nil and non-square matrices fail the predicate; they are never an
// error, matching its use as a plain boolean test on conversion-matrix
// round trips.
func IsIdentity(m mat.Matrix, opts ...Option) bool {
	if m == nil {
		return false
	}

	rows, cols := m.Dims()
	if rows != cols {
		return false
	}

	cfg := gatherOptions(opts)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			want := 0.0
			if i == j {
				want = 1.0
			}
			if !scalar.EqualWithinAbsOrRel(m.At(i, j), want, cfg.eps, cfg.eps) {
				return false
			}
		}
	}

	return true
}

// AllClose reports whether a and b share a shape and agree element-wise
// within eps under the tolerance policy. NaN entries never compare
// close. Nil arguments fail the predicate unless both are nil.
func AllClose(a, b mat.Matrix, opts ...Option) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	ar, ac := a.Dims()
	br, bc := b.Dims()
	if ar != br || ac != bc {
		return false
	}

	cfg := gatherOptions(opts)
	for i := 0; i < ar; i++ {
		for j := 0; j < ac; j++ {
			if !scalar.EqualWithinAbsOrRel(a.At(i, j), b.At(i, j), cfg.eps, cfg.eps) {
				return false
			}
		}
	}

	return true
}

func gatherOptions(opts []Option) Options {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
