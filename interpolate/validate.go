// Package interpolate: canonical precondition checks shared by the
// constructors. Validators return plain sentinel errors wrapped with the
// offending index/value so call sites stay minimal.
package interpolate

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

const (
	// minLinearSamples is the shortest series a Linear interpolant can
	// be fitted to: one bracketing interval.
	minLinearSamples = 2

	// minSpragueSamples is the shortest series the Sprague boundary
	// extension is defined for: each synthetic point is a fixed linear
	// combination of six real samples.
	minSpragueSamples = 6
)

// validateSeries checks the shared sample-series preconditions in a
// fixed order: length match, minimum length, finite values, strict
// monotonicity. Returns the first violation.
func validateSeries(xs, ys []float64, minSamples int) error {
	if len(xs) != len(ys) {
		return fmt.Errorf("%w: len(xs)=%d, len(ys)=%d", ErrLengthMismatch, len(xs), len(ys))
	}
	if len(xs) < minSamples {
		return fmt.Errorf("%w: need at least %d, got %d", ErrTooFewSamples, minSamples, len(xs))
	}

	for i := range xs {
		if math.IsNaN(xs[i]) || math.IsInf(xs[i], 0) || math.IsNaN(ys[i]) || math.IsInf(ys[i], 0) {
			return fmt.Errorf("%w: sample %d (x=%g, y=%g)", ErrNaNInf, i, xs[i], ys[i])
		}
		if i > 0 && xs[i] <= xs[i-1] {
			return fmt.Errorf("%w: xs[%d]=%g does not exceed xs[%d]=%g",
				ErrNotIncreasing, i, xs[i], i-1, xs[i-1])
		}
	}

	return nil
}

// clampToDomain applies the inclusive-boundary policy: a query within
// eps of an edge is clamped onto it, a query beyond eps (or NaN) fails
// with ErrOutOfDomain carrying the offending value.
func clampToDomain(x, lo, hi, eps float64) (float64, error) {
	switch {
	case math.IsNaN(x):
		return 0, fmt.Errorf("%w: x is NaN", ErrOutOfDomain)
	case x >= lo && x <= hi:
		return x, nil
	case x < lo && scalar.EqualWithinAbsOrRel(x, lo, eps, eps):
		return lo, nil
	case x > hi && scalar.EqualWithinAbsOrRel(x, hi, eps, eps):
		return hi, nil
	}

	return 0, fmt.Errorf("%w: x=%g outside [%g, %g]", ErrOutOfDomain, x, lo, hi)
}
