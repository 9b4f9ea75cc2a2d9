package sampling

import (
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// Steps returns the distinct consecutive differences of domain, in
// first-encounter order. Two differences are "the same step" when they
// are equal under the tolerance policy (see WithEpsilon).
//
// A uniformly spaced domain therefore yields exactly one step; an
// irregular one yields several. Domains of length < 2 have no steps and
// yield an empty (non-nil) slice.
//
// Complexity: O(n) time, O(k) space for k distinct steps.
func Steps(domain []float64, opts ...Option) []float64 {
	cfg := gatherOptions(opts)

	steps := make([]float64, 0, 1)
	for i := 1; i < len(domain); i++ {
		d := domain[i] - domain[i-1]

		seen := false
		for _, s := range steps {
			if scalar.EqualWithinAbsOrRel(d, s, cfg.eps, cfg.eps) {
				seen = true
				break
			}
		}
		if !seen {
			steps = append(steps, d)
		}
	}

	return steps
}

// IsUniform reports whether domain is uniformly spaced: all consecutive
// differences are equal under the tolerance policy.
//
// Convention: domains of length ≤ 1 have no spacing to violate and are
// reported as uniform.
//
// Complexity: O(n) time, O(1) space (short-circuits on the second
// distinct step without materializing Steps).
func IsUniform(domain []float64, opts ...Option) bool {
	if len(domain) < 2 {
		return true
	}

	cfg := gatherOptions(opts)

	first := domain[1] - domain[0]
	for i := 2; i < len(domain); i++ {
		if !scalar.EqualWithinAbsOrRel(domain[i]-domain[i-1], first, cfg.eps, cfg.eps) {
			return false
		}
	}

	return true
}

// Closest returns the element of values with minimum absolute distance
// to target. Ties are broken by the first element in input order.
//
// Errors:
//   - ErrNoValues if values is empty.
//   - ErrNaNInf if target is NaN.
//
// Complexity: O(n) time, O(1) space.
func Closest(values []float64, target float64) (float64, error) {
	i, err := ClosestIndex(values, target)
	if err != nil {
		return 0, err
	}

	return values[i], nil
}

// ClosestIndex returns the index of the element of values with minimum
// absolute distance to target, under the same contract as Closest.
func ClosestIndex(values []float64, target float64) (int, error) {
	if len(values) == 0 {
		return 0, ErrNoValues
	}
	if math.IsNaN(target) {
		return 0, ErrNaNInf
	}

	// Strict < keeps the first of any equidistant pair, which pins the
	// documented tie-break rule.
	best, bestDist := 0, math.Abs(values[0]-target)
	for i := 1; i < len(values); i++ {
		if d := math.Abs(values[i] - target); d < bestDist {
			best, bestDist = i, d
		}
	}

	return best, nil
}
