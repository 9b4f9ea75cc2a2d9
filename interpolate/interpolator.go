package interpolate

// Interpolator is the single capability shared by all 1-D interpolants:
// evaluate at x over a known domain [lo, hi]. The extrapolate package
// wraps this capability by interface, not by concrete type, so either
// implementation (or a wrapped one) can be substituted freely.
type Interpolator interface {
	// Evaluate returns the interpolated value at x, or ErrOutOfDomain
	// when x lies beyond Domain by more than the configured epsilon.
	Evaluate(x float64) (float64, error)

	// EvaluateAll applies Evaluate element-wise, preserving input order.
	// An optional output slice of len(xs) can be supplied to avoid an
	// allocation (it is still returned as a convenience; if more than
	// one is given, only the first is used). The batch fails as a whole:
	// the first offending element aborts with its error and a nil slice.
	EvaluateAll(xs []float64, out ...[]float64) ([]float64, error)

	// Domain returns the inclusive evaluation bounds [lo, hi].
	Domain() (lo, hi float64)

	// Samples returns copies of the fitted sample series.
	Samples() (xs, ys []float64)
}

var (
	_ Interpolator = (*Linear)(nil)
	_ Interpolator = (*Sprague)(nil)
)
