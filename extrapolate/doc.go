// Package extrapolate extends any 1-D interpolant beyond its fitted
// domain using a selectable method.
//
// An Extrapolator wraps the interpolate.Interpolator capability by
// interface, so Linear and Sprague interpolants (or any other
// implementation) can be extended without knowing their concrete type.
// In-range queries are delegated untouched; only out-of-range queries
// are handled here.
//
// Methods:
//
//	– MethodLinear (default): continue the straight line through the two
//	  edge samples. Below the left bound the slope of the first two
//	  samples is used, above the right bound the slope of the last two.
//	– MethodConstant: hold the boundary value.
//
// Optional explicit bounds (WithLeftBound / WithRightBound) replace the
// wrapped domain edges, making extrapolation kick in before the true
// edge; they must lie inside the wrapped domain and satisfy left < right.
//
// Errors (sentinel):
//
//	– ErrNilInterpolator if no interpolant is supplied.
//	– ErrUnknownMethod   if the configured method is not a defined one
//	  (configuration error, detected at construction).
//	– ErrBadBounds       if explicit bounds are unordered or lie outside
//	  the wrapped domain.
//
// A failure of the wrapped interpolant for an in-range query propagates
// unmodified. Anchors and edge slopes are precomputed at construction;
// evaluation is O(1) plus the wrapped cost, and an Extrapolator is
// immutable and safe for concurrent use.
package extrapolate
