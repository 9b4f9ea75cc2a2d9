// Package interpolate implements 1-D interpolation over ordered sample
// series: piecewise-linear reconstruction for arbitrary strictly
// increasing domains, and the CIE-recommended Sprague (quintic,
// fifth-difference) method for uniformly spaced domains.
//
// What is Sprague interpolation?
//
//	Linear interpolation under-smooths colorimetric spectral curves.
//	The Sprague method fits a local quintic polynomial through the six
//	samples surrounding each query, producing a smoother reconstruction
//	that still passes exactly through every original sample. It is the
//	CIE-recommended resampling method for uniformly measured spectral
//	data.
//
// Contract shared by all interpolants:
//
//   - Constructed once from a sample series (xs strictly increasing,
//     ys of equal length); the series is copied and the interpolant is
//     immutable afterwards, hence safe for concurrent use.
//   - Evaluate reproduces sample values exactly at sample nodes.
//   - Queries outside [Domain()] fail with ErrOutOfDomain; wrap the
//     interpolant in an extrapolate.Extrapolator for out-of-range
//     behavior. Queries within epsilon of an edge are clamped onto it
//     (inclusive-boundary policy).
//   - EvaluateAll applies the scalar rule element-wise and fails as a
//     whole batch on the first offending element.
//
// Errors (sentinel):
//
//	– ErrLengthMismatch if len(xs) != len(ys).
//	– ErrTooFewSamples  if the series is shorter than the method needs
//	  (2 for Linear, 6 for Sprague).
//	– ErrNotIncreasing  if the domain is not strictly increasing.
//	– ErrNaNInf         if a sample is NaN or ±Inf.
//	– ErrNonUniform     if a non-uniform domain is given to NewSprague.
//	– ErrOutOfDomain    if a query lies beyond the fitted domain.
//
// Complexity:
//
//	– Linear.Evaluate:  O(log n) bracketing search, O(1) on uniform grids.
//	– Sprague.Evaluate: O(1) per query after an O(n) construction.
package interpolate
