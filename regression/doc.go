// Package regression implements ordinary least squares fitting for
// colorimetric data series: a simple slope/intercept fit for 1-D series
// and a multiple-regressor fit solved by QR decomposition.
//
// Both entry points are pure functions on numeric slices/matrices
// (gonum mat.Matrix for the multiple case) and follow the original
// convention of appending the intercept as the last coefficient.
//
// Errors (sentinel):
//
//	– ErrLengthMismatch if x and y disagree in length/rows.
//	– ErrTooFewSamples  if fewer than two observations are supplied.
//	– ErrNaNInf         if an observation is NaN or ±Inf.
//	– ErrNilMatrix      if a nil design matrix is supplied.
//	– ErrSingular       if the system is degenerate (constant x, or a
//	  rank-deficient design matrix).
//
// Complexity: O(n) for Linear, O(n·p²) for LeastSquares with p
// regressors.
package regression
