// Package interpolate: sentinel error set. All constructors and
// evaluators return these sentinels (optionally wrapped with context via
// fmt.Errorf("...: %w", ErrX)); tests and callers match them with
// errors.Is. No user-triggered condition panics.
package interpolate

import "errors"

var (
	// ErrLengthMismatch indicates that the domain and range slices of a
	// sample series have different lengths. Construction error.
	ErrLengthMismatch = errors.New("interpolate: domain and range lengths differ")

	// ErrTooFewSamples indicates that the series is too short for the
	// requested method (Linear needs ≥ 2 samples, Sprague ≥ 6).
	// Construction error.
	ErrTooFewSamples = errors.New("interpolate: not enough samples")

	// ErrNotIncreasing indicates that the domain is not strictly
	// monotonically increasing. Construction error.
	ErrNotIncreasing = errors.New("interpolate: domain must be strictly increasing")

	// ErrNaNInf indicates that a NaN or ±Inf value was found in the
	// sample series. Construction error.
	ErrNaNInf = errors.New("interpolate: NaN or Inf sample encountered")

	// ErrNonUniform indicates that a non-uniformly spaced domain was
	// supplied to NewSprague. Domain-configuration error, detected at
	// construction, never deferred to evaluation.
	ErrNonUniform = errors.New("interpolate: domain must be uniformly spaced")

	// ErrOutOfDomain indicates that a query point lies outside the
	// fitted domain by more than the configured epsilon. Evaluation
	// error; combine with extrapolate.Extrapolator to handle such
	// queries instead.
	ErrOutOfDomain = errors.New("interpolate: query outside interpolation domain")
)
