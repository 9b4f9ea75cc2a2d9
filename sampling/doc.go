// Package sampling provides pure utilities over ordered numeric domains:
// step-size extraction, uniform-spacing detection and nearest-value lookup.
//
// These helpers validate and classify the x-axis of a sample series before
// an interpolant is fitted to it: interpolate.NewSprague, for instance,
// requires IsUniform to hold for its domain.
//
// Tolerance policy:
//
//	All float comparisons use a combined absolute/relative epsilon
//	(gonum's scalar.EqualWithinAbsOrRel) with both tolerances equal to
//	DefaultEpsilon unless overridden via WithEpsilon. The same policy is
//	shared by the interpolate and matrix packages so that "two steps are
//	equal" and "this query sits on a node" agree across the library.
//
// Conventions:
//
//	– Steps preserves first-encounter order of the distinct differences.
//	– IsUniform treats domains of length ≤ 1 as trivially uniform.
//	– Closest breaks exact-distance ties by the first element in input
//	  order (stable and deterministic).
//
// Errors (sentinel):
//
//	– ErrNoValues if a lookup receives an empty values slice.
//	– ErrNaNInf  if a lookup target is NaN.
//
// All functions are O(n) over the input, allocate at most the returned
// slice, and have no side effects.
package sampling
