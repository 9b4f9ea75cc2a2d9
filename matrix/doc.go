// Package matrix provides numeric predicates over gonum matrices used
// by colorimetric transforms: identity testing of conversion matrices
// and element-wise closeness under the library's tolerance policy.
//
// A colour-space conversion matrix composed with its inverse should be
// the identity; IsIdentity is the predicate callers use to assert that,
// allowing for the float error such round trips accumulate.
//
// Both predicates are pure and never error: a nil or shape-incompatible
// argument simply fails the predicate. Tolerance defaults to
// sampling.DefaultEpsilon and is overridden with WithEpsilon.
//
// Complexity: O(r·c) over the matrix entries, no allocations.
package matrix
