// Package cieucs implements the CIE 1960 UCS colourspace
// transformations:
//
//	– XYZToUCS / UCSToXYZ: CIE XYZ tristimulus values ↔ UCS (U, V, W)
//	– UCSToUV:   uv chromaticity coordinates of a UCS array
//	– UCSUVToXY: xy chromaticity coordinates from UCS uv coordinates
//
// All functions are stateless element-wise arithmetic on tristimulus
// triples in domain [0, 1]. They neither depend on nor are depended on
// by the algebra packages; a caller composes them, typically by
// resampling a spectral curve with interpolate/extrapolate and feeding
// the result here.
//
// Degenerate chromaticity denominators (a zero tristimulus sum) follow
// IEEE-754 and yield NaN/Inf, as in the reference formulation.
package cieucs
