// Package colorimetry is an in-memory toolkit for colorimetric data:
// resampling algebra for spectral/colorimetric series plus the small
// colour-space helpers those series feed into.
//
// What is colorimetry?
//
//	A pure-Go library that brings together:
//		• Sampling utilities: step extraction, uniformity tests, nearest-value lookup
//		• Interpolation: piecewise-linear and CIE-recommended Sprague (quintic)
//		• Extrapolation: constant or linear continuation beyond the sampled domain
//		• Regression: simple and multiple ordinary least squares
//		• Matrix predicates: identity and element-wise closeness checks
//		• Coordinates: cartesian / spherical / cylindrical conversions
//		• CIE 1960 UCS: XYZ ↔ UCS model transforms
//
// Why choose colorimetry?
//
//   - Minimal API, clear naming, typed sentinel errors matched with errors.Is
//   - Deterministic, side-effect-free computation; every value object is
//     immutable after construction and safe for concurrent use
//   - A single documented tolerance policy shared by all float comparisons
//
// Everything is organized under flat subpackages:
//
//	sampling/    — domain step/uniformity/closest utilities
//	interpolate/ — Interpolator interface, Linear and Sprague implementations
//	extrapolate/ — Extrapolator wrapper with constant/linear methods
//	regression/  — ordinary least squares on top of gonum
//	matrix/      — IsIdentity / AllClose predicates on gonum matrices
//	coordinates/ — cartesian, spherical and cylindrical vector transforms
//	cieucs/      — CIE 1960 UCS colourspace transformations
//
// A typical pipeline interpolates a spectral curve onto a uniform
// wavelength grid, extrapolates the edges, then feeds the resampled
// tristimulus values through a colour-space transform:
//
//	sprague, _ := interpolate.NewSprague(wavelengths, values)
//	ex, _ := extrapolate.New(sprague, extrapolate.WithMethod(extrapolate.MethodConstant))
//	resampled, _ := ex.EvaluateAll(grid)
//
//	go get github.com/katalvlaran/colorimetry
package colorimetry
