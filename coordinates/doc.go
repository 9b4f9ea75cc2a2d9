// Package coordinates converts 3-component vectors between cartesian,
// spherical and cylindrical systems.
//
// Conventions (matching the colour-science literature this library
// follows):
//
//	– Spherical vectors are (r, θ, φ): radius, inclination θ measured
//	  from the xy-plane (not from the pole), azimuth φ in the xy-plane
//	  from the positive x-axis. Angles are radians.
//	– Cylindrical vectors are (z, θ, ρ): height, azimuth, radial
//	  distance, in that order.
//
// All transforms are pure element-wise arithmetic on Vec3 values: no
// errors, no state, no allocations. Degenerate inputs follow IEEE-754
// (e.g. the azimuth of the origin is atan2(0, 0) = 0).
package coordinates
