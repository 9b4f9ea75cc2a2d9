package coordinates

import "math"

// Vec3 is a 3-component vector: cartesian (x, y, z), spherical
// (r, θ, φ) or cylindrical (z, θ, ρ) depending on context.
type Vec3 [3]float64

// CartesianToSpherical converts cartesian (x, y, z) to spherical
// (r, θ, φ) with θ the inclination from the xy-plane and φ the azimuth.
func CartesianToSpherical(v Vec3) Vec3 {
	x, y, z := v[0], v[1], v[2]

	r := math.Sqrt(x*x + y*y + z*z)
	theta := math.Atan2(z, math.Hypot(x, y))
	phi := math.Atan2(y, x)

	return Vec3{r, theta, phi}
}

// SphericalToCartesian converts spherical (r, θ, φ) back to cartesian
// (x, y, z).
func SphericalToCartesian(v Vec3) Vec3 {
	r, theta, phi := v[0], v[1], v[2]

	return Vec3{
		r * math.Cos(theta) * math.Cos(phi),
		r * math.Cos(theta) * math.Sin(phi),
		r * math.Sin(theta),
	}
}

// CartesianToCylindrical converts cartesian (x, y, z) to cylindrical
// (z, θ, ρ).
func CartesianToCylindrical(v Vec3) Vec3 {
	x, y, z := v[0], v[1], v[2]

	return Vec3{z, math.Atan2(y, x), math.Hypot(x, y)}
}

// CylindricalToCartesian converts cylindrical (z, θ, ρ) back to
// cartesian (x, y, z).
func CylindricalToCartesian(v Vec3) Vec3 {
	z, theta, rho := v[0], v[1], v[2]

	return Vec3{rho * math.Cos(theta), rho * math.Sin(theta), z}
}
