package cieucs

// XYZToUCS converts CIE XYZ tristimulus values to the CIE 1960 UCS
// colourspace:
//
//	U = 2/3·X,  V = Y,  W = ½·(−X + 3Y + Z)
func XYZToUCS(x, y, z float64) (u, v, w float64) {
	return 2.0 / 3.0 * x, y, 0.5 * (-x + 3*y + z)
}

// UCSToXYZ converts CIE 1960 UCS values back to CIE XYZ tristimulus
// values:
//
//	X = 3/2·U,  Y = V,  Z = 3/2·U − 3V + 2W
func UCSToXYZ(u, v, w float64) (x, y, z float64) {
	return 3.0 / 2.0 * u, v, 3.0/2.0*u - 3*v + 2*w
}

// UCSToUV returns the uv chromaticity coordinates of CIE 1960 UCS
// values: (U, V) normalized by U+V+W.
func UCSToUV(u, v, w float64) (float64, float64) {
	s := u + v + w

	return u / s, v / s
}

// UCSUVToXY returns the CIE xy chromaticity coordinates corresponding
// to UCS uv chromaticity coordinates:
//
//	x = 3u / (2u − 8v + 4),  y = 2v / (2u − 8v + 4)
func UCSUVToXY(u, v float64) (x, y float64) {
	d := 2*u - 8*v + 4

	return 3 * u / d, 2 * v / d
}
