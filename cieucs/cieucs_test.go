package cieucs_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/katalvlaran/colorimetry/cieucs"
)

var approx = cmpopts.EquateApprox(0, 1e-10)

// referenceXYZ is the worked-example stimulus used across the CIE UCS
// literature this package follows.
var referenceXYZ = [3]float64{0.07049534, 0.10080000, 0.09558313}

// TestXYZToUCS pins the reference conversion.
func TestXYZToUCS(t *testing.T) {
	u, v, w := cieucs.XYZToUCS(referenceXYZ[0], referenceXYZ[1], referenceXYZ[2])

	got := [3]float64{u, v, w}
	want := [3]float64{0.04699689333333333, 0.10080000, 0.163743895}

	if diff := cmp.Diff(want, got, approx); diff != "" {
		t.Errorf("XYZToUCS mismatch (-want +got):\n%s", diff)
	}
}

// TestUCSToXYZ_RoundTrip verifies that UCSToXYZ inverts XYZToUCS
// exactly up to float error.
func TestUCSToXYZ_RoundTrip(t *testing.T) {
	u, v, w := cieucs.XYZToUCS(referenceXYZ[0], referenceXYZ[1], referenceXYZ[2])
	x, y, z := cieucs.UCSToXYZ(u, v, w)

	if diff := cmp.Diff(referenceXYZ, [3]float64{x, y, z}, approx); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

// TestUCSToUV pins the reference chromaticity coordinates.
func TestUCSToUV(t *testing.T) {
	u, v := cieucs.UCSToUV(0.04699689333333333, 0.10080000, 0.163743895)

	got := [2]float64{u, v}
	want := [2]float64{0.15085309883420134, 0.3235531390263703}

	if diff := cmp.Diff(want, got, approx); diff != "" {
		t.Errorf("UCSToUV mismatch (-want +got):\n%s", diff)
	}
}

// TestUCSUVToXY pins the uv → xy chromaticity conversion.
func TestUCSUVToXY(t *testing.T) {
	x, y := cieucs.UCSUVToXY(0.15085309883420134, 0.3235531390263703)

	got := [2]float64{x, y}
	want := [2]float64{0.26414772236966133, 0.3777000070481519}

	if diff := cmp.Diff(want, got, approx); diff != "" {
		t.Errorf("UCSUVToXY mismatch (-want +got):\n%s", diff)
	}
}

// TestUCSToUV_ZeroSum documents the IEEE-754 behavior on a degenerate
// black stimulus: the chromaticity is undefined and reported as NaN.
func TestUCSToUV_ZeroSum(t *testing.T) {
	u, v := cieucs.UCSToUV(0, 0, 0)

	if !math.IsNaN(u) || !math.IsNaN(v) {
		t.Errorf("UCSToUV(0,0,0) = (%g, %g), want NaN chromaticity", u, v)
	}
}
