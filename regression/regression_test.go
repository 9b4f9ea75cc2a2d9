package regression_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/colorimetry/regression"
)

// TestLinear_ExactFit verifies that noiseless linear data is recovered
// exactly, with R² = 1.
func TestLinear_ExactFit(t *testing.T) {
	x := []float64{0, 1, 2, 3, 4}
	y := make([]float64, len(x))
	for i, v := range x {
		y[i] = 2*v + 3
	}

	res, err := regression.Linear(x, y)
	require.NoError(t, err)

	assert.InDelta(t, 2.0, res.Slope, 1e-12)
	assert.InDelta(t, 3.0, res.Intercept, 1e-12)
	assert.InDelta(t, 1.0, res.R2, 1e-12)
}

// TestLinear_NoisyFit verifies a hand-checked fit on scattered points.
func TestLinear_NoisyFit(t *testing.T) {
	// Symmetric residuals around y = x: least squares must split them.
	x := []float64{0, 1, 2, 3}
	y := []float64{0.5, 0.5, 2.5, 2.5}

	res, err := regression.Linear(x, y)
	require.NoError(t, err)

	assert.InDelta(t, 0.8, res.Slope, 1e-12)
	assert.InDelta(t, 0.3, res.Intercept, 1e-12)
	assert.InDelta(t, 0.8, res.R2, 1e-12, "scatter must be reflected in R²")
}

// TestLinear_DefaultIndexSeries verifies the nil-x convention: fitting
// against positions 1..n.
func TestLinear_DefaultIndexSeries(t *testing.T) {
	// y = 10·i + 1 for i = 1..4.
	res, err := regression.Linear(nil, []float64{11, 21, 31, 41})
	require.NoError(t, err)

	assert.InDelta(t, 10.0, res.Slope, 1e-12)
	assert.InDelta(t, 1.0, res.Intercept, 1e-12)
}

// TestLinear_Validation verifies the error taxonomy in order.
func TestLinear_Validation(t *testing.T) {
	_, err := regression.Linear([]float64{1, 2}, []float64{1, 2, 3})
	assert.ErrorIs(t, err, regression.ErrLengthMismatch)

	_, err = regression.Linear([]float64{1}, []float64{1})
	assert.ErrorIs(t, err, regression.ErrTooFewSamples)

	_, err = regression.Linear([]float64{1, math.NaN()}, []float64{1, 2})
	assert.ErrorIs(t, err, regression.ErrNaNInf)

	_, err = regression.Linear([]float64{5, 5, 5}, []float64{1, 2, 3})
	assert.ErrorIs(t, err, regression.ErrSingular, "constant x has no defined slope")
}

// TestLeastSquares_TwoRegressors verifies exact recovery of
// y = 1·a + 2·b + 5 with the intercept reported last.
func TestLeastSquares_TwoRegressors(t *testing.T) {
	design := mat.NewDense(4, 2, []float64{
		1, 0,
		0, 1,
		1, 1,
		2, 3,
	})
	y := []float64{6, 7, 8, 13}

	coeffs, err := regression.LeastSquares(design, y)
	require.NoError(t, err)
	require.Len(t, coeffs, 3, "two regressor coefficients plus the intercept")

	assert.InDelta(t, 1.0, coeffs[0], 1e-10)
	assert.InDelta(t, 2.0, coeffs[1], 1e-10)
	assert.InDelta(t, 5.0, coeffs[2], 1e-10, "intercept is last, as in the 1-D layout")
}

// TestLeastSquares_MatchesLinear verifies that the single-regressor case
// agrees with the simple fit.
func TestLeastSquares_MatchesLinear(t *testing.T) {
	x := []float64{0, 1, 2, 3}
	y := []float64{0.5, 0.5, 2.5, 2.5}

	res, err := regression.Linear(x, y)
	require.NoError(t, err)

	coeffs, err := regression.LeastSquares(mat.NewDense(len(x), 1, x), y)
	require.NoError(t, err)

	assert.InDelta(t, res.Slope, coeffs[0], 1e-10)
	assert.InDelta(t, res.Intercept, coeffs[1], 1e-10)
}

// TestLeastSquares_Validation verifies the error taxonomy.
func TestLeastSquares_Validation(t *testing.T) {
	_, err := regression.LeastSquares(nil, []float64{1, 2})
	assert.ErrorIs(t, err, regression.ErrNilMatrix)

	_, err = regression.LeastSquares(mat.NewDense(2, 1, []float64{1, 2}), []float64{1, 2, 3})
	assert.ErrorIs(t, err, regression.ErrLengthMismatch)

	_, err = regression.LeastSquares(mat.NewDense(2, 1, []float64{1, math.Inf(1)}), []float64{1, 2})
	assert.ErrorIs(t, err, regression.ErrNaNInf)
}
