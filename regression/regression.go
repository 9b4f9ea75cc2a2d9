package regression

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Sentinel errors returned by the regression fits.
var (
	// ErrLengthMismatch indicates that x and y differ in length (or the
	// design matrix row count differs from len(y)).
	ErrLengthMismatch = errors.New("regression: observation lengths differ")

	// ErrTooFewSamples indicates fewer than two observations.
	ErrTooFewSamples = errors.New("regression: not enough observations")

	// ErrNaNInf indicates a NaN or ±Inf observation.
	ErrNaNInf = errors.New("regression: NaN or Inf observation encountered")

	// ErrNilMatrix indicates a nil design matrix.
	ErrNilMatrix = errors.New("regression: design matrix is nil")

	// ErrSingular indicates a degenerate system: constant x in Linear,
	// or a rank-deficient design matrix in LeastSquares.
	ErrSingular = errors.New("regression: singular system")
)

// Result holds a simple linear fit y ≈ Slope·x + Intercept.
type Result struct {
	Slope     float64
	Intercept float64

	// R2 is the coefficient of determination of the fit on the input
	// series, in [0, 1] for any non-degenerate least-squares fit.
	R2 float64
}

// Linear fits y ≈ slope·x + intercept by ordinary least squares.
//
// A nil x means the index series 1, 2, ..., len(y), mirroring the
// common case of fitting against sample position.
//
// Preconditions and validation (in order):
//  1. len(x) == len(y)        (ErrLengthMismatch)
//  2. len(y) >= 2             (ErrTooFewSamples)
//  3. all observations finite (ErrNaNInf)
//  4. x not constant          (ErrSingular)
//
// Complexity: O(n) time, O(n) space only when x is nil.
func Linear(x, y []float64) (Result, error) {
	if x == nil {
		x = make([]float64, len(y))
		for i := range x {
			x[i] = float64(i + 1)
		}
	}

	if err := validateObservations(x, y); err != nil {
		return Result{}, err
	}

	constant := true
	for i := 1; i < len(x); i++ {
		if x[i] != x[0] {
			constant = false
			break
		}
	}
	if constant {
		return Result{}, fmt.Errorf("%w: x is constant", ErrSingular)
	}

	alpha, beta := stat.LinearRegression(x, y, nil, false)

	return Result{
		Slope:     beta,
		Intercept: alpha,
		R2:        stat.RSquared(x, y, nil, alpha, beta),
	}, nil
}

// LeastSquares fits y against the columns of x by ordinary least
// squares, appending an intercept column of ones. The returned
// coefficients follow the original layout: one per column of x in
// column order, intercept last.
//
// Preconditions and validation (in order):
//  1. x non-nil                    (ErrNilMatrix)
//  2. rows(x) == len(y)            (ErrLengthMismatch)
//  3. len(y) >= 2                  (ErrTooFewSamples)
//  4. all entries finite           (ErrNaNInf)
//  5. design matrix full rank      (ErrSingular, wrapping gonum's
//     condition error)
//
// Complexity: O(n·p²) for n observations and p regressors.
func LeastSquares(x mat.Matrix, y []float64) ([]float64, error) {
	if x == nil {
		return nil, ErrNilMatrix
	}

	rows, cols := x.Dims()
	if rows != len(y) {
		return nil, fmt.Errorf("%w: %d design rows, %d observations", ErrLengthMismatch, rows, len(y))
	}
	if rows < 2 {
		return nil, fmt.Errorf("%w: need at least 2, got %d", ErrTooFewSamples, rows)
	}

	// Design matrix with the intercept column appended.
	design := mat.NewDense(rows, cols+1, nil)
	for i := 0; i < rows; i++ {
		if math.IsNaN(y[i]) || math.IsInf(y[i], 0) {
			return nil, fmt.Errorf("%w: y[%d]=%g", ErrNaNInf, i, y[i])
		}
		for j := 0; j < cols; j++ {
			v := x.At(i, j)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("%w: x[%d,%d]=%g", ErrNaNInf, i, j, v)
			}
			design.Set(i, j, v)
		}
		design.Set(i, cols, 1)
	}

	var qr mat.QR
	qr.Factorize(design)

	var beta mat.Dense
	if err := qr.SolveTo(&beta, false, mat.NewDense(rows, 1, y)); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSingular, err)
	}

	coeffs := make([]float64, cols+1)
	for j := range coeffs {
		coeffs[j] = beta.At(j, 0)
	}

	return coeffs, nil
}

// validateObservations checks the shared 1-D preconditions in a fixed
// order: length match, minimum length, finite values.
func validateObservations(x, y []float64) error {
	if len(x) != len(y) {
		return fmt.Errorf("%w: len(x)=%d, len(y)=%d", ErrLengthMismatch, len(x), len(y))
	}
	if len(y) < 2 {
		return fmt.Errorf("%w: need at least 2, got %d", ErrTooFewSamples, len(y))
	}

	for i := range x {
		if math.IsNaN(x[i]) || math.IsInf(x[i], 0) || math.IsNaN(y[i]) || math.IsInf(y[i], 0) {
			return fmt.Errorf("%w: observation %d (x=%g, y=%g)", ErrNaNInf, i, x[i], y[i])
		}
	}

	return nil
}
