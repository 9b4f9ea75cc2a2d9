package interpolate

import (
	"fmt"
	"math"
	"slices"

	"gonum.org/v1/gonum/floats/scalar"

	"github.com/katalvlaran/colorimetry/sampling"
)

// spragueBoundaryCoefficients are the published CIE coefficients for the
// Sprague boundary extension. Each row, divided by 209, gives one
// synthetic sample as a fixed linear combination of the nearest six real
// samples: rows 0-1 extend below the domain (outermost first), rows 2-3
// extend above it (innermost first).
var spragueBoundaryCoefficients = [4][6]float64{
	{884, -1960, 3033, -2648, 1080, -180},
	{508, -540, 488, -367, 144, -24},
	{-24, 144, -367, 488, -540, 508},
	{-180, 1080, -2648, 3033, -1960, 884},
}

// Sprague is a quintic (fifth-difference) interpolant over a uniformly
// spaced 1-D sample series, the CIE-recommended method for resampling
// spectral/colorimetric data. Immutable after construction and safe for
// concurrent use.
type Sprague struct {
	xs, ys []float64
	yp     []float64 // boundary-extended range: two synthetic points each side
	x0, h  float64
	eps    float64
}

// NewSprague fits a Sprague interpolant to the series (xs, ys). Both
// slices are copied; later mutation of the arguments does not affect
// the interpolant.
//
// Preconditions and validation (in order):
//  1. len(xs) == len(ys)              (ErrLengthMismatch)
//  2. len(xs) >= 6                    (ErrTooFewSamples)
//  3. all samples finite              (ErrNaNInf)
//  4. xs strictly increasing          (ErrNotIncreasing)
//  5. xs uniformly spaced within eps  (ErrNonUniform)
//
// Non-uniform domains are rejected here, never at evaluation time.
//
// Construction precomputes the boundary extension: two synthetic samples
// on each side of the series, each a fixed linear combination of the six
// nearest real samples (spragueBoundaryCoefficients). The extension
// keeps full six-point accuracy for queries in the edge intervals, where
// a plain window would run out of real neighbours.
//
// Complexity: O(n) construction, O(1) per query.
func NewSprague(xs, ys []float64, opts ...Option) (*Sprague, error) {
	cfg := gatherOptions(opts)

	if err := validateSeries(xs, ys, minSpragueSamples); err != nil {
		return nil, err
	}
	if !sampling.IsUniform(xs, sampling.WithEpsilon(cfg.eps)) {
		return nil, fmt.Errorf("%w: distinct steps %v",
			ErrNonUniform, sampling.Steps(xs, sampling.WithEpsilon(cfg.eps)))
	}

	n := len(xs)
	sp := &Sprague{
		xs:  slices.Clone(xs),
		ys:  slices.Clone(ys),
		x0:  xs[0],
		h:   (xs[n-1] - xs[0]) / float64(n-1),
		eps: cfg.eps,
	}

	c := &spragueBoundaryCoefficients
	sp.yp = make([]float64, 0, n+4)
	sp.yp = append(sp.yp, dot6(c[0], sp.ys[:6])/209, dot6(c[1], sp.ys[:6])/209)
	sp.yp = append(sp.yp, sp.ys...)
	sp.yp = append(sp.yp, dot6(c[2], sp.ys[n-6:])/209, dot6(c[3], sp.ys[n-6:])/209)

	return sp, nil
}

// Evaluate returns the interpolated value at x.
//
// The bracketing interval index i and the fractional position t within
// the sampling step are derived in O(1) from the uniform spacing; the
// quintic is then evaluated in Horner form over the six padded samples
// surrounding the interval. t = 0 reduces to the stored sample value,
// and queries within eps of a node short-circuit to it exactly.
func (sp *Sprague) Evaluate(x float64) (float64, error) {
	lo, hi := sp.Domain()

	xq, err := clampToDomain(x, lo, hi, sp.eps)
	if err != nil {
		return 0, err
	}

	pos := (xq - sp.x0) / sp.h

	// Node snap: exact reproduction of sample values.
	if k := int(math.Round(pos)); k >= 0 && k < len(sp.xs) &&
		scalar.EqualWithinAbsOrRel(xq, sp.x0+float64(k)*sp.h, sp.eps, sp.eps) {
		return sp.ys[k], nil
	}

	// Left node of the bracketing interval, in padded indexing (real
	// samples occupy padded indices 2..n+1).
	i := int(math.Floor(pos)) + 2
	if last := len(sp.yp) - 4; i > last {
		i = last
	}
	t := pos - float64(i-2)

	r := sp.yp
	a0 := r[i]
	a1 := (2*r[i-2] - 16*r[i-1] + 16*r[i+1] - 2*r[i+2]) / 24
	a2 := (-r[i-2] + 16*r[i-1] - 30*r[i] + 16*r[i+1] - r[i+2]) / 24
	a3 := (-9*r[i-2] + 39*r[i-1] - 70*r[i] + 66*r[i+1] - 33*r[i+2] + 7*r[i+3]) / 24
	a4 := (13*r[i-2] - 64*r[i-1] + 126*r[i] - 124*r[i+1] + 61*r[i+2] - 12*r[i+3]) / 24
	a5 := (-5*r[i-2] + 25*r[i-1] - 50*r[i] + 50*r[i+1] - 25*r[i+2] + 5*r[i+3]) / 24

	return a0 + t*(a1+t*(a2+t*(a3+t*(a4+t*a5)))), nil
}

// EvaluateAll evaluates the interpolant at all given x values,
// preserving input order. Same output-slice and whole-batch-failure
// contract as Linear.EvaluateAll.
func (sp *Sprague) EvaluateAll(xs []float64, out ...[]float64) ([]float64, error) {
	if len(out) == 0 {
		out = [][]float64{make([]float64, len(xs))}
	}

	for i, x := range xs {
		y, err := sp.Evaluate(x)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		out[0][i] = y
	}

	return out[0], nil
}

// Domain returns the inclusive evaluation bounds [lo, hi].
func (sp *Sprague) Domain() (lo, hi float64) {
	return sp.xs[0], sp.xs[len(sp.xs)-1]
}

// Samples returns copies of the fitted sample series.
func (sp *Sprague) Samples() (xs, ys []float64) {
	return slices.Clone(sp.xs), slices.Clone(sp.ys)
}

// dot6 is the fixed-size dot product used by the boundary extension.
func dot6(c [6]float64, y []float64) float64 {
	return c[0]*y[0] + c[1]*y[1] + c[2]*y[2] + c[3]*y[3] + c[4]*y[4] + c[5]*y[5]
}
