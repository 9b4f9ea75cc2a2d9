package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/colorimetry/matrix"
)

// TestIsIdentity_Accepts verifies exact and epsilon-close identities.
func TestIsIdentity_Accepts(t *testing.T) {
	assert.True(t, matrix.IsIdentity(mat.NewDense(3, 3, []float64{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	})))

	// Float residue from a conversion round trip stays within eps.
	assert.True(t, matrix.IsIdentity(mat.NewDense(2, 2, []float64{
		1 + 1e-13, 2e-13,
		-3e-14, 1 - 1e-13,
	})))
}

// TestIsIdentity_Rejects verifies failure on off-identity entries,
// non-square shapes and nil.
func TestIsIdentity_Rejects(t *testing.T) {
	assert.False(t, matrix.IsIdentity(mat.NewDense(3, 3, []float64{
		1, 2, 0,
		0, 1, 0,
		0, 0, 1,
	})), "off-diagonal entry beyond eps")

	assert.False(t, matrix.IsIdentity(mat.NewDense(2, 3, []float64{
		1, 0, 0,
		0, 1, 0,
	})), "non-square matrix is never the identity")

	assert.False(t, matrix.IsIdentity(nil), "nil fails the predicate, never panics")
}

// TestIsIdentity_EpsilonControl verifies that WithEpsilon moves the
// accept/reject boundary.
func TestIsIdentity_EpsilonControl(t *testing.T) {
	near := mat.NewDense(2, 2, []float64{
		1, 1e-6,
		0, 1,
	})

	assert.False(t, matrix.IsIdentity(near), "1e-6 residue exceeds the default tolerance")
	assert.True(t, matrix.IsIdentity(near, matrix.WithEpsilon(1e-5)))
}

// TestAllClose verifies shape and element-wise agreement semantics.
func TestAllClose(t *testing.T) {
	a := mat.NewDense(2, 2, []float64{1, 2, 3, 4})
	b := mat.NewDense(2, 2, []float64{1, 2, 3, 4 + 1e-13})

	assert.True(t, matrix.AllClose(a, b))
	assert.False(t, matrix.AllClose(a, mat.NewDense(2, 2, []float64{1, 2, 3, 5})))
	assert.False(t, matrix.AllClose(a, mat.NewDense(1, 4, []float64{1, 2, 3, 4})),
		"same data, different shape")
	assert.False(t, matrix.AllClose(a, nil))
	assert.True(t, matrix.AllClose(nil, nil))
}

// TestAllClose_NaN verifies that NaN entries never compare close.
func TestAllClose_NaN(t *testing.T) {
	a := mat.NewDense(1, 1, []float64{math.NaN()})

	assert.False(t, matrix.AllClose(a, a))
}

// TestWithEpsilon_PanicsOnInvalid verifies the programmer-error guard.
func TestWithEpsilon_PanicsOnInvalid(t *testing.T) {
	assert.Panics(t, func() { matrix.WithEpsilon(-1) })
	assert.Panics(t, func() { matrix.WithEpsilon(math.NaN()) })
}
