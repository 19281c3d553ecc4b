// SPDX-License-Identifier: MIT
// Package mathx_test: softmax — simplex property, shift invariance,
// overflow guard and the additive-constant inverse.
package mathx_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"

	"github.com/aflaxman/stan/mathx"
	"github.com/aflaxman/stan/scalar"
)

// lift converts a float64 slice into the plain rendition.
func lift(vs ...float64) []scalar.F64 {
	out := make([]scalar.F64, len(vs))
	for i, v := range vs {
		out[i] = scalar.F64(v)
	}

	return out
}

// floatsOf projects a scalar slice back to float64 for oracle comparison.
func floatsOf(xs []scalar.F64) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = x.Float()
	}

	return out
}

// TestSoftmax_Simplex verifies non-negativity and Σ = 1 within 1e-9.
func TestSoftmax_Simplex(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		x    []scalar.F64
	}{
		{"plain", lift(0.5, -1.2, 2.0, 0.0)},
		{"single", lift(3.0)},
		{"overflow guard", lift(1000, 1000.1, 999.9)},
		{"deep negative", lift(-1000, -1000.1, -999.9)},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			simplex := make([]scalar.F64, len(tc.x))
			require.NoError(t, mathx.Softmax(tc.x, simplex))

			out := floatsOf(simplex)
			for i, v := range out {
				assert.GreaterOrEqualf(t, v, 0.0, "entry %d non-negative", i)
				assert.False(t, math.IsNaN(v), "no NaN leakage")
			}
			assert.InDelta(t, 1.0, floats.Sum(out), 1e-9, "softmax output sums to 1")
		})
	}
}

// TestSoftmax_ShiftInvariance checks softmax(x) = softmax(x + c·1),
// probed at the overflow-prone magnitudes from the x=[1000,…] family.
func TestSoftmax_ShiftInvariance(t *testing.T) {
	t.Parallel()

	base := lift(0.0, 0.1, -0.1)
	shifted := lift(1000.0, 1000.1, 999.9)

	a := make([]scalar.F64, 3)
	b := make([]scalar.F64, 3)
	require.NoError(t, mathx.Softmax(base, a))
	require.NoError(t, mathx.Softmax(shifted, b))

	for i := range a {
		assert.InDeltaf(t, a[i].Float(), b[i].Float(), 1e-12, "component %d", i)
	}
}

// TestSoftmax_ShapeErrors covers the empty-input and length-mismatch
// sentinels.
func TestSoftmax_ShapeErrors(t *testing.T) {
	t.Parallel()

	err := mathx.Softmax([]scalar.F64{}, []scalar.F64{})
	assert.ErrorIs(t, err, mathx.ErrEmptyInput)

	err = mathx.Softmax(lift(1, 2), make([]scalar.F64, 3))
	assert.ErrorIs(t, err, mathx.ErrSizeMismatch)

	err = mathx.InverseSoftmax(lift(0.5, 0.5), make([]scalar.F64, 1))
	assert.ErrorIs(t, err, mathx.ErrSizeMismatch)

	err = mathx.InverseSoftmax([]scalar.F64{}, []scalar.F64{})
	assert.ErrorIs(t, err, mathx.ErrEmptyInput)
}

// TestInverseSoftmax_RoundTrip verifies softmax(inverse_softmax(s)) = s for
// a simplex s, and that the reverse composition recovers the input only up
// to an additive constant.
func TestInverseSoftmax_RoundTrip(t *testing.T) {
	t.Parallel()

	s := lift(0.1, 0.2, 0.3, 0.4)
	y := make([]scalar.F64, 4)
	require.NoError(t, mathx.InverseSoftmax(s, y))

	back := make([]scalar.F64, 4)
	require.NoError(t, mathx.Softmax(y, back))
	for i := range s {
		assert.InDeltaf(t, s[i].Float(), back[i].Float(), 1e-12, "component %d", i)
	}

	// inverse(softmax(v)) = v + c: the differences v[i] − result[i] agree
	v := lift(1.5, -0.25, 0.0)
	sm := make([]scalar.F64, 3)
	require.NoError(t, mathx.Softmax(v, sm))
	inv := make([]scalar.F64, 3)
	require.NoError(t, mathx.InverseSoftmax(sm, inv))

	c0 := v[0].Float() - inv[0].Float()
	for i := 1; i < 3; i++ {
		assert.InDeltaf(t, c0, v[i].Float()-inv[i].Float(), 1e-12,
			"additive constant must be shared, component %d", i)
	}
}

// TestSoftmax_Dual verifies the derivative of softmax component i with
// respect to a tracked x[j]: s_i(δ_ij − s_j).
func TestSoftmax_Dual(t *testing.T) {
	t.Parallel()

	x := []scalar.Dual{
		scalar.Var(0.2), // derivatives taken w.r.t. this component
		scalar.Lift[scalar.Dual](-0.4),
		scalar.Lift[scalar.Dual](1.1),
	}
	simplex := make([]scalar.Dual, 3)
	require.NoError(t, mathx.Softmax(x, simplex))

	s := make([]float64, 3)
	for i := range simplex {
		s[i] = simplex[i].Float()
	}
	assert.InDelta(t, s[0]*(1-s[0]), simplex[0].Deriv(), 1e-12, "diagonal term")
	assert.InDelta(t, -s[1]*s[0], simplex[1].Deriv(), 1e-12, "off-diagonal term")
	assert.InDelta(t, -s[2]*s[0], simplex[2].Deriv(), 1e-12, "off-diagonal term")
}
