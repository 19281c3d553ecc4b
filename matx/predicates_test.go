// SPDX-License-Identifier: MIT
// Package matx_test: structural predicates.
package matx_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aflaxman/stan/matx"
	"github.com/aflaxman/stan/scalar"
)

// TestIsSymmetric covers symmetry, tolerance behavior and shape guards.
func TestIsSymmetric(t *testing.T) {
	t.Parallel()

	sym, err := matx.FromFloats[scalar.F64]([][]float64{{2, 1}, {1, 2}})
	require.NoError(t, err)
	almost, err := matx.FromFloats[scalar.F64]([][]float64{{2, 1 + 1e-12}, {1, 2}})
	require.NoError(t, err)
	skew, err := matx.FromFloats[scalar.F64]([][]float64{{0, 1}, {-1, 0}})
	require.NoError(t, err)

	ok, err := matx.IsSymmetric(sym, matx.DefaultSymmetryEps)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = matx.IsSymmetric(almost, matx.DefaultSymmetryEps)
	require.NoError(t, err)
	assert.True(t, ok, "deviation below eps passes")

	ok, err = matx.IsSymmetric(skew, matx.DefaultSymmetryEps)
	require.NoError(t, err)
	assert.False(t, ok)

	rect, err := matx.NewDense[scalar.F64](2, 3)
	require.NoError(t, err)
	_, err = matx.IsSymmetric(rect, matx.DefaultSymmetryEps)
	assert.ErrorIs(t, err, matx.ErrNonSquare)
}

// TestIsPositiveSemidefinite covers definite, semidefinite, indefinite and
// negative-definite inputs.
func TestIsPositiveSemidefinite(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		rows [][]float64
		want bool
	}{
		{"identity", [][]float64{{1, 0}, {0, 1}}, true},
		{"definite", [][]float64{{2, 1}, {1, 2}}, true},
		{"semidefinite rank-1", [][]float64{{1, 1}, {1, 1}}, true},
		{"zero matrix", [][]float64{{0, 0}, {0, 0}}, true},
		{"indefinite", [][]float64{{1, 2}, {2, 1}}, false},
		{"negative definite", [][]float64{{-1, 0}, {0, -1}}, false},
		{"psd rank-2 of 3", [][]float64{{4, 2, 0}, {2, 1, 0}, {0, 0, 3}}, true},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			m, err := matx.FromFloats[scalar.F64](tc.rows)
			require.NoError(t, err)
			got, err := matx.IsPositiveSemidefinite(m, matx.DefaultPSDEps)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
