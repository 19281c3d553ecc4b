// SPDX-License-Identifier: MIT
// Package matx_test: construction and indexing of the Dense container.
package matx_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aflaxman/stan/matx"
	"github.com/aflaxman/stan/scalar"
)

// TestNewDense covers shape validation and the zero fill.
func TestNewDense(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		r, c    int
		wantErr error
	}{
		{"valid", 2, 3, nil},
		{"zero rows", 0, 3, matx.ErrBadShape},
		{"negative cols", 2, -1, matx.ErrBadShape},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			m, err := matx.NewDense[scalar.F64](tc.r, tc.c)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.r, m.Rows())
			assert.Equal(t, tc.c, m.Cols())
			v, err := m.At(1, 2)
			require.NoError(t, err)
			assert.Zero(t, v.Float(), "fresh matrix is zero-filled")
		})
	}
}

// TestAtSet_Bounds verifies checked indexing returns ErrOutOfRange instead
// of panicking.
func TestAtSet_Bounds(t *testing.T) {
	t.Parallel()

	m, err := matx.NewDense[scalar.F64](2, 2)
	require.NoError(t, err)

	require.NoError(t, m.Set(1, 0, scalar.F64(4.5)))
	v, err := m.At(1, 0)
	require.NoError(t, err)
	assert.Equal(t, 4.5, v.Float())

	_, err = m.At(2, 0)
	assert.ErrorIs(t, err, matx.ErrOutOfRange)
	_, err = m.At(0, -1)
	assert.ErrorIs(t, err, matx.ErrOutOfRange)
	assert.ErrorIs(t, m.Set(0, 2, scalar.F64(1)), matx.ErrOutOfRange)
}

// TestFromRows covers rectangular input, ragged rejection and emptiness.
func TestFromRows(t *testing.T) {
	t.Parallel()

	m, err := matx.FromRows([][]scalar.F64{{1, 2}, {3, 4}, {5, 6}})
	require.NoError(t, err)
	assert.Equal(t, 3, m.Rows())
	assert.Equal(t, 2, m.Cols())

	_, err = matx.FromRows([][]scalar.F64{{1, 2}, {3}})
	assert.ErrorIs(t, err, matx.ErrBadShape, "ragged rows rejected")

	_, err = matx.FromRows([][]scalar.F64{})
	assert.ErrorIs(t, err, matx.ErrBadShape)
}

// TestIdentity_And_Clone checks the identity constructor and deep copying.
func TestIdentity_And_Clone(t *testing.T) {
	t.Parallel()

	eye, err := matx.Identity[scalar.F64](3)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			v, err := eye.At(i, j)
			require.NoError(t, err)
			if i == j {
				assert.Equal(t, 1.0, v.Float())
			} else {
				assert.Zero(t, v.Float())
			}
		}
	}

	c := eye.Clone()
	require.NoError(t, c.Set(0, 0, scalar.F64(9)))
	v, err := eye.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, v.Float(), "clone must not alias the original")
}

// TestFromFloats verifies lifting into the differentiable rendition.
func TestFromFloats(t *testing.T) {
	t.Parallel()

	m, err := matx.FromFloats[scalar.Dual]([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)
	v, err := m.At(1, 1)
	require.NoError(t, err)
	assert.Equal(t, 4.0, v.Float())
	assert.True(t, v.Const(), "lifted entries are fixed data")
}
