// SPDX-License-Identifier: MIT
// Package matx: interop with gonum/mat for float64 matrices. The generic
// kernels exist for the differentiable instantiation; anything float64-only
// and performance-critical should cross this bridge and use gonum.

package matx

import (
	"gonum.org/v1/gonum/mat"

	"github.com/aflaxman/stan/scalar"
)

// ToGonum projects m onto a gonum dense matrix of its primal values.
// For T = scalar.F64 the projection is lossless; for differentiable
// renditions the derivative parts are dropped.
// Errors: ErrNilMatrix.
func ToGonum[T scalar.Real[T]](m *Dense[T]) (*mat.Dense, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}

	data := make([]float64, len(m.data))
	for i, v := range m.data {
		data[i] = v.Float()
	}

	return mat.NewDense(m.rows, m.cols, data), nil
}

// FromGonum copies a gonum matrix into the plain rendition.
// Errors: ErrNilMatrix for a nil source, ErrBadShape for an empty one.
func FromGonum(src mat.Matrix) (*Dense[scalar.F64], error) {
	if src == nil {
		return nil, ErrNilMatrix
	}
	r, c := src.Dims()
	out, err := NewDense[scalar.F64](r, c)
	if err != nil {
		return nil, err
	}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out.set(i, j, scalar.F64(src.At(i, j)))
		}
	}

	return out, nil
}
