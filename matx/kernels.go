// SPDX-License-Identifier: MIT
// Package matx: linear-algebra kernels — Mul, Transpose, Trace, Det,
// Inverse. Each kernel validates once at its boundary (nil → shape) and
// then runs on the unchecked accessors with deterministic loop order.

package matx

import (
	"math"

	"github.com/aflaxman/stan/scalar"
)

// Mul returns the matrix product a·b.
// Errors: ErrNilMatrix, ErrDimensionMismatch (a.Cols != b.Rows).
// Complexity: O(r·k·c).
func Mul[T scalar.Real[T]](a, b *Dense[T]) (*Dense[T], error) {
	if a == nil || b == nil {
		return nil, ErrNilMatrix
	}
	if a.cols != b.rows {
		return nil, ErrDimensionMismatch
	}

	out, err := NewDense[T](a.rows, b.cols)
	if err != nil {
		return nil, err
	}
	for i := 0; i < a.rows; i++ {
		for j := 0; j < b.cols; j++ {
			sum := scalar.Lift[T](0)
			for k := 0; k < a.cols; k++ {
				sum = sum.Add(a.at(i, k).Mul(b.at(k, j)))
			}
			out.set(i, j, sum)
		}
	}

	return out, nil
}

// Transpose returns aᵀ.
// Errors: ErrNilMatrix.
func Transpose[T scalar.Real[T]](a *Dense[T]) (*Dense[T], error) {
	if a == nil {
		return nil, ErrNilMatrix
	}

	out, err := NewDense[T](a.cols, a.rows)
	if err != nil {
		return nil, err
	}
	for i := 0; i < a.rows; i++ {
		for j := 0; j < a.cols; j++ {
			out.set(j, i, a.at(i, j))
		}
	}

	return out, nil
}

// Trace returns the sum of the diagonal of a square matrix.
// Errors: ErrNilMatrix, ErrNonSquare.
func Trace[T scalar.Real[T]](a *Dense[T]) (T, error) {
	var zero T
	if a == nil {
		return zero, ErrNilMatrix
	}
	if !a.IsSquare() {
		return zero, ErrNonSquare
	}

	sum := scalar.Lift[T](0)
	for i := 0; i < a.rows; i++ {
		sum = sum.Add(a.at(i, i))
	}

	return sum, nil
}

// Det returns the determinant of a square matrix by LU elimination with
// partial pivoting. Pivots are chosen on |primal| only, so plain and
// differentiable instantiations take the same elimination path. A zero
// pivot column means the matrix is singular and the determinant is exactly
// zero — that is a value, not an error.
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: O(n³).
func Det[T scalar.Real[T]](a *Dense[T]) (T, error) {
	var zero T
	if a == nil {
		return zero, ErrNilMatrix
	}
	if !a.IsSquare() {
		return zero, ErrNonSquare
	}

	n := a.rows
	w := a.Clone()
	det := scalar.Lift[T](1)
	sign := 1.0

	for col := 0; col < n; col++ {
		pivot := col
		best := math.Abs(w.at(col, col).Float())
		for r := col + 1; r < n; r++ {
			if v := math.Abs(w.at(r, col).Float()); v > best {
				pivot, best = r, v
			}
		}
		if best == 0 {
			return scalar.Lift[T](0), nil
		}
		if pivot != col {
			w.swapRows(pivot, col)
			sign = -sign
		}

		p := w.at(col, col)
		det = det.Mul(p)
		for r := col + 1; r < n; r++ {
			factor := w.at(r, col).Div(p)
			for c := col; c < n; c++ {
				w.set(r, c, w.at(r, c).Sub(factor.Mul(w.at(col, c))))
			}
		}
	}

	return det.Scale(sign), nil
}

// Inverse returns a⁻¹ by Gauss–Jordan elimination with partial pivoting.
// Errors: ErrNilMatrix, ErrNonSquare, ErrSingular.
// Complexity: O(n³).
func Inverse[T scalar.Real[T]](a *Dense[T]) (*Dense[T], error) {
	if a == nil {
		return nil, ErrNilMatrix
	}
	if !a.IsSquare() {
		return nil, ErrNonSquare
	}

	n := a.rows
	w := a.Clone()
	out, err := Identity[T](n)
	if err != nil {
		return nil, err
	}

	for col := 0; col < n; col++ {
		pivot := col
		best := math.Abs(w.at(col, col).Float())
		for r := col + 1; r < n; r++ {
			if v := math.Abs(w.at(r, col).Float()); v > best {
				pivot, best = r, v
			}
		}
		if best == 0 {
			return nil, ErrSingular
		}
		if pivot != col {
			w.swapRows(pivot, col)
			out.swapRows(pivot, col)
		}

		p := w.at(col, col)
		for c := 0; c < n; c++ {
			w.set(col, c, w.at(col, c).Div(p))
			out.set(col, c, out.at(col, c).Div(p))
		}
		for r := 0; r < n; r++ {
			if r == col {
				continue
			}
			factor := w.at(r, col)
			for c := 0; c < n; c++ {
				w.set(r, c, w.at(r, c).Sub(factor.Mul(w.at(col, c))))
				out.set(r, c, out.at(r, c).Sub(factor.Mul(out.at(col, c))))
			}
		}
	}

	return out, nil
}

// swapRows exchanges rows i and j in place.
func (m *Dense[T]) swapRows(i, j int) {
	if i == j {
		return
	}
	ri := m.data[i*m.cols : (i+1)*m.cols]
	rj := m.data[j*m.cols : (j+1)*m.cols]
	for k := range ri {
		ri[k], rj[k] = rj[k], ri[k]
	}
}
