// SPDX-License-Identifier: MIT
// Package matx: structural predicates used by the validation framework —
// symmetry and positive semi-definiteness. Predicates inspect the primal
// values only; they never contribute derivatives.

package matx

import (
	"math"

	"github.com/aflaxman/stan/scalar"
)

// Default tolerances for structural predicates. eps is absolute: entries
// within eps of the required value pass.
const (
	// DefaultSymmetryEps bounds |a[i][j] − a[j][i]| for IsSymmetric.
	DefaultSymmetryEps = 1e-9

	// DefaultPSDEps bounds the magnitude a pivot may fall below zero in
	// IsPositiveSemidefinite before the matrix is rejected.
	DefaultPSDEps = 1e-9
)

// IsSymmetric reports whether m equals its transpose within the absolute
// tolerance eps, checking the upper triangle only.
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: O(n²).
func IsSymmetric[T scalar.Real[T]](m *Dense[T], eps float64) (bool, error) {
	if m == nil {
		return false, ErrNilMatrix
	}
	if !m.IsSquare() {
		return false, ErrNonSquare
	}

	for i := 0; i < m.rows; i++ {
		for j := i + 1; j < m.cols; j++ {
			if math.Abs(m.at(i, j).Float()-m.at(j, i).Float()) > eps {
				return false, nil
			}
		}
	}

	return true, nil
}

// IsPositiveSemidefinite reports whether the symmetric matrix m is positive
// semi-definite within tolerance eps, by symmetric Gaussian elimination on
// a float64 projection: every pivot must stay above −eps, and a (near-)zero
// pivot forces its remaining row to be (near-)zero as well.
//
// The caller is responsible for symmetry; pass the matrix through
// IsSymmetric first. Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: O(n³).
func IsPositiveSemidefinite[T scalar.Real[T]](m *Dense[T], eps float64) (bool, error) {
	if m == nil {
		return false, ErrNilMatrix
	}
	if !m.IsSquare() {
		return false, ErrNonSquare
	}

	n := m.rows
	a := make([]float64, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			a[i*n+j] = m.at(i, j).Float()
		}
	}

	for k := 0; k < n; k++ {
		d := a[k*n+k]
		switch {
		case d < -eps || math.IsNaN(d):
			return false, nil
		case d <= eps:
			// semidefinite direction: the whole row must vanish
			for j := k + 1; j < n; j++ {
				if math.Abs(a[k*n+j]) > eps {
					return false, nil
				}
			}
		default:
			for i := k + 1; i < n; i++ {
				for j := k + 1; j < n; j++ {
					a[i*n+j] -= a[i*n+k] * a[k*n+j] / d
				}
			}
		}
	}

	return true, nil
}
