// SPDX-License-Identifier: MIT
// Package check: matrix predicates, delegating the structural tests to
// matx and keeping the reporting convention of the scalar checks. The
// offending value reported is the row dimension.

package check

import (
	"math"

	"github.com/aflaxman/stan/matx"
	"github.com/aflaxman/stan/scalar"
)

// matrixValue is the context value reported for a matrix argument.
func matrixValue[T scalar.Real[T]](m *matx.Dense[T]) float64 {
	if m == nil {
		return math.NaN()
	}

	return float64(m.Rows())
}

// Square reports whether m is non-nil and square.
func Square[T scalar.Real[T]](fn string, m *matx.Dense[T], name string, lp *T, pol Policy) bool {
	if m == nil {
		return fail(&DomainError{
			Function: fn, Argument: name, Constraint: "non-nil matrix",
			Value: math.NaN(), sentinel: ErrNilArgument,
		}, lp, pol)
	}
	if !m.IsSquare() {
		return fail(&DomainError{
			Function: fn, Argument: name, Constraint: "square matrix",
			Value: matrixValue(m), sentinel: ErrNonSquare,
		}, lp, pol)
	}

	return true
}

// Symmetric reports whether m is square and symmetric within the matx
// default tolerance. Callers check Square first if they want the more
// specific report for the non-square case.
func Symmetric[T scalar.Real[T]](fn string, m *matx.Dense[T], name string, lp *T, pol Policy) bool {
	if !Square(fn, m, name, lp, pol) {
		return false
	}

	ok, err := matx.IsSymmetric(m, matx.DefaultSymmetryEps)
	if err != nil || !ok {
		return fail(&DomainError{
			Function: fn, Argument: name, Constraint: "symmetric matrix",
			Value: matrixValue(m), sentinel: ErrAsymmetric,
		}, lp, pol)
	}

	return true
}

// PositiveSemidefinite reports whether m is square, symmetric and positive
// semi-definite within the matx default tolerances.
func PositiveSemidefinite[T scalar.Real[T]](fn string, m *matx.Dense[T], name string, lp *T, pol Policy) bool {
	if !Symmetric(fn, m, name, lp, pol) {
		return false
	}

	ok, err := matx.IsPositiveSemidefinite(m, matx.DefaultPSDEps)
	if err != nil || !ok {
		return fail(&DomainError{
			Function: fn, Argument: name, Constraint: "positive semi-definite matrix",
			Value: matrixValue(m), sentinel: ErrNotPositiveSemidefinite,
		}, lp, pol)
	}

	return true
}
