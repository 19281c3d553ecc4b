// SPDX-License-Identifier: MIT
// Package check: scalar and size predicates. Each follows the same shape:
// test the constraint on the primal value, and on failure report through
// the policy, write the sentinel into the accumulator and return false.
// Comparisons are written so NaN always fails.

package check

import (
	"fmt"
	"math"

	"github.com/aflaxman/stan/scalar"
)

// fail reports the error, writes the sentinel and returns false.
func fail[T scalar.Real[T]](de *DomainError, lp *T, pol Policy) bool {
	pol.report(de)
	*lp = scalar.Lift[T](pol.Sentinel())

	return false
}

// Report routes an externally constructed DomainError through the policy,
// writing the sentinel into the accumulator. It always returns false so an
// evaluator can fail in one expression. Build the error with NewDomainError.
func Report[T scalar.Real[T]](de *DomainError, lp *T, pol Policy) bool {
	return fail(de, lp, pol)
}

// Finite reports whether x is neither NaN nor ±Inf.
func Finite[T scalar.Real[T]](fn string, x T, name string, lp *T, pol Policy) bool {
	v := x.Float()
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fail(&DomainError{
			Function: fn, Argument: name, Constraint: "finite",
			Value: v, sentinel: ErrNotFinite,
		}, lp, pol)
	}

	return true
}

// Bounded reports whether x lies in the inclusive interval [lo, hi].
func Bounded[T scalar.Real[T]](fn string, x T, lo, hi float64, name string, lp *T, pol Policy) bool {
	v := x.Float()
	if !(v >= lo && v <= hi) {
		return fail(&DomainError{
			Function: fn, Argument: name,
			Constraint: fmt.Sprintf("in [%g, %g]", lo, hi),
			Value:      v, sentinel: ErrOutOfBounds,
		}, lp, pol)
	}

	return true
}

// BoundedInt is Bounded for integer data arguments.
func BoundedInt[T scalar.Real[T]](fn string, n, lo, hi int, name string, lp *T, pol Policy) bool {
	if n < lo || n > hi {
		return fail(&DomainError{
			Function: fn, Argument: name,
			Constraint: fmt.Sprintf("in [%d, %d]", lo, hi),
			Value:      float64(n), sentinel: ErrOutOfBounds,
		}, lp, pol)
	}

	return true
}

// Nonnegative reports whether x >= 0.
func Nonnegative[T scalar.Real[T]](fn string, x T, name string, lp *T, pol Policy) bool {
	v := x.Float()
	if !(v >= 0) {
		return fail(&DomainError{
			Function: fn, Argument: name, Constraint: "non-negative",
			Value: v, sentinel: ErrNegative,
		}, lp, pol)
	}

	return true
}

// NonnegativeInt is Nonnegative for integer data arguments.
func NonnegativeInt[T scalar.Real[T]](fn string, n int, name string, lp *T, pol Policy) bool {
	if n < 0 {
		return fail(&DomainError{
			Function: fn, Argument: name, Constraint: "non-negative",
			Value: float64(n), sentinel: ErrNegative,
		}, lp, pol)
	}

	return true
}

// Positive reports whether x > 0.
func Positive[T scalar.Real[T]](fn string, x T, name string, lp *T, pol Policy) bool {
	v := x.Float()
	if !(v > 0) {
		return fail(&DomainError{
			Function: fn, Argument: name, Constraint: "positive",
			Value: v, sentinel: ErrBelowMinimum,
		}, lp, pol)
	}

	return true
}

// GreaterOrEqual reports whether x >= lo.
func GreaterOrEqual[T scalar.Real[T]](fn string, x T, lo float64, name string, lp *T, pol Policy) bool {
	v := x.Float()
	if !(v >= lo) {
		return fail(&DomainError{
			Function: fn, Argument: name,
			Constraint: fmt.Sprintf(">= %g", lo),
			Value:      v, sentinel: ErrBelowMinimum,
		}, lp, pol)
	}

	return true
}

// SizeMatch reports whether two paired structural dimensions are equal.
// The offending value reported is the first dimension.
func SizeMatch[T scalar.Real[T]](fn string, got, want int, name string, lp *T, pol Policy) bool {
	if got != want {
		return fail(&DomainError{
			Function: fn, Argument: name,
			Constraint: fmt.Sprintf("size %d matches size %d", got, want),
			Value:      float64(got), sentinel: ErrSizeMismatch,
		}, lp, pol)
	}

	return true
}
