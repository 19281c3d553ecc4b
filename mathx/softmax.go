// SPDX-License-Identifier: MIT
// Package mathx: the softmax simplex transform and its log-space inverse.

package mathx

import (
	"github.com/aflaxman/stan/scalar"
)

// Softmax writes the softmax transform of x into simplex:
//
//	simplex[i] = exp(x[i] − max(x)) / Σ exp(x[k] − max(x)).
//
// Subtracting the maximum before exponentiating makes the transform safe
// for arbitrarily large inputs; the result is a simplex (entries
// non-negative, summing to 1 up to rounding). Input values are unbounded.
//
// Returns ErrEmptyInput when x is empty and ErrSizeMismatch when the two
// slices differ in length; simplex is untouched on error.
func Softmax[T scalar.Real[T]](x, simplex []T) error {
	if len(x) == 0 {
		return ErrEmptyInput
	}
	if len(x) != len(simplex) {
		return ErrSizeMismatch
	}

	maxX := x[0]
	for _, xi := range x[1:] {
		if xi.Float() > maxX.Float() {
			maxX = xi
		}
	}

	sum := scalar.Lift[T](0)
	for i, xi := range x {
		simplex[i] = xi.Sub(maxX).Exp()
		sum = sum.Add(simplex[i])
	}
	for i := range simplex {
		simplex[i] = simplex[i].Div(sum)
	}

	return nil
}

// InverseSoftmax writes the elementwise log of the simplex argument into y.
//
// This inverts Softmax only up to an additive constant: for any simplex s,
// Softmax(InverseSoftmax(s)) = s, but InverseSoftmax(Softmax(v)) = v + c
// for some scalar c. The map is therefore not bijective on unconstrained
// vectors. Simplex entries of 0 map to −∞ and entries of 1 to 0; the input
// is not checked for being a valid simplex.
//
// Returns ErrEmptyInput when simplex is empty and ErrSizeMismatch when the
// two slices differ in length.
func InverseSoftmax[T scalar.Real[T]](simplex, y []T) error {
	if len(simplex) == 0 {
		return ErrEmptyInput
	}
	if len(simplex) != len(y) {
		return ErrSizeMismatch
	}

	for i, si := range simplex {
		y[i] = si.Log()
	}

	return nil
}
