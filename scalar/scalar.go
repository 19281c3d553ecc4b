// SPDX-License-Identifier: MIT
// Package scalar: the Real constraint and the promotion primitive.

package scalar

// Real is the minimal arithmetic capability required by the special-function
// library and the distribution evaluators. It is deliberately small: every
// method corresponds to an operation some stabilized formula actually uses.
//
// The self-referential form (T's methods produce T) is what lets generic
// code accumulate results in the instantiated representation:
//
//	lp := scalar.Lift[T](0)
//	lp = lp.Add(theta.Log().Scale(float64(n)))
//
// Contract:
//   - All methods are pure; no method mutates its receiver.
//   - Float returns the plain numeric value (the primal for differentiable
//     renditions); generic code may branch on it.
//   - Const reports the Constant-ness Trait: true for fixed data, false for
//     a value derived from at least one tracked unknown.
//   - FromFloat lifts a plain constant into the receiver's representation;
//     the receiver's own value is ignored.
type Real[T any] interface {
	Add(T) T
	Sub(T) T
	Mul(T) T
	Div(T) T
	Neg() T
	Abs() T

	Exp() T
	Log() T
	Sqrt() T
	Pow(p float64) T
	Lgamma() T
	Erf() T

	// Scale and Shift fold a plain float64 coefficient into the value
	// without a Lift at the call site: Scale(c) = c·x, Shift(c) = x + c.
	Scale(c float64) T
	Shift(c float64) T

	Float() float64
	Const() bool
	FromFloat(v float64) T
}

// Lift promotes a plain float64 constant into the scalar representation T.
// It is the Go resolution of mixed-type promotion: data stays float64 at
// call sites and is lifted exactly where a formula needs it in T.
func Lift[T Real[T]](v float64) T {
	var zero T

	return zero.FromFloat(v)
}

// ConstAll reports whether every given value is a fixed constant.
// It is the n-ary form of the Constant-ness query used by proportional
// term elision.
func ConstAll[T Real[T]](xs ...T) bool {
	for _, x := range xs {
		if !x.Const() {
			return false
		}
	}

	return true
}
