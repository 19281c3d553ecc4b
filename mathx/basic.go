// SPDX-License-Identifier: MIT
// Package mathx: small utility tier — C99-style helpers and step functions
// kept for generated model code.

package mathx

import "github.com/aflaxman/stan/scalar"

// Square returns x². Spelled as x·x so differentiable renditions avoid a
// general Pow.
func Square[T scalar.Real[T]](x T) T { return x.Mul(x) }

// Fma returns the fused form a·b + c.
func Fma[T scalar.Real[T]](a, b, c T) T { return a.Mul(b).Add(c) }

// Fdim returns the positive difference: a − b when a > b, else 0.
func Fdim[T scalar.Real[T]](a, b T) T {
	if a.Float() > b.Float() {
		return a.Sub(b)
	}

	return scalar.Lift[T](0)
}

// Exp2 returns 2**y = exp(y·log 2).
func Exp2[T scalar.Real[T]](y T) T { return y.Scale(Ln2).Exp() }

// Log2 returns the base-2 logarithm log(a)/log 2.
func Log2[T scalar.Real[T]](a T) T { return a.Log().Scale(1 / Ln2) }

// Step is the Heaviside function: 0 for y < 0, else 1.
func Step[T scalar.Real[T]](y T) int {
	if y.Float() < 0 {
		return 0
	}

	return 1
}

// IntStep is the strict integer step: 1 for y > 0, else 0.
func IntStep[T scalar.Real[T]](y T) int {
	if y.Float() > 0 {
		return 1
	}

	return 0
}

// BinaryLogLoss returns the log loss for outcome y ∈ {0,1} and prediction
// yHat ∈ [0,1]: −log(yHat) when y = 1, −log(1−yHat) otherwise (the latter
// through Log1m for stability near 1).
func BinaryLogLoss[T scalar.Real[T]](y int, yHat T) T {
	if y != 0 {
		return yHat.Log().Neg()
	}

	return Log1m(yHat).Neg()
}
