// SPDX-License-Identifier: MIT
// Package mathx: link functions for generalized linear models — the logit,
// complementary log-log and probit maps and their inverses.

package mathx

import (
	"github.com/aflaxman/stan/scalar"
)

// invSqrt2 is 1/√2, the erf argument scale of the normal CDF.
const invSqrt2 = 1.0 / Sqrt2

// PhiApprox polynomial coefficients (logistic approximation of the normal
// CDF; maximum absolute error ≈ 1.4e-4).
const (
	phiApproxCubic  = 0.07056
	phiApproxLinear = 1.5976
)

// Logit returns the log-odds log(x/(1−x)) of a probability x ∈ (0,1).
// Endpoints map to ∓∞; values outside [0,1] yield NaN.
func Logit[T scalar.Real[T]](x T) T {
	return x.Div(x.Neg().Shift(1)).Log()
}

// InvLogit returns the logistic function 1/(1+exp(−a)), the inverse of
// Logit. The closed form cannot overflow: exp(−a) saturating to +∞ drives
// the result to 0, never to NaN.
func InvLogit[T scalar.Real[T]](a T) T {
	return scalar.Lift[T](1).Div(a.Neg().Exp().Shift(1))
}

// CLogLog returns the complementary log-log map log(−log(x)) for
// x ∈ (0,1). It is the exact inverse of InvCLogLog.
func CLogLog[T scalar.Real[T]](x T) T {
	return x.Log().Neg().Log()
}

// InvCLogLog returns exp(−exp(x)), the inverse complementary log-log map
// onto (0,1).
func InvCLogLog[T scalar.Real[T]](x T) T {
	return x.Exp().Neg().Exp()
}

// Phi returns the unit normal cumulative distribution function
//
//	Φ(x) = (1 + erf(x/√2)) / 2,
//
// exact via the error function.
func Phi[T scalar.Real[T]](x T) T {
	return x.Scale(invSqrt2).Erf().Shift(1).Scale(0.5)
}

// PhiApprox returns the logistic approximation of the unit normal CDF,
//
//	Φ̃(x) = inv_logit(0.07056·x³ + 1.5976·x),
//
// for speed-sensitive paths that tolerate ~1e-4 absolute error.
func PhiApprox[T scalar.Real[T]](x T) T {
	cubic := x.Mul(x).Mul(x).Scale(phiApproxCubic)

	return InvLogit(cubic.Add(x.Scale(phiApproxLinear)))
}
