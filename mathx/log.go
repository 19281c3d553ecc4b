// SPDX-License-Identifier: MIT
// Package mathx: logarithmic primitives with cancellation and overflow
// guards. Every function here branches on the primal value only, so the
// same code path carries derivatives when instantiated at scalar.Dual.

package mathx

import (
	"math"

	"github.com/aflaxman/stan/scalar"
)

// Log1p returns log(1+x).
//
// Stabilization regimes:
//   - |x| > Log1pTaylorThreshold: direct log(1+x);
//   - Log1pLinearThreshold < |x| ≤ Log1pTaylorThreshold: second-order
//     Taylor x − x²/2, avoiding the 1+x cancellation;
//   - |x| ≤ Log1pLinearThreshold: x itself (exact to double precision).
//
// x < −1 is outside the domain and yields NaN.
func Log1p[T scalar.Real[T]](x T) T {
	v := x.Float()
	switch {
	case v < -1 || math.IsNaN(v):
		return scalar.Lift[T](NaN)
	case v > Log1pTaylorThreshold || v < -Log1pTaylorThreshold:
		return x.Shift(1).Log()
	case v > Log1pLinearThreshold || v < -Log1pLinearThreshold:
		return x.Sub(x.Mul(x).Scale(0.5))
	default:
		return x
	}
}

// Log1m returns log(1−x), stabilized as Log1p(−x).
// x > 1 is outside the domain and yields NaN.
func Log1m[T scalar.Real[T]](x T) T {
	return Log1p(x.Neg())
}

// Log1pExp returns log(1+exp(a)) without overflow for large a and without
// underflow for very negative a:
//
//	a > 0:  a + log1p(exp(−a))
//	a ≤ 0:  log1p(exp(a))
//
// Equivalently LogSumExp(0, a).
func Log1pExp[T scalar.Real[T]](a T) T {
	if a.Float() > 0 {
		return a.Add(Log1p(a.Neg().Exp()))
	}

	return Log1p(a.Exp())
}

// LogInvLogit returns log(inv_logit(u)) = −log(1+exp(−u)), computed on the
// branch that keeps the inner exponential ≤ 1 so it never underflows.
func LogInvLogit[T scalar.Real[T]](u T) T {
	if u.Float() < 0 {
		return u.Sub(Log1p(u.Exp()))
	}

	return Log1p(u.Neg().Exp()).Neg()
}

// Log1mInvLogit returns log(1 − inv_logit(u)), the mirrored branch of
// LogInvLogit.
func Log1mInvLogit[T scalar.Real[T]](u T) T {
	if u.Float() > 0 {
		return u.Neg().Sub(Log1p(u.Neg().Exp()))
	}

	return Log1p(u.Exp()).Neg()
}

// MultiplyLog returns a·log(b), with the limiting value
// MultiplyLog(0,0) = 0 instead of the naive 0·(−∞) = NaN.
func MultiplyLog[T scalar.Real[T]](a, b T) T {
	if a.Float() == 0 && b.Float() == 0 {
		return scalar.Lift[T](0)
	}

	return a.Mul(b.Log())
}

// LogSumExp returns log(exp(a)+exp(b)) = m + log1p(exp(min−m)) with
// m = max(a,b), never overflowing for arbitrarily large inputs. A −∞
// argument is an exact identity: LogSumExp(a, −∞) = a.
func LogSumExp[T scalar.Real[T]](a, b T) T {
	av, bv := a.Float(), b.Float()
	if math.IsInf(av, -1) && math.IsInf(bv, -1) {
		// both terms are exp(−∞) = 0; the shifted form would produce ∞−∞
		return scalar.Lift[T](NegInf)
	}
	if av > bv {
		return a.Add(Log1p(b.Sub(a).Exp()))
	}

	return b.Add(Log1p(a.Sub(b).Exp()))
}

// LogSumExpVec returns log Σ exp(x[i]) over the whole slice, max-shifted so
// it never overflows. Entries equal to −∞ contribute exp(−∞) = 0 and are
// skipped rather than allowed to propagate NaN through the shift.
//
// Returns ErrEmptyInput for a zero-length slice.
func LogSumExpVec[T scalar.Real[T]](x []T) (T, error) {
	var zero T
	if len(x) == 0 {
		return zero, ErrEmptyInput
	}

	max := x[0]
	for _, xi := range x[1:] {
		if xi.Float() > max.Float() {
			max = xi
		}
	}
	if math.IsInf(max.Float(), -1) {
		return scalar.Lift[T](NegInf), nil
	}

	sum := scalar.Lift[T](0)
	for _, xi := range x {
		if math.IsInf(xi.Float(), -1) {
			continue
		}
		sum = sum.Add(xi.Sub(max).Exp())
	}

	return max.Add(sum.Log()), nil
}
