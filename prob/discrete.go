// SPDX-License-Identifier: MIT
// Package prob: discrete families.

package prob

import (
	"math"

	"github.com/aflaxman/stan/check"
	"github.com/aflaxman/stan/mathx"
	"github.com/aflaxman/stan/scalar"
)

// BernoulliLog returns the log mass of Bernoulli(n | θ) for n ∈ {0, 1} and
// θ ∈ [0, 1].
//
//	log p(n | θ) = n·log θ + (1−n)·log(1−θ)
//
// With propto=true and a constant θ the single summand is elided and the
// result is 0.
func BernoulliLog[T scalar.Real[T]](n int, theta T, propto bool, pol check.Policy) T {
	const fn = "prob.BernoulliLog"

	lp := scalar.Lift[T](0)
	if !check.BoundedInt(fn, n, 0, 1, "n", &lp, pol) {
		return lp
	}
	if !check.Finite(fn, theta, "theta", &lp, pol) {
		return lp
	}
	if !check.Bounded(fn, theta, 0, 1, "theta", &lp, pol) {
		return lp
	}

	if includeSummand(propto, theta) {
		if n == 1 {
			lp = lp.Add(theta.Log())
		} else {
			lp = lp.Add(mathx.Log1m(theta))
		}
	}

	return lp
}

// BinomialLog returns the log mass of Binomial(n | N, θ) for 0 ≤ n ≤ N and
// θ ∈ [0, 1].
//
//	log p(n | N, θ) = log C(N, n) + n·log θ + (N−n)·log(1−θ)
//
// The binomial coefficient depends only on the integer data, so propto=true
// always drops it; the remaining pair of summands survives exactly when θ is
// a tracked unknown. Consequently the full and proportional evaluations
// differ by BinomialCoefficientLog(N, n) regardless of θ.
func BinomialLog[T scalar.Real[T]](n, bigN int, theta T, propto bool, pol check.Policy) T {
	const fn = "prob.BinomialLog"

	lp := scalar.Lift[T](0)
	if !check.BoundedInt(fn, n, 0, bigN, "n", &lp, pol) {
		return lp
	}
	if !check.NonnegativeInt(fn, bigN, "N", &lp, pol) {
		return lp
	}
	if !check.Finite(fn, theta, "theta", &lp, pol) {
		return lp
	}
	if !check.Bounded(fn, theta, 0, 1, "theta", &lp, pol) {
		return lp
	}

	if includeSummand[T](propto) {
		lp = lp.Add(mathx.BinomialCoefficientLog(
			scalar.Lift[T](float64(bigN)), scalar.Lift[T](float64(n))))
	}
	if includeSummand(propto, theta) {
		lp = lp.Add(mathx.MultiplyLog(scalar.Lift[T](float64(n)), theta)).
			Add(mathx.Log1m(theta).Scale(float64(bigN - n)))
	}

	return lp
}

// PoissonLog returns the log mass of Poisson(n | λ) for n ≥ 0 and λ ≥ 0.
//
//	log p(n | λ) = −log n! + n·log λ − λ
//
// λ = 0 is a valid boundary: the n·log λ summand uses the 0·log 0 = 0
// convention, so the mass is 0 at n = 0 and −∞ otherwise.
func PoissonLog[T scalar.Real[T]](n int, lambda T, propto bool, pol check.Policy) T {
	const fn = "prob.PoissonLog"

	lp := scalar.Lift[T](0)
	if !check.NonnegativeInt(fn, n, "n", &lp, pol) {
		return lp
	}
	if !check.Finite(fn, lambda, "lambda", &lp, pol) {
		return lp
	}
	if !check.Nonnegative(fn, lambda, "lambda", &lp, pol) {
		return lp
	}

	if includeSummand[T](propto) {
		logFactorial, _ := math.Lgamma(float64(n) + 1)
		lp = lp.Shift(-logFactorial)
	}
	if includeSummand(propto, lambda) {
		lp = lp.Add(mathx.MultiplyLog(scalar.Lift[T](float64(n)), lambda)).
			Sub(lambda)
	}

	return lp
}
