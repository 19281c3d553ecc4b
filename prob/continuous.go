// SPDX-License-Identifier: MIT
// Package prob: univariate continuous families.

package prob

import (
	"github.com/aflaxman/stan/check"
	"github.com/aflaxman/stan/mathx"
	"github.com/aflaxman/stan/scalar"
)

// NormalLog returns the log density of Normal(y | μ, σ) for finite y, μ and
// σ > 0.
//
//	log p(y | μ, σ) = −½·((y−μ)/σ)² − log σ − ½·log(2π)
func NormalLog[T scalar.Real[T]](y, mu, sigma T, propto bool, pol check.Policy) T {
	const fn = "prob.NormalLog"

	lp := scalar.Lift[T](0)
	if !check.Finite(fn, y, "y", &lp, pol) {
		return lp
	}
	if !check.Finite(fn, mu, "mu", &lp, pol) {
		return lp
	}
	if !check.Finite(fn, sigma, "sigma", &lp, pol) {
		return lp
	}
	if !check.Positive(fn, sigma, "sigma", &lp, pol) {
		return lp
	}

	if includeSummand(propto, y, mu, sigma) {
		z := y.Sub(mu).Div(sigma)
		lp = lp.Add(mathx.Square(z).Scale(-0.5))
	}
	if includeSummand(propto, sigma) {
		lp = lp.Sub(sigma.Log())
	}
	if includeSummand[T](propto) {
		lp = lp.Shift(mathx.NegLogSqrtTwoPi)
	}

	return lp
}

// ExponentialLog returns the log density of Exponential(y | β) for y ≥ 0 and
// inverse scale β > 0.
//
//	log p(y | β) = log β − β·y
func ExponentialLog[T scalar.Real[T]](y, beta T, propto bool, pol check.Policy) T {
	const fn = "prob.ExponentialLog"

	lp := scalar.Lift[T](0)
	if !check.Finite(fn, y, "y", &lp, pol) {
		return lp
	}
	if !check.Nonnegative(fn, y, "y", &lp, pol) {
		return lp
	}
	if !check.Finite(fn, beta, "beta", &lp, pol) {
		return lp
	}
	if !check.Positive(fn, beta, "beta", &lp, pol) {
		return lp
	}

	if includeSummand(propto, beta) {
		lp = lp.Add(beta.Log())
	}
	if includeSummand(propto, y, beta) {
		lp = lp.Sub(beta.Mul(y))
	}

	return lp
}

// GammaLog returns the log density of Gamma(y | α, β) for y ≥ 0, shape α > 0
// and inverse scale β > 0.
//
//	log p(y | α, β) = −lgamma(α) + α·log β + (α−1)·log y − β·y
//
// y = 0 is a valid boundary handled by the 0·log 0 convention when α = 1.
func GammaLog[T scalar.Real[T]](y, alpha, beta T, propto bool, pol check.Policy) T {
	const fn = "prob.GammaLog"

	lp := scalar.Lift[T](0)
	if !check.Finite(fn, y, "y", &lp, pol) {
		return lp
	}
	if !check.Nonnegative(fn, y, "y", &lp, pol) {
		return lp
	}
	if !check.Finite(fn, alpha, "alpha", &lp, pol) {
		return lp
	}
	if !check.Positive(fn, alpha, "alpha", &lp, pol) {
		return lp
	}
	if !check.Finite(fn, beta, "beta", &lp, pol) {
		return lp
	}
	if !check.Positive(fn, beta, "beta", &lp, pol) {
		return lp
	}

	if includeSummand(propto, alpha) {
		lp = lp.Sub(alpha.Lgamma())
	}
	if includeSummand(propto, alpha, beta) {
		lp = lp.Add(mathx.MultiplyLog(alpha, beta))
	}
	if includeSummand(propto, alpha, y) {
		lp = lp.Add(mathx.MultiplyLog(alpha.Shift(-1), y))
	}
	if includeSummand(propto, beta, y) {
		lp = lp.Sub(beta.Mul(y))
	}

	return lp
}

// InvGammaLog returns the log density of InvGamma(y | α, β) for y > 0,
// shape α > 0 and scale β > 0.
//
//	log p(y | α, β) = −lgamma(α) + α·log β − (α+1)·log y − β/y
func InvGammaLog[T scalar.Real[T]](y, alpha, beta T, propto bool, pol check.Policy) T {
	const fn = "prob.InvGammaLog"

	lp := scalar.Lift[T](0)
	if !check.Finite(fn, y, "y", &lp, pol) {
		return lp
	}
	if !check.Positive(fn, y, "y", &lp, pol) {
		return lp
	}
	if !check.Finite(fn, alpha, "alpha", &lp, pol) {
		return lp
	}
	if !check.Positive(fn, alpha, "alpha", &lp, pol) {
		return lp
	}
	if !check.Finite(fn, beta, "beta", &lp, pol) {
		return lp
	}
	if !check.Positive(fn, beta, "beta", &lp, pol) {
		return lp
	}

	if includeSummand(propto, alpha) {
		lp = lp.Sub(alpha.Lgamma())
	}
	if includeSummand(propto, alpha, beta) {
		lp = lp.Add(mathx.MultiplyLog(alpha, beta))
	}
	if includeSummand(propto, alpha, y) {
		lp = lp.Sub(mathx.MultiplyLog(alpha.Shift(1), y))
	}
	if includeSummand(propto, beta, y) {
		lp = lp.Sub(beta.Div(y))
	}

	return lp
}

// ChiSquareLog returns the log density of ChiSquare(y | ν) for y ≥ 0 and
// degrees of freedom ν > 0.
//
//	log p(y | ν) = −lgamma(ν/2) − (ν/2)·log 2 + (ν/2 − 1)·log y − y/2
func ChiSquareLog[T scalar.Real[T]](y, nu T, propto bool, pol check.Policy) T {
	const fn = "prob.ChiSquareLog"

	lp := scalar.Lift[T](0)
	if !check.Finite(fn, y, "y", &lp, pol) {
		return lp
	}
	if !check.Nonnegative(fn, y, "y", &lp, pol) {
		return lp
	}
	if !check.Finite(fn, nu, "nu", &lp, pol) {
		return lp
	}
	if !check.Positive(fn, nu, "nu", &lp, pol) {
		return lp
	}

	halfNu := nu.Scale(0.5)
	if includeSummand(propto, nu) {
		lp = lp.Sub(halfNu.Lgamma()).Sub(halfNu.Scale(mathx.Ln2))
	}
	if includeSummand(propto, nu, y) {
		lp = lp.Add(mathx.MultiplyLog(halfNu.Shift(-1), y))
	}
	if includeSummand(propto, y) {
		lp = lp.Sub(y.Scale(0.5))
	}

	return lp
}

// InvChiSquareLog returns the log density of InvChiSquare(y | ν) for y > 0
// and degrees of freedom ν > 0.
//
//	log p(y | ν) = −(ν/2)·log 2 − lgamma(ν/2) − (ν/2 + 1)·log y − 1/(2y)
//
// Every summand depends on y or ν, so propto=true over constants yields
// exactly 0.
func InvChiSquareLog[T scalar.Real[T]](y, nu T, propto bool, pol check.Policy) T {
	const fn = "prob.InvChiSquareLog"

	lp := scalar.Lift[T](0)
	if !check.Finite(fn, y, "y", &lp, pol) {
		return lp
	}
	if !check.Positive(fn, y, "y", &lp, pol) {
		return lp
	}
	if !check.Finite(fn, nu, "nu", &lp, pol) {
		return lp
	}
	if !check.Positive(fn, nu, "nu", &lp, pol) {
		return lp
	}

	halfNu := nu.Scale(0.5)
	if includeSummand(propto, nu) {
		lp = lp.Sub(halfNu.Scale(mathx.Ln2)).Sub(halfNu.Lgamma())
	}
	if includeSummand(propto, nu, y) {
		lp = lp.Sub(mathx.MultiplyLog(halfNu.Shift(1), y))
	}
	if includeSummand(propto, y) {
		lp = lp.Sub(y.Scale(2).Pow(-1))
	}

	return lp
}

// BetaLog returns the log density of Beta(y | α, β) for y ∈ [0, 1] and
// shapes α, β > 0.
//
//	log p(y | α, β) = −lbeta(α, β) + (α−1)·log y + (β−1)·log(1−y)
func BetaLog[T scalar.Real[T]](y, alpha, beta T, propto bool, pol check.Policy) T {
	const fn = "prob.BetaLog"

	lp := scalar.Lift[T](0)
	if !check.Finite(fn, y, "y", &lp, pol) {
		return lp
	}
	if !check.Bounded(fn, y, 0, 1, "y", &lp, pol) {
		return lp
	}
	if !check.Finite(fn, alpha, "alpha", &lp, pol) {
		return lp
	}
	if !check.Positive(fn, alpha, "alpha", &lp, pol) {
		return lp
	}
	if !check.Finite(fn, beta, "beta", &lp, pol) {
		return lp
	}
	if !check.Positive(fn, beta, "beta", &lp, pol) {
		return lp
	}

	if includeSummand(propto, alpha, beta) {
		lp = lp.Sub(mathx.Lbeta(alpha, beta))
	}
	if includeSummand(propto, alpha, y) {
		lp = lp.Add(mathx.MultiplyLog(alpha.Shift(-1), y))
	}
	if includeSummand(propto, beta, y) {
		lp = lp.Add(mathx.Log1m(y).Mul(beta.Shift(-1)))
	}

	return lp
}

// UniformLog returns the log density of Uniform(y | α, β) for finite bounds
// α < β.
//
//	log p(y | α, β) = −log(β − α)   for y ∈ [α, β]
//
// A y outside [α, β] has zero density: the evaluator returns −∞ without a
// domain-error report, so a sampler can treat the proposal as rejected.
func UniformLog[T scalar.Real[T]](y, alpha, beta T, propto bool, pol check.Policy) T {
	const fn = "prob.UniformLog"

	lp := scalar.Lift[T](0)
	if !check.Finite(fn, y, "y", &lp, pol) {
		return lp
	}
	if !check.Finite(fn, alpha, "alpha", &lp, pol) {
		return lp
	}
	if !check.Finite(fn, beta, "beta", &lp, pol) {
		return lp
	}
	if !check.GreaterOrEqual(fn, beta, alpha.Float(), "beta", &lp, pol) {
		return lp
	}

	if y.Float() < alpha.Float() || y.Float() > beta.Float() {
		return scalar.Lift[T](mathx.NegInf)
	}

	if includeSummand(propto, alpha, beta) {
		lp = lp.Sub(beta.Sub(alpha).Log())
	}

	return lp
}
