// SPDX-License-Identifier: MIT
// Package mathx: log-gamma combinatorics — log beta, log binomial
// coefficient and the multivariate log gamma function.

package mathx

import (
	"gonum.org/v1/gonum/mathext"

	"github.com/aflaxman/stan/scalar"
)

// Lbeta returns the log of the beta function,
//
//	log B(a,b) = log Γ(a) + log Γ(b) − log Γ(a+b),
//
// defined for a > 0 and b > 0.
func Lbeta[T scalar.Real[T]](a, b T) T {
	return a.Lgamma().Add(b.Lgamma()).Sub(a.Add(b).Lgamma())
}

// BinomialCoefficientLog returns log(N choose n), generalized to continuous
// arguments through the gamma function:
//
//	log Γ(N+1) − log Γ(n+1) − log Γ(N−n+1).
//
// Once N or N−n exceeds BinomialCutoff the three log-gamma terms become
// large and nearly cancelling, so the function switches to an asymptotic
// expansion (Stirling with the first two correction terms):
//
//	n·log(N−n) + (N+½)·log(N/(N−n)) + 1/(12N) − n − 1/(12(N−n)) − log Γ(n+1).
func BinomialCoefficientLog[T scalar.Real[T]](bigN, n T) T {
	if bigN.Float() < BinomialCutoff || bigN.Float()-n.Float() < BinomialCutoff {
		return bigN.Shift(1).Lgamma().
			Sub(n.Shift(1).Lgamma()).
			Sub(bigN.Sub(n).Shift(1).Lgamma())
	}

	rest := bigN.Sub(n)
	one := scalar.Lift[T](1)

	return n.Mul(rest.Log()).
		Add(bigN.Shift(0.5).Mul(bigN.Div(rest).Log())).
		Add(one.Div(bigN.Scale(12))).
		Sub(n).
		Sub(one.Div(rest.Scale(12))).
		Sub(n.Shift(1).Lgamma())
}

// Lmgamma returns the log of the multivariate gamma function for dimension
// k and argument x,
//
//	log Γ_k(x) = k(k−1)/4 · log π + Σ_{j=1..k} log Γ(x + (1−j)/2).
func Lmgamma[T scalar.Real[T]](k int, x T) T {
	result := scalar.Lift[T](float64(k*(k-1)) * LogPiOverFour)
	for j := 1; j <= k; j++ {
		result = result.Add(x.Shift((1 - float64(j)) / 2).Lgamma())
	}

	return result
}

// Ibeta returns the normalized (regularized) incomplete beta function
// I_x(a,b), used by beta-family cumulative probabilities. The computation
// delegates to gonum's mathext and is float64-only; it has no
// differentiable instantiation.
func Ibeta(a, b, x float64) float64 {
	return mathext.RegIncBeta(a, b, x)
}
