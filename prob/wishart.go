// SPDX-License-Identifier: MIT
// Package prob: Wishart family.

package prob

import (
	"math"

	"github.com/aflaxman/stan/check"
	"github.com/aflaxman/stan/mathx"
	"github.com/aflaxman/stan/matx"
	"github.com/aflaxman/stan/scalar"
)

// WishartLog returns the log density of Wishart(W | ν, S) for k×k matrices
// W and S and degrees of freedom ν ≥ k−1.
//
//	log p(W | ν, S) = −(νk/2)·log 2 − lmgamma(k, ν/2)
//	                  − (ν/2)·log|S| + ((ν−k−1)/2)·log|W|
//	                  − ½·|trace(S⁻¹·W)|
//
// The |W| summand is skipped entirely when ν = k+1, where its coefficient
// vanishes; this avoids evaluating log|W| for a rank-deficient W at that
// degree of freedom. Validation happens before any linear algebra, so a
// non-square or mismatched input never reaches the inverse. S must also be
// symmetric positive semi-definite.
func WishartLog[T scalar.Real[T]](w *matx.Dense[T], nu T, s *matx.Dense[T], propto bool, pol check.Policy) T {
	const fn = "prob.WishartLog"

	lp := scalar.Lift[T](0)
	if !check.Square(fn, w, "W", &lp, pol) {
		return lp
	}
	k := w.Rows()
	if !check.GreaterOrEqual(fn, nu, float64(k-1), "nu", &lp, pol) {
		return lp
	}
	if !check.Square(fn, s, "S", &lp, pol) {
		return lp
	}
	if !check.SizeMatch(fn, s.Rows(), k, "S", &lp, pol) {
		return lp
	}
	if !check.PositiveSemidefinite(fn, s, "S", &lp, pol) {
		return lp
	}

	halfNu := nu.Scale(0.5)
	if includeSummand(propto, nu) {
		lp = lp.Add(nu.Scale(float64(k) * mathx.NegLogTwoOverTwo))
		lp = lp.Sub(mathx.Lmgamma(k, halfNu))
	}

	if includeSummand(propto, append(matrixDeps(s), nu)...) {
		detS, err := matx.Det(s)
		if err != nil {
			return linalgFailure(fn, "S", err, &lp, pol)
		}
		lp = lp.Sub(mathx.MultiplyLog(halfNu, detS))
	}

	if includeSummand(propto, matrixDeps(s, w)...) {
		sInv, err := matx.Inverse(s)
		if err != nil {
			return linalgFailure(fn, "S", err, &lp, pol)
		}
		prod, err := matx.Mul(sInv, w)
		if err != nil {
			return linalgFailure(fn, "S", err, &lp, pol)
		}
		tr, err := matx.Trace(prod)
		if err != nil {
			return linalgFailure(fn, "S", err, &lp, pol)
		}
		lp = lp.Sub(tr.Abs().Scale(0.5))
	}

	if includeSummand(propto, append(matrixDeps(w), nu)...) {
		if nu.Float() != float64(k+1) {
			detW, err := matx.Det(w)
			if err != nil {
				return linalgFailure(fn, "W", err, &lp, pol)
			}
			lp = lp.Add(mathx.MultiplyLog(halfNu.Shift(-0.5*float64(k+1)), detW))
		}
	}

	return lp
}

// matrixDeps flattens the entries of the given matrices into one
// dependency slice for includeSummand.
func matrixDeps[T scalar.Real[T]](ms ...*matx.Dense[T]) []T {
	var deps []T
	for _, m := range ms {
		for i := 0; i < m.Rows(); i++ {
			for j := 0; j < m.Cols(); j++ {
				v, _ := m.At(i, j)
				deps = append(deps, v)
			}
		}
	}

	return deps
}

// linalgFailure reports a linear-algebra breakdown that survived the
// structural checks, such as a singular scale matrix.
func linalgFailure[T scalar.Real[T]](fn, name string, err error, lp *T, pol check.Policy) T {
	check.Report(check.NewDomainError(
		fn, name, err.Error(), math.NaN(), check.ErrSingular), lp, pol)

	return *lp
}
