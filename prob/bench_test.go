// SPDX-License-Identifier: MIT
// Package prob_test: evaluator benchmarks, plain vs dual and full vs
// proportional.
package prob_test

import (
	"testing"

	"github.com/aflaxman/stan/check"
	"github.com/aflaxman/stan/matx"
	"github.com/aflaxman/stan/prob"
	"github.com/aflaxman/stan/scalar"
)

func BenchmarkNormalLogPlain(b *testing.B) {
	pol := check.Default()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = prob.NormalLog(scalar.F64(1.3), scalar.F64(0), scalar.F64(2), false, pol)
	}
}

func BenchmarkNormalLogDual(b *testing.B) {
	pol := check.Default()
	y := scalar.Var(1.3)
	mu, sigma := scalar.Const(0), scalar.Const(2)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = prob.NormalLog(y, mu, sigma, false, pol)
	}
}

func BenchmarkNormalLogDualPropto(b *testing.B) {
	pol := check.Default()
	y := scalar.Var(1.3)
	mu, sigma := scalar.Const(0), scalar.Const(2)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = prob.NormalLog(y, mu, sigma, true, pol)
	}
}

func BenchmarkBinomialLogPlain(b *testing.B) {
	pol := check.Default()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = prob.BinomialLog(300, 1000, scalar.F64(0.31), false, pol)
	}
}

func BenchmarkWishartLog(b *testing.B) {
	pol := check.Default()
	const k = 5
	w, err := matx.Identity[scalar.F64](k)
	if err != nil {
		b.Fatal(err)
	}
	s, err := matx.Identity[scalar.F64](k)
	if err != nil {
		b.Fatal(err)
	}
	nu := scalar.F64(k + 3)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = prob.WishartLog(w, nu, s, false, pol)
	}
}
