// SPDX-License-Identifier: MIT
// Package prob_test: runnable documentation examples.
package prob_test

import (
	"fmt"

	"github.com/aflaxman/stan/check"
	"github.com/aflaxman/stan/prob"
	"github.com/aflaxman/stan/scalar"
)

// ExampleBinomialLog evaluates a binomial log mass twice: once over plain
// floats, once with the success probability tracked for its derivative.
func ExampleBinomialLog() {
	pol := check.Default()

	lp := prob.BinomialLog(3, 10, scalar.F64(0.4), false, pol)
	fmt.Printf("log mass     %.4f\n", lp.Float())

	d := prob.BinomialLog(3, 10, scalar.Var(0.4), false, pol)
	fmt.Printf("d/dtheta     %.4f\n", d.Deriv())

	// Output:
	// log mass     -1.5372
	// d/dtheta     -4.1667
}

// ExampleInvChiSquareLog shows the proportionality flag at work: with every
// argument a fixed constant, nothing is left to accumulate.
func ExampleInvChiSquareLog() {
	pol := check.Default()

	full := prob.InvChiSquareLog(scalar.F64(0.5), scalar.F64(2.0), false, pol)
	short := prob.InvChiSquareLog(scalar.F64(0.5), scalar.F64(2.0), true, pol)
	fmt.Printf("full   %.7f\n", full.Float())
	fmt.Printf("propto %.1f\n", short.Float())

	// Output:
	// full   -0.3068528
	// propto 0.0
}

// ExampleNormalLog demonstrates the sentinel policy: a rejected argument
// yields NaN instead of a panic, so a sampling loop can treat the proposal
// as rejected and move on.
func ExampleNormalLog() {
	pol := check.Default()

	ok := prob.NormalLog(scalar.F64(1.0), scalar.F64(0), scalar.F64(2), false, pol)
	bad := prob.NormalLog(scalar.F64(1.0), scalar.F64(0), scalar.F64(-2), false, pol)
	fmt.Printf("ok  %.4f\n", ok.Float())
	fmt.Printf("bad %v\n", bad.Float())

	// Output:
	// ok  -1.7371
	// bad NaN
}
