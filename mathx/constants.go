// SPDX-License-Identifier: MIT
// Package mathx: named mathematical constants and numeric thresholds.
// This file is the single source of truth for every magic number in the
// module; formulas reference these names, never literals.

package mathx

import "math"

// Fundamental constants exposed to model code.
const (
	// Pi is the circle constant π.
	Pi = math.Pi

	// E is the base of the natural logarithm.
	E = math.E

	// Sqrt2 is √2.
	Sqrt2 = math.Sqrt2

	// Ln2 is the natural logarithm of two.
	Ln2 = math.Ln2

	// Ln10 is the natural logarithm of ten.
	Ln10 = math.Ln10

	// Epsilon is the double-precision machine epsilon 2⁻⁵².
	Epsilon = 2.220446049250313e-16

	// NegativeEpsilon is the negative number of smallest magnitude the
	// library distinguishes from zero: −Epsilon.
	NegativeEpsilon = -Epsilon
)

// Derived constants used by the log-density accumulations.
const (
	// LogPi is log π.
	LogPi = 1.1447298858494001741434273513531

	// LogPiOverFour is (log π)/4, the per-pair factor of the multivariate
	// gamma function.
	LogPiOverFour = LogPi / 4

	// NegLogTwoOverTwo is −(log 2)/2.
	NegLogTwoOverTwo = -Ln2 / 2

	// NegLogSqrtTwoPi is −log √(2π), the normal normalization constant.
	NegLogSqrtTwoPi = -0.91893853320467274178032973640562
)

// Numeric thresholds. The values encode precision/performance trade-offs
// accepted by long use; they are documented constants, not tunables.
const (
	// Log1pTaylorThreshold is the |x| below which Log1p switches from
	// log(1+x) to its second-order Taylor expansion to avoid cancellation.
	Log1pTaylorThreshold = 1e-9

	// Log1pLinearThreshold is the |x| below which the Taylor expansion
	// truncates to first order (x alone is exact to double precision).
	Log1pLinearThreshold = 1e-16

	// BinomialCutoff is the N (or N−n) beyond which
	// BinomialCoefficientLog switches to an asymptotic expansion to avoid
	// precision loss from near-cancelling large log-gamma terms.
	BinomialCutoff = 1000.0
)

// Non-finite values, exposed as variables because Go constants cannot hold
// them.
var (
	// Inf is positive infinity.
	Inf = math.Inf(1)

	// NegInf is negative infinity.
	NegInf = math.Inf(-1)

	// NaN is a quiet not-a-number, the default validation sentinel.
	NaN = math.NaN()
)
