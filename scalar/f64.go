// SPDX-License-Identifier: MIT
// Package scalar: plain float64 rendition of the Real constraint.

package scalar

import "math"

// F64 is the plain-arithmetic rendition of Real: an IEEE-754 float64 with
// the capability methods spelled out. Every method compiles to the obvious
// primitive operation; the wrapper exists only to satisfy the constraint.
//
// F64 values are always fixed constants: Const reports true, so evaluators
// instantiated at F64 elide every term under proportional evaluation.
type F64 float64

func (x F64) Add(y F64) F64 { return x + y }
func (x F64) Sub(y F64) F64 { return x - y }
func (x F64) Mul(y F64) F64 { return x * y }
func (x F64) Div(y F64) F64 { return x / y }
func (x F64) Neg() F64      { return -x }

// Abs returns |x|.
func (x F64) Abs() F64 { return F64(math.Abs(float64(x))) }

func (x F64) Exp() F64  { return F64(math.Exp(float64(x))) }
func (x F64) Log() F64  { return F64(math.Log(float64(x))) }
func (x F64) Sqrt() F64 { return F64(math.Sqrt(float64(x))) }

// Pow returns x**p for a plain exponent.
func (x F64) Pow(p float64) F64 { return F64(math.Pow(float64(x), p)) }

// Lgamma returns log|Γ(x)|. The sign of Γ is dropped; all callers in this
// module evaluate on domains where Γ is positive.
func (x F64) Lgamma() F64 {
	v, _ := math.Lgamma(float64(x))

	return F64(v)
}

// Erf returns the error function erf(x).
func (x F64) Erf() F64 { return F64(math.Erf(float64(x))) }

func (x F64) Scale(c float64) F64 { return x * F64(c) }
func (x F64) Shift(c float64) F64 { return x + F64(c) }

// Float returns the plain numeric value.
func (x F64) Float() float64 { return float64(x) }

// Const always reports true: a plain float64 is never a tracked unknown.
func (F64) Const() bool { return true }

// FromFloat lifts v into the F64 representation.
func (F64) FromFloat(v float64) F64 { return F64(v) }
