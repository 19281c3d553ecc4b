// SPDX-License-Identifier: MIT
// Package scalar: forward-mode differentiable rendition of the Real
// constraint, built on gonum's dual numbers.

package scalar

import (
	"math"

	"gonum.org/v1/gonum/mathext"
	"gonum.org/v1/gonum/num/dual"
)

// twoOverSqrtPi is d/dx erf(x) at 0: 2/√π.
const twoOverSqrtPi = 2.0 / 1.7724538509055160272981674833411452

// Dual is the differentiable rendition of Real: a dual number (value plus
// first derivative) tagged with the Constant-ness Trait. Arithmetic follows
// the usual forward-mode rules via gonum's num/dual package; the varying
// flag propagates by logical OR so that any value touched by a tracked
// unknown reports Const() == false.
//
// The tag is what distinguishes a lifted constant from a tracked unknown
// whose derivative happens to be zero at the current point: proportional
// term elision must never depend on the numeric value of a derivative.
type Dual struct {
	n       dual.Number
	varying bool
}

// Var returns a tracked unknown with value v and derivative seed 1.
// Derivatives of any expression built from the result are taken with
// respect to this variable.
func Var(v float64) Dual {
	return Dual{n: dual.Number{Real: v, Emag: 1}, varying: true}
}

// Const returns a fixed constant of the dual rendition, the explicit
// counterpart of Var for call sites mixing tracked and fixed arguments.
func Const(v float64) Dual {
	return Dual{n: dual.Number{Real: v}}
}

// Deriv returns the accumulated first derivative.
func (x Dual) Deriv() float64 { return x.n.Emag }

func (x Dual) Add(y Dual) Dual {
	return Dual{
		n:       dual.Number{Real: x.n.Real + y.n.Real, Emag: x.n.Emag + y.n.Emag},
		varying: x.varying || y.varying,
	}
}

func (x Dual) Sub(y Dual) Dual {
	return Dual{
		n:       dual.Number{Real: x.n.Real - y.n.Real, Emag: x.n.Emag - y.n.Emag},
		varying: x.varying || y.varying,
	}
}

func (x Dual) Mul(y Dual) Dual {
	return Dual{
		n: dual.Number{
			Real: x.n.Real * y.n.Real,
			Emag: x.n.Real*y.n.Emag + x.n.Emag*y.n.Real,
		},
		varying: x.varying || y.varying,
	}
}

func (x Dual) Div(y Dual) Dual {
	return Dual{
		n: dual.Number{
			Real: x.n.Real / y.n.Real,
			Emag: (x.n.Emag*y.n.Real - x.n.Real*y.n.Emag) / (y.n.Real * y.n.Real),
		},
		varying: x.varying || y.varying,
	}
}

func (x Dual) Neg() Dual { return Dual{n: dual.Scale(-1, x.n), varying: x.varying} }
func (x Dual) Abs() Dual { return Dual{n: dual.Abs(x.n), varying: x.varying} }

func (x Dual) Exp() Dual  { return Dual{n: dual.Exp(x.n), varying: x.varying} }
func (x Dual) Log() Dual  { return Dual{n: dual.Log(x.n), varying: x.varying} }
func (x Dual) Sqrt() Dual { return Dual{n: dual.Sqrt(x.n), varying: x.varying} }

// Pow returns x**p for a plain exponent, with derivative p·x^(p−1)·x'.
func (x Dual) Pow(p float64) Dual {
	return Dual{n: dual.PowReal(x.n, p), varying: x.varying}
}

// Lgamma returns log Γ(x) with derivative ψ(x)·x' (ψ is the digamma
// function, taken from gonum mathext).
func (x Dual) Lgamma() Dual {
	v, _ := math.Lgamma(x.n.Real)

	return Dual{
		n:       dual.Number{Real: v, Emag: x.n.Emag * mathext.Digamma(x.n.Real)},
		varying: x.varying,
	}
}

// Erf returns erf(x) with derivative (2/√π)·exp(−x²)·x'.
func (x Dual) Erf() Dual {
	return Dual{
		n: dual.Number{
			Real: math.Erf(x.n.Real),
			Emag: x.n.Emag * twoOverSqrtPi * math.Exp(-x.n.Real*x.n.Real),
		},
		varying: x.varying,
	}
}

func (x Dual) Scale(c float64) Dual { return Dual{n: dual.Scale(c, x.n), varying: x.varying} }

func (x Dual) Shift(c float64) Dual {
	return Dual{n: dual.Number{Real: x.n.Real + c, Emag: x.n.Emag}, varying: x.varying}
}

// Float returns the primal value.
func (x Dual) Float() float64 { return x.n.Real }

// Const reports whether the value is fixed data (no tracked unknown in its
// history).
func (x Dual) Const() bool { return !x.varying }

// FromFloat lifts v as fixed data: zero derivative, Const() == true.
func (Dual) FromFloat(v float64) Dual { return Dual{n: dual.Number{Real: v}} }
