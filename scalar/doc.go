// Package scalar defines the generic scalar abstraction that lets every
// formula in this library run either as plain float64 arithmetic or as
// forward-mode differentiable computation without duplicated code.
//
// The abstraction has three parts:
//
//   - Real[T] — the minimal arithmetic-capability constraint. Any type that
//     can add, multiply, exponentiate, take logs, and answer the
//     constant-ness query can instantiate every special function and every
//     distribution evaluator in this module.
//
//   - Two renditions: F64 (plain IEEE-754 float64; always a fixed constant)
//     and Dual (a tagged wrapper around gonum's dual number carrying a
//     first derivative and a "tracked unknown" flag).
//
//   - Lift — the promotion primitive. Type promotion is resolved statically
//     by generic instantiation: an expression mixing fixed data and tracked
//     unknowns instantiates at Dual, and plain float64 data is lifted into
//     the instantiated representation with Lift. Integer data widens to
//     float64 at the call site before lifting. There is no runtime dispatch
//     and no tagged-union switching; the compiler monomorphizes each
//     instantiation.
//
// Constant-ness (the trait behind proportional evaluation) is a property of
// how a value entered the computation, not of its current derivative:
// Var(v) marks a tracked unknown, Lift/FromFloat mark fixed data, and every
// arithmetic operation propagates the flag with logical OR. Distribution
// evaluators query it through Const() to elide normalization terms that
// cannot influence any gradient.
package scalar
