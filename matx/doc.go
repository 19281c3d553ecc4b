// Package matx provides the dense-matrix kernels the multivariate density
// evaluators need — multiply, transpose, trace, determinant and inverse —
// generic over scalar.Real, so a Wishart log-density instantiated at
// scalar.Dual carries derivatives straight through its linear algebra.
//
// The package is deliberately small: it is a collaborator for density
// evaluation, not a linear-algebra library. Decompositions, solvers and
// spectra belong to gonum/mat, and float64 matrices convert losslessly in
// both directions through FromGonum and ToGonum.
//
// Error discipline follows the module convention: every algorithm returns
// package sentinel errors (ErrNilMatrix, ErrBadShape, ErrNonSquare,
// ErrDimensionMismatch, ErrSingular, ErrOutOfRange) matched via errors.Is;
// no function panics on user input.
//
// Determinism: pivot selection orders on the primal value only (|Float|),
// so plain and differentiable instantiations follow identical elimination
// paths and agree on every primal intermediate.
package matx
