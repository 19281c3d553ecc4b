// Package stan is the shared numerical foundation of a probabilistic-modeling
// toolkit: special mathematical functions and parametric log-density
// evaluators, written once and instantiated for both plain and differentiable
// arithmetic.
//
// 🚀 What does it bring together?
//
//	A reentrant, allocation-light library combining:
//		• Stabilized special functions: log1p/log1m, log-sum-exp, logit links,
//		  Φ and its fast approximation, softmax, log-gamma combinatorics
//		• A validation framework: argument-domain guards with a pluggable
//		  failure policy (sentinel / warn / abort) that never throws on the
//		  hot path
//		• A scalar abstraction: one generic formula serving float64 and
//		  forward-mode differentiable values alike
//		• Distribution evaluators: Bernoulli through Wishart, each with
//		  proportional (propto) term elision driven by per-argument
//		  constant-ness
//
// ✨ Why this shape?
//
//   - Densities are evaluated millions of times per inference run — every
//     formula is overflow/underflow/cancellation-guarded for the practical
//     input domain
//   - A rejected proposal must never kill a running chain — domain failures
//     substitute a sentinel and let the caller continue
//   - Gradients come for free — instantiate any evaluator at scalar.Dual and
//     read the derivative off the result
//
// Under the hood, everything is organized under five subpackages:
//
//	scalar/ — generic scalar constraint, float64 & dual renditions, promotion
//	check/  — domain predicates, structured DomainError, failure Policy
//	mathx/  — stabilized special functions & named mathematical constants
//	matx/   — dense matrix kernels (det, inverse, trace) generic over scalar
//	prob/   — log-density / log-mass evaluators with propto elision
//
// Quick taste:
//
//	theta := scalar.Var(0.3)                           // tracked unknown
//	lp := prob.BinomialLog(7, 10, theta, true, check.Default())
//	_ = lp.Deriv()                                     // d lp / d theta
//
// All operations are pure and reentrant; any number of chains may call them
// concurrently with no coordination.
package stan
