// SPDX-License-Identifier: MIT

// Package prob evaluates log-density and log-mass functions for a set of
// standard distribution families over any scalar satisfying scalar.Real.
//
// What you get:
//
//   - ✨ One evaluator per family — BernoulliLog, BinomialLog, PoissonLog,
//     NormalLog, ExponentialLog, GammaLog, InvGammaLog, ChiSquareLog,
//     InvChiSquareLog, BetaLog, UniformLog and WishartLog — each following
//     the same contract: data arguments first, then parameters, then a
//     proportionality flag and a check.Policy.
//   - 🚀 Proportional evaluation: pass propto=true and every summand that is
//     constant with respect to the differentiable arguments at the call site
//     is skipped. The result differs from the full value only by an additive
//     constant, so gradients are identical.
//   - 🛡️ Validation first: every argument is checked before any numerical
//     work. A failing check reports through the policy and the evaluator
//     returns the policy sentinel immediately, so ill-conditioned linear
//     algebra is never entered with bad inputs.
//
// Evaluation contract, in order:
//
//  1. Validate each argument in declaration order via package check,
//     short-circuiting with the policy sentinel on the first failure.
//  2. Accumulate the family's fixed set of terms, eliding constant terms
//     under propto.
//  3. Return the accumulated value in the promoted scalar type.
//
// Out-of-support observations that carry zero density (a uniform draw
// outside [α, β]) are a numerical edge, not a domain error: the evaluator
// returns −∞ without consulting the policy.
//
// All evaluators are pure functions with no shared mutable state; any
// number of goroutines may call them concurrently.
package prob
