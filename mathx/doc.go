// Package mathx is the special-function library underneath the distribution
// evaluators: numerically stable transcendental and combinatorial primitives,
// each written once as a generic formula over scalar.Real and therefore
// usable for plain and differentiable evaluation alike.
//
// Every function here is pure and deterministic, defined over the broadest
// practical domain, and documented with its stabilized formula and the
// regime where a safeguard activates:
//
//	Log1p / Log1m      — Taylor fallback near 0 to dodge cancellation
//	LogSumExp (2/n-ary)— max-shifted, overflow-free, −∞ entries skipped
//	Logit / InvLogit   — exact closed forms
//	CLogLog / InvCLogLog — complementary log-log pair, exact inverses
//	Phi / PhiApprox    — exact normal CDF via erf, plus a bounded-error
//	                     closed-form approximation for hot paths
//	Softmax / InverseSoftmax — max-subtracted simplex transform
//	BinomialCoefficientLog / Lmgamma / Lbeta — log-gamma combinatorics,
//	                     with an asymptotic switch past BinomialCutoff
//	MultiplyLog        — a·log(b) with the 0·log 0 = 0 limiting value
//
// Error discipline: scalar-domain violations (log1p of x < −1, logit outside
// (0,1)) produce a quiet NaN, following the stdlib math convention — the
// validation framework in package check guards these domains before any
// evaluator reaches this layer. Shape violations on vector inputs (Softmax,
// LogSumExpVec) return package sentinel errors instead.
//
// The package also exposes the module's named mathematical constants and the
// empirically chosen numeric thresholds (see constants.go); the thresholds
// encode accepted precision/performance trade-offs and are not re-derived.
package mathx
