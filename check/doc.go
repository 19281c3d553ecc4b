// Package check is the validation framework guarding every distribution
// evaluator in this module: argument-domain predicates that report failures
// through a pluggable policy and short-circuit the caller, with no panics
// and no allocations on the passing path.
//
// The calling convention is uniform across predicates:
//
//	if !check.Bounded(fn, theta, 0, 1, "Probability, theta,", &lp, pol) {
//		return lp
//	}
//
// A predicate returns true iff its constraint holds. On failure it builds a
// DomainError carrying the full context (function, argument, constraint,
// offending value), hands it to the policy, writes the policy's sentinel
// into the accumulator and returns false — so the caller returns the
// accumulator immediately instead of computing with an invalid input.
//
// Policies select the failure action:
//
//   - ActionSentinel (default): quiet substitution. A long-running inference
//     loop sees NaN, interprets it as "reject the proposal" and continues;
//     a single bad argument never terminates a chain.
//   - ActionWarn: substitute as above, after logging one structured entry
//     (zap) with the DomainError fields.
//   - ActionAbort: panic carrying the *DomainError. For batch or debugging
//     contexts that want hard failure instead of sentinel propagation.
//
// An optional observer hook receives every DomainError regardless of
// action, which is how callers that need programmatic failure details get
// them without giving up the sentinel flow.
//
// Predicates never mutate argument values; the accumulator is the only
// thing written, and only on failure. Policy values are immutable after
// construction and safe to share across goroutines.
package check
