// SPDX-License-Identifier: MIT
// Package check: failure policy — functional configuration in the style of
// the rest of the module. Policies are immutable values; constructors
// panic only on nonsensical parameters (programmer error), never at check
// time.

package check

import (
	"math"

	"go.uber.org/zap"
)

// Action selects what a failing predicate does besides writing the
// sentinel.
type Action uint8

const (
	// ActionSentinel substitutes the sentinel quietly. Default.
	ActionSentinel Action = iota

	// ActionWarn logs one structured entry, then substitutes the sentinel.
	ActionWarn

	// ActionAbort panics with the *DomainError. Fatal by design; reserved
	// for contexts where an invalid argument is a bug, not a proposal.
	ActionAbort
)

// Internal panic messages for option constructors.
const (
	panicActionInvalid = "check: WithAction: unknown action"
	panicLoggerNil     = "check: WithLogger: logger must be non-nil"
	panicObserverNil   = "check: WithObserver: observer must be non-nil"
)

// Policy is the failure configuration threaded through every evaluator
// call. The zero Policy is not meaningful; build one with NewPolicy or use
// Default().
type Policy struct {
	action   Action
	sentinel float64
	logger   *zap.Logger
	observer func(DomainError)
}

// PolicyOption mutates a Policy under construction.
type PolicyOption func(*Policy)

// NewPolicy builds a Policy. Defaults: ActionSentinel with a NaN sentinel,
// no observer, the global zap logger for ActionWarn.
func NewPolicy(opts ...PolicyOption) Policy {
	p := Policy{action: ActionSentinel, sentinel: math.NaN()}
	for _, opt := range opts {
		opt(&p)
	}

	return p
}

// Default returns the inference-loop policy: quiet NaN substitution, so a
// rejected proposal never terminates a running chain.
func Default() Policy { return NewPolicy() }

// WithAction selects the failure action.
// Panics on an unknown Action value.
func WithAction(a Action) PolicyOption {
	if a > ActionAbort {
		panic(panicActionInvalid)
	}

	return func(p *Policy) { p.action = a }
}

// WithSentinel overrides the substituted value. NaN is conventional; −Inf
// is the common alternative when the caller treats the result directly as
// a log-probability of an impossible event.
func WithSentinel(v float64) PolicyOption {
	return func(p *Policy) { p.sentinel = v }
}

// WithLogger sets the logger used by ActionWarn.
// Panics on nil.
func WithLogger(l *zap.Logger) PolicyOption {
	if l == nil {
		panic(panicLoggerNil)
	}

	return func(p *Policy) { p.logger = l }
}

// WithObserver installs a hook receiving every DomainError, regardless of
// action. Panics on nil.
func WithObserver(fn func(DomainError)) PolicyOption {
	if fn == nil {
		panic(panicObserverNil)
	}

	return func(p *Policy) { p.observer = fn }
}

// Sentinel returns the substitution value.
func (p Policy) Sentinel() float64 { return p.sentinel }

// report delivers the failure per the policy. Called exactly once per
// failing predicate, before the sentinel write; ActionAbort does not
// return.
func (p Policy) report(de *DomainError) {
	if p.observer != nil {
		p.observer(*de)
	}

	switch p.action {
	case ActionAbort:
		panic(de)
	case ActionWarn:
		logger := p.logger
		if logger == nil {
			logger = zap.L()
		}
		logger.Warn("domain check failed",
			zap.String("function", de.Function),
			zap.String("argument", de.Argument),
			zap.String("constraint", de.Constraint),
			zap.Float64("value", de.Value),
		)
	case ActionSentinel:
		// sentinel substitution is the whole report
	}
}
