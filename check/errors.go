// SPDX-License-Identifier: MIT
// Package check: sentinel error set and the structured DomainError.
// Every message is prefixed "check: ..." for consistent grepping; tests
// match the sentinels via errors.Is through DomainError.Unwrap.

package check

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFinite marks a NaN or ±Inf where a finite value is required.
	ErrNotFinite = errors.New("check: value is not finite")

	// ErrOutOfBounds marks a value outside its inclusive interval.
	ErrOutOfBounds = errors.New("check: value is out of bounds")

	// ErrNegative marks a negative value where non-negativity is required.
	ErrNegative = errors.New("check: value is negative")

	// ErrBelowMinimum marks a value below a required lower bound.
	ErrBelowMinimum = errors.New("check: value is below required minimum")

	// ErrSizeMismatch marks paired structural dimensions that differ.
	ErrSizeMismatch = errors.New("check: sizes do not match")

	// ErrNilArgument marks a nil matrix argument.
	ErrNilArgument = errors.New("check: nil argument")

	// ErrNonSquare marks a non-square matrix where square is required.
	ErrNonSquare = errors.New("check: matrix is not square")

	// ErrAsymmetric marks a matrix that is not symmetric within tolerance.
	ErrAsymmetric = errors.New("check: matrix is not symmetric")

	// ErrNotPositiveSemidefinite marks a matrix failing the PSD predicate.
	ErrNotPositiveSemidefinite = errors.New("check: matrix is not positive semi-definite")

	// ErrSingular marks a matrix whose inversion or decomposition broke
	// down despite passing the structural predicates.
	ErrSingular = errors.New("check: matrix is numerically singular")
)

// DomainError is the structured failure a predicate reports: which
// function rejected which argument, the constraint it violated, and the
// offending value. It wraps the matching package sentinel so callers can
// branch with errors.Is while still reading the context fields.
type DomainError struct {
	// Function is the evaluator that performed the check.
	Function string

	// Argument is the descriptive label of the rejected argument.
	Argument string

	// Constraint describes the violated domain requirement.
	Constraint string

	// Value is the offending value (primal part for differentiable
	// arguments; a dimension for structural checks).
	Value float64

	sentinel error
}

// NewDomainError builds a DomainError for failures discovered outside the
// predicate set, such as a singular matrix surfacing mid-evaluation. The
// sentinel chooses what errors.Is matches; ErrSingular is the usual pick.
func NewDomainError(fn, argument, constraint string, value float64, sentinel error) *DomainError {
	return &DomainError{
		Function:   fn,
		Argument:   argument,
		Constraint: constraint,
		Value:      value,
		sentinel:   sentinel,
	}
}

// Error formats the full failure context.
func (e *DomainError) Error() string {
	return fmt.Sprintf("check: %s: argument %q = %g violates constraint %q",
		e.Function, e.Argument, e.Value, e.Constraint)
}

// Unwrap exposes the package sentinel for errors.Is matching.
func (e *DomainError) Unwrap() error { return e.sentinel }
