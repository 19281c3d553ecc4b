// SPDX-License-Identifier: MIT
// Package mathx: sentinel error set. Only vector-shaped inputs can fail with
// an error here; scalar-domain violations yield quiet NaN (see doc.go).
// Tests match these via errors.Is; no function in this package panics.

package mathx

import "errors"

var (
	// ErrEmptyInput is returned when a reduction (LogSumExpVec, Softmax)
	// receives a zero-length slice.
	ErrEmptyInput = errors.New("mathx: input must have at least one element")

	// ErrSizeMismatch is returned when paired input/output slices differ
	// in length (Softmax, InverseSoftmax).
	ErrSizeMismatch = errors.New("mathx: input and output lengths differ")
)
