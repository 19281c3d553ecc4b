// SPDX-License-Identifier: MIT
// Package matx: sentinel error set. All algorithms return these sentinels
// and tests match them via errors.Is. No algorithm panics on
// user-triggered conditions.

package matx

import "errors"

var (
	// ErrBadShape is returned when a requested shape is invalid
	// (rows <= 0 or cols <= 0, or ragged row input).
	ErrBadShape = errors.New("matx: invalid shape")

	// ErrOutOfRange indicates a row or column index outside valid bounds.
	// Public indexers return this rather than panic.
	ErrOutOfRange = errors.New("matx: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between
	// operands, e.g. Mul where a.Cols() != b.Rows().
	ErrDimensionMismatch = errors.New("matx: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required.
	ErrNonSquare = errors.New("matx: matrix is not square")

	// ErrNilMatrix indicates a nil *Dense receiver or argument.
	ErrNilMatrix = errors.New("matx: nil matrix")

	// ErrSingular is returned by Inverse when elimination meets a zero
	// pivot; the matrix has no inverse.
	ErrSingular = errors.New("matx: singular matrix")
)
