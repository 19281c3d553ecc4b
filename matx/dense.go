// SPDX-License-Identifier: MIT
// Package matx: the Dense container — construction, indexing, cloning.
// Storage is row-major in a single flat slice; kernels use the unexported
// unchecked accessors after validating once at their boundary.

package matx

import "github.com/aflaxman/stan/scalar"

// Dense is a row-major dense matrix over the scalar representation T.
// The zero Dense is not usable; construct through NewDense, Identity,
// FromRows or FromFloats. Dense values are not safe for concurrent
// mutation, but all kernels in this package treat their operands as
// read-only.
type Dense[T scalar.Real[T]] struct {
	rows, cols int
	data       []T
}

// NewDense allocates a rows×cols zero matrix.
// Returns ErrBadShape for non-positive dimensions.
func NewDense[T scalar.Real[T]](rows, cols int) (*Dense[T], error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrBadShape
	}

	return &Dense[T]{rows: rows, cols: cols, data: make([]T, rows*cols)}, nil
}

// Identity returns the n×n identity matrix.
// Returns ErrBadShape for n <= 0.
func Identity[T scalar.Real[T]](n int) (*Dense[T], error) {
	m, err := NewDense[T](n, n)
	if err != nil {
		return nil, err
	}
	one := scalar.Lift[T](1)
	for i := 0; i < n; i++ {
		m.data[i*n+i] = one
	}

	return m, nil
}

// FromRows builds a matrix from a rectangular slice of rows.
// Returns ErrBadShape when rows is empty, a row is empty, or rows are
// ragged.
func FromRows[T scalar.Real[T]](rows [][]T) (*Dense[T], error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrBadShape
	}
	cols := len(rows[0])
	m := &Dense[T]{rows: len(rows), cols: cols, data: make([]T, 0, len(rows)*cols)}
	for _, r := range rows {
		if len(r) != cols {
			return nil, ErrBadShape
		}
		m.data = append(m.data, r...)
	}

	return m, nil
}

// FromFloats builds a matrix from plain float64 rows, lifting every entry
// into the representation T. Same shape rules as FromRows.
func FromFloats[T scalar.Real[T]](rows [][]float64) (*Dense[T], error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrBadShape
	}
	cols := len(rows[0])
	m := &Dense[T]{rows: len(rows), cols: cols, data: make([]T, 0, len(rows)*cols)}
	for _, r := range rows {
		if len(r) != cols {
			return nil, ErrBadShape
		}
		for _, v := range r {
			m.data = append(m.data, scalar.Lift[T](v))
		}
	}

	return m, nil
}

// Rows returns the number of rows.
func (m *Dense[T]) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *Dense[T]) Cols() int { return m.cols }

// IsSquare reports Rows == Cols.
func (m *Dense[T]) IsSquare() bool { return m.rows == m.cols }

// At returns the element at (i, j).
// Returns ErrOutOfRange for indices outside the matrix.
func (m *Dense[T]) At(i, j int) (T, error) {
	var zero T
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		return zero, ErrOutOfRange
	}

	return m.data[i*m.cols+j], nil
}

// Set writes the element at (i, j).
// Returns ErrOutOfRange for indices outside the matrix.
func (m *Dense[T]) Set(i, j int, v T) error {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		return ErrOutOfRange
	}
	m.data[i*m.cols+j] = v

	return nil
}

// Clone returns a deep copy.
func (m *Dense[T]) Clone() *Dense[T] {
	out := &Dense[T]{rows: m.rows, cols: m.cols, data: make([]T, len(m.data))}
	copy(out.data, m.data)

	return out
}

// at is the unchecked accessor for kernels that validated shape upfront.
func (m *Dense[T]) at(i, j int) T { return m.data[i*m.cols+j] }

// set is the unchecked writer for kernels that validated shape upfront.
func (m *Dense[T]) set(i, j int, v T) { m.data[i*m.cols+j] = v }
