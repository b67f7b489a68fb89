// SPDX-License-Identifier: MIT

// Package pmatrix: shared argument validation helpers.

package pmatrix

import "fmt"

// checkBounds verifies a global index pair against the matrix shape.
func (m *Matrix[T]) checkBounds(op string, row, col int) error {
	if row < 0 || row >= m.lay.Rows() || col < 0 || col >= m.lay.Cols() {
		return fmt.Errorf("%s(%d,%d): shape %dx%d: %w",
			op, row, col, m.lay.Rows(), m.lay.Cols(), ErrOutOfRange)
	}
	return nil
}

// checkAligned verifies that two matrices share global shape AND distribution
// (block sizes and grid shape), so their local buffers line up element for
// element. Everything element-wise and the dot product rely on this.
func (m *Matrix[T]) checkAligned(op string, that *Matrix[T]) error {
	dm, dt := m.lay.Desc(), that.lay.Desc()
	switch {
	case dm.M != dt.M || dm.N != dt.N:
		return fmt.Errorf("%s: %dx%d vs %dx%d: %w", op, dm.M, dm.N, dt.M, dt.N, ErrDimensionMismatch)
	case dm.MB != dt.MB || dm.NB != dt.NB:
		return fmt.Errorf("%s: block split differs: %w", op, ErrDimensionMismatch)
	case m.grid.Rows() != that.grid.Rows() || m.grid.Cols() != that.grid.Cols():
		return fmt.Errorf("%s: grid shape differs: %w", op, ErrDimensionMismatch)
	}
	return nil
}

// checkSquare verifies the matrix and, when gridToo is set, the process grid.
func (m *Matrix[T]) checkSquare(op string, gridToo bool) error {
	if m.lay.Rows() != m.lay.Cols() {
		return fmt.Errorf("%s: %dx%d: %w", op, m.lay.Rows(), m.lay.Cols(), ErrNonSquare)
	}
	if gridToo && !m.grid.Square() {
		return fmt.Errorf("%s: %dx%d process grid: %w",
			op, m.grid.Rows(), m.grid.Cols(), ErrConfiguration)
	}
	return nil
}
