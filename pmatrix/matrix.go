// SPDX-License-Identifier: MIT

// Package pmatrix: the Matrix type, construction and element access.

package pmatrix

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/parmat/backend"
	"github.com/katalvlaran/parmat/comm"
	"github.com/katalvlaran/parmat/layout"
	"github.com/katalvlaran/parmat/procgrid"
)

// Scalar is the element domain of a distributed matrix.
type Scalar interface {
	float64 | complex128
}

// Matrix is a global Rows×Cols dense matrix distributed block-cyclically over
// a process grid. The rank-local buffer holds exactly the owned entries in
// column-major local order and is never shared between matrices; the grid is
// shared by reference when attached through WithGrid.
type Matrix[T Scalar] struct {
	grid *procgrid.Grid
	lay  layout.Layout
	data []T
	be   backend.Backend
}

// New builds a zero-filled rows×cols matrix distributed over c. Options pick
// the grid shape (or attach an existing grid), the block split and the back
// end; see WithGridShape, WithBlocks, WithGrid, WithBackend.
//
// Collective: every rank of c must call New with identical shape and options.
func New[T Scalar](c comm.Communicator, rows, cols int, opts ...Option) (*Matrix[T], error) {
	o, err := gatherOptions(opts)
	if err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}
	g := o.grid
	if g == nil {
		if g, err = procgrid.Build(c, o.gridRows, o.gridCols); err != nil {
			return nil, fmt.Errorf("New: %w", err)
		}
	}
	lay, err := layout.New(g, rows, cols, o.blockRows, o.blockCols)
	if err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}
	return &Matrix[T]{
		grid: g,
		lay:  lay,
		data: make([]T, lay.LocalSize()),
		be:   o.be,
	}, nil
}

// Clone returns a deep copy: same grid (by reference), same layout, and an
// independent copy of the local buffer.
func (m *Matrix[T]) Clone() *Matrix[T] {
	out := &Matrix[T]{grid: m.grid, lay: m.lay, data: make([]T, len(m.data)), be: m.be}
	copy(out.data, m.data)
	return out
}

// sibling allocates a zero matrix of the given global shape on m's grid and
// back end, with the default block split.
func (m *Matrix[T]) sibling(rows, cols int) (*Matrix[T], error) {
	lay, err := layout.New(m.grid, rows, cols, 0, 0)
	if err != nil {
		return nil, err
	}
	return &Matrix[T]{grid: m.grid, lay: lay, data: make([]T, lay.LocalSize()), be: m.be}, nil
}

// Zeros resets every owned entry to zero.
func (m *Matrix[T]) Zeros() {
	clear(m.data)
}

// Eye overwrites m with the identity. The matrix must be square; diagonal
// entries owned elsewhere are naturally skipped by the ownership test.
func (m *Matrix[T]) Eye() error {
	if m.lay.Rows() != m.lay.Cols() {
		return fmt.Errorf("Eye: %dx%d: %w", m.lay.Rows(), m.lay.Cols(), ErrNonSquare)
	}
	clear(m.data)
	for i := 0; i < m.lay.Rows(); i++ {
		if k := m.lay.GlobalToLocal(i, i); k != layout.NotLocal {
			m.data[k] = 1
		}
	}
	return nil
}

// --- element access -----------------------------------------------------------

// At reads the element at a global (row, col). Entries owned by another rank
// read as zero; only out-of-bounds indices are an error.
func (m *Matrix[T]) At(row, col int) (T, error) {
	var zero T
	if err := m.checkBounds("At", row, col); err != nil {
		return zero, err
	}
	k := m.lay.GlobalToLocal(row, col)
	if k == layout.NotLocal {
		return zero, nil
	}
	return m.data[k], nil
}

// Set writes the element at a global (row, col). Writes to entries owned by
// another rank are silently discarded, which lets SPMD code issue the same
// global writes on every rank.
func (m *Matrix[T]) Set(row, col int, v T) error {
	if err := m.checkBounds("Set", row, col); err != nil {
		return err
	}
	if k := m.lay.GlobalToLocal(row, col); k != layout.NotLocal {
		m.data[k] = v
	}
	return nil
}

// OwnedEntries yields every owned global (row, col) in local-storage order.
// The sequence is finite and restartable.
func (m *Matrix[T]) OwnedEntries() iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		m.lay.Owned(yield)
	}
}

// OwnedRows lists the global row indices with at least one owned entry on
// this rank, in local-row order.
func (m *Matrix[T]) OwnedRows() []int {
	out := make([]int, m.lay.LocalRows())
	for lr := range out {
		out[lr] = m.lay.LocalRowToGlobal(lr)
	}
	return out
}

// OwnedCols lists the global column indices with at least one owned entry on
// this rank, in local-column order.
func (m *Matrix[T]) OwnedCols() []int {
	out := make([]int, m.lay.LocalCols())
	for lc := range out {
		out[lc] = m.lay.LocalColToGlobal(lc)
	}
	return out
}

// --- accessors ----------------------------------------------------------------

// Rows returns the global row count.
func (m *Matrix[T]) Rows() int { return m.lay.Rows() }

// Cols returns the global column count.
func (m *Matrix[T]) Cols() int { return m.lay.Cols() }

// LocalRows returns the number of global rows represented on this rank.
func (m *Matrix[T]) LocalRows() int { return m.lay.LocalRows() }

// LocalCols returns the number of global columns represented on this rank.
func (m *Matrix[T]) LocalCols() int { return m.lay.LocalCols() }

// Size returns this rank's owned element count (the local buffer length).
func (m *Matrix[T]) Size() int { return len(m.data) }

// IsLocal reports whether this rank owns the global (row, col).
func (m *Matrix[T]) IsLocal(row, col int) bool { return m.lay.IsLocal(row, col) }

// Grid exposes the process grid the matrix is distributed over.
func (m *Matrix[T]) Grid() *procgrid.Grid { return m.grid }

// Layout exposes the block-cyclic layout (shape, blocks, descriptor).
func (m *Matrix[T]) Layout() layout.Layout { return m.lay }
