// SPDX-License-Identifier: MIT
// Package layout — Layout construction, local extents, and the descriptor.

package layout

import (
	"fmt"
	"math"

	"github.com/katalvlaran/parmat/procgrid"
)

// DescDType is the descriptor type tag for dense block-cyclic matrices.
const DescDType = 1

// Desc is the 9-field layout descriptor consumed by the dense-LA back end.
// Field order and meaning are a fixed contract: descriptor type, grid
// context, global dims, block dims, process-grid origin, local leading
// dimension. It is rebuilt whenever shape, blocks or grid change and never
// mutated in place anywhere else.
type Desc struct {
	DType      int            // DescDType for dense matrices
	Ctx        *procgrid.Grid // grid-context handle, shared by interoperating matrices
	M, N       int            // global row / column counts
	MB, NB     int            // block height / width
	RSrc, CSrc int            // grid coordinate owning the first block (always 0,0 here)
	LLD        int            // local leading dimension, max(Lr, 1)
}

// Layout maps an R×C global matrix onto a process grid in Bh×Bw blocks.
// A Layout is a value: copying it is safe and shares only the (immutable)
// grid pointer.
type Layout struct {
	r, c   int // global dims
	bh, bw int // block dims
	lr, lc int // this rank's local extents
	grid   *procgrid.Grid
	desc   Desc
}

// LocalExtent is the standard block-cyclic occupancy count: the number of
// elements of a global dimension n, distributed in blocks of nb over nprocs
// grid coordinates starting at srcproc, that coordinate iproc owns.
// Completed full cycles contribute floor(nblocks/nprocs)·nb each; the
// remainder depends on where iproc sits relative to the partial last block.
//
// iproc == procgrid.NotInGrid owns nothing. Applied independently per
// dimension (rows and cols).
func LocalExtent(n, nb, iproc, srcproc, nprocs int) int {
	if iproc == procgrid.NotInGrid {
		return 0
	}
	mydist := (nprocs + iproc - srcproc) % nprocs
	nblocks := n / nb
	ext := (nblocks / nprocs) * nb
	switch rem := nblocks % nprocs; {
	case mydist < rem:
		ext += nb // one more full block
	case mydist == rem:
		ext += n % nb // the partial trailing block
	}
	return ext
}

// New builds the layout of an R×C matrix over grid, cut into numBlockRows ×
// numBlockCols blocks. Zero block-count hints default to the grid dimensions
// (one block-row per grid row, one block-col per grid col). Block sizes are
// ceil(R/numBlockRows) and ceil(C/numBlockCols); hints larger than the
// dimension degenerate to block size 1.
//
// Errors: ErrNilGrid, ErrBadShape, ErrOverflow.
func New(grid *procgrid.Grid, r, c, numBlockRows, numBlockCols int) (Layout, error) {
	if grid == nil {
		return Layout{}, ErrNilGrid
	}
	if r <= 0 || c <= 0 || numBlockRows < 0 || numBlockCols < 0 {
		return Layout{}, fmt.Errorf("New(%d,%d,%d,%d): %w", r, c, numBlockRows, numBlockCols, ErrBadShape)
	}
	if numBlockRows == 0 {
		numBlockRows = grid.Rows()
	}
	if numBlockCols == 0 {
		numBlockCols = grid.Cols()
	}

	// ceil(dim/blocks); a hint above the dimension yields block size 1.
	bh := (r + numBlockRows - 1) / numBlockRows
	bw := (c + numBlockCols - 1) / numBlockCols

	lr := LocalExtent(r, bh, grid.MyRow(), 0, grid.Rows())
	lc := LocalExtent(c, bw, grid.MyCol(), 0, grid.Cols())
	if lr > 0 && lc > math.MaxInt/lr {
		return Layout{}, fmt.Errorf("New(%d,%d): %d x %d local elements: %w", r, c, lr, lc, ErrOverflow)
	}

	l := Layout{r: r, c: c, bh: bh, bw: bw, lr: lr, lc: lc, grid: grid}
	l.desc = Desc{
		DType: DescDType,
		Ctx:   grid,
		M:     r,
		N:     c,
		MB:    bh,
		NB:    bw,
		RSrc:  0,
		CSrc:  0,
		LLD:   maxInt(lr, 1),
	}
	return l, nil
}

// Rows returns the global row count R. Complexity: O(1).
func (l *Layout) Rows() int { return l.r }

// Cols returns the global column count C. Complexity: O(1).
func (l *Layout) Cols() int { return l.c }

// BlockRows returns the block height Bh. Complexity: O(1).
func (l *Layout) BlockRows() int { return l.bh }

// BlockCols returns the block width Bw. Complexity: O(1).
func (l *Layout) BlockCols() int { return l.bw }

// LocalRows returns Lr, the number of global rows this rank owns. Complexity: O(1).
func (l *Layout) LocalRows() int { return l.lr }

// LocalCols returns Lc, the number of global cols this rank owns. Complexity: O(1).
func (l *Layout) LocalCols() int { return l.lc }

// LocalSize returns Lr·Lc, the local buffer length. Complexity: O(1).
func (l *Layout) LocalSize() int { return l.lr * l.lc }

// Grid returns the process grid the layout distributes over.
func (l *Layout) Grid() *procgrid.Grid { return l.grid }

// Desc returns the 9-field descriptor for the back-end call contract.
// The returned value is a copy; the layout's own descriptor is immutable.
func (l *Layout) Desc() Desc { return l.desc }

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
