// SPDX-License-Identifier: MIT
// Package procgrid — Grid construction and queries.

package procgrid

import (
	"fmt"
	"math"

	"github.com/katalvlaran/parmat/comm"
)

// NotInGrid is the coordinate reported for ranks outside the P_r·P_c grid.
// Such ranks own zero elements of every matrix on the grid.
const NotInGrid = -1

// Grid is one rank's view of a P_r×P_c process grid. It is immutable after
// Build; a *Grid pointer doubles as the opaque grid-context handle shared by
// matrices that must interoperate in a single back-end call.
type Grid struct {
	rows, cols   int // grid shape, identical on every rank
	myRow, myCol int // this rank's coordinate, NotInGrid/NotInGrid when excluded
	c            comm.Communicator
}

// Build resolves the grid shape from the communicator size and the caller's
// hints, and assigns this rank its coordinate (row-major rank mapping:
// row = rank/cols, col = rank%cols).
//
// Every rank of c must call Build with identical arguments; the shape is a
// pure function of (size, hints) so lock-step callers always agree. This is
// a collective precondition, not something Build can check locally.
//
// Shape resolution: see the package doc. Hints must be non-negative.
//
// Errors: ErrNilComm, ErrConfiguration.
func Build(c comm.Communicator, reqRows, reqCols int) (*Grid, error) {
	if c == nil {
		return nil, ErrNilComm
	}
	if reqRows < 0 || reqCols < 0 {
		return nil, fmt.Errorf("Build(%d,%d): %w", reqRows, reqCols, ErrConfiguration)
	}
	size := c.Size()

	var rows, cols int
	switch {
	case reqRows == 0 && reqCols == 0:
		// Default: square grid of side floor(sqrt(size)). Leftover ranks mean
		// the caller asked for a square grid with a non-square process count;
		// that under-provisions the grid silently, so it is fatal.
		side := int(math.Sqrt(float64(size)))
		rows, cols = side, side
		if size > side*side {
			return nil, fmt.Errorf(
				"Build: implicit square grid needs a square process count, have %d: %w",
				size, ErrConfiguration)
		}
	case reqRows != 0 && reqCols == 0:
		rows, cols = reqRows, size/reqRows
	case reqRows == 0:
		rows, cols = size/reqCols, reqCols
	default:
		rows, cols = reqRows, reqCols
	}

	if rows <= 0 || cols <= 0 || rows*cols > size {
		return nil, fmt.Errorf(
			"Build: %dx%d grid over %d ranks: %w", rows, cols, size, ErrConfiguration)
	}

	g := &Grid{rows: rows, cols: cols, myRow: NotInGrid, myCol: NotInGrid, c: c}
	if rank := c.Rank(); rank < rows*cols {
		g.myRow = rank / cols
		g.myCol = rank % cols
	}
	return g, nil
}

// Rows returns P_r, the number of grid rows. Complexity: O(1).
func (g *Grid) Rows() int { return g.rows }

// Cols returns P_c, the number of grid columns. Complexity: O(1).
func (g *Grid) Cols() int { return g.cols }

// MyRow returns this rank's grid-row coordinate, or NotInGrid. Complexity: O(1).
func (g *Grid) MyRow() int { return g.myRow }

// MyCol returns this rank's grid-column coordinate, or NotInGrid. Complexity: O(1).
func (g *Grid) MyCol() int { return g.myCol }

// Inside reports whether this rank holds a coordinate in the grid.
// Ranks outside the grid own no elements of any matrix on it.
func (g *Grid) Inside() bool { return g.myRow != NotInGrid }

// Square reports whether the grid has equal row and column counts.
// Diagonalization requires a square grid.
func (g *Grid) Square() bool { return g.rows == g.cols }

// Comm returns the communicator the grid lives on. All collective algebra on
// matrices sharing this grid routes through it.
func (g *Grid) Comm() comm.Communicator { return g.c }
