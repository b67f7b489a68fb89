// SPDX-License-Identifier: MIT

// Package pmatrix: functional configuration for matrix construction.
// This file defines:
//   - Option / options (functional options with internal state),
//   - WithGridShape / WithBlocks / WithGrid / WithBackend constructors,
//   - gatherOptions helper that applies defaults and enforces invariants.
//
// Defaults: a square-ish grid derived from the communicator size (see
// procgrid.Build with zero hints), one block row/column per grid row/column,
// and the Loopback back end.

package pmatrix

import (
	"fmt"

	"github.com/katalvlaran/parmat/backend"
	"github.com/katalvlaran/parmat/procgrid"
)

// options carries the resolved construction state. Fields are unexported;
// public APIs consume ...Option.
type options struct {
	gridRows, gridCols   int            // hints forwarded to procgrid.Build
	blockRows, blockCols int            // block-count hints forwarded to layout.New
	grid                 *procgrid.Grid // non-nil: attach instead of building
	be                   backend.Backend
}

// Option mutates construction options.
type Option func(*options)

// WithGridShape requests a P_r×P_c process grid. Zero for one of the two
// derives it from the communicator size; negative values are rejected at
// construction time via procgrid.Build.
func WithGridShape(rows, cols int) Option {
	return func(o *options) {
		o.gridRows, o.gridCols = rows, cols
	}
}

// WithBlocks sets the number of block rows and block columns the matrix is
// cut into. Zero hints default to the grid dimensions, which yields the
// classic one-block-per-process-row/column split.
func WithBlocks(numBlockRows, numBlockCols int) Option {
	return func(o *options) {
		o.blockRows, o.blockCols = numBlockRows, numBlockCols
	}
}

// WithGrid attaches the matrix to an existing process grid instead of
// building a fresh one. The grid pointer is shared by reference: matrices on
// the same grid share one context and one communicator, which is what the
// collective operations require of their operands.
func WithGrid(g *procgrid.Grid) Option {
	return func(o *options) { o.grid = g }
}

// WithBackend selects the dense-algebra back end used by the collective
// operations. The default is the serial Loopback reference.
func WithBackend(b backend.Backend) Option {
	return func(o *options) { o.be = b }
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts []Option) (options, error) {
	o := options{be: backend.Loopback{}}
	for _, fn := range opts {
		fn(&o)
	}
	if o.grid != nil && (o.gridRows != 0 || o.gridCols != 0) {
		return options{}, fmt.Errorf("gatherOptions: WithGrid excludes WithGridShape: %w", ErrConfiguration)
	}
	if o.be == nil {
		return options{}, fmt.Errorf("gatherOptions: nil backend: %w", ErrConfiguration)
	}
	return o, nil
}
