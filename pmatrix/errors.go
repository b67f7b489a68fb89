// SPDX-License-Identifier: MIT
// Package pmatrix: sentinel error set and the back-end status wrapper.

package pmatrix

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/parmat/layout"
	"github.com/katalvlaran/parmat/procgrid"
)

var (
	// ErrDimensionMismatch is returned when two operands do not agree on
	// global shape or on distribution (blocks and grid).
	ErrDimensionMismatch = errors.New("pmatrix: operand dimensions do not match")

	// ErrOutOfRange is returned when an index or flag argument lies outside
	// its valid domain. This is a programmer error, not a data condition.
	ErrOutOfRange = errors.New("pmatrix: argument out of range")

	// ErrNonSquare is returned by operations defined only for square
	// matrices (Eye, Diagonalize, Symmetrize).
	ErrNonSquare = errors.New("pmatrix: matrix is not square")

	// ErrZeroDivisor is returned by Unscale for a zero scalar.
	ErrZeroDivisor = errors.New("pmatrix: division by zero scalar")

	// ErrNotImplemented marks scalar-kind / operation pairs with no kernel,
	// such as Symmetrize on complex data.
	ErrNotImplemented = errors.New("pmatrix: operation not implemented for this scalar kind")

	// ErrBackend is the class matched (via errors.Is) by every *BackendError.
	ErrBackend = errors.New("pmatrix: backend operation failed")
)

// Collaborator sentinels surfaced to callers under one import.
var (
	// ErrBadShape mirrors layout.ErrBadShape (non-positive dimensions,
	// negative block hints).
	ErrBadShape = layout.ErrBadShape

	// ErrOverflow mirrors layout.ErrOverflow (Lr·Lc exceeds int).
	ErrOverflow = layout.ErrOverflow

	// ErrConfiguration mirrors procgrid.ErrConfiguration (grid shape cannot
	// be satisfied by the communicator, or the grid is not square where a
	// square one is required).
	ErrConfiguration = procgrid.ErrConfiguration
)

// BackendError reports a nonzero info status from a back-end routine.
// Negative codes mirror the 1-based position of the offending argument;
// positive codes mean the computation itself failed.
type BackendError struct {
	Op   string // the pmatrix operation, e.g. "Diagonalize"
	Code int    // the routine's info value
}

// Error implements the error interface.
func (e *BackendError) Error() string {
	return fmt.Sprintf("pmatrix: %s: backend returned info=%d", e.Op, e.Code)
}

// Is reports class membership so errors.Is(err, ErrBackend) matches any
// back-end failure without inspecting the code.
func (e *BackendError) Is(target error) bool { return target == ErrBackend }
