// SPDX-License-Identifier: MIT

// Package pmatrix provides the distributed dense matrix and its algebra.
//
// A Matrix[T] (T = float64 or complex128) is a global R×C dense matrix split
// block-cyclically over a process grid. Each rank in the grid's communicator
// holds exactly its owned entries in a column-major local buffer; no rank ever
// materializes the full matrix.
//
// The pmatrix package provides:
//
//   - Construction: New (grid built or attached through options), Clone,
//     Zeros, Eye.
//   - Element access: At / Set with global indices (unowned reads yield zero,
//     unowned writes are discarded), OwnedEntries iteration, OwnedRows and
//     OwnedCols index lists.
//   - Local algebra: Add, Sub, Scale, Unscale, Neg — pure per-rank loops,
//     no communication.
//   - Collective algebra: Dot / SquaredNorm / Norm (one scalar reduction),
//     Prod (distributed GEMM), Diagonalize and DiagonalizeRange (symmetric /
//     Hermitian eigensolve), Symmetrize — all delegated to a backend.Backend.
//
// SPMD discipline: every method documented as collective must be called by
// ALL ranks of the grid's communicator, in the same order, with globally
// consistent arguments. Purely local methods carry no such requirement.
//
// Errors follow the package sentinel convention: ErrDimensionMismatch,
// ErrOutOfRange, ErrNonSquare, ErrZeroDivisor, ErrNotImplemented, plus
// ErrBadShape, ErrOverflow and ErrConfiguration surfaced from the layout and
// procgrid collaborators. Nonzero back-end status is wrapped in *BackendError
// (matches ErrBackend).
//
// Complexity: local methods are O(Lr·Lc) in the rank's owned element count;
// collective methods additionally pay the backend's communication cost.
package pmatrix
