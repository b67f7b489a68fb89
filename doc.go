// Package parmat is a block-cyclic distributed dense-matrix core: one global
// matrix, scattered in rectangular blocks over a logical grid of cooperating
// processes, with the index mapping and algebra needed to work on matrices
// too large for a single process.
//
// 🚀 What is parmat?
//
//	A library for SPMD programs (single program, multiple data) that brings together:
//		• Process grids: resolve a P_r×P_c grid from the process count, share one grid
//		  between matrices, keep every rank's coordinate explicit
//		• Block-cyclic layouts: local extents, the 9-field layout descriptor, and the
//		  exact local↔global index translation that everything else depends on
//		• Distributed matrices: local column-major buffers, safe element access,
//		  enumeration of locally owned coordinates, deep copies
//		• Algebra: element-wise ops and collective reductions, plus multiply,
//		  symmetric/Hermitian diagonalization (full and partial) and symmetrize
//		  delegated to a dense linear-algebra back end through a fixed call contract
//
// ✨ Why choose parmat?
//
//   - Explicit over implicit – communicators, grids and contexts are values you
//     pass around, never hidden globals
//   - Tested mapping – the block-cyclic index translation is the part that
//     silently corrupts results when wrong; it is exercised both directions
//   - Pure Go core – the in-process communicator and loopback back end run the
//     whole surface, MPI and ScaLAPACK stay swappable collaborators
//
// Under the hood, everything is organized under five subpackages:
//
//	comm/     — messaging collaborator: rank/size, barrier, sum-reduce, in-process groups
//	procgrid/ — process-grid manager: grid shape resolution and shared grid contexts
//	layout/   — block-cyclic layout: local extents, descriptor, index translation
//	backend/  — dense-LA back-end contract (gemm, eigensolvers, transpose) + loopback
//	pmatrix/  — the distributed matrix type and its algebra operations
//
// Quick ASCII example (8×8 matrix, 2×2 grid, 4×4 blocks — digits are owning ranks):
//
//	    0 0 0 0 1 1 1 1
//	    0 0 0 0 1 1 1 1
//	    0 0 0 0 1 1 1 1
//	    0 0 0 0 1 1 1 1
//	    2 2 2 2 3 3 3 3
//	    2 2 2 2 3 3 3 3
//	    2 2 2 2 3 3 3 3
//	    2 2 2 2 3 3 3 3
//
// Dive into README.md for full examples and the collective-call discipline
// every SPMD caller must follow.
//
//	go get github.com/katalvlaran/parmat
package parmat
