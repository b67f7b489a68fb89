// Package layout implements the block-cyclic distribution map: which rank
// owns which element of an R×C global matrix, and where that element lives
// in the rank's local column-major buffer.
//
// What:
//
//   - Layout: global shape, block shape, this rank's local extents (Lr, Lc)
//     and the 9-field descriptor the dense-LA back end consumes.
//   - LocalExtent: the standard block-cyclic occupancy count ("numroc") —
//     how many rows/cols of a global dimension a grid coordinate owns.
//   - GlobalToLocal / LocalToGlobal: the bidirectional index translation.
//     These two must be exact inverses on every owned index; an error here
//     corrupts results silently, which is why they carry the densest tests
//     in the repository.
//   - Owned: deterministic enumeration of the owned global coordinates in
//     local-storage order, so callers can fill a matrix without guessing
//     ownership.
//
// Distribution model:
//
//   - The global matrix is cut into Bh×Bw blocks (Bh = ceil(R/numBlockRows),
//     Bw = ceil(C/numBlockCols)); block (i,j) belongs to grid coordinate
//     (i mod P_r, j mod P_c). Locally, a rank stores its blocks contiguously
//     in column-major order; the linear index of an owned element is
//     localRow + localCol·Lr.
//
// Edge cases:
//
//   - A block-count hint larger than the dimension degenerates to block size 1
//     (fine-grained cyclic distribution); never divides by zero.
//   - Ranks outside the process grid have Lr = Lc = 0 and own nothing.
//
// Errors:
//
//   - ErrBadShape: non-positive global dimensions or negative block hints.
//   - ErrOverflow: Lr·Lc does not fit in int — increase the process count.
//
// Complexity:
//
//   - New: O(1); every index translation: O(1); Owned: O(Lr·Lc).
package layout
