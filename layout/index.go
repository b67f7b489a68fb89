// SPDX-License-Identifier: MIT
// Package layout — the bidirectional local↔global index translation.
//
// Purpose:
//   - GlobalToLocal decides ownership and produces the linear local offset;
//     LocalToGlobal inverts it. Together they define what "distributed"
//     means for every matrix in the repository: each global (row, col) maps
//     to exactly one grid coordinate, and on that rank to exactly one local
//     offset.
//
// Determinism:
//   - Pure integer arithmetic on the layout value; no allocation, no state.

package layout

// NotLocal is the sentinel returned by GlobalToLocal for elements this rank
// does not own.
const NotLocal = -1

// GlobalToLocal returns the linear local offset of global element (row, col)
// when this rank owns it, else NotLocal.
//
// Ownership: the block containing the element is blockIndex = global/blockDim,
// owned by grid coordinate blockIndex mod gridDim. When owned, the local
// position combines "which local block" (blockIndex / gridDim) with the
// offset inside the block; the linear index is localRow + localCol·Lr
// (column-major local storage).
//
// Precondition: 0 ≤ row < R and 0 ≤ col < C. Bounds are the caller's
// contract (pmatrix checks them at its public surface).
func (l *Layout) GlobalToLocal(row, col int) int {
	g := l.grid
	if !g.Inside() {
		return NotLocal
	}
	br := row / l.bh // global block-row index
	if br%g.Rows() != g.MyRow() {
		return NotLocal
	}
	bc := col / l.bw // global block-col index
	if bc%g.Cols() != g.MyCol() {
		return NotLocal
	}
	localRow := (br/g.Rows())*l.bh + row%l.bh
	localCol := (bc/g.Cols())*l.bw + col%l.bw
	return localRow + localCol*l.lr
}

// LocalToGlobal recovers the global (row, col) of the element stored at
// linear local offset k. It is the exact left inverse of GlobalToLocal for
// every offset in [0, Lr·Lc) on this rank.
//
// Decomposition: localRow = k mod Lr, localCol = k / Lr (column-major), then
// each local coordinate splits into (local block, offset within block) and
// recombines with this rank's grid coordinate.
func (l *Layout) LocalToGlobal(k int) (row, col int) {
	g := l.grid
	localRow := k % l.lr
	localCol := k / l.lr
	row = ((localRow/l.bh)*g.Rows()+g.MyRow())*l.bh + localRow%l.bh
	col = ((localCol/l.bw)*g.Cols()+g.MyCol())*l.bw + localCol%l.bw
	return row, col
}

// LocalRowToGlobal maps a local row index to its global row.
// Precondition: 0 ≤ lrow < Lr.
func (l *Layout) LocalRowToGlobal(lrow int) int {
	g := l.grid
	return ((lrow/l.bh)*g.Rows()+g.MyRow())*l.bh + lrow%l.bh
}

// LocalColToGlobal maps a local column index to its global column.
// Precondition: 0 ≤ lcol < Lc.
func (l *Layout) LocalColToGlobal(lcol int) int {
	g := l.grid
	return ((lcol/l.bw)*g.Cols()+g.MyCol())*l.bw + lcol%l.bw
}

// OwnerOf returns the grid coordinate (pr, pc) owning global element
// (row, col). The same on every rank: ownership is a pure function of the
// layout, which is how the scatter/gather consistency invariant ("exactly
// one owner, no gaps") is testable.
func (l *Layout) OwnerOf(row, col int) (pr, pc int) {
	return (row / l.bh) % l.grid.Rows(), (col / l.bw) % l.grid.Cols()
}

// IsLocal reports whether this rank owns global element (row, col).
func (l *Layout) IsLocal(row, col int) bool {
	return l.GlobalToLocal(row, col) != NotLocal
}

// Owned visits every global (row, col) this rank owns, in local-storage
// order (k = 0..Lr·Lc-1), calling f for each; f returns false to stop early.
// Restartable: each call walks the full sequence again.
func (l *Layout) Owned(f func(row, col int) bool) {
	n := l.lr * l.lc
	for k := 0; k < n; k++ {
		if !f(l.LocalToGlobal(k)) {
			return
		}
	}
}
