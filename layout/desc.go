// SPDX-License-Identifier: MIT
// Package layout — rebuilding a Layout from a wire descriptor.
//
// A back end receives only the 9-field descriptor plus a local buffer; this
// is the inverse door: validate the descriptor and recover the full Layout
// (local extents included) so the index math lives in exactly one place.

package layout

import "fmt"

// FromDesc validates d and reconstructs the Layout it describes, as seen by
// this rank (the rank is implicit in d.Ctx, the grid handle).
//
// Errors: ErrNilGrid (no context), ErrBadShape (type tag, dimensions or
// block sizes out of contract), ErrOverflow.
func FromDesc(d Desc) (Layout, error) {
	if d.Ctx == nil {
		return Layout{}, ErrNilGrid
	}
	if d.DType != DescDType || d.M <= 0 || d.N <= 0 || d.MB <= 0 || d.NB <= 0 ||
		d.RSrc != 0 || d.CSrc != 0 {
		return Layout{}, fmt.Errorf("FromDesc(%+v): %w", d, ErrBadShape)
	}
	g := d.Ctx
	lr := LocalExtent(d.M, d.MB, g.MyRow(), d.RSrc, g.Rows())
	lc := LocalExtent(d.N, d.NB, g.MyCol(), d.CSrc, g.Cols())
	if d.LLD < maxInt(lr, 1) {
		return Layout{}, fmt.Errorf("FromDesc: LLD %d below local rows %d: %w", d.LLD, lr, ErrBadShape)
	}
	l := Layout{r: d.M, c: d.N, bh: d.MB, bw: d.NB, lr: lr, lc: lc, grid: g}
	l.desc = d
	return l, nil
}
