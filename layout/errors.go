// SPDX-License-Identifier: MIT
// Package layout: sentinel error set.

package layout

import "errors"

var (
	// ErrBadShape is returned for non-positive global dimensions or negative
	// block-count hints.
	ErrBadShape = errors.New("layout: invalid shape")

	// ErrOverflow is returned when the local element count Lr·Lc would
	// overflow int. The cure is more processes, not a bigger buffer.
	ErrOverflow = errors.New("layout: local element count overflows int")

	// ErrNilGrid is returned when New receives a nil process grid.
	ErrNilGrid = errors.New("layout: process grid is nil")
)
