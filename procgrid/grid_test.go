// SPDX-License-Identifier: MIT

package procgrid_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/parmat/comm"
	"github.com/katalvlaran/parmat/procgrid"
)

// sized is a fake communicator with a fixed rank/size; collectives are
// irrelevant to shape resolution.
type sized struct {
	comm.Single
	rank, size int
}

func (s sized) Rank() int { return s.rank }
func (s sized) Size() int { return s.size }

func TestBuild_ShapeResolution(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name               string
		size               int
		reqRows, reqCols   int
		wantRows, wantCols int
		wantErr            error
	}{
		{name: "implicit square 1", size: 1, wantRows: 1, wantCols: 1},
		{name: "implicit square 4", size: 4, wantRows: 2, wantCols: 2},
		{name: "implicit square 16", size: 16, wantRows: 4, wantCols: 4},
		{name: "implicit square but 6 ranks", size: 6, wantErr: procgrid.ErrConfiguration},
		{name: "implicit square but 5 ranks", size: 5, wantErr: procgrid.ErrConfiguration},
		{name: "rows hint derives cols", size: 6, reqRows: 2, wantRows: 2, wantCols: 3},
		{name: "cols hint derives rows", size: 6, reqCols: 2, wantRows: 3, wantCols: 2},
		{name: "both hints honored", size: 8, reqRows: 2, reqCols: 4, wantRows: 2, wantCols: 4},
		{name: "both hints undersubscribe", size: 8, reqRows: 2, reqCols: 3, wantRows: 2, wantCols: 3},
		{name: "over-provisioned", size: 4, reqRows: 3, reqCols: 2, wantErr: procgrid.ErrConfiguration},
		{name: "hint larger than size", size: 2, reqRows: 4, wantErr: procgrid.ErrConfiguration},
		{name: "negative hint", size: 4, reqRows: -1, wantErr: procgrid.ErrConfiguration},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, err := procgrid.Build(sized{size: tc.size}, tc.reqRows, tc.reqCols)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.wantRows, g.Rows())
			require.Equal(t, tc.wantCols, g.Cols())
		})
	}
}

func TestBuild_NilComm(t *testing.T) {
	t.Parallel()
	_, err := procgrid.Build(nil, 0, 0)
	require.ErrorIs(t, err, procgrid.ErrNilComm)
}

// TestBuild_CoordinateAssignment checks the row-major rank→(row,col) mapping
// and that every grid slot is covered exactly once.
func TestBuild_CoordinateAssignment(t *testing.T) {
	t.Parallel()

	const size = 6
	seen := map[[2]int]int{}
	for rank := 0; rank < size; rank++ {
		g, err := procgrid.Build(sized{rank: rank, size: size}, 2, 3)
		require.NoError(t, err)
		require.True(t, g.Inside())
		require.Equal(t, rank/3, g.MyRow())
		require.Equal(t, rank%3, g.MyCol())
		seen[[2]int{g.MyRow(), g.MyCol()}]++
	}
	require.Len(t, seen, size) // all slots distinct
}

// TestBuild_RanksOutsideGrid covers the undersubscribed case: hinted shapes
// may leave trailing ranks out; those get NotInGrid coordinates.
func TestBuild_RanksOutsideGrid(t *testing.T) {
	t.Parallel()

	// 2x3 grid over 8 ranks: ranks 6 and 7 are outside.
	for rank := 0; rank < 8; rank++ {
		g, err := procgrid.Build(sized{rank: rank, size: 8}, 2, 3)
		require.NoError(t, err)
		if rank < 6 {
			require.True(t, g.Inside(), "rank %d", rank)
		} else {
			require.False(t, g.Inside(), "rank %d", rank)
			require.Equal(t, procgrid.NotInGrid, g.MyRow())
			require.Equal(t, procgrid.NotInGrid, g.MyCol())
		}
	}
}

func TestGrid_SquareAndComm(t *testing.T) {
	t.Parallel()

	c := sized{size: 4}
	g, err := procgrid.Build(c, 0, 0)
	require.NoError(t, err)
	require.True(t, g.Square())
	require.Equal(t, 4, g.Comm().Size())

	rect, err := procgrid.Build(sized{size: 6}, 2, 3)
	require.NoError(t, err)
	require.False(t, rect.Square())
}
