// SPDX-License-Identifier: MIT

package comm_test

import (
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/parmat/comm"
)

// --- Single -------------------------------------------------------------------

func TestSingle_Identity(t *testing.T) {
	t.Parallel()

	var c comm.Single
	require.Equal(t, 0, c.Rank())
	require.Equal(t, 1, c.Size())
	require.True(t, c.IsLeader())

	buf := []float64{1, 2, 3}
	require.NoError(t, c.AllReduceSum(buf))
	require.Equal(t, []float64{1, 2, 3}, buf)

	c.Barrier() // must not block
	c.Shutdown()
}

// --- Group construction -------------------------------------------------------

func TestNewGroup_SizeValidation(t *testing.T) {
	t.Parallel()

	_, err := comm.NewGroup(0)
	require.ErrorIs(t, err, comm.ErrGroupSize)
	_, err = comm.NewGroup(-3)
	require.ErrorIs(t, err, comm.ErrGroupSize)

	gs, err := comm.NewGroup(4)
	require.NoError(t, err)
	require.Len(t, gs, 4)
	for r, g := range gs {
		require.Equal(t, r, g.Rank())
		require.Equal(t, 4, g.Size())
		require.Equal(t, r == 0, g.IsLeader())
	}
}

// --- Barrier ------------------------------------------------------------------

// TestGroup_Barrier_LockStep checks that no rank can pass barrier k+1 before
// every rank passed barrier k, across several reused rounds.
func TestGroup_Barrier_LockStep(t *testing.T) {
	t.Parallel()

	const n = 8
	const rounds = 25
	var phase atomic.Int64

	err := comm.Run(n, func(c comm.Communicator) error {
		for k := 0; k < rounds; k++ {
			phase.Add(1)
			c.Barrier()
			// After the barrier, all n increments of this round are visible.
			if got := phase.Load(); got < int64((k+1)*n) {
				return errors.New("barrier released early")
			}
			c.Barrier() // keep rounds from overlapping
		}
		return nil
	})
	require.NoError(t, err)
}

// --- AllReduceSum -------------------------------------------------------------

func TestGroup_AllReduceSum_SumsAcrossRanks(t *testing.T) {
	t.Parallel()

	const n = 4
	err := comm.Run(n, func(c comm.Communicator) error {
		// Rank r contributes [r, 2r, 100]; the reduced buffer is identical
		// on every rank: [0+1+2+3, 2*(0+1+2+3), 400].
		r := float64(c.Rank())
		buf := []float64{r, 2 * r, 100}
		if err := c.AllReduceSum(buf); err != nil {
			return err
		}
		want := []float64{6, 12, 400}
		for i := range want {
			if buf[i] != want[i] {
				return errors.New("wrong reduction result")
			}
		}
		return nil
	})
	require.NoError(t, err)
}

// TestGroup_AllReduceSum_Reusable runs many back-to-back reductions to verify
// the round reset performed by the last reader.
func TestGroup_AllReduceSum_Reusable(t *testing.T) {
	t.Parallel()

	const n = 3
	const rounds = 50
	err := comm.Run(n, func(c comm.Communicator) error {
		for k := 0; k < rounds; k++ {
			buf := []float64{float64(k)}
			if err := c.AllReduceSum(buf); err != nil {
				return err
			}
			if buf[0] != float64(k*n) {
				return errors.New("stale accumulator leaked across rounds")
			}
		}
		return nil
	})
	require.NoError(t, err)
}

func TestGroup_AllReduceSum_ShapeMismatch_AllRanksObserve(t *testing.T) {
	t.Parallel()

	const n = 4
	var observed atomic.Int64
	_ = comm.Run(n, func(c comm.Communicator) error {
		// Rank 2 diverges from the agreed buffer length.
		ln := 3
		if c.Rank() == 2 {
			ln = 5
		}
		err := c.AllReduceSum(make([]float64, ln))
		if errors.Is(err, comm.ErrCollectiveShape) {
			observed.Add(1)
		}
		return err
	})
	// Uniform error observation: every rank of the round sees the sentinel.
	require.Equal(t, int64(n), observed.Load())
}

func TestSumReduce_ComplexViewedAsPairs(t *testing.T) {
	t.Parallel()

	const n = 3
	err := comm.Run(n, func(c comm.Communicator) error {
		r := float64(c.Rank())
		buf := []complex128{complex(r, -r), complex(1, 1)}
		if err := comm.SumReduce(c, buf); err != nil {
			return err
		}
		// Σr over ranks 0..2 is 3, so [3-3i, 3+3i].
		if buf[0] != complex(3, -3) || buf[1] != complex(3, 3) {
			return errors.New("wrong complex reduction")
		}
		return nil
	})
	require.NoError(t, err)
}

func TestRun_PropagatesBodyError(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	err := comm.Run(3, func(c comm.Communicator) error {
		if c.Rank() == 1 {
			return boom
		}
		return nil
	})
	require.ErrorIs(t, err, boom)
}
