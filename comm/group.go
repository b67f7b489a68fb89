// SPDX-License-Identifier: MIT
// Package comm — Group: n in-process ranks backed by goroutines.
//
// Purpose:
//   - Provide a real multi-rank world inside one test binary, so the
//     lock-step behavior of grids, layouts and collective algebra can be
//     exercised deterministically without an MPI launcher.
//
// Design:
//   - One shared hub per group; endpoints are thin rank views over it.
//   - Barrier: generation counter over sync.Cond (reusable back-to-back).
//   - AllReduceSum: contribute under the hub lock, barrier, read the shared
//     accumulator, barrier again with a last-arriver hook that resets the
//     round. The reset-by-last-reader guarantees no rank can race into the
//     next round's contribution before the previous round is cleared.
//
// Determinism:
//   - Sum order over ranks follows arrival order; floating-point sums may
//     differ across runs in the last bits. Tests compare within tolerance
//     exactly as they would against an MPI reduction.

package comm

import "sync"

// hub is the shared state of one in-process group.
type hub struct {
	n        int
	mu       sync.Mutex
	cond     *sync.Cond
	arrived  int       // ranks inside the current barrier
	gen      int       // barrier generation counter
	acc      []float64 // reduce accumulator for the current round
	shapeErr bool      // a rank contributed a mismatched length this round
}

// barrier blocks until all n ranks arrive. When last is non-nil, the final
// arriver runs it (under the hub lock) before releasing the group; this is
// how reduce rounds are reset without an extra synchronization point.
func (h *hub) barrier(last func()) {
	h.mu.Lock()
	gen := h.gen
	h.arrived++
	if h.arrived == h.n {
		if last != nil {
			last()
		}
		h.arrived = 0
		h.gen++
		h.cond.Broadcast()
	} else {
		for gen == h.gen {
			h.cond.Wait()
		}
	}
	h.mu.Unlock()
}

// Group is one rank's endpoint into an in-process world of n ranks.
// Endpoints are created together by NewGroup and share a single hub.
type Group struct {
	rank int
	h    *hub
}

// Compile-time conformance check.
var _ Communicator = (*Group)(nil)

// NewGroup creates an in-process world of n ranks and returns one endpoint
// per rank (index == rank). Each endpoint must be driven by its own
// goroutine; collectives block until all n endpoints participate.
//
// Errors: ErrGroupSize when n <= 0.
func NewGroup(n int) ([]*Group, error) {
	if n <= 0 {
		return nil, ErrGroupSize
	}
	h := &hub{n: n}
	h.cond = sync.NewCond(&h.mu)
	gs := make([]*Group, n)
	for r := 0; r < n; r++ {
		gs[r] = &Group{rank: r, h: h}
	}
	return gs, nil
}

// Run drives body as an SPMD program over n in-process ranks: one goroutine
// per rank, each handed its own endpoint. Run returns after every rank's
// body returned; the first error in rank order is reported.
//
// This is the harness the rest of the repository uses for multi-rank tests.
func Run(n int, body func(c Communicator) error) error {
	gs, err := NewGroup(n)
	if err != nil {
		return err
	}
	errs := make([]error, n)
	var wg sync.WaitGroup
	wg.Add(n)
	for r := 0; r < n; r++ {
		go func(r int) {
			defer wg.Done()
			errs[r] = body(gs[r])
		}(r)
	}
	wg.Wait()
	for _, e := range errs {
		if e != nil {
			return e
		}
	}
	return nil
}

// Rank returns this endpoint's rank. Complexity: O(1).
func (g *Group) Rank() int { return g.rank }

// Size returns the number of ranks in the group. Complexity: O(1).
func (g *Group) Size() int { return g.h.n }

// IsLeader reports whether this endpoint is rank 0. Complexity: O(1).
func (g *Group) IsLeader() bool { return g.rank == 0 }

// Barrier blocks until all ranks of the group have entered it.
func (g *Group) Barrier() { g.h.barrier(nil) }

// AllReduceSum sums buf element-wise across all ranks, in place.
// The first contributor of a round fixes the buffer length; when any rank
// disagrees, every rank of the round observes ErrCollectiveShape (uniform
// error observation keeps the SPMD program in lock-step even on failure)
// and buf is left unchanged on the mismatching ranks.
func (g *Group) AllReduceSum(buf []float64) error {
	h := g.h
	var mismatch bool
	h.mu.Lock()
	if h.acc == nil {
		h.acc = make([]float64, len(buf))
	}
	if len(buf) != len(h.acc) {
		mismatch = true
		h.shapeErr = true
	} else {
		for i, v := range buf {
			h.acc[i] += v
		}
	}
	h.mu.Unlock()

	h.barrier(nil) // every contribution is in

	h.mu.Lock()
	var err error
	if h.shapeErr {
		err = ErrCollectiveShape
	} else if !mismatch {
		copy(buf, h.acc)
	}
	h.mu.Unlock()

	// The last reader resets the round before anyone can start the next one.
	h.barrier(func() {
		h.acc = nil
		h.shapeErr = false
	})
	return err
}

// Shutdown releases the endpoint. In-process groups hold no external
// resources; Shutdown exists to honor the Communicator lifecycle so hosts
// can treat Group and an MPI-backed world identically.
func (g *Group) Shutdown() {}
