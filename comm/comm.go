// SPDX-License-Identifier: MIT
// Package comm — the Communicator contract.

package comm

// Communicator is the messaging collaborator of the distributed-matrix core.
// One value per participating process (rank); collectives block until every
// rank of the same world has called them.
//
// Implementations must be safe for the SPMD pattern: identical program text
// on every rank, collectives invoked in identical order. They are NOT
// required to be safe for concurrent use of one endpoint by several
// goroutines; a rank is single-threaded by the concurrency model.
type Communicator interface {
	// Rank returns this process's zero-based rank in [0, Size).
	Rank() int

	// Size returns the number of ranks in the world.
	Size() int

	// IsLeader reports whether this rank is the designated leader (rank 0).
	// Diagnostics are printed by the leader only.
	IsLeader() bool

	// Barrier blocks until every rank of the world has entered it.
	// Reusable: consecutive barriers are distinct synchronization points.
	Barrier()

	// AllReduceSum replaces buf, in place, with the element-wise sum of the
	// buffers contributed by all ranks. Every rank receives the same result.
	//
	// Errors: ErrCollectiveShape when ranks disagree on len(buf).
	AllReduceSum(buf []float64) error

	// Shutdown releases the endpoint. After Shutdown no collective may be
	// called; all ranks must shut down together (typically after a Barrier).
	Shutdown()
}
