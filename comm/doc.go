// Package comm defines the messaging collaborator every distributed
// operation in parmat routes through, and ships two in-process
// implementations of it.
//
// What:
//
//   - Communicator: rank/size discovery, barrier, in-place sum-reduction and
//     coordinated shutdown — the five verbs the matrix core needs.
//   - Single: the one-rank world; every collective is the identity.
//   - Group: n in-process ranks backed by goroutines, with a reusable
//     generation barrier and an accumulate/read sum-reduce. Run drives an
//     SPMD body on a fresh group, which is how the rest of the repo tests
//     multi-rank behavior without MPI.
//   - Abort: the lock-step failure protocol — the leader prints the
//     diagnostic, all ranks synchronize, shut down and exit together, so no
//     rank is left blocked on a peer that already died.
//
// Why:
//
//   - Collectives are the only cross-rank agreement primitive the core uses;
//     keeping them behind one small interface keeps MPI (or any transport)
//     a drop-in collaborator.
//   - Explicit Communicator values instead of a process-global state make it
//     possible to stand up several independent worlds inside one test binary.
//
// Discipline:
//
//   - All collectives are blocking and must be called by every rank of a
//     communicator in the same order ("process lock-step"). A rank that skips
//     a Barrier or an AllReduceSum deadlocks the group; that is a caller bug,
//     not a recoverable condition.
//
// Errors:
//
//   - ErrCollectiveShape: ranks disagreed on the reduce buffer length.
//
// Complexity:
//
//   - Barrier: O(1) per rank; AllReduceSum: O(len(buf)) per rank.
package comm
