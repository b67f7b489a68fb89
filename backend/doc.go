// Package backend fixes the call contract between the distributed-matrix
// core and the external dense linear-algebra back end, and ships Loopback,
// a serial reference implementation of that contract.
//
// What:
//
//   - Backend: the fixed-signature routine set the core drives — general
//     matrix multiply (PDGemm/PZGemm), symmetric/Hermitian eigensolve, full
//     (PDSyevd/PZHeev) and partial-range (PDSyevr), and distributed
//     transpose-accumulate (PDTran). Argument order, the 9-field descriptor
//     (layout.Desc) and the integer info codes are the contract; the core
//     constructs arguments, the back end owns the numerics.
//   - Loopback: every rank gathers the operands into a replicated dense
//     matrix over the grid's communicator (ownership is a disjoint
//     partition, so one sum-reduction assembles the global matrix), computes
//     the answer serially with gonum (blas64/cblas128/lapack64), and keeps
//     only its owned part of the result. Deterministic, identical on every
//     rank, and honest about the contract's sharp edges: the two-call
//     workspace probe, the manual scratch-size formulas, and the eigensolve
//     routines consuming their input.
//
// Why:
//
//   - The core's correctness burden is argument/descriptor construction, not
//     numerics; a reference back end makes every collective operation
//     testable end to end in one process group, while an MPI/ScaLAPACK
//     binding stays a drop-in replacement behind the same interface.
//
// Info codes:
//
//   - 0: success. Negative: the 1-based position of an offending argument
//     (the probe-and-validate discipline callers must survive). Positive:
//     the computation itself failed.
//
// Collective discipline:
//
//   - Every routine is collective over the communicator of the descriptors'
//     grid context: all ranks call it with identical scalar arguments and
//     their own local buffers, in lock-step, or the program deadlocks.
package backend
