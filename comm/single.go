// SPDX-License-Identifier: MIT
// Package comm — Single: the degenerate one-rank world.
//
// Purpose:
//   - Let the whole library run unchanged inside a single process: every
//     collective on a one-rank world is the identity operation.
//   - Serve as the zero-setup Communicator for examples and serial tests.

package comm

// Single is a Communicator over exactly one rank. The zero value is ready to
// use. All collectives return immediately; AllReduceSum leaves buf unchanged
// (the sum over one contributor is the contribution itself).
type Single struct{}

// Compile-time conformance check.
var _ Communicator = Single{}

// Rank returns 0, the only rank. Complexity: O(1).
func (Single) Rank() int { return 0 }

// Size returns 1. Complexity: O(1).
func (Single) Size() int { return 1 }

// IsLeader reports true: the only rank is the leader. Complexity: O(1).
func (Single) IsLeader() bool { return true }

// Barrier returns immediately: a one-rank world is always synchronized.
func (Single) Barrier() {}

// AllReduceSum is the identity for a one-rank world. Never fails.
func (Single) AllReduceSum(buf []float64) error { return nil }

// Shutdown is a no-op; Single holds no resources.
func (Single) Shutdown() {}
