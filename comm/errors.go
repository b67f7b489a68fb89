// SPDX-License-Identifier: MIT
// Package comm: sentinel error set.
// All errors are prefixed "comm: ..." for grep-ability. Call sites wrap with
// fmt.Errorf("Op: %w", ErrX) when context is essential; callers match with
// errors.Is either way.

package comm

import "errors"

var (
	// ErrCollectiveShape is returned by AllReduceSum when the participating
	// ranks supplied buffers of different lengths. A lock-step program never
	// triggers this; it indicates divergent call sequences across ranks.
	ErrCollectiveShape = errors.New("comm: reduce buffers differ in length across ranks")

	// ErrGroupSize is returned by NewGroup when the requested rank count is
	// not positive.
	ErrGroupSize = errors.New("comm: group size must be > 0")
)
