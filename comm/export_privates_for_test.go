// SPDX-License-Identifier: MIT

package comm

// Test-Bridge (White-Box) for the Abort protocol.
//
// Purpose:
//   - Let comm_test observe the exit code and diagnostic sink of Abort
//     without actually terminating the test binary.
//
// Risks & Maintenance:
//   - Restore the originals in the test's cleanup; the bridge mutates
//     package state, so tests using it must not run in parallel.

import "os"

// SwapExit_TestOnly replaces the exit hook and returns a restore func.
func SwapExit_TestOnly(fn func(int)) (restore func()) {
	prev := exitFn
	exitFn = fn
	return func() { exitFn = prev }
}

// SwapStderr_TestOnly replaces the diagnostic sink and returns a restore func.
func SwapStderr_TestOnly(w *os.File) (restore func()) {
	prev := stderr
	stderr = w
	return func() { stderr = prev }
}
