// SPDX-License-Identifier: MIT
// Package comm — Abort: the coordinated SPMD failure protocol.
//
// There is no local recovery in a lock-step program: a failure on one rank is
// a failure of the whole computation. The protocol mirrors that: every rank
// independently observes the same error, the leader prints the diagnostic,
// all ranks synchronize so nobody is left waiting on a dead peer, then the
// world shuts down and every rank exits with the same nonzero status.

package comm

import (
	"fmt"
	"os"
)

// exitFn indirects os.Exit so the protocol is testable; see
// export_privates_for_test.go.
var exitFn = os.Exit

// stderr indirects the diagnostic sink for the same reason.
var stderr = os.Stderr

// Abort terminates the whole distributed program after err.
// Every rank must call Abort with the same code (uniform error observation
// is a collective precondition, like any other collective). The leader
// prints the diagnostic; all ranks barrier, shut down, and exit(code).
// A zero code is normalized to 1 so a failed program never exits clean.
func Abort(c Communicator, err error, code int) {
	if code == 0 {
		code = 1
	}
	if c.IsLeader() {
		fmt.Fprintf(stderr, "\nError!\n%v\n\n", err)
	}
	c.Barrier()
	c.Shutdown()
	exitFn(code)
}
