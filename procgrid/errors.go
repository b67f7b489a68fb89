// SPDX-License-Identifier: MIT
// Package procgrid: sentinel error set.

package procgrid

import "errors"

var (
	// ErrConfiguration is returned when a process grid cannot be built from
	// the available ranks: more grid slots than ranks, a negative hint, or an
	// implicit square request over a non-square process count.
	ErrConfiguration = errors.New("procgrid: invalid process-grid configuration")

	// ErrNilComm is returned when Build receives a nil communicator.
	ErrNilComm = errors.New("procgrid: communicator is nil")
)
