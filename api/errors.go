// Package api
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Common error values shared by pool components and collaborator
// implementations.

package api

import "errors"

var (
	// ErrPoolClosed indicates an operation against a pool whose shutdown
	// has already been observed.
	ErrPoolClosed = errors.New("pool is closed")

	// ErrAffinityNotSupported indicates CPU pinning is unavailable on this
	// platform; workers fall back to an unpinned OS thread.
	ErrAffinityNotSupported = errors.New("CPU affinity not supported")
)
