// File: internal/concurrency/pin.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Platform-generic declaration for the OS-thread pinning dispatcher. The
// per-platform variants are selected via build tags; every variant locks
// the calling goroutine to its OS thread first.

package concurrency

import "runtime"

// Concurrency returns the number of hardware threads available to the
// process.
func Concurrency() int {
	return runtime.NumCPU()
}
