//go:build !linux
// +build !linux

// File: internal/concurrency/pin_stub.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package concurrency

import (
	"runtime"

	"github.com/momentics/hioload-pool/api"
)

// PinCurrentThread locks the calling goroutine to its OS thread. Core
// binding is unsupported on this platform; callers treat the error as
// best-effort advice.
func PinCurrentThread(numaNode, cpuID int) error {
	runtime.LockOSThread()
	if numaNode < 0 && cpuID < 0 {
		return nil
	}
	return api.ErrAffinityNotSupported
}
