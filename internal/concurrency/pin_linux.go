//go:build linux
// +build linux

// File: internal/concurrency/pin_linux.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Pure-Go Linux pinning via sched_setaffinity. No cgo/libnuma dependency;
// NUMA placement degrades to a CPU choice derived from the node index.

package concurrency

import (
	"runtime"

	"golang.org/x/sys/unix"
)

// PinCurrentThread locks the calling goroutine to its OS thread and, when
// cpuID is non-negative, binds that thread to the given CPU core. A negative
// cpuID with a non-negative numaNode picks the node's first core as a
// best-effort placement.
func PinCurrentThread(numaNode, cpuID int) error {
	runtime.LockOSThread()
	if cpuID < 0 {
		if numaNode < 0 {
			return nil
		}
		cpuID = preferredCPUID(numaNode)
	}
	var set unix.CPUSet
	set.Zero()
	set.Set(cpuID)
	return unix.SchedSetaffinity(0, &set)
}

// preferredCPUID maps a NUMA node index to a CPU core without consulting
// libnuma. Nodes beyond the core count wrap around.
func preferredCPUID(numaNode int) int {
	n := runtime.NumCPU()
	if n <= 0 {
		return 0
	}
	return numaNode % n
}
