//go:build !deadlock
// +build !deadlock

// File: internal/concurrency/mutex.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package concurrency

import "sync"

// Mutex is the lock type used for the worker table and the task queue.
// The default build uses sync.Mutex; building with -tags deadlock swaps in
// a detection-enabled drop-in (mutex_deadlock.go) to verify the strict
// table-before-queue acquisition order under load.
type Mutex = sync.Mutex
