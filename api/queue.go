// File: api/queue.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package api

import "sync"

// TaskQueue is a thread-safe FIFO of tasks. It exposes its guarding lock so
// the manager can compose multi-step critical sections with it: lock, check
// emptiness, conditionally wait, peek, pop — all under one acquisition.
//
// Push, PushBatch and Len synchronize internally. PeekFront, PopFront and
// Empty do not: the caller must hold Mutex() across them.
type TaskQueue interface {
	// Push appends one task and returns the resulting length, so a caller
	// can detect the empty-to-non-empty transition its own push caused.
	Push(t Task) int

	// PushBatch appends tasks in order as one critical section and returns
	// the resulting length.
	PushBatch(ts []Task) int

	// PopFront removes and returns the front task. Caller holds Mutex().
	PopFront() (Task, bool)

	// PeekFront returns the front task without removing it.
	// Caller holds Mutex().
	PeekFront() (Task, bool)

	// Empty reports whether the queue holds no tasks. Caller holds Mutex().
	Empty() bool

	// Len returns the current number of queued tasks without locking.
	Len() int

	// Mutex returns the lock guarding the queue's contents.
	Mutex() sync.Locker
}
