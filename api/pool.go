// File: api/pool.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package api

// Pool is the facade embedding applications call. The pool never executes
// tasks on the caller's thread; all dispatch decisions belong to the manager.
//
// The count accessors are lock-free reads with no guarantee beyond eventual
// consistency against concurrent mutators.
type Pool interface {
	// SetWorkers grows the worker table to n threads. It returns false for
	// shrink requests (n at or below the current count) and for requests
	// exceeding MaxWorkers.
	SetWorkers(n int) bool

	// Submit enqueues one task built from a work function and a completion
	// callback. There is no backpressure; the queue grows without bound.
	Submit(work, done func())

	// SubmitTask enqueues one task.
	SubmitTask(t Task)

	// SubmitBatch enqueues tasks in order as a single push.
	SubmitBatch(ts []Task)

	// Workers returns the current worker-table length.
	Workers() int

	// IdleWorkers returns the number of workers not executing a task.
	IdleWorkers() int

	// Pending returns the number of queued, undispatched tasks.
	Pending() int

	// MaxWorkers returns the configured upper bound on the worker table.
	MaxWorkers() int

	GracefulShutdown
}
