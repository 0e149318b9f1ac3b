// File: api/worker.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Worker capability contract consumed by the pool manager. One concrete
// variant per thread primitive; the manager depends on nothing beyond this
// four-operation set plus the completion report.

package api

// WorkerID identifies a worker within one pool.
type WorkerID uint64

// CompletionFunc is invoked by a worker on every idleness transition it
// reports. idle is true when the worker has just finished a task and holds
// no assignment.
type CompletionFunc func(idle bool, id WorkerID)

// Worker is one thread of execution running at most one task at a time.
// It sleeps between assignments; the manager drives it exclusively through
// Configure/Start and never assumes Configure succeeds.
type Worker interface {
	// ID returns the worker's pool-local identity.
	ID() WorkerID

	// Idle reports whether the worker is executing nothing and holds no
	// assigned task.
	Idle() bool

	// Configure atomically attempts to assign task. It returns false when
	// the worker is not in an assignable state, for example when it raced
	// with its own execution-start transition.
	Configure(task Task) bool

	// Start wakes a worker that has a configured task. Returns false if no
	// task is configured.
	Start() bool

	// Destroy asks the worker to finish any in-flight task and terminate.
	// Safe to call once per worker; it never blocks the caller on the
	// worker's exit.
	Destroy()
}
