// File: api/task.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package api

// Task is the unit of work submitted to a pool: a work function paired with
// a completion callback. Both are optional; a worker skips nil fields.
// The pool treats tasks as opaque and never inspects either function.
type Task struct {
	// Work is the payload executed on a worker thread.
	Work func()

	// Done runs on the same worker thread immediately after Work returns.
	Done func()
}
