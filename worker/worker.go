// File: worker/worker.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Worker is one dedicated OS thread executing at most one task at a time.
// It sleeps on its own wake token between assignments and reports every
// idleness transition through the pool's completion callback. The state
// machine is CAS-driven so the manager's Configure can lose the race with
// the worker's own execution-start transition and observe false.

package worker

import (
	"sync/atomic"

	"github.com/momentics/hioload-pool/api"
	"github.com/momentics/hioload-pool/internal/concurrency"
)

// Worker states. closed is terminal.
const (
	stateIdle int32 = iota
	stateArmed
	stateRunning
	stateClosed
)

// Worker implements api.Worker on a locked OS thread.
type Worker struct {
	id        api.WorkerID
	state     int32
	destroyed int32
	task      api.Task
	wake      chan struct{}
	complete  api.CompletionFunc
	numaNode  int
}

// Ensure compile-time compliance.
var _ api.Worker = (*Worker)(nil)

// New starts an unpinned worker thread.
func New(id api.WorkerID, complete api.CompletionFunc) *Worker {
	return NewOnNode(id, complete, -1)
}

// NewOnNode starts a worker thread with best-effort placement on the given
// NUMA node; -1 leaves placement to the scheduler.
func NewOnNode(id api.WorkerID, complete api.CompletionFunc, numaNode int) *Worker {
	w := &Worker{
		id:       id,
		wake:     make(chan struct{}, 1),
		complete: complete,
		numaNode: numaNode,
	}
	go w.run()
	return w
}

// ID returns the worker's pool-local identity.
func (w *Worker) ID() api.WorkerID {
	return w.id
}

// Idle reports whether the worker holds no assignment and runs nothing.
func (w *Worker) Idle() bool {
	return atomic.LoadInt32(&w.state) == stateIdle
}

// Configure attempts to assign task. The task field is published to the
// worker thread by the wake-token send in Start.
func (w *Worker) Configure(task api.Task) bool {
	if atomic.LoadInt32(&w.destroyed) == 1 {
		return false
	}
	if !atomic.CompareAndSwapInt32(&w.state, stateIdle, stateArmed) {
		return false
	}
	w.task = task
	return true
}

// Start wakes an armed worker so it begins executing its configured task.
func (w *Worker) Start() bool {
	if atomic.LoadInt32(&w.state) != stateArmed {
		return false
	}
	w.notify()
	return true
}

// Destroy requests termination after any in-flight task finishes. Repeated
// calls are ignored. Destroy never waits for the thread to exit.
func (w *Worker) Destroy() {
	if !atomic.CompareAndSwapInt32(&w.destroyed, 0, 1) {
		return
	}
	w.notify()
}

func (w *Worker) notify() {
	select {
	case w.wake <- struct{}{}:
	default:
	}
}

// run is the thread body: lock the OS thread, optionally pin it, then sleep
// until armed or destroyed.
func (w *Worker) run() {
	// Pinning is advisory; on unsupported platforms the thread stays locked
	// but unbound.
	_ = concurrency.PinCurrentThread(w.numaNode, -1)
	for {
		<-w.wake
		if atomic.LoadInt32(&w.destroyed) == 1 {
			atomic.StoreInt32(&w.state, stateClosed)
			return
		}
		if !atomic.CompareAndSwapInt32(&w.state, stateArmed, stateRunning) {
			// Stale token without an assignment.
			continue
		}
		t := w.task
		w.task = api.Task{}
		w.execute(t)
		atomic.StoreInt32(&w.state, stateIdle)
		if w.complete != nil {
			w.complete(true, w.id)
		}
	}
}

// execute runs the task, swallowing panics so a faulting work function
// cannot take the thread down.
func (w *Worker) execute(t api.Task) {
	defer func() {
		if r := recover(); r != nil {
			// Task faults are the submitter's concern.
		}
	}()
	if t.Work != nil {
		t.Work()
	}
	if t.Done != nil {
		t.Done()
	}
}
