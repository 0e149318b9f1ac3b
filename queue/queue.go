// File: queue/queue.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// LockedQueue is the shared task FIFO consumed by the pool manager and fed
// by producers. Storage is eapache/queue's ring-backed deque; the guarding
// mutex is exported so the manager can compose lock, check-empty,
// conditionally-wait, peek, pop as one critical section.

package queue

import (
	"sync"
	"sync/atomic"

	eq "github.com/eapache/queue"

	"github.com/momentics/hioload-pool/api"
	"github.com/momentics/hioload-pool/internal/concurrency"
)

// LockedQueue implements api.TaskQueue.
//
// Push, PushBatch and Len synchronize internally. PeekFront, PopFront and
// Empty assume the caller holds Mutex(); they are the composable half of the
// contract.
type LockedQueue struct {
	mu     concurrency.Mutex
	items  *eq.Queue
	length int64
}

// Ensure compile-time compliance.
var _ api.TaskQueue = (*LockedQueue)(nil)

// New returns an empty queue.
func New() *LockedQueue {
	return &LockedQueue{items: eq.New()}
}

// Push appends one task and returns the resulting length.
func (q *LockedQueue) Push(t api.Task) int {
	q.mu.Lock()
	q.items.Add(t)
	n := atomic.AddInt64(&q.length, 1)
	q.mu.Unlock()
	return int(n)
}

// PushBatch appends tasks in order under a single lock acquisition and
// returns the resulting length.
func (q *LockedQueue) PushBatch(ts []api.Task) int {
	if len(ts) == 0 {
		return q.Len()
	}
	q.mu.Lock()
	for _, t := range ts {
		q.items.Add(t)
	}
	n := atomic.AddInt64(&q.length, int64(len(ts)))
	q.mu.Unlock()
	return int(n)
}

// PopFront removes and returns the front task. Caller holds Mutex().
func (q *LockedQueue) PopFront() (api.Task, bool) {
	if q.items.Length() == 0 {
		return api.Task{}, false
	}
	t := q.items.Remove().(api.Task)
	atomic.AddInt64(&q.length, -1)
	return t, true
}

// PeekFront returns the front task without removing it. Caller holds Mutex().
func (q *LockedQueue) PeekFront() (api.Task, bool) {
	if q.items.Length() == 0 {
		return api.Task{}, false
	}
	return q.items.Peek().(api.Task), true
}

// Empty reports whether the queue holds no tasks. Caller holds Mutex().
func (q *LockedQueue) Empty() bool {
	return q.items.Length() == 0
}

// Len returns the queued-task count from an atomic counter, usable without
// the lock.
func (q *LockedQueue) Len() int {
	return int(atomic.LoadInt64(&q.length))
}

// Mutex returns the lock guarding the queue contents.
func (q *LockedQueue) Mutex() sync.Locker {
	return &q.mu
}
