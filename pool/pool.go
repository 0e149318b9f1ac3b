// File: pool/pool.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Pool facade: construction, growth-only resize, submission, lock-free
// counters, fire-and-forget shutdown. The facade never executes tasks on
// the caller's thread.

package pool

import (
	"sync/atomic"

	"github.com/momentics/hioload-pool/api"
	"github.com/momentics/hioload-pool/internal/concurrency"
	"github.com/momentics/hioload-pool/queue"
)

// Pool is the public handle over one shared state record.
type Pool struct {
	st *state
}

// Ensure compile-time compliance.
var _ api.Pool = (*Pool)(nil)

// Concurrency returns the number of hardware threads usable as a maxThreads
// hint.
func Concurrency() int {
	return concurrency.Concurrency()
}

// New builds a pool with threads initial workers bounded by maxThreads and
// starts the manager. Construction never fails: maxThreads below 1 is
// clamped to 1, threads is clamped into [0, maxThreads].
func New(threads, maxThreads int) *Pool {
	return NewOnNode(threads, maxThreads, -1)
}

// NewOnNode is New with best-effort worker placement on a NUMA node;
// numaNode -1 leaves placement to the scheduler.
func NewOnNode(threads, maxThreads, numaNode int) *Pool {
	if maxThreads < 1 {
		maxThreads = 1
	}
	if threads > maxThreads {
		threads = maxThreads
	}
	if threads < 0 {
		threads = 0
	}

	st := &state{
		tasks:    queue.New(),
		signal:   concurrency.NewSignal(),
		numaNode: numaNode,
		done:     make(chan struct{}),
	}
	atomic.StoreInt64(&st.maxWorkers, int64(maxThreads))

	// Workers fetch nothing themselves; they report idleness and the
	// manager wakes on the zero-to-one transition.
	st.complete = func(idle bool, _ api.WorkerID) {
		if idle && atomic.AddInt64(&st.idle, 1) == 1 {
			st.signal.Notify()
		}
	}

	st.workers = make([]api.Worker, 0, threads)
	for i := 0; i < threads; i++ {
		st.workers = append(st.workers, st.newWorker())
	}
	atomic.StoreInt64(&st.count, int64(len(st.workers)))
	atomic.StoreInt64(&st.idle, int64(len(st.workers)))

	go manage(st)
	return &Pool{st: st}
}

// SetWorkers grows the worker table to n threads. Shrinking is not
// implemented: n at or below the current count returns false and mutates
// nothing. Requests beyond MaxWorkers also return false.
func (p *Pool) SetWorkers(n int) bool {
	st := p.st
	if int64(n) > atomic.LoadInt64(&st.maxWorkers) {
		return false
	}
	st.tableMu.Lock()
	grow := n - len(st.workers)
	if grow <= 0 {
		st.tableMu.Unlock()
		return false
	}
	for i := 0; i < grow; i++ {
		st.workers = append(st.workers, st.newWorker())
	}
	atomic.StoreInt64(&st.count, int64(len(st.workers)))
	st.tableMu.Unlock()

	// Wake the manager only when there were no idle workers before the
	// growth.
	if atomic.AddInt64(&st.idle, int64(grow)) == int64(grow) {
		st.signal.Notify()
	}
	return true
}

// Submit enqueues one task built from a work function and a completion
// callback. Never blocks on the manager; only momentarily on the queue lock.
func (p *Pool) Submit(work, done func()) {
	p.SubmitTask(api.Task{Work: work, Done: done})
}

// SubmitTask enqueues one task, waking the manager iff the queue was empty
// before the push.
func (p *Pool) SubmitTask(t api.Task) {
	st := p.st
	if st.tasks.Push(t) == 1 {
		st.signal.Notify()
	}
}

// SubmitBatch enqueues tasks in order as one push, waking the manager iff
// the queue was empty before the whole batch.
func (p *Pool) SubmitBatch(ts []api.Task) {
	if len(ts) == 0 {
		return
	}
	st := p.st
	if st.tasks.PushBatch(ts) == len(ts) {
		st.signal.Notify()
	}
}

// Workers returns the current worker-table length.
func (p *Pool) Workers() int {
	return int(atomic.LoadInt64(&p.st.count))
}

// IdleWorkers returns the number of workers not executing a task.
func (p *Pool) IdleWorkers() int {
	return int(p.st.idleWorkers())
}

// Pending returns the number of queued, undispatched tasks.
func (p *Pool) Pending() int {
	return p.st.tasks.Len()
}

// MaxWorkers returns the configured worker-table bound.
func (p *Pool) MaxWorkers() int {
	return int(atomic.LoadInt64(&p.st.maxWorkers))
}

// Shutdown marks the pool closed and wakes a blocked manager once. It is
// fire-and-forget: the manager is never joined, in-flight tasks finish on
// their workers, queued tasks stay queued. Calling it again is a no-op.
// Callers wanting drain semantics select on Done separately.
func (p *Pool) Shutdown() error {
	st := p.st
	if !atomic.CompareAndSwapInt32(&st.closed, 0, 1) {
		return nil
	}
	st.signal.Notify()
	return nil
}

// Done is closed once the manager has exited and issued Destroy to every
// worker. It does not wait for the worker threads themselves.
func (p *Pool) Done() <-chan struct{} {
	return p.st.done
}
