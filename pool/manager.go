// File: pool/manager.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// The manager loop. It blocks in exactly two places: waiting for an idle
// worker under the table mutex, and waiting for a queued task under the
// queue mutex. Both waits share one signal and re-check their predicate
// after every wake, so a stale or cross-condition token re-blocks cleanly.
// Wakes come only from submission (queue empty to non-empty), growth (idle
// zero to n), worker completion (idle zero to one), and shutdown.

package pool

import "sync/atomic"

// manage runs on a dedicated goroutine for the life of the pool.
func manage(st *state) {
	defer close(st.done)
	qmu := st.tasks.Mutex()

	for !st.isClosed() {
		st.tableMu.Lock()
		for st.idleWorkers() == 0 && !st.isClosed() {
			st.signal.Wait(&st.tableMu)
		}
		if st.isClosed() {
			st.tableMu.Unlock()
			break
		}

		// Scan the table in order; first idle worker wins. Not a fairness
		// policy.
		for i := 0; i < len(st.workers) && st.idleWorkers() > 0 && !st.isClosed(); i++ {
			w := st.workers[i]
			if !w.Idle() {
				continue
			}
			qmu.Lock()
			for st.tasks.Empty() {
				st.signal.Wait(qmu)
				if st.isClosed() {
					// The only teardown entry reachable while
					// queue-blocked.
					qmu.Unlock()
					st.tableMu.Unlock()
					st.teardown()
					return
				}
			}
			// A worker that raced its own start transition rejects the
			// assignment; leave the queue untouched and move on. After a
			// successful Configure the worker is armed and only Start can
			// release it, so the idle decrement lands before the worker
			// can complete and re-increment.
			if t, ok := st.tasks.PeekFront(); ok && w.Configure(t) {
				st.tasks.PopFront()
				atomic.AddInt64(&st.idle, -1)
				w.Start()
			}
			qmu.Unlock()
		}
		st.tableMu.Unlock()
	}
	st.teardown()
}
