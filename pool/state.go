// File: pool/state.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package pool

import (
	"sync/atomic"

	"github.com/momentics/hioload-pool/api"
	"github.com/momentics/hioload-pool/internal/concurrency"
	"github.com/momentics/hioload-pool/worker"
)

// state is the shared pool record. One instance per pool, referenced by the
// facade, the manager goroutine, and every worker's completion callback.
// It stays reachable after shutdown only through outstanding callback
// captures.
type state struct {
	// tableMu guards workers and the manager's decision to wait for an
	// idle worker.
	tableMu concurrency.Mutex

	// workers is append-only: growth adds entries, nothing removes them.
	workers []api.Worker

	// tasks is shared with producers; the manager is the sole consumer.
	tasks api.TaskQueue

	// signal is the single wake primitive for both manager wait phases.
	signal *concurrency.Signal

	// complete is handed to every worker; it bumps idle and wakes the
	// manager on the zero-to-one transition.
	complete api.CompletionFunc

	idle       int64 // workers not executing a task; 0 <= idle <= count
	count      int64 // worker-table length mirror for lock-free reads
	maxWorkers int64 // table length bound; always >= 1
	closed     int32 // terminal once set
	nextID     uint64
	numaNode   int

	// done closes when the manager has finished tearing down the workers.
	done chan struct{}
}

func (st *state) isClosed() bool {
	return atomic.LoadInt32(&st.closed) == 1
}

func (st *state) idleWorkers() int64 {
	return atomic.LoadInt64(&st.idle)
}

// newWorker appends nothing; it only constructs. Callers own table
// membership and the idle accounting.
func (st *state) newWorker() api.Worker {
	id := api.WorkerID(atomic.AddUint64(&st.nextID, 1))
	return worker.NewOnNode(id, st.complete, st.numaNode)
}

// teardown destroys every worker in table order. Runs on the manager
// goroutine with neither lock held.
func (st *state) teardown() {
	st.tableMu.Lock()
	workers := make([]api.Worker, len(st.workers))
	copy(workers, st.workers)
	st.tableMu.Unlock()
	for _, w := range workers {
		w.Destroy()
	}
}
