// File: pool/doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Package pool implements the bounded-growth worker-thread pool. A single
// manager goroutine owns every dispatch decision: it matches idle workers
// against the shared task FIFO, blocking on one signal primitive under two
// distinct mutexes — the worker-table mutex for the idle wait, the queue's
// own mutex for the task wait. The two locks are never held together by any
// actor except the manager inside one iteration, always table before queue;
// producers only ever touch the queue lock.
package pool
