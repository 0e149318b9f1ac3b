// File: internal/concurrency/signal.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Signal is the one wake primitive shared by the manager's two wait phases:
// idle-worker availability (under the table mutex) and queue non-emptiness
// (under the queue mutex). sync.Cond binds to exactly one Locker, so the
// cross-lock wait is expressed as a one-token channel instead: Notify is a
// coalescing non-blocking send, Wait releases the caller's lock around a
// blocking receive. A token carries no meaning by itself; every wait site
// must re-check its predicate in a loop, which makes stale and
// cross-condition wakes degrade to a harmless re-check.

package concurrency

import "sync"

// Signal wakes a single blocked coordinator when either of two independent
// conditions may have become true.
type Signal struct {
	ch chan struct{}
}

// NewSignal returns a signal with one buffered wake token.
func NewSignal() *Signal {
	return &Signal{ch: make(chan struct{}, 1)}
}

// Notify deposits a wake token unless one is already pending. Never blocks.
func (s *Signal) Notify() {
	select {
	case s.ch <- struct{}{}:
	default:
	}
}

// Wait releases l, blocks until a token arrives, then reacquires l before
// returning. The caller re-checks its predicate after every return.
func (s *Signal) Wait(l sync.Locker) {
	l.Unlock()
	<-s.ch
	l.Lock()
}
