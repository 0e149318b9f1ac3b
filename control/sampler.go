// File: control/sampler.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package control

import (
	"sync/atomic"
	"time"
)

// PoolStats is the read-only counter surface a sampler observes. The pool
// facade satisfies it.
type PoolStats interface {
	Workers() int
	IdleWorkers() int
	Pending() int
	MaxWorkers() int
}

// Snapshot is one observation of a pool's counters.
type Snapshot struct {
	Workers     int
	IdleWorkers int
	Pending     int
	MaxWorkers  int
}

// Capture reads all four counters. The reads are individually lock-free and
// only eventually consistent with concurrent dispatch.
func Capture(p PoolStats) Snapshot {
	return Snapshot{
		Workers:     p.Workers(),
		IdleWorkers: p.IdleWorkers(),
		Pending:     p.Pending(),
		MaxWorkers:  p.MaxWorkers(),
	}
}

// RegisterPoolProbes wires a pool snapshot probe into a probe registry.
func RegisterPoolProbes(dp *DebugProbes, p PoolStats) {
	dp.RegisterProbe("pool.state", func() any {
		return Capture(p)
	})
}

// Sampler periodically copies a pool's counters into a metrics registry.
type Sampler struct {
	registry *MetricsRegistry
	pool     PoolStats
	interval time.Duration
	stopCh   chan struct{}
	running  int32
}

// NewSampler builds a stopped sampler; Run starts it.
func NewSampler(p PoolStats, reg *MetricsRegistry, interval time.Duration) *Sampler {
	if interval <= 0 {
		interval = time.Second
	}
	return &Sampler{
		registry: reg,
		pool:     p,
		interval: interval,
		stopCh:   make(chan struct{}),
	}
}

// Sample takes one observation and publishes it.
func (s *Sampler) Sample() {
	snap := Capture(s.pool)
	s.registry.Set("pool.workers", snap.Workers)
	s.registry.Set("pool.idle_workers", snap.IdleWorkers)
	s.registry.Set("pool.pending_tasks", snap.Pending)
	s.registry.Set("pool.max_workers", snap.MaxWorkers)
}

// Run samples on the configured interval until Stop. Repeated Run calls are
// ignored.
func (s *Sampler) Run() {
	if !atomic.CompareAndSwapInt32(&s.running, 0, 1) {
		return
	}
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	s.Sample()
	for {
		select {
		case <-ticker.C:
			s.Sample()
		case <-s.stopCh:
			return
		}
	}
}

// Stop terminates a running sampler. Safe to call once.
func (s *Sampler) Stop() {
	close(s.stopCh)
}
