// File: control/control_test.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package control

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/momentics/hioload-pool/pool"
)

// fakePool is a static PoolStats for sampler tests.
type fakePool struct {
	workers, idle, pending, max int
}

func (f *fakePool) Workers() int     { return f.workers }
func (f *fakePool) IdleWorkers() int { return f.idle }
func (f *fakePool) Pending() int     { return f.pending }
func (f *fakePool) MaxWorkers() int  { return f.max }

func TestRegistrySnapshotIsolation(t *testing.T) {
	reg := NewMetricsRegistry()
	reg.Set("k", 1)

	snap := reg.GetSnapshot()
	snap["k"] = 99
	snap["extra"] = true

	fresh := reg.GetSnapshot()
	assert.Equal(t, 1, fresh["k"], "snapshot mutation must not leak back")
	assert.NotContains(t, fresh, "extra")
	assert.False(t, reg.Updated().IsZero())
}

func TestProbesDump(t *testing.T) {
	dp := NewDebugProbes()
	p := &fakePool{workers: 4, idle: 1, pending: 7, max: 8}
	RegisterPoolProbes(dp, p)

	state := dp.DumpState()
	require.Contains(t, state, "pool.state")
	snap, ok := state["pool.state"].(Snapshot)
	require.True(t, ok)
	assert.Equal(t, 4, snap.Workers)
	assert.Equal(t, 1, snap.IdleWorkers)
	assert.Equal(t, 7, snap.Pending)
	assert.Equal(t, 8, snap.MaxWorkers)
}

func TestSamplerPublishesCounters(t *testing.T) {
	reg := NewMetricsRegistry()
	p := &fakePool{workers: 2, idle: 2, pending: 0, max: 4}
	s := NewSampler(p, reg, time.Millisecond)

	s.Sample()
	m := reg.GetSnapshot()
	assert.Equal(t, 2, m["pool.workers"])
	assert.Equal(t, 2, m["pool.idle_workers"])
	assert.Equal(t, 0, m["pool.pending_tasks"])
	assert.Equal(t, 4, m["pool.max_workers"])
}

func TestSamplerObservesRealPool(t *testing.T) {
	p := pool.New(2, 4)
	defer p.Shutdown()

	reg := NewMetricsRegistry()
	s := NewSampler(p, reg, time.Millisecond)
	s.Sample()

	m := reg.GetSnapshot()
	assert.Equal(t, 2, m["pool.workers"])
	assert.Equal(t, 4, m["pool.max_workers"])
}

func TestSamplerRunStop(t *testing.T) {
	reg := NewMetricsRegistry()
	p := &fakePool{workers: 1, idle: 1, max: 1}
	s := NewSampler(p, reg, time.Millisecond)

	done := make(chan struct{})
	go func() {
		s.Run()
		close(done)
	}()

	require.Eventually(t, func() bool {
		_, ok := reg.GetSnapshot()["pool.workers"]
		return ok
	}, 2*time.Second, time.Millisecond)

	s.Stop()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("sampler did not stop")
	}
}
