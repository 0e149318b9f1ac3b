// File: worker/worker_test.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package worker

import (
	"testing"
	"time"

	"github.com/momentics/hioload-pool/api"
)

func waitIdle(t *testing.T, ch <-chan api.WorkerID) api.WorkerID {
	t.Helper()
	select {
	case id := <-ch:
		return id
	case <-time.After(2 * time.Second):
		t.Fatal("worker never reported idle")
		return 0
	}
}

func TestLifecycle(t *testing.T) {
	idle := make(chan api.WorkerID, 4)
	w := New(7, func(free bool, id api.WorkerID) {
		if free {
			idle <- id
		}
	})
	defer w.Destroy()

	if w.ID() != 7 {
		t.Fatalf("ID = %d, want 7", w.ID())
	}
	if !w.Idle() {
		t.Fatal("fresh worker must be idle")
	}

	ran := make(chan struct{})
	if !w.Configure(api.Task{Work: func() { close(ran) }}) {
		t.Fatal("Configure on idle worker failed")
	}
	if w.Idle() {
		t.Fatal("armed worker must not report idle")
	}
	if !w.Start() {
		t.Fatal("Start on armed worker failed")
	}

	select {
	case <-ran:
	case <-time.After(2 * time.Second):
		t.Fatal("task never ran")
	}
	if id := waitIdle(t, idle); id != 7 {
		t.Fatalf("completion reported id %d, want 7", id)
	}
	if !w.Idle() {
		t.Fatal("worker must be idle after completion report")
	}
}

func TestConfigureRace(t *testing.T) {
	w := New(1, nil)
	defer w.Destroy()

	if !w.Configure(api.Task{}) {
		t.Fatal("first Configure failed")
	}
	if w.Configure(api.Task{}) {
		t.Fatal("Configure on an armed worker must fail")
	}
}

func TestStartWithoutConfigure(t *testing.T) {
	w := New(1, nil)
	defer w.Destroy()

	if w.Start() {
		t.Fatal("Start without a configured task must fail")
	}
}

func TestDoneRunsAfterWork(t *testing.T) {
	idle := make(chan api.WorkerID, 1)
	w := New(1, func(free bool, id api.WorkerID) {
		if free {
			idle <- id
		}
	})
	defer w.Destroy()

	var order []string
	w.Configure(api.Task{
		Work: func() { order = append(order, "work") },
		Done: func() { order = append(order, "done") },
	})
	w.Start()
	waitIdle(t, idle)

	if len(order) != 2 || order[0] != "work" || order[1] != "done" {
		t.Fatalf("execution order = %v", order)
	}
}

func TestPanicDoesNotKillThread(t *testing.T) {
	idle := make(chan api.WorkerID, 2)
	w := New(1, func(free bool, id api.WorkerID) {
		if free {
			idle <- id
		}
	})
	defer w.Destroy()

	w.Configure(api.Task{Work: func() { panic("task fault") }})
	w.Start()
	waitIdle(t, idle)

	// The thread must survive and accept the next assignment.
	ran := make(chan struct{})
	if !w.Configure(api.Task{Work: func() { close(ran) }}) {
		t.Fatal("Configure after panic failed")
	}
	w.Start()
	select {
	case <-ran:
	case <-time.After(2 * time.Second):
		t.Fatal("worker dead after task panic")
	}
	waitIdle(t, idle)
}

func TestDestroyRejectsConfigure(t *testing.T) {
	w := New(1, nil)
	w.Destroy()
	w.Destroy() // repeated call is ignored

	if w.Configure(api.Task{}) {
		t.Fatal("Configure succeeded on a destroyed worker")
	}
}

func TestNilTaskFields(t *testing.T) {
	idle := make(chan api.WorkerID, 1)
	w := New(1, func(free bool, id api.WorkerID) {
		if free {
			idle <- id
		}
	})
	defer w.Destroy()

	w.Configure(api.Task{})
	w.Start()
	waitIdle(t, idle)
}
