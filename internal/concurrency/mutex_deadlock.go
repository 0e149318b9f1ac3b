//go:build deadlock
// +build deadlock

// File: internal/concurrency/mutex_deadlock.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Deadlock-detecting mutex variant. The pool's protocol relies on the two
// locks never being held together except table-before-queue inside one
// manager iteration; this build surfaces any violation with a stack dump.

package concurrency

import "github.com/sasha-s/go-deadlock"

// Mutex is a drop-in sync.Mutex replacement with lock-order tracking.
type Mutex = deadlock.Mutex
