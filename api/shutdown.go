// File: api/shutdown.go
// Package api defines unified graceful shutdown contract.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package api

// GracefulShutdown unifies the stop logic of pool components. Shutdown is
// fire-and-forget: it stops the acceptance of new dispatch without waiting
// for drain, and calling it again is a no-op.
type GracefulShutdown interface {
	Shutdown() error
}
