// File: api/doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Package api defines the public contracts of hioload-pool: the pool facade,
// the worker-thread capability set, the task queue, and the task unit itself.
// The package holds types only; concrete implementations live in the pool,
// worker and queue packages.
package api
