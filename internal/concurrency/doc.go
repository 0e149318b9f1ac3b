// File: internal/concurrency/doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Concurrency primitives for hioload-pool: the mutex type shared by the
// worker table and the task queue, the single wake signal coordinating the
// manager with producers and workers, and cross-platform OS-thread pinning.
package concurrency
