// File: control/doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Package control provides runtime introspection over a pool: a thread-safe
// metrics registry, named debug probes, and a sampler that feeds pool
// counters into both. Nothing here participates in dispatch; everything
// reads the facade's lock-free accessors.
package control
