// Package engine orchestrates the lifecycle of a partitioned graph for
// hybrid CPU/accelerator processing: it validates the platform/resource
// configuration, drives partition assignment and set construction, attaches
// algorithm-specific per-partition state through caller-supplied callbacks,
// and keeps the phase timing record.
//
// Lifecycle:
//
//	attr := engine.DefaultAttr()
//	attr.Accelerators = 2
//	e, err := engine.New(g, attr)
//	// ... queries, algorithm driver ...
//	e.Close()
//
// One Engine may be live per process at a time (New fails with
// ErrEngineActive otherwise); the caller serializes New/Close against
// queries on a single controlling goroutine. Queries on a closed or
// never-initialized Engine return zero/nil sentinels, never panic.
//
// The compute kernels, the accelerator memory backend, and the message
// transport between partitions are external collaborators: the engine hands
// them partitions, placement modes, and message widths, and guarantees that
// every remote-encoded edge in the set decodes to a partition and local
// vertex that existed at publish time.
package engine
