package engine

import (
	"sync/atomic"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/hygraph/graph"
	"github.com/katalvlaran/hygraph/partition"
)

// active guards the single-active-instance lifecycle contract: init and
// finalize are process-wide single-writer operations, so only one Engine may
// be live at a time.
var active int32

// Engine holds the process-wide state of one partitioned graph: the active
// partition set, the attributes it was built with, and the phase timing
// record. Create with New, tear down with Close; the caller serializes
// lifecycle transitions against queries (one controlling goroutine owns
// New/Close).
type Engine struct {
	graph  *graph.Graph
	attr   Attr
	set    *partition.Set
	timing Timing
	closed bool
}

// New initializes the engine state for g: validates the platform/resource
// combination, assigns vertices to partitions under the configured strategy,
// builds the partition set, records the init and partitioning timings, and
// invokes the allocation callback once per partition.
//
// On any failure no engine is left active and the error carries the failing
// stage. A second New before Close fails with ErrEngineActive.
// Complexity: dominated by partitioning, O(V log V + E).
func New(g *graph.Graph, attr Attr) (*Engine, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if err := attr.validate(); err != nil {
		return nil, err
	}
	if !atomic.CompareAndSwapInt32(&active, 0, 1) {
		return nil, ErrEngineActive
	}

	start := time.Now()
	count := attr.partitionCount()

	opts := []partition.Option{
		partition.WithStrategy(attr.Strategy),
		partition.WithSeed(attr.Seed),
	}
	if attr.Platform == PlatformHybrid {
		opts = append(opts, partition.WithCPUShare(attr.CPUShare))
	}
	if attr.RandomizedAccelerators {
		opts = append(opts, partition.WithRandomizedAccelerators())
	}

	parStart := time.Now()
	labels, err := partition.Assign(g, count, opts...)
	if err != nil {
		atomic.StoreInt32(&active, 0)
		return nil, errors.Wrap(err, "engine: assigning vertices to partitions")
	}
	set, err := partition.Build(g, labels, count)
	if err != nil {
		atomic.StoreInt32(&active, 0)
		return nil, errors.Wrap(err, "engine: building partition set")
	}

	e := &Engine{graph: g, attr: attr, set: set}
	e.timing.EnginePartition = time.Since(parStart)

	if attr.Alloc != nil {
		for pid := 0; pid < count; pid++ {
			attr.Alloc(set.Partition(pid))
		}
	}
	e.timing.EngineInit = time.Since(start)

	if attr.Logger != nil {
		bal := partition.Stats(set)
		attr.Logger.WithFields(logrus.Fields{
			"action":          "engine_init",
			"platform":        attr.Platform.String(),
			"strategy":        attr.Strategy.String(),
			"partitions":      count,
			"vertices":        g.VertexCount(),
			"arcs":            g.EdgeCount(),
			"remote_fraction": bal.RemoteFraction,
			"took":            e.timing.EngineInit,
		}).Info("engine initialized")
	}

	return e, nil
}

// Close invokes the free callback once per partition, releases the partition
// set, and clears the active-instance guard. Idempotent; Close on a nil or
// never-initialized Engine is a no-op.
// Complexity: O(P).
func (e *Engine) Close() {
	if e == nil || e.closed || e.set == nil {
		return
	}
	if e.attr.Free != nil {
		for pid := 0; pid < e.set.PartitionCount(); pid++ {
			e.attr.Free(e.set.Partition(pid))
		}
	}
	e.set.Release()
	e.set = nil
	e.closed = true
	atomic.StoreInt32(&active, 0)

	if e.attr.Logger != nil {
		e.attr.Logger.WithFields(logrus.Fields{
			"action": "engine_finalize",
		}).Info("engine finalized")
	}
}

// ready reports whether queries may be served.
func (e *Engine) ready() bool { return e != nil && !e.closed && e.set != nil }

// PartitionCount returns the number of partitions, or 0 before init / after
// Close.
// Complexity: O(1).
func (e *Engine) PartitionCount() int {
	if !e.ready() {
		return 0
	}
	return e.set.PartitionCount()
}

// CPUPartition returns the index of the reserved CPU partition, or -1 on an
// accelerator-only platform or when the engine is not ready.
// Complexity: O(1).
func (e *Engine) CPUPartition() int {
	if !e.ready() || !e.attr.hasCPU() {
		return -1
	}
	return e.set.PartitionCount() - 1
}

// VertexCount returns the local vertex count of partition pid, or 0 for an
// invalid pid or a closed engine.
// Complexity: O(1).
func (e *Engine) VertexCount(pid int) int {
	if p := e.partition(pid); p != nil {
		return p.VertexCount
	}
	return 0
}

// EdgeCount returns the arc count of partition pid (remote arcs included),
// or 0 for an invalid pid or a closed engine.
// Complexity: O(1).
func (e *Engine) EdgeCount(pid int) graph.EID {
	if p := e.partition(pid); p != nil {
		return p.EdgeCount
	}
	return 0
}

// RemoteVertexCount returns the number of distinct foreign vertices
// referenced by partition pid, or 0.
// Complexity: O(1).
func (e *Engine) RemoteVertexCount(pid int) int {
	if p := e.partition(pid); p != nil {
		return p.RemoteVertexCount
	}
	return 0
}

// RemoteEdgeCount returns the number of remote-encoded arcs of partition
// pid, or 0.
// Complexity: O(1).
func (e *Engine) RemoteEdgeCount(pid int) graph.EID {
	if p := e.partition(pid); p != nil {
		return p.RemoteEdgeCount
	}
	return 0
}

// Partition returns partition pid for algorithm callbacks and drivers, or
// nil when not ready / out of range.
// Complexity: O(1).
func (e *Engine) Partition(pid int) *partition.Partition {
	return e.partition(pid)
}

// Set returns the active partition set, or nil when not ready.
// Complexity: O(1).
func (e *Engine) Set() *partition.Set {
	if !e.ready() {
		return nil
	}
	return e.set
}

// Attr returns the attributes the engine was initialized with.
// Complexity: O(1).
func (e *Engine) Attr() Attr {
	if e == nil {
		return Attr{}
	}
	return e.attr
}

// Timing returns the live timing record for reading and for algorithm
// drivers to fill, or nil when not ready. Single-writer like the rest of the
// lifecycle surface.
// Complexity: O(1).
func (e *Engine) Timing() *Timing {
	if !e.ready() {
		return nil
	}
	return &e.timing
}

// ResetTiming zeroes the timing record. Idempotent; no-op when not ready.
// Complexity: O(1).
func (e *Engine) ResetTiming() {
	if !e.ready() {
		return
	}
	e.timing.Reset()
}

func (e *Engine) partition(pid int) *partition.Partition {
	if !e.ready() {
		return nil
	}
	return e.set.Partition(pid)
}
