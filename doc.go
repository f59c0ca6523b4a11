// Package hygraph partitions in-memory graphs for hybrid CPU/accelerator
// processing: it splits a graph into disjoint, independently addressable
// sub-graphs, lays each one out as a CSR structure consumable by its compute
// resource, and keeps the bookkeeping any algorithm on top needs — vertex
// addressing across partitions, local/remote edge accounting, and phase
// timing.
//
// What lives where:
//
//	graph/     — the immutable CSR input graph: edge-list and gonum
//	             ingestion, seeded random generation
//	partition/ — vertex addressing (partition tag packed into the id's
//	             high bits), assignment strategies, partition-set
//	             construction, balance statistics
//	engine/    — lifecycle orchestration: platform/resource validation,
//	             per-partition state callbacks, query accessors, timing
//	cmd/       — hygraph-bench, a driver that partitions a graph and
//	             reports balance and timing
//
// Quick sketch: two triangles bridged by one edge, split across a CPU and
// an accelerator — the bridge becomes one remote arc on each side:
//
//	0───1        4───5
//	 \ /          \ /
//	  2─────────── 3
//	  [partition 0][partition 1]
//
//	g, _ := graph.FromEdges(6, edges)
//	e, _ := engine.New(g, engine.DefaultAttr())
//	defer e.Close()
//
// The compute kernels, accelerator memory backends, and the inter-partition
// message transport are external collaborators; hygraph guarantees them a
// partition set whose every remote reference decodes to a valid
// (partition, local vertex) pair.
package hygraph
