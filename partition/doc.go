// Package partition splits an immutable graph.Graph into disjoint,
// independently addressable sub-graphs for hybrid CPU/accelerator
// processing.
//
// What:
//
//   - Vertex addressing: Encode/DecodePartition/DecodeLocal pack a partition
//     id into the high-order PartitionBits of a 32-bit vertex id, so an edge
//     can point into a foreign partition without lookup tables.
//   - Assign: vertex→partition labelings under a seeded-uniform or
//     degree-sorted strategy, with a CPU edge-share target for the reserved
//     CPU partition (always the last index).
//   - Build: a Set of per-partition CSR structures with contiguous remapped
//     local ids, every neighbor stored as an encoded (partition, local) id
//     (own-partition tag for local neighbors, so locality is never
//     ambiguous), and exact local vs. remote arc accounting.
//   - Stats: gonum-backed arc-balance and communication-volume summary.
//
// Invariants:
//
//   - Encode/Decode round-trip exactly; distinct (partition, local) pairs
//     never collide.
//   - Local vertex counts and arc counts across a Set sum to the source
//     graph's totals; every remote id decodes to a foreign partition and a
//     valid local vertex there.
//
// Concurrency:
//
//   - Assign and Build are sequential from the caller's view; Build fans
//     out one goroutine per partition internally (each writes only its own
//     arrays) and joins before returning.
//   - A published Set is read-mostly shared state: concurrent readers are
//     safe; only a partition's own compute context may touch its State.
//
// Errors: sentinels (ErrPartitionCount, ErrShareRange, ErrPartitionFull, ...)
// checked via errors.Is; constructors never return partial results.
package partition
