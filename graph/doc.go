// Package graph provides the immutable CSR input graph for the hygraph
// partitioning engine.
//
// What:
//
//   - Graph: compressed-sparse-row adjacency with optional per-arc weights.
//   - Constructors: FromEdges (edge list), FromCSR (prebuilt arrays),
//     ParseEdgeList (text edge lists), FromGonum (gonum interop),
//     Random (seeded Erdős–Rényi generator).
//   - Dense 32-bit VIDs: the partition layer tags the high-order bits of a
//     VID, so the full graph must fit the untagged id width.
//
// Conventions:
//
//   - Undirected graphs store each logical edge as two arcs (self-loops
//     once); EdgeCount counts stored arcs.
//   - A Graph is immutable after construction and safe for concurrent reads.
//   - Neighbors/ArcWeights return subslice views, never copies.
//
// Errors:
//
//   - ErrNoVertices: vertex count below 1.
//   - ErrVertexRange: edge endpoint outside the vertex range.
//   - ErrBadWeight: non-zero weight on an unweighted graph.
//   - ErrBadCSR: malformed offsets/edges/weights arrays.
//   - ErrParse: malformed edge-list input.
//   - ErrInvalidProbability: generator probability outside [0,1].
//   - ErrNilSource: nil reader or gonum source.
package graph
