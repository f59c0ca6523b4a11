// Package graph provides the immutable CSR (compressed sparse row) input
// graph consumed by the partitioning engine.
//
// This file declares the id and weight types, the Edge input record,
// sentinel errors, and the functional options shared by all constructors.
package graph

import "errors"

// VID identifies a vertex. It is strictly 32-bit: the partitioning layer
// reserves the high-order bits of a VID for a partition tag, so all hot-path
// structures (adjacency arrays, labelings, remaps) stay dense.
type VID uint32

// EID indexes into the flat edge array. 64-bit so that graphs with more than
// 2^32 arcs remain addressable even though single vertices are 32-bit.
type EID uint64

// Weight is the per-edge weight type. 32-bit to keep accelerator-resident
// edge data compact.
type Weight float32

// Edge is a single input edge for FromEdges. For undirected graphs the
// constructor stores both arc directions; Edge itself is always (From → To).
type Edge struct {
	// From is the source vertex.
	From VID

	// To is the destination vertex.
	To VID

	// Weight is the edge weight; must be zero when the graph is unweighted.
	Weight Weight
}

// Sentinel errors for graph construction and parsing.
var (
	// ErrNoVertices indicates a requested vertex count below one.
	ErrNoVertices = errors.New("graph: vertex count must be at least 1")

	// ErrVertexRange indicates an edge endpoint outside [0, vertexCount).
	ErrVertexRange = errors.New("graph: vertex id out of range")

	// ErrBadWeight indicates a non-zero weight supplied to an unweighted graph.
	ErrBadWeight = errors.New("graph: non-zero weight on unweighted graph")

	// ErrBadCSR indicates a malformed offsets/edges/weights triple.
	ErrBadCSR = errors.New("graph: malformed CSR arrays")

	// ErrParse indicates a malformed edge-list line.
	ErrParse = errors.New("graph: malformed edge list")

	// ErrInvalidProbability indicates an edge probability outside [0, 1].
	ErrInvalidProbability = errors.New("graph: probability out of range")

	// ErrNilSource indicates a nil input (reader or gonum graph).
	ErrNilSource = errors.New("graph: nil source")
)

// Option configures graph construction via functional arguments.
type Option func(*config)

// config collects constructor flags before the CSR arrays are assembled.
type config struct {
	directed bool
	weighted bool
}

// WithDirected sets the directedness of the constructed graph
// (true = directed arcs, false = undirected; undirected graphs store each
// logical edge as two arcs, one per direction).
func WithDirected(directed bool) Option {
	return func(c *config) { c.directed = directed }
}

// WithWeighted allows non-zero edge weights and allocates the parallel
// weight array.
func WithWeighted() Option {
	return func(c *config) { c.weighted = true }
}
