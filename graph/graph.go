package graph

import "fmt"

// Graph is an immutable CSR adjacency structure.
//
// offsets has length VertexCount+1; the arcs of vertex v occupy
// edges[offsets[v]:offsets[v+1]]. For undirected graphs every logical edge
// appears twice, once per direction, except self-loops which are stored once;
// EdgeCount therefore counts stored arcs, not logical edges.
//
// A Graph is never mutated after construction, so it may be shared across
// goroutines without synchronization.
type Graph struct {
	directed bool
	weighted bool

	offsets []EID
	edges   []VID
	weights []Weight // parallel to edges; nil when unweighted
}

// FromEdges builds a Graph over vertexCount vertices from an edge list.
// Arc order within a vertex follows the input order of its edges (for
// undirected graphs the reverse arcs interleave in the same input order),
// which keeps construction deterministic.
//
// Returns ErrNoVertices for vertexCount < 1, ErrVertexRange for an endpoint
// outside [0, vertexCount), ErrBadWeight for a non-zero weight on an
// unweighted graph.
// Complexity: O(V + E) time and memory.
func FromEdges(vertexCount int, list []Edge, opts ...Option) (*Graph, error) {
	if vertexCount < 1 {
		return nil, fmt.Errorf("FromEdges: vertexCount=%d: %w", vertexCount, ErrNoVertices)
	}
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	// Validate endpoints and weights before allocating anything.
	limit := VID(vertexCount)
	for i, e := range list {
		if e.From >= limit || e.To >= limit {
			return nil, fmt.Errorf("FromEdges: edge %d (%d→%d): %w", i, e.From, e.To, ErrVertexRange)
		}
		if !cfg.weighted && e.Weight != 0 {
			return nil, fmt.Errorf("FromEdges: edge %d (%d→%d): %w", i, e.From, e.To, ErrBadWeight)
		}
	}

	// Count per-vertex out-degrees. Undirected edges contribute to both
	// endpoints; self-loops contribute once.
	degree := make([]EID, vertexCount)
	arcs := EID(0)
	for _, e := range list {
		degree[e.From]++
		arcs++
		if !cfg.directed && e.From != e.To {
			degree[e.To]++
			arcs++
		}
	}

	g := &Graph{
		directed: cfg.directed,
		weighted: cfg.weighted,
		offsets:  make([]EID, vertexCount+1),
		edges:    make([]VID, arcs),
	}
	if cfg.weighted {
		g.weights = make([]Weight, arcs)
	}
	for v := 0; v < vertexCount; v++ {
		g.offsets[v+1] = g.offsets[v] + degree[v]
	}

	// Fill pass: cursor per vertex, advancing through its CSR row.
	cursor := make([]EID, vertexCount)
	copy(cursor, g.offsets[:vertexCount])
	place := func(from, to VID, w Weight) {
		i := cursor[from]
		g.edges[i] = to
		if cfg.weighted {
			g.weights[i] = w
		}
		cursor[from] = i + 1
	}
	for _, e := range list {
		place(e.From, e.To, e.Weight)
		if !cfg.directed && e.From != e.To {
			place(e.To, e.From, e.Weight)
		}
	}

	return g, nil
}

// FromCSR builds a Graph directly from prebuilt CSR arrays. The arrays are
// deep-copied to preserve immutability. A non-nil weights slice implies a
// weighted graph regardless of options.
//
// Returns ErrBadCSR for empty/non-monotone offsets or a length mismatch,
// ErrVertexRange for an arc target outside [0, vertexCount).
// Complexity: O(V + E) time and memory.
func FromCSR(offsets []EID, edges []VID, weights []Weight, opts ...Option) (*Graph, error) {
	if len(offsets) < 2 {
		return nil, fmt.Errorf("FromCSR: offsets length %d: %w", len(offsets), ErrNoVertices)
	}
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	if weights != nil {
		cfg.weighted = true
	}

	vertexCount := len(offsets) - 1
	if offsets[0] != 0 {
		return nil, fmt.Errorf("FromCSR: offsets[0]=%d: %w", offsets[0], ErrBadCSR)
	}
	for v := 0; v < vertexCount; v++ {
		if offsets[v+1] < offsets[v] {
			return nil, fmt.Errorf("FromCSR: offsets[%d] decreases: %w", v+1, ErrBadCSR)
		}
	}
	if offsets[vertexCount] != EID(len(edges)) {
		return nil, fmt.Errorf("FromCSR: offsets end %d != %d edges: %w",
			offsets[vertexCount], len(edges), ErrBadCSR)
	}
	if weights != nil && len(weights) != len(edges) {
		return nil, fmt.Errorf("FromCSR: %d weights for %d edges: %w",
			len(weights), len(edges), ErrBadCSR)
	}
	for i, to := range edges {
		if to >= VID(vertexCount) {
			return nil, fmt.Errorf("FromCSR: edges[%d]=%d: %w", i, to, ErrVertexRange)
		}
	}

	g := &Graph{
		directed: cfg.directed,
		weighted: cfg.weighted,
		offsets:  append([]EID(nil), offsets...),
		edges:    append([]VID(nil), edges...),
	}
	if weights != nil {
		g.weights = append([]Weight(nil), weights...)
	}

	return g, nil
}

// VertexCount returns the number of vertices.
// Complexity: O(1).
func (g *Graph) VertexCount() int { return len(g.offsets) - 1 }

// EdgeCount returns the number of stored arcs (twice the logical edge count
// for undirected graphs, self-loops excepted).
// Complexity: O(1).
func (g *Graph) EdgeCount() EID { return g.offsets[len(g.offsets)-1] }

// Directed reports whether the graph stores one arc per logical edge.
// Complexity: O(1).
func (g *Graph) Directed() bool { return g.directed }

// Weighted reports whether arcs carry weights.
// Complexity: O(1).
func (g *Graph) Weighted() bool { return g.weighted }

// Degree returns the out-degree of v, or 0 if v is out of range.
// Complexity: O(1).
func (g *Graph) Degree(v VID) int {
	if int(v) >= g.VertexCount() {
		return 0
	}
	return int(g.offsets[v+1] - g.offsets[v])
}

// Neighbors returns the CSR row of v as a read-only subslice, or nil if v is
// out of range. Callers must not mutate the returned slice.
// Complexity: O(1).
func (g *Graph) Neighbors(v VID) []VID {
	if int(v) >= g.VertexCount() {
		return nil
	}
	return g.edges[g.offsets[v]:g.offsets[v+1]]
}

// ArcWeights returns the weights parallel to Neighbors(v), or nil for an
// unweighted graph or an out-of-range v. Callers must not mutate it.
// Complexity: O(1).
func (g *Graph) ArcWeights(v VID) []Weight {
	if g.weights == nil || int(v) >= g.VertexCount() {
		return nil
	}
	return g.weights[g.offsets[v]:g.offsets[v+1]]
}
