package partition

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/hygraph/graph"
)

// Partition is one sub-graph of a Set: a CSR adjacency over remapped local
// vertex ids. Every entry in Edges is an encoded (partition, local) pair;
// same-partition neighbors carry the owning partition's tag, so
// DecodePartition(id) == ID() is an exact locality test and a neighbor value
// is never ambiguous between a local id and a reference into partition 0.
//
// A Partition is owned by its parent Set and must not outlive it. The State
// field is reserved for algorithm-specific per-partition state attached via
// the engine's allocation callback; everything else is read-only after Build.
type Partition struct {
	// Offsets is the CSR vertex-offset array, length VertexCount+1.
	Offsets []graph.EID

	// Edges holds local or remote-encoded neighbor ids in CSR order.
	Edges []graph.VID

	// Weights parallels Edges when the source graph is weighted, else nil.
	Weights []graph.Weight

	// VertexCount is the number of local vertices; local ids are exactly
	// [0, VertexCount).
	VertexCount int

	// EdgeCount is the number of arcs owned by this partition (arcs whose
	// source vertex is local), including remote-encoded ones.
	EdgeCount graph.EID

	// RemoteVertexCount is the number of distinct foreign vertices
	// referenced by this partition's edges.
	RemoteVertexCount int

	// RemoteEdgeCount is the number of remote-encoded arcs.
	RemoteEdgeCount graph.EID

	// State carries algorithm-attached per-partition state; the partition
	// core never reads it.
	State interface{}

	id int // index within the parent Set
}

// ID returns the partition's index within its Set.
// Complexity: O(1).
func (p *Partition) ID() int { return p.id }

// IsRemote reports whether an edge value read from this partition's rows
// references a vertex in a foreign partition.
// Complexity: O(1).
func (p *Partition) IsRemote(id graph.VID) bool {
	return DecodePartition(id) != p.id
}

// Neighbors returns the CSR row of local vertex v as a read-only subslice of
// encoded neighbor ids (DecodeLocal for the local index, IsRemote for
// locality), or nil if v is out of range.
// Complexity: O(1).
func (p *Partition) Neighbors(v graph.VID) []graph.VID {
	if int(v) >= p.VertexCount {
		return nil
	}
	return p.Edges[p.Offsets[v]:p.Offsets[v+1]]
}

// ArcWeights returns the weights parallel to Neighbors(v), or nil for an
// unweighted set or an out-of-range v.
// Complexity: O(1).
func (p *Partition) ArcWeights(v graph.VID) []graph.Weight {
	if p.Weights == nil || int(v) >= p.VertexCount {
		return nil
	}
	return p.Weights[p.Offsets[v]:p.Offsets[v+1]]
}

// Set is an ordered collection of Partitions built from one graph and one
// labeling. The source graph is referenced, not owned, and must outlive the
// Set. Once built a Set is read-mostly: concurrent readers are safe as long
// as each compute context mutates only its own Partition's State.
type Set struct {
	graph    *graph.Graph
	weighted bool
	parts    []Partition
	released bool
}

// Build constructs a partition Set from g and a labeling produced by Assign.
//
// Construction runs in three passes: (1) a sequential remap pass assigns
// every vertex a contiguous local id within its partition, in ascending
// global id order; (2) a per-partition adjacency pass — parallel across
// partitions, each reading only the shared graph and labeling — emits every
// neighbor as an encoded (partition, local) id, tagging same-partition
// neighbors with the owning partition and accounting remote arcs and
// distinct remote vertices; (3) per-partition CSR offsets come from the
// degrees counted in the same pass. Weights are copied arc-parallel when g
// is weighted.
//
// Invariants on success: local vertex counts sum to g.VertexCount(); arc
// counts sum to g.EdgeCount(); every remote-encoded id decodes to a foreign
// partition and a local id below that partition's VertexCount.
//
// Returns ErrGraphNil, ErrPartitionCount, ErrLabelingSize, ErrLabelRange, or
// ErrPartitionFull; no partial Set is ever returned.
// Complexity: O(V + E) time, O(V + E) memory.
func Build(g *graph.Graph, labels Labeling, partitionCount int) (*Set, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if partitionCount < 1 || partitionCount > MaxPartitions {
		return nil, fmt.Errorf("Build: %d partitions (max %d): %w",
			partitionCount, MaxPartitions, ErrPartitionCount)
	}
	n := g.VertexCount()
	if len(labels) != n {
		return nil, fmt.Errorf("Build: %d labels for %d vertices: %w",
			len(labels), n, ErrLabelingSize)
	}

	// Pass 1: remap. localID[v] is v's contiguous id within its partition,
	// assigned in ascending global order; members[p] lists p's vertices in
	// the same order.
	localID := make([]graph.VID, n)
	members := make([][]graph.VID, partitionCount)
	for v := 0; v < n; v++ {
		p := int(labels[v])
		if p >= partitionCount {
			return nil, fmt.Errorf("Build: vertex %d labeled %d of %d: %w",
				v, p, partitionCount, ErrLabelRange)
		}
		localID[v] = graph.VID(len(members[p]))
		if localID[v] >= MaxLocalVertices {
			return nil, fmt.Errorf("Build: partition %d: %w", p, ErrPartitionFull)
		}
		members[p] = append(members[p], graph.VID(v))
	}

	s := &Set{
		graph:    g,
		weighted: g.Weighted(),
		parts:    make([]Partition, partitionCount),
	}

	// Pass 2+3: per-partition adjacency and offsets. Partitions only read
	// the shared graph, labels, and localID, and write their own arrays, so
	// they build concurrently with a single join before the Set is
	// published.
	var group errgroup.Group
	for p := 0; p < partitionCount; p++ {
		p := p
		group.Go(func() error {
			return buildPartition(&s.parts[p], p, g, labels, localID, members[p])
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	return s, nil
}

// buildPartition fills one Partition from the shared read-only inputs.
func buildPartition(part *Partition, pid int, g *graph.Graph,
	labels Labeling, localID []graph.VID, verts []graph.VID) error {
	part.id = pid
	part.VertexCount = len(verts)
	part.Offsets = make([]graph.EID, len(verts)+1)

	// Size the edge array from the members' original degrees.
	arcs := graph.EID(0)
	for i, v := range verts {
		arcs += graph.EID(g.Degree(v))
		part.Offsets[i+1] = arcs
	}
	part.EdgeCount = arcs
	part.Edges = make([]graph.VID, arcs)
	if g.Weighted() {
		part.Weights = make([]graph.Weight, arcs)
	}

	remote := make(map[graph.VID]struct{})
	i := graph.EID(0)
	for _, v := range verts {
		nbrs := g.Neighbors(v)
		ws := g.ArcWeights(v)
		for j, u := range nbrs {
			id := encode(int(labels[u]), localID[u])
			part.Edges[i] = id
			if int(labels[u]) != pid {
				part.RemoteEdgeCount++
				remote[id] = struct{}{}
			}
			if ws != nil {
				part.Weights[i] = ws[j]
			}
			i++
		}
	}
	part.RemoteVertexCount = len(remote)

	return nil
}

// PartitionCount returns the number of partitions, or 0 after Release.
// Complexity: O(1).
func (s *Set) PartitionCount() int {
	if s == nil || s.released {
		return 0
	}
	return len(s.parts)
}

// Partition returns the partition at index pid, or nil if pid is out of
// range or the Set has been released.
// Complexity: O(1).
func (s *Set) Partition(pid int) *Partition {
	if s == nil || s.released || pid < 0 || pid >= len(s.parts) {
		return nil
	}
	return &s.parts[pid]
}

// Graph returns the source graph backing this Set, or nil after Release.
// Complexity: O(1).
func (s *Set) Graph() *graph.Graph {
	if s == nil || s.released {
		return nil
	}
	return s.graph
}

// Weighted reports whether all partitions carry weight arrays.
// Complexity: O(1).
func (s *Set) Weighted() bool {
	if s == nil || s.released {
		return false
	}
	return s.weighted
}

// Release drops all partition storage and detaches the graph backref.
// Idempotent; any use of the Set after Release yields zero/nil sentinels.
// Complexity: O(1).
func (s *Set) Release() {
	if s == nil || s.released {
		return
	}
	s.parts = nil
	s.graph = nil
	s.released = true
}
