package partition_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hygraph/graph"
	"github.com/katalvlaran/hygraph/partition"
)

// twoTriangles is the canonical 6-vertex, 7-edge undirected scenario: two
// triangles {0,1,2} and {3,4,5} joined by the bridge edge (2,3).
func twoTriangles(t *testing.T, opts ...graph.Option) *graph.Graph {
	t.Helper()
	edges := []graph.Edge{
		{From: 0, To: 1}, {From: 0, To: 2}, {From: 1, To: 2},
		{From: 2, To: 3},
		{From: 3, To: 4}, {From: 3, To: 5}, {From: 4, To: 5},
	}
	g, err := graph.FromEdges(6, edges, opts...)
	require.NoError(t, err)
	return g
}

func TestBuildValidation(t *testing.T) {
	g := twoTriangles(t)
	labels := partition.Labeling{0, 0, 0, 1, 1, 1}

	_, err := partition.Build(nil, labels, 2)
	require.ErrorIs(t, err, partition.ErrGraphNil)

	_, err = partition.Build(g, labels, 0)
	require.ErrorIs(t, err, partition.ErrPartitionCount)

	_, err = partition.Build(g, labels, partition.MaxPartitions+1)
	require.ErrorIs(t, err, partition.ErrPartitionCount)

	_, err = partition.Build(g, labels[:4], 2)
	require.ErrorIs(t, err, partition.ErrLabelingSize)

	_, err = partition.Build(g, partition.Labeling{0, 0, 0, 1, 1, 3}, 2)
	require.ErrorIs(t, err, partition.ErrLabelRange)
}

// TestBuildTwoTriangles pins the full layout of the canonical scenario:
// contiguous remapped local ids, one remote arc per partition pointing at
// the other side of the bridge.
func TestBuildTwoTriangles(t *testing.T) {
	g := twoTriangles(t)
	set, err := partition.Build(g, partition.Labeling{0, 0, 0, 1, 1, 1}, 2)
	require.NoError(t, err)
	defer set.Release()

	require.Equal(t, 2, set.PartitionCount())
	require.False(t, set.Weighted())
	require.Same(t, g, set.Graph())

	// enc abbreviates the tagged neighbor encoding.
	enc := func(pid int, local graph.VID) graph.VID {
		id, err := partition.Encode(pid, local)
		require.NoError(t, err)
		return id
	}

	p0 := set.Partition(0)
	require.Equal(t, 3, p0.VertexCount)
	require.EqualValues(t, 7, p0.EdgeCount) // 6 local arcs + the bridge
	require.EqualValues(t, 1, p0.RemoteEdgeCount)
	require.Equal(t, 1, p0.RemoteVertexCount)
	require.Equal(t, []graph.EID{0, 2, 4, 7}, p0.Offsets)
	// Partition 0's own tag is zero, so its local entries read as plain ids.
	require.Equal(t, []graph.VID{1, 2}, p0.Neighbors(0))
	require.Equal(t, []graph.VID{0, 2}, p0.Neighbors(1))
	// enc(1, 0): original vertex 3 is local 0 in partition 1.
	require.Equal(t, []graph.VID{0, 1, enc(1, 0)}, p0.Neighbors(2))
	require.True(t, p0.IsRemote(enc(1, 0)))
	require.False(t, p0.IsRemote(enc(0, 1)))

	p1 := set.Partition(1)
	require.Equal(t, 3, p1.VertexCount)
	require.EqualValues(t, 7, p1.EdgeCount)
	require.EqualValues(t, 1, p1.RemoteEdgeCount)
	require.Equal(t, 1, p1.RemoteVertexCount)
	// enc(0, 2): original vertex 2 is local 2 in partition 0. Local
	// neighbors carry partition 1's own tag, so the bridge reference is
	// never confused with local id 2.
	require.Equal(t, []graph.VID{enc(0, 2), enc(1, 1), enc(1, 2)}, p1.Neighbors(0)) // original 3
	require.Equal(t, []graph.VID{enc(1, 0), enc(1, 2)}, p1.Neighbors(1))            // original 4
	require.Equal(t, []graph.VID{enc(1, 0), enc(1, 1)}, p1.Neighbors(2))            // original 5
	require.True(t, p1.IsRemote(enc(0, 2)))
	require.False(t, p1.IsRemote(enc(1, 2)))
}

// TestBuildInvariants checks conservation, contiguity, and remote
// referential integrity over random graphs and every strategy.
func TestBuildInvariants(t *testing.T) {
	g, err := graph.Random(800, 0.01, 21)
	require.NoError(t, err)

	for _, s := range []partition.Strategy{
		partition.StrategyRandom,
		partition.StrategySortedAscending,
		partition.StrategySortedDescending,
	} {
		labels, err := partition.Assign(g, 4,
			partition.WithStrategy(s), partition.WithSeed(9), partition.WithCPUShare(0.3))
		require.NoError(t, err)

		set, err := partition.Build(g, labels, 4)
		require.NoError(t, err)

		var vertices int
		var arcs, remoteArcs graph.EID
		for pid := 0; pid < set.PartitionCount(); pid++ {
			p := set.Partition(pid)
			require.Equal(t, pid, p.ID())
			vertices += p.VertexCount
			arcs += p.EdgeCount
			remoteArcs += p.RemoteEdgeCount

			// Contiguity: offsets span exactly EdgeCount arcs over
			// VertexCount rows.
			require.Len(t, p.Offsets, p.VertexCount+1)
			require.EqualValues(t, p.EdgeCount, p.Offsets[p.VertexCount])

			seenRemote := graph.EID(0)
			for _, id := range p.Edges {
				target := partition.DecodePartition(id)
				local := partition.DecodeLocal(id)
				if p.IsRemote(id) {
					seenRemote++
					require.NotEqual(t, pid, target,
						"strategy %v: remote arc points at its own partition", s)
				}
				require.Less(t, int(local), set.Partition(target).VertexCount,
					"strategy %v: dangling reference into partition %d", s, target)
			}
			require.Equal(t, p.RemoteEdgeCount, seenRemote,
				"strategy %v: remote accounting disagrees with the edge array", s)
		}

		require.Equal(t, g.VertexCount(), vertices, "strategy %v: vertex conservation", s)
		require.Equal(t, g.EdgeCount(), arcs, "strategy %v: arc conservation", s)
		require.Positive(t, remoteArcs, "strategy %v: expected some cross-partition arcs", s)
		set.Release()
	}
}

// TestBuildWeighted checks that weights follow their arcs through the remap.
func TestBuildWeighted(t *testing.T) {
	edges := []graph.Edge{
		{From: 0, To: 1, Weight: 1.5},
		{From: 1, To: 2, Weight: 2.5},
		{From: 2, To: 0, Weight: 4},
	}
	g, err := graph.FromEdges(3, edges, graph.WithWeighted())
	require.NoError(t, err)

	set, err := partition.Build(g, partition.Labeling{0, 0, 1}, 2)
	require.NoError(t, err)
	defer set.Release()

	require.True(t, set.Weighted())

	p0 := set.Partition(0)
	// Vertex 0 rows: arc to 1 (w 1.5) placed first, then the reverse of
	// (2,0) (w 4) which is remote.
	require.Equal(t, []graph.Weight{1.5, 4}, p0.ArcWeights(0))
	require.Equal(t, []graph.Weight{1.5, 2.5}, p0.ArcWeights(1))

	p1 := set.Partition(1)
	require.Equal(t, []graph.Weight{2.5, 4}, p1.ArcWeights(0))
	require.Nil(t, p1.ArcWeights(5), "out-of-range row must be nil")
}

func TestSetRelease(t *testing.T) {
	g := twoTriangles(t)
	set, err := partition.Build(g, partition.Labeling{0, 0, 0, 1, 1, 1}, 2)
	require.NoError(t, err)

	set.Release()
	set.Release() // idempotent

	require.Equal(t, 0, set.PartitionCount())
	require.Nil(t, set.Partition(0))
	require.Nil(t, set.Graph())
	require.False(t, set.Weighted())
}

func TestStats(t *testing.T) {
	g := twoTriangles(t)
	set, err := partition.Build(g, partition.Labeling{0, 0, 0, 1, 1, 1}, 2)
	require.NoError(t, err)
	defer set.Release()

	bal := partition.Stats(set)
	require.InDelta(t, 0.5, bal.Shares[0], 1e-9)
	require.InDelta(t, 0.5, bal.Shares[1], 1e-9)
	require.InDelta(t, 0.5, bal.Mean, 1e-9)
	require.InDelta(t, 0, bal.StdDev, 1e-9)
	require.InDelta(t, 2.0/14.0, bal.RemoteFraction, 1e-9)

	set.Release()
	require.Equal(t, partition.Balance{}, partition.Stats(set))
}
