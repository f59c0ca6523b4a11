package partition_test

import (
	"fmt"

	"github.com/katalvlaran/hygraph/graph"
	"github.com/katalvlaran/hygraph/partition"
)

// ExampleBuild partitions two triangles joined by a bridge edge and shows
// the per-partition accounting: each side keeps its triangle locally and
// pays exactly one remote arc for the bridge.
func ExampleBuild() {
	g, _ := graph.FromEdges(6, []graph.Edge{
		{From: 0, To: 1}, {From: 0, To: 2}, {From: 1, To: 2},
		{From: 2, To: 3},
		{From: 3, To: 4}, {From: 3, To: 5}, {From: 4, To: 5},
	})

	set, _ := partition.Build(g, partition.Labeling{0, 0, 0, 1, 1, 1}, 2)
	defer set.Release()

	for pid := 0; pid < set.PartitionCount(); pid++ {
		p := set.Partition(pid)
		fmt.Printf("partition %d: %d vertices, %d arcs, %d remote\n",
			pid, p.VertexCount, p.EdgeCount, p.RemoteEdgeCount)
	}
	// Output:
	// partition 0: 3 vertices, 7 arcs, 1 remote
	// partition 1: 3 vertices, 7 arcs, 1 remote
}

// ExampleAssign shows degree-sorted assignment steering half of all arcs to
// the reserved CPU partition of a skewed star graph.
func ExampleAssign() {
	edges := make([]graph.Edge, 0, 9)
	for v := graph.VID(1); v < 10; v++ {
		edges = append(edges, graph.Edge{From: 0, To: v})
	}
	g, _ := graph.FromEdges(10, edges)

	labels, _ := partition.Assign(g, 2,
		partition.WithStrategy(partition.StrategySortedDescending),
		partition.WithCPUShare(0.5))

	fmt.Println("center on partition", labels[0])
	// Output:
	// center on partition 0
}
