package partition_test

import (
	"testing"

	"github.com/katalvlaran/hygraph/graph"
	"github.com/katalvlaran/hygraph/partition"
)

// benchGraph is shared across benchmarks; ~5k vertices, ~125k arcs.
func benchGraph(b *testing.B) *graph.Graph {
	b.Helper()
	g, err := graph.Random(5000, 0.005, 1)
	if err != nil {
		b.Fatalf("generating benchmark graph: %v", err)
	}
	return g
}

func BenchmarkAssignRandom(b *testing.B) {
	g := benchGraph(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := partition.Assign(g, 4, partition.WithSeed(int64(i))); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkAssignSorted(b *testing.B) {
	g := benchGraph(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, err := partition.Assign(g, 4,
			partition.WithStrategy(partition.StrategySortedDescending),
			partition.WithCPUShare(0.5))
		if err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkBuild(b *testing.B) {
	g := benchGraph(b)
	labels, err := partition.Assign(g, 4, partition.WithSeed(1))
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		set, err := partition.Build(g, labels, 4)
		if err != nil {
			b.Fatal(err)
		}
		set.Release()
	}
}
