package partition

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/katalvlaran/hygraph/graph"
)

// Assign produces a vertex→partition labeling for g under the configured
// strategy. partitionCount must lie in [1, MaxPartitions]. The returned
// labeling covers every vertex; on any failure the labeling is nil.
//
// The reserved CPU partition is the last index (partitionCount−1): under the
// sorted strategies it receives approximately the configured CPU edge share
// of arcs, and the remaining partitions receive approximately equal shares
// of the rest. A zero share yields an equal split across all partitions.
//
// Returns ErrGraphNil, ErrPartitionCount, or the error recorded by an
// invalid Option.
// Complexity: O(V) for StrategyRandom, O(V log V) for the sorted strategies.
func Assign(g *graph.Graph, partitionCount int, opts ...Option) (Labeling, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if partitionCount < 1 || partitionCount > MaxPartitions {
		return nil, fmt.Errorf("Assign: %d partitions (max %d): %w",
			partitionCount, MaxPartitions, ErrPartitionCount)
	}

	labels := make(Labeling, g.VertexCount())
	if partitionCount == 1 {
		return labels, nil // single partition: all zero labels
	}

	switch o.strategy {
	case StrategyRandom:
		assignRandom(labels, partitionCount, o.seed)
	case StrategySortedAscending, StrategySortedDescending:
		assignSorted(g, labels, partitionCount, o)
	default:
		return nil, fmt.Errorf("Assign: %v: %w", o.strategy, ErrStrategy)
	}

	return labels, nil
}

// assignRandom draws every label independently and uniformly. The fixed
// iteration order (vertex id ascending) makes the result a pure function of
// (vertex count, partitionCount, seed).
func assignRandom(labels Labeling, partitionCount int, seed int64) {
	rng := rand.New(rand.NewSource(seed))
	for v := range labels {
		labels[v] = uint8(rng.Intn(partitionCount))
	}
}

// assignSorted ranks vertices by degree and cuts the ranking into contiguous
// ranges sized by arc share: accelerator partitions 0..count−2 are filled
// to their target first, the reserved CPU partition (last index) absorbs the
// remainder. With randomized accelerator placement, the ranking decides only
// which vertices fall outside the CPU share; those are then scattered
// uniformly across the accelerator partitions.
func assignSorted(g *graph.Graph, labels Labeling, partitionCount int, o options) {
	n := len(labels)
	rank := make([]graph.VID, n)
	for v := range rank {
		rank[v] = graph.VID(v)
	}
	asc := o.strategy == StrategySortedAscending
	sort.Slice(rank, func(i, j int) bool {
		di, dj := g.Degree(rank[i]), g.Degree(rank[j])
		if di != dj {
			if asc {
				return di < dj
			}
			return di > dj
		}
		return rank[i] < rank[j] // stable: ties by original vertex id
	})

	total := float64(g.EdgeCount())
	cpuTarget := total * o.cpuShare
	if o.cpuShare == 0 {
		cpuTarget = total / float64(partitionCount)
	}
	accTarget := (total - cpuTarget) / float64(partitionCount-1)

	if o.randomizedAcc {
		// Rank decides the CPU cut only; the accelerator pool is shuffled.
		rng := rand.New(rand.NewSource(o.seed))
		poolTarget := total - cpuTarget
		acc := 0.0
		for _, v := range rank {
			if acc < poolTarget {
				labels[v] = uint8(rng.Intn(partitionCount - 1))
				acc += float64(g.Degree(v))
				continue
			}
			labels[v] = uint8(partitionCount - 1)
		}
		return
	}

	cur, acc := 0, 0.0
	for _, v := range rank {
		labels[v] = uint8(cur)
		acc += float64(g.Degree(v))
		if cur < partitionCount-1 && acc >= accTarget {
			cur++
			acc = 0
		}
	}
}
