// Package partition splits a graph.Graph into independently addressable
// sub-graphs for hybrid CPU/accelerator execution.
//
// This file defines the vertex addressing scheme: a partition id packed into
// the high-order bits of a 32-bit vertex id, so an edge can reference a
// vertex in a foreign partition without auxiliary lookup tables.
package partition

import (
	"fmt"

	"github.com/katalvlaran/hygraph/graph"
)

const (
	// PartitionBits is the number of high-order VID bits reserved for the
	// partition id. Widening it raises MaxPartitions and shrinks the local
	// id space accordingly; every component derives its limits from this
	// one constant.
	PartitionBits = 2

	// MaxPartitions is the number of addressable partitions.
	MaxPartitions = 1 << PartitionBits

	// localBits is the width of the local vertex id field.
	localBits = 32 - PartitionBits

	// localMask clears the partition bits of an encoded id.
	localMask = graph.VID(1)<<localBits - 1

	// MaxLocalVertices is the number of addressable vertices per partition.
	MaxLocalVertices = graph.VID(1) << localBits
)

// Encode packs (pid, local) into a single VID with the partition id in the
// high-order bits. Returns ErrPartitionRange for pid outside
// [0, MaxPartitions) and ErrLocalRange for local ≥ MaxLocalVertices; within
// the valid domain the packing is collision-free.
// Complexity: O(1).
func Encode(pid int, local graph.VID) (graph.VID, error) {
	if pid < 0 || pid >= MaxPartitions {
		return 0, fmt.Errorf("Encode: partition %d: %w", pid, ErrPartitionRange)
	}
	if local >= MaxLocalVertices {
		return 0, fmt.Errorf("Encode: local id %d: %w", local, ErrLocalRange)
	}
	return encode(pid, local), nil
}

// encode is the unchecked hot-path form of Encode; callers must have
// validated pid and local against the field widths.
func encode(pid int, local graph.VID) graph.VID {
	return local | graph.VID(pid)<<localBits
}

// DecodePartition extracts the partition id from an encoded VID. Total over
// the full VID domain.
// Complexity: O(1).
func DecodePartition(id graph.VID) int {
	return int(id >> localBits)
}

// DecodeLocal extracts the local vertex id from an encoded VID. Total over
// the full VID domain.
// Complexity: O(1).
func DecodeLocal(id graph.VID) graph.VID {
	return id & localMask
}
