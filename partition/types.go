// Package partition: assignment strategies, options, and sentinel errors.
package partition

import (
	"errors"
	"fmt"
)

// Strategy selects how vertices are assigned to partitions.
type Strategy uint8

const (
	// StrategyRandom draws each vertex's partition independently and
	// uniformly from a seeded generator.
	StrategyRandom Strategy = iota

	// StrategySortedAscending ranks vertices by degree ascending (ties by
	// vertex id) and cuts the ranking into contiguous edge-share ranges.
	StrategySortedAscending

	// StrategySortedDescending is StrategySortedAscending with the ranking
	// reversed.
	StrategySortedDescending

	strategyMax // number of strategies; keep last
)

// String returns the flag-friendly name of the strategy.
func (s Strategy) String() string {
	switch s {
	case StrategyRandom:
		return "random"
	case StrategySortedAscending:
		return "sorted-asc"
	case StrategySortedDescending:
		return "sorted-dsc"
	default:
		return fmt.Sprintf("strategy(%d)", uint8(s))
	}
}

// Labeling maps every global vertex id to its assigned partition id.
// Index = global VID, value < partition count. Immutable once returned.
type Labeling []uint8

// Sentinel errors for assignment and set construction.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("partition: graph is nil")

	// ErrPartitionCount indicates a partition count outside [1, MaxPartitions].
	ErrPartitionCount = errors.New("partition: partition count out of range")

	// ErrPartitionRange indicates a partition id outside [0, MaxPartitions).
	ErrPartitionRange = errors.New("partition: partition id out of range")

	// ErrLocalRange indicates a local vertex id too wide for the id field.
	ErrLocalRange = errors.New("partition: local vertex id out of range")

	// ErrShareRange indicates a CPU edge share outside [0, 1].
	ErrShareRange = errors.New("partition: cpu edge share out of range")

	// ErrStrategy indicates an unknown assignment strategy.
	ErrStrategy = errors.New("partition: unknown strategy")

	// ErrLabelingSize indicates a labeling whose length differs from the
	// graph's vertex count.
	ErrLabelingSize = errors.New("partition: labeling size mismatch")

	// ErrLabelRange indicates a label outside [0, partition count).
	ErrLabelRange = errors.New("partition: label out of range")

	// ErrPartitionFull indicates a partition with more vertices than the
	// local id field can address.
	ErrPartitionFull = errors.New("partition: partition exceeds local id space")

	// ErrReleased indicates use of a Set after Release.
	ErrReleased = errors.New("partition: set already released")
)

// Option configures Assign via functional arguments. An invalid option is
// recorded and surfaced when Assign is invoked.
type Option func(*options)

// options holds resolved assignment parameters.
type options struct {
	strategy      Strategy
	seed          int64
	cpuShare      float64
	randomizedAcc bool
	err           error
}

// defaultOptions: random strategy, seed 0, equal split, deterministic
// accelerator placement.
func defaultOptions() options {
	return options{strategy: StrategyRandom}
}

// WithStrategy selects the assignment strategy.
func WithStrategy(s Strategy) Option {
	return func(o *options) {
		if s >= strategyMax {
			o.err = fmt.Errorf("WithStrategy: %d: %w", uint8(s), ErrStrategy)
			return
		}
		o.strategy = s
	}
}

// WithSeed seeds the pseudorandom generator used by StrategyRandom and by
// randomized accelerator placement. Identical (graph, partition count, seed)
// inputs always produce identical labelings.
func WithSeed(seed int64) Option {
	return func(o *options) { o.seed = seed }
}

// WithCPUShare sets the target fraction of total arcs for the reserved CPU
// partition (the last partition index) under the sorted strategies. Zero
// means an equal split across all partitions.
//
//	share ∈ [0,1]: valid
//	otherwise:     ErrShareRange when Assign runs
func WithCPUShare(share float64) Option {
	return func(o *options) {
		if share < 0 || share > 1 {
			o.err = fmt.Errorf("WithCPUShare: %.6f: %w", share, ErrShareRange)
			return
		}
		o.cpuShare = share
	}
}

// WithRandomizedAccelerators keeps the sorted strategies in charge of the
// CPU-vs-accelerator split only: vertices outside the CPU share are placed
// uniformly at random across the accelerator partitions instead of by rank
// range. No effect under StrategyRandom.
func WithRandomizedAccelerators() Option {
	return func(o *options) { o.randomizedAcc = true }
}
