package engine

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/hygraph/partition"
)

// Platform selects which compute resources receive partitions.
type Platform uint8

const (
	// PlatformCPU runs on the CPU partition only.
	PlatformCPU Platform = iota

	// PlatformAccelerator runs on accelerator partitions only.
	PlatformAccelerator

	// PlatformHybrid runs on the CPU partition plus the accelerators.
	PlatformHybrid

	platformMax // number of platforms; keep last
)

// String returns the flag-friendly name of the platform.
func (p Platform) String() string {
	switch p {
	case PlatformCPU:
		return "cpu"
	case PlatformAccelerator:
		return "accelerator"
	case PlatformHybrid:
		return "hybrid"
	default:
		return fmt.Sprintf("platform(%d)", uint8(p))
	}
}

// MemoryMode selects where accelerator-resident partition data lives.
// The placement backend that honors it is external to this core; the engine
// validates and records the choice for that backend to consume.
type MemoryMode uint8

const (
	// MemDevice places partition data in device-local memory.
	MemDevice MemoryMode = iota

	// MemMapped places all partition data in host-mapped memory.
	MemMapped

	// MemMappedVertices maps only the vertex array, edges stay device-local.
	MemMappedVertices

	// MemMappedEdges maps only the edge array, vertices stay device-local.
	MemMappedEdges

	memoryModeMax // number of modes; keep last
)

// String returns the flag-friendly name of the memory mode.
func (m MemoryMode) String() string {
	switch m {
	case MemDevice:
		return "device"
	case MemMapped:
		return "mapped"
	case MemMappedVertices:
		return "mapped-vertices"
	case MemMappedEdges:
		return "mapped-edges"
	default:
		return fmt.Sprintf("mem(%d)", uint8(m))
	}
}

// Callback is invoked once per partition so an algorithm can attach
// (allocation) or detach (free) its own per-partition state.
type Callback func(*partition.Partition)

// Attr configures an Engine. The zero value is not valid; start from
// DefaultAttr.
type Attr struct {
	// Strategy is the CPU/accelerator partitioning strategy.
	Strategy partition.Strategy

	// Platform is the execution platform.
	Platform Platform

	// Accelerators is the number of accelerator partitions to create.
	Accelerators int

	// Memory is the placement mode for accelerator-resident partition data.
	Memory MemoryMode

	// RandomizedAccelerators scatters non-CPU vertices uniformly across the
	// accelerator partitions instead of by degree rank; the strategy then
	// governs only the CPU-vs-accelerator split.
	RandomizedAccelerators bool

	// CPUShare is the target fraction of arcs for the CPU partition in
	// [0, 1]; zero means an equal split across all partitions. Only hybrid
	// platforms consult it.
	CPUShare float64

	// Seed drives the pseudorandom strategy and randomized placement,
	// making a run reproducible.
	Seed int64

	// PushMsgBits and PullMsgBits declare the per-message payload widths of
	// the external communication phase; zero disables that direction.
	PushMsgBits uint32
	PullMsgBits uint32

	// Alloc and Free are invoked once per partition at init and finalize
	// respectively; either may be nil.
	Alloc Callback
	Free  Callback

	// Logger receives lifecycle logging; nil disables it.
	Logger logrus.FieldLogger
}

// Default message width: one 32-bit word pushed, nothing pulled.
const defaultPushMsgBits = 32

// DefaultAttr returns the reference configuration: hybrid platform with one
// accelerator, random 50/50 partitioning, device-local placement, one-word
// push messages and no pull messages.
func DefaultAttr() Attr {
	return Attr{
		Strategy:     partition.StrategyRandom,
		Platform:     PlatformHybrid,
		Accelerators: 1,
		Memory:       MemDevice,
		CPUShare:     0.5,
		PushMsgBits:  defaultPushMsgBits,
	}
}

// partitionCount derives the total partition count from the platform and
// accelerator count. Valid only after validate.
func (a *Attr) partitionCount() int {
	switch a.Platform {
	case PlatformCPU:
		return 1
	case PlatformAccelerator:
		return a.Accelerators
	default:
		return a.Accelerators + 1
	}
}

// hasCPU reports whether the platform includes the reserved CPU partition.
func (a *Attr) hasCPU() bool { return a.Platform != PlatformAccelerator }

// validate rejects invalid platform/resource combinations before any work
// begins.
func (a *Attr) validate() error {
	if a.Platform >= platformMax {
		return fmt.Errorf("attr: %v: %w", a.Platform, ErrPlatform)
	}
	if a.Memory >= memoryModeMax {
		return fmt.Errorf("attr: %v: %w", a.Memory, ErrMemoryMode)
	}
	switch a.Platform {
	case PlatformCPU:
		if a.Accelerators != 0 {
			return fmt.Errorf("attr: cpu platform with %d accelerators: %w",
				a.Accelerators, ErrAcceleratorCount)
		}
	default: // accelerator-only and hybrid both need at least one device
		if a.Accelerators < 1 {
			return fmt.Errorf("attr: %v platform with %d accelerators: %w",
				a.Platform, a.Accelerators, ErrAcceleratorCount)
		}
	}
	if count := a.partitionCount(); count > partition.MaxPartitions {
		return fmt.Errorf("attr: %d partitions (max %d): %w",
			count, partition.MaxPartitions, ErrTooManyPartitions)
	}
	if a.CPUShare < 0 || a.CPUShare > 1 {
		return fmt.Errorf("attr: cpu share %.6f: %w", a.CPUShare, partition.ErrShareRange)
	}

	return nil
}
