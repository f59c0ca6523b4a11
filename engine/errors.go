package engine

import "errors"

// Sentinel errors for engine configuration and lifecycle.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed to New.
	ErrGraphNil = errors.New("engine: graph is nil")

	// ErrPlatform indicates an unknown execution platform.
	ErrPlatform = errors.New("engine: unknown platform")

	// ErrAcceleratorCount indicates an accelerator count incompatible with
	// the platform (CPU-only requires 0, the others at least 1).
	ErrAcceleratorCount = errors.New("engine: accelerator count incompatible with platform")

	// ErrTooManyPartitions indicates a resource count that exceeds the
	// addressable partition maximum.
	ErrTooManyPartitions = errors.New("engine: partition count exceeds addressable maximum")

	// ErrMemoryMode indicates an unknown accelerator memory placement mode.
	ErrMemoryMode = errors.New("engine: unknown memory placement mode")

	// ErrEngineActive indicates that another Engine is live; the lifecycle
	// contract allows one active instance per process.
	ErrEngineActive = errors.New("engine: another engine is active")
)
