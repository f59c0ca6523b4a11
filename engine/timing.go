package engine

import "time"

// Timing is the flat record of wall-clock phase durations measured around an
// engine run. EngineInit and EnginePartition are filled by New; the Alg*
// fields belong to the algorithm driver running on top, which owns the
// lifecycle thread and writes them between supersteps.
type Timing struct {
	// EngineInit is the full duration of New, partitioning included.
	EngineInit time.Duration

	// EnginePartition is the assignment + set-construction sub-span of
	// EngineInit.
	EnginePartition time.Duration

	// AlgExec is the whole algorithm execution (compute + communication).
	AlgExec time.Duration

	// AlgCompute is the compute phase across all resources.
	AlgCompute time.Duration

	// AlgComm is the communication phase (scatter + gather).
	AlgComm time.Duration

	// AlgScatter is the push-direction step of communication.
	AlgScatter time.Duration

	// AlgGather is the pull-direction step of communication.
	AlgGather time.Duration

	// AlgAggregate is the final result aggregation.
	AlgAggregate time.Duration

	// AlgGPUComp is the compute time of the slowest accelerator.
	AlgGPUComp time.Duration

	// AlgGPUTotalComp is the summed compute time of all accelerators.
	AlgGPUTotalComp time.Duration

	// AlgCPUComp is the CPU partition's compute time.
	AlgCPUComp time.Duration

	// AlgInit and AlgFinalize bracket the algorithm's own setup/teardown.
	AlgInit     time.Duration
	AlgFinalize time.Duration
}

// Reset zeroes every field. Idempotent.
// Complexity: O(1).
func (t *Timing) Reset() { *t = Timing{} }

// Stopwatch measures one phase span for filling a Timing field.
//
//	var sw engine.Stopwatch
//	sw.Start()
//	// ... phase ...
//	timing.AlgCompute += sw.Elapsed()
type Stopwatch struct {
	start time.Time
}

// Start (re)arms the stopwatch at the current instant.
func (s *Stopwatch) Start() { s.start = time.Now() }

// Elapsed returns the wall-clock time since Start.
func (s *Stopwatch) Elapsed() time.Duration { return time.Since(s.start) }
