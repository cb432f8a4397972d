package model

import "time"

// RunOption defines the interface for hooks observing a run of a phase list.
type RunOption interface {
	// BeforeRun runs once before the first phase starts.
	BeforeRun() error

	runPhaseOption

	// AfterRun runs after the last phase completed successfully.
	AfterRun(totalDuration time.Duration) error
}

// runPhaseOption defines the interface for hooks at the phase level.
type runPhaseOption interface {
	// BeforePhase runs before the first handler of the phase.
	BeforePhase(phase *PhaseInfo) error
	// OnHandler runs everytime a handler of the phase returns without error.
	OnHandler(phase *PhaseInfo, bucket Bucket, elapsed time.Duration) error
	// AfterPhase runs after the last after handler of the phase.
	AfterPhase(phase *PhaseInfo, elapsed time.Duration) error
}
