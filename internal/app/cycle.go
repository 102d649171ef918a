package app

// cycleState is the coarse phase of one sync cycle, carried on log lines.
// Per-task fetch failures do not move a cycle to FAILED; only an error
// while aggregating or writing does, and that error propagates to the
// scheduler which retries on its next tick.
type cycleState string

const (
	statePlanned     cycleState = "PLANNED"
	stateFetching    cycleState = "FETCHING"
	stateAggregating cycleState = "AGGREGATING"
	stateWriting     cycleState = "WRITING"
	stateDone        cycleState = "DONE"
	stateFailed      cycleState = "FAILED"
)
