package domain

// WalkStatus defines the lifecycle of a single random walk.
type WalkStatus string

const (
	WalkNotStarted WalkStatus = "not_started" // No state emitted yet
	WalkActive     WalkStatus = "walking"     // At least one state emitted, more may follow
	WalkTerminated WalkStatus = "terminated"  // Terminal state, length cap or error reached
)

// StopReason explains why a walk terminated.
type StopReason string

const (
	StopNone     StopReason = ""
	StopTerminal StopReason = "terminal"   // A terminal state was emitted
	StopLength   StopReason = "max_length" // The length cap was exhausted
	StopDeadEnd  StopReason = "dead_end"   // A non-terminal state had no successor
)
