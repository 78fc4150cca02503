package domain

import (
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventStateAdded    EventType = "state_added"
	EventTransition    EventType = "transition_recorded"
	EventWalkStart     EventType = "walk_start"
	EventWalkStep      EventType = "walk_step"
	EventWalkEnd       EventType = "walk_end"
	EventChainTornDown EventType = "chain_torn_down"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
}

// BuildEvent describes a mutation of the chain during the build phase.
type BuildEvent struct {
	EventBase
	StateID int `json:"state_id"`
	// TargetID is set for transition events.
	TargetID int `json:"target_id,omitempty"`
	// Count is the observation count of the edge after the update.
	Count int `json:"count,omitempty"`
}

// WalkEvent describes progress of a single walk.
type WalkEvent struct {
	EventBase
	StateID int        `json:"state_id"`
	Step    int        `json:"step"`
	Reason  StopReason `json:"reason,omitempty"`
}

// LifecycleHooks defines callbacks for chain observability.
// Any hook may be nil.
type LifecycleHooks struct {
	OnStateAdded func(*BuildEvent)
	OnTransition func(*BuildEvent)
	OnWalkStart  func(*WalkEvent)
	OnWalkStep   func(*WalkEvent)
	OnWalkEnd    func(*WalkEvent)
	// OnTeardown fires when a build error destroys the chain, not on Close.
	OnTeardown func(*BuildEvent)
}
