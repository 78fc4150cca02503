package domain

import "errors"

// ErrAllocationFailure is returned when a payload copy cannot be satisfied.
// It is fatal for the chain that raised it: the chain is torn down.
var ErrAllocationFailure = errors.New("allocation failure")

// ErrDeadEndState is returned when a walk reaches a non-terminal state with no outgoing transitions.
// It ends that walk only; the chain stays usable.
var ErrDeadEndState = errors.New("dead-end state")

// ErrChainClosed is returned by operations on a chain that has been torn down.
var ErrChainClosed = errors.New("chain closed")

// ErrUnknownState is returned when a state handle does not belong to the chain.
var ErrUnknownState = errors.New("unknown state")

// ErrEmptyChain is returned when a walk is requested from a chain with no states.
var ErrEmptyChain = errors.New("empty chain")

// ErrNoStartState is returned when a random start is requested but every state is terminal.
var ErrNoStartState = errors.New("no non-terminal start state")

// ErrInvalidLength is returned when a walk is requested with a maximum length below one.
var ErrInvalidLength = errors.New("invalid walk length")
