package chain

import (
	"fmt"
	"iter"

	"github.com/aretw0/markov/pkg/domain"
)

// StateID is a stable handle to a state of a chain.
// Handles are assigned in insertion order, starting at zero.
type StateID int

// NoState requests a random start when passed to Walk or Generate.
const NoState StateID = -1

// State is one node of the chain.
type State[T any] struct {
	ID      StateID
	Payload T
	edges   []Edge
}

// registry is the insertion-ordered arena of unique states.
type registry[T any] struct {
	caps   Capabilities[T]
	states []*State[T]
}

func (r *registry[T]) find(v T) (StateID, bool) {
	for _, s := range r.states {
		if r.caps.Compare(s.Payload, v) == 0 {
			return s.ID, true
		}
	}
	return NoState, false
}

func (r *registry[T]) add(v T) (StateID, bool, error) {
	if id, ok := r.find(v); ok {
		return id, false, nil
	}
	payload, err := r.caps.Copy(v)
	if err != nil {
		return NoState, false, fmt.Errorf("copy payload: %w: %w", domain.ErrAllocationFailure, err)
	}
	s := &State[T]{ID: StateID(len(r.states)), Payload: payload}
	r.states = append(r.states, s)
	return s.ID, true, nil
}

func (r *registry[T]) get(id StateID) (*State[T], error) {
	if id < 0 || int(id) >= len(r.states) {
		return nil, fmt.Errorf("%w: %d", domain.ErrUnknownState, id)
	}
	return r.states[id], nil
}

// Find returns the handle of the state equal to v.
// It reports false when no such state exists, including on an empty or closed chain.
func (c *Chain[T]) Find(v T) (StateID, bool) {
	return c.reg.find(v)
}

// Add returns the handle of the state equal to v, registering a copy of v if
// it is not known yet. A copy failure tears the whole chain down.
func (c *Chain[T]) Add(v T) (StateID, error) {
	if c.closed {
		return NoState, domain.ErrChainClosed
	}
	id, created, err := c.reg.add(v)
	if err != nil {
		c.teardown(err)
		return NoState, err
	}
	if created {
		c.logger.Debug("state added", "state_id", int(id), "states", len(c.reg.states))
		if c.hooks.OnStateAdded != nil {
			c.hooks.OnStateAdded(&domain.BuildEvent{
				EventBase: newEventBase(domain.EventStateAdded),
				StateID:   int(id),
			})
		}
	}
	return id, nil
}

// Len returns the number of registered states.
func (c *Chain[T]) Len() int {
	return len(c.reg.states)
}

// State returns the state behind a handle.
func (c *Chain[T]) State(id StateID) (*State[T], error) {
	if c.closed {
		return nil, domain.ErrChainClosed
	}
	return c.reg.get(id)
}

// Payload returns the chain-owned payload of a state.
func (c *Chain[T]) Payload(id StateID) (T, error) {
	s, err := c.State(id)
	if err != nil {
		var zero T
		return zero, err
	}
	return s.Payload, nil
}

// IsTerminal reports whether the state behind id is terminal.
// Unknown handles are not terminal.
func (c *Chain[T]) IsTerminal(id StateID) bool {
	s, err := c.reg.get(id)
	if err != nil {
		return false
	}
	return c.caps.IsTerminal(s.Payload)
}

// States iterates over the registry in insertion order.
func (c *Chain[T]) States() iter.Seq2[StateID, T] {
	return func(yield func(StateID, T) bool) {
		for _, s := range c.reg.states {
			if !yield(s.ID, s.Payload) {
				return
			}
		}
	}
}
