package chain

import (
	"fmt"
	"iter"

	"github.com/aretw0/markov/pkg/domain"
)

// Walker produces one random walk over a chain.
// It is lazy, finite and cannot be restarted: call Walk again for a new realization.
//
//	w, err := c.Walk(chain.NoState, 20)
//	for w.Next() {
//		fmt.Println(w.Value())
//	}
//	if err := w.Err(); err != nil { ... }
type Walker[T any] struct {
	c       *Chain[T]
	start   StateID
	maxLen  int
	cur     StateID
	emitted int
	status  domain.WalkStatus
	reason  domain.StopReason
	err     error
}

// Walk prepares a walk of at most maxLen states.
// With start set to NoState a random non-terminal state is drawn on the first call to Next.
func (c *Chain[T]) Walk(start StateID, maxLen int) (*Walker[T], error) {
	if c.closed {
		return nil, domain.ErrChainClosed
	}
	if maxLen < 1 {
		return nil, fmt.Errorf("%w: %d", domain.ErrInvalidLength, maxLen)
	}
	if len(c.reg.states) == 0 {
		return nil, domain.ErrEmptyChain
	}
	if start == NoState {
		if !c.hasStartState() {
			return nil, domain.ErrNoStartState
		}
	} else if _, err := c.reg.get(start); err != nil {
		return nil, err
	}

	return &Walker[T]{
		c:      c,
		start:  start,
		maxLen: maxLen,
		cur:    NoState,
		status: domain.WalkNotStarted,
	}, nil
}

// Generate runs one walk to completion and returns the emitted payloads.
// On a dead end the payloads emitted so far are returned with the error.
func (c *Chain[T]) Generate(start StateID, maxLen int) ([]T, error) {
	w, err := c.Walk(start, maxLen)
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, min(maxLen, 64))
	for w.Next() {
		out = append(out, w.Value())
	}
	return out, w.Err()
}

// Next advances the walk. It returns false once the walk has terminated.
func (w *Walker[T]) Next() bool {
	switch w.status {
	case domain.WalkTerminated:
		return false
	case domain.WalkNotStarted:
		if w.c.closed {
			w.fail(domain.ErrChainClosed)
			return false
		}
		w.status = domain.WalkActive
		w.cur = w.start
		if w.cur == NoState {
			w.cur = w.c.randomStart()
		}
		w.c.logger.Debug("walk started", "state_id", int(w.cur), "max_length", w.maxLen)
		if w.c.hooks.OnWalkStart != nil {
			w.c.hooks.OnWalkStart(&domain.WalkEvent{
				EventBase: newEventBase(domain.EventWalkStart),
				StateID:   int(w.cur),
			})
		}
		w.emit()
		return true
	}

	if w.c.closed {
		w.fail(domain.ErrChainClosed)
		return false
	}
	next, err := w.c.step(w.cur)
	if err != nil {
		w.c.logger.Warn("walk reached a dead end", "state_id", int(w.cur), "step", w.emitted)
		w.reason = domain.StopDeadEnd
		w.fail(err)
		return false
	}
	w.cur = next
	w.emit()
	return true
}

// emit accounts for the current state and checks the stop conditions.
func (w *Walker[T]) emit() {
	w.emitted++
	if w.c.hooks.OnWalkStep != nil {
		w.c.hooks.OnWalkStep(&domain.WalkEvent{
			EventBase: newEventBase(domain.EventWalkStep),
			StateID:   int(w.cur),
			Step:      w.emitted,
		})
	}
	switch {
	case w.c.IsTerminal(w.cur):
		w.finish(domain.StopTerminal)
	case w.emitted >= w.maxLen:
		w.finish(domain.StopLength)
	}
}

func (w *Walker[T]) fail(err error) {
	w.err = err
	w.finish(w.reason)
}

func (w *Walker[T]) finish(reason domain.StopReason) {
	w.status = domain.WalkTerminated
	w.reason = reason
	w.c.logger.Debug("walk finished", "reason", string(reason), "length", w.emitted)
	if w.c.hooks.OnWalkEnd != nil {
		w.c.hooks.OnWalkEnd(&domain.WalkEvent{
			EventBase: newEventBase(domain.EventWalkEnd),
			StateID:   int(w.cur),
			Step:      w.emitted,
			Reason:    reason,
		})
	}
}

// Value returns the payload of the state emitted by the last call to Next.
func (w *Walker[T]) Value() T {
	var zero T
	if w.cur == NoState || w.c.closed {
		return zero
	}
	return w.c.reg.states[w.cur].Payload
}

// State returns the handle emitted by the last call to Next, or NoState.
func (w *Walker[T]) State() StateID {
	return w.cur
}

// Len returns the number of states emitted so far.
func (w *Walker[T]) Len() int {
	return w.emitted
}

// Status returns the position of the walk in its lifecycle.
func (w *Walker[T]) Status() domain.WalkStatus {
	return w.status
}

// Reason returns why the walk terminated, or StopNone while it is running.
func (w *Walker[T]) Reason() domain.StopReason {
	return w.reason
}

// Err returns the error that ended the walk, if any.
func (w *Walker[T]) Err() error {
	return w.err
}

// All adapts the walker to a range-over-func sequence.
func (w *Walker[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for w.Next() {
			if !yield(w.Value()) {
				return
			}
		}
	}
}

// step samples the successor of cur proportionally to the edge counts.
func (c *Chain[T]) step(cur StateID) (StateID, error) {
	s := c.reg.states[cur]
	total := s.totalWeight()
	if total == 0 {
		return NoState, fmt.Errorf("%w: state %d has no successor", domain.ErrDeadEndState, cur)
	}
	r := c.rng.IntN(total)
	for _, e := range s.edges {
		if r < e.Count {
			return e.To, nil
		}
		r -= e.Count
	}
	return s.edges[len(s.edges)-1].To, nil
}

// randomStart draws uniform indexes until it hits a non-terminal state.
// Walk has already checked that one exists.
func (c *Chain[T]) randomStart() StateID {
	for {
		s := c.reg.states[c.rng.IntN(len(c.reg.states))]
		if !c.caps.IsTerminal(s.Payload) {
			return s.ID
		}
	}
}

func (c *Chain[T]) hasStartState() bool {
	for _, s := range c.reg.states {
		if !c.caps.IsTerminal(s.Payload) {
			return true
		}
	}
	return false
}
