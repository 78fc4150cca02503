package chain

import (
	"slices"

	"github.com/aretw0/markov/pkg/domain"
)

// Edge is a weighted transition to another state.
type Edge struct {
	To    StateID
	Count int
}

// record adds one observation of a transition to target.
// It returns the count of the edge after the update.
func (s *State[T]) record(target StateID) int {
	for i := range s.edges {
		if s.edges[i].To == target {
			s.edges[i].Count++
			return s.edges[i].Count
		}
	}
	s.edges = append(s.edges, Edge{To: target, Count: 1})
	return 1
}

func (s *State[T]) totalWeight() int {
	total := 0
	for _, e := range s.edges {
		total += e.Count
	}
	return total
}

// RecordTransition counts one observation of source followed by target.
// The first observation creates the edge, later ones increment its count.
func (c *Chain[T]) RecordTransition(source, target StateID) error {
	if c.closed {
		return domain.ErrChainClosed
	}
	from, err := c.reg.get(source)
	if err != nil {
		return err
	}
	if _, err := c.reg.get(target); err != nil {
		return err
	}

	count := from.record(target)
	if count == 1 {
		c.logger.Debug("edge recorded", "from", int(source), "to", int(target))
	}
	if c.hooks.OnTransition != nil {
		c.hooks.OnTransition(&domain.BuildEvent{
			EventBase: newEventBase(domain.EventTransition),
			StateID:   int(source),
			TargetID:  int(target),
			Count:     count,
		})
	}
	return nil
}

// TotalWeight returns the sum of the outgoing edge counts of a state.
// A state without edges, or an unknown handle, weighs zero.
func (c *Chain[T]) TotalWeight(source StateID) int {
	s, err := c.reg.get(source)
	if err != nil {
		return 0
	}
	return s.totalWeight()
}

// Edges returns a copy of the outgoing edges of a state in insertion order.
func (c *Chain[T]) Edges(source StateID) []Edge {
	s, err := c.reg.get(source)
	if err != nil {
		return nil
	}
	return slices.Clone(s.edges)
}

// Observe registers a and b and records the transition a -> b.
func (c *Chain[T]) Observe(a, b T) error {
	from, err := c.Add(a)
	if err != nil {
		return err
	}
	to, err := c.Add(b)
	if err != nil {
		return err
	}
	return c.RecordTransition(from, to)
}

// ObserveSequence registers every value of seq and records the transitions
// between consecutive values.
func (c *Chain[T]) ObserveSequence(seq ...T) error {
	prev := NoState
	for _, v := range seq {
		id, err := c.Add(v)
		if err != nil {
			return err
		}
		if prev != NoState {
			if err := c.RecordTransition(prev, id); err != nil {
				return err
			}
		}
		prev = id
	}
	return nil
}
