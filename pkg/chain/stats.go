package chain

import (
	"cmp"
	"slices"
)

// Stats summarises the shape of a chain.
type Stats struct {
	States       int
	Terminal     int
	Edges        int
	Observations int
	// DeadEnds counts non-terminal states without successors. Walks reaching one fail.
	DeadEnds  int
	MaxFanOut int
}

// StateWeight pairs a state with its total outgoing weight.
type StateWeight struct {
	ID     StateID
	Weight int
	FanOut int
}

// Stats computes summary counters over the whole chain.
func (c *Chain[T]) Stats() Stats {
	var st Stats
	for _, s := range c.reg.states {
		st.States++
		terminal := c.caps.IsTerminal(s.Payload)
		if terminal {
			st.Terminal++
		}
		st.Edges += len(s.edges)
		st.Observations += s.totalWeight()
		st.MaxFanOut = max(st.MaxFanOut, len(s.edges))
		if !terminal && len(s.edges) == 0 {
			st.DeadEnds++
		}
	}
	return st
}

// Heaviest returns up to n states with the largest outgoing weight.
// Ties keep insertion order.
func (c *Chain[T]) Heaviest(n int) []StateWeight {
	out := make([]StateWeight, 0, len(c.reg.states))
	for _, s := range c.reg.states {
		out = append(out, StateWeight{ID: s.ID, Weight: s.totalWeight(), FanOut: len(s.edges)})
	}
	slices.SortStableFunc(out, func(a, b StateWeight) int {
		return cmp.Compare(b.Weight, a.Weight)
	})
	if n >= 0 && n < len(out) {
		out = out[:n]
	}
	return out
}
