package dsl

import (
	"fmt"

	"github.com/aretw0/markov/pkg/chain"
)

// Builder manages the chain construction.
// States are registered in declaration order; targets that were never declared
// are registered after them, in the order they are first referenced.
type Builder[T any] struct {
	caps  chain.Capabilities[T]
	err   error
	nodes []*NodeBuilder[T]
}

// New creates a new chain builder for payloads handled by caps.
// Unusable capabilities are reported by Build.
func New[T any](caps chain.Capabilities[T]) *Builder[T] {
	return &Builder[T]{caps: caps, err: chain.CheckCapabilities(caps)}
}

// Add declares a state in the chain.
// If the state already exists, it returns the existing builder.
func (b *Builder[T]) Add(payload T) *NodeBuilder[T] {
	if b.err == nil {
		for _, nb := range b.nodes {
			if b.caps.Compare(nb.payload, payload) == 0 {
				return nb
			}
		}
	}
	nb := &NodeBuilder[T]{payload: payload, builder: b}
	b.nodes = append(b.nodes, nb)
	return nb
}

// Len returns the number of declared states.
func (b *Builder[T]) Len() int {
	return len(b.nodes)
}

// Build compiles the declarations into a new chain.
// The chain is closed again if any declaration cannot be applied.
func (b *Builder[T]) Build(opts ...chain.Option) (*chain.Chain[T], error) {
	if b.err != nil {
		return nil, b.err
	}
	c, err := chain.New(b.caps, opts...)
	if err != nil {
		return nil, err
	}
	if err := b.Apply(c); err != nil {
		c.Close()
		return nil, err
	}
	return c, nil
}

// Apply adds the declared states and transitions to an existing chain.
// Repeated transitions accumulate on top of what c already holds.
func (b *Builder[T]) Apply(c *chain.Chain[T]) error {
	if b.err != nil {
		return b.err
	}
	ids := make([]chain.StateID, len(b.nodes))
	for i, nb := range b.nodes {
		id, err := c.Add(nb.payload)
		if err != nil {
			return fmt.Errorf("failed to add state %d: %w", i, err)
		}
		ids[i] = id
	}

	for i, nb := range b.nodes {
		for _, e := range nb.edges {
			to, err := c.Add(e.target)
			if err != nil {
				return fmt.Errorf("failed to add target of state %d: %w", i, err)
			}
			for range e.weight {
				if err := c.RecordTransition(ids[i], to); err != nil {
					return fmt.Errorf("failed to link state %d: %w", i, err)
				}
			}
		}
	}
	return nil
}
