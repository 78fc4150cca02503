package dsl

// edge is a declared transition and how many observations it stands for.
type edge[T any] struct {
	target T
	weight int
}

// NodeBuilder provides a fluent API for configuring a state.
type NodeBuilder[T any] struct {
	payload T
	edges   []edge[T]
	builder *Builder[T]
}

// Go adds one observation of a transition to the target.
func (n *NodeBuilder[T]) Go(target T) *NodeBuilder[T] {
	return n.GoN(target, 1)
}

// GoN adds weight observations of a transition to the target.
// A non-positive weight declares nothing.
func (n *NodeBuilder[T]) GoN(target T, weight int) *NodeBuilder[T] {
	if weight > 0 {
		n.edges = append(n.edges, edge[T]{target: target, weight: weight})
	}
	return n
}

// Then declares the target as a state and returns its builder,
// so a single path can be written as one expression.
func (n *NodeBuilder[T]) Then(target T) *NodeBuilder[T] {
	n.Go(target)
	return n.builder.Add(target)
}

// Payload returns the value of the state being configured.
func (n *NodeBuilder[T]) Payload() T {
	return n.payload
}
