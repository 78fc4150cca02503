/*
Package chain implements a generic Markov chain: a weighted directed graph over
arbitrary payload values, built incrementally from observed transitions and
sampled with a weighted random walk.

The chain owns three things:

  - A registry of unique states, deduplicated by the Compare capability and kept
    in insertion order. Each state holds its own copy of the payload.
  - A per-state transition table: an insertion-ordered list of edges, each with
    an observation count.
  - A random source, seeded once by the caller, so that a fixed seed always
    reproduces the same walks.

Payload behaviour is supplied through Capabilities, either by a dedicated type
or by wrapping plain functions in Funcs.

# Usage

	c, err := chain.New[string](chain.Funcs[string]{
		CompareFunc:    strings.Compare,
		IsTerminalFunc: func(s string) bool { return strings.HasSuffix(s, ".") },
	}, chain.WithSeed(42))
	if err != nil {
		log.Fatal(err)
	}
	defer c.Close()

	if err := c.ObserveSequence("a", "b", "c."); err != nil {
		log.Fatal(err)
	}

	start, _ := c.Find("a")
	words, err := c.Generate(start, 5) // ["a", "b", "c."]

A copy failure while building is fatal: the chain is torn down and every later
operation reports domain.ErrChainClosed. A dead end reached while walking only
ends that walk with domain.ErrDeadEndState.
*/
package chain
