/*
Package dsl provides a fluent builder for constructing Markov chains in Go code.

It is the programmatic counterpart of observing sequences: instead of feeding a corpus
or a board definition, the caller declares states and weighted transitions directly.
This is particularly useful for unit tests and for small hand-written chains.

Example usage:

	package main

	import (
		"github.com/aretw0/markov/pkg/chain"
		"github.com/aretw0/markov/pkg/corpus"
		"github.com/aretw0/markov/pkg/dsl"
	)

	func main() {
		b := dsl.New[string](corpus.Words{})

		b.Add("the").
			Go("cat").
			GoN("dog", 3)

		b.Add("cat").Go("sat.")
		b.Add("dog").Go("ran.")

		c, err := b.Build(chain.WithSeed(42))
		if err != nil {
			panic(err)
		}
		defer c.Close()
	}
*/
package dsl
