/*
Package markov is a generic Markov-chain engine with two bundled programs:
a snakes-and-ladders route generator and a tweet generator learned from a text corpus.

The engine lives in pkg/chain. It keeps a registry of deduplicated states, a table of
weighted transitions between them, and a seeded random-walk generator. Payloads are
opaque to the engine: the caller supplies a Capabilities value that knows how to
print, compare, copy and recognise terminal payloads.

# Concept

Every distinct payload becomes one state. Observing "a then b" adds weight to the edge
a→b; observing it again increments the same edge instead of adding a new one. A walk
starts at a given state, or at a random non-terminal state, and repeatedly picks an
outgoing edge with probability proportional to its weight. It stops at a terminal
state, at the length limit, or at a state with no way out (a dead end).

# Usage

	package main

	import (
		"log"
		"os"
		"strings"

		"github.com/aretw0/markov/pkg/chain"
		"github.com/aretw0/markov/pkg/corpus"
	)

	func main() {
		text := "the cat sat.\nthe dog ran.\n"

		c, _, err := corpus.Build(strings.NewReader(text), corpus.Unlimited, chain.WithSeed(42))
		if err != nil {
			log.Fatal(err)
		}
		defer c.Close()

		w, err := c.Walk(chain.NoState, 20)
		if err != nil {
			log.Fatal(err)
		}
		for word := range w.All() {
			_ = c.Print(os.Stdout, word)
		}
	}

The board package builds the snakes-and-ladders chain from a YAML definition and
cmd/markov exposes both programs on the command line.
*/
package markov
