package dsl_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/aretw0/markov/pkg/chain"
	"github.com/aretw0/markov/pkg/corpus"
	"github.com/aretw0/markov/pkg/domain"
	"github.com/aretw0/markov/pkg/dsl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder_SimpleChain(t *testing.T) {
	b := dsl.New[string](corpus.Words{})

	b.Add("the").
		Go("cat").
		GoN("dog", 3)
	b.Add("cat").Go("sat.")
	b.Add("dog").Go("ran.")

	assert.Equal(t, 3, b.Len())

	c, err := b.Build(chain.WithSeed(1))
	require.NoError(t, err)
	defer c.Close()

	// Declared states first, then undeclared targets by first reference.
	var got []string
	for _, p := range c.States() {
		got = append(got, p)
	}
	assert.Equal(t, []string{"the", "cat", "dog", "sat.", "ran."}, got)

	the, ok := c.Find("the")
	require.True(t, ok)
	assert.Equal(t, 4, c.TotalWeight(the))

	dog, _ := c.Find("dog")
	edges := c.Edges(the)
	require.Len(t, edges, 2)
	assert.Equal(t, chain.Edge{To: dog, Count: 3}, edges[1])
}

func TestBuilder_AddReturnsExisting(t *testing.T) {
	b := dsl.New[string](corpus.Words{})
	first := b.Add("a")
	assert.Same(t, first, b.Add("a"))
	assert.Equal(t, "a", first.Payload())
}

func TestBuilder_Then(t *testing.T) {
	b := dsl.New[string](corpus.Words{})
	b.Add("a").Then("b").Then("c.")

	c, err := b.Build(chain.WithSeed(3))
	require.NoError(t, err)
	defer c.Close()

	a, _ := c.Find("a")
	words, err := c.Generate(a, 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c."}, words)
}

func TestBuilder_IgnoresNonPositiveWeight(t *testing.T) {
	b := dsl.New[string](corpus.Words{})
	b.Add("a").GoN("b", 0).GoN("c", -2)

	c, err := b.Build()
	require.NoError(t, err)
	defer c.Close()

	assert.Equal(t, 1, c.Len())
}

func TestBuilder_ApplyAccumulates(t *testing.T) {
	b := dsl.New[string](corpus.Words{})
	b.Add("a").Go("b")

	c, err := b.Build()
	require.NoError(t, err)
	defer c.Close()
	require.NoError(t, b.Apply(c))

	a, _ := c.Find("a")
	assert.Equal(t, 2, c.TotalWeight(a))
	assert.Equal(t, 2, c.Len())
}

func TestBuilder_CopyFailure(t *testing.T) {
	caps := chain.Funcs[string]{
		CompareFunc: strings.Compare,
		CopyFunc: func(v string) (string, error) {
			if v == "boom" {
				return "", errors.New("out of memory")
			}
			return v, nil
		},
	}
	b := dsl.New[string](caps)
	b.Add("a").Go("boom")

	c, err := b.Build()
	assert.Nil(t, c)
	assert.ErrorIs(t, err, domain.ErrAllocationFailure)
}

func TestBuilder_InvalidCapabilities(t *testing.T) {
	tests := []struct {
		name string
		caps chain.Capabilities[string]
	}{
		{name: "Nil", caps: nil},
		{name: "Missing Compare", caps: chain.Funcs[string]{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := dsl.New[string](tt.caps)
			assert.NotPanics(t, func() {
				b.Add("a").Go("b")
				b.Add("a")
			})

			c, err := b.Build()
			assert.Nil(t, c)
			assert.Error(t, err)
		})
	}
}
