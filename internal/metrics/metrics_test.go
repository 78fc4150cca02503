package metrics_test

import (
	"strings"
	"testing"

	"github.com/aretw0/markov/internal/metrics"
	"github.com/aretw0/markov/pkg/chain"
	"github.com/aretw0/markov/pkg/domain"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newChain(t *testing.T, hooks domain.LifecycleHooks) *chain.Chain[string] {
	t.Helper()
	c, err := chain.New[string](chain.Funcs[string]{
		CompareFunc:    strings.Compare,
		IsTerminalFunc: func(s string) bool { return strings.HasSuffix(s, ".") },
	}, chain.WithSeed(1), chain.WithLifecycleHooks(hooks))
	require.NoError(t, err)
	t.Cleanup(c.Close)
	return c
}

func TestCollector_CountsBuildAndWalks(t *testing.T) {
	col := metrics.New("test")
	c := newChain(t, col.Hooks())

	require.NoError(t, c.ObserveSequence("a", "b", "a", "c."))
	a, _ := c.Find("a")
	for range 3 {
		_, err := c.Generate(a, 50)
		require.NoError(t, err)
	}

	expected := `
# HELP markov_walks_total Number of finished walks by stop reason
# TYPE markov_walks_total counter
markov_walks_total{chain="test",reason="terminal"} 3
`
	assert.NoError(t, testutil.GatherAndCompare(col.Registry(), strings.NewReader(expected), "markov_walks_total"))

	var sb strings.Builder
	require.NoError(t, col.WriteText(&sb))
	assert.Contains(t, sb.String(), `markov_states_added_total{chain="test"} 3`)
	assert.Contains(t, sb.String(), `markov_transitions_observed_total{chain="test"} 3`)
	assert.Contains(t, sb.String(), `markov_walk_length_states_count{chain="test"} 3`)
}

func TestCollector_DeadEndReason(t *testing.T) {
	col := metrics.New("test")
	c := newChain(t, col.Hooks())

	require.NoError(t, c.Observe("a", "b"))
	a, _ := c.Find("a")
	_, err := c.Generate(a, 10)
	require.ErrorIs(t, err, domain.ErrDeadEndState)

	var sb strings.Builder
	require.NoError(t, col.WriteText(&sb))
	assert.Contains(t, sb.String(), `markov_walks_total{chain="test",reason="dead_end"} 1`)
}

func TestChain_InvokesBoth(t *testing.T) {
	var order []string
	a := domain.LifecycleHooks{OnWalkStart: func(*domain.WalkEvent) { order = append(order, "a") }}
	b := domain.LifecycleHooks{
		OnWalkStart: func(*domain.WalkEvent) { order = append(order, "b") },
		OnWalkEnd:   func(*domain.WalkEvent) { order = append(order, "end") },
	}

	h := metrics.Chain(a, b)
	h.OnWalkStart(&domain.WalkEvent{})
	h.OnWalkEnd(&domain.WalkEvent{})

	assert.Equal(t, []string{"a", "b", "end"}, order)
	assert.Nil(t, h.OnStateAdded)
}
