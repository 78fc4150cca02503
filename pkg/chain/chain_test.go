package chain_test

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/aretw0/markov/pkg/chain"
	"github.com/aretw0/markov/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func words() chain.Funcs[string] {
	return chain.Funcs[string]{
		PrintFunc: func(w io.Writer, v string) error {
			_, err := io.WriteString(w, v)
			return err
		},
		CompareFunc:    strings.Compare,
		IsTerminalFunc: func(s string) bool { return strings.HasSuffix(s, ".") },
	}
}

func newWords(t *testing.T, opts ...chain.Option) *chain.Chain[string] {
	t.Helper()
	c, err := chain.New[string](words(), opts...)
	require.NoError(t, err)
	t.Cleanup(c.Close)
	return c
}

// MockCaps lets tests inject copy failures.
type MockCaps struct {
	mock.Mock
}

func (m *MockCaps) Print(w io.Writer, v string) error { return nil }
func (m *MockCaps) Compare(a, b string) int           { return strings.Compare(a, b) }
func (m *MockCaps) IsTerminal(v string) bool          { return strings.HasSuffix(v, ".") }
func (m *MockCaps) Copy(v string) (string, error) {
	args := m.Called(v)
	return args.String(0), args.Error(1)
}

func TestNew_Validation(t *testing.T) {
	_, err := chain.New[string](nil)
	assert.Error(t, err)

	_, err = chain.New[string](chain.Funcs[string]{})
	assert.Error(t, err, "compare capability must be required")

	c, err := chain.New[string](chain.Funcs[string]{CompareFunc: chain.Equal[string]})
	require.NoError(t, err)
	assert.Equal(t, 0, c.Len())
	assert.False(t, c.Closed())
}

func TestRegistry_FindOnEmpty(t *testing.T) {
	c := newWords(t)
	id, ok := c.Find("a")
	assert.False(t, ok)
	assert.Equal(t, chain.NoState, id)
}

func TestRegistry_AddDeduplicates(t *testing.T) {
	c := newWords(t)

	first, err := c.Add("hello")
	require.NoError(t, err)
	second, err := c.Add("hello")
	require.NoError(t, err)
	other, err := c.Add("world")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.NotEqual(t, first, other)
	assert.Equal(t, 2, c.Len())

	found, ok := c.Find("world")
	assert.True(t, ok)
	assert.Equal(t, other, found)
}

func TestRegistry_InsertionOrder(t *testing.T) {
	c := newWords(t)
	for _, w := range []string{"c", "a", "b", "a", "c"} {
		_, err := c.Add(w)
		require.NoError(t, err)
	}

	var got []string
	for id, v := range c.States() {
		assert.Equal(t, chain.StateID(len(got)), id)
		got = append(got, v)
	}
	assert.Equal(t, []string{"c", "a", "b"}, got)
}

func TestRegistry_PayloadIsCopied(t *testing.T) {
	c, err := chain.New[[]byte](chain.Funcs[[]byte]{
		CompareFunc: bytes.Compare,
		CopyFunc: func(v []byte) ([]byte, error) {
			return bytes.Clone(v), nil
		},
	})
	require.NoError(t, err)

	in := []byte("abc")
	id, err := c.Add(in)
	require.NoError(t, err)
	in[0] = 'x'

	got, err := c.Payload(id)
	require.NoError(t, err)
	assert.Equal(t, "abc", string(got))

	_, ok := c.Find([]byte("xbc"))
	assert.False(t, ok)
}

func TestRegistry_CopyCalledOncePerState(t *testing.T) {
	caps := new(MockCaps)
	caps.On("Copy", "a").Return("a", nil)

	c, err := chain.New[string](caps)
	require.NoError(t, err)

	for range 3 {
		_, err := c.Add("a")
		require.NoError(t, err)
	}
	caps.AssertNumberOfCalls(t, "Copy", 1)
}

func TestRegistry_AllocationFailureTearsDownChain(t *testing.T) {
	caps := new(MockCaps)
	caps.On("Copy", "a").Return("a", nil)
	caps.On("Copy", "b").Return("", errors.New("out of memory"))

	var tornDown *domain.BuildEvent
	c, err := chain.New[string](caps, chain.WithLifecycleHooks(domain.LifecycleHooks{
		OnTeardown: func(e *domain.BuildEvent) { tornDown = e },
	}))
	require.NoError(t, err)

	err = c.ObserveSequence("a", "b")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAllocationFailure)
	assert.Contains(t, err.Error(), "out of memory")

	assert.True(t, c.Closed())
	assert.Equal(t, 0, c.Len())
	require.NotNil(t, tornDown)
	assert.Equal(t, 1, tornDown.Count)

	_, err = c.Add("a")
	assert.ErrorIs(t, err, domain.ErrChainClosed)
	assert.ErrorIs(t, c.RecordTransition(0, 0), domain.ErrChainClosed)
	_, err = c.Walk(chain.NoState, 3)
	assert.ErrorIs(t, err, domain.ErrChainClosed)
	_, ok := c.Find("a")
	assert.False(t, ok)

	caps.AssertExpectations(t)
}

func TestTransition_RepeatedObservationsMerge(t *testing.T) {
	c := newWords(t)
	a, _ := c.Add("a")
	b, _ := c.Add("b")

	for range 5 {
		require.NoError(t, c.RecordTransition(a, b))
	}

	edges := c.Edges(a)
	require.Len(t, edges, 1)
	assert.Equal(t, chain.Edge{To: b, Count: 5}, edges[0])
	assert.Equal(t, 5, c.TotalWeight(a))
	assert.Equal(t, 0, c.TotalWeight(b))
}

func TestTransition_TotalWeightMatchesEdges(t *testing.T) {
	c := newWords(t)
	require.NoError(t, c.ObserveSequence("a", "b", "a", "c", "a", "b", "b", "d."))

	for id := range c.States() {
		sum := 0
		for _, e := range c.Edges(id) {
			assert.GreaterOrEqual(t, e.Count, 1)
			sum += e.Count
		}
		assert.Equal(t, sum, c.TotalWeight(id))
	}

	a, _ := c.Find("a")
	b, _ := c.Find("b")
	cc, _ := c.Find("c")
	assert.Equal(t, []chain.Edge{{To: b, Count: 2}, {To: cc, Count: 1}}, c.Edges(a))
}

func TestTransition_LogsNewEdgesOnly(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	c := newWords(t, chain.WithLogger(logger))

	require.NoError(t, c.Observe("a", "b"))
	require.NoError(t, c.Observe("a", "b"))

	assert.Equal(t, 1, strings.Count(buf.String(), "edge recorded"))
}

func TestTransition_EdgesIsACopy(t *testing.T) {
	c := newWords(t)
	require.NoError(t, c.Observe("a", "b"))
	a, _ := c.Find("a")

	edges := c.Edges(a)
	edges[0].Count = 100
	assert.Equal(t, 1, c.TotalWeight(a))
}

func TestTransition_UnknownState(t *testing.T) {
	c := newWords(t)
	a, _ := c.Add("a")

	assert.ErrorIs(t, c.RecordTransition(a, 7), domain.ErrUnknownState)
	assert.ErrorIs(t, c.RecordTransition(-3, a), domain.ErrUnknownState)
	assert.Equal(t, 0, c.TotalWeight(42))
	assert.Nil(t, c.Edges(42))
}

func TestTransition_Hooks(t *testing.T) {
	var added, recorded []*domain.BuildEvent
	c := newWords(t, chain.WithLifecycleHooks(domain.LifecycleHooks{
		OnStateAdded: func(e *domain.BuildEvent) { added = append(added, e) },
		OnTransition: func(e *domain.BuildEvent) { recorded = append(recorded, e) },
	}))

	require.NoError(t, c.ObserveSequence("a", "b", "a", "b"))

	assert.Len(t, added, 2)
	require.Len(t, recorded, 3)
	assert.Equal(t, domain.EventTransition, recorded[2].Type)
	assert.Equal(t, 2, recorded[2].Count)
}

func TestStats(t *testing.T) {
	c := newWords(t)
	require.NoError(t, c.ObserveSequence("a", "b", "c."))
	require.NoError(t, c.ObserveSequence("a", "d"))
	require.NoError(t, c.ObserveSequence("a", "b"))

	st := c.Stats()
	assert.Equal(t, chain.Stats{
		States:       4,
		Terminal:     1,
		Edges:        3,
		Observations: 4,
		DeadEnds:     1, // "d"
		MaxFanOut:    2,
	}, st)

	top := c.Heaviest(1)
	require.Len(t, top, 1)
	a, _ := c.Find("a")
	assert.Equal(t, chain.StateWeight{ID: a, Weight: 3, FanOut: 2}, top[0])
	assert.Len(t, c.Heaviest(-1), 4)
}
