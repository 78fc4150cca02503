package board_test

import (
	"strings"
	"testing"

	"github.com/aretw0/markov/pkg/board"
	"github.com/aretw0/markov/pkg/chain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCells_DefaultLayout(t *testing.T) {
	cells := board.Cells(board.DefaultConfig())
	require.Len(t, cells, 100)

	assert.Equal(t, board.Cell{Number: 13, LadderTo: board.None, SnakeTo: 4}, cells[12])
	assert.Equal(t, board.Cell{Number: 8, LadderTo: 30, SnakeTo: board.None}, cells[7])
	assert.Equal(t, board.Cell{Number: 1, LadderTo: board.None, SnakeTo: board.None}, cells[0])

	ladders, snakes := 0, 0
	for _, c := range cells {
		if c.LadderTo != board.None {
			ladders++
		}
		if c.SnakeTo != board.None {
			snakes++
		}
	}
	assert.Equal(t, 20, ladders+snakes)
	assert.Equal(t, 10, ladders)
}

func TestBuild_Transitions(t *testing.T) {
	c, err := board.Build(board.DefaultConfig(), chain.WithSeed(1))
	require.NoError(t, err)
	defer c.Close()

	assert.Equal(t, 100, c.Len())

	// Snake head: one forced edge.
	snake, ok := c.Find(board.Cell{Number: 13})
	require.True(t, ok)
	edges := c.Edges(snake)
	require.Len(t, edges, 1)
	dest, _ := c.Payload(edges[0].To)
	assert.Equal(t, 4, dest.Number)

	// Plain cell: one edge per die face.
	plain, _ := c.Find(board.Cell{Number: 2})
	assert.Len(t, c.Edges(plain), 6)
	assert.Equal(t, 6, c.TotalWeight(plain))

	// Near the end the die is clipped by the board edge.
	near, _ := c.Find(board.Cell{Number: 98})
	assert.Len(t, c.Edges(near), 2)

	last, _ := c.Find(board.Cell{Number: 100})
	assert.True(t, c.IsTerminal(last))
	assert.Empty(t, c.Edges(last))

	st := c.Stats()
	assert.Equal(t, 0, st.DeadEnds)
	assert.Equal(t, 1, st.Terminal)
}

func TestWalk_PlainBoardMovesForward(t *testing.T) {
	cfg := board.DefaultConfig()
	cfg.Jumps = nil

	c, err := board.Build(cfg, chain.WithSeed(12345))
	require.NoError(t, err)
	defer c.Close()

	start, ok := board.Start(c)
	require.True(t, ok)

	for range 50 {
		route, err := c.Generate(start, cfg.Size)
		require.NoError(t, err)
		require.NotEmpty(t, route)

		assert.Equal(t, 1, route[0].Number)
		assert.Equal(t, 100, route[len(route)-1].Number)
		for i := 1; i < len(route); i++ {
			step := route[i].Number - route[i-1].Number
			assert.GreaterOrEqual(t, step, 1)
			assert.LessOrEqual(t, step, 6)
		}
	}
}

func TestWalk_DefaultBoardRespectsRouteLength(t *testing.T) {
	cfg := board.DefaultConfig()
	c, err := board.Build(cfg, chain.WithSeed(2))
	require.NoError(t, err)
	defer c.Close()

	start, _ := board.Start(c)
	for range 100 {
		route, err := c.Generate(start, cfg.MaxRouteLength)
		require.NoError(t, err)
		assert.LessOrEqual(t, len(route), cfg.MaxRouteLength)
		for i := 1; i < len(route); i++ {
			prev := route[i-1]
			if to, ok := prev.Jump(); ok {
				assert.Equal(t, to, route[i].Number, "cell %d must follow its jump", prev.Number)
			}
		}
	}
}

func TestRules_Print(t *testing.T) {
	rules := board.Rules{Size: 100}
	tests := []struct {
		name string
		cell board.Cell
		want string
	}{
		{"Plain", board.Cell{Number: 5, LadderTo: board.None, SnakeTo: board.None}, "[5] -> "},
		{"Snake", board.Cell{Number: 13, LadderTo: board.None, SnakeTo: 4}, "[13]-snake to 4 -> "},
		{"Ladder", board.Cell{Number: 8, LadderTo: 30, SnakeTo: board.None}, "[8]-ladder to 30 -> "},
		{"Last", board.Cell{Number: 100, LadderTo: board.None, SnakeTo: board.None}, "[100]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var sb strings.Builder
			require.NoError(t, rules.Print(&sb, tt.cell))
			assert.Equal(t, tt.want, sb.String())
		})
	}
}

func TestRules_CompareByNumber(t *testing.T) {
	rules := board.Rules{Size: 10}
	assert.Zero(t, rules.Compare(board.Cell{Number: 3}, board.Cell{Number: 3, SnakeTo: 1}))
	assert.NotZero(t, rules.Compare(board.Cell{Number: 3}, board.Cell{Number: 4}))
}
