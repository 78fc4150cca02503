package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/aretw0/markov/internal/presentation/graph"
	"github.com/aretw0/markov/pkg/board"
	"github.com/aretw0/markov/pkg/chain"
)

// GraphOptions configures the Mermaid export.
// With an empty CorpusPath the board is exported.
type GraphOptions struct {
	Options
	CorpusPath string
	BoardPath  string
	Limit      int
	// Overlay highlights one walk generated with Seed.
	Overlay bool
	Seed    uint64
}

// RunGraph writes the Mermaid diagram of a chain.
func RunGraph(opts GraphOptions) (err error) {
	s, err := newSession(opts.Options, "graph")
	if err != nil {
		return err
	}
	defer func() {
		if cerr := s.close(); err == nil {
			err = cerr
		}
	}()

	if opts.CorpusPath != "" {
		c, err := buildTweets(s, opts.CorpusPath, opts.Limit, opts.Seed)
		if err != nil {
			return err
		}
		defer c.Close()
		return writeGraph(s.opts.Out, c, nil, opts.Overlay, chain.NoState, DefaultTweetLength)
	}

	cfg, c, err := buildBoard(s, opts.BoardPath, opts.Seed)
	if err != nil {
		return err
	}
	defer c.Close()
	start, _ := board.Start(c)
	label := func(cell board.Cell) string {
		if to, ok := cell.Jump(); ok {
			return fmt.Sprintf("%d to %d", cell.Number, to)
		}
		return strconv.Itoa(cell.Number)
	}
	return writeGraph(s.opts.Out, c, label, opts.Overlay, start, cfg.MaxRouteLength)
}

func writeGraph[T any](out io.Writer, c *chain.Chain[T], label func(T) string, overlay bool, start chain.StateID, maxLen int) error {
	var ov *graph.Overlay
	if overlay {
		w, err := c.Walk(start, maxLen)
		if err != nil {
			return err
		}
		ov = &graph.Overlay{Current: chain.NoState}
		for w.Next() {
			ov.Visited = append(ov.Visited, w.State())
			ov.Current = w.State()
		}
	}
	_, err := io.WriteString(out, graph.GenerateMermaid(c, label, ov))
	return err
}
