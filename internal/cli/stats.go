package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/aretw0/markov/internal/presentation/tui"
	"github.com/aretw0/markov/pkg/chain"
)

// StatsOptions configures the chain summary.
// With an empty CorpusPath the board is summarised.
type StatsOptions struct {
	Options
	CorpusPath string
	BoardPath  string
	Limit      int
	Top        int
}

// RunStats writes a Markdown summary of a chain.
// It is rendered with glamour when the output is a terminal.
func RunStats(opts StatsOptions) (err error) {
	s, err := newSession(opts.Options, "stats")
	if err != nil {
		return err
	}
	defer func() {
		if cerr := s.close(); err == nil {
			err = cerr
		}
	}()

	var md string
	if opts.CorpusPath != "" {
		c, err := buildTweets(s, opts.CorpusPath, opts.Limit, 0)
		if err != nil {
			return err
		}
		defer c.Close()
		if md, err = statsMarkdown("Corpus "+opts.CorpusPath, c, opts.Top); err != nil {
			return err
		}
	} else {
		_, c, err := buildBoard(s, opts.BoardPath, 0)
		if err != nil {
			return err
		}
		defer c.Close()
		if md, err = statsMarkdown("Board", c, opts.Top); err != nil {
			return err
		}
	}

	if f, ok := s.opts.Out.(*os.File); ok && tui.IsTerminal(f) {
		rendered, err := tui.NewRenderer()(md)
		if err != nil {
			s.logger.Warn("markdown rendering failed", "error", err)
		} else {
			md = rendered
		}
	}
	_, err = fmt.Fprint(s.opts.Out, md)
	return err
}

func statsMarkdown[T any](title string, c *chain.Chain[T], top int) (string, error) {
	st := c.Stats()

	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n\n", title)
	sb.WriteString("| Metric | Value |\n|---|---|\n")
	fmt.Fprintf(&sb, "| States | %d |\n", st.States)
	fmt.Fprintf(&sb, "| Terminal states | %d |\n", st.Terminal)
	fmt.Fprintf(&sb, "| Edges | %d |\n", st.Edges)
	fmt.Fprintf(&sb, "| Observations | %d |\n", st.Observations)
	fmt.Fprintf(&sb, "| Dead ends | %d |\n", st.DeadEnds)
	fmt.Fprintf(&sb, "| Max fan-out | %d |\n", st.MaxFanOut)

	if top <= 0 {
		return sb.String(), nil
	}
	fmt.Fprintf(&sb, "\n## Top %d states\n\n", top)
	sb.WriteString("| State | Weight | Successors |\n|---|---|---|\n")
	for _, sw := range c.Heaviest(top) {
		var label strings.Builder
		v, err := c.Payload(sw.ID)
		if err != nil {
			return "", err
		}
		if err := c.Print(&label, v); err != nil {
			return "", fmt.Errorf("failed to print state %d: %w", sw.ID, err)
		}
		name := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(label.String()), "->"))
		fmt.Fprintf(&sb, "| `%s` | %d | %d |\n", strings.ReplaceAll(name, "|", "\\|"), sw.Weight, sw.FanOut)
	}
	return sb.String(), nil
}
