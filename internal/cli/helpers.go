package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/aretw0/markov/internal/logging"
	"github.com/aretw0/markov/internal/metrics"
	"github.com/aretw0/markov/internal/presentation/tui"
	"github.com/aretw0/markov/pkg/chain"
	"github.com/aretw0/markov/pkg/domain"
)

// session bundles the per-run collaborators.
type session struct {
	opts      Options
	logger    *slog.Logger
	collector *metrics.Collector
	styler    *tui.Styler
}

func newSession(opts Options, name string) (*session, error) {
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.Err == nil {
		opts.Err = os.Stderr
	}
	logger, err := createLogger(opts)
	if err != nil {
		return nil, err
	}
	s := &session{
		opts:   opts,
		logger: logger.With("program", name),
		styler: tui.NewStyler(opts.Out, opts.Color),
	}
	if opts.Metrics {
		s.collector = metrics.New(name)
	}
	return s, nil
}

// createLogger configures the application logger.
// Without debug or an explicit level it stays silent so stdout holds only walks.
func createLogger(opts Options) (*slog.Logger, error) {
	if opts.Debug {
		return logging.New(opts.Err, slog.LevelDebug), nil
	}
	if opts.LogLevel == "" {
		return logging.NewNop(), nil
	}
	level, err := logging.ParseLevel(opts.LogLevel)
	if err != nil {
		return nil, err
	}
	return logging.New(opts.Err, level), nil
}

func createDebugHooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnWalkStart: func(e *domain.WalkEvent) {
			logger.Debug("walk_start", "state_id", e.StateID)
		},
		OnWalkEnd: func(e *domain.WalkEvent) {
			logger.Debug("walk_end", "state_id", e.StateID, "length", e.Step, "reason", e.Reason)
		},
		OnTeardown: func(e *domain.BuildEvent) {
			logger.Error("chain_teardown", "states", e.Count)
		},
	}
}

// chainOptions prepares the functional options for a chain.
func (s *session) chainOptions(seed uint64) []chain.Option {
	opts := []chain.Option{
		chain.WithSeed(seed),
		chain.WithLogger(s.logger),
	}

	var hooks domain.LifecycleHooks
	if s.opts.Debug {
		hooks = createDebugHooks(s.logger)
	}
	if s.collector != nil {
		hooks = s.collector.Hooks(hooks)
	}
	return append(opts, chain.WithLifecycleHooks(hooks))
}

// close flushes the metrics, if enabled.
func (s *session) close() error {
	if s.collector == nil {
		return nil
	}
	return s.collector.WriteText(s.opts.Err)
}

// printWalks writes count walks, one per line, each prefixed by a numbered heading.
// A dead end ends its line early and is logged; the remaining walks still run.
func printWalks[T any](s *session, c *chain.Chain[T], heading string, count, maxLen int, start func() chain.StateID) error {
	out := s.opts.Out
	for i := 1; i <= count; i++ {
		w, err := c.Walk(start(), maxLen)
		if err != nil {
			return err
		}
		if _, err := io.WriteString(out, s.styler.Heading(fmt.Sprintf("%s %d: ", heading, i))); err != nil {
			return err
		}

		var sb strings.Builder
		for w.Next() {
			sb.Reset()
			if err := c.Print(&sb, w.Value()); err != nil {
				return err
			}
			text := sb.String()
			if c.IsTerminal(w.State()) {
				text = s.styler.Terminal(text)
			}
			if _, err := io.WriteString(out, text); err != nil {
				return err
			}
		}
		if err := w.Err(); err != nil {
			s.logger.Warn("walk aborted", "walk", i, "error", err)
			if _, err := io.WriteString(out, s.styler.Error("(dead end)")); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(out, "\n"); err != nil {
			return err
		}
	}
	return nil
}
