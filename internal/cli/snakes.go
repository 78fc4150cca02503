package cli

import (
	"fmt"

	"github.com/aretw0/markov/pkg/board"
	"github.com/aretw0/markov/pkg/chain"
)

// RunSnakes prints opts.Count random routes over a snakes-and-ladders board.
func RunSnakes(opts SnakesOptions) (err error) {
	s, err := newSession(opts.Options, "snakes")
	if err != nil {
		return err
	}
	defer func() {
		if cerr := s.close(); err == nil {
			err = cerr
		}
	}()

	cfg, c, err := buildBoard(s, opts.BoardPath, opts.Seed)
	if err != nil {
		return err
	}
	defer c.Close()

	maxLen := cfg.MaxRouteLength
	if opts.MaxLength > 0 {
		maxLen = opts.MaxLength
	}
	start, ok := board.Start(c)
	if !ok {
		return fmt.Errorf("board has no first cell")
	}

	s.logger.Info("generating routes", "count", opts.Count, "max_length", maxLen, "cells", c.Len())
	return printWalks(s, c, "Random Walk", opts.Count, maxLen, func() chain.StateID { return start })
}

func loadBoardConfig(path string) (board.Config, error) {
	if path == "" {
		return board.DefaultConfig(), nil
	}
	return board.LoadConfig(path)
}

func buildBoard(s *session, path string, seed uint64) (board.Config, *chain.Chain[board.Cell], error) {
	cfg, err := loadBoardConfig(path)
	if err != nil {
		return board.Config{}, nil, err
	}
	c, err := board.Build(cfg, s.chainOptions(seed)...)
	if err != nil {
		return board.Config{}, nil, fmt.Errorf("failed to build board: %w", err)
	}
	return cfg, c, nil
}
