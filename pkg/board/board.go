package board

import (
	"fmt"

	"github.com/aretw0/markov/pkg/chain"
)

// Cells lays out the board described by cfg.
func Cells(cfg Config) []Cell {
	cells := make([]Cell, cfg.Size)
	for i := range cells {
		cells[i] = Cell{Number: i + 1, LadderTo: None, SnakeTo: None}
	}
	for _, j := range cfg.Jumps {
		if j.IsLadder() {
			cells[j.From-1].LadderTo = j.To
		} else {
			cells[j.From-1].SnakeTo = j.To
		}
	}
	return cells
}

// Populate registers every cell of the board in c, in board order, and records its transitions.
func Populate(c *chain.Chain[Cell], cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	cells := Cells(cfg)

	ids := make([]chain.StateID, len(cells))
	for i, cell := range cells {
		id, err := c.Add(cell)
		if err != nil {
			return fmt.Errorf("failed to add cell %d: %w", cell.Number, err)
		}
		ids[i] = id
	}

	for i, cell := range cells {
		if to, ok := cell.Jump(); ok {
			if err := c.RecordTransition(ids[i], ids[to-1]); err != nil {
				return fmt.Errorf("failed to link cell %d: %w", cell.Number, err)
			}
			continue
		}
		for roll := 1; roll <= cfg.Dice; roll++ {
			next := cell.Number + roll
			if next > cfg.Size {
				break
			}
			if err := c.RecordTransition(ids[i], ids[next-1]); err != nil {
				return fmt.Errorf("failed to link cell %d: %w", cell.Number, err)
			}
		}
	}
	return nil
}

// Build creates a chain for the board described by cfg.
func Build(cfg Config, opts ...chain.Option) (*chain.Chain[Cell], error) {
	c, err := chain.New[Cell](Rules{Size: cfg.Size}, opts...)
	if err != nil {
		return nil, err
	}
	if err := Populate(c, cfg); err != nil {
		c.Close()
		return nil, err
	}
	return c, nil
}

// Start returns the state of the first cell, where every route begins.
func Start(c *chain.Chain[Cell]) (chain.StateID, bool) {
	return c.Find(Cell{Number: 1})
}
