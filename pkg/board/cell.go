package board

import (
	"cmp"
	"fmt"
	"io"
)

// None marks a cell without a ladder or a snake.
const None = -1

// Cell is a square of the board.
type Cell struct {
	// Number is the 1-based position of the cell.
	Number int
	// LadderTo is the destination of a ladder starting here, or None.
	LadderTo int
	// SnakeTo is the destination of a snake starting here, or None.
	SnakeTo int
}

// Jump returns the destination of the ladder or snake on this cell.
func (c Cell) Jump() (int, bool) {
	switch {
	case c.LadderTo != None:
		return c.LadderTo, true
	case c.SnakeTo != None:
		return c.SnakeTo, true
	}
	return None, false
}

// Rules is the chain capability set for cells of a board of Size cells.
type Rules struct {
	Size int
}

func (r Rules) Print(w io.Writer, c Cell) error {
	if _, err := fmt.Fprintf(w, "[%d]", c.Number); err != nil {
		return err
	}
	if c.SnakeTo != None {
		if _, err := fmt.Fprintf(w, "-snake to %d", c.SnakeTo); err != nil {
			return err
		}
	}
	if c.LadderTo != None {
		if _, err := fmt.Fprintf(w, "-ladder to %d", c.LadderTo); err != nil {
			return err
		}
	}
	if !r.IsTerminal(c) {
		if _, err := io.WriteString(w, " -> "); err != nil {
			return err
		}
	}
	return nil
}

func (r Rules) Compare(a, b Cell) int {
	return cmp.Compare(a.Number, b.Number)
}

func (r Rules) Copy(c Cell) (Cell, error) {
	return c, nil
}

func (r Rules) IsTerminal(c Cell) bool {
	return c.Number == r.Size
}
