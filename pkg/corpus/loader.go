package corpus

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/aretw0/markov/pkg/chain"
)

// ErrNoWords is returned when a corpus yields no words to learn from.
var ErrNoWords = errors.New("no words to read")

// Unlimited disables the word limit of Load.
const Unlimited = -1

const maxLineLength = 1 << 20

// Load reads r line by line and feeds every word into c.
// Transitions are only recorded between words of the same line.
// Reading stops once limit words have been consumed; a negative limit reads everything.
// It returns the number of words consumed.
func Load(c *chain.Chain[string], r io.Reader, limit int) (int, error) {
	if limit == 0 {
		return 0, ErrNoWords
	}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), maxLineLength)

	read := 0
	for sc.Scan() {
		prev := chain.NoState
		for _, word := range Tokenize(sc.Text()) {
			if limit > 0 && read >= limit {
				return read, nil
			}
			id, err := c.Add(word)
			if err != nil {
				return read, fmt.Errorf("failed to add word %q: %w", word, err)
			}
			read++
			if prev != chain.NoState {
				if err := c.RecordTransition(prev, id); err != nil {
					return read, fmt.Errorf("failed to record %q: %w", word, err)
				}
			}
			prev = id
		}
	}
	if err := sc.Err(); err != nil {
		return read, fmt.Errorf("failed to read corpus: %w", err)
	}
	if read == 0 {
		return 0, ErrNoWords
	}
	return read, nil
}

// LoadFile opens path and loads it with Load.
func LoadFile(c *chain.Chain[string], path string, limit int) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("failed to open corpus: %w", err)
	}
	defer f.Close()
	return Load(c, f, limit)
}

// Build creates a word chain from r. See Load for the limit semantics.
func Build(r io.Reader, limit int, opts ...chain.Option) (*chain.Chain[string], int, error) {
	c, err := chain.New[string](Words{}, opts...)
	if err != nil {
		return nil, 0, err
	}
	n, err := Load(c, r, limit)
	if err != nil {
		c.Close()
		return nil, n, err
	}
	return c, n, nil
}
