package cli

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/aretw0/markov/pkg/corpus"
)

// ErrInvalidCorpus is returned when the corpus file cannot be opened.
var ErrInvalidCorpus = errors.New("ERROR: The given file is invalid")

// Options contains the settings shared by every program.
type Options struct {
	Out      io.Writer
	Err      io.Writer
	LogLevel string
	Debug    bool
	Color    bool
	Metrics  bool
}

// SnakesOptions configures the snakes-and-ladders generator.
type SnakesOptions struct {
	Options
	Seed      uint64
	Count     int
	BoardPath string
	// MaxLength caps each route; zero uses the board's own limit.
	MaxLength int
}

// TweetsOptions configures the tweet generator.
type TweetsOptions struct {
	Options
	Seed       uint64
	Count      int
	CorpusPath string
	// Limit caps the number of words read; negative reads the whole corpus.
	Limit     int
	MaxLength int
}

// ParseSeed reads a seed argument. Negative seeds are accepted and reinterpreted as unsigned.
func ParseSeed(arg string) (uint64, error) {
	n, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid seed %q: %w", arg, err)
	}
	return uint64(n), nil
}

// ParseCount reads a non-negative count argument.
func ParseCount(name, arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", name, arg, err)
	}
	if n < 0 {
		return 0, fmt.Errorf("invalid %s %d: must not be negative", name, n)
	}
	return n, nil
}

// ParseLimit reads a word limit argument. Any negative value reads the whole corpus.
func ParseLimit(arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("invalid word limit %q: %w", arg, err)
	}
	if n < 0 {
		return corpus.Unlimited, nil
	}
	return n, nil
}
