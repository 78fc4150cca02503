package cli

import (
	"fmt"
	"os"

	"github.com/aretw0/markov/pkg/chain"
	"github.com/aretw0/markov/pkg/corpus"
)

// DefaultTweetLength is the maximum number of words per tweet.
const DefaultTweetLength = 20

// RunTweets prints opts.Count tweets generated from the corpus at opts.CorpusPath.
func RunTweets(opts TweetsOptions) (err error) {
	s, err := newSession(opts.Options, "tweets")
	if err != nil {
		return err
	}
	defer func() {
		if cerr := s.close(); err == nil {
			err = cerr
		}
	}()

	c, err := buildTweets(s, opts.CorpusPath, opts.Limit, opts.Seed)
	if err != nil {
		return err
	}
	defer c.Close()

	maxLen := opts.MaxLength
	if maxLen <= 0 {
		maxLen = DefaultTweetLength
	}

	s.logger.Info("generating tweets", "count", opts.Count, "max_length", maxLen, "words", c.Len())
	return printWalks(s, c, "Tweet", opts.Count, maxLen, func() chain.StateID { return chain.NoState })
}

func buildTweets(s *session, path string, limit int, seed uint64) (*chain.Chain[string], error) {
	f, err := os.Open(path)
	if err != nil {
		s.logger.Debug("corpus open failed", "path", path, "error", err)
		return nil, ErrInvalidCorpus
	}
	defer f.Close()

	c, n, err := corpus.Build(f, limit, s.chainOptions(seed)...)
	if err != nil {
		return nil, fmt.Errorf("failed to load corpus: %w", err)
	}
	s.logger.Info("corpus loaded", "path", path, "words_read", n, "distinct", c.Len())
	return c, nil
}
