package main

import (
	"github.com/aretw0/markov/internal/cli"
	"github.com/aretw0/markov/pkg/corpus"
	"github.com/spf13/cobra"
)

// tweetsCmd represents the tweets command
var tweetsCmd = &cobra.Command{
	Use:   "tweets <seed> <count> <corpus> [words]",
	Short: "Print tweets generated from a text corpus",
	Long: `Learns word transitions from <corpus>, reading at most [words] words when given,
and prints <count> tweets of up to 20 words each. A negative [words] reads the
whole corpus; use "--" before negative arguments.`,
	Args: usageArgs(cobra.RangeArgs(3, 4)),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, cfg, err := resolveOptions(cmd)
		if err != nil {
			return err
		}
		seed, count, err := parseWalkArgs(args)
		if err != nil {
			return err
		}

		limit := corpus.Unlimited
		if len(args) == 4 {
			if limit, err = cli.ParseLimit(args[3]); err != nil {
				return err
			}
		}

		return cli.RunTweets(cli.TweetsOptions{
			Options:    opts,
			Seed:       seed,
			Count:      count,
			CorpusPath: args[2],
			Limit:      limit,
			MaxLength:  cfg.TweetLength,
		})
	},
}

func init() {
	rootCmd.AddCommand(tweetsCmd)
}
