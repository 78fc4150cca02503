package main

import (
	"github.com/aretw0/markov/internal/cli"
	"github.com/aretw0/markov/pkg/corpus"
	"github.com/spf13/cobra"
)

// statsCmd represents the stats command
var statsCmd = &cobra.Command{
	Use:   "stats [corpus]",
	Short: "Summarise the shape of a chain",
	Args:  usageArgs(cobra.MaximumNArgs(1)),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, cfg, err := resolveOptions(cmd)
		if err != nil {
			return err
		}
		s := cli.StatsOptions{
			Options:   opts,
			BoardPath: cfg.BoardPath,
			Limit:     corpus.Unlimited,
		}
		if len(args) == 1 {
			s.CorpusPath = args[0]
		}
		if cmd.Flags().Changed("board") {
			s.BoardPath, _ = cmd.Flags().GetString("board")
		}
		s.Limit, _ = cmd.Flags().GetInt("words")
		s.Top, _ = cmd.Flags().GetInt("top")
		return cli.RunStats(s)
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)

	statsCmd.Flags().String("board", "", "YAML board definition")
	statsCmd.Flags().Int("words", -1, "Maximum number of corpus words to read")
	statsCmd.Flags().Int("top", 10, "Number of heaviest states to list")
}
