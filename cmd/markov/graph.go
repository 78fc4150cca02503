package main

import (
	"github.com/aretw0/markov/internal/cli"
	"github.com/aretw0/markov/pkg/corpus"
	"github.com/spf13/cobra"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph [corpus]",
	Short: "Export the chain as a Mermaid diagram",
	Long: `Builds the board chain, or the word chain of [corpus] when given, and outputs a
Mermaid diagram (graph TD) with edges labelled by observed frequency.`,
	Args: usageArgs(cobra.MaximumNArgs(1)),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, cfg, err := resolveOptions(cmd)
		if err != nil {
			return err
		}
		g := cli.GraphOptions{
			Options:   opts,
			BoardPath: cfg.BoardPath,
			Limit:     corpus.Unlimited,
		}
		if len(args) == 1 {
			g.CorpusPath = args[0]
		}
		if cmd.Flags().Changed("board") {
			g.BoardPath, _ = cmd.Flags().GetString("board")
		}
		if cmd.Flags().Changed("words") {
			g.Limit, _ = cmd.Flags().GetInt("words")
		}
		if cmd.Flags().Changed("walk") {
			g.Overlay = true
			seed, _ := cmd.Flags().GetString("walk")
			if g.Seed, err = cli.ParseSeed(seed); err != nil {
				return err
			}
		}
		return cli.RunGraph(g)
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)

	graphCmd.Flags().String("board", "", "YAML board definition")
	graphCmd.Flags().Int("words", -1, "Maximum number of corpus words to read")
	graphCmd.Flags().String("walk", "", "Highlight one walk generated with this seed")
}
