package main

import (
	"github.com/aretw0/markov/internal/cli"
	"github.com/spf13/cobra"
)

// snakesCmd represents the snakes command
var snakesCmd = &cobra.Command{
	Use:   "snakes <seed> <count>",
	Short: "Print random routes over a snakes-and-ladders board",
	Long: `Builds the 100-cell snakes-and-ladders board (or the one given with --board)
and prints <count> random routes starting at cell 1.`,
	Args: usageArgs(cobra.ExactArgs(2)),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, cfg, err := resolveOptions(cmd)
		if err != nil {
			return err
		}
		seed, count, err := parseWalkArgs(args)
		if err != nil {
			return err
		}

		boardPath := cfg.BoardPath
		if cmd.Flags().Changed("board") {
			boardPath, _ = cmd.Flags().GetString("board")
		}
		maxLength := cfg.RouteLength
		if cmd.Flags().Changed("max-length") {
			maxLength, _ = cmd.Flags().GetInt("max-length")
		}

		return cli.RunSnakes(cli.SnakesOptions{
			Options:   opts,
			Seed:      seed,
			Count:     count,
			BoardPath: boardPath,
			MaxLength: maxLength,
		})
	},
}

func init() {
	rootCmd.AddCommand(snakesCmd)

	snakesCmd.Flags().String("board", "", "YAML board definition (default: classic 100-cell board)")
	snakesCmd.Flags().Int("max-length", 0, "Maximum cells per route (default: the board's limit)")
}
