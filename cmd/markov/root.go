package main

import (
	"fmt"
	"os"

	"github.com/aretw0/markov/internal/cli"
	"github.com/aretw0/markov/internal/config"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "markov",
	Short: "Markov is a generic Markov-chain generator",
	Long: `Markov builds weighted Markov chains and prints random walks over them:
routes on a snakes-and-ladders board or tweets learned from a text corpus.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().Bool("debug", false, "Write debug logs to stderr")
	rootCmd.PersistentFlags().String("log-level", "", "Log level (debug, info, warn, error); silent when empty")
	rootCmd.PersistentFlags().Bool("color", false, "Colorize generated walks")
	rootCmd.PersistentFlags().Bool("metrics", false, "Dump Prometheus metrics to stderr on exit")
}

// resolveOptions merges the environment configuration with the command line.
// Flags win over environment variables.
func resolveOptions(cmd *cobra.Command) (cli.Options, config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return cli.Options{}, config.Config{}, err
	}

	opts := cli.Options{
		Out:      cmd.OutOrStdout(),
		Err:      cmd.ErrOrStderr(),
		LogLevel: cfg.LogLevel,
		Debug:    cfg.Debug,
		Color:    cfg.Color,
		Metrics:  cfg.Metrics,
	}

	flags := cmd.Flags()
	if flags.Changed("debug") {
		opts.Debug, _ = flags.GetBool("debug")
	}
	if flags.Changed("log-level") {
		opts.LogLevel, _ = flags.GetString("log-level")
	}
	if flags.Changed("color") {
		opts.Color, _ = flags.GetBool("color")
	}
	if flags.Changed("metrics") {
		opts.Metrics, _ = flags.GetBool("metrics")
	}
	return opts, cfg, nil
}

// parseWalkArgs reads the leading <seed> <count> arguments.
func parseWalkArgs(args []string) (uint64, int, error) {
	seed, err := cli.ParseSeed(args[0])
	if err != nil {
		return 0, 0, err
	}
	count, err := cli.ParseCount("count", args[1])
	if err != nil {
		return 0, 0, err
	}
	return seed, count, nil
}
