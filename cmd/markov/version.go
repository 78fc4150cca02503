package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/markov"
	"github.com/aretw0/markov/internal/presentation/tui"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of markov",
	Run: func(cmd *cobra.Command, args []string) {
		color, _ := cmd.Flags().GetBool("color")
		if banner, _ := cmd.Flags().GetBool("banner"); banner {
			tui.PrintBanner(cmd.OutOrStdout(), markov.Version, color)
			return
		}
		fmt.Fprintf(cmd.OutOrStdout(), "markov version %s\n", strings.TrimSpace(markov.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)

	versionCmd.Flags().Bool("banner", false, "Print the ASCII banner")
}
