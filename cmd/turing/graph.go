package main

import (
	"github.com/spf13/cobra"

	"github.com/aretw0/turing/internal/config"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph MACHINE",
	Short: "Export the transition graph visualization",
	Long: `Outputs a Mermaid diagram of MACHINE. With -T the machine is run first and the
states it stopped in are highlighted.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var tape *string
		if cmd.Flags().Changed("tape") {
			t, _ := cmd.Flags().GetString("tape")
			tape = &t
		}
		if tape != nil && app.Config.Limit == 0 {
			app.Config.Limit = config.DefaultGraphLimit
		}
		return app.Graph(cmd.Context(), args[0], tape)
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
	graphCmd.Flags().StringP("tape", "T", "", "Run on this tape and highlight the final states")
	graphCmd.Flags().BoolP("nondeterministic", "n", false, "Use the non-deterministic engine")
	graphCmd.Flags().IntP("limit", "l", 0, "Step limit for the overlay run")
}
