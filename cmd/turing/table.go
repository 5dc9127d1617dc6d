package main

import (
	"github.com/spf13/cobra"
)

var tableCmd = &cobra.Command{
	Use:   "table MACHINE",
	Short: "Print the states and transition table",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return app.Table(args[0])
	},
}

func init() {
	rootCmd.AddCommand(tableCmd)
	tableCmd.Flags().BoolP("nondeterministic", "n", false, "Allow several transitions per state and symbol")
}
