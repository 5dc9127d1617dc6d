package main

import (
	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history [ID]",
	Short: "List stored runs or show one of them",
	Long:  `Reads the run history kept in Redis by 'turing run --store' and 'turing serve'.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("last")
		id := ""
		if len(args) > 0 {
			id = args[0]
		}
		return app.History(cmd.Context(), id, limit)
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().Int("last", 20, "Number of runs to list (0: all)")
}
