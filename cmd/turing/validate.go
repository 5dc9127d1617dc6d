package main

import (
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate MACHINE",
	Short: "Check a machine description",
	Long: `Parses MACHINE and builds its representation: every referenced state must be
declared, every symbol must belong to the alphabet and, unless -n is given, no
two transitions may share a state and a symbol.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return app.Validate(args[0])
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
	validateCmd.Flags().BoolP("nondeterministic", "n", false, "Allow several transitions per state and symbol")
}
