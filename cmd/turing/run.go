package main

import (
	"github.com/spf13/cobra"

	"github.com/aretw0/turing/internal/cli"
	"github.com/aretw0/turing/pkg/runner"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run MACHINE [TAPE_FILE]",
	Short: "Run a machine on a tape",
	Long: `Loads MACHINE, runs it on the tape given with -T (or read from TAPE_FILE)
and prints the outcome. Exits 0 when the machine accepts and 1 when it does not.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		tape, _ := cmd.Flags().GetString("tape")
		store, _ := cmd.Flags().GetBool("store")

		opts := cli.RunOptions{
			Machine: args[0],
			Tape:    tape,
			HasTape: cmd.Flags().Changed("tape"),
			Store:   store,
		}
		if len(args) > 1 {
			opts.TapeFile = args[1]
		}

		sm := runner.NewSignalManagerWithParent(cmd.Context())
		defer sm.Stop()

		_, err := app.Run(sm.Context(), opts)
		return err
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringP("tape", "T", "", "Initial tape content")
	runCmd.Flags().BoolP("nondeterministic", "n", false, "Use the non-deterministic engine")
	runCmd.Flags().IntP("limit", "l", 0, "Stop after this many steps (0: unbounded)")
	runCmd.Flags().Bool("store", false, "Save the result in the run history")
}
