package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/turing/internal/cli"
	"github.com/aretw0/turing/internal/config"
)

// app is set up by the root command before any subcommand runs.
var app *cli.App

var rootCmd = &cobra.Command{
	Use:   "turing",
	Short: "Turing is a deterministic and non-deterministic Turing machine simulator",
	Long: `Turing reads machine descriptions (text .tm or YAML) and runs them on a tape.
Non-deterministic machines explore every choice and accept if any path accepts.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfgFile, _ := cmd.Flags().GetString("config")
		cfg, err := config.Load(cfgFile, cmd.Flags())
		if err != nil {
			return &cli.ExitError{Code: cli.ExitInput, Err: err}
		}
		app, err = cli.NewApp(cfg, os.Stdout)
		return err
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if app != nil {
			return app.Close()
		}
		return nil
	},
}

// Execute adds all child commands to the root command and exits with the
// code matching the outcome.
func Execute() {
	err := rootCmd.Execute()
	if app != nil {
		app.Close()
	}

	code := cli.ExitCode(err)
	if err != nil && !errors.Is(err, cli.ErrNotAccepted) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	os.Exit(code)
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", "", "Config file (default: ./turing.yaml)")
	rootCmd.PersistentFlags().Bool("debug", false, "Log every engine step to stderr")
	rootCmd.PersistentFlags().String("log-file", "", "Also write JSON logs to this file")
	rootCmd.PersistentFlags().String("redis-addr", "", "Redis address of the run history")
	rootCmd.PersistentFlags().String("history-dir", "", "Keep run history as JSON files in this directory instead of Redis")
	rootCmd.PersistentFlags().String("output", "", "Output format: text, json or markdown")
}
