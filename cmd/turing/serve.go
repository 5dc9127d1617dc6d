package main

import (
	"github.com/spf13/cobra"

	"github.com/aretw0/turing/internal/cli"
	"github.com/aretw0/turing/pkg/runner"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long: `Exposes POST /v1/runs, GET /v1/runs, GET /v1/runs/{id}, /healthz and /metrics.
Runs are stored in Redis unless --memory is given.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		memory, _ := cmd.Flags().GetBool("memory")

		sm := runner.NewSignalManagerWithParent(cmd.Context())
		defer sm.Stop()

		return app.Serve(sm.Context(), cli.ServeOptions{Memory: memory})
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("addr", "", "Address to listen on (default :8080)")
	serveCmd.Flags().Bool("memory", false, "Keep runs in memory instead of Redis")
	serveCmd.Flags().IntP("limit", "l", 0, "Default step limit for requests without one")
}
