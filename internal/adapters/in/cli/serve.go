package cli

import (
	"github.com/spf13/cobra"

	"github.com/nexuslab/nexus/internal/app"
)

// newServeCmd creates the serve command.
func newServeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Watch running workspaces for crashes",
		Long: `Reconcile every workspace record with the container runtime, then resume
crash monitoring for running workspaces until interrupted. A crashed
workspace is recorded in the error status.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.Serve(cmd.Context(), opts.configPath)
		},
	}
}
