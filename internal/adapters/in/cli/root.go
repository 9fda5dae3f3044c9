// Package cli implements the CLI adapter for nexus.
// This package provides Cobra commands that delegate to the app layer.
package cli

import (
	"context"
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/nexuslab/nexus/internal/app"
	"github.com/nexuslab/nexus/internal/boundaries/in"
)

var (
	// Version information (set at build time)
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

// rootOptions holds the global flags.
type rootOptions struct {
	configPath string
}

// NewRootCmd creates the root command for the nexus CLI.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "nexus",
		Short: "nexus - isolated development workspaces on a container runtime",
		Long: `nexus creates, starts, stops and removes development workspaces.

Each workspace is a container with its own host ports, optionally backed by a
git worktree of a local repository. Workspace records live under the data
directory and are safe to use from several nexus processes at once.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "Path to config file")

	rootCmd.AddCommand(newCreateCmd(opts))
	rootCmd.AddCommand(newStartCmd(opts))
	rootCmd.AddCommand(newStopCmd(opts))
	rootCmd.AddCommand(newRemoveCmd(opts))
	rootCmd.AddCommand(newStatusCmd(opts))
	rootCmd.AddCommand(newListCmd(opts))
	rootCmd.AddCommand(newExecCmd(opts))
	rootCmd.AddCommand(newLogsCmd(opts))
	rootCmd.AddCommand(newServeCmd(opts))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	ctx := context.Background()
	if err := NewRootCmd().ExecuteContext(ctx); err != nil {
		var exitErr *exitCodeError
		if errors.As(err, &exitErr) {
			return exitErr.code
		}
		_ = cliWriteLine(os.Stderr, describeError(err))
		return 1
	}
	return 0
}

// withWorkspaces opens a kernel for the duration of fn.
func withWorkspaces(cmd *cobra.Command, opts *rootOptions, fn func(ctx context.Context, svc in.WorkspaceService) error) error {
	kernel, err := app.NewKernel(opts.configPath)
	if err != nil {
		return err
	}
	defer kernel.Close()

	return fn(kernel.Context(cmd.Context()), kernel.Workspaces())
}

// newVersionCmd creates the version command.
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Printf("nexus %s\n", Version)
			cmd.Printf("Commit: %s\n", Commit)
			cmd.Printf("Build Date: %s\n", BuildDate)
		},
	}
}

// SetVersionInfo sets the version information for the CLI.
func SetVersionInfo(version, commit, date string) {
	Version = version
	Commit = commit
	BuildDate = date
}
