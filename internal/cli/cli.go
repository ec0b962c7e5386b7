// Package cli implements the treestruct command-line interface.
//
// The CLI works on forest JSON files (one {"data", "children"} record per
// root) and provides commands for inspecting, rendering, browsing, storing,
// and serving tree structures. It is built using cobra and supports verbose
// logging via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - inspect: Print structural statistics for a forest file
//   - render: Generate DOT, SVG, or PNG visualizations
//   - browse: Explore a forest interactively in the terminal
//   - store: Save, fetch, list, and delete trees in the configured backend
//   - serve: Run the HTTP API over the configured backend
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context.
package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/treestruct/pkg/buildinfo"
)

// appName is the application name used for directories and display.
const appName = "treestruct"

// Execute runs the treestruct CLI and returns an error if any command fails.
//
// The root command wires up all subcommands, configures logging based on the
// --verbose flag, and attaches the logger to the command context where
// loggerFromContext retrieves it.
func Execute(ctx context.Context) error {
	var verbose bool
	var configPath string

	root := &cobra.Command{
		Use:          appName,
		Short:        "Treestruct builds and visualizes bidirectional tree structures",
		Long:         `Treestruct is a CLI tool for inspecting, rendering, storing, and serving bidirectional tree structures stored as forest JSON files.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			ctx = withConfigPath(ctx, configPath)
			cmd.SetContext(ctx)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.config/treestruct/config.toml)")

	root.AddCommand(newInspectCmd())
	root.AddCommand(newRenderCmd())
	root.AddCommand(newBrowseCmd())
	root.AddCommand(newServeCmd())
	root.AddCommand(newStoreCmd())
	root.AddCommand(newCompletionCmd())

	return root.ExecuteContext(ctx)
}
