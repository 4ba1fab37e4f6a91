// Package cli implements the svgscene command-line interface.
//
// This package provides commands for rendering TOML scene descriptions to
// SVG files, writing a built-in sample scene, listing the color palette,
// and serving a scene over HTTP. The CLI is built using cobra and supports
// verbose logging via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - render: Build an SVG file from a TOML scene description
//   - demo: Write a sample SVG showing the supported shape types
//   - palette: List the named palette colors
//   - serve: Serve a scene over HTTP, re-rendering on every request
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

	"github.com/matzehuels/svgscene/pkg/buildinfo"
)

// Execute runs the svgscene CLI and returns an error if any command fails.
//
// The function sets up the root command with all subcommands (render, demo,
// palette, serve), configures logging based on the --verbose flag, and
// executes the command tree against ctx.
//
// Logging:
//   - Default: info level (logs to stderr)
//   - With --verbose (-v): debug level
func Execute(ctx context.Context) error {
	var verbose bool

	root := &cobra.Command{
		Use:          "svgscene",
		Short:        "svgscene builds SVG diagrams from 2-D vector scenes",
		Long:         `svgscene is a CLI tool and library for assembling 2-D vector scenes (shapes, styling, simple charts) and emitting them as standalone SVG documents.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newRenderCmd())
	root.AddCommand(newDemoCmd())
	root.AddCommand(newPaletteCmd())
	root.AddCommand(newServeCmd())

	return root.ExecuteContext(ctx)
}
