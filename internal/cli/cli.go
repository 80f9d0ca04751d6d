// Package cli implements the sciplot command-line interface.
//
// This package provides commands for inspecting the registered size and
// style profiles, rendering preview figures, and running a local preview
// gallery server. The CLI is built using cobra and supports verbose logging
// via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - formats: List registered size and style profiles with their metrics
//   - preview: Render a demonstration figure for a chosen format
//   - serve: Run a local HTTP server with on-demand format previews
//   - completion: Generate shell completion scripts
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/sciplot/pkg/buildinfo"
	"github.com/matzehuels/sciplot/pkg/observability"
	"github.com/matzehuels/sciplot/pkg/sizes"
)

// appName is the application name used for display and completions.
const appName = "sciplot"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Sciplot sizes and styles figures for scientific publications",
		Long:         `Sciplot is a thin layer over gonum/plot that picks font sizes, line widths and figure dimensions for publication formats (journal columns, posters) and rendering styles (typeset LaTeX, MATLAB-like).`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			observability.SetRenderHooks(logHooks{logger: c.Logger})
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.formatsCommand())
	root.AddCommand(c.previewCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// loadProfiles merges user-defined size profiles from a TOML file into the
// registry before a command runs. An empty path is a no-op.
func loadProfiles(path string) error {
	if path == "" {
		return nil
	}
	return sizes.RegisterFile(path)
}
