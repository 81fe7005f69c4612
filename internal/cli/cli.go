// Package cli implements the asciisketch command-line interface.
package cli

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/asciisketch/pkg/buildinfo"
	"github.com/matzehuels/asciisketch/pkg/config"
	"github.com/matzehuels/asciisketch/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for display.
const appName = "asciisketch"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// Stdin, Stdout and Stderr default to the process streams.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	configPath string
}

// New creates a new CLI instance with a default logger writing to w.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: w,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
// Without a subcommand the root renders its argument, like render.
func (c *CLI) RootCommand() *cobra.Command {
	var flags renderFlags

	root := &cobra.Command{
		Use:   "asciisketch [file|-]",
		Short: "asciisketch draws wireframes and diagrams as text",
		Long: `asciisketch renders UI wireframes written in YAML and Mermaid-style
flowcharts and sequence diagrams as Unicode or ASCII box drawings.

The input mode is detected from the file extension or the content. Use
--wireframe or --mermaid to force it.`,
		Version:      buildinfo.Current().Version,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd, args, flags)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/asciisketch/config.toml)")
	addRenderFlags(root, &flags)

	// Register all subcommands
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.detectCommand())
	root.AddCommand(c.dotCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner() *pipeline.Runner {
	return pipeline.NewRunner(c.Logger)
}

// =============================================================================
// Options Helpers
// =============================================================================

// loadOptions builds pipeline options from the config file. Flags are
// applied on top by the caller.
func (c *CLI) loadOptions() (pipeline.Options, error) {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return pipeline.Options{}, err
	}
	c.Logger.Debug("loaded config", "path", c.configPath, "mode", cfg.Mode, "overflow", cfg.Overflow)

	var opts pipeline.Options
	cfg.Apply(&opts)
	opts.Logger = c.Logger
	return opts, nil
}
