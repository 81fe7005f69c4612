package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	pkgio "github.com/matzehuels/asciisketch/pkg/io"
	"github.com/matzehuels/asciisketch/pkg/pipeline"
)

// renderFlags holds the command-line flags shared by render and the root
// command.
type renderFlags struct {
	mermaid   bool   // force Mermaid mode
	wireframe bool   // force wireframe mode
	ascii     bool   // restrict output to ASCII
	compact   bool   // trim trailing spaces and blank lines
	overflow  string // wrap or error
	output    string // output file, stdout when empty
	stats     bool   // print layout statistics to stderr
}

// addRenderFlags registers the render flags on cmd.
func addRenderFlags(cmd *cobra.Command, f *renderFlags) {
	cmd.Flags().BoolVar(&f.mermaid, "mermaid", false, "treat the input as a Mermaid diagram")
	cmd.Flags().BoolVar(&f.wireframe, "wireframe", false, "treat the input as a YAML wireframe")
	cmd.Flags().BoolVar(&f.ascii, "ascii", false, "use only ASCII characters")
	cmd.Flags().BoolVar(&f.compact, "compact", false, "trim trailing spaces and blank lines")
	cmd.Flags().StringVar(&f.overflow, "overflow", pipeline.DefaultOverflow, "overflow policy: wrap (default), error")
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().BoolVar(&f.stats, "stats", false, "print layout statistics to stderr")
	cmd.MarkFlagsMutuallyExclusive("mermaid", "wireframe")
}

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	var flags renderFlags

	cmd := &cobra.Command{
		Use:   "render [file|-]",
		Short: "Render a wireframe or diagram as text",
		Long: `Render a wireframe or diagram as text.

The input is read from file, or from stdin when file is "-" or omitted.
Wireframes are YAML documents of panels and components; diagrams are
Mermaid-style flowcharts (graph/flowchart) or sequence diagrams.

Layout warnings are printed to stderr and never mixed into the drawing.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd, args, flags)
		},
	}
	addRenderFlags(cmd, &flags)
	return cmd
}

// resolveOptions layers explicitly set flags over the config file.
func (c *CLI) resolveOptions(cmd *cobra.Command, f renderFlags) (pipeline.Options, error) {
	opts, err := c.loadOptions()
	if err != nil {
		return opts, err
	}
	changed := cmd.Flags().Changed

	switch {
	case f.mermaid:
		opts.ForceMode = pipeline.ForceMermaid
	case f.wireframe:
		opts.ForceMode = pipeline.ForceWireframe
	}
	if changed("ascii") {
		opts.ASCIIOnly = f.ascii
	}
	if changed("compact") {
		opts.Compact = f.compact
	}
	if changed("overflow") {
		opts.Overflow = f.overflow
	}
	return opts, opts.ValidateAndSetDefaults()
}

// runRender reads the input, renders it and writes the drawing.
func (c *CLI) runRender(cmd *cobra.Command, args []string, f renderFlags) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	opts, err := c.resolveOptions(cmd, f)
	if err != nil {
		return err
	}

	src, err := c.readInput(args)
	if err != nil {
		return err
	}
	if src.Name != pkgio.Stdin {
		opts.Path = src.Name
	}
	logger.Debug("read input", "name", src.Name, "bytes", len(src.Text))

	result, err := c.newRunner().Execute(ctx, src.Text, opts)
	if err != nil {
		return fmt.Errorf("render %s: %w", src.Name, err)
	}
	printWarnings(c.Stderr, result.Warnings)

	if f.stats {
		fmt.Fprintln(c.Stderr, renderStats(result))
	}

	if f.output == "" {
		return pkgio.WriteLines(c.Stdout, result.Lines)
	}
	if err := pkgio.ExportLines(f.output, result.Lines); err != nil {
		return err
	}
	printFile(c.Stderr, f.output)
	return nil
}

// readInput reads the single optional file argument, or stdin.
func (c *CLI) readInput(args []string) (*pkgio.Source, error) {
	path := pkgio.Stdin
	if len(args) > 0 {
		path = args[0]
	}
	return pkgio.ImportSource(path, c.Stdin)
}
