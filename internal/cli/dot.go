package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// dotCommand creates the dot command for exporting flowcharts to Graphviz.
func (c *CLI) dotCommand() *cobra.Command {
	var (
		output   string
		layout   bool
		detailed bool
	)

	cmd := &cobra.Command{
		Use:   "dot [file|-]",
		Short: "Export a flowchart as Graphviz DOT",
		Long: `Export a flowchart as Graphviz DOT.

Node shapes, edge labels and edge styles carry over. Edges that close a
cycle are marked constraint=false, matching the text layout's ranking.

With --layout the graph is laid out by Graphviz and printed in xdot format
with node positions.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			src, err := c.readInput(args)
			if err != nil {
				return err
			}

			var spinner *Spinner
			if layout {
				spinner = newSpinnerWithContext(ctx, c.Stderr, "Running graphviz layout...")
				spinner.Start()
			}
			data, err := c.newRunner().DOT(ctx, src.Text, detailed, layout)
			if spinner != nil {
				spinner.Stop()
			}
			if err != nil {
				return fmt.Errorf("dot %s: %w", src.Name, err)
			}
			logger.Debug("generated DOT", "bytes", len(data), "layout", layout)

			out, err := openOutput(output, c.Stdout)
			if err != nil {
				return err
			}
			defer out.Close()
			if _, err := out.Write(data); err != nil {
				return err
			}
			if output != "" {
				printFile(c.Stderr, output)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().BoolVar(&layout, "layout", false, "lay the graph out with graphviz (xdot output)")
	cmd.Flags().BoolVar(&detailed, "detailed", false, "add the computed layer to node labels")

	return cmd
}
