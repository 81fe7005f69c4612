package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/asciisketch/pkg/diagram"
	pkgio "github.com/matzehuels/asciisketch/pkg/io"
	"github.com/matzehuels/asciisketch/pkg/pipeline"
)

// detectCommand creates the detect command, which prints the mode the
// input would be rendered in.
func (c *CLI) detectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "detect [file|-]",
		Short: "Print whether the input is a wireframe or a diagram",
		Long: `Print whether the input is a wireframe or a diagram.

The file extension wins when it is known (.yaml, .yml, .json, .mmd,
.mermaid); otherwise the content decides. Diagrams also report their kind.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := c.readInput(args)
			if err != nil {
				return err
			}
			opts := pipeline.Options{Logger: c.Logger}
			if src.Name != pkgio.Stdin {
				opts.Path = src.Name
			}
			if err := opts.ValidateAndSetDefaults(); err != nil {
				return err
			}
			mode, err := c.newRunner().Classify(src.Text, opts)
			if err != nil {
				return err
			}
			if mode == pipeline.ModeMermaid {
				fmt.Fprintf(c.Stdout, "%s %s\n", mode, diagram.Detect(src.Text))
				return nil
			}
			fmt.Fprintln(c.Stdout, mode)
			return nil
		},
	}
}
