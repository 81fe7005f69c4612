package pipeline

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/asciisketch/pkg/canvas"
	"github.com/matzehuels/asciisketch/pkg/diagram"
	"github.com/matzehuels/asciisketch/pkg/errors"
	"github.com/matzehuels/asciisketch/pkg/observability"
	"github.com/matzehuels/asciisketch/pkg/render/nodelink"
)

// Runner executes the pipeline.
//
// The Runner is stateless except for the logger - it doesn't store
// pipeline results. Multiple goroutines can safely use the same Runner
// with different options.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. If logger is nil, log.Default() is used.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Execute runs the complete classify → parse → layout → render pipeline on
// text. The context is checked between stages.
func (r *Runner) Execute(ctx context.Context, text string, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	mode, err := r.Classify(text, opts)
	if err != nil {
		return nil, err
	}
	result := &Result{Mode: mode}
	r.logger().Debug("pipeline options", "options", opts.String())

	var c *canvas.Canvas
	switch mode {
	case ModeWireframe:
		c, err = r.renderWireframe(ctx, text, opts, result)
	default:
		c, err = r.renderDiagram(ctx, text, opts, result)
	}
	if err != nil {
		return nil, err
	}

	result.Lines = c.Flatten(opts.Compact)
	result.Text = strings.Join(result.Lines, "\n")
	result.Stats.Width = c.Width()
	result.Stats.Height = c.Height()
	result.Stats.Collisions = c.Collisions()

	diag := observability.Diagnostics()
	for _, w := range result.Warnings {
		diag.OnWarning(ctx, string(w.Code), w.Line)
		r.logger().Debug("layout warning", "line", w.Line, "message", w.Message)
	}
	if c.Collisions() > 0 {
		diag.OnCollision(ctx, result.Kind, c.Collisions())
	}

	r.logger().Debug("rendered",
		"kind", result.Kind,
		"width", result.Stats.Width,
		"height", result.Stats.Height,
		"warnings", len(result.Warnings))
	return result, nil
}

// Classify resolves the mode for text under opts, failing with
// INVALID_INPUT when auto detection finds nothing.
func (r *Runner) Classify(text string, opts Options) (Mode, error) {
	mode := resolveMode(text, opts)
	r.logger().Debug("classified input", "mode", mode, "path", opts.Path, "forced", opts.ForceMode)
	if mode == ModeUnknown {
		return mode, errors.New(errors.ErrCodeInvalidInput,
			"cannot tell whether the input is a wireframe or a diagram; use --wireframe or --mermaid")
	}
	return mode, nil
}

// DOT parses text as a flowchart and returns it as Graphviz DOT. With
// layout set, the graph is additionally laid out by Graphviz and returned
// in xdot format.
func (r *Runner) DOT(ctx context.Context, text string, detailed, layout bool) ([]byte, error) {
	d, err := diagram.Parse(text)
	if err != nil {
		return nil, err
	}
	if d.Kind != diagram.KindFlowchart {
		return nil, errors.New(errors.ErrCodeUnsupported, "DOT export supports flowcharts only, got %s", d.Kind)
	}
	dot := nodelink.ToDOT(d.Flowchart, nodelink.Options{Detailed: detailed})
	if !layout {
		return []byte(dot), nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := time.Now()
	out, err := nodelink.Layout(ctx, dot)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "graphviz layout")
	}
	r.logger().Debug("graphviz layout", "nodes", len(d.Flowchart.Nodes), "duration", time.Since(start))
	return out, nil
}

func (r *Runner) logger() *log.Logger {
	if r.Logger == nil {
		return log.Default()
	}
	return r.Logger
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.logger()
	}
}
