package pipeline

import (
	"context"
	"time"

	"github.com/matzehuels/asciisketch/pkg/canvas"
	"github.com/matzehuels/asciisketch/pkg/diagram"
	"github.com/matzehuels/asciisketch/pkg/observability"
	"github.com/matzehuels/asciisketch/pkg/render/flowchart"
	"github.com/matzehuels/asciisketch/pkg/render/sequence"
	"github.com/matzehuels/asciisketch/pkg/wireframe"
)

const (
	kindWireframe = "wireframe"
	kindFlowchart = "flowchart"
	kindSequence  = "sequence"
)

// renderWireframe parses and renders a wireframe document. Wireframe layout is
// part of rendering, so the layout stage is reported with the render time.
func (r *Runner) renderWireframe(ctx context.Context, text string, opts Options, result *Result) (*canvas.Canvas, error) {
	hooks := observability.Pipeline()
	result.Kind = kindWireframe

	hooks.OnParseStart(ctx, ModeWireframe.String())
	start := time.Now()
	doc, err := wireframe.Parse([]byte(text))
	elements := 0
	if doc != nil {
		elements = len(doc.Panels)
	}
	result.Stats.ParseTime = time.Since(start)
	hooks.OnParseComplete(ctx, ModeWireframe.String(), elements, result.Stats.ParseTime, err)
	if err != nil {
		return nil, err
	}
	result.Stats.Elements = len(doc.Panels)
	for _, p := range doc.Panels {
		result.Stats.Connections += len(p.Components)
	}
	opts.Logger.Debug("parsed wireframe",
		"panels", result.Stats.Elements,
		"components", result.Stats.Connections,
		"layout", doc.Layout,
		"duration", result.Stats.ParseTime)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	hooks.OnRenderStart(ctx, kindWireframe)
	start = time.Now()
	c, warnings, err := wireframe.Render(doc, opts.WireframeOptions())
	result.Stats.RenderTime = time.Since(start)
	if err != nil {
		hooks.OnRenderComplete(ctx, kindWireframe, 0, result.Stats.RenderTime, err)
		return nil, err
	}
	hooks.OnRenderComplete(ctx, kindWireframe, c.Height(), result.Stats.RenderTime, nil)
	result.Warnings = append(result.Warnings, warnings...)

	opts.Logger.Debug("rendered panels", "rows", c.Height(), "duration", result.Stats.RenderTime)
	return c, nil
}

// renderDiagram parses a Mermaid-style diagram and dispatches on its kind.
func (r *Runner) renderDiagram(ctx context.Context, text string, opts Options, result *Result) (*canvas.Canvas, error) {
	hooks := observability.Pipeline()

	hooks.OnParseStart(ctx, ModeMermaid.String())
	start := time.Now()
	d, err := diagram.Parse(text)
	result.Stats.ParseTime = time.Since(start)
	if err != nil {
		hooks.OnParseComplete(ctx, ModeMermaid.String(), 0, result.Stats.ParseTime, err)
		return nil, err
	}
	result.Warnings = append(result.Warnings, d.Warnings...)

	switch d.Kind {
	case diagram.KindSequence:
		s := d.Sequence
		result.Kind = kindSequence
		result.Stats.Elements = len(s.Participants)
		result.Stats.Connections = len(s.Messages)
	default:
		f := d.Flowchart
		result.Kind = kindFlowchart
		result.Stats.Elements = len(f.Nodes)
		result.Stats.Connections = len(f.Edges)
	}
	hooks.OnParseComplete(ctx, ModeMermaid.String(), result.Stats.Elements, result.Stats.ParseTime, nil)
	opts.Logger.Debug("parsed diagram",
		"kind", result.Kind,
		"elements", result.Stats.Elements,
		"connections", result.Stats.Connections,
		"duration", result.Stats.ParseTime)

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if d.Kind == diagram.KindSequence {
		return r.renderSequence(ctx, d.Sequence, opts, result), nil
	}
	return r.renderFlowchart(ctx, d.Flowchart, opts, result), nil
}

func (r *Runner) renderFlowchart(ctx context.Context, f *diagram.Flowchart, opts Options, result *Result) *canvas.Canvas {
	hooks := observability.Pipeline()

	hooks.OnLayoutStart(ctx, kindFlowchart, len(f.Nodes))
	start := time.Now()
	l := flowchart.Compute(f)
	result.Stats.LayoutTime = time.Since(start)
	hooks.OnLayoutComplete(ctx, kindFlowchart, result.Stats.LayoutTime, nil)

	result.Stats.Layers = len(l.Layers)
	result.Stats.Feedback = len(l.Feedback)
	result.Stats.Crossings = l.Crossings
	opts.Logger.Debug("computed layout",
		"direction", f.Direction,
		"layers", result.Stats.Layers,
		"feedback", result.Stats.Feedback,
		"crossings", result.Stats.Crossings,
		"duration", result.Stats.LayoutTime)

	hooks.OnRenderStart(ctx, kindFlowchart)
	start = time.Now()
	c, warnings := flowchart.Draw(f, l, flowchart.Options{Glyphs: opts.Glyphs()})
	result.Stats.RenderTime = time.Since(start)
	hooks.OnRenderComplete(ctx, kindFlowchart, c.Height(), result.Stats.RenderTime, nil)
	result.Warnings = append(result.Warnings, warnings...)
	return c
}

func (r *Runner) renderSequence(ctx context.Context, s *diagram.Sequence, opts Options, result *Result) *canvas.Canvas {
	hooks := observability.Pipeline()

	hooks.OnLayoutStart(ctx, kindSequence, len(s.Participants))
	hooks.OnRenderStart(ctx, kindSequence)
	start := time.Now()
	c, _, warnings := sequence.Render(s, sequence.Options{Glyphs: opts.Glyphs()})
	result.Stats.RenderTime = time.Since(start)
	hooks.OnLayoutComplete(ctx, kindSequence, result.Stats.RenderTime, nil)
	hooks.OnRenderComplete(ctx, kindSequence, c.Height(), result.Stats.RenderTime, nil)
	result.Warnings = append(result.Warnings, warnings...)

	opts.Logger.Debug("rendered sequence",
		"participants", len(s.Participants),
		"messages", len(s.Messages),
		"duration", result.Stats.RenderTime)
	return c
}
