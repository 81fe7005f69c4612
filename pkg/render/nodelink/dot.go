package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/asciisketch/pkg/dag/transform"
	"github.com/matzehuels/asciisketch/pkg/diagram"
)

// Options configures DOT generation.
type Options struct {
	// Detailed appends the computed layer to every node label.
	Detailed bool
}

// ToDOT converts a flowchart to Graphviz DOT. Node ids, labels, shapes,
// edge styles and the flow direction carry over; feedback edges are marked
// with constraint=false so Graphviz ranks nodes the same way the text
// layout does.
func ToDOT(f *diagram.Flowchart, opts Options) string {
	g := f.Graph()
	feedback := transform.EdgeSet(transform.FeedbackEdges(g))
	transform.AssignLayers(g, feedback)

	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	fmt.Fprintf(&buf, "  rankdir=%s;\n", rankdir(f.Direction))
	buf.WriteString("  node [shape=box, fontname=\"monospace\"];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	for _, n := range f.Nodes {
		label := n.Label
		if opts.Detailed {
			if gn, ok := g.Node(n.ID); ok {
				label = fmt.Sprintf("%s\nlayer: %d", label, gn.Row)
			}
		}
		attrs := append([]string{fmt.Sprintf("label=%q", label)}, shapeAttrs(n.Shape)...)
		fmt.Fprintf(&buf, "  %q [%s];\n", n.ID, strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	for i, e := range f.Edges {
		attrs := edgeAttrs(e)
		if feedback[i] {
			attrs = append(attrs, "constraint=false")
		}
		if len(attrs) == 0 {
			fmt.Fprintf(&buf, "  %q -> %q;\n", e.From, e.To)
			continue
		}
		fmt.Fprintf(&buf, "  %q -> %q [%s];\n", e.From, e.To, strings.Join(attrs, ", "))
	}

	buf.WriteString("}\n")
	return buf.String()
}

func rankdir(d diagram.Direction) string {
	switch d {
	case diagram.LeftRight:
		return "LR"
	case diagram.RightLeft:
		return "RL"
	case diagram.BottomUp:
		return "BT"
	}
	return "TB"
}

func shapeAttrs(s diagram.Shape) []string {
	switch s {
	case diagram.ShapeRound:
		return []string{`style="rounded"`}
	case diagram.ShapeStadium:
		return []string{`style="rounded"`, "peripheries=2"}
	case diagram.ShapeDiamond:
		return []string{"shape=diamond"}
	}
	return nil
}

func edgeAttrs(e diagram.Edge) []string {
	var attrs []string
	if e.Label != "" {
		attrs = append(attrs, fmt.Sprintf("label=%q", e.Label))
	}
	switch e.Style {
	case diagram.StyleDotted:
		attrs = append(attrs, "style=dotted")
	case diagram.StyleThick:
		attrs = append(attrs, "style=bold")
	}
	if !e.Head {
		attrs = append(attrs, "arrowhead=none")
	}
	return attrs
}

// Layout runs Graphviz's dot layout on a DOT graph and returns the graph
// annotated with positions (xdot format).
func Layout(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.XDOT, &buf); err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}
	return buf.Bytes(), nil
}
