package flowchart

import (
	"github.com/matzehuels/asciisketch/pkg/canvas"
	"github.com/matzehuels/asciisketch/pkg/diagram"
	"github.com/matzehuels/asciisketch/pkg/errors"
)

// Options configures flowchart rendering.
type Options struct {
	// Glyphs is the output alphabet. The zero value selects canvas.Unicode.
	Glyphs canvas.Glyphs
}

// Render lays out f and draws it. Warnings report feedback edges and
// labels that had to be drawn over other elements.
func Render(f *diagram.Flowchart, opts Options) (*canvas.Canvas, *Layout, []errors.Warning) {
	l := Compute(f)
	c, warnings := Draw(f, l, opts)
	return c, l, warnings
}

// Draw paints a computed layout: boxes first, then routes in edge order,
// then labels.
func Draw(f *diagram.Flowchart, l *Layout, opts Options) (*canvas.Canvas, []errors.Warning) {
	g := opts.Glyphs
	if g.Name == "" {
		g = canvas.Unicode
	}
	var warn errors.Warnings
	c := canvas.New(l.Width, l.Height)

	for _, b := range l.Boxes {
		c.WriteBox(b.Row, b.Col, b.Width, b.Height, frame(b.Shape, g), g)
		c.WriteText(b.CenterRow(), b.Col+2, b.Label)
	}

	for _, r := range l.Routes {
		e := f.Edges[r.Edge]
		if e.Head {
			c.DrawArrow(r.Points, stroke(e.Style, g), g)
		} else {
			c.DrawPath(r.Points, stroke(e.Style, g), g)
		}
		if r.Kind == Feedback {
			warn.AddAt(e.Line, "edge %s -> %s closes a cycle and is drawn as a feedback edge", e.From, e.To)
		}
	}

	// Own labels may replace their own line cells. Any other label writing
	// over a drawn cell counts as a collision.
	for _, lb := range l.Labels {
		if lb.Own {
			c.Overlay(lb.Row, lb.Col, lb.Text)
			continue
		}
		if !c.Fits(lb.Row, lb.Col, lb.Text) {
			e := f.Edges[lb.Edge]
			warn.AddAt(e.Line, "label %q of edge %s -> %s overlaps the drawing", lb.Text, e.From, e.To)
		}
		c.WriteText(lb.Row, lb.Col, lb.Text)
	}
	return c, warn.List()
}

func frame(s diagram.Shape, g canvas.Glyphs) canvas.Frame {
	switch s {
	case diagram.ShapeRound:
		return g.Rounded()
	case diagram.ShapeStadium:
		f := g.Rounded()
		f.LeftSide, f.RightSide = '(', ')'
		return f
	case diagram.ShapeDiamond:
		f := g.Square()
		f.TopLeft, f.TopRight = g.DiagonalRise, g.DiagonalFall
		f.BottomLeft, f.BottomRight = g.DiagonalFall, g.DiagonalRise
		f.LeftSide, f.RightSide = '<', '>'
		return f
	}
	return g.Square()
}

func stroke(s diagram.EdgeStyle, g canvas.Glyphs) canvas.Stroke {
	switch s {
	case diagram.StyleDotted:
		return g.Dotted()
	case diagram.StyleThick:
		return g.Thick()
	}
	return g.Solid()
}
