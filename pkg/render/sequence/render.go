package sequence

import (
	"github.com/matzehuels/asciisketch/pkg/canvas"
	"github.com/matzehuels/asciisketch/pkg/diagram"
	"github.com/matzehuels/asciisketch/pkg/errors"
)

// Options configures sequence rendering.
type Options struct {
	// Glyphs is the output alphabet. The zero value selects canvas.Unicode.
	Glyphs canvas.Glyphs
}

// Render lays out s and draws headers, lifelines and messages in order.
func Render(s *diagram.Sequence, opts Options) (*canvas.Canvas, *Layout, []errors.Warning) {
	g := opts.Glyphs
	if g.Name == "" {
		g = canvas.Unicode
	}
	l := Compute(s)
	c := canvas.New(l.Width, l.Height)
	var warn errors.Warnings

	for _, h := range l.Heads {
		c.WriteBox(0, h.Col, h.Width, headerHeight, g.Square(), g)
		c.WriteText(1, h.Col+(h.Width-canvas.StringWidth(h.Label))/2, h.Label)
	}
	for _, h := range l.Heads {
		c.DrawPath([]canvas.Point{{Row: headerHeight - 1, Col: h.X}, {Row: l.Height - 1, Col: h.X}}, g.Solid(), g)
	}

	for i, m := range s.Messages {
		st := g.Solid()
		if m.Style == diagram.MessageDashed {
			st = g.Dotted()
		}
		from, to := l.Heads[m.From].X, l.Heads[m.To].X
		labelRow, arrowRow := l.LabelRow(i), l.ArrowRow(i)

		if m.From == m.To {
			c.DrawArrow([]canvas.Point{
				{Row: labelRow, Col: from},
				{Row: labelRow, Col: from + loopWidth},
				{Row: arrowRow, Col: from + loopWidth},
				{Row: arrowRow, Col: from + 1},
			}, st, g)
			c.Overlay(labelRow, from+loopWidth+2, m.Label)
			continue
		}

		end := to - 1
		if to < from {
			end = to + 1
		}
		c.DrawArrow([]canvas.Point{{Row: arrowRow, Col: from}, {Row: arrowRow, Col: end}}, st, g)

		w := canvas.StringWidth(m.Label)
		col := min(from, to) + (abs(to-from)-w)/2
		if !c.Fits(labelRow, col, m.Label) {
			warn.AddAt(m.Line, "label %q crosses a lifeline", m.Label)
		}
		c.Overlay(labelRow, col, m.Label)
	}
	return c, l, warn.List()
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
