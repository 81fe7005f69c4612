package sequence

import (
	"github.com/matzehuels/asciisketch/pkg/canvas"
	"github.com/matzehuels/asciisketch/pkg/diagram"
)

const (
	headerHeight = 3
	minBoxWidth  = 12
	boxGap       = 4
	messageRows  = 3 // spacing, label, arrow
	loopWidth    = 3 // columns right of the lifeline taken by a self-message
)

// Head is a participant header box.
type Head struct {
	Label string
	Col   int
	Width int
	X     int // lifeline column
}

// Layout is the measured sequence diagram.
type Layout struct {
	Heads  []Head
	Width  int
	Height int
}

// LabelRow returns the row of the label of message i.
func (l *Layout) LabelRow(i int) int { return headerHeight + i*messageRows + 1 }

// ArrowRow returns the row of the arrow of message i.
func (l *Layout) ArrowRow(i int) int { return l.LabelRow(i) + 1 }

// Compute assigns every participant a lifeline column. Columns grow left
// to right until every message label fits between its two lifelines and
// every self-message loop fits before the next header.
func Compute(s *diagram.Sequence) *Layout {
	l := &Layout{}
	if len(s.Participants) == 0 {
		return l
	}

	widths := make([]int, len(s.Participants))
	for i, p := range s.Participants {
		widths[i] = max(canvas.StringWidth(p.Label)+4, minBoxWidth)
	}

	xs := make([]int, len(s.Participants))
	xs[0] = widths[0] / 2
	for i := 1; i < len(xs); i++ {
		prev := widths[i-1]
		x := xs[i-1] + prev - prev/2 + boxGap + widths[i]/2
		for _, m := range s.Messages {
			lo, hi := min(m.From, m.To), max(m.From, m.To)
			w := canvas.StringWidth(m.Label)
			switch {
			case hi == i && lo != hi:
				x = max(x, xs[lo]+w+4)
			case m.From == i-1 && m.To == i-1:
				x = max(x, xs[i-1]+loopWidth+w+4)
			}
		}
		xs[i] = x
	}

	for i, p := range s.Participants {
		h := Head{Label: p.Label, Width: widths[i], X: xs[i], Col: xs[i] - widths[i]/2}
		l.Heads = append(l.Heads, h)
		l.Width = max(l.Width, h.Col+h.Width)
	}
	for _, m := range s.Messages {
		if m.From == m.To {
			l.Width = max(l.Width, xs[m.From]+loopWidth+2+canvas.StringWidth(m.Label))
		}
	}
	l.Height = headerHeight + len(s.Messages)*messageRows + 1
	return l
}
