package wireframe

import (
	"fmt"
	"math"
	"strings"

	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"

	"github.com/matzehuels/asciisketch/pkg/canvas"
	"github.com/matzehuels/asciisketch/pkg/errors"
)

// Overflow decides what happens to content wider than a panel.
type Overflow int

const (
	// OverflowWrap wraps or truncates the content and raises a warning.
	OverflowWrap Overflow = iota
	// OverflowError fails the render with an OVERFLOW error.
	OverflowError
)

// Options configures rendering.
type Options struct {
	Glyphs   canvas.Glyphs
	Overflow Overflow
}

// row is one interior line of a panel. Divider rows span the whole panel
// and join its border.
type row struct {
	text    string
	divider bool
}

// panelRenderer renders the components of one panel.
type panelRenderer struct {
	g      canvas.Glyphs
	strict bool
	width  int
	line   int
	warn   *errors.Warnings
	err    error
}

// overflow records content that did not fit. The first overflow is kept as
// the error under OverflowError; otherwise it becomes a warning.
func (r *panelRenderer) overflow(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if r.strict {
		if r.err == nil {
			r.err = errors.AtLine(errors.ErrCodeOverflow, r.line, "%s", msg)
		}
		return
	}
	r.warn.AddAt(r.line, "%s", msg)
}

// fit pads s to the interior width according to align. s must already fit.
func (r *panelRenderer) fit(s string, align Align) string {
	gap := r.width - canvas.StringWidth(s)
	if gap <= 0 {
		return s
	}
	switch align {
	case AlignCenter:
		left := gap / 2
		return strings.Repeat(" ", left) + s + strings.Repeat(" ", gap-left)
	case AlignRight:
		return strings.Repeat(" ", gap) + s
	}
	return s + strings.Repeat(" ", gap)
}

// clip truncates a single-row control that is wider than the interior.
func (r *panelRenderer) clip(s, what string) string {
	w := canvas.StringWidth(s)
	if w <= r.width {
		return s
	}
	r.overflow("%s is %d columns wide, interior is %d; truncated", what, w, r.width)
	return truncateTo(s, r.width, r.g.Ellipsis)
}

func truncateTo(s string, width int, tail string) string {
	if canvas.StringWidth(tail) >= width {
		tail = ""
	}
	out := truncate.StringWithTail(s, uint(width), tail)
	// Wide runes may leave the result one column short.
	if pad := width - canvas.StringWidth(out); pad > 0 {
		out += strings.Repeat(" ", pad)
	}
	return out
}

// wrapText splits text into rows no wider than the interior. Paragraphs are
// broken at whitespace; a single word wider than the interior is broken
// inside the word, which is reported like any other overflow.
func (r *panelRenderer) wrapText(text, what string) []string {
	var out []string
	wrapped, broken := false, false
	for _, para := range strings.Split(text, "\n") {
		if canvas.StringWidth(para) <= r.width {
			out = append(out, para)
			continue
		}
		wrapped = true
		for _, l := range strings.Split(wordwrap.String(para, r.width), "\n") {
			l = strings.TrimRight(l, " ")
			if canvas.StringWidth(l) <= r.width {
				out = append(out, l)
				continue
			}
			broken = true
			for _, piece := range strings.Split(wrap.String(l, r.width), "\n") {
				if canvas.StringWidth(piece) > r.width {
					piece = truncateTo(piece, r.width, "")
				}
				out = append(out, piece)
			}
		}
	}
	switch {
	case broken:
		r.overflow("%s has a word wider than the interior (%d); broken inside the word", what, r.width)
	case wrapped:
		r.overflow("%s wider than the interior (%d); wrapped to %d rows", what, r.width, len(out))
	}
	return out
}

// rows renders one component. The switch is exhaustive over the closed set
// of component types.
func (r *panelRenderer) rows(c Component) []row {
	switch c := c.(type) {
	case Text:
		var rows []row
		for _, l := range r.wrapText(c.Text, "text") {
			rows = append(rows, row{text: r.fit(l, c.Align)})
		}
		return rows
	case Radio:
		marker := "( ) "
		if c.Selected {
			marker = "(*) "
		}
		return r.single(marker+c.Label, "radio", c.Align)
	case Checkbox:
		marker := "[ ] "
		if c.Checked {
			marker = "[X] "
		}
		return r.single(marker+c.Label, "checkbox", c.Align)
	case Button:
		return r.single("["+c.Label+"]", "button", c.Align)
	case ButtonRow:
		parts := make([]string, len(c.Labels))
		for i, l := range c.Labels {
			parts[i] = "[" + l + "]"
		}
		return r.single(strings.Join(parts, "  "), "button row", c.Align)
	case Input:
		return r.input(c)
	case Select:
		return r.selectRows(c)
	case Divider:
		return []row{{divider: true}}
	case Separator:
		return []row{{text: strings.Repeat(string(r.g.Horizontal), r.width)}}
	case Spacer:
		return []row{{text: r.fit("", AlignLeft)}}
	case Progress:
		return r.progress(c)
	case Tabs:
		return r.tabs(c)
	case Table:
		return r.table(c)
	}
	panic(fmt.Sprintf("wireframe: unhandled component %T", c))
}

func (r *panelRenderer) single(s, what string, align Align) []row {
	return []row{{text: r.fit(r.clip(s, what), align)}}
}

// field renders value into a bracketed field of the given inner width,
// padding with fill.
func (r *panelRenderer) field(value string, width int, fill string, what string) string {
	if width < 1 {
		width = 1
	}
	if w := canvas.StringWidth(value); w > width {
		r.overflow("%s value is %d columns wide, field is %d; truncated", what, w, width)
		value = truncateTo(value, width, "")
	}
	return value + strings.Repeat(fill, width-canvas.StringWidth(value))
}

func (r *panelRenderer) input(c Input) []row {
	if c.Inline && c.Label != "" {
		label := c.Label + " "
		w := c.Width
		if w == 0 {
			w = r.width - canvas.StringWidth(label) - 2
		}
		return r.single(label+"["+r.field(c.Value, w, "_", "input")+"]", "input", AlignLeft)
	}
	var rows []row
	if c.Label != "" {
		rows = append(rows, r.single(c.Label, "input label", AlignLeft)...)
	}
	w := c.Width
	if w == 0 {
		w = r.width - 2
	}
	return append(rows, r.single("["+r.field(c.Value, w, "_", "input")+"]", "input", AlignLeft)...)
}

func (r *panelRenderer) selectRows(c Select) []row {
	box := func(w int) string {
		return "[" + r.field(c.Value, w, " ", "select") + " " + string(r.g.DropDown) + "]"
	}
	if c.Inline && c.Label != "" {
		label := c.Label + " "
		w := c.Width
		if w == 0 {
			w = r.width - canvas.StringWidth(label) - 4
		}
		return r.single(label+box(w), "select", AlignLeft)
	}
	var rows []row
	if c.Label != "" {
		rows = append(rows, r.single(c.Label, "select label", AlignLeft)...)
	}
	w := c.Width
	if w == 0 {
		w = r.width - 4
	}
	return append(rows, r.single(box(w), "select", AlignLeft)...)
}

func (r *panelRenderer) progress(c Progress) []row {
	var rows []row
	if c.Label != "" {
		rows = append(rows, r.single(c.Label, "progress label", AlignLeft)...)
	}
	v := c.Value
	if v < 0 || v > 100 {
		r.warn.AddAt(r.line, "progress value %d outside 0-100; clamped", v)
		v = min(max(v, 0), 100)
	}
	cells := max(r.width-2, 1)
	filled := int(math.Round(float64(cells*v) / 100))
	bar := strings.Repeat(string(r.g.Filled), filled) + strings.Repeat(string(r.g.Empty), cells-filled)
	return append(rows, r.single("["+bar+"]", "progress bar", AlignLeft)...)
}

func (r *panelRenderer) tabs(c Tabs) []row {
	if len(c.Items) > 0 && (c.Active < 0 || c.Active >= len(c.Items)) {
		r.warn.AddAt(r.line, "active tab %d outside 0-%d; no tab is highlighted", c.Active, len(c.Items)-1)
	}
	parts := make([]string, len(c.Items))
	for i, item := range c.Items {
		if i == c.Active {
			parts[i] = "[" + item + "]"
		} else {
			parts[i] = item
		}
	}
	rows := r.single(strings.Join(parts, "  "), "tabs", c.Align)
	return append(rows, row{text: strings.Repeat(string(r.g.Horizontal), r.width)})
}

func (r *panelRenderer) table(c Table) []row {
	cols := len(c.Columns)
	for _, cells := range c.Rows {
		if len(c.Columns) == 0 {
			cols = max(cols, len(cells))
		}
	}
	if cols == 0 {
		return nil
	}

	body := make([][]string, len(c.Rows))
	for i, cells := range c.Rows {
		if len(cells) > cols {
			r.warn.AddAt(r.line, "table row %d has %d cells for %d columns; extra cells dropped", i+1, len(cells), cols)
			cells = cells[:cols]
		}
		padded := make([]string, cols)
		copy(padded, cells)
		body[i] = padded
	}

	widths := make([]int, cols)
	for i, h := range c.Columns {
		widths[i] = canvas.StringWidth(h)
	}
	for _, cells := range body {
		for i, cell := range cells {
			widths[i] = max(widths[i], canvas.StringWidth(cell))
		}
	}

	sep := string(r.g.Vertical)
	format := func(cells []string) string {
		parts := make([]string, cols)
		for i, cell := range cells {
			parts[i] = " " + cell + strings.Repeat(" ", widths[i]-canvas.StringWidth(cell)) + " "
		}
		return strings.Join(parts, sep)
	}

	var lines []string
	if len(c.Columns) > 0 {
		lines = append(lines, format(c.Columns))
		rules := make([]string, cols)
		for i, w := range widths {
			rules[i] = strings.Repeat(string(r.g.Horizontal), w+2)
		}
		lines = append(lines, strings.Join(rules, string(r.g.Cross)))
	}
	for _, cells := range body {
		lines = append(lines, format(cells))
	}

	if w := canvas.StringWidth(lines[0]); w > r.width {
		r.overflow("table is %d columns wide, interior is %d; truncated", w, r.width)
	}
	rows := make([]row, len(lines))
	for i, l := range lines {
		if canvas.StringWidth(l) > r.width {
			l = truncateTo(l, r.width, r.g.Ellipsis)
		}
		rows[i] = row{text: r.fit(l, AlignLeft)}
	}
	return rows
}

// layout renders every row of a panel: title, title divider, components.
func (p Panel) layout(opts Options, warn *errors.Warnings) ([]row, error) {
	r := &panelRenderer{
		g:      opts.Glyphs,
		strict: opts.Overflow == OverflowError,
		width:  p.Interior(),
		line:   p.line,
		warn:   warn,
	}
	var rows []row
	if p.Title != "" {
		for _, l := range r.wrapText(p.Title, "title") {
			rows = append(rows, row{text: r.fit(l, AlignCenter)})
		}
		rows = append(rows, row{divider: true})
	}
	for i, c := range p.Components {
		r.line = p.componentLine(i)
		rows = append(rows, r.rows(c)...)
	}
	return rows, r.err
}

// Render draws a single panel onto a canvas of exactly p.Width columns.
func (p Panel) Render(opts Options) (*canvas.Canvas, []errors.Warning, error) {
	var warn errors.Warnings
	c, err := p.render(opts, &warn)
	if err != nil {
		return nil, nil, err
	}
	return c, warn.List(), nil
}

func (p Panel) render(opts Options, warn *errors.Warnings) (*canvas.Canvas, error) {
	if p.Interior() < 1 {
		return nil, errors.AtLine(errors.ErrCodeParse, p.line,
			"panel width %d leaves no room inside borders and padding %d", p.Width, p.Padding)
	}
	rows, err := p.layout(opts, warn)
	if err != nil {
		return nil, err
	}
	g := opts.Glyphs
	c := canvas.New(p.Width, len(rows)+2)
	c.WriteBox(0, 0, p.Width, len(rows)+2, g.Square(), g)
	for i, r := range rows {
		y := i + 1
		if r.divider {
			c.Divider(y, 0, p.Width, g)
			continue
		}
		c.WriteText(y, 1+p.Padding, r.text)
	}
	return c, nil
}

// Render draws a whole document. Horizontal layouts place panels side by
// side two columns apart and pad shorter panels with blank rows; vertical
// layouts stack them with one blank line between.
func Render(doc *Document, opts Options) (*canvas.Canvas, []errors.Warning, error) {
	var warn errors.Warnings
	panels := make([]*canvas.Canvas, len(doc.Panels))
	for i, p := range doc.Panels {
		c, err := p.render(opts, &warn)
		if err != nil {
			return nil, nil, err
		}
		panels[i] = c
	}
	if len(panels) == 0 {
		return canvas.New(0, 0), warn.List(), nil
	}

	const gap = 2
	var out *canvas.Canvas
	if doc.Layout == Horizontal {
		width, height := 0, 0
		for _, c := range panels {
			width += c.Width()
			height = max(height, c.Height())
		}
		width += gap * (len(panels) - 1)
		out = canvas.New(width, height)
		x := 0
		for i, c := range panels {
			if short := height - c.Height(); short > 0 {
				warn.AddAt(doc.Panels[i].line, "panel %d padded with %d blank rows to match the tallest panel", i+1, short)
			}
			out.Blit(0, x, c)
			x += c.Width() + gap
		}
	} else {
		width, height := 0, 0
		for _, c := range panels {
			width = max(width, c.Width())
			height += c.Height()
		}
		height += len(panels) - 1
		out = canvas.New(width, height)
		y := 0
		for _, c := range panels {
			out.Blit(y, 0, c)
			y += c.Height() + 1
		}
	}
	return out, warn.List(), nil
}
