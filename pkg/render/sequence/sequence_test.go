package sequence

import (
	"strings"
	"testing"

	"github.com/matzehuels/asciisketch/pkg/canvas"
	"github.com/matzehuels/asciisketch/pkg/diagram"
)

func parse(t *testing.T, src string) *diagram.Sequence {
	t.Helper()
	d, err := diagram.Parse(src)
	if err != nil {
		t.Fatalf("Parse(%q) error: %v", src, err)
	}
	if d.Sequence == nil {
		t.Fatalf("Parse(%q) is not a sequence diagram", src)
	}
	return d.Sequence
}

func TestRenderConversation(t *testing.T) {
	c, _, warnings := Render(parse(t, "sequenceDiagram; Alice->>Bob: Hi; Bob-->>Alice: Hey"), Options{})
	want := []string{
		"┌──────────┐    ┌──────────┐",
		"│  Alice   │    │   Bob    │",
		"└─────┬────┘    └─────┬────┘",
		"      │               │     ",
		"      │      Hi       │     ",
		"      ├──────────────►│     ",
		"      │               │     ",
		"      │     Hey       │     ",
		"      │◄┄┄┄┄┄┄┄┄┄┄┄┄┄┄┤     ",
		"      │               │     ",
	}
	got := c.Lines()
	if strings.Join(got, "\n") != strings.Join(want, "\n") {
		t.Errorf("Render() =\n%s\nwant\n%s", strings.Join(got, "\n"), strings.Join(want, "\n"))
	}
	if c.Collisions() != 0 {
		t.Errorf("Collisions() = %d, want 0", c.Collisions())
	}
	if len(warnings) != 0 {
		t.Errorf("warnings = %v, want none", warnings)
	}
}

func TestMessageOrder(t *testing.T) {
	c, l, _ := Render(parse(t, "sequenceDiagram\nAlice->>Bob: first\nBob-->>Alice: second"), Options{})
	if l.Heads[0].X >= l.Heads[1].X {
		t.Errorf("Alice lifeline at %d, Bob at %d; want Alice left", l.Heads[0].X, l.Heads[1].X)
	}
	lines := c.Lines()
	first, second := -1, -1
	for i, line := range lines {
		if strings.Contains(line, "first") {
			first = i
		}
		if strings.Contains(line, "second") {
			second = i
		}
	}
	if first < 0 || second < 0 || first >= second {
		t.Fatalf("label rows first=%d second=%d, want first above second", first, second)
	}
	if !strings.Contains(lines[first+1], "─►") {
		t.Errorf("row %q is not a solid arrow", lines[first+1])
	}
	if !strings.Contains(lines[second+1], "◄┄") {
		t.Errorf("row %q is not a dashed arrow", lines[second+1])
	}
}

func TestLabelWidensColumns(t *testing.T) {
	l := Compute(parse(t, "sequenceDiagram; A->>B: a rather long message label"))
	span := l.Heads[1].X - l.Heads[0].X
	if want := len("a rather long message label") + 4; span < want {
		t.Errorf("lifeline span = %d, want at least %d", span, want)
	}
}

func TestSkippedColumn(t *testing.T) {
	c, l, _ := Render(parse(t, "sequenceDiagram; A->>B: x; A->>C: y"), Options{})
	row := c.Lines()[l.ArrowRow(1)]
	runes := []rune(row)
	if got := runes[l.Heads[1].X]; got != '┼' {
		t.Errorf("crossing B lifeline = %q, want '┼' in %q", got, row)
	}
}

func TestSelfMessage(t *testing.T) {
	c, l, _ := Render(parse(t, "sequenceDiagram; A->>A: think"), Options{})
	lines := c.Lines()
	if got := lines[l.LabelRow(0)]; !strings.Contains(got, "├──┐ think") {
		t.Errorf("label row = %q, want loop with label", got)
	}
	if got := lines[l.ArrowRow(0)]; !strings.Contains(got, "│◄─┘") {
		t.Errorf("arrow row = %q, want loop return", got)
	}
	if c.Collisions() != 0 {
		t.Errorf("Collisions() = %d, want 0", c.Collisions())
	}
}

func TestASCII(t *testing.T) {
	c, _, _ := Render(parse(t, "sequenceDiagram; A->>B: go; B-->>A: ok"), Options{Glyphs: canvas.ASCII})
	out := c.String()
	for _, s := range []string{"+---", "+--->|", "|<....", "|"} {
		if !strings.Contains(out, s) {
			t.Errorf("output is missing %q\n%s", s, out)
		}
	}
	for _, r := range out {
		if r > 127 {
			t.Fatalf("non-ASCII rune %q in\n%s", r, out)
		}
	}
}

func TestEmpty(t *testing.T) {
	c, l, _ := Render(&diagram.Sequence{}, Options{})
	if c.Width() != 0 || c.Height() != 0 || len(l.Heads) != 0 {
		t.Errorf("empty sequence rendered %dx%d", c.Width(), c.Height())
	}
}
