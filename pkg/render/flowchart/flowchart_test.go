package flowchart

import (
	"slices"
	"strings"
	"testing"

	"github.com/matzehuels/asciisketch/pkg/canvas"
	"github.com/matzehuels/asciisketch/pkg/diagram"
)

const decision = "graph LR; A[Start] --> B{Decision}; B -->|Yes| C[Go]; B -->|No| D[Stop]"

func parse(t *testing.T, src string) *diagram.Flowchart {
	t.Helper()
	d, err := diagram.Parse(src)
	if err != nil {
		t.Fatalf("Parse(%q) error: %v", src, err)
	}
	if d.Flowchart == nil {
		t.Fatalf("Parse(%q) is not a flowchart", src)
	}
	return d.Flowchart
}

func render(t *testing.T, src string, g canvas.Glyphs) []string {
	t.Helper()
	c, _, _ := Render(parse(t, src), Options{Glyphs: g})
	return c.Lines()
}

func assertLines(t *testing.T, got, want []string) {
	t.Helper()
	if strings.Join(got, "\n") != strings.Join(want, "\n") {
		t.Errorf("lines =\n%s\nwant\n%s", strings.Join(got, "\n"), strings.Join(want, "\n"))
	}
}

func TestComputeLayers(t *testing.T) {
	l := Compute(parse(t, decision))
	want := [][]string{{"A"}, {"B"}, {"C", "D"}}
	if len(l.Layers) != len(want) {
		t.Fatalf("Layers = %v, want %v", l.Layers, want)
	}
	for i := range want {
		if !slices.Equal(l.Layers[i], want[i]) {
			t.Errorf("Layers[%d] = %v, want %v", i, l.Layers[i], want[i])
		}
	}
	if len(l.Feedback) != 0 {
		t.Errorf("Feedback = %v, want none", l.Feedback)
	}
}

func TestRouteKinds(t *testing.T) {
	l := Compute(parse(t, decision))
	want := []RouteKind{Straight, Routed, Routed}
	for i, r := range l.Routes {
		if r.Kind != want[i] {
			t.Errorf("Routes[%d].Kind = %v, want %v", i, r.Kind, want[i])
		}
	}
}

func TestDecisionRendersCleanly(t *testing.T) {
	for _, dir := range []string{"LR", "TD", "RL", "BT"} {
		t.Run(dir, func(t *testing.T) {
			src := strings.Replace(decision, "graph LR", "graph "+dir, 1)
			c, l, warnings := Render(parse(t, src), Options{})
			if c.Collisions() != 0 {
				t.Errorf("Collisions() = %d, want 0\n%s", c.Collisions(), c)
			}
			if len(warnings) != 0 {
				t.Errorf("warnings = %v, want none", warnings)
			}
			out := c.String()
			for _, s := range []string{"Start", "Decision", "Go", "Stop", "Yes", "No"} {
				if !strings.Contains(out, s) {
					t.Errorf("output is missing %q\n%s", s, out)
				}
			}
			if len(l.Labels) != 2 {
				t.Errorf("len(Labels) = %d, want 2", len(l.Labels))
			}
		})
	}
}

func TestRoutedLabelsKeepRoutesIntact(t *testing.T) {
	for _, dir := range []string{"LR", "TD", "RL", "BT"} {
		t.Run(dir, func(t *testing.T) {
			f := parse(t, "graph "+dir+"; A -->|yes| B; A -->|no| C; B --> D; C --> D")
			c, l, warnings := Render(f, Options{})
			if c.Collisions() != 0 {
				t.Errorf("Collisions() = %d, want 0\n%s", c.Collisions(), c)
			}
			if len(warnings) != 0 {
				t.Errorf("warnings = %v, want none", warnings)
			}

			bare := *l
			bare.Labels = nil
			routes, _ := Draw(f, &bare, Options{})
			for _, r := range l.Routes {
				for _, p := range canvas.Expand(r.Points) {
					if got, want := c.At(p.Row, p.Col), routes.At(p.Row, p.Col); got != want {
						t.Errorf("route cell %v = %q, want %q\n%s", p, got, want, c)
					}
				}
			}
		})
	}
}

func TestLabelOverRouteIsCounted(t *testing.T) {
	f := parse(t, "graph TD; A -->|x| B")
	l := Compute(f)
	// Move the label onto the edge it does not own.
	r := l.Routes[0].Points
	l.Labels = []Label{{Edge: 0, Row: r[0].Row + 1, Col: r[0].Col, Text: "x"}}
	c, warnings := Draw(f, l, Options{})
	if c.Collisions() != 1 {
		t.Errorf("Collisions() = %d, want 1\n%s", c.Collisions(), c)
	}
	if len(warnings) != 1 {
		t.Errorf("warnings = %v, want one", warnings)
	}
}

func TestDirectionPlacesLayers(t *testing.T) {
	tests := []struct {
		dir  string
		less func(a, b Box) bool
	}{
		{"LR", func(a, b Box) bool { return a.Right() < b.Col }},
		{"RL", func(a, b Box) bool { return a.Col > b.Right() }},
		{"TD", func(a, b Box) bool { return a.Bottom() < b.Row }},
		{"BT", func(a, b Box) bool { return a.Row > b.Bottom() }},
	}
	for _, tt := range tests {
		t.Run(tt.dir, func(t *testing.T) {
			l := Compute(parse(t, "graph "+tt.dir+"; A --> B --> C"))
			a, _ := l.Box("A")
			b, _ := l.Box("B")
			c, _ := l.Box("C")
			if !tt.less(a, b) || !tt.less(b, c) {
				t.Errorf("boxes A=%+v B=%+v C=%+v are not ordered along %s", a, b, c, tt.dir)
			}
		})
	}
}

func TestStraightEdges(t *testing.T) {
	tests := []struct {
		name   string
		src    string
		glyphs canvas.Glyphs
		want   []string
	}{
		{
			name: "left to right",
			src:  "graph LR; A --> B",
			want: []string{
				"┌───┐    ┌───┐",
				"│ A ├───►│ B │",
				"└───┘    └───┘",
			},
		},
		{
			name:   "ascii",
			src:    "graph LR; A --> B",
			glyphs: canvas.ASCII,
			want: []string{
				"+---+    +---+",
				"| A +--->| B |",
				"+---+    +---+",
			},
		},
		{
			name: "inline label",
			src:  "graph LR; A -->|go| B",
			want: []string{
				"┌───┐     ┌───┐",
				"│ A ├─go─►│ B │",
				"└───┘     └───┘",
			},
		},
		{
			name: "no head",
			src:  "graph LR; A --- B",
			want: []string{
				"┌───┐    ┌───┐",
				"│ A ├────┤ B │",
				"└───┘    └───┘",
			},
		},
		{
			name: "dotted",
			src:  "graph LR; A -.-> B",
			want: []string{
				"┌───┐    ┌───┐",
				"│ A ├┄┄┄►│ B │",
				"└───┘    └───┘",
			},
		},
		{
			name: "top down",
			src:  "graph TD; A --> B",
			want: []string{
				"┌───┐",
				"│ A │",
				"└─┬─┘",
				"  │  ",
				"  ▼  ",
				"┌───┐",
				"│ B │",
				"└───┘",
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertLines(t, render(t, tt.src, tt.glyphs), tt.want)
		})
	}
}

func TestFanOut(t *testing.T) {
	want := []string{
		"┌───┐        ",
		"│ A │        ",
		"└─┬─┘        ",
		"  ├───────┐  ",
		"  ▼       ▼  ",
		"┌───┐   ┌───┐",
		"│ B │   │ C │",
		"└───┘   └───┘",
	}
	assertLines(t, render(t, "graph TD; A --> B & C", canvas.Glyphs{}), want)
}

func TestFanIn(t *testing.T) {
	c, _, warnings := Render(parse(t, "graph TD; A & B --> C"), Options{})
	lines := c.Lines()
	if got := lines[3]; got != "  ├───────┘  " {
		t.Errorf("junction row = %q, want %q", got, "  ├───────┘  ")
	}
	if c.Collisions() != 0 {
		t.Errorf("Collisions() = %d, want 0", c.Collisions())
	}
	if len(warnings) != 0 {
		t.Errorf("warnings = %v, want none", warnings)
	}
}

func TestShapes(t *testing.T) {
	tests := []struct {
		src  string
		want []string
	}{
		{"graph LR; A(x)", []string{"╭───╮", "│ x │", "╰───╯"}},
		{"graph LR; A([x])", []string{"╭───╮", "( x )", "╰───╯"}},
		{"graph LR; A{x}", []string{"╱───╲", "< x >", "╲───╱"}},
		{"graph LR; A[x]", []string{"┌───┐", "│ x │", "└───┘"}},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			assertLines(t, render(t, tt.src, canvas.Glyphs{}), tt.want)
		})
	}
}

func TestFeedbackEdge(t *testing.T) {
	for _, dir := range []string{"LR", "TD"} {
		t.Run(dir, func(t *testing.T) {
			f := parse(t, "graph "+dir+"\nA --> B\nB --> A")
			c, l, warnings := Render(f, Options{})
			if !slices.Equal(l.Feedback, []int{1}) {
				t.Errorf("Feedback = %v, want [1]", l.Feedback)
			}
			if l.Routes[1].Kind != Feedback {
				t.Errorf("Routes[1].Kind = %v, want feedback", l.Routes[1].Kind)
			}
			if len(warnings) != 1 || warnings[0].Line != 3 {
				t.Fatalf("warnings = %v, want one on line 3", warnings)
			}
			if c.Collisions() != 0 {
				t.Errorf("Collisions() = %d, want 0\n%s", c.Collisions(), c)
			}
			a, _ := l.Box("A")
			if c.At(a.Row-1, a.CenterCol()) != '▼' {
				t.Errorf("no arrowhead above A\n%s", c)
			}
		})
	}
}

func TestSelfLoop(t *testing.T) {
	c, l, warnings := Render(parse(t, "graph TD; A --> A"), Options{})
	if l.Routes[0].Kind != Feedback || len(warnings) != 1 {
		t.Errorf("self loop: kind %v, warnings %v", l.Routes[0].Kind, warnings)
	}
	if c.Collisions() != 0 {
		t.Errorf("Collisions() = %d, want 0\n%s", c.Collisions(), c)
	}
}

func TestLongEdge(t *testing.T) {
	c, l, _ := Render(parse(t, "graph TD; A --> B --> C; A --> C"), Options{})
	if l.Routes[2].Kind != Routed {
		t.Fatalf("Routes[2].Kind = %v, want routed", l.Routes[2].Kind)
	}
	b, _ := l.Box("B")
	for _, p := range canvas.Expand(l.Routes[2].Points) {
		if p.Row >= b.Row && p.Row <= b.Bottom() && p.Col >= b.Col && p.Col <= b.Right() {
			t.Fatalf("long edge passes through B at %v\n%s", p, c)
		}
	}
	if c.Collisions() != 0 {
		t.Errorf("Collisions() = %d, want 0\n%s", c.Collisions(), c)
	}
}

func TestCrossings(t *testing.T) {
	l := Compute(parse(t, "graph TD; A --> C; B --> D; A --> D; B --> C"))
	if l.Crossings != 1 {
		t.Errorf("Crossings = %d, want 1", l.Crossings)
	}
}

func TestDeterministic(t *testing.T) {
	src := "graph TD; A --> B & C; B --> D; C --> D; D --> A"
	first := strings.Join(render(t, src, canvas.Glyphs{}), "\n")
	for i := 0; i < 5; i++ {
		if got := strings.Join(render(t, src, canvas.Glyphs{}), "\n"); got != first {
			t.Fatalf("render %d differs:\n%s\nwant\n%s", i, got, first)
		}
	}
}

func TestEmptyFlowchart(t *testing.T) {
	c, l, warnings := Render(parse(t, "graph TD"), Options{})
	if l.Width != 0 || l.Height != 0 || c.Height() != 0 || len(warnings) != 0 {
		t.Errorf("empty flowchart: %dx%d, warnings %v", l.Width, l.Height, warnings)
	}
}
