package nodelink

import (
	"context"
	"strings"
	"testing"

	"github.com/matzehuels/asciisketch/pkg/diagram"
)

func flowchart(t *testing.T, src string) *diagram.Flowchart {
	t.Helper()
	d, err := diagram.Parse(src)
	if err != nil {
		t.Fatalf("Parse(%q) error: %v", src, err)
	}
	return d.Flowchart
}

func TestToDOT(t *testing.T) {
	dot := ToDOT(flowchart(t, "graph LR; A[Start] --> B{Decision}; B -->|Yes| C[Go]"), Options{})

	for _, want := range []string{
		"digraph G {",
		"rankdir=LR;",
		`"A" [label="Start"];`,
		`"B" [label="Decision", shape=diamond];`,
		`"A" -> "B";`,
		`"B" -> "C" [label="Yes"];`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("ToDOT() missing %q\n%s", want, dot)
		}
	}
}

func TestToDOTDirections(t *testing.T) {
	tests := []struct {
		header string
		want   string
	}{
		{"graph TD", "rankdir=TB;"},
		{"graph TB", "rankdir=TB;"},
		{"graph LR", "rankdir=LR;"},
		{"graph RL", "rankdir=RL;"},
		{"graph BT", "rankdir=BT;"},
	}
	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			if dot := ToDOT(flowchart(t, tt.header+"; A --> B"), Options{}); !strings.Contains(dot, tt.want) {
				t.Errorf("ToDOT() missing %q\n%s", tt.want, dot)
			}
		})
	}
}

func TestToDOTEdgeStyles(t *testing.T) {
	dot := ToDOT(flowchart(t, "graph TD; A -.-> B; B ==> C; C --- D; D --> A"), Options{})

	for _, want := range []string{
		`"A" -> "B" [style=dotted];`,
		`"B" -> "C" [style=bold];`,
		`"C" -> "D" [arrowhead=none];`,
		`"D" -> "A" [constraint=false];`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("ToDOT() missing %q\n%s", want, dot)
		}
	}
}

func TestToDOTDetailed(t *testing.T) {
	dot := ToDOT(flowchart(t, "graph TD; A --> B --> C"), Options{Detailed: true})
	if !strings.Contains(dot, `label="C\nlayer: 2"`) {
		t.Errorf("ToDOT() detailed output missing layer\n%s", dot)
	}
}

func TestLayout(t *testing.T) {
	dot := ToDOT(flowchart(t, "graph TD; A --> B"), Options{})
	out, err := Layout(context.Background(), dot)
	if err != nil {
		t.Fatalf("Layout() error: %v", err)
	}
	if !strings.Contains(string(out), "pos=") {
		t.Errorf("Layout() output has no positions:\n%s", out)
	}
}

func TestLayoutInvalid(t *testing.T) {
	if _, err := Layout(context.Background(), "digraph {"); err == nil {
		t.Error("Layout() expected error for malformed DOT")
	}
}
