package dag

import (
	"errors"
	"reflect"
	"testing"
)

func build(t *testing.T, ids []string, edges [][2]string) *DAG {
	t.Helper()
	g := New()
	for _, id := range ids {
		if err := g.AddNode(Node{ID: id}); err != nil {
			t.Fatalf("AddNode(%q) error = %v", id, err)
		}
	}
	for _, e := range edges {
		if _, err := g.AddEdge(Edge{From: e[0], To: e[1]}); err != nil {
			t.Fatalf("AddEdge(%v) error = %v", e, err)
		}
	}
	return g
}

func TestAddNodeErrors(t *testing.T) {
	g := New()
	if err := g.AddNode(Node{}); !errors.Is(err, ErrInvalidNodeID) {
		t.Errorf("AddNode(empty) error = %v, want %v", err, ErrInvalidNodeID)
	}
	_ = g.AddNode(Node{ID: "a"})
	if err := g.AddNode(Node{ID: "a"}); !errors.Is(err, ErrDuplicateNodeID) {
		t.Errorf("AddNode(dup) error = %v, want %v", err, ErrDuplicateNodeID)
	}
	if n, _ := g.Node("a"); n.Meta == nil {
		t.Error("Meta is nil after AddNode")
	}
}

func TestAddEdgeErrors(t *testing.T) {
	g := build(t, []string{"a"}, nil)
	if _, err := g.AddEdge(Edge{From: "x", To: "a"}); !errors.Is(err, ErrUnknownSourceNode) {
		t.Errorf("AddEdge() error = %v, want %v", err, ErrUnknownSourceNode)
	}
	if _, err := g.AddEdge(Edge{From: "a", To: "x"}); !errors.Is(err, ErrUnknownTargetNode) {
		t.Errorf("AddEdge() error = %v, want %v", err, ErrUnknownTargetNode)
	}
	if i, err := g.AddEdge(Edge{From: "a", To: "a"}); err != nil || i != 0 {
		t.Errorf("AddEdge(self-loop) = %d, %v, want 0, nil", i, err)
	}
}

func TestDeclarationOrder(t *testing.T) {
	g := build(t, []string{"z", "m", "a"}, [][2]string{{"z", "a"}, {"z", "m"}, {"m", "a"}})
	if got := NodeIDs(g.Nodes()); !reflect.DeepEqual(got, []string{"z", "m", "a"}) {
		t.Errorf("Nodes() = %v, want [z m a]", got)
	}
	if got := g.Children("z"); !reflect.DeepEqual(got, []string{"a", "m"}) {
		t.Errorf("Children(z) = %v, want [a m]", got)
	}
	if got := g.Parents("a"); !reflect.DeepEqual(got, []string{"z", "m"}) {
		t.Errorf("Parents(a) = %v, want [z m]", got)
	}
	if got := g.InEdges("a"); !reflect.DeepEqual(got, []int{0, 2}) {
		t.Errorf("InEdges(a) = %v, want [0 2]", got)
	}
}

func TestRows(t *testing.T) {
	g := build(t, []string{"a", "b", "c"}, nil)
	g.SetRows(map[string]int{"b": 2, "c": 2, "missing": 5})
	if got := NodeIDs(g.NodesInRow(2)); !reflect.DeepEqual(got, []string{"b", "c"}) {
		t.Errorf("NodesInRow(2) = %v, want [b c]", got)
	}
	if got := g.RowIDs(); !reflect.DeepEqual(got, []int{0, 2}) {
		t.Errorf("RowIDs() = %v, want [0 2]", got)
	}
	if g.MaxRow() != 2 || g.RowCount() != 2 {
		t.Errorf("MaxRow/RowCount = %d/%d, want 2/2", g.MaxRow(), g.RowCount())
	}
}

func TestValidate(t *testing.T) {
	g := build(t, []string{"a", "b", "c"}, [][2]string{{"a", "b"}, {"b", "c"}, {"c", "a"}})
	if err := g.Validate(nil); !errors.Is(err, ErrGraphHasCycle) {
		t.Errorf("Validate(nil) error = %v, want %v", err, ErrGraphHasCycle)
	}
	if err := g.Validate(map[int]bool{2: true}); err != nil {
		t.Errorf("Validate(skip back edge) error = %v, want nil", err)
	}
}

func TestCountCrossings(t *testing.T) {
	g := build(t, []string{"a", "b", "x", "y", "p"},
		[][2]string{{"a", "y"}, {"b", "x"}, {"x", "p"}, {"a", "p"}})
	orders := map[int][]string{0: {"a", "b"}, 1: {"x", "y"}, 2: {"p"}}
	if got := CountCrossings(g, orders); got != 1 {
		t.Errorf("CountCrossings() = %d, want 1", got)
	}
}
