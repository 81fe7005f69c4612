package dag_test

import (
	"fmt"

	"github.com/matzehuels/asciisketch/pkg/dag"
)

func ExampleDAG_basic() {
	// A decision with two outcomes: start → check → {yes, no}
	g := dag.New()
	for _, id := range []string{"start", "check", "yes", "no"} {
		_ = g.AddNode(dag.Node{ID: id})
	}
	_, _ = g.AddEdge(dag.Edge{From: "start", To: "check"})
	_, _ = g.AddEdge(dag.Edge{From: "check", To: "yes"})
	_, _ = g.AddEdge(dag.Edge{From: "check", To: "no"})

	fmt.Println("Nodes:", g.NodeCount())
	fmt.Println("Edges:", g.EdgeCount())
	fmt.Println("Children of check:", g.Children("check"))
	// Output:
	// Nodes: 4
	// Edges: 3
	// Children of check: [yes no]
}

func ExampleDAG_Sources() {
	g := dag.New()
	_ = g.AddNode(dag.Node{ID: "a"})
	_ = g.AddNode(dag.Node{ID: "b"})
	_ = g.AddNode(dag.Node{ID: "c"})
	_, _ = g.AddEdge(dag.Edge{From: "a", To: "c"})
	_, _ = g.AddEdge(dag.Edge{From: "b", To: "c"})

	fmt.Println("Sources:", dag.NodeIDs(g.Sources()))
	fmt.Println("Sinks:", dag.NodeIDs(g.Sinks()))
	// Output:
	// Sources: [a b]
	// Sinks: [c]
}

func ExampleCountLayerCrossings() {
	// a→y and b→x cross when a is left of b and x is left of y.
	g := dag.New()
	for _, id := range []string{"a", "b", "x", "y"} {
		_ = g.AddNode(dag.Node{ID: id})
	}
	_, _ = g.AddEdge(dag.Edge{From: "a", To: "y"})
	_, _ = g.AddEdge(dag.Edge{From: "b", To: "x"})

	fmt.Println(dag.CountLayerCrossings(g, []string{"a", "b"}, []string{"x", "y"}))
	fmt.Println(dag.CountLayerCrossings(g, []string{"a", "b"}, []string{"y", "x"}))
	// Output:
	// 1
	// 0
}
