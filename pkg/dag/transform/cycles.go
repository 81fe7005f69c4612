package transform

import "github.com/matzehuels/asciisketch/pkg/dag"

// FeedbackEdges returns the indices of edges that close a cycle, in
// ascending order. The graph is not modified.
//
// A depth-first search starts from every source node in declaration order,
// then from any node still unvisited (nodes that only sit on cycles). An
// edge that reaches a node on the current search path is a back edge.
// Self-loops are always back edges. Removing the returned edges leaves an
// acyclic graph.
func FeedbackEdges(g *dag.DAG) []int {
	const (
		white = iota
		gray
		black
	)

	color := make(map[string]int, g.NodeCount())
	back := make(map[int]bool)

	var dfs func(node string)
	dfs = func(node string) {
		color[node] = gray
		for _, i := range g.OutEdges(node) {
			child := g.Edge(i).To
			switch color[child] {
			case white:
				dfs(child)
			case gray:
				back[i] = true
			}
		}
		color[node] = black
	}

	for _, n := range g.Sources() {
		if color[n.ID] == white {
			dfs(n.ID)
		}
	}
	for _, n := range g.Nodes() {
		if color[n.ID] == white {
			dfs(n.ID)
		}
	}

	out := make([]int, 0, len(back))
	for i := range g.EdgeCount() {
		if back[i] {
			out = append(out, i)
		}
	}
	return out
}

// EdgeSet converts a list of edge indices into a lookup set.
func EdgeSet(edges []int) map[int]bool {
	set := make(map[int]bool, len(edges))
	for _, i := range edges {
		set[i] = true
	}
	return set
}
