package transform

import (
	"slices"

	"github.com/matzehuels/asciisketch/pkg/dag"
)

// AssignLayers assigns every node a row equal to the length of the longest
// path reaching it from a source, ignoring the edges in feedback.
//
// AssignLayers performs a topological traversal (Kahn's algorithm):
//  1. Initialize all nodes with no forward in-edges at row 0
//  2. Process the queue in declaration order: each child is pushed to
//     max(row, parent row + 1)
//  3. Decrement in-degree counters; add newly zero-degree nodes to queue
//
// After AssignLayers every forward edge satisfies Row(To) > Row(From).
// Nodes left unreached (only possible when feedback does not break every
// cycle) keep row 0. Existing row assignments are overwritten.
func AssignLayers(g *dag.DAG, feedback map[int]bool) {
	nodes := g.Nodes()
	inDegree := make(map[string]int, len(nodes))
	rows := make(map[string]int, len(nodes))
	queue := make([]string, 0, len(nodes))

	for _, n := range nodes {
		degree := 0
		for _, i := range g.InEdges(n.ID) {
			if !feedback[i] {
				degree++
			}
		}
		inDegree[n.ID] = degree
		rows[n.ID] = 0
		if degree == 0 {
			queue = append(queue, n.ID)
		}
	}

	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]

		for _, i := range g.OutEdges(curr) {
			if feedback[i] {
				continue
			}
			child := g.Edge(i).To
			if row := rows[curr] + 1; row > rows[child] {
				rows[child] = row
			}
			inDegree[child]--
			if inDegree[child] == 0 {
				queue = append(queue, child)
			}
		}
	}

	g.SetRows(rows)
}

// OrderLayers returns the nodes of each row, left to right (or top to bottom
// once transposed). Row 0 keeps declaration order. Deeper rows are ordered
// by the index of each node's first incoming forward edge, so nodes appear
// in the order the statements introducing them were written.
func OrderLayers(g *dag.DAG, feedback map[int]bool) [][]string {
	if g.NodeCount() == 0 {
		return nil
	}
	layers := make([][]string, g.MaxRow()+1)
	first := make(map[string]int)
	for _, n := range g.Nodes() {
		first[n.ID] = firstForwardEdge(g, n.ID, feedback)
		layers[n.Row] = append(layers[n.Row], n.ID)
	}
	for r := 1; r < len(layers); r++ {
		slices.SortStableFunc(layers[r], func(a, b string) int {
			return first[a] - first[b]
		})
	}
	return layers
}

func firstForwardEdge(g *dag.DAG, id string, feedback map[int]bool) int {
	for _, i := range g.InEdges(id) {
		if !feedback[i] {
			return i
		}
	}
	return g.EdgeCount()
}
