package dag

import (
	"maps"
	"slices"
)

// CountCrossings returns the total number of edge crossings for the given row
// orderings, summed over each pair of consecutive rows. Rows missing from
// orders are treated as empty.
func CountCrossings(g *DAG, orders map[int][]string) int {
	rows := slices.Sorted(maps.Keys(orders))
	crossings := 0
	for _, r := range rows {
		if lower, ok := orders[r+1]; ok {
			crossings += CountLayerCrossings(g, orders[r], lower)
		}
	}
	return crossings
}

// CountLayerCrossings counts crossings among edges from upper to lower.
//
// Two edges (u1,v1) and (u2,v2) cross if and only if:
//
//	pos(u1) < pos(u2) AND pos(v1) > pos(v2)
//
// which is the number of inversions in the target positions once edges are
// sorted by source position. Edges to nodes outside lower are ignored.
func CountLayerCrossings(g *DAG, upper, lower []string) int {
	if len(upper) == 0 || len(lower) == 0 {
		return 0
	}

	lowerPos := PosMap(lower)

	type edge struct{ upper, lower int }
	edges := make([]edge, 0, len(upper)*2)
	for i, nodeID := range upper {
		for _, child := range g.Children(nodeID) {
			if pos, ok := lowerPos[child]; ok {
				edges = append(edges, edge{i, pos})
			}
		}
	}
	if len(edges) < 2 {
		return 0
	}

	slices.SortFunc(edges, func(a, b edge) int {
		if a.upper != b.upper {
			return a.upper - b.upper
		}
		return a.lower - b.lower
	})

	fenwick := make([]int, len(lower)+1)
	crossings, total := 0, 0
	for _, e := range edges {
		lessOrEqual := 0
		for q := e.lower + 1; q > 0; q -= q & (-q) {
			lessOrEqual += fenwick[q]
		}
		crossings += total - lessOrEqual

		total++
		for idx := e.lower + 1; idx < len(fenwick); idx += idx & (-idx) {
			fenwick[idx]++
		}
	}
	return crossings
}
