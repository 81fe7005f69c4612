// Package dag provides the directed graph behind flowchart layout.
//
// # Overview
//
// Flowcharts are drawn Sugiyama-style: nodes are assigned to layers, ordered
// within each layer, and edges are routed between layers. This package holds
// the graph those steps work on. Unlike a textbook DAG it accepts cycles,
// self-loops and parallel edges, because diagram authors write them; the
// [transform] subpackage finds the edges that close cycles and excludes them
// from ranking.
//
// # Determinism
//
// Every accessor returns nodes and edges in declaration order, and edges are
// identified by their index in that order. Layout decisions that need a tie
// breaker use these indices, so the same input always produces the same
// drawing.
//
// # Basic Usage
//
//	g := dag.New()
//	_ = g.AddNode(dag.Node{ID: "a"})
//	_ = g.AddNode(dag.Node{ID: "b"})
//	_, _ = g.AddEdge(dag.Edge{From: "a", To: "b"})
//
// # Edge Crossings
//
// [CountCrossings] and [CountLayerCrossings] count crossings between
// adjacent layers with a Fenwick tree in O(E log V). The flowchart renderer
// reports the count as a layout statistic.
//
// [transform]: github.com/matzehuels/asciisketch/pkg/dag/transform
package dag
