// Package transform computes the layering of a flowchart graph.
//
// # Pipeline
//
// Layout runs three passes, each a pure function of the graph and the
// declaration order:
//
//  1. [FeedbackEdges] finds the edges that close cycles (back edges of a
//     depth-first search, self-loops included). They stay in the graph but
//     are excluded from ranking and drawn with a separate route.
//  2. [AssignLayers] ranks nodes by longest path from a source over the
//     remaining forward edges.
//  3. [OrderLayers] orders nodes inside each layer by the declaration order
//     of their first incoming forward edge.
//
// No pass minimizes crossings. The result is reproducible rather than
// optimal; [dag.CountCrossings] reports how many crossings it left.
//
// # Example
//
//	g := dag.New()
//	... add nodes and edges ...
//	feedback := transform.EdgeSet(transform.FeedbackEdges(g))
//	transform.AssignLayers(g, feedback)
//	layers := transform.OrderLayers(g, feedback)
package transform
