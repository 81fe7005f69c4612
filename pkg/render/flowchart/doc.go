// Package flowchart lays out and draws flowcharts as box-and-line text.
//
// # Layout
//
// [Compute] runs in four steps:
//
//  1. Cycle breaking: a depth-first search flags back edges as feedback
//     edges (see [transform.FeedbackEdges]).
//  2. Layering: longest-path ranking over the remaining edges assigns
//     every node a layer; layer 0 holds the sources.
//  3. Ordering: layer 0 keeps declaration order, deeper layers follow
//     the order of each node's first incoming edge.
//  4. Placement: layers become bands along the flow axis (columns for LR
//     and RL, rows for TD and BT). The gaps between bands are sized from
//     the tracks that pass through them.
//
// RL and BT flows are laid out as LR and TD and mirrored at the end, so
// all four directions share one code path.
//
// # Routing
//
// Every edge is one of three [RouteKind]s:
//
//   - Straight: neighbours in the same slot with nothing else attached,
//     joined by a single segment.
//   - Routed: leaves through the bottom of the source on a departure
//     track, runs along a channel in the gap before the destination and
//     enters the destination from the top.
//   - Feedback: leaves like a routed edge, drops to a row below the whole
//     diagram, returns along the leading margin and enters the target
//     from the top. Each feedback edge raises a warning.
//
// Edges sharing a cell merge into junction glyphs, so fan-out appears as
// ┬ and ┴ and crossings as ┼.
//
// # Labels
//
// Straight edge labels are written onto the edge itself. Routed labels sit
// to the right of the arrowhead, or below the source when several edges
// enter the same node. The column gap after a routed label is widened until
// the label clears every track in it. A label that would still overwrite
// another element is drawn anyway, counted as a collision and warned about.
package flowchart
