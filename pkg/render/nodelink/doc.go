// Package nodelink exports flowcharts as Graphviz node-link graphs.
//
// # Overview
//
// The text renderer in [flowchart] is the primary output. This package is
// the escape hatch for diagrams that outgrow a terminal: the same parsed
// flowchart becomes DOT source that any Graphviz tool can lay out.
//
// # Usage
//
//	dot := nodelink.ToDOT(f, nodelink.Options{})
//	xdot, err := nodelink.Layout(ctx, dot)
//
// [ToDOT] maps the flow direction to rankdir, node shapes to box, rounded
// box and diamond, and edge styles to dotted and bold. Feedback edges are
// emitted with constraint=false so they do not affect ranking.
//
// [Layout] runs the dot engine in-process through
// [github.com/goccy/go-graphviz] and returns xdot output with node
// positions and edge splines.
//
// [flowchart]: github.com/matzehuels/asciisketch/pkg/render/flowchart
package nodelink
