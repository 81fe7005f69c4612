// Package render groups the diagram renderers.
//
// # Overview
//
// Each subpackage turns one parsed model into output:
//
//   - [flowchart]: layered box-and-line text for flowcharts
//   - [sequence]: lifelines and message arrows for sequence diagrams
//   - [nodelink]: Graphviz DOT export of flowcharts
//
// The text renderers share a two-phase shape. Compute measures every
// element and returns a layout value; Render draws that layout onto a
// [canvas.Canvas] and returns it with the layout warnings. Neither phase
// performs I/O or logs, so the same input always produces the same grid.
//
//	c, layout, warnings := flowchart.Render(f, flowchart.Options{Glyphs: canvas.Unicode})
//	fmt.Println(strings.Join(c.Flatten(true), "\n"))
//
// Wireframe panels are rendered by the wireframe package itself since
// their layout is a plain vertical stack.
//
// [flowchart]: github.com/matzehuels/asciisketch/pkg/render/flowchart
// [sequence]: github.com/matzehuels/asciisketch/pkg/render/sequence
// [nodelink]: github.com/matzehuels/asciisketch/pkg/render/nodelink
// [canvas.Canvas]: github.com/matzehuels/asciisketch/pkg/canvas#Canvas
package render
