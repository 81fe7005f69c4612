// Package pkg provides the core libraries for asciisketch text rendering.
//
// # Overview
//
// asciisketch turns two kinds of plain-text sources into box drawings made
// of Unicode (or ASCII) characters: UI wireframes described in YAML, and
// Mermaid-style flowcharts and sequence diagrams. The pkg directory is
// organized into four areas:
//
//  1. [canvas] - The character grid every renderer draws on
//  2. Models and parsers - [wireframe] and [diagram]
//  3. Layout and drawing - [dag], [dag/transform] and [render]
//  4. [pipeline] - Orchestration (classify → parse → layout → render)
//
// # Architecture
//
// The typical data flow:
//
//	source text (file or stdin)
//	         ↓
//	    [pipeline] classifies the mode
//	         ↓
//	    [wireframe] or [diagram] parses the model
//	         ↓
//	    [render/flowchart], [render/sequence] or the wireframe renderer
//	         ↓
//	    [canvas] flattened into lines
//
// # Quick Start
//
//	runner := pipeline.NewRunner(nil)
//	result, err := runner.Execute(ctx, "graph LR; A --> B", pipeline.Options{})
//	if err != nil {
//	    return err
//	}
//	fmt.Println(result.Text)
//
// # Main Packages
//
// [canvas] - A fixed-size grid of cells with glyph sets, line joining,
// orthogonal paths and collision counting.
//
// [wireframe] - Panels and components decoded from YAML, laid out inside a
// fixed width with an explicit overflow policy.
//
// [diagram] - Flowchart and sequence models plus their line-oriented parser.
//
// [dag] - Directed graph with declaration-ordered nodes and crossing counts.
//
// [dag/transform] - Cycle breaking (feedback edges) and longest-path layering.
//
// [render/flowchart] - Layered flowchart layout with straight, routed and
// feedback edges, drawn in any of the four directions.
//
// [render/sequence] - Participant columns, lifelines and ordered messages.
//
// [render/nodelink] - Graphviz DOT export and layout through go-graphviz.
//
// [config] - Rendering defaults read from a TOML file.
//
// [errors] - Error codes and layout warnings shared by all stages.
//
// [observability] - Hooks for stage timing and diagnostics.
//
// # Testing
//
//	go test ./pkg/...                    # All tests
//	go test ./pkg/render/flowchart/...   # Specific package
//	go test -run Example ./pkg/dag       # Examples only
//
// [canvas]: https://pkg.go.dev/github.com/matzehuels/asciisketch/pkg/canvas
// [wireframe]: https://pkg.go.dev/github.com/matzehuels/asciisketch/pkg/wireframe
// [diagram]: https://pkg.go.dev/github.com/matzehuels/asciisketch/pkg/diagram
// [dag]: https://pkg.go.dev/github.com/matzehuels/asciisketch/pkg/dag
// [dag/transform]: https://pkg.go.dev/github.com/matzehuels/asciisketch/pkg/dag/transform
// [render]: https://pkg.go.dev/github.com/matzehuels/asciisketch/pkg/render
// [render/flowchart]: https://pkg.go.dev/github.com/matzehuels/asciisketch/pkg/render/flowchart
// [render/sequence]: https://pkg.go.dev/github.com/matzehuels/asciisketch/pkg/render/sequence
// [render/nodelink]: https://pkg.go.dev/github.com/matzehuels/asciisketch/pkg/render/nodelink
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/asciisketch/pkg/pipeline
// [config]: https://pkg.go.dev/github.com/matzehuels/asciisketch/pkg/config
// [errors]: https://pkg.go.dev/github.com/matzehuels/asciisketch/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/asciisketch/pkg/observability
package pkg
