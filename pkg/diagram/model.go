// Package diagram parses the Mermaid-style diagram language into typed
// flowchart and sequence models.
//
// # Input
//
// A diagram starts with a header statement naming its kind:
//
//	graph LR                 flowchart, left to right
//	flowchart TD             flowchart, top down (also TB; default)
//	sequenceDiagram          sequence diagram
//
// Statements are separated by newlines or semicolons. Lines starting with
// %% are comments.
//
// # Flowcharts
//
// A statement is a chain of node groups joined by arrows:
//
//	A[Start] --> B{Decision}
//	B -->|Yes| C[Go] & D[Stop]
//
// Groups joined with & expand into one [Edge] per (source, target) pair, so
// fan-out and fan-in are plain repeated edges. Shapes are chosen by the
// brackets around the label: [rect], (round), {diamond}, ([stadium]).
//
// # Sequence diagrams
//
// Messages are written From->>To: label (solid) or From-->>To: label
// (dashed). Participants are created on first mention and may be declared
// up front with "participant X as Label".
//
// # Errors
//
// Parsing either returns a complete model or an *errors.Error with the
// offending line; no partial model is returned. Styling directives that
// do not affect text output are skipped with a warning.
package diagram

import (
	"github.com/matzehuels/asciisketch/pkg/dag"
	"github.com/matzehuels/asciisketch/pkg/errors"
)

// Kind identifies the diagram type declared by the header.
type Kind int

const (
	KindUnknown Kind = iota
	KindFlowchart
	KindSequence
)

func (k Kind) String() string {
	switch k {
	case KindFlowchart:
		return "flowchart"
	case KindSequence:
		return "sequence"
	}
	return "unknown"
}

// Direction is the flow axis of a flowchart.
type Direction int

const (
	TopDown Direction = iota
	LeftRight
	RightLeft
	BottomUp
)

func (d Direction) String() string {
	switch d {
	case LeftRight:
		return "LR"
	case RightLeft:
		return "RL"
	case BottomUp:
		return "BT"
	}
	return "TD"
}

// Horizontal reports whether layers run along the x axis.
func (d Direction) Horizontal() bool { return d == LeftRight || d == RightLeft }

// Shape is the outline of a flowchart node.
type Shape int

const (
	ShapeRect Shape = iota
	ShapeRound
	ShapeDiamond
	ShapeStadium
)

func (s Shape) String() string {
	switch s {
	case ShapeRound:
		return "round"
	case ShapeDiamond:
		return "diamond"
	case ShapeStadium:
		return "stadium"
	}
	return "rect"
}

// EdgeStyle is the stroke of a flowchart edge.
type EdgeStyle int

const (
	StyleSolid EdgeStyle = iota
	StyleLine
	StyleDotted
	StyleThick
)

func (s EdgeStyle) String() string {
	switch s {
	case StyleLine:
		return "line"
	case StyleDotted:
		return "dotted"
	case StyleThick:
		return "thick"
	}
	return "solid"
}

// Node is a flowchart vertex.
type Node struct {
	ID    string
	Label string
	Shape Shape
	Line  int // line of first appearance
}

// Edge is a directed flowchart connection. Head is false for the arrows
// that draw a bare line (---, -.-, ===).
type Edge struct {
	From  string
	To    string
	Label string
	Style EdgeStyle
	Head  bool
	Line  int
}

// Flowchart is a parsed flowchart.
type Flowchart struct {
	Direction Direction
	Nodes     []Node
	Edges     []Edge

	index map[string]int
}

// Node returns the node with the given ID.
func (f *Flowchart) Node(id string) (Node, bool) {
	i, ok := f.index[id]
	if !ok {
		return Node{}, false
	}
	return f.Nodes[i], true
}

// Graph builds the ordered graph of the flowchart. Edge i of the graph is
// f.Edges[i].
func (f *Flowchart) Graph() *dag.DAG {
	g := dag.New()
	for _, n := range f.Nodes {
		_ = g.AddNode(dag.Node{ID: n.ID})
	}
	for _, e := range f.Edges {
		_, _ = g.AddEdge(dag.Edge{From: e.From, To: e.To})
	}
	return g
}

// MessageStyle is the stroke of a sequence message.
type MessageStyle int

const (
	MessageSolid MessageStyle = iota
	MessageDashed
)

func (s MessageStyle) String() string {
	if s == MessageDashed {
		return "dashed"
	}
	return "solid"
}

// Participant is a sequence diagram actor. Column is its position from the
// left in first-appearance order.
type Participant struct {
	Name   string
	Label  string
	Column int
}

// Message is one arrow of a sequence diagram. From and To are participant
// columns.
type Message struct {
	From  int
	To    int
	Label string
	Style MessageStyle
	Line  int
}

// Sequence is a parsed sequence diagram.
type Sequence struct {
	Participants []Participant
	Messages     []Message
}

// Diagram is the result of [Parse]. Exactly one of Flowchart and Sequence
// is set, matching Kind.
type Diagram struct {
	Kind      Kind
	Flowchart *Flowchart
	Sequence  *Sequence
	Warnings  []errors.Warning
}
