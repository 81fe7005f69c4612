package dag

import (
	"errors"
	"maps"
	"slices"
)

var (
	// ErrInvalidNodeID is returned by [DAG.AddNode] when the node ID is empty.
	ErrInvalidNodeID = errors.New("node ID must not be empty")

	// ErrDuplicateNodeID is returned by [DAG.AddNode] when a node with the
	// same ID already exists in the graph.
	ErrDuplicateNodeID = errors.New("duplicate node ID")

	// ErrUnknownSourceNode is returned by [DAG.AddEdge] when the From node
	// does not exist.
	ErrUnknownSourceNode = errors.New("unknown source node")

	// ErrUnknownTargetNode is returned by [DAG.AddEdge] when the To node
	// does not exist.
	ErrUnknownTargetNode = errors.New("unknown target node")

	// ErrGraphHasCycle is returned by [DAG.Validate] when a cycle is detected
	// among the edges that are not excluded.
	ErrGraphHasCycle = errors.New("graph contains a cycle")
)

// Metadata stores arbitrary key-value pairs attached to nodes or edges.
// Metadata maps are never nil after the node or edge is added.
type Metadata map[string]any

// Node is a vertex with an assigned row (layer).
type Node struct {
	ID   string   // Unique identifier
	Row  int      // Layer assignment (0 = first layer)
	Meta Metadata // Arbitrary key-value metadata (never nil after AddNode)
}

// Edge is a directed connection between two nodes. Unlike a layered tower,
// edges may span any number of rows, point backwards or loop on one node.
type Edge struct {
	From string   // Source node ID
	To   string   // Target node ID
	Meta Metadata // Arbitrary key-value metadata (never nil after AddEdge)
}

// DAG is a directed graph that remembers declaration order. Nodes, edges and
// every adjacency list come back in the order they were added, which makes
// all algorithms built on it deterministic without sorting by ID.
//
// The zero value is not usable; use New to create a valid DAG instance.
// DAG is not safe for concurrent use without external synchronization.
type DAG struct {
	nodes    map[string]*Node
	order    []*Node
	edges    []Edge
	outgoing map[string][]int // nodeID -> indices into edges
	incoming map[string][]int
}

// New creates an empty graph.
func New() *DAG {
	return &DAG{
		nodes:    make(map[string]*Node),
		outgoing: make(map[string][]int),
		incoming: make(map[string][]int),
	}
}

// AddNode adds a node at the end of the declaration order. Returns
// ErrInvalidNodeID if the ID is empty, or ErrDuplicateNodeID if it is taken.
func (d *DAG) AddNode(n Node) error {
	if n.ID == "" {
		return ErrInvalidNodeID
	}
	if _, exists := d.nodes[n.ID]; exists {
		return ErrDuplicateNodeID
	}
	if n.Meta == nil {
		n.Meta = Metadata{}
	}
	node := &n
	d.nodes[node.ID] = node
	d.order = append(d.order, node)
	return nil
}

// AddEdge adds a directed edge between two existing nodes and returns its
// index. Parallel edges and self-loops are allowed.
func (d *DAG) AddEdge(e Edge) (int, error) {
	if _, ok := d.nodes[e.From]; !ok {
		return -1, ErrUnknownSourceNode
	}
	if _, ok := d.nodes[e.To]; !ok {
		return -1, ErrUnknownTargetNode
	}
	if e.Meta == nil {
		e.Meta = Metadata{}
	}
	i := len(d.edges)
	d.edges = append(d.edges, e)
	d.outgoing[e.From] = append(d.outgoing[e.From], i)
	d.incoming[e.To] = append(d.incoming[e.To], i)
	return i, nil
}

// SetRows updates the row assignments of the given nodes. Nodes not present
// in rows keep their current row.
func (d *DAG) SetRows(rows map[string]int) {
	for id, row := range rows {
		if n, ok := d.nodes[id]; ok {
			n.Row = row
		}
	}
}

// Nodes returns all nodes in declaration order. The pointers refer to the
// graph's nodes.
func (d *DAG) Nodes() []*Node { return slices.Clone(d.order) }

// Edges returns a copy of all edges in declaration order.
func (d *DAG) Edges() []Edge { return slices.Clone(d.edges) }

// Edge returns the edge with index i.
func (d *DAG) Edge(i int) Edge { return d.edges[i] }

// NodeCount returns the number of nodes in the graph.
func (d *DAG) NodeCount() int { return len(d.nodes) }

// EdgeCount returns the number of edges in the graph.
func (d *DAG) EdgeCount() int { return len(d.edges) }

// Node returns the node with the given ID and true, or nil and false.
func (d *DAG) Node(id string) (*Node, bool) {
	n, ok := d.nodes[id]
	return n, ok
}

// OutEdges returns the indices of edges leaving id, in declaration order.
// The returned slice must not be modified.
func (d *DAG) OutEdges(id string) []int { return d.outgoing[id] }

// InEdges returns the indices of edges entering id, in declaration order.
// The returned slice must not be modified.
func (d *DAG) InEdges(id string) []int { return d.incoming[id] }

// Children returns the targets of edges leaving id, in declaration order.
// A target appears once per edge.
func (d *DAG) Children(id string) []string {
	var out []string
	for _, i := range d.outgoing[id] {
		out = append(out, d.edges[i].To)
	}
	return out
}

// Parents returns the sources of edges entering id, in declaration order.
func (d *DAG) Parents(id string) []string {
	var out []string
	for _, i := range d.incoming[id] {
		out = append(out, d.edges[i].From)
	}
	return out
}

// OutDegree returns the number of edges leaving the node.
func (d *DAG) OutDegree(id string) int { return len(d.outgoing[id]) }

// InDegree returns the number of edges entering the node.
func (d *DAG) InDegree(id string) int { return len(d.incoming[id]) }

// NodesInRow returns the nodes assigned to row, in declaration order.
func (d *DAG) NodesInRow(row int) []*Node {
	var out []*Node
	for _, n := range d.order {
		if n.Row == row {
			out = append(out, n)
		}
	}
	return out
}

// RowIDs returns all row indices in ascending order.
func (d *DAG) RowIDs() []int {
	rows := make(map[int]struct{})
	for _, n := range d.order {
		rows[n.Row] = struct{}{}
	}
	return slices.Sorted(maps.Keys(rows))
}

// RowCount returns the number of distinct rows.
func (d *DAG) RowCount() int { return len(d.RowIDs()) }

// MaxRow returns the highest row index, or 0 if the graph is empty.
func (d *DAG) MaxRow() int {
	m := 0
	for _, n := range d.order {
		m = max(m, n.Row)
	}
	return m
}

// Sources returns nodes with no incoming edges, in declaration order.
func (d *DAG) Sources() []*Node {
	var sources []*Node
	for _, n := range d.order {
		if len(d.incoming[n.ID]) == 0 {
			sources = append(sources, n)
		}
	}
	return sources
}

// Sinks returns nodes with no outgoing edges, in declaration order.
func (d *DAG) Sinks() []*Node {
	var sinks []*Node
	for _, n := range d.order {
		if len(d.outgoing[n.ID]) == 0 {
			sinks = append(sinks, n)
		}
	}
	return sinks
}

// Validate reports ErrGraphHasCycle if the edges not listed in skip form a
// cycle. A nil skip checks the whole graph.
func (d *DAG) Validate(skip map[int]bool) error {
	const (
		white = iota
		gray
		black
	)

	color := make(map[string]int, len(d.nodes))
	var hasCycle bool

	var dfs func(id string)
	dfs = func(id string) {
		color[id] = gray
		for _, i := range d.outgoing[id] {
			if skip[i] {
				continue
			}
			child := d.edges[i].To
			switch color[child] {
			case white:
				dfs(child)
			case gray:
				hasCycle = true
			}
			if hasCycle {
				return
			}
		}
		color[id] = black
	}

	for _, n := range d.order {
		if color[n.ID] == white {
			dfs(n.ID)
			if hasCycle {
				return ErrGraphHasCycle
			}
		}
	}
	return nil
}

// PosMap creates a position lookup map from a slice of node IDs.
func PosMap(ids []string) map[string]int {
	m := make(map[string]int, len(ids))
	for i, id := range ids {
		m[id] = i
	}
	return m
}

// NodeIDs extracts the ID from each node in a slice.
func NodeIDs(nodes []*Node) []string {
	ids := make([]string, len(nodes))
	for i, n := range nodes {
		ids[i] = n.ID
	}
	return ids
}
