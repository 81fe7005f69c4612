package flowchart

import (
	"cmp"
	"slices"

	"github.com/matzehuels/asciisketch/pkg/canvas"
	"github.com/matzehuels/asciisketch/pkg/dag"
	"github.com/matzehuels/asciisketch/pkg/dag/transform"
	"github.com/matzehuels/asciisketch/pkg/diagram"
)

// nodeHeight is the height of every node box: border, label, border.
const nodeHeight = 3

// Box is a node placed on the canvas.
type Box struct {
	ID     string
	Label  string
	Shape  diagram.Shape
	Row    int
	Col    int
	Width  int
	Height int
}

// Bottom returns the row of the bottom border.
func (b Box) Bottom() int { return b.Row + b.Height - 1 }

// Right returns the column of the right border.
func (b Box) Right() int { return b.Col + b.Width - 1 }

// CenterRow returns the label row.
func (b Box) CenterRow() int { return b.Row + b.Height/2 }

// CenterCol returns the column edges leave and enter through.
func (b Box) CenterCol() int { return b.Col + b.Width/2 }

// RouteKind tells how an edge is drawn.
type RouteKind int

const (
	// Straight connects neighbours in the same slot with one segment.
	Straight RouteKind = iota
	// Routed leaves the source bottom and enters the destination top
	// through departure, channel and arrival tracks.
	Routed
	// Feedback closes a cycle and travels around the diagram.
	Feedback
)

func (k RouteKind) String() string {
	switch k {
	case Routed:
		return "routed"
	case Feedback:
		return "feedback"
	}
	return "straight"
}

// Route is the polyline of one edge.
type Route struct {
	Edge   int // index into Flowchart.Edges
	Kind   RouteKind
	Points []canvas.Point
}

// Label is the placement of one edge label. Own labels sit on a segment
// drawn by their own edge and may replace its line cells.
type Label struct {
	Edge int
	Row  int
	Col  int
	Text string
	Own  bool
}

// Layout is the measured flowchart: every box, route and label in canvas
// coordinates, computed before anything is drawn.
type Layout struct {
	Direction diagram.Direction
	Width     int
	Height    int

	// Layers lists node IDs per layer in slot order.
	Layers [][]string
	// Feedback lists the indices of edges that close cycles.
	Feedback []int
	// Crossings counts crossings between edges of adjacent layers.
	Crossings int

	Boxes  []Box
	Routes []Route
	Labels []Label

	index map[string]int
}

// Box returns the placed box of node id.
func (l *Layout) Box(id string) (Box, bool) {
	i, ok := l.index[id]
	if !ok {
		return Box{}, false
	}
	return l.Boxes[i], true
}

// rowGap is the strip of rows between two bands of boxes. From top to
// bottom it holds an optional label row, departure tracks, arrival tracks
// and the arrow row directly above the next band.
type rowGap struct {
	label bool
	dep   []string
	arr   []string
	arrow bool
	min   int

	start int
}

func (g *rowGap) size() int {
	n := len(g.dep) + len(g.arr)
	if g.label {
		n++
	}
	if g.arrow {
		n++
	}
	return max(n, g.min)
}

func (g *rowGap) labelRow() int { return g.start }

func (g *rowGap) depRow(id string) int {
	return g.start + b2i(g.label) + slices.Index(g.dep, id)
}

func (g *rowGap) arrRow(id string) int {
	return g.start + b2i(g.label) + len(g.dep) + slices.Index(g.arr, id)
}

func (g *rowGap) arrowRow() int { return g.start + g.size() - 1 }

// track identifies one vertical lane inside a column gap.
type track struct {
	kind byte // 'r' return, 'd' descent, 'c' channel
	node string
	edge int
}

// colGap is the strip of columns between two bands. Tracks sit on every
// other column starting at offset lead+1; the lead columns are kept clear
// for routed labels running out of the band on the left.
type colGap struct {
	tracks []track
	min    int
	lead   int

	start int
}

func (g *colGap) size() int {
	w := 0
	if len(g.tracks) > 0 {
		w = 2*len(g.tracks) + 1
	}
	return g.lead + max(w, g.min)
}

func (g *colGap) col(t track) int {
	return g.start + g.lead + 1 + 2*slices.Index(g.tracks, t)
}

// Free offset after the last track, where straight edge labels start.
func (g *colGap) free() int { return g.start + g.lead + 2*len(g.tracks) + 1 }

func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}

// planner carries the intermediate state of one layout computation.
type planner struct {
	f          *diagram.Flowchart
	horizontal bool

	layers   [][]string
	layerOf  map[string]int
	slotOf   map[string]int
	nSlots   int
	feedback map[int]bool
	fbOrder  map[int]int

	kinds   []RouteKind
	departs map[string][]int // edges leaving through the bottom
	arrives map[string][]int // edges using the arrival track
	entries map[string]int   // edges entering through the top
	source  map[int]bool     // labels placed below the source

	rowGaps []*rowGap // between bands along the row axis
	colGaps []*colGap // between bands along the column axis
	rowBand []int     // band start per row band
	colBand []int
	colSize []int
	width   int
	height  int
	fbStart int
}

// Compute measures the flowchart: ranking, ordering, band and gap sizes,
// boxes, routes and labels.
func Compute(f *diagram.Flowchart) *Layout {
	g := f.Graph()
	fb := transform.FeedbackEdges(g)
	feedback := transform.EdgeSet(fb)
	transform.AssignLayers(g, feedback)
	layers := transform.OrderLayers(g, feedback)

	l := &Layout{
		Direction: f.Direction,
		Layers:    layers,
		Feedback:  fb,
		index:     make(map[string]int),
	}
	if len(f.Nodes) == 0 {
		return l
	}

	orders := make(map[int][]string, len(layers))
	for i, ids := range layers {
		orders[i] = ids
	}
	l.Crossings = dag.CountCrossings(g, orders)

	p := &planner{
		f:          f,
		horizontal: f.Direction.Horizontal(),
		layers:     layers,
		layerOf:    make(map[string]int),
		slotOf:     make(map[string]int),
		feedback:   feedback,
		fbOrder:    make(map[int]int),
		departs:    make(map[string][]int),
		arrives:    make(map[string][]int),
		entries:    make(map[string]int),
		source:     make(map[int]bool),
	}
	for li, ids := range layers {
		for s, id := range ids {
			p.layerOf[id] = li
			p.slotOf[id] = s
		}
		p.nSlots = max(p.nSlots, len(ids))
	}
	for k, i := range fb {
		p.fbOrder[i] = k
	}

	p.classify()
	p.placeLabels()
	p.buildGaps()
	p.measure()

	for _, n := range f.Nodes {
		l.index[n.ID] = len(l.Boxes)
		l.Boxes = append(l.Boxes, p.box(n))
	}
	for i := range f.Edges {
		l.Routes = append(l.Routes, Route{Edge: i, Kind: p.kinds[i], Points: p.route(l, i)})
	}
	for i, e := range f.Edges {
		if e.Label != "" {
			l.Labels = append(l.Labels, p.label(l, i))
		}
	}

	l.Width, l.Height = p.width, p.height
	for _, lb := range l.Labels {
		l.Width = max(l.Width, lb.Col+canvas.StringWidth(lb.Text))
	}
	l.mirror()
	return l
}

// classify decides the route kind of every edge and which tracks it uses.
func (p *planner) classify() {
	fwdOut := make(map[string]int)
	fwdIn := make(map[string]int)
	for i, e := range p.f.Edges {
		if !p.feedback[i] {
			fwdOut[e.From]++
			fwdIn[e.To]++
		}
	}

	p.kinds = make([]RouteKind, len(p.f.Edges))
	for i, e := range p.f.Edges {
		u, v := e.From, e.To
		switch {
		case p.feedback[i]:
			p.kinds[i] = Feedback
		case p.slotOf[u] == p.slotOf[v] && p.layerOf[v] == p.layerOf[u]+1 &&
			fwdOut[u] == 1 && fwdIn[v] == 1:
			p.kinds[i] = Straight
		default:
			p.kinds[i] = Routed
		}

		if p.kinds[i] != Straight {
			p.departs[u] = append(p.departs[u], i)
		}
		if p.usesArrivalTrack(i) {
			p.arrives[v] = append(p.arrives[v], i)
		}
		if p.kinds[i] != Straight || !p.horizontal {
			p.entries[v]++
		}
	}
}

// usesArrivalTrack reports whether edge i reaches its destination along
// the destination's arrival track. Top-down routed edges between adjacent
// layers drop straight from the departure track instead.
func (p *planner) usesArrivalTrack(i int) bool {
	switch p.kinds[i] {
	case Feedback:
		return true
	case Routed:
		e := p.f.Edges[i]
		return p.horizontal || p.layerOf[e.To] > p.layerOf[e.From]+1
	}
	return false
}

// placeLabels chooses where routed labels go. A label sits next to the
// arrowhead unless several edges enter the destination, in which case it
// moves below the source when the source has a single departure.
func (p *planner) placeLabels() {
	for i, e := range p.f.Edges {
		if e.Label == "" || p.kinds[i] != Routed {
			continue
		}
		if p.entries[e.To] > 1 && len(p.departs[e.From]) == 1 {
			p.source[i] = true
		}
	}
}

// cross returns the coordinate of id along a gap: layer in horizontal
// flows, slot in vertical ones.
func (p *planner) cross(id string) int {
	if p.horizontal {
		return p.layerOf[id]
	}
	return p.slotOf[id]
}

// bandOf returns which row band and column band a node sits in.
func (p *planner) bandOf(id string) (row, col int) {
	if p.horizontal {
		return p.slotOf[id], p.layerOf[id]
	}
	return p.layerOf[id], p.slotOf[id]
}

func (p *planner) buildGaps() {
	nLayers := len(p.layers)
	nRow, nCol := nLayers, p.nSlots
	if p.horizontal {
		nRow, nCol = p.nSlots, nLayers
	}

	p.rowGaps = make([]*rowGap, nRow+1)
	for i := range p.rowGaps {
		g := &rowGap{}
		if i > 0 && i < nRow {
			g.min = 1
			if !p.horizontal {
				g.min = 2
			}
		}
		p.rowGaps[i] = g
	}
	p.colGaps = make([]*colGap, nCol+1)
	for i := range p.colGaps {
		g := &colGap{}
		if i > 0 && i < nCol {
			g.min = 3
			if p.horizontal {
				g.min = 4
			}
		}
		p.colGaps[i] = g
	}

	// Nodes in layer then slot order keep track assignment deterministic.
	var nodes []string
	for _, ids := range p.layers {
		nodes = append(nodes, ids...)
	}

	for _, id := range nodes {
		r, _ := p.bandOf(id)
		if len(p.departs[id]) > 0 {
			p.rowGaps[r+1].dep = append(p.rowGaps[r+1].dep, id)
		}
		if len(p.arrives[id]) > 0 {
			p.rowGaps[r].arr = append(p.rowGaps[r].arr, id)
		}
		if p.entries[id] > 0 {
			p.rowGaps[r].arrow = true
		}
	}
	for i, e := range p.f.Edges {
		if p.source[i] {
			r, _ := p.bandOf(e.From)
			p.rowGaps[r+1].label = true
		}
	}
	// Rightmost first, so a vertical drop never cuts a track to its left.
	for _, g := range p.rowGaps {
		byCross := func(a, b string) int { return cmp.Compare(p.cross(b), p.cross(a)) }
		slices.SortStableFunc(g.dep, byCross)
		slices.SortStableFunc(g.arr, byCross)
	}

	// Return tracks in the leading margin, later feedback edges outermost.
	for k := len(p.f.Edges) - 1; k >= 0; k-- {
		if p.feedback[k] {
			p.colGaps[0].tracks = append(p.colGaps[0].tracks, track{kind: 'r', edge: k})
		}
	}
	for _, id := range nodes {
		_, c := p.bandOf(id)
		for _, i := range p.departs[id] {
			if p.kinds[i] == Feedback {
				p.colGaps[c+1].tracks = append(p.colGaps[c+1].tracks, track{kind: 'd', node: id})
				break
			}
		}
	}
	if p.horizontal {
		// Channels sit in the gap before the destination layer, by slot.
		bySlot := slices.Clone(nodes)
		slices.SortStableFunc(bySlot, func(a, b string) int { return cmp.Compare(p.slotOf[a], p.slotOf[b]) })
		for _, id := range bySlot {
			if p.hasForwardArrival(id) {
				c := p.layerOf[id]
				p.colGaps[c].tracks = append(p.colGaps[c].tracks, track{kind: 'c', node: id})
			}
		}
		for i, e := range p.f.Edges {
			if p.kinds[i] == Straight && e.Label != "" {
				g := p.colGaps[p.layerOf[e.To]]
				g.min = max(g.min, 2*len(g.tracks)+canvas.StringWidth(e.Label)+3)
			}
		}
		for _, g := range p.colGaps[1 : len(p.colGaps)-1] {
			g.min = max(g.min, 2*len(g.tracks)+2)
		}
	} else {
		// Lanes for long edges sit in the gap right of the destination slot.
		for _, id := range nodes {
			if p.hasForwardArrival(id) {
				c := p.slotOf[id] + 1
				p.colGaps[c].tracks = append(p.colGaps[c].tracks, track{kind: 'c', node: id})
			}
		}
	}
}

func (p *planner) hasForwardArrival(id string) bool {
	for _, i := range p.arrives[id] {
		if p.kinds[i] == Routed {
			return true
		}
	}
	return false
}

// measure fixes the start of every band and gap.
func (p *planner) measure() {
	nRow, nCol := len(p.rowGaps)-1, len(p.colGaps)-1

	p.colSize = make([]int, nCol)
	for _, n := range p.f.Nodes {
		_, c := p.bandOf(n.ID)
		p.colSize[c] = max(p.colSize[c], nodeWidth(n))
	}
	p.clearLabels()

	y := 0
	p.rowBand = make([]int, nRow)
	for i, g := range p.rowGaps {
		g.start = y
		y += g.size()
		if i < nRow {
			p.rowBand[i] = y
			y += nodeHeight
		}
	}
	p.fbStart = y
	p.height = y + len(p.fbOrder)

	x := 0
	p.colBand = make([]int, nCol)
	for i, g := range p.colGaps {
		g.start = x
		x += g.size()
		if i < nCol {
			p.colBand[i] = x
			x += p.colSize[i]
		}
	}
	p.width = x
}

// clearLabels widens the column gap after every routed label that runs
// past the right edge of its band, so the label ends at least one blank
// column before the first track or the next band.
func (p *planner) clearLabels() {
	last := len(p.colGaps) - 1
	for i, e := range p.f.Edges {
		if e.Label == "" || p.kinds[i] != Routed {
			continue
		}
		id := e.To
		if p.source[i] {
			id = e.From
		}
		_, c := p.bandOf(id)
		// Labels start two columns right of the band center.
		over := p.colSize[c]/2 + 2 + canvas.StringWidth(e.Label) - p.colSize[c]
		g := p.colGaps[c+1]
		if len(g.tracks) == 0 {
			if c+1 == last {
				continue
			}
			over -= g.min - 1
		}
		g.lead = max(g.lead, over)
	}
}

func nodeWidth(n diagram.Node) int {
	return canvas.StringWidth(n.Label) + 4
}

func (p *planner) box(n diagram.Node) Box {
	r, c := p.bandOf(n.ID)
	w := nodeWidth(n)
	center := p.colBand[c] + p.colSize[c]/2
	return Box{
		ID:     n.ID,
		Label:  n.Label,
		Shape:  n.Shape,
		Row:    p.rowBand[r],
		Col:    center - w/2,
		Width:  w,
		Height: nodeHeight,
	}
}

func (p *planner) depRow(id string) int {
	r, _ := p.bandOf(id)
	return p.rowGaps[r+1].depRow(id)
}

func (p *planner) arrRow(id string) int {
	r, _ := p.bandOf(id)
	return p.rowGaps[r].arrRow(id)
}

func (p *planner) arrowRow(id string) int {
	r, _ := p.bandOf(id)
	return p.rowGaps[r].arrowRow()
}

// trackCol finds the column of a track in any column gap.
func (p *planner) trackCol(t track) int {
	for _, g := range p.colGaps {
		if slices.Contains(g.tracks, t) {
			return g.col(t)
		}
	}
	return 0
}

// route builds the corner points of edge i.
func (p *planner) route(l *Layout, i int) []canvas.Point {
	e := p.f.Edges[i]
	u, _ := l.Box(e.From)
	v, _ := l.Box(e.To)

	if p.kinds[i] == Straight {
		if p.horizontal {
			end := v.Col - 1
			if !e.Head {
				end = v.Col
			}
			return []canvas.Point{{Row: u.CenterRow(), Col: u.Right()}, {Row: v.CenterRow(), Col: end}}
		}
		end := v.Row - 1
		if !e.Head {
			end = v.Row
		}
		return []canvas.Point{{Row: u.Bottom(), Col: u.CenterCol()}, {Row: end, Col: v.CenterCol()}}
	}

	// Every other route leaves through the bottom of the source.
	dep := p.depRow(e.From)
	pts := []canvas.Point{
		{Row: u.Bottom(), Col: u.CenterCol()},
		{Row: dep, Col: u.CenterCol()},
	}
	switch {
	case p.kinds[i] == Feedback:
		descent := p.trackCol(track{kind: 'd', node: e.From})
		bottom := p.fbStart + p.fbOrder[i]
		ret := p.trackCol(track{kind: 'r', edge: i})
		arr := p.arrRow(e.To)
		pts = append(pts,
			canvas.Point{Row: dep, Col: descent},
			canvas.Point{Row: bottom, Col: descent},
			canvas.Point{Row: bottom, Col: ret},
			canvas.Point{Row: arr, Col: ret},
			canvas.Point{Row: arr, Col: v.CenterCol()},
		)
	case p.usesArrivalTrack(i):
		channel := p.trackCol(track{kind: 'c', node: e.To})
		arr := p.arrRow(e.To)
		pts = append(pts,
			canvas.Point{Row: dep, Col: channel},
			canvas.Point{Row: arr, Col: channel},
			canvas.Point{Row: arr, Col: v.CenterCol()},
		)
	default:
		pts = append(pts, canvas.Point{Row: dep, Col: v.CenterCol()})
	}

	end := p.arrowRow(e.To)
	if !e.Head {
		end = v.Row
	}
	return append(pts, canvas.Point{Row: end, Col: v.CenterCol()})
}

// label places the label of edge i.
func (p *planner) label(l *Layout, i int) Label {
	e := p.f.Edges[i]
	u, _ := l.Box(e.From)
	v, _ := l.Box(e.To)
	lb := Label{Edge: i, Text: e.Label}

	switch {
	case p.kinds[i] == Straight && p.horizontal:
		_, c := p.bandOf(e.To)
		lb.Row, lb.Col, lb.Own = u.CenterRow(), p.colGaps[c].free(), true
	case p.kinds[i] == Feedback:
		lb.Row = p.fbStart + p.fbOrder[i]
		lb.Col = p.trackCol(track{kind: 'r', edge: i}) + 2
		lb.Own = true
	case p.source[i]:
		r, _ := p.bandOf(e.From)
		lb.Row, lb.Col = p.rowGaps[r+1].labelRow(), u.CenterCol()+2
	default:
		lb.Row, lb.Col = p.arrowRow(e.To), v.CenterCol()+2
	}
	return lb
}

// mirror flips the finished layout for right-to-left and bottom-up flows.
func (l *Layout) mirror() {
	switch l.Direction {
	case diagram.RightLeft:
		for i := range l.Boxes {
			b := &l.Boxes[i]
			b.Col = l.Width - b.Col - b.Width
		}
		for _, r := range l.Routes {
			for j := range r.Points {
				r.Points[j].Col = l.Width - 1 - r.Points[j].Col
			}
		}
		for i := range l.Labels {
			lb := &l.Labels[i]
			lb.Col = l.Width - lb.Col - canvas.StringWidth(lb.Text)
		}
	case diagram.BottomUp:
		for i := range l.Boxes {
			b := &l.Boxes[i]
			b.Row = l.Height - b.Row - b.Height
		}
		for _, r := range l.Routes {
			for j := range r.Points {
				r.Points[j].Row = l.Height - 1 - r.Points[j].Row
			}
		}
		for i := range l.Labels {
			lb := &l.Labels[i]
			lb.Row = l.Height - 1 - lb.Row
		}
	}
}
