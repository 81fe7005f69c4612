package canvas

// Point is a cell coordinate.
type Point struct {
	Row, Col int
}

// Heading returns the single arm pointing from a towards b along one axis.
// Points that are not axis-aligned report the horizontal component first.
func Heading(a, b Point) Arms {
	switch {
	case b.Col > a.Col:
		return Right
	case b.Col < a.Col:
		return Left
	case b.Row > a.Row:
		return Down
	case b.Row < a.Row:
		return Up
	}
	return 0
}

// Expand turns the corner points of an orthogonal polyline into the full
// list of cells it covers. A diagonal step between two corners is walked
// horizontally first. Repeated points are dropped.
func Expand(corners []Point) []Point {
	var cells []Point
	for i, p := range corners {
		if i == 0 {
			cells = append(cells, p)
			continue
		}
		cur := cells[len(cells)-1]
		for cur.Col != p.Col {
			if p.Col > cur.Col {
				cur.Col++
			} else {
				cur.Col--
			}
			cells = append(cells, cur)
		}
		for cur.Row != p.Row {
			if p.Row > cur.Row {
				cur.Row++
			} else {
				cur.Row--
			}
			cells = append(cells, cur)
		}
	}
	return cells
}

// DrawPath draws an orthogonal polyline through corners with stroke s. Every
// cell is merged with whatever line glyphs already occupy it, so a path that
// starts on a box edge produces a tee and paths sharing cells produce
// junctions. It returns the direction of travel into the last cell, or zero
// for paths shorter than two cells.
func (c *Canvas) DrawPath(corners []Point, s Stroke, g Glyphs) Arms {
	return c.drawCells(Expand(corners), s, g, 0)
}

// DrawArrow draws the path through corners and places an arrowhead on its
// final cell, pointing in the direction of travel.
func (c *Canvas) DrawArrow(corners []Point, s Stroke, g Glyphs) {
	cells := Expand(corners)
	if len(cells) < 2 {
		return
	}
	last := cells[len(cells)-1]
	heading := Heading(cells[len(cells)-2], last)
	c.drawCells(cells[:len(cells)-1], s, g, heading)
	c.Set(last.Row, last.Col, g.Arrow(heading))
}

// drawCells merges line glyphs along cells. The last cell additionally
// connects towards tail, which lets a segment run into an arrowhead.
func (c *Canvas) drawCells(cells []Point, s Stroke, g Glyphs, tail Arms) Arms {
	var heading Arms
	for i, p := range cells {
		var arms Arms
		if i > 0 {
			heading = Heading(cells[i-1], p)
			arms |= heading.Opposite()
		}
		if i < len(cells)-1 {
			arms |= Heading(p, cells[i+1])
		} else {
			arms |= tail
		}
		glyph := rune(0)
		switch {
		case arms.Horizontal():
			glyph = s.Horizontal
		case arms.Vertical():
			glyph = s.Vertical
		}
		c.Line(p.Row, p.Col, arms, glyph, g)
	}
	return heading
}
