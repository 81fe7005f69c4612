// Package canvas provides the fixed-size character grid every renderer
// draws into before the result is flattened to text.
//
// # Cells
//
// Each cell holds one glyph plus a marker recording what owns it:
//
//   - blank: never written
//   - line:  part of a box edge, divider or edge route, with its [Arms]
//   - text:  labels, markers, arrowheads and any other glyph
//
// Line cells merge: drawing a vertical segment through a horizontal one
// yields ┼, ending a segment on a box edge yields ┬ or ├. Text cells never
// merge. Writing a different glyph over an occupied cell with [Canvas.Set]
// is counted in [Canvas.Collisions], which layout tests use to prove that no
// element was corrupted by a later one.
//
// Display width comes from go-runewidth with East Asian ambiguous glyphs
// (box drawing, blocks, arrows) pinned to one column, so output does not
// depend on the locale of the process. Importing the package installs the
// same condition as go-runewidth's default, so wrapping and truncation done
// by other libraries agree with the grid.
//
// # Bounds
//
// Writes outside the grid are clipped silently. Every flattened line has the
// display width of the canvas.
package canvas

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

type owner uint8

const (
	blank owner = iota
	line
	text
	wide // right half of a double-width rune
)

type cell struct {
	r     rune
	owner owner
	arms  Arms
}

// Canvas is a width × height grid of display cells.
type Canvas struct {
	width, height int
	cells         [][]cell
	collisions    int
}

var widths = func() *runewidth.Condition {
	c := runewidth.NewCondition()
	c.EastAsianWidth = false
	return c
}()

// reflow measures through the package default, which
// go-runewidth derives from LANG and RUNEWIDTH_EASTASIAN at init.
func init() {
	runewidth.DefaultCondition = widths
}

// StringWidth returns the display width of s in cells.
func StringWidth(s string) int {
	return widths.StringWidth(s)
}

// RuneWidth returns the display width of r in cells.
func RuneWidth(r rune) int {
	return widths.RuneWidth(r)
}

// New returns a blank canvas. Negative sizes are treated as zero.
func New(width, height int) *Canvas {
	width, height = max(width, 0), max(height, 0)
	cells := make([][]cell, height)
	for i := range cells {
		row := make([]cell, width)
		for j := range row {
			row[j].r = ' '
		}
		cells[i] = row
	}
	return &Canvas{width: width, height: height, cells: cells}
}

// Width returns the number of columns.
func (c *Canvas) Width() int { return c.width }

// Height returns the number of rows.
func (c *Canvas) Height() int { return c.height }

// Collisions returns how many times an occupied cell was overwritten with a
// different glyph, or a label could not be placed over existing text.
func (c *Canvas) Collisions() int { return c.collisions }

func (c *Canvas) in(row, col int) bool {
	return row >= 0 && row < c.height && col >= 0 && col < c.width
}

// At returns the glyph at (row, col), or a space outside the grid.
func (c *Canvas) At(row, col int) rune {
	if !c.in(row, col) {
		return ' '
	}
	return c.cells[row][col].r
}

// Set writes a single glyph as text.
func (c *Canvas) Set(row, col int, r rune) {
	if !c.in(row, col) {
		return
	}
	c.put(row, col, r)
}

func (c *Canvas) put(row, col int, r rune) {
	cur := &c.cells[row][col]
	if cur.owner != blank && cur.r != r {
		c.collisions++
	}
	*cur = cell{r: r, owner: text}
}

// WriteText places text left to right starting at (row, col). Text is clipped
// at both canvas edges, never wrapped. It returns the number of columns the
// text advanced, clipped or not.
func (c *Canvas) WriteText(row, col int, s string) int {
	return c.write(row, col, s, false)
}

// Overlay writes text like [Canvas.WriteText] but only into blank or line
// cells. Cells owned by other text are left alone and counted as collisions.
// It is used for edge labels that sit on top of their own connector.
func (c *Canvas) Overlay(row, col int, s string) int {
	return c.write(row, col, s, true)
}

func (c *Canvas) write(row, col int, s string, overlay bool) int {
	start := col
	for _, r := range s {
		w := RuneWidth(r)
		if w == 0 {
			continue
		}
		if row >= 0 && row < c.height && col >= 0 && col+w <= c.width {
			switch {
			case overlay && !c.free(row, col, w):
				c.collisions++
			case overlay:
				c.cells[row][col] = cell{r: r, owner: text}
				if w == 2 {
					c.cells[row][col+1] = cell{owner: wide}
				}
			default:
				c.put(row, col, r)
				if w == 2 {
					c.cells[row][col+1] = cell{owner: wide}
				}
			}
		}
		col += w
	}
	return col - start
}

// Fits reports whether s can be written at (row, col) entirely inside the
// grid without touching any non-blank cell.
func (c *Canvas) Fits(row, col int, s string) bool {
	w := StringWidth(s)
	if !c.in(row, col) || !c.in(row, col+w-1) {
		return false
	}
	for x := col; x < col+w; x++ {
		if c.cells[row][x].owner != blank {
			return false
		}
	}
	return true
}

func (c *Canvas) free(row, col, w int) bool {
	for i := col; i < col+w; i++ {
		if o := c.cells[row][i].owner; o == text || o == wide {
			return false
		}
	}
	return true
}

// Line merges a line glyph connecting arms into (row, col). A blank cell
// receives glyph (or the joined glyph of g when glyph is zero). A line cell
// keeps its glyph when arms adds nothing new and otherwise becomes the solid
// junction of the union. Text cells are left untouched.
func (c *Canvas) Line(row, col int, arms Arms, glyph rune, g Glyphs) {
	if !c.in(row, col) || arms == 0 {
		return
	}
	cur := &c.cells[row][col]
	switch cur.owner {
	case blank:
		if glyph == 0 {
			glyph = g.Join(arms)
		}
		*cur = cell{r: glyph, owner: line, arms: arms}
	case line:
		if arms&^cur.arms == 0 {
			return
		}
		cur.arms |= arms
		cur.r = g.Join(cur.arms)
	}
}

// WriteBox draws the frame of a width × height rectangle whose top-left
// corner is (row, col). Boxes smaller than 2×2 are ignored.
func (c *Canvas) WriteBox(row, col, width, height int, f Frame, g Glyphs) {
	if width < 2 || height < 2 {
		return
	}
	top, bottom := row, row+height-1
	left, right := col, col+width-1

	c.border(top, left, Down|Right, f.TopLeft, g)
	c.border(top, right, Down|Left, f.TopRight, g)
	c.border(bottom, left, Up|Right, f.BottomLeft, g)
	c.border(bottom, right, Up|Left, f.BottomRight, g)
	for x := left + 1; x < right; x++ {
		c.border(top, x, Left|Right, f.Horizontal, g)
		c.border(bottom, x, Left|Right, f.Horizontal, g)
	}
	mid := -1
	if height%2 == 1 && height > 2 {
		mid = row + height/2
	}
	for y := top + 1; y < bottom; y++ {
		l, r := f.Vertical, f.Vertical
		if y == mid {
			if f.LeftSide != 0 {
				l = f.LeftSide
			}
			if f.RightSide != 0 {
				r = f.RightSide
			}
		}
		c.border(y, left, Up|Down, l, g)
		c.border(y, right, Up|Down, r, g)
	}
}

func (c *Canvas) border(row, col int, arms Arms, r rune, g Glyphs) {
	if g.isLine(r) {
		c.Line(row, col, arms, r, g)
		return
	}
	c.Set(row, col, r)
}

// Divider draws a horizontal rule of the given width starting at (row, col)
// with tees at both ends (├───┤). Drawn over a box edge, the tees join it.
func (c *Canvas) Divider(row, col, width int, g Glyphs) {
	if width < 2 {
		return
	}
	c.Line(row, col, Up|Down|Right, g.LeftTee, g)
	c.Rule(row, col+1, width-2, g)
	c.Line(row, col+width-1, Up|Down|Left, g.RightTee, g)
}

// Rule draws a plain horizontal rule of the given width.
func (c *Canvas) Rule(row, col, width int, g Glyphs) {
	for x := col; x < col+width; x++ {
		c.Line(row, x, Left|Right, g.Horizontal, g)
	}
}

// Blit copies every non-blank cell of src onto c with src's top-left corner
// at (row, col). Cells falling outside c are clipped.
func (c *Canvas) Blit(row, col int, src *Canvas) {
	for y := 0; y < src.height; y++ {
		for x := 0; x < src.width; x++ {
			s := src.cells[y][x]
			if s.owner == blank || !c.in(row+y, col+x) {
				continue
			}
			c.cells[row+y][col+x] = s
		}
	}
}

// Lines returns one string per row, each exactly Width() columns wide.
func (c *Canvas) Lines() []string {
	out := make([]string, c.height)
	var b strings.Builder
	for y, row := range c.cells {
		b.Reset()
		for _, cl := range row {
			if cl.owner == wide {
				continue
			}
			b.WriteRune(cl.r)
		}
		out[y] = b.String()
	}
	return out
}

// Flatten returns the rows of the canvas. With compact set, trailing spaces
// are trimmed from every row and fully blank rows at the end are dropped.
// Flatten does not modify the canvas and may be called repeatedly.
func (c *Canvas) Flatten(compact bool) []string {
	lines := c.Lines()
	if compact {
		lines = Compact(lines)
	}
	return lines
}

// String joins the full-width rows with newlines.
func (c *Canvas) String() string {
	return strings.Join(c.Lines(), "\n")
}

// Compact trims trailing spaces from each line and drops blank lines at the
// end of the block.
func Compact(lines []string) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = strings.TrimRight(l, " ")
	}
	for len(out) > 0 && out[len(out)-1] == "" {
		out = out[:len(out)-1]
	}
	return out
}
