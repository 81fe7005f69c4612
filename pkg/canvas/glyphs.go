package canvas

// Arms is the set of directions a line glyph connects to. Junction glyphs are
// derived from the union of arms of everything drawn through a cell, which is
// how corners, tees and crossings appear without being placed by hand.
type Arms uint8

const (
	Up Arms = 1 << iota
	Down
	Left
	Right
)

// Horizontal reports whether a only connects left and/or right.
func (a Arms) Horizontal() bool { return a != 0 && a&^(Left|Right) == 0 }

// Vertical reports whether a only connects up and/or down.
func (a Arms) Vertical() bool { return a != 0 && a&^(Up|Down) == 0 }

// Opposite returns the reverse direction of a single arm.
func (a Arms) Opposite() Arms {
	switch a {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	}
	return 0
}

// Glyphs is a complete glyph set for one output alphabet.
type Glyphs struct {
	Name string

	Horizontal, Vertical                       rune
	TopLeft, TopRight, BottomLeft, BottomRight rune

	RoundTopLeft, RoundTopRight, RoundBottomLeft, RoundBottomRight rune

	// Tees are named after the box edge they sit on: LeftTee is ├.
	LeftTee, RightTee, TopTee, BottomTee, Cross rune

	DottedHorizontal, DottedVertical rune
	ThickHorizontal, ThickVertical   rune

	ArrowRight, ArrowLeft, ArrowUp, ArrowDown rune

	// DiagonalRise is ╱ and DiagonalFall is ╲.
	DiagonalRise, DiagonalFall rune

	Filled, Empty rune
	DropDown      rune
	Ellipsis      string
}

// Unicode draws with box-drawing and block characters.
var Unicode = Glyphs{
	Name:             "unicode",
	Horizontal:       '─',
	Vertical:         '│',
	TopLeft:          '┌',
	TopRight:         '┐',
	BottomLeft:       '└',
	BottomRight:      '┘',
	RoundTopLeft:     '╭',
	RoundTopRight:    '╮',
	RoundBottomLeft:  '╰',
	RoundBottomRight: '╯',
	LeftTee:          '├',
	RightTee:         '┤',
	TopTee:           '┬',
	BottomTee:        '┴',
	Cross:            '┼',
	DottedHorizontal: '┄',
	DottedVertical:   '┆',
	ThickHorizontal:  '━',
	ThickVertical:    '┃',
	ArrowRight:       '►',
	ArrowLeft:        '◄',
	ArrowUp:          '▲',
	ArrowDown:        '▼',
	DiagonalRise:     '╱',
	DiagonalFall:     '╲',
	Filled:           '█',
	Empty:            '░',
	DropDown:         '▼',
	Ellipsis:         "…",
}

// ASCII is the plain 7-bit fallback.
var ASCII = Glyphs{
	Name:             "ascii",
	Horizontal:       '-',
	Vertical:         '|',
	TopLeft:          '+',
	TopRight:         '+',
	BottomLeft:       '+',
	BottomRight:      '+',
	RoundTopLeft:     '.',
	RoundTopRight:    '.',
	RoundBottomLeft:  '\'',
	RoundBottomRight: '\'',
	LeftTee:          '+',
	RightTee:         '+',
	TopTee:           '+',
	BottomTee:        '+',
	Cross:            '+',
	DottedHorizontal: '.',
	DottedVertical:   ':',
	ThickHorizontal:  '=',
	ThickVertical:    '|',
	ArrowRight:       '>',
	ArrowLeft:        '<',
	ArrowUp:          '^',
	ArrowDown:        'v',
	DiagonalRise:     '/',
	DiagonalFall:     '\\',
	Filled:           '#',
	Empty:            '.',
	DropDown:         'v',
	Ellipsis:         "...",
}

// GlyphsFor selects the glyph set for the asciiOnly configuration flag.
func GlyphsFor(asciiOnly bool) Glyphs {
	if asciiOnly {
		return ASCII
	}
	return Unicode
}

// Join returns the solid glyph connecting exactly the given arms.
func (g Glyphs) Join(a Arms) rune {
	switch {
	case a == 0:
		return ' '
	case a.Horizontal():
		return g.Horizontal
	case a.Vertical():
		return g.Vertical
	}
	switch a {
	case Down | Right:
		return g.TopLeft
	case Down | Left:
		return g.TopRight
	case Up | Right:
		return g.BottomLeft
	case Up | Left:
		return g.BottomRight
	case Up | Down | Right:
		return g.LeftTee
	case Up | Down | Left:
		return g.RightTee
	case Left | Right | Down:
		return g.TopTee
	case Left | Right | Up:
		return g.BottomTee
	}
	return g.Cross
}

// Arrow returns the arrowhead pointing in the direction of travel.
func (g Glyphs) Arrow(heading Arms) rune {
	switch heading {
	case Up:
		return g.ArrowUp
	case Down:
		return g.ArrowDown
	case Left:
		return g.ArrowLeft
	}
	return g.ArrowRight
}

// isLine reports whether r belongs to the line family of g and may be merged
// with other line glyphs.
func (g Glyphs) isLine(r rune) bool {
	switch r {
	case g.Horizontal, g.Vertical,
		g.TopLeft, g.TopRight, g.BottomLeft, g.BottomRight,
		g.RoundTopLeft, g.RoundTopRight, g.RoundBottomLeft, g.RoundBottomRight,
		g.LeftTee, g.RightTee, g.TopTee, g.BottomTee, g.Cross,
		g.DottedHorizontal, g.DottedVertical, g.ThickHorizontal, g.ThickVertical:
		return true
	}
	return false
}

// Frame describes the border of a box.
type Frame struct {
	TopLeft, TopRight, BottomLeft, BottomRight rune
	Horizontal, Vertical                       rune

	// LeftSide and RightSide replace Vertical on the middle row of boxes
	// with an odd height. Zero keeps Vertical.
	LeftSide, RightSide rune
}

// Square returns the plain rectangular frame.
func (g Glyphs) Square() Frame {
	return Frame{
		TopLeft: g.TopLeft, TopRight: g.TopRight,
		BottomLeft: g.BottomLeft, BottomRight: g.BottomRight,
		Horizontal: g.Horizontal, Vertical: g.Vertical,
	}
}

// Rounded returns a frame with rounded corners.
func (g Glyphs) Rounded() Frame {
	f := g.Square()
	f.TopLeft, f.TopRight = g.RoundTopLeft, g.RoundTopRight
	f.BottomLeft, f.BottomRight = g.RoundBottomLeft, g.RoundBottomRight
	return f
}

// Stroke is the pair of straight glyphs used along a path.
type Stroke struct {
	Horizontal, Vertical rune
}

// Solid returns the default stroke of g.
func (g Glyphs) Solid() Stroke { return Stroke{g.Horizontal, g.Vertical} }

// Dotted returns the dotted stroke of g.
func (g Glyphs) Dotted() Stroke { return Stroke{g.DottedHorizontal, g.DottedVertical} }

// Thick returns the heavy stroke of g.
func (g Glyphs) Thick() Stroke { return Stroke{g.ThickHorizontal, g.ThickVertical} }
