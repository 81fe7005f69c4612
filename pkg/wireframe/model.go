// Package wireframe turns panel/component documents into bordered text boxes.
//
// # Model
//
// A [Document] holds one or more [Panel] values and a [Layout] that decides
// how they are composed. A Panel has a fixed width, an inner padding, an
// optional title and an ordered list of components. [Component] is a closed
// set of types, one per UI element kind; the renderer switches over them
// exhaustively.
//
// # Geometry
//
// The interior width of a panel is width - 2*padding - 2. Every component is
// rendered into rows of exactly that width, framed by the border and the
// padding, so every line of a rendered panel is exactly width columns.
// Content that does not fit is wrapped (text) or truncated (single-row
// controls) and reported as a warning; under [OverflowError] it fails the
// render instead.
//
// # Input
//
// [Parse] reads YAML (and therefore JSON). A document with a "panels" key is
// a multi-panel document, anything else is a single panel:
//
//	title: Login
//	width: 30
//	components:
//	  - type: input
//	    label: User
//	  - type: button_row
//	    buttons: [Cancel, OK]
package wireframe

// Default panel geometry.
const (
	DefaultWidth   = 40
	DefaultPadding = 1
)

// Layout arranges the panels of a document.
type Layout int

const (
	Vertical Layout = iota
	Horizontal
)

func (l Layout) String() string {
	if l == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

// Align positions content inside the panel interior.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Document is a parsed wireframe.
type Document struct {
	Layout Layout
	Panels []Panel
}

// Panel is a bordered box with an optional title.
type Panel struct {
	Title      string
	Width      int
	Padding    int
	Components []Component

	// lines holds the 1-based input line of each component, when known.
	lines []int
	line  int
}

// Interior returns the usable content width of the panel.
func (p Panel) Interior() int {
	return p.Width - 2*p.Padding - 2
}

func (p Panel) componentLine(i int) int {
	if i < len(p.lines) {
		return p.lines[i]
	}
	return p.line
}

// Component is one UI element inside a panel. The set of implementations
// is closed.
type Component interface {
	// Kind returns the component type as written in the input.
	Kind() string
	isComponent()
}

// Text is free text, word-wrapped when wider than the panel.
type Text struct {
	Text  string
	Align Align
}

// Radio is a radio button with its label.
type Radio struct {
	Label    string
	Selected bool
	Align    Align
}

// Checkbox is a check box with its label.
type Checkbox struct {
	Label   string
	Checked bool
	Align   Align
}

// Button is a single bracketed button.
type Button struct {
	Label string
	Align Align
}

// ButtonRow is a row of buttons separated by two spaces.
type ButtonRow struct {
	Labels []string
	Align  Align
}

// Input is a text field. Width is the field width without brackets; zero
// fills the remaining interior.
type Input struct {
	Label  string
	Value  string
	Width  int
	Inline bool
}

// Select is a drop-down showing Value. Width is the value area without the
// brackets and marker; zero fills the remaining interior.
type Select struct {
	Label   string
	Value   string
	Options []string
	Width   int
	Inline  bool
}

// Divider is a rule joined to the panel border on both sides.
type Divider struct{}

// Separator is a plain rule inside the interior.
type Separator struct{}

// Spacer is one blank row.
type Spacer struct{}

// Progress is a bar filled to Value percent.
type Progress struct {
	Label string
	Value int
}

// Tabs is a tab strip with one active item.
type Tabs struct {
	Items  []string
	Active int
	Align  Align
}

// Table is a grid with an optional header row.
type Table struct {
	Columns []string
	Rows    [][]string
}

func (Text) Kind() string      { return "text" }
func (Radio) Kind() string     { return "radio" }
func (Checkbox) Kind() string  { return "checkbox" }
func (Button) Kind() string    { return "button" }
func (ButtonRow) Kind() string { return "button_row" }
func (Input) Kind() string     { return "input" }
func (Select) Kind() string    { return "select" }
func (Divider) Kind() string   { return "divider" }
func (Separator) Kind() string { return "separator" }
func (Spacer) Kind() string    { return "spacer" }
func (Progress) Kind() string  { return "progress" }
func (Tabs) Kind() string      { return "tabs" }
func (Table) Kind() string     { return "table" }

func (Text) isComponent()      {}
func (Radio) isComponent()     {}
func (Checkbox) isComponent()  {}
func (Button) isComponent()    {}
func (ButtonRow) isComponent() {}
func (Input) isComponent()     {}
func (Select) isComponent()    {}
func (Divider) isComponent()   {}
func (Separator) isComponent() {}
func (Spacer) isComponent()    {}
func (Progress) isComponent()  {}
func (Tabs) isComponent()      {}
func (Table) isComponent()     {}
