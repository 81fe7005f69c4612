package wireframe

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/matzehuels/asciisketch/pkg/errors"
)

type rawDocument struct {
	Title      string      `yaml:"title"`
	Width      *int        `yaml:"width"`
	Padding    *int        `yaml:"padding"`
	Components []yaml.Node `yaml:"components"`
	Layout     string      `yaml:"layout"`
	Panels     []yaml.Node `yaml:"panels"`
}

type rawPanel struct {
	Title      string      `yaml:"title"`
	Width      *int        `yaml:"width"`
	Padding    *int        `yaml:"padding"`
	Components []yaml.Node `yaml:"components"`
}

type rawComponent struct {
	Type        string    `yaml:"type"`
	Text        string    `yaml:"text"`
	Label       string    `yaml:"label"`
	Value       yaml.Node `yaml:"value"`
	Placeholder string    `yaml:"placeholder"`
	Align       string    `yaml:"align"`
	Checked     bool      `yaml:"checked"`
	Selected    yaml.Node `yaml:"selected"`
	Width       int       `yaml:"width"`
	Options     []any     `yaml:"options"`
	Buttons     []any     `yaml:"buttons"`
	Items       []any     `yaml:"items"`
	Active      int       `yaml:"active"`
	Columns     []any     `yaml:"columns"`
	Rows        [][]any   `yaml:"rows"`
}

// Parse reads a wireframe document from YAML. Structural problems (invalid
// YAML, non-mapping documents, unknown component types, impossible panel
// geometry) are returned as PARSE_ERROR with the offending line.
func Parse(src []byte) (*Document, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(src, &root); err != nil {
		return nil, errors.Wrap(errors.ErrCodeParse, err, "invalid wireframe document")
	}
	if len(root.Content) == 0 {
		return nil, errors.New(errors.ErrCodeParse, "empty wireframe document")
	}
	node := root.Content[0]
	if node.Kind != yaml.MappingNode {
		return nil, errors.AtLine(errors.ErrCodeParse, node.Line, "wireframe document must be a mapping")
	}

	var raw rawDocument
	if err := node.Decode(&raw); err != nil {
		return nil, decodeError(node, err)
	}

	doc := &Document{}
	switch strings.ToLower(strings.TrimSpace(raw.Layout)) {
	case "", "vertical":
		doc.Layout = Vertical
	case "horizontal":
		doc.Layout = Horizontal
	default:
		return nil, errors.AtLine(errors.ErrCodeParse, valueLine(node, "layout"),
			"unknown layout %q (must be 'horizontal' or 'vertical')", raw.Layout)
	}

	if len(raw.Panels) == 0 {
		p, err := buildPanel(rawPanel{
			Title:      raw.Title,
			Width:      raw.Width,
			Padding:    raw.Padding,
			Components: raw.Components,
		}, node.Line)
		if err != nil {
			return nil, err
		}
		doc.Panels = []Panel{p}
		return doc, nil
	}

	for i := range raw.Panels {
		pn := &raw.Panels[i]
		if pn.Kind != yaml.MappingNode {
			return nil, errors.AtLine(errors.ErrCodeParse, pn.Line, "panel %d must be a mapping", i+1)
		}
		var rp rawPanel
		if err := pn.Decode(&rp); err != nil {
			return nil, decodeError(pn, err)
		}
		p, err := buildPanel(rp, pn.Line)
		if err != nil {
			return nil, err
		}
		doc.Panels = append(doc.Panels, p)
	}
	return doc, nil
}

func buildPanel(rp rawPanel, line int) (Panel, error) {
	p := Panel{
		Title:   strings.TrimSpace(rp.Title),
		Width:   DefaultWidth,
		Padding: DefaultPadding,
		line:    line,
	}
	if rp.Width != nil {
		p.Width = *rp.Width
	}
	if rp.Padding != nil {
		p.Padding = *rp.Padding
	}
	if p.Width <= 0 {
		return Panel{}, errors.AtLine(errors.ErrCodeParse, line, "panel width must be positive, got %d", p.Width)
	}
	if p.Padding < 0 {
		return Panel{}, errors.AtLine(errors.ErrCodeParse, line, "panel padding must not be negative, got %d", p.Padding)
	}
	if p.Interior() < 1 {
		return Panel{}, errors.AtLine(errors.ErrCodeParse, line,
			"panel width %d leaves no room inside borders and padding %d", p.Width, p.Padding)
	}

	for i := range rp.Components {
		cn := &rp.Components[i]
		c, err := parseComponent(cn)
		if err != nil {
			return Panel{}, err
		}
		p.Components = append(p.Components, c)
		p.lines = append(p.lines, cn.Line)
	}
	return p, nil
}

func parseComponent(n *yaml.Node) (Component, error) {
	switch n.Kind {
	case yaml.ScalarNode:
		return Text{Text: n.Value}, nil
	case yaml.MappingNode:
	default:
		return nil, errors.AtLine(errors.ErrCodeParse, n.Line, "component must be a mapping or a string")
	}

	var rc rawComponent
	if err := n.Decode(&rc); err != nil {
		return nil, decodeError(n, err)
	}
	label := rc.Text
	if label == "" {
		label = rc.Label
	}
	kind := strings.ToLower(strings.TrimSpace(rc.Type))

	switch kind {
	case "", "text":
		align, err := parseAlign(n, rc.Align, AlignLeft)
		return Text{Text: label, Align: align}, err
	case "radio":
		align, err := parseAlign(n, rc.Align, AlignLeft)
		if err != nil {
			return nil, err
		}
		selected, err := boolValue(&rc.Selected)
		if err != nil {
			return nil, errors.AtLine(errors.ErrCodeParse, rc.Selected.Line, "radio selected: %v", err)
		}
		return Radio{Label: label, Selected: selected, Align: align}, nil
	case "checkbox":
		align, err := parseAlign(n, rc.Align, AlignLeft)
		return Checkbox{Label: label, Checked: rc.Checked, Align: align}, err
	case "button":
		align, err := parseAlign(n, rc.Align, AlignLeft)
		return Button{Label: label, Align: align}, err
	case "button_row", "buttons":
		align, err := parseAlign(n, rc.Align, AlignRight)
		labels := strs(rc.Buttons)
		if len(labels) == 0 {
			labels = strs(rc.Options)
		}
		return ButtonRow{Labels: labels, Align: align}, err
	case "input":
		in := Input{Label: label, Value: rc.Value.Value, Width: rc.Width, Inline: isInline(rc.Align)}
		if in.Value == "" {
			in.Value = rc.Placeholder
		}
		if in.Value == "" {
			if opts := strs(rc.Options); len(opts) > 0 {
				in.Value = opts[0]
			}
		}
		return in, nil
	case "select":
		sel := Select{Label: label, Options: strs(rc.Options), Width: rc.Width, Inline: isInline(rc.Align)}
		if err := sel.resolve(&rc); err != nil {
			return nil, err
		}
		return sel, nil
	case "divider":
		return Divider{}, nil
	case "separator":
		return Separator{}, nil
	case "spacer":
		return Spacer{}, nil
	case "progress":
		v := 0
		if rc.Value.Kind == yaml.ScalarNode && rc.Value.Value != "" {
			f, err := strconv.ParseFloat(strings.TrimSuffix(rc.Value.Value, "%"), 64)
			if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
				return nil, errors.AtLine(errors.ErrCodeParse, rc.Value.Line, "progress value %q is not a number", rc.Value.Value)
			}
			// Bounded so the conversion is exact; rendering clamps to 0-100.
			v = int(math.Round(min(max(f, math.MinInt32), math.MaxInt32)))
		}
		return Progress{Label: label, Value: v}, nil
	case "tabs":
		align, err := parseAlign(n, rc.Align, AlignLeft)
		return Tabs{Items: strs(rc.Items), Active: rc.Active, Align: align}, err
	case "table":
		t := Table{Columns: strs(rc.Columns)}
		for _, r := range rc.Rows {
			t.Rows = append(t.Rows, strs(r))
		}
		return t, nil
	}
	return nil, errors.AtLine(errors.ErrCodeParse, n.Line, "unknown component type %q", rc.Type)
}

// resolve picks the displayed value: an explicit value, a selected index or
// the first option.
func (s *Select) resolve(rc *rawComponent) error {
	switch {
	case rc.Value.Value != "":
		s.Value = rc.Value.Value
	case rc.Selected.Kind == yaml.ScalarNode && rc.Selected.Value != "":
		i, err := strconv.Atoi(rc.Selected.Value)
		if err != nil || i < 0 || i >= len(s.Options) {
			return errors.AtLine(errors.ErrCodeParse, rc.Selected.Line,
				"select index %q out of range for %d options", rc.Selected.Value, len(s.Options))
		}
		s.Value = s.Options[i]
	case len(s.Options) > 0:
		s.Value = s.Options[0]
	}
	return nil
}

func parseAlign(n *yaml.Node, s string, def Align) (Align, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return def, nil
	case "left", "inline":
		return AlignLeft, nil
	case "center", "centre":
		return AlignCenter, nil
	case "right":
		return AlignRight, nil
	}
	return def, errors.AtLine(errors.ErrCodeParse, valueLine(n, "align"), "unknown align %q", s)
}

func isInline(s string) bool {
	return strings.EqualFold(strings.TrimSpace(s), "inline")
}

func boolValue(n *yaml.Node) (bool, error) {
	if n.Kind == 0 {
		return false, nil
	}
	var b bool
	if err := n.Decode(&b); err != nil {
		return false, err
	}
	return b, nil
}

// strs renders decoded YAML scalars as strings. Numbers and booleans keep
// their YAML spelling, nulls become empty cells.
func strs(vals []any) []string {
	out := make([]string, len(vals))
	for i, v := range vals {
		if v != nil {
			out[i] = fmt.Sprint(v)
		}
	}
	return out
}

// valueLine returns the line of key's value in mapping n, or n's own line.
func valueLine(n *yaml.Node, key string) int {
	for i := 0; i+1 < len(n.Content); i += 2 {
		if n.Content[i].Value == key {
			return n.Content[i+1].Line
		}
	}
	return n.Line
}

func decodeError(n *yaml.Node, err error) error {
	e := errors.Wrap(errors.ErrCodeParse, err, "invalid field")
	e.Line = n.Line
	return e
}
