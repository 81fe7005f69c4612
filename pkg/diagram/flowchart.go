package diagram

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/matzehuels/asciisketch/pkg/errors"
)

// Statements that open blocks or attach behaviour. They change structure
// in ways a text layout cannot honour, so they are rejected.
var flowchartBlocks = map[string]bool{
	"subgraph":  true,
	"end":       true,
	"click":     true,
	"direction": true,
}

// Styling directives only affect colours and fonts; they are skipped.
var flowchartStyling = map[string]bool{
	"classDef":  true,
	"class":     true,
	"style":     true,
	"linkStyle": true,
}

type flowParser struct {
	f    *Flowchart
	warn errors.Warnings
}

func parseFlowchart(dir Direction, stmts []statement) (*Flowchart, []errors.Warning, error) {
	p := &flowParser{f: &Flowchart{Direction: dir, index: make(map[string]int)}}
	for _, st := range stmts {
		kw := firstWord(st.text)
		switch {
		case flowchartStyling[kw]:
			p.warn.AddAt(st.line, "%s directive ignored", kw)
			continue
		case flowchartBlocks[kw]:
			return nil, nil, errors.AtLine(errors.ErrCodeUnsupported, st.line, "%q is not supported", kw)
		}
		if err := p.statement(st); err != nil {
			return nil, nil, err
		}
	}
	return p.f, p.warn.List(), nil
}

// scanner walks one statement.
type scanner struct {
	s    string
	pos  int
	line int
}

func (sc *scanner) skipSpace() {
	for sc.pos < len(sc.s) && (sc.s[sc.pos] == ' ' || sc.s[sc.pos] == '\t') {
		sc.pos++
	}
}

func (sc *scanner) done() bool {
	sc.skipSpace()
	return sc.pos >= len(sc.s)
}

func (sc *scanner) rest() string { return sc.s[sc.pos:] }

func (sc *scanner) errorf(code errors.Code, format string, args ...any) error {
	return errors.AtLine(code, sc.line, format, args...)
}

func (p *flowParser) statement(st statement) error {
	sc := &scanner{s: st.text, line: st.line}

	sources, err := p.group(sc)
	if err != nil {
		return err
	}
	for !sc.done() {
		a, err := arrow(sc)
		if err != nil {
			return err
		}
		if sc.done() {
			return sc.errorf(errors.ErrCodeParse, "missing node id after arrow")
		}
		targets, err := p.group(sc)
		if err != nil {
			return err
		}
		for _, from := range sources {
			for _, to := range targets {
				p.f.Edges = append(p.f.Edges, Edge{
					From:  from,
					To:    to,
					Label: a.label,
					Style: a.style,
					Head:  a.head,
					Line:  st.line,
				})
			}
		}
		sources = targets
	}
	return nil
}

// group parses node (& node)*.
func (p *flowParser) group(sc *scanner) ([]string, error) {
	var ids []string
	for {
		id, err := p.node(sc)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
		sc.skipSpace()
		if !strings.HasPrefix(sc.rest(), "&") {
			return ids, nil
		}
		sc.pos++
		sc.skipSpace()
	}
}

func isIDRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// shapes lists bracket pairs, longest opener first.
var shapes = []struct {
	open, close string
	shape       Shape
}{
	{"([", "])", ShapeStadium},
	{"[[", "]]", ShapeRect},
	{"((", "))", ShapeRound},
	{"[", "]", ShapeRect},
	{"(", ")", ShapeRound},
	{"{", "}", ShapeDiamond},
}

// node parses an id with an optional shaped label and records the node.
func (p *flowParser) node(sc *scanner) (string, error) {
	sc.skipSpace()
	start := sc.pos
	for sc.pos < len(sc.s) {
		r, size := utf8.DecodeRuneInString(sc.s[sc.pos:])
		if !isIDRune(r) {
			break
		}
		sc.pos += size
	}
	id := sc.s[start:sc.pos]
	if id == "" {
		if sc.pos >= len(sc.s) {
			return "", sc.errorf(errors.ErrCodeParse, "missing node id")
		}
		return "", sc.errorf(errors.ErrCodeParse, "missing node id before %q", sc.rest())
	}

	label, shape, shaped := "", ShapeRect, false
	for _, sh := range shapes {
		if !strings.HasPrefix(sc.rest(), sh.open) {
			continue
		}
		body := sc.s[sc.pos+len(sh.open):]
		end := closing(body, sh.close)
		if end < 0 {
			return "", sc.errorf(errors.ErrCodeParse, "unterminated shape for node %q: missing %q", id, sh.close)
		}
		label, shape, shaped = unquote(strings.TrimSpace(body[:end])), sh.shape, true
		sc.pos += len(sh.open) + end + len(sh.close)
		break
	}

	if i, ok := p.f.index[id]; ok {
		if shaped {
			if label != "" {
				p.f.Nodes[i].Label = label
			}
			p.f.Nodes[i].Shape = shape
		}
		return id, nil
	}
	if label == "" {
		label = id
	}
	p.f.index[id] = len(p.f.Nodes)
	p.f.Nodes = append(p.f.Nodes, Node{ID: id, Label: label, Shape: shape, Line: sc.line})
	return id, nil
}

// closing finds the closing token in s, skipping quoted text.
func closing(s, token string) int {
	quoted := false
	for i := 0; i < len(s); i++ {
		if s[i] == '"' {
			quoted = !quoted
			continue
		}
		if !quoted && strings.HasPrefix(s[i:], token) {
			return i
		}
	}
	return -1
}

func unquote(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}
	return s
}

type arrowToken struct {
	style EdgeStyle
	head  bool
	label string
}

// arrow parses an arrow token and an optional |label|. Text labels written
// inside the arrow (A -- text --> B) are accepted too.
func arrow(sc *scanner) (arrowToken, error) {
	sc.skipSpace()
	rest := sc.rest()
	if rest == "" || !strings.ContainsRune("-=.<~", rune(rest[0])) {
		return arrowToken{}, sc.errorf(errors.ErrCodeParse, "expected an arrow, got %q", rest)
	}

	var a arrowToken
	n := 0
	switch {
	case strings.HasPrefix(rest, "-."):
		n = 1 + count(rest[1:], '.')
		if n >= len(rest) || rest[n] != '-' {
			return a, sc.errorf(errors.ErrCodeUnsupported, "malformed dotted arrow %q", token(rest))
		}
		n++
		a.style = StyleDotted
		if n < len(rest) && rest[n] == '>' {
			a.head = true
			n++
		}
	case strings.HasPrefix(rest, "=="):
		n = count(rest, '=')
		a.style = StyleThick
		if n < len(rest) && rest[n] == '>' {
			a.head = true
			n++
		} else if n < 3 {
			return a, sc.errorf(errors.ErrCodeUnsupported, "malformed thick arrow %q", token(rest))
		}
	case strings.HasPrefix(rest, "--"):
		n = count(rest, '-')
		switch {
		case n < len(rest) && rest[n] == '>':
			a.style, a.head = StyleSolid, true
			n++
		case n >= 3:
			a.style = StyleLine
		case n == 2 && n < len(rest) && rest[n] == ' ':
			return textArrow(sc)
		default:
			return a, sc.errorf(errors.ErrCodeUnsupported, "unknown arrow %q", token(rest))
		}
	default:
		return a, sc.errorf(errors.ErrCodeUnsupported, "unknown arrow %q", token(rest))
	}

	// Circle and cross heads (---o, ===x) read like a node id glued to the
	// arrow; only reject them when they stand alone.
	if !a.head && n < len(rest) && (rest[n] == 'o' || rest[n] == 'x') && (n+1 == len(rest) || rest[n+1] == ' ') {
		return a, sc.errorf(errors.ErrCodeUnsupported, "arrow head %q is not supported", rest[:n+1])
	}
	sc.pos += n

	sc.skipSpace()
	if strings.HasPrefix(sc.rest(), "|") {
		end := strings.IndexByte(sc.rest()[1:], '|')
		if end < 0 {
			return a, sc.errorf(errors.ErrCodeParse, "unterminated edge label")
		}
		a.label = unquote(strings.TrimSpace(sc.rest()[1 : 1+end]))
		sc.pos += end + 2
	}
	return a, nil
}

// textArrow parses "-- label -->" style arrows, with sc positioned on the
// leading "--".
func textArrow(sc *scanner) (arrowToken, error) {
	body := sc.rest()[2:]
	for i := 0; i < len(body); i++ {
		if !strings.HasPrefix(body[i:], "--") {
			continue
		}
		label := strings.TrimSpace(body[:i])
		inner := &scanner{s: body[i:], line: sc.line}
		a, err := arrow(inner)
		if err != nil {
			return a, err
		}
		if a.label == "" {
			a.label = unquote(label)
		}
		sc.pos += 2 + i + inner.pos
		return a, nil
	}
	return arrowToken{}, sc.errorf(errors.ErrCodeParse, "unterminated arrow label %q", strings.TrimSpace(body))
}

func count(s string, c byte) int {
	n := 0
	for n < len(s) && s[n] == c {
		n++
	}
	return n
}

// token returns the arrow-like prefix of s for error messages.
func token(s string) string {
	if i := strings.IndexAny(s, " \t|"); i >= 0 {
		return s[:i]
	}
	return s
}
