package diagram

import (
	"strings"

	"github.com/matzehuels/asciisketch/pkg/errors"
)

// statement is one logical statement with the 1-based line it starts on.
type statement struct {
	text string
	line int
}

// split breaks src into statements at newlines and at semicolons outside
// quotes and brackets. Blank statements and %% comments are dropped.
func split(src string) []statement {
	var out []statement
	for i, line := range strings.Split(src, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.HasPrefix(strings.TrimSpace(line), "%%") {
			continue
		}
		depth, quoted, start := 0, false, 0
		emit := func(end int) {
			if s := strings.TrimSpace(line[start:end]); s != "" && !strings.HasPrefix(s, "%%") {
				out = append(out, statement{text: s, line: i + 1})
			}
		}
		for j := 0; j < len(line); j++ {
			switch c := line[j]; {
			case c == '"':
				quoted = !quoted
			case quoted:
			case c == '[' || c == '(' || c == '{':
				depth++
			case c == ']' || c == ')' || c == '}':
				depth = max(depth-1, 0)
			case c == ';' && depth == 0:
				emit(j)
				start = j + 1
			}
		}
		emit(len(line))
	}
	return out
}

// header splits the first statement into its keyword and arguments.
func header(st statement) (string, []string) {
	fields := strings.Fields(st.text)
	return fields[0], fields[1:]
}

// Detect reports which diagram kind the header of src declares, without
// parsing the body.
func Detect(src string) Kind {
	stmts := split(src)
	if len(stmts) == 0 {
		return KindUnknown
	}
	switch kw, _ := header(stmts[0]); kw {
	case "graph", "flowchart":
		return KindFlowchart
	case "sequenceDiagram":
		return KindSequence
	}
	return KindUnknown
}

// unsupportedDiagrams are Mermaid diagram types that are recognized but not
// rendered.
var unsupportedDiagrams = map[string]bool{
	"classDiagram":    true,
	"stateDiagram":    true,
	"stateDiagram-v2": true,
	"erDiagram":       true,
	"gantt":           true,
	"pie":             true,
	"journey":         true,
	"gitGraph":        true,
	"mindmap":         true,
	"timeline":        true,
}

// Parse reads a flowchart or sequence diagram. The header decides which.
func Parse(src string) (*Diagram, error) {
	stmts := split(src)
	if len(stmts) == 0 {
		return nil, errors.New(errors.ErrCodeParse, "empty diagram")
	}
	kw, args := header(stmts[0])
	switch {
	case kw == "graph" || kw == "flowchart":
		dir, err := parseDirection(stmts[0], args)
		if err != nil {
			return nil, err
		}
		f, warns, err := parseFlowchart(dir, stmts[1:])
		if err != nil {
			return nil, err
		}
		return &Diagram{Kind: KindFlowchart, Flowchart: f, Warnings: warns}, nil
	case kw == "sequenceDiagram":
		if len(args) > 0 {
			return nil, errors.AtLine(errors.ErrCodeParse, stmts[0].line,
				"unexpected %q after sequenceDiagram", strings.Join(args, " "))
		}
		s, warns, err := parseSequence(stmts[1:])
		if err != nil {
			return nil, err
		}
		return &Diagram{Kind: KindSequence, Sequence: s, Warnings: warns}, nil
	case unsupportedDiagrams[kw]:
		return nil, errors.AtLine(errors.ErrCodeUnsupported, stmts[0].line, "diagram type %q is not supported", kw)
	}
	return nil, errors.AtLine(errors.ErrCodeParse, stmts[0].line,
		"missing diagram header: expected 'graph', 'flowchart' or 'sequenceDiagram', got %q", kw)
}

func parseDirection(st statement, args []string) (Direction, error) {
	if len(args) == 0 {
		return TopDown, nil
	}
	if len(args) > 1 {
		return 0, errors.AtLine(errors.ErrCodeParse, st.line, "unexpected %q after direction", strings.Join(args[1:], " "))
	}
	switch strings.ToUpper(args[0]) {
	case "TD", "TB":
		return TopDown, nil
	case "LR":
		return LeftRight, nil
	case "RL":
		return RightLeft, nil
	case "BT":
		return BottomUp, nil
	}
	return 0, errors.AtLine(errors.ErrCodeParse, st.line, "unknown direction %q (want LR, TD, TB, RL or BT)", args[0])
}

// firstWord returns the leading keyword of a statement.
func firstWord(s string) string {
	if i := strings.IndexAny(s, " \t"); i >= 0 {
		return s[:i]
	}
	return s
}
