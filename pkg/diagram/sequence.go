package diagram

import (
	"strings"

	"github.com/matzehuels/asciisketch/pkg/errors"
)

// Sequence statements that need grouping boxes, notes or activation bars.
var sequenceBlocks = map[string]bool{
	"Note":       true,
	"note":       true,
	"loop":       true,
	"alt":        true,
	"else":       true,
	"opt":        true,
	"par":        true,
	"and":        true,
	"rect":       true,
	"critical":   true,
	"option":     true,
	"break":      true,
	"end":        true,
	"activate":   true,
	"deactivate": true,
	"autonumber": true,
	"box":        true,
	"create":     true,
	"destroy":    true,
	"links":      true,
	"link":       true,
	"properties": true,
	"details":    true,
}

// messageArrows maps arrow tokens to styles, longest first.
var messageArrows = []struct {
	token string
	style MessageStyle
	ok    bool
}{
	{"-->>", MessageDashed, true},
	{"->>", MessageSolid, true},
	{"--x", 0, false},
	{"--)", 0, false},
	{"-->", MessageDashed, true},
	{"-x", 0, false},
	{"-)", 0, false},
	{"->", MessageSolid, true},
}

type seqParser struct {
	s     *Sequence
	index map[string]int
	warn  errors.Warnings
}

func parseSequence(stmts []statement) (*Sequence, []errors.Warning, error) {
	p := &seqParser{s: &Sequence{}, index: make(map[string]int)}
	for _, st := range stmts {
		kw := firstWord(st.text)
		switch {
		case kw == "participant" || kw == "actor":
			if err := p.declare(st, strings.TrimSpace(st.text[len(kw):])); err != nil {
				return nil, nil, err
			}
		case kw == "title":
			p.warn.AddAt(st.line, "title ignored")
		case sequenceBlocks[kw]:
			return nil, nil, errors.AtLine(errors.ErrCodeUnsupported, st.line, "%q is not supported", kw)
		default:
			if err := p.message(st); err != nil {
				return nil, nil, err
			}
		}
	}
	return p.s, p.warn.List(), nil
}

func (p *seqParser) declare(st statement, rest string) error {
	name, label := rest, ""
	if i := strings.Index(rest, " as "); i >= 0 {
		name, label = strings.TrimSpace(rest[:i]), strings.TrimSpace(rest[i+4:])
	}
	if name == "" {
		return errors.AtLine(errors.ErrCodeParse, st.line, "missing participant name")
	}
	col := p.participant(name)
	if label != "" {
		p.s.Participants[col].Label = unquote(label)
	}
	return nil
}

// participant returns the column of name, adding it on first mention.
func (p *seqParser) participant(name string) int {
	if col, ok := p.index[name]; ok {
		return col
	}
	col := len(p.s.Participants)
	p.index[name] = col
	p.s.Participants = append(p.s.Participants, Participant{Name: name, Label: name, Column: col})
	return col
}

func (p *seqParser) message(st statement) error {
	text := st.text
	at, tok := -1, -1
	for i := 0; i < len(text) && at < 0; i++ {
		if text[i] != '-' {
			continue
		}
		for j, a := range messageArrows {
			if strings.HasPrefix(text[i:], a.token) {
				at, tok = i, j
				break
			}
		}
	}
	if at < 0 {
		return errors.AtLine(errors.ErrCodeParse, st.line, "unrecognized statement %q", text)
	}
	a := messageArrows[tok]
	if !a.ok {
		return errors.AtLine(errors.ErrCodeUnsupported, st.line, "message arrow %q is not supported", a.token)
	}

	from := strings.TrimSpace(text[:at])
	rest := text[at+len(a.token):]
	colon := strings.IndexByte(rest, ':')
	if colon < 0 {
		return errors.AtLine(errors.ErrCodeParse, st.line, "message needs a ': label' after the target")
	}
	to := strings.TrimSpace(rest[:colon])
	label := strings.TrimSpace(rest[colon+1:])

	switch {
	case from == "":
		return errors.AtLine(errors.ErrCodeParse, st.line, "message is missing its sender")
	case to == "":
		return errors.AtLine(errors.ErrCodeParse, st.line, "message is missing its receiver")
	case strings.HasPrefix(to, "+") || strings.HasPrefix(to, "-"):
		return errors.AtLine(errors.ErrCodeUnsupported, st.line, "activation shorthand %q is not supported", to[:1])
	}

	p.s.Messages = append(p.s.Messages, Message{
		From:  p.participant(from),
		To:    p.participant(to),
		Label: label,
		Style: a.style,
		Line:  st.line,
	})
	return nil
}
