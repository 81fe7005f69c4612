package pipeline

import (
	"path/filepath"
	"strings"
)

// Mode is the rendering family of a source.
type Mode int

const (
	ModeUnknown Mode = iota
	ModeWireframe
	ModeMermaid
)

func (m Mode) String() string {
	switch m {
	case ModeWireframe:
		return "wireframe"
	case ModeMermaid:
		return "mermaid"
	}
	return "unknown"
}

var (
	mermaidHeaders = []string{"graph", "flowchart", "sequenceDiagram"}
	wireframeKeys  = []string{"title:", "width:", "padding:", "components:", "panels:", "layout:"}
	mermaidArrows  = []string{"-->", "->>"}
)

// Classify decides the mode of text from its content. The first line that
// is neither blank nor a comment decides when it is a diagram header, a
// wireframe key or a YAML list item. Otherwise any arrow token marks the
// text as a diagram.
func Classify(text string) Mode {
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "%%") || strings.HasPrefix(line, "#") {
			continue
		}
		for _, h := range mermaidHeaders {
			if line == h || strings.HasPrefix(line, h+" ") || strings.HasPrefix(line, h+";") {
				return ModeMermaid
			}
		}
		for _, k := range wireframeKeys {
			if strings.HasPrefix(line, k) {
				return ModeWireframe
			}
		}
		if line == "-" || strings.HasPrefix(line, "- ") || strings.HasPrefix(line, "{") {
			return ModeWireframe
		}
		break
	}
	for _, a := range mermaidArrows {
		if strings.Contains(text, a) {
			return ModeMermaid
		}
	}
	return ModeUnknown
}

// ClassifyPath decides the mode from a file extension alone.
func ClassifyPath(path string) Mode {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".json":
		return ModeWireframe
	case ".mmd", ".mermaid":
		return ModeMermaid
	}
	return ModeUnknown
}

// resolveMode applies the forced mode, then the path, then the content.
func resolveMode(text string, opts Options) Mode {
	switch opts.ForceMode {
	case ForceWireframe:
		return ModeWireframe
	case ForceMermaid:
		return ModeMermaid
	}
	if m := ClassifyPath(opts.Path); m != ModeUnknown {
		return m
	}
	return Classify(text)
}
