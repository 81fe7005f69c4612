package pipeline

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Mode
	}{
		{"graph header", "graph LR\nA --> B", ModeMermaid},
		{"flowchart header", "flowchart TD; A --> B", ModeMermaid},
		{"sequence header", "sequenceDiagram\nA->>B: hi", ModeMermaid},
		{"header after comment", "%% build flow\n\ngraph TD", ModeMermaid},
		{"title key", "title: Login\nwidth: 30", ModeWireframe},
		{"components key", "components:\n  - Hello", ModeWireframe},
		{"panels key", "# dialogs\npanels:\n  - width: 20", ModeWireframe},
		{"layout key", "layout: horizontal", ModeWireframe},
		{"padding key", "padding: 2", ModeWireframe},
		{"yaml list", "- width: 20\n- width: 30", ModeWireframe},
		{"json object", `{"width": 20}`, ModeWireframe},
		{"arrow only", "A --> B", ModeMermaid},
		{"message arrow only", "Alice->>Bob: hi", ModeMermaid},
		{"prose", "hello world", ModeUnknown},
		{"empty", "", ModeUnknown},
		{"graphical is not graph", "graphical: true", ModeUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.text); got != tt.want {
				t.Errorf("Classify(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestClassifyPath(t *testing.T) {
	tests := []struct {
		path string
		want Mode
	}{
		{"dialog.yaml", ModeWireframe},
		{"dialog.YML", ModeWireframe},
		{"panel.json", ModeWireframe},
		{"flow.mmd", ModeMermaid},
		{"flow.mermaid", ModeMermaid},
		{"notes.txt", ModeUnknown},
		{"-", ModeUnknown},
		{"", ModeUnknown},
	}
	for _, tt := range tests {
		if got := ClassifyPath(tt.path); got != tt.want {
			t.Errorf("ClassifyPath(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestResolveMode(t *testing.T) {
	tests := []struct {
		name string
		text string
		opts Options
		want Mode
	}{
		{"forced mermaid wins over path", "title: x", Options{ForceMode: ForceMermaid, Path: "a.yaml"}, ModeMermaid},
		{"forced wireframe wins over content", "graph LR", Options{ForceMode: ForceWireframe}, ModeWireframe},
		{"path wins over content", "graph LR", Options{ForceMode: ForceAuto, Path: "a.yml"}, ModeWireframe},
		{"content when path unknown", "graph LR", Options{ForceMode: ForceAuto, Path: "a.txt"}, ModeMermaid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := resolveMode(tt.text, tt.opts); got != tt.want {
				t.Errorf("resolveMode() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestModeString(t *testing.T) {
	for m, want := range map[Mode]string{ModeUnknown: "unknown", ModeWireframe: "wireframe", ModeMermaid: "mermaid"} {
		if got := m.String(); got != want {
			t.Errorf("Mode(%d).String() = %q, want %q", m, got, want)
		}
	}
}
