package io

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/asciisketch/pkg/errors"
)

func TestReadSourceNormalizes(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "graph LR\nA --> B\n", "graph LR\nA --> B\n"},
		{"crlf", "graph LR\r\nA --> B\r\n", "graph LR\nA --> B\n"},
		{"cr", "graph LR\rA --> B", "graph LR\nA --> B"},
		{"bom", "\xef\xbb\xbfwidth: 20", "width: 20"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src, err := ReadSource(strings.NewReader(tt.in), "x")
			if err != nil {
				t.Fatalf("ReadSource() error: %v", err)
			}
			if src.Text != tt.want {
				t.Errorf("ReadSource() = %q, want %q", src.Text, tt.want)
			}
		})
	}
}

func TestImportSource(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "flow.MMD")
	if err := os.WriteFile(path, []byte("graph TD\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	src, err := ImportSource(path, nil)
	if err != nil {
		t.Fatalf("ImportSource() error: %v", err)
	}
	if src.Text != "graph TD\n" || src.Name != path {
		t.Errorf("ImportSource() = %+v", src)
	}
	if got := src.Ext(); got != ".mmd" {
		t.Errorf("Ext() = %q, want %q", got, ".mmd")
	}
}

func TestImportSourceStdin(t *testing.T) {
	for _, path := range []string{"", "-"} {
		src, err := ImportSource(path, strings.NewReader("sequenceDiagram"))
		if err != nil {
			t.Fatalf("ImportSource(%q) error: %v", path, err)
		}
		if src.Name != Stdin || src.Ext() != "" || src.Text != "sequenceDiagram" {
			t.Errorf("ImportSource(%q) = %+v", path, src)
		}
	}
}

func TestImportSourceMissing(t *testing.T) {
	_, err := ImportSource(filepath.Join(t.TempDir(), "nope.yaml"), nil)
	if !errors.Is(err, errors.ErrCodeIO) {
		t.Errorf("ImportSource() error = %v, want IO_ERROR", err)
	}
}

func TestWriteLines(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteLines(&buf, []string{"┌─┐", "└─┘"}); err != nil {
		t.Fatalf("WriteLines() error: %v", err)
	}
	if got, want := buf.String(), "┌─┐\n└─┘\n"; got != want {
		t.Errorf("WriteLines() = %q, want %q", got, want)
	}
}

func TestExportLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	if err := ExportLines(path, []string{"a", "b"}); err != nil {
		t.Fatalf("ExportLines() error: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "a\nb\n" {
		t.Errorf("file = %q, want %q", data, "a\nb\n")
	}
}
