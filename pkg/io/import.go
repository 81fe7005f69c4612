package io

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/matzehuels/asciisketch/pkg/errors"
)

// Stdin is the path that selects standard input.
const Stdin = "-"

// Source is a diagram or wireframe text ready for parsing.
type Source struct {
	// Name is the file path, or "-" for standard input.
	Name string
	// Text is the normalized content.
	Text string
}

// Ext returns the lowercased file extension of the source name, including
// the dot. Standard input has no extension.
func (s *Source) Ext() string {
	if s.Name == Stdin {
		return ""
	}
	return strings.ToLower(filepath.Ext(s.Name))
}

// ReadSource reads all of r. The name is kept for error messages and for
// extension-based mode detection.
func ReadSource(r io.Reader, name string) (*Source, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeIO, err, "read %s", name)
	}
	return &Source{Name: name, Text: normalize(data)}, nil
}

// ImportSource reads the file at path. An empty path or "-" reads stdin
// instead. ImportSource does not close stdin.
func ImportSource(path string, stdin io.Reader) (*Source, error) {
	if path == "" || path == Stdin {
		return ReadSource(stdin, Stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeIO, err, "open %s", path)
	}
	defer f.Close()
	return ReadSource(f, path)
}

func normalize(data []byte) string {
	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))
	data = bytes.ReplaceAll(data, []byte("\r\n"), []byte("\n"))
	data = bytes.ReplaceAll(data, []byte("\r"), []byte("\n"))
	return string(data)
}
