package io

import (
	"bufio"
	"io"
	"os"

	"github.com/matzehuels/asciisketch/pkg/errors"
)

// WriteLines writes each line followed by a newline.
func WriteLines(w io.Writer, lines []string) error {
	bw := bufio.NewWriter(w)
	for _, l := range lines {
		bw.WriteString(l)
		bw.WriteByte('\n')
	}
	if err := bw.Flush(); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "write output")
	}
	return nil
}

// ExportLines writes lines to a file at path.
// This is a convenience wrapper around [WriteLines] for file-based output.
func ExportLines(path string, lines []string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "create %s", path)
	}
	if err := WriteLines(f, lines); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "close %s", path)
	}
	return nil
}
