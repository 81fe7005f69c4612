package cli

import (
	"io"
	"os"
)

// nopCloser wraps an io.Writer with a no-op Close method.
type nopCloser struct{ io.Writer }

// Close implements io.Closer with a no-op.
func (nopCloser) Close() error { return nil }

// openOutput returns a WriteCloser for the given path.
// If path is empty, it returns stdout wrapped in nopCloser.
// Otherwise, it creates the file at path, overwriting if it exists.
func openOutput(path string, stdout io.Writer) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{stdout}, nil
	}
	return os.Create(path)
}
