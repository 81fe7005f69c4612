package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestExamples(t *testing.T) {
	paths, err := filepath.Glob(filepath.Join("..", "..", "examples", "*", "*"))
	if err != nil {
		t.Fatal(err)
	}
	if len(paths) == 0 {
		t.Skip("no examples found")
	}

	for _, path := range paths {
		t.Run(filepath.Base(path), func(t *testing.T) {
			data, err := os.ReadFile(path)
			if err != nil {
				t.Fatal(err)
			}
			opts := Options{Path: path}
			first, err := newTestRunner().Execute(context.Background(), string(data), opts)
			if err != nil {
				t.Fatalf("Execute(%s) error = %v", path, err)
			}
			second, err := newTestRunner().Execute(context.Background(), string(data), opts)
			if err != nil {
				t.Fatalf("Execute(%s) error = %v", path, err)
			}
			if first.Text != second.Text {
				t.Errorf("Execute(%s) is not deterministic", path)
			}
			if first.Stats.Width == 0 || first.Stats.Height == 0 {
				t.Errorf("Execute(%s) drew nothing", path)
			}
		})
	}
}
