package cli

import (
	"bytes"
	"context"
	"testing"
	"time"
)

func TestSpinnerStopClearsLine(t *testing.T) {
	var buf bytes.Buffer
	s := newSpinnerWithContext(context.Background(), &buf, "Testing...")
	s.Start()
	time.Sleep(200 * time.Millisecond)
	s.Stop()

	if buf.Len() == 0 {
		t.Fatal("spinner drew nothing")
	}
	if last := buf.Bytes()[buf.Len()-1]; last != '\r' {
		t.Errorf("spinner output ends with %q, want a cleared line", last)
	}
}

func TestSpinnerStopIsIdempotent(t *testing.T) {
	s := newSpinnerWithContext(context.Background(), &bytes.Buffer{}, "Testing idempotent stop...")
	s.Start()
	s.Stop()
	s.Stop()
}

func TestSpinnerContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	var buf bytes.Buffer
	s := newSpinnerWithContext(ctx, &buf, "Testing with context...")
	s.Start()
	cancel()
	s.Stop()
}
