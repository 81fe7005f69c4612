package pipeline

import (
	"testing"

	"github.com/matzehuels/asciisketch/pkg/canvas"
	"github.com/matzehuels/asciisketch/pkg/errors"
	"github.com/matzehuels/asciisketch/pkg/wireframe"
)

func TestValidateForceMode(t *testing.T) {
	tests := []struct {
		mode    string
		wantErr bool
	}{
		{"auto", false},
		{"wireframe", false},
		{"mermaid", false},
		{"Mermaid", true}, // case-sensitive
		{"yaml", true},
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateForceMode(tt.mode)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateForceMode(%q) error = %v, wantErr %v", tt.mode, err, tt.wantErr)
		}
		if err != nil && !errors.Is(err, errors.ErrCodeInvalidInput) {
			t.Errorf("ValidateForceMode(%q) code = %s, want INVALID_INPUT", tt.mode, errors.GetCode(err))
		}
	}
}

func TestValidateOverflow(t *testing.T) {
	tests := []struct {
		overflow string
		wantErr  bool
	}{
		{"wrap", false},
		{"error", false},
		{"grow", true},
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateOverflow(tt.overflow)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateOverflow(%q) error = %v, wantErr %v", tt.overflow, err, tt.wantErr)
		}
	}
}

func TestOptionsDefaults(t *testing.T) {
	opts := Options{}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("ValidateAndSetDefaults() error = %v", err)
	}

	if opts.ForceMode != DefaultForceMode {
		t.Errorf("ForceMode = %q, want %q", opts.ForceMode, DefaultForceMode)
	}
	if opts.Overflow != DefaultOverflow {
		t.Errorf("Overflow = %q, want %q", opts.Overflow, DefaultOverflow)
	}
	if opts.Logger == nil {
		t.Error("Logger should default to a discarding logger")
	}

	// Idempotent
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Errorf("second ValidateAndSetDefaults() error = %v", err)
	}
}

func TestOptionsInvalid(t *testing.T) {
	opts := Options{ForceMode: "svg"}
	if err := opts.ValidateAndSetDefaults(); err == nil {
		t.Error("invalid mode should fail")
	}

	opts = Options{Overflow: "shrink"}
	if err := opts.ValidateAndSetDefaults(); err == nil {
		t.Error("invalid overflow should fail")
	}
}

func TestOptionsGlyphs(t *testing.T) {
	if g := (&Options{}).Glyphs(); g.Name != canvas.Unicode.Name {
		t.Errorf("Glyphs() = %s, want unicode", g.Name)
	}
	if g := (&Options{ASCIIOnly: true}).Glyphs(); g.Name != canvas.ASCII.Name {
		t.Errorf("Glyphs() = %s, want ascii", g.Name)
	}
}

func TestWireframeOptions(t *testing.T) {
	opts := Options{Overflow: OverflowError, ASCIIOnly: true}
	w := opts.WireframeOptions()
	if w.Overflow != wireframe.OverflowError {
		t.Errorf("Overflow = %v, want OverflowError", w.Overflow)
	}
	if w.Glyphs.Name != canvas.ASCII.Name {
		t.Errorf("Glyphs = %s, want ascii", w.Glyphs.Name)
	}

	opts.Overflow = OverflowWrap
	if w := opts.WireframeOptions(); w.Overflow != wireframe.OverflowWrap {
		t.Errorf("Overflow = %v, want OverflowWrap", w.Overflow)
	}
}
