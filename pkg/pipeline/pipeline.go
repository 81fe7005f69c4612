// Package pipeline provides the rendering pipeline behind the CLI.
//
// This package implements the complete classify → parse → layout → render
// pipeline so that every entry point (render command, tests, embedding
// programs) produces the same text for the same input.
//
// # Architecture
//
// The pipeline consists of four stages:
//
//  1. Classify: decide whether the source is a wireframe or a diagram
//  2. Parse: build the wireframe document or the diagram model
//  3. Layout: compute panel stacks, layers and routes
//  4. Render: draw onto a canvas and flatten it to lines
//
// Parse errors abort the run. Layout anomalies never do; they are collected
// as warnings in the [Result].
//
// # Usage
//
//	runner := pipeline.NewRunner(logger)
//	result, err := runner.Execute(ctx, src, pipeline.Options{ASCIIOnly: true})
//	if err != nil {
//	    return err
//	}
//	fmt.Println(result.Text)
//	for _, w := range result.Warnings {
//	    logger.Warn(w.String())
//	}
package pipeline

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/asciisketch/pkg/canvas"
	"github.com/matzehuels/asciisketch/pkg/errors"
	"github.com/matzehuels/asciisketch/pkg/wireframe"
)

// =============================================================================
// Default Values
// =============================================================================

// Forced mode values accepted by [Options.ForceMode].
const (
	ForceAuto      = "auto"
	ForceWireframe = "wireframe"
	ForceMermaid   = "mermaid"
)

// Overflow policies accepted by [Options.Overflow].
const (
	OverflowWrap  = "wrap"
	OverflowError = "error"
)

const (
	// DefaultForceMode classifies the input by content.
	DefaultForceMode = ForceAuto

	// DefaultOverflow wraps wide wireframe content and warns.
	DefaultOverflow = OverflowWrap
)

// ValidForceModes is the set of supported forced modes.
var ValidForceModes = map[string]bool{
	ForceAuto:      true,
	ForceWireframe: true,
	ForceMermaid:   true,
}

// ValidOverflows is the set of supported overflow policies.
var ValidOverflows = map[string]bool{
	OverflowWrap:  true,
	OverflowError: true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for one pipeline run.
type Options struct {
	ASCIIOnly bool   `json:"ascii,omitempty"`
	ForceMode string `json:"mode,omitempty"`
	Overflow  string `json:"overflow,omitempty"`
	Compact   bool   `json:"compact,omitempty"`

	// Path is the source file name. Its extension is consulted before
	// content sniffing. Empty or "-" for standard input.
	Path string `json:"path,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Mode is the mode the source was rendered in.
	Mode Mode

	// Kind names what was rendered: "wireframe", "flowchart" or "sequence".
	Kind string

	// Lines are the flattened canvas rows, compacted when requested.
	Lines []string

	// Text is Lines joined with newlines, without a trailing newline.
	Text string

	// Warnings are the non-fatal findings of parsing and layout.
	Warnings []errors.Warning

	// Stats contains timing and size information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	// Elements counts panels, nodes or participants.
	Elements int
	// Connections counts components, edges or messages.
	Connections int

	Layers     int
	Feedback   int
	Crossings  int
	Collisions int

	Width  int
	Height int

	ParseTime  time.Duration
	LayoutTime time.Duration
	RenderTime time.Duration
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateForceMode checks that a forced mode is valid.
func ValidateForceMode(mode string) error {
	if !ValidForceModes[mode] {
		return errors.New(errors.ErrCodeInvalidInput, "invalid mode: %q (must be one of: auto, wireframe, mermaid)", mode)
	}
	return nil
}

// ValidateOverflow checks that an overflow policy is valid.
func ValidateOverflow(overflow string) error {
	if !ValidOverflows[overflow] {
		return errors.New(errors.ErrCodeInvalidInput, "invalid overflow: %q (must be one of: wrap, error)", overflow)
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks the options and applies defaults.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.ForceMode == "" {
		o.ForceMode = DefaultForceMode
	}
	if o.Overflow == "" {
		o.Overflow = DefaultOverflow
	}
	if err := ValidateForceMode(o.ForceMode); err != nil {
		return err
	}
	if err := ValidateOverflow(o.Overflow); err != nil {
		return err
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}

// Glyphs returns the glyph set selected by ASCIIOnly.
func (o *Options) Glyphs() canvas.Glyphs {
	return canvas.GlyphsFor(o.ASCIIOnly)
}

// WireframeOptions returns the options for the wireframe renderer.
func (o *Options) WireframeOptions() wireframe.Options {
	opts := wireframe.Options{Glyphs: o.Glyphs()}
	if o.Overflow == OverflowError {
		opts.Overflow = wireframe.OverflowError
	}
	return opts
}

// String summarizes the options for logs.
func (o *Options) String() string {
	return fmt.Sprintf("mode=%s overflow=%s ascii=%t compact=%t", o.ForceMode, o.Overflow, o.ASCIIOnly, o.Compact)
}
