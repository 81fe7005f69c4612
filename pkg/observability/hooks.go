// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers can register hooks at startup
// to receive events about pipeline stages and the warnings they raise.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// Hooks are registered by main, never by libraries, so the rendering
// packages stay free of any metrics or tracing framework.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetPipelineHooks(&myPipelineHooks{})
//	    observability.SetDiagnosticHooks(&myDiagnosticHooks{})
//	    // ... run application
//	}
//
// The pipeline calls hooks around each stage:
//
//	observability.Pipeline().OnParseStart(ctx, "mermaid")
//	// ... parse ...
//	observability.Pipeline().OnParseComplete(ctx, "mermaid", elements, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Pipeline Hooks
// =============================================================================

// PipelineHooks receives events from the rendering pipeline. The mode is
// the classified input kind ("wireframe" or "mermaid").
type PipelineHooks interface {
	// Parse events
	OnParseStart(ctx context.Context, mode string)
	OnParseComplete(ctx context.Context, mode string, elements int, duration time.Duration, err error)

	// Layout events
	OnLayoutStart(ctx context.Context, kind string, elements int)
	OnLayoutComplete(ctx context.Context, kind string, duration time.Duration, err error)

	// Render events
	OnRenderStart(ctx context.Context, kind string)
	OnRenderComplete(ctx context.Context, kind string, lines int, duration time.Duration, err error)
}

// =============================================================================
// Diagnostic Hooks
// =============================================================================

// DiagnosticHooks receives the non-fatal findings of a run.
type DiagnosticHooks interface {
	// OnWarning records a layout warning. Line is 0 when unknown.
	OnWarning(ctx context.Context, code string, line int)

	// OnCollision records canvas cells that were overwritten during drawing.
	OnCollision(ctx context.Context, kind string, count int)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopPipelineHooks is a no-op implementation of PipelineHooks.
type NoopPipelineHooks struct{}

func (NoopPipelineHooks) OnParseStart(context.Context, string)                                {}
func (NoopPipelineHooks) OnParseComplete(context.Context, string, int, time.Duration, error)  {}
func (NoopPipelineHooks) OnLayoutStart(context.Context, string, int)                          {}
func (NoopPipelineHooks) OnLayoutComplete(context.Context, string, time.Duration, error)      {}
func (NoopPipelineHooks) OnRenderStart(context.Context, string)                               {}
func (NoopPipelineHooks) OnRenderComplete(context.Context, string, int, time.Duration, error) {}

// NoopDiagnosticHooks is a no-op implementation of DiagnosticHooks.
type NoopDiagnosticHooks struct{}

func (NoopDiagnosticHooks) OnWarning(context.Context, string, int)   {}
func (NoopDiagnosticHooks) OnCollision(context.Context, string, int) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	pipelineHooks   PipelineHooks   = NoopPipelineHooks{}
	diagnosticHooks DiagnosticHooks = NoopDiagnosticHooks{}
	hooksMu         sync.RWMutex
)

// SetPipelineHooks registers custom pipeline hooks.
// This should be called once at application startup before any pipeline operations.
func SetPipelineHooks(h PipelineHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		pipelineHooks = h
	}
}

// SetDiagnosticHooks registers custom diagnostic hooks.
func SetDiagnosticHooks(h DiagnosticHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		diagnosticHooks = h
	}
}

// Pipeline returns the registered pipeline hooks.
func Pipeline() PipelineHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return pipelineHooks
}

// Diagnostics returns the registered diagnostic hooks.
func Diagnostics() DiagnosticHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return diagnosticHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	pipelineHooks = NoopPipelineHooks{}
	diagnosticHooks = NoopDiagnosticHooks{}
}
