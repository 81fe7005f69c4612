package observability

import (
	"context"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	// Pipeline hooks
	p := NoopPipelineHooks{}
	p.OnParseStart(ctx, "mermaid")
	p.OnParseComplete(ctx, "mermaid", 4, time.Second, nil)
	p.OnLayoutStart(ctx, "flowchart", 4)
	p.OnLayoutComplete(ctx, "flowchart", time.Second, nil)
	p.OnRenderStart(ctx, "flowchart")
	p.OnRenderComplete(ctx, "flowchart", 12, time.Second, nil)

	// Diagnostic hooks
	d := NoopDiagnosticHooks{}
	d.OnWarning(ctx, "LAYOUT_WARNING", 3)
	d.OnCollision(ctx, "flowchart", 1)
}

func TestGlobalHooksRegistry(t *testing.T) {
	// Reset to known state
	Reset()

	// Verify defaults are noop
	if _, ok := Pipeline().(NoopPipelineHooks); !ok {
		t.Error("Pipeline() should return NoopPipelineHooks by default")
	}
	if _, ok := Diagnostics().(NoopDiagnosticHooks); !ok {
		t.Error("Diagnostics() should return NoopDiagnosticHooks by default")
	}

	// Set custom hooks
	customPipeline := &testPipelineHooks{}
	SetPipelineHooks(customPipeline)
	if Pipeline() != customPipeline {
		t.Error("SetPipelineHooks should set custom hooks")
	}

	customDiagnostics := &testDiagnosticHooks{}
	SetDiagnosticHooks(customDiagnostics)
	if Diagnostics() != customDiagnostics {
		t.Error("SetDiagnosticHooks should set custom hooks")
	}

	// Reset and verify
	Reset()
	if _, ok := Pipeline().(NoopPipelineHooks); !ok {
		t.Error("Reset() should restore NoopPipelineHooks")
	}
	if _, ok := Diagnostics().(NoopDiagnosticHooks); !ok {
		t.Error("Reset() should restore NoopDiagnosticHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()

	custom := &testPipelineHooks{}
	SetPipelineHooks(custom)

	// Setting nil should be ignored
	SetPipelineHooks(nil)
	SetDiagnosticHooks(nil)

	if Pipeline() != custom {
		t.Error("SetPipelineHooks(nil) should be ignored")
	}
	if _, ok := Diagnostics().(NoopDiagnosticHooks); !ok {
		t.Error("SetDiagnosticHooks(nil) should be ignored")
	}

	Reset()
}

// Test implementations
type testPipelineHooks struct{ NoopPipelineHooks }
type testDiagnosticHooks struct{ NoopDiagnosticHooks }
