package tracer

import (
	"context"
	"testing"
)

func TestInitTracerDisabledByDefault(t *testing.T) {
	t.Setenv("OTEL_ENABLED", "")
	shutdown := InitTracer()
	if shutdown == nil {
		t.Fatal("expected a shutdown func even when tracing is disabled")
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("noop shutdown returned error: %v", err)
	}
}
