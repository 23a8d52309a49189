package telemetry_test

import (
	"context"
	"testing"
	"time"

	"goa.design/dap-reactor/dap/telemetry"
)

// TestNoopImplementationsDoNotPanic exercises every method on NoopTelemetry,
// since it is the zero-config default for Options fields left unset and
// must be safe to call with arbitrary arguments.
func TestNoopImplementationsDoNotPanic(t *testing.T) {
	ctx := context.Background()
	tel := telemetry.NewNoopTelemetry()

	tel.Debug(ctx, "msg", "k", "v")
	tel.Info(ctx, "msg")
	tel.Warn(ctx, "msg", "k", 1)
	tel.Error(ctx, "msg", "err", "boom")

	tel.IncCounter("c", 1, "tag", "v")
	tel.RecordTimer("t", time.Millisecond)
	tel.RecordGauge("g", 3.14)

	spanCtx, span := tel.Start(ctx, "span")
	if spanCtx == nil {
		t.Fatal("Start returned nil context")
	}
	span.AddEvent("event")
	span.SetStatus(0, "ok")
	span.RecordError(nil)
	span.End()

	_ = tel.Span(ctx)
}
