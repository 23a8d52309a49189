package telemetry

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// NoopTelemetry discards everything: logs, metrics, and spans. It is the
// zero-config default a reactor falls back to when Options leaves Logger,
// Metrics, or Tracer unset.
type NoopTelemetry struct{}

// noopSpan is a no-op implementation of Span.
type noopSpan struct{}

// NewNoopTelemetry constructs a Logger, Metrics, and Tracer that all
// discard their input.
func NewNoopTelemetry() *NoopTelemetry { return &NoopTelemetry{} }

// Debug discards the log message.
func (*NoopTelemetry) Debug(context.Context, string, ...any) {}

// Info discards the log message.
func (*NoopTelemetry) Info(context.Context, string, ...any) {}

// Warn discards the log message.
func (*NoopTelemetry) Warn(context.Context, string, ...any) {}

// Error discards the log message.
func (*NoopTelemetry) Error(context.Context, string, ...any) {}

// IncCounter discards the counter metric.
func (*NoopTelemetry) IncCounter(string, float64, ...string) {}

// RecordTimer discards the timer metric.
func (*NoopTelemetry) RecordTimer(string, time.Duration, ...string) {}

// RecordGauge discards the gauge metric.
func (*NoopTelemetry) RecordGauge(string, float64, ...string) {}

// Start returns a no-op span without modifying the context.
func (*NoopTelemetry) Start(ctx context.Context, name string, opts ...trace.SpanStartOption) (context.Context, Span) {
	return ctx, noopSpan{}
}

// Span returns a no-op span.
func (*NoopTelemetry) Span(context.Context) Span { return noopSpan{} }

// End is a no-op.
func (noopSpan) End(...trace.SpanEndOption) {}

// AddEvent is a no-op.
func (noopSpan) AddEvent(string, ...any) {}

// SetStatus is a no-op.
func (noopSpan) SetStatus(codes.Code, string) {}

// RecordError is a no-op.
func (noopSpan) RecordError(error, ...trace.EventOption) {}
