package telemetry

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"goa.design/clue/log"
)

// ClueTelemetry is the production Logger/Metrics/Tracer: logging delegates
// to goa.design/clue/log, metrics and spans to the globally configured OTEL
// providers. One instance backs all three interfaces for a reactor, scoped
// by the instrumentation name it was built with (a reactor typically uses
// one scope per listener, not per connection, since connections share the
// same meter and tracer).
type ClueTelemetry struct {
	meter  metric.Meter
	tracer trace.Tracer
}

// clueSpan wraps an OTEL trace span.
type clueSpan struct {
	span trace.Span
}

// NewClueTelemetry builds a ClueTelemetry scoped to name, which should
// identify the reactor instance in OTEL's instrumentation scope (e.g.
// "goa.design/dap-reactor"). Logging reads formatting and debug settings
// from the context (set via log.Context and log.WithFormat/log.WithDebug);
// metrics and tracing use the global MeterProvider/TracerProvider,
// configured via otel.Set*Provider or clue.ConfigureOpenTelemetry before
// serving connections.
func NewClueTelemetry(name string) *ClueTelemetry {
	return &ClueTelemetry{
		meter:  otel.Meter(name),
		tracer: otel.Tracer(name),
	}
}

// Debug emits a debug-level log message with structured key-value pairs.
func (*ClueTelemetry) Debug(ctx context.Context, msg string, keyvals ...any) {
	log.Debug(ctx, append([]log.Fielder{log.KV{K: "msg", V: msg}}, kvToFielders(keyvals)...)...)
}

// Info emits an info-level log message with structured key-value pairs.
func (*ClueTelemetry) Info(ctx context.Context, msg string, keyvals ...any) {
	log.Info(ctx, append([]log.Fielder{log.KV{K: "msg", V: msg}}, kvToFielders(keyvals)...)...)
}

// Warn emits a warning-level log message with structured key-value pairs.
func (*ClueTelemetry) Warn(ctx context.Context, msg string, keyvals ...any) {
	fielders := []log.Fielder{log.KV{K: "msg", V: msg}, log.KV{K: "severity", V: "warning"}}
	log.Warn(ctx, append(fielders, kvToFielders(keyvals)...)...)
}

// Error emits an error-level log message with structured key-value pairs.
func (*ClueTelemetry) Error(ctx context.Context, msg string, keyvals ...any) {
	log.Error(ctx, nil, append([]log.Fielder{log.KV{K: "msg", V: msg}}, kvToFielders(keyvals)...)...)
}

// IncCounter increments a counter metric by the given value.
func (t *ClueTelemetry) IncCounter(name string, value float64, tags ...string) {
	counter, err := t.meter.Float64Counter(name)
	if err != nil {
		return
	}
	counter.Add(context.Background(), value, metric.WithAttributes(tagsToAttrs(tags)...))
}

// RecordTimer records a duration histogram for the named metric.
func (t *ClueTelemetry) RecordTimer(name string, duration time.Duration, tags ...string) {
	histogram, err := t.meter.Float64Histogram(name)
	if err != nil {
		return
	}
	histogram.Record(context.Background(), duration.Seconds(), metric.WithAttributes(tagsToAttrs(tags)...))
}

// RecordGauge records a gauge metric value. OTEL has no synchronous gauge
// instrument, so this falls back to a histogram suffixed "_gauge".
func (t *ClueTelemetry) RecordGauge(name string, value float64, tags ...string) {
	histogram, err := t.meter.Float64Histogram(name + "_gauge")
	if err != nil {
		return
	}
	histogram.Record(context.Background(), value, metric.WithAttributes(tagsToAttrs(tags)...))
}

// Start creates a new span with the given name, returning the derived
// context and the span handle.
func (t *ClueTelemetry) Start(ctx context.Context, name string, opts ...trace.SpanStartOption) (context.Context, Span) {
	newCtx, span := t.tracer.Start(ctx, name, opts...)
	return newCtx, &clueSpan{span: span}
}

// Span retrieves the current span from the context.
func (t *ClueTelemetry) Span(ctx context.Context) Span {
	return &clueSpan{span: trace.SpanFromContext(ctx)}
}

// End finalizes the span.
func (s *clueSpan) End(opts ...trace.SpanEndOption) { s.span.End(opts...) }

// AddEvent records a span event with the given name and attributes.
func (s *clueSpan) AddEvent(name string, attrs ...any) {
	s.span.AddEvent(name, trace.WithAttributes(kvToAttrs(attrs)...))
}

// SetStatus sets the span status code and description.
func (s *clueSpan) SetStatus(code codes.Code, description string) { s.span.SetStatus(code, description) }

// RecordError records an error on the span.
func (s *clueSpan) RecordError(err error, opts ...trace.EventOption) { s.span.RecordError(err, opts...) }

// kvToFielders converts variadic key-value pairs into Clue's log.Fielder
// slice. An odd-length slice pairs its last key with nil.
func kvToFielders(keyvals []any) []log.Fielder {
	var fielders []log.Fielder
	for i := 0; i < len(keyvals); i += 2 {
		k, ok := keyvals[i].(string)
		if !ok {
			continue
		}
		var v any
		if i+1 < len(keyvals) {
			v = keyvals[i+1]
		}
		fielders = append(fielders, log.KV{K: k, V: v})
	}
	return fielders
}

// tagsToAttrs converts tag strings (k1, v1, k2, v2, ...) into OTEL
// attributes for metrics dimensions, reusing kvToAttrs's pairing logic.
func tagsToAttrs(tags []string) []attribute.KeyValue {
	kv := make([]any, len(tags))
	for i, v := range tags {
		kv[i] = v
	}
	return kvToAttrs(kv)
}

// kvToAttrs converts variadic key-value pairs into OTEL attributes for span
// events, type-switching each value onto the narrowest attribute.KeyValue
// constructor it matches.
func kvToAttrs(keyvals []any) []attribute.KeyValue {
	var attrs []attribute.KeyValue
	for i := 0; i < len(keyvals); i += 2 {
		keyStr, _ := keyvals[i].(string)
		var v any
		if i+1 < len(keyvals) {
			v = keyvals[i+1]
		}
		switch val := v.(type) {
		case string:
			attrs = append(attrs, attribute.String(keyStr, val))
		case int:
			attrs = append(attrs, attribute.Int(keyStr, val))
		case int64:
			attrs = append(attrs, attribute.Int64(keyStr, val))
		case float64:
			attrs = append(attrs, attribute.Float64(keyStr, val))
		case bool:
			attrs = append(attrs, attribute.Bool(keyStr, val))
		default:
			attrs = append(attrs, attribute.String(keyStr, ""))
		}
	}
	return attrs
}
