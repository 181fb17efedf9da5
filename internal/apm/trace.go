package apm

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// Tracer starts spans against the globally registered trace provider.
type Tracer interface {
	StartSpanFromContext(ctx context.Context, name string, opts ...trace.SpanStartOption) (context.Context, Span)
	SpanFromContext(ctx context.Context) Span
	GetTracer() trace.Tracer
}

type openTracer struct {
	tracer trace.Tracer
}

// NewTracer creates a named tracer. Spans are no-ops until a trace provider
// is installed by NewTraceProvider.
func NewTracer(name string) Tracer {
	return &openTracer{tracer: otel.Tracer(name)}
}

func (t *openTracer) StartSpanFromContext(
	ctx context.Context, name string, opts ...trace.SpanStartOption,
) (context.Context, Span) {
	ctx, span := t.tracer.Start(ctx, name, opts...)
	return ctx, newSpan(span)
}

func (t *openTracer) SpanFromContext(ctx context.Context) Span {
	return newSpan(trace.SpanFromContext(ctx))
}

// GetTracer exposes the underlying OTEL tracer for libraries that take one
// directly, like the instrumented HTTP client.
func (t *openTracer) GetTracer() trace.Tracer {
	return t.tracer
}
