// Package telemetry provides telemetry adapters for recording build phases.
package telemetry

import (
	"context"
	"io"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/kiln/internal/core/ports"
)

// Tracer implements ports.Telemetry with OpenTelemetry spans. Spans go to the
// globally registered tracer provider, which is a no-op unless one is installed.
type Tracer struct {
	tracer trace.Tracer
}

// NewTracer creates a new Tracer with the given instrumentation name.
func NewTracer(name string) *Tracer {
	return &Tracer{tracer: otel.Tracer(name)}
}

// Record starts a span for the named phase.
func (t *Tracer) Record(ctx context.Context, name string, opts ...ports.VertexOption) (context.Context, ports.Vertex) {
	cfg := &ports.VertexConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	ctx, span := t.tracer.Start(ctx, name, trace.WithAttributes(attribute.Bool("kiln.internal", cfg.Internal)))
	return ctx, &Span{span: span}
}

// Close does nothing; the tracer provider owns the exporter.
func (t *Tracer) Close() error {
	return nil
}

// Span implements ports.Vertex using an OpenTelemetry span.
type Span struct {
	span trace.Span
}

// Stdout returns a writer that records each write as a span event.
func (s *Span) Stdout() io.Writer {
	return spanWriter{span: s.span}
}

// Log records a leveled message as a span event.
func (s *Span) Log(level domain.LogLevel, msg string) {
	s.span.AddEvent("log", trace.WithAttributes(
		attribute.String("level", level.String()),
		attribute.String("message", msg),
	))
}

// Complete ends the span, recording err when it is not nil.
func (s *Span) Complete(err error) {
	if err != nil {
		s.span.RecordError(err)
		s.span.SetStatus(codes.Error, err.Error())
	}
	s.span.End()
}

// Cached marks the phase as skipped.
func (s *Span) Cached() {
	s.span.SetAttributes(attribute.Bool("kiln.cached", true))
}

type spanWriter struct {
	span trace.Span
}

func (w spanWriter) Write(p []byte) (int, error) {
	w.span.AddEvent("output", trace.WithAttributes(attribute.String("message", string(p))))
	return len(p), nil
}
