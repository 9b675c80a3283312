// Package obstrace emits one OpenTelemetry span per dispatch, implementing
// actor.DispatchObserver on top of go.opentelemetry.io/otel/sdk.
package obstrace

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

// Tracer wraps an otel tracer and records a span for every observed
// dispatch. Since observation happens after the handler has already run,
// the span is started and ended back-to-back with a recorded start time
// rather than wrapping the handler call itself — pkg/actor has no tracing
// import to hang a context-scoped span around, only a post-hoc hook.
type Tracer struct {
	tracer trace.Tracer
}

// NewStdout builds a Tracer exporting to stdout via stdouttrace, for local
// development and examples.
func NewStdout(exporter sdktrace.SpanExporter, serviceName string) (*Tracer, func(context.Context) error) {
	provider := sdktrace.NewTracerProvider(sdktrace.WithBatcher(exporter))
	otel.SetTracerProvider(provider)
	return &Tracer{tracer: provider.Tracer(serviceName)}, provider.Shutdown
}

// NewFromProvider wraps an already-configured TracerProvider (e.g. one
// exporting to Jaeger), for deployments that need a different exporter
// than the stdout default.
func NewFromProvider(provider trace.TracerProvider, serviceName string) *Tracer {
	return &Tracer{tracer: provider.Tracer(serviceName)}
}

// ObserveDispatch implements actor.DispatchObserver.
func (t *Tracer) ObserveDispatch(ctx context.Context, actorType, messageType string, dur time.Duration, err error) {
	end := time.Now()
	start := end.Add(-dur)

	_, span := t.tracer.Start(ctx, actorType+"."+messageType, trace.WithTimestamp(start))
	span.SetAttributes(
		attribute.String("actor.type", actorType),
		attribute.String("actor.message_type", messageType),
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End(trace.WithTimestamp(end))
}

// ObserveResolve implements inject.ResolveObserver, recording one
// "inject.resolve" span per Injector.Get/GetNamed call with the resolved
// binding's type, name, and whether it was already cached.
func (t *Tracer) ObserveResolve(ctx context.Context, bindingType, bindingName string, cacheHit bool, dur time.Duration, err error) {
	end := time.Now()
	start := end.Add(-dur)

	_, span := t.tracer.Start(ctx, "inject.resolve", trace.WithTimestamp(start))
	span.SetAttributes(
		attribute.String("binding.type", bindingType),
		attribute.String("binding.name", bindingName),
		attribute.Bool("cache.hit", cacheHit),
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End(trace.WithTimestamp(end))
}
