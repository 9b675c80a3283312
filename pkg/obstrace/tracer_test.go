package obstrace

import (
	"context"
	"errors"
	"testing"
	"time"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestObserveDispatchRecordsSpan(t *testing.T) {
	exporter := tracetest.NewInMemoryExporter()
	provider := sdktrace.NewTracerProvider(
		sdktrace.WithSyncer(exporter),
	)
	defer provider.Shutdown(context.Background())

	tr := NewFromProvider(provider, "actorcell-test")
	tr.ObserveDispatch(context.Background(), "Counter", "addParams", 2*time.Millisecond, nil)
	tr.ObserveDispatch(context.Background(), "Counter", "addParams", 2*time.Millisecond, errors.New("boom"))

	spans := exporter.GetSpans()
	if len(spans) != 2 {
		t.Fatalf("recorded %d spans, want 2", len(spans))
	}
	if spans[0].Name != "Counter.addParams" {
		t.Fatalf("span name = %q, want %q", spans[0].Name, "Counter.addParams")
	}
	if spans[1].Status.Code.String() == "Unset" {
		t.Fatalf("error span should have non-unset status, got %v", spans[1].Status)
	}
}
