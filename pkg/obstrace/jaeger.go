package obstrace

import (
	"go.opentelemetry.io/otel/exporters/jaeger"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// NewJaegerExporter builds a span exporter posting to a Jaeger collector,
// for deployments that want traces visualized outside of a terminal.
func NewJaegerExporter(endpoint string) (sdktrace.SpanExporter, error) {
	return jaeger.New(jaeger.WithCollectorEndpoint(jaeger.WithEndpoint(endpoint)))
}
