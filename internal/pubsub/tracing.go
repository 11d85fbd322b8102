package pubsub

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/zipkin"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

const tracerName = "gridgarden/pubsub"

// TracingConfig controls the OpenTelemetry tracing of bus messages.
type TracingConfig struct {
	Enabled     bool
	ServiceName string
	ZipkinURL   string
}

// SetupTracing returns the tracer for the bus and a function that flushes and
// stops it. A disabled config yields a no-op tracer.
func SetupTracing(ctx context.Context, cfg TracingConfig) (trace.Tracer, func(context.Context) error, error) {
	if !cfg.Enabled {
		return noop.NewTracerProvider().Tracer(tracerName), func(context.Context) error { return nil }, nil
	}

	exporter, err := zipkin.New(cfg.ZipkinURL)
	if err != nil {
		return nil, nil, fmt.Errorf("create zipkin exporter: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(resource.NewSchemaless(
			attribute.String("service.name", cfg.ServiceName),
		)),
	)
	return tp.Tracer(tracerName), tp.Shutdown, nil
}

func messagingAttributes(topic, operation string, msgID string, size int) trace.SpanStartOption {
	return trace.WithAttributes(
		attribute.String("messaging.system", "watermill"),
		attribute.String("messaging.operation", operation),
		attribute.String("messaging.destination", topic),
		attribute.String("messaging.message_id", msgID),
		attribute.Int("messaging.message_payload_size_bytes", size),
	)
}
