package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.17.0"
	"go.opentelemetry.io/otel/trace"
)

// ShutdownFunc flushes and stops the installed trace provider.
type ShutdownFunc func(ctx context.Context) error

// InstallTraceProvider installs a trace provider exporting spans over OTLP/HTTP to endpoint.
// With an empty endpoint a no-op provider is installed. The returned function must be
// called before exit to flush pending spans.
func InstallTraceProvider(
	ctx context.Context,
	endpoint string,
	serviceName string,
) (ShutdownFunc, error) {
	var tracerProvider trace.TracerProvider
	shutdown := func(context.Context) error { return nil }

	defer func() {
		otel.SetTracerProvider(tracerProvider)
		otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}))
	}()

	tracerProvider = trace.NewNoopTracerProvider()
	if len(endpoint) == 0 {
		return shutdown, nil
	}

	client := otlptracehttp.NewClient(
		otlptracehttp.WithEndpoint(endpoint),
		otlptracehttp.WithInsecure(),
	)

	exporter, err := otlptrace.New(ctx, client)
	if err != nil {
		return shutdown, fmt.Errorf("creating OTLP trace exporter: %w", err)
	}

	r, err := resource.Merge(
		resource.Default(),
		resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(serviceName)))
	if err != nil {
		return shutdown, fmt.Errorf("creating resource: %w", err)
	}

	sdkProvider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(r))
	tracerProvider = sdkProvider

	return sdkProvider.Shutdown, nil
}
