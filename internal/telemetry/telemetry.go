// Package telemetry provides OpenTelemetry instrumentation for Honeycomb.
package telemetry

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

const (
	serviceName    = "minesweep"
	serviceVersion = "0.1.0"

	honeycombEndpoint = "https://api.honeycomb.io"
)

// Options controls exporter setup.
type Options struct {
	// Enabled turns on the OTLP exporter. When false Setup installs nothing
	// and the global provider stays a no-op.
	Enabled bool
	// APIKey and Dataset are sent to Honeycomb as OTLP headers.
	APIKey  string
	Dataset string
	// Frontend is recorded on the resource ("tui" or "text").
	Frontend string
}

// Setup initializes OpenTelemetry with an OTLP HTTP exporter.
// Returns a shutdown function that should be called on application exit;
// it is a no-op when telemetry is disabled.
func Setup(ctx context.Context, opts Options) (shutdown func(context.Context) error, err error) {
	if !opts.Enabled {
		return func(context.Context) error { return nil }, nil
	}

	exporterOpts := []otlptracehttp.Option{}
	if os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") == "" {
		exporterOpts = append(exporterOpts, otlptracehttp.WithEndpointURL(honeycombEndpoint))
	}
	if opts.APIKey != "" {
		dataset := opts.Dataset
		if dataset == "" {
			dataset = serviceName
		}
		exporterOpts = append(exporterOpts, otlptracehttp.WithHeaders(map[string]string{
			"x-honeycomb-team":    opts.APIKey,
			"x-honeycomb-dataset": dataset,
		}))
	}

	exporter, err := otlptracehttp.New(ctx, exporterOpts...)
	if err != nil {
		return nil, fmt.Errorf("create otlp exporter: %w", err)
	}

	// We create our own resource without merging with Default() to avoid schema URL conflicts
	res, err := resource.New(ctx,
		resource.WithAttributes(
			attribute.String("service.name", serviceName),
			attribute.String("service.version", serviceVersion),
			attribute.String("minesweep.frontend", opts.Frontend),
			attribute.String("host.name", getHostname()),
			attribute.String("os.type", runtime.GOOS),
			attribute.String("process.runtime.version", runtime.Version()),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("create resource: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	return tp.Shutdown, nil
}

// Tracer returns a named tracer for the given component.
func Tracer(name string) trace.Tracer {
	return otel.GetTracerProvider().Tracer("minesweep/" + name)
}

// TracerFrom returns a named tracer from the provider that started the span
// in ctx, so child spans follow a caller-supplied tracer. Without a span in
// ctx it falls back to Tracer.
func TracerFrom(ctx context.Context, name string) trace.Tracer {
	span := trace.SpanFromContext(ctx)
	if !span.SpanContext().IsValid() {
		return Tracer(name)
	}
	return span.TracerProvider().Tracer("minesweep/" + name)
}

// getHostname returns the system hostname, or "unknown" if it cannot be determined.
func getHostname() string {
	hostname, err := os.Hostname()
	if err != nil {
		return "unknown"
	}
	return hostname
}
