package config

import (
	"context"
	"errors"
	"os"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"

	"github.com/f1board/f1board/log"
	"github.com/f1board/f1board/version"
)

const metricInterval = 15 * time.Second

// Telemetry holds the installed providers.
type Telemetry struct {
	meterProvider  *metric.MeterProvider
	tracerProvider *trace.TracerProvider
}

// SetupTelemetry installs global meter and tracer providers. Data is sent to
// TelemetryEndpoint via OTLP gRPC or written to stderr when no endpoint is
// configured.
func SetupTelemetry(ctx context.Context) (*Telemetry, error) {
	res, err := resource.Merge(resource.Default(), resource.NewSchemaless(
		attribute.String("service.name", "f1board"),
		attribute.String("service.version", version.Version),
	))
	if err != nil {
		return nil, err
	}

	metricExporter, traceExporter, err := newExporters(ctx)
	if err != nil {
		return nil, err
	}

	ret := &Telemetry{
		meterProvider: metric.NewMeterProvider(
			metric.WithResource(res),
			metric.WithReader(metric.NewPeriodicReader(metricExporter,
				metric.WithInterval(metricInterval))),
		),
		tracerProvider: trace.NewTracerProvider(
			trace.WithResource(res),
			trace.WithBatcher(traceExporter),
		),
	}
	otel.SetMeterProvider(ret.meterProvider)
	otel.SetTracerProvider(ret.tracerProvider)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{}, propagation.Baggage{}))
	return ret, nil
}

func newExporters(ctx context.Context) (metric.Exporter, trace.SpanExporter, error) {
	if TelemetryEndpoint == "" {
		me, err := stdoutmetric.New(stdoutmetric.WithWriter(os.Stderr))
		if err != nil {
			return nil, nil, err
		}
		te, err := stdouttrace.New(stdouttrace.WithWriter(os.Stderr))
		if err != nil {
			return nil, nil, err
		}
		return me, te, nil
	}
	me, err := otlpmetricgrpc.New(ctx,
		otlpmetricgrpc.WithEndpoint(TelemetryEndpoint),
		otlpmetricgrpc.WithInsecure())
	if err != nil {
		return nil, nil, err
	}
	te, err := otlptracegrpc.New(ctx,
		otlptracegrpc.WithEndpoint(TelemetryEndpoint),
		otlptracegrpc.WithInsecure())
	if err != nil {
		return nil, nil, err
	}
	return me, te, nil
}

// Shutdown flushes pending data and stops the providers.
func (t *Telemetry) Shutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	err := errors.Join(
		t.meterProvider.Shutdown(ctx),
		t.tracerProvider.Shutdown(ctx),
	)
	if err != nil {
		log.Warn("telemetry shutdown", log.ErrorField(err))
	}
}
