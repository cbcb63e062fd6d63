// Package otel configures OpenTelemetry tracing for commands.
package otel

import (
	"context"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"

	"github.com/louisbranch/bpicons/internal/platform/config"
)

// Environment variables controlling tracing.
const (
	EnvEndpoint    = "BPICONS_OTEL_ENDPOINT"
	EnvEnabled     = "BPICONS_OTEL_ENABLED"
	EnvSampleRatio = "BPICONS_OTEL_SAMPLE_RATIO"
)

// Config selects the trace exporter. Tracing stays off until an endpoint is
// set.
type Config struct {
	Endpoint    string  `env:"BPICONS_OTEL_ENDPOINT"`
	Enabled     bool    `env:"BPICONS_OTEL_ENABLED" envDefault:"true"`
	SampleRatio float64 `env:"BPICONS_OTEL_SAMPLE_RATIO" envDefault:"1"`
}

// LoadConfig reads Config from the process environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Active reports whether Setup would install an exporter.
func (c Config) Active() bool {
	return c.Enabled && strings.TrimSpace(c.Endpoint) != ""
}

func (c Config) sampler() sdktrace.Sampler {
	switch {
	case c.SampleRatio >= 1:
		return sdktrace.AlwaysSample()
	case c.SampleRatio <= 0:
		return sdktrace.NeverSample()
	default:
		return sdktrace.ParentBased(sdktrace.TraceIDRatioBased(c.SampleRatio))
	}
}

// Setup registers a global tracer provider exporting over OTLP/HTTP.
//
// When cfg is not active it returns a no-op shutdown and leaves the global
// provider untouched, so spans started by handlers are discarded. The
// returned shutdown flushes pending spans and should be deferred.
func Setup(ctx context.Context, serviceName string, cfg Config) (shutdown func(context.Context) error, err error) {
	noop := func(context.Context) error { return nil }
	if !cfg.Active() {
		return noop, nil
	}

	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpointURL(strings.TrimSpace(cfg.Endpoint)),
	)
	if err != nil {
		return noop, fmt.Errorf("otlp exporter: %w", err)
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(semconv.ServiceName(serviceName)),
	)
	if err != nil {
		return noop, fmt.Errorf("otel resource: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(cfg.sampler()),
	)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	return tp.Shutdown, nil
}
