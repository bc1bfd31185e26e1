package instrumentation

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/metric/noop"
)

func TestNewProviderDisabled(t *testing.T) {
	provider, err := NewProvider(context.Background(), Config{Enabled: false})
	require.NoError(t, err)

	assert.False(t, provider.Enabled())
	assert.False(t, provider.PrometheusConfigured())
	require.NotNil(t, provider.Metrics())

	// The zero-value recorder must be safe to use.
	provider.Metrics().RecordComputation(context.Background(), ModeContinuous, StatusSuccess, 3, time.Millisecond)
	provider.Metrics().RecordCalendarOperation(context.Background(), "events.list", StatusError, time.Millisecond)
	provider.Metrics().RecordToolInvocation(context.Background(), "availability_find", StatusSuccess, time.Millisecond)

	assert.NoError(t, provider.Shutdown(context.Background()))
}

func TestNewProviderDisabledTracerIsNoop(t *testing.T) {
	provider, err := NewProvider(context.Background(), Config{Enabled: false})
	require.NoError(t, err)

	tracer := provider.Tracer("test")
	require.NotNil(t, tracer)

	_, span := tracer.Start(context.Background(), "test-span")
	span.End()
}

func TestNewProviderUnsupportedMetricsExporter(t *testing.T) {
	cfg := Config{
		ServiceName:     "freeslots",
		Enabled:         true,
		MetricsExporter: "statsd",
		TracingExporter: ExporterNone,
	}

	_, err := NewProvider(context.Background(), cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported metrics exporter")
}

func TestNewProviderOTLPMetricsRequiresEndpoint(t *testing.T) {
	cfg := Config{
		ServiceName:     "freeslots",
		Enabled:         true,
		MetricsExporter: ExporterOTLP,
		TracingExporter: ExporterNone,
	}

	_, err := NewProvider(context.Background(), cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "OTLP endpoint is required")
}

func TestNewMetricsWithNoopMeter(t *testing.T) {
	meter := noop.NewMeterProvider().Meter("test")

	m, err := NewMetrics(meter)
	require.NoError(t, err)
	require.NotNil(t, m)

	m.RecordComputation(context.Background(), ModeSlots, StatusSuccess, 10, 5*time.Millisecond)
	m.RecordCalendarOperation(context.Background(), "freebusy.query", StatusSuccess, 100*time.Millisecond)
	m.RecordToolInvocation(context.Background(), "availability_freebusy", StatusError, time.Second)
}

func TestStatusOf(t *testing.T) {
	assert.Equal(t, StatusSuccess, StatusOf(nil))
	assert.Equal(t, StatusError, StatusOf(errors.New("boom")))
}
