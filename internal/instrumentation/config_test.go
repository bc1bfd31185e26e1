package instrumentation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "freeslots", cfg.ServiceName)
	assert.True(t, cfg.Enabled)
	assert.Equal(t, ExporterPrometheus, cfg.MetricsExporter)
	assert.Equal(t, ExporterNone, cfg.TracingExporter)
	assert.InDelta(t, 0.1, cfg.TraceSamplingRate, 0.0001)
}

func TestDefaultConfigEnvOverrides(t *testing.T) {
	t.Setenv("OTEL_SERVICE_NAME", "freeslots-test")
	t.Setenv("INSTRUMENTATION_ENABLED", "false")
	t.Setenv("METRICS_EXPORTER", "stdout")
	t.Setenv("TRACING_EXPORTER", "stdout")
	t.Setenv("OTEL_TRACES_SAMPLER_ARG", "0.5")

	cfg := DefaultConfig()

	assert.Equal(t, "freeslots-test", cfg.ServiceName)
	assert.False(t, cfg.Enabled)
	assert.Equal(t, ExporterStdout, cfg.MetricsExporter)
	assert.Equal(t, ExporterStdout, cfg.TracingExporter)
	assert.InDelta(t, 0.5, cfg.TraceSamplingRate, 0.0001)
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "default config is valid",
			mutate: func(c *Config) {},
		},
		{
			name:    "sampling rate above one",
			mutate:  func(c *Config) { c.TraceSamplingRate = 1.5 },
			wantErr: "sampling rate",
		},
		{
			name:    "sampling rate negative",
			mutate:  func(c *Config) { c.TraceSamplingRate = -0.1 },
			wantErr: "sampling rate",
		},
		{
			name:    "unknown metrics exporter",
			mutate:  func(c *Config) { c.MetricsExporter = "statsd" },
			wantErr: "invalid metrics exporter",
		},
		{
			name:    "unknown tracing exporter",
			mutate:  func(c *Config) { c.TracingExporter = "jaeger" },
			wantErr: "invalid tracing exporter",
		},
		{
			name: "otlp metrics without endpoint",
			mutate: func(c *Config) {
				c.MetricsExporter = ExporterOTLP
				c.OTLPEndpoint = ""
			},
			wantErr: "OTLP endpoint is required",
		},
		{
			name: "otlp tracing without endpoint",
			mutate: func(c *Config) {
				c.TracingExporter = ExporterOTLP
				c.OTLPEndpoint = ""
			},
			wantErr: "OTLP endpoint is required",
		},
		{
			name: "otlp with endpoint is valid",
			mutate: func(c *Config) {
				c.MetricsExporter = ExporterOTLP
				c.TracingExporter = ExporterOTLP
				c.OTLPEndpoint = "localhost:4318"
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{
				ServiceName:       "freeslots",
				Enabled:           true,
				MetricsExporter:   ExporterPrometheus,
				TracingExporter:   ExporterNone,
				TraceSamplingRate: 0.1,
			}
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
