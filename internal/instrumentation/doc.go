// Package instrumentation provides OpenTelemetry metrics and tracing for the
// application.
//
// A Provider owns the meter and tracer providers and the exporter wiring;
// Metrics is the typed recording surface the rest of the code uses. Metrics
// can be exported via Prometheus (scraped from the dedicated metrics
// listener), OTLP, or stdout for debugging. Tracing is off by default and
// enabled through the same configuration.
package instrumentation
