package instrumentation

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metric attribute keys.
const (
	attrStatus    = "status"
	attrMode      = "mode"
	attrOperation = "operation"
	attrTool      = "tool"
)

// Metrics provides methods for recording observability metrics. The zero
// value is a no-op recorder, so callers never need nil checks.
type Metrics struct {
	computationsTotal   metric.Int64Counter
	computationDuration metric.Float64Histogram
	windowsFound        metric.Int64Histogram

	calendarAPIOperationsTotal   metric.Int64Counter
	calendarAPIOperationDuration metric.Float64Histogram

	toolInvocationsTotal metric.Int64Counter
	toolDuration         metric.Float64Histogram
}

// NewMetrics creates a new Metrics instance with all instruments initialized.
func NewMetrics(meter metric.Meter) (*Metrics, error) {
	m := &Metrics{}

	var err error

	m.computationsTotal, err = meter.Int64Counter(
		"availability_computations_total",
		metric.WithDescription("Total number of availability computations"),
		metric.WithUnit("{computation}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create availability_computations_total counter: %w", err)
	}

	m.computationDuration, err = meter.Float64Histogram(
		"availability_computation_duration_seconds",
		metric.WithDescription("Availability computation duration in seconds"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(0.0001, 0.001, 0.01, 0.1, 0.5, 1.0),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create availability_computation_duration_seconds histogram: %w", err)
	}

	m.windowsFound, err = meter.Int64Histogram(
		"availability_windows_found",
		metric.WithDescription("Number of free windows or slots per computation"),
		metric.WithUnit("{window}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create availability_windows_found histogram: %w", err)
	}

	m.calendarAPIOperationsTotal, err = meter.Int64Counter(
		"calendar_api_operations_total",
		metric.WithDescription("Total number of Google Calendar API operations"),
		metric.WithUnit("{operation}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar_api_operations_total counter: %w", err)
	}

	m.calendarAPIOperationDuration, err = meter.Float64Histogram(
		"calendar_api_operation_duration_seconds",
		metric.WithDescription("Google Calendar API operation duration in seconds"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(0.01, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0, 10.0, 30.0),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar_api_operation_duration_seconds histogram: %w", err)
	}

	m.toolInvocationsTotal, err = meter.Int64Counter(
		"tool_invocations_total",
		metric.WithDescription("Total number of MCP tool invocations"),
		metric.WithUnit("{invocation}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create tool_invocations_total counter: %w", err)
	}

	m.toolDuration, err = meter.Float64Histogram(
		"tool_duration_seconds",
		metric.WithDescription("MCP tool invocation duration in seconds"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(0.001, 0.01, 0.1, 0.5, 1.0, 2.5, 5.0, 10.0),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create tool_duration_seconds histogram: %w", err)
	}

	return m, nil
}

// RecordComputation records one availability computation.
func (m *Metrics) RecordComputation(ctx context.Context, mode, status string, windows int, duration time.Duration) {
	if m.computationsTotal == nil {
		return
	}
	attrs := metric.WithAttributes(
		attribute.String(attrMode, mode),
		attribute.String(attrStatus, status),
	)
	m.computationsTotal.Add(ctx, 1, attrs)
	m.computationDuration.Record(ctx, duration.Seconds(), attrs)
	if status == StatusSuccess {
		m.windowsFound.Record(ctx, int64(windows), metric.WithAttributes(attribute.String(attrMode, mode)))
	}
}

// RecordCalendarOperation records one Google Calendar API call.
func (m *Metrics) RecordCalendarOperation(ctx context.Context, operation, status string, duration time.Duration) {
	if m.calendarAPIOperationsTotal == nil {
		return
	}
	attrs := metric.WithAttributes(
		attribute.String(attrOperation, operation),
		attribute.String(attrStatus, status),
	)
	m.calendarAPIOperationsTotal.Add(ctx, 1, attrs)
	m.calendarAPIOperationDuration.Record(ctx, duration.Seconds(), attrs)
}

// RecordToolInvocation records one MCP tool invocation.
func (m *Metrics) RecordToolInvocation(ctx context.Context, tool, status string, duration time.Duration) {
	if m.toolInvocationsTotal == nil {
		return
	}
	attrs := metric.WithAttributes(
		attribute.String(attrTool, tool),
		attribute.String(attrStatus, status),
	)
	m.toolInvocationsTotal.Add(ctx, 1, attrs)
	m.toolDuration.Record(ctx, duration.Seconds(), attrs)
}

// StatusOf maps an error to the status label used across all metrics.
func StatusOf(err error) string {
	if err != nil {
		return StatusError
	}
	return StatusSuccess
}
