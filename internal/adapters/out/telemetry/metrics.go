// Package telemetry holds the OpenTelemetry metric instruments of nexus.
package telemetry

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

// Metrics holds nexus OTel metrics instruments.
type Metrics struct {
	// Workspace operations
	WorkspaceOps        metric.Int64Counter
	WorkspaceOpErrors   metric.Int64Counter
	WorkspaceOpDuration metric.Float64Histogram

	// Container lifecycle
	HealthWaitDuration  metric.Float64Histogram
	ContainerCrashes    metric.Int64Counter
	ContainerRestarts   metric.Int64Counter
	MonitoredContainers metric.Int64UpDownCounter
	HealthCheckFailures metric.Int64Counter

	// Events
	EventsProcessed metric.Int64Counter
	EventsDropped   metric.Int64Counter
}

// NewMetrics creates and registers all nexus metric instruments.
// All fields are always initialized: OTel hands out noop instruments when no
// MeterProvider is installed.
func NewMetrics() (*Metrics, error) {
	meter := otel.Meter("nexus")
	m := &Metrics{}
	var err error

	if m.WorkspaceOps, err = meter.Int64Counter("nexus.workspace.operations",
		metric.WithDescription("Total workspace lifecycle operations")); err != nil {
		return nil, err
	}
	if m.WorkspaceOpErrors, err = meter.Int64Counter("nexus.workspace.errors",
		metric.WithDescription("Total failed workspace lifecycle operations")); err != nil {
		return nil, err
	}
	if m.WorkspaceOpDuration, err = meter.Float64Histogram("nexus.workspace.duration_seconds",
		metric.WithDescription("Workspace operation duration in seconds"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(0.1, 0.5, 1, 5, 10, 30, 60, 120)); err != nil {
		return nil, err
	}
	if m.HealthWaitDuration, err = meter.Float64Histogram("nexus.container.health_wait_seconds",
		metric.WithDescription("Time spent waiting for a container to become healthy"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(0.5, 1, 5, 10, 30, 60)); err != nil {
		return nil, err
	}
	if m.ContainerCrashes, err = meter.Int64Counter("nexus.container.crashes",
		metric.WithDescription("Total observed container exits while monitored")); err != nil {
		return nil, err
	}
	if m.ContainerRestarts, err = meter.Int64Counter("nexus.container.restarts",
		metric.WithDescription("Total automatic container restarts")); err != nil {
		return nil, err
	}
	if m.MonitoredContainers, err = meter.Int64UpDownCounter("nexus.container.monitored",
		metric.WithDescription("Containers currently under crash monitoring")); err != nil {
		return nil, err
	}
	if m.HealthCheckFailures, err = meter.Int64Counter("nexus.container.health_failures",
		metric.WithDescription("Total health waits that ended in failure")); err != nil {
		return nil, err
	}
	if m.EventsProcessed, err = meter.Int64Counter("nexus.events.processed",
		metric.WithDescription("Total events processed")); err != nil {
		return nil, err
	}
	if m.EventsDropped, err = meter.Int64Counter("nexus.events.dropped",
		metric.WithDescription("Total events dropped")); err != nil {
		return nil, err
	}

	return m, nil
}
