package in

import (
	"context"

	"github.com/nexuslab/nexus/internal/domain"
)

// CrashHandler is invoked once per observed container exit.
type CrashHandler func(ctx context.Context, info domain.ContainerInfo, restarted bool)

// LifecycleManager waits for containers to become healthy, watches them for
// crashes and shuts them down gracefully.
type LifecycleManager interface {
	// WaitForHealthy polls until the container is healthy. onTransition, if
	// non-nil, receives the final probe result.
	WaitForHealthy(ctx context.Context, containerID string, config domain.WorkspaceConfig, onTransition func(health string)) error

	// StartMonitoring replaces any existing monitor for containerID.
	StartMonitoring(ctx context.Context, containerID string, onCrash CrashHandler)
	StopMonitoring(containerID string)
	IsMonitoring(containerID string) bool

	// GracefulShutdown cancels monitoring before stopping the container.
	GracefulShutdown(ctx context.Context, containerID string) error

	CheckContainerHealth(ctx context.Context, containerID string) domain.HealthReport

	// Stop cancels every monitor and waits for them to exit.
	Stop()
}

// PortManager allocates host ports for workspace services.
type PortManager interface {
	AllocatePorts(ctx context.Context, workspaceID string, config domain.WorkspaceConfig) ([]domain.PortMapping, error)
	ReleasePorts(ctx context.Context, workspaceID string) error
	GetAllocatedPorts(ctx context.Context) ([]domain.PortAllocation, error)
}
