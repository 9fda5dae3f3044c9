// Package out defines output ports (interfaces) for infrastructure.
// These interfaces define the contract between use cases and driven adapters
// (Docker, filesystem, git, etc.).
package out

import (
	"context"
	"io"
	"time"

	"github.com/nexuslab/nexus/internal/domain"
)

// ContainerRuntime defines the contract for container runtime operations.
// Every call is bounded by the adapter's own timeout and fails with a typed
// runtime error instead of hanging.
type ContainerRuntime interface {
	// Container lifecycle
	CreateContainer(ctx context.Context, spec *domain.ContainerSpec) (string, error)
	StartContainer(ctx context.Context, containerID string) error
	StopContainer(ctx context.Context, containerID string, timeout time.Duration) error
	RemoveContainer(ctx context.Context, containerID string, force bool) error

	// Container inspection
	InspectContainer(ctx context.Context, containerID string) (*domain.ContainerInfo, error)
	ListContainers(ctx context.Context, labels map[string]string) ([]*domain.ContainerInfo, error)
	GetContainerLogs(ctx context.Context, containerID string, opts domain.LogsOptions) (string, error)

	// Image operations
	PullImage(ctx context.Context, image string) error

	// Runtime information
	Ping(ctx context.Context) error
	Version(ctx context.Context) (string, error)

	// In-container operations
	ExecInContainer(ctx context.Context, containerID string, cmd []string, opts domain.ExecOptions) (*domain.ExecResult, error)
	CopyToContainer(ctx context.Context, containerID, dstPath string, content io.Reader) error

	// Network management
	CreateNetwork(ctx context.Context, name string, labels map[string]string) (string, error)
	RemoveNetwork(ctx context.Context, name string) error
}
