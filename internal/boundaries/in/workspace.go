// Package in defines input ports (interfaces) for use cases.
// These interfaces define the contract between driving adapters (CLI, RPC)
// and the business logic (use cases).
package in

import (
	"context"

	"github.com/nexuslab/nexus/internal/domain"
)

// WorkspaceBackend maps workspace lifecycle verbs onto a container runtime.
// It never persists records: every mutating method returns a new Workspace
// and leaves its input untouched.
type WorkspaceBackend interface {
	// CreateWorkspace provisions ports and a container and returns a record
	// in the stopped status. Failures release everything it allocated.
	CreateWorkspace(ctx context.Context, id, name string, config domain.WorkspaceConfig, worktreePath string) (*domain.Workspace, error)

	// StartWorkspace starts the container and waits for it to be healthy.
	StartWorkspace(ctx context.Context, ws *domain.Workspace) (*domain.Workspace, error)

	// StopWorkspace gracefully stops the container.
	StopWorkspace(ctx context.Context, ws *domain.Workspace) (*domain.Workspace, error)

	// DeleteWorkspace removes the container, then releases its ports.
	DeleteWorkspace(ctx context.Context, ws *domain.Workspace) error

	// GetWorkspaceStatus maps the live container state onto the status enum.
	// It never fails: an inspection failure reports StatusError.
	GetWorkspaceStatus(ctx context.Context, ws *domain.Workspace) domain.WorkspaceStatus

	// ExecCommand runs a command inside the workspace container.
	ExecCommand(ctx context.Context, ws *domain.Workspace, cmd []string, opts domain.ExecOptions) (*domain.ExecResult, error)

	// GetLogs returns the container logs.
	GetLogs(ctx context.Context, ws *domain.Workspace, opts domain.LogsOptions) (string, error)

	// WatchWorkspace resumes crash monitoring for a running workspace.
	WatchWorkspace(ctx context.Context, ws *domain.Workspace)

	// ListManagedContainers lists every container the backend labelled as
	// its own, running or not.
	ListManagedContainers(ctx context.Context) ([]*domain.ContainerInfo, error)

	// Close cancels every crash monitor.
	Close()
}

// WorkspaceService is the persisting front of the backend, addressed by
// workspace name. CLI and RPC front ends go through it.
type WorkspaceService interface {
	Create(ctx context.Context, req domain.CreateWorkspaceRequest) (*domain.Workspace, error)
	Start(ctx context.Context, name string) (*domain.Workspace, error)
	Stop(ctx context.Context, name string) (*domain.Workspace, error)
	Delete(ctx context.Context, name string) error
	Get(ctx context.Context, name string) (*domain.Workspace, error)
	// Status reconciles the recorded status with the runtime.
	Status(ctx context.Context, name string) (*domain.Workspace, error)
	List(ctx context.Context) ([]*domain.Workspace, error)
	Reconcile(ctx context.Context) ([]*domain.Workspace, error)
	Exec(ctx context.Context, name string, cmd []string, opts domain.ExecOptions) (*domain.ExecResult, error)
	Logs(ctx context.Context, name string, opts domain.LogsOptions) (string, error)
	// Watch resumes crash monitoring for running workspaces until ctx is done.
	Watch(ctx context.Context) error
}
