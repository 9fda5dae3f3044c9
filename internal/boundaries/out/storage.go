package out

import (
	"context"

	"github.com/nexuslab/nexus/internal/domain"
)

// WorkspaceStore is the durable record of workspace metadata and status.
// Writes for one name are linearizable across processes.
type WorkspaceStore interface {
	GetWorkspace(ctx context.Context, name string) (*domain.Workspace, error)
	SaveWorkspace(ctx context.Context, ws *domain.Workspace) error
	// CreateWorkspace fails with WorkspaceAlreadyExists when name is taken.
	CreateWorkspace(ctx context.Context, ws *domain.Workspace) error
	// UpdateWorkspace applies fn to the current record while holding the
	// record's lock and persists the result.
	UpdateWorkspace(ctx context.Context, name string, fn func(ws *domain.Workspace) error) (*domain.Workspace, error)
	// UpdateStatus fails with WorkspaceInvalidTransition without writing
	// when the transition is not allowed.
	UpdateStatus(ctx context.Context, name string, status domain.WorkspaceStatus, message string) (*domain.Workspace, error)
	// ListWorkspaces returns every readable record, skipping corrupt ones.
	ListWorkspaces(ctx context.Context) ([]*domain.Workspace, error)
	DeleteWorkspace(ctx context.Context, name string) error
	WorkspaceExists(ctx context.Context, name string) bool
}

// PortStore persists the host port table.
type PortStore interface {
	LoadPorts(ctx context.Context) (*domain.PortTable, error)
	// UpdatePorts applies fn to the table under an exclusive lock and persists
	// the result only if fn succeeds.
	UpdatePorts(ctx context.Context, fn func(table *domain.PortTable) error) error
}
