package out

import (
	"context"

	"github.com/nexuslab/nexus/internal/domain"
)

// FileSync pushes a working tree and merged env files into a container.
// It completes or fails before the container is first started.
type FileSync interface {
	SyncToContainer(ctx context.Context, hostPath, containerID string, config domain.WorkspaceConfig) error
}

// WorktreeManager creates and removes git worktrees backing workspaces.
type WorktreeManager interface {
	CreateWorktree(ctx context.Context, repoPath, name, baseBranch string) (string, error)
	RemoveWorktree(ctx context.Context, repoPath, worktreePath string) error
	CurrentCommit(ctx context.Context, path string) (string, error)
}

// HostShell runs shell scripts on the host, for hooks of phases in which
// the workspace container is not running.
type HostShell interface {
	RunScript(ctx context.Context, dir, script string) (*domain.ExecResult, error)
}
