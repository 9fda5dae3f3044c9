// Package git manages the git worktrees that back workspaces.
package git

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/bnema/zerowrap"

	"github.com/nexuslab/nexus/internal/domain"
)

const (
	worktreeDir = ".worktree"
	gitTimeout  = 60 * time.Second
)

// WorktreeManager implements out.WorktreeManager by shelling out to git.
// Worktrees live in <repo>/.worktree/<name> on branch nexus/<name>.
type WorktreeManager struct {
	gitBin string
}

// NewWorktreeManager creates a worktree manager using the git found on PATH.
func NewWorktreeManager() *WorktreeManager {
	return &WorktreeManager{gitBin: "git"}
}

// CreateWorktree adds a worktree for name branched off baseBranch, or off
// the current HEAD when baseBranch is empty, and returns its path.
func (m *WorktreeManager) CreateWorktree(ctx context.Context, repoPath, name, baseBranch string) (string, error) {
	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:    "adapter",
		zerowrap.FieldAdapter:  "git",
		zerowrap.FieldAction:   "CreateWorktree",
		zerowrap.FieldEntityID: name,
		zerowrap.FieldPath:     repoPath,
	})
	log := zerowrap.FromCtx(ctx)

	if name == "" {
		return "", domain.NewGitWorktreeError("create", "worktree name cannot be empty", nil)
	}
	if _, err := m.run(ctx, repoPath, "rev-parse", "--git-dir"); err != nil {
		return "", domain.NewGitWorktreeError("create", "not a git repository: "+repoPath, err)
	}

	path := filepath.Join(repoPath, worktreeDir, name)
	if _, err := os.Stat(path); err == nil {
		return "", domain.NewGitWorktreeError("create", fmt.Sprintf("worktree %q already exists at %s", name, path), nil)
	}
	branch := domain.WorktreeBranch(name)
	if _, err := m.run(ctx, repoPath, "rev-parse", "--verify", "--quiet", "refs/heads/"+branch); err == nil {
		return "", domain.NewGitWorktreeError("create", fmt.Sprintf("branch %q already exists", branch), nil)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return "", domain.NewGitWorktreeError("create", "failed to create worktree directory", err)
	}

	base := baseBranch
	if base == "" {
		base = "HEAD"
	}
	if _, err := m.run(ctx, repoPath, "worktree", "add", path, "-b", branch, base); err != nil {
		return "", domain.NewGitWorktreeError("create", "git worktree add failed", err)
	}

	log.Info().Str("branch", branch).Str("base", base).Msg("worktree created")
	return path, nil
}

// RemoveWorktree force-removes a worktree. A directory git no longer tracks
// is deleted directly; a missing one is not an error.
func (m *WorktreeManager) RemoveWorktree(ctx context.Context, repoPath, worktreePath string) error {
	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:   "adapter",
		zerowrap.FieldAdapter: "git",
		zerowrap.FieldAction:  "RemoveWorktree",
		zerowrap.FieldPath:    worktreePath,
	})
	log := zerowrap.FromCtx(ctx)

	if _, err := os.Stat(worktreePath); errors.Is(err, fs.ErrNotExist) {
		log.Debug().Msg("worktree already removed")
		return nil
	}

	if _, err := m.run(ctx, repoPath, "worktree", "remove", "--force", worktreePath); err != nil {
		if _, statErr := os.Stat(filepath.Join(worktreePath, ".git")); !errors.Is(statErr, fs.ErrNotExist) {
			return domain.NewGitWorktreeError("remove", "git worktree remove failed", err)
		}
		if rmErr := os.RemoveAll(worktreePath); rmErr != nil {
			return domain.NewGitWorktreeError("remove", "failed to delete worktree directory", rmErr)
		}
	}

	log.Info().Msg("worktree removed")
	return nil
}

// CurrentCommit returns the commit checked out at path.
func (m *WorktreeManager) CurrentCommit(ctx context.Context, path string) (string, error) {
	out, err := m.run(ctx, path, "rev-parse", "HEAD")
	if err != nil {
		return "", domain.NewGitWorktreeError("rev-parse", "failed to resolve HEAD", err)
	}
	return out, nil
}

// run executes git in dir and returns its trimmed stdout. Failures carry the
// combined stderr.
func (m *WorktreeManager) run(ctx context.Context, dir string, args ...string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, gitTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, m.gitBin, args...) // #nosec G204 -- fixed binary, argument list
	cmd.Dir = dir
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			return "", fmt.Errorf("git %s: %w", args[0], err)
		}
		return "", fmt.Errorf("git %s: %w: %s", args[0], err, msg)
	}
	return strings.TrimSpace(stdout.String()), nil
}
