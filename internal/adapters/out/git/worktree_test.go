package git

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/bnema/zerowrap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexuslab/nexus/internal/domain"
)

func testContext() context.Context {
	return zerowrap.WithCtx(context.Background(), zerowrap.Default())
}

func initRepo(t *testing.T) string {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not available")
	}

	dir := t.TempDir()
	gitCmd := func(args ...string) {
		t.Helper()
		cmd := exec.Command("git", append([]string{"-c", "user.name=test", "-c", "user.email=test@example.com"}, args...)...)
		cmd.Dir = dir
		out, err := cmd.CombinedOutput()
		require.NoError(t, err, string(out))
	}

	gitCmd("init", "-q")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte("hello\n"), 0644))
	gitCmd("add", "README.md")
	gitCmd("commit", "-q", "-m", "initial")
	return dir
}

func TestWorktreeManager_CreateAndRemove(t *testing.T) {
	repo := initRepo(t)
	m := NewWorktreeManager()
	ctx := testContext()

	path, err := m.CreateWorktree(ctx, repo, "demo", "")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(repo, ".worktree", "demo"), path)
	assert.FileExists(t, filepath.Join(path, "README.md"))

	branch, err := m.run(ctx, path, "rev-parse", "--abbrev-ref", "HEAD")
	require.NoError(t, err)
	assert.Equal(t, "nexus/demo", branch)

	repoHead, err := m.CurrentCommit(ctx, repo)
	require.NoError(t, err)
	wtHead, err := m.CurrentCommit(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, repoHead, wtHead)

	_, err = m.CreateWorktree(ctx, repo, "demo", "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrGitWorktree))

	require.NoError(t, m.RemoveWorktree(ctx, repo, path))
	assert.NoDirExists(t, path)

	require.NoError(t, m.RemoveWorktree(ctx, repo, path), "removing twice is a no-op")
}

func TestWorktreeManager_ExistingBranchIsRejected(t *testing.T) {
	repo := initRepo(t)
	m := NewWorktreeManager()
	ctx := testContext()

	_, err := m.run(ctx, repo, "branch", "nexus/taken")
	require.NoError(t, err)

	_, err = m.CreateWorktree(ctx, repo, "taken", "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrGitWorktree))
	assert.Contains(t, err.Error(), "already exists")
}

func TestWorktreeManager_NotARepository(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not available")
	}
	m := NewWorktreeManager()

	_, err := m.CreateWorktree(testContext(), t.TempDir(), "demo", "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrGitWorktree))
}

func TestWorktreeManager_EmptyName(t *testing.T) {
	_, err := NewWorktreeManager().CreateWorktree(testContext(), t.TempDir(), "", "")
	assert.True(t, errors.Is(err, domain.ErrGitWorktree))
}
