package workspace

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	inmocks "github.com/nexuslab/nexus/internal/boundaries/in/mocks"
	outmocks "github.com/nexuslab/nexus/internal/boundaries/out/mocks"
	"github.com/nexuslab/nexus/internal/domain"
)

type serviceDeps struct {
	store     *outmocks.MockWorkspaceStore
	backend   *inmocks.MockWorkspaceBackend
	worktrees *outmocks.MockWorktreeManager
}

func newTestService(t *testing.T) (*Service, serviceDeps) {
	t.Helper()
	deps := serviceDeps{
		store:     outmocks.NewMockWorkspaceStore(t),
		backend:   inmocks.NewMockWorkspaceBackend(t),
		worktrees: outmocks.NewMockWorktreeManager(t),
	}
	svc := NewService(deps.store, deps.backend, deps.worktrees, Config{
		DefaultImage:         "ubuntu:22.04",
		DefaultResourceClass: domain.ResourceMedium,
	})
	svc.newID = func() string { return "ws-1" }
	return svc, deps
}

func TestService_Create(t *testing.T) {
	svc, deps := newTestService(t)

	deps.store.EXPECT().WorkspaceExists(mock.Anything, "demo").Return(false).Once()
	deps.backend.EXPECT().CreateWorkspace(mock.Anything, "ws-1", "demo", mock.MatchedBy(func(c domain.WorkspaceConfig) bool {
		return c.Image == "ubuntu:22.04" && c.ResourceClass == domain.ResourceMedium
	}), "/src/demo").Return(testWorkspace(domain.StatusStopped), nil).Once()
	deps.store.EXPECT().CreateWorkspace(mock.Anything, mock.MatchedBy(func(ws *domain.Workspace) bool {
		return ws.Name == "demo" && ws.DisplayName == "Demo" && ws.Labels["team"] == "core"
	})).Return(nil).Once()

	ws, err := svc.Create(testContext(), domain.CreateWorkspaceRequest{
		Name:        "demo",
		DisplayName: "Demo",
		SourcePath:  "/src/demo",
		Labels:      map[string]string{"team": "core"},
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusStopped, ws.Status)
	assert.Equal(t, "c1", ws.ContainerID())
	assert.Equal(t, domain.ProviderOther, ws.Repository.Provider)
}

func TestService_Create_RejectsInvalidNames(t *testing.T) {
	for _, name := range []string{"a", "Demo", "-demo", "demo-", "main", "has_underscore"} {
		t.Run(name, func(t *testing.T) {
			svc, _ := newTestService(t)

			_, err := svc.Create(testContext(), domain.CreateWorkspaceRequest{Name: name})
			assert.True(t, errors.Is(err, domain.ErrWorkspaceInvalidName))
		})
	}
}

func TestService_Create_Duplicate(t *testing.T) {
	svc, deps := newTestService(t)
	deps.store.EXPECT().WorkspaceExists(mock.Anything, "demo").Return(true).Once()

	_, err := svc.Create(testContext(), domain.CreateWorkspaceRequest{Name: "demo"})
	assert.True(t, errors.Is(err, domain.ErrWorkspaceAlreadyExists))
}

func TestService_Create_FromRepositoryUsesWorktree(t *testing.T) {
	svc, deps := newTestService(t)

	deps.store.EXPECT().WorkspaceExists(mock.Anything, "demo").Return(false).Once()
	deps.worktrees.EXPECT().CreateWorktree(mock.Anything, "/repo", "demo", "main").Return("/repo/.worktree/demo", nil).Once()
	deps.worktrees.EXPECT().CurrentCommit(mock.Anything, "/repo/.worktree/demo").Return("abc123", nil).Once()
	deps.backend.EXPECT().CreateWorkspace(mock.Anything, "ws-1", "demo", mock.Anything, "/repo/.worktree/demo").
		Return(testWorkspace(domain.StatusStopped), nil).Once()
	deps.store.EXPECT().CreateWorkspace(mock.Anything, mock.Anything).Return(nil).Once()

	ws, err := svc.Create(testContext(), domain.CreateWorkspaceRequest{Name: "demo", RepoPath: "/repo", Branch: "main"})
	require.NoError(t, err)
	assert.Equal(t, "nexus/demo", ws.Branch)
	assert.Equal(t, "/repo", ws.Repository.LocalPath)
	assert.Equal(t, "main", ws.Repository.DefaultBranch)
	assert.Equal(t, "abc123", ws.Repository.CurrentCommit)
}

func TestService_Create_BackendFailureRemovesWorktree(t *testing.T) {
	svc, deps := newTestService(t)

	createErr := domain.NewRuntimeUnavailableError("docker", nil)
	deps.store.EXPECT().WorkspaceExists(mock.Anything, "demo").Return(false).Once()
	deps.worktrees.EXPECT().CreateWorktree(mock.Anything, "/repo", "demo", "").Return("/repo/.worktree/demo", nil).Once()
	deps.worktrees.EXPECT().CurrentCommit(mock.Anything, mock.Anything).Return("abc123", nil).Once()
	deps.backend.EXPECT().CreateWorkspace(mock.Anything, "ws-1", "demo", mock.Anything, "/repo/.worktree/demo").Return(nil, createErr).Once()
	deps.worktrees.EXPECT().RemoveWorktree(mock.Anything, "/repo", "/repo/.worktree/demo").Return(nil).Once()

	_, err := svc.Create(testContext(), domain.CreateWorkspaceRequest{Name: "demo", RepoPath: "/repo"})
	assert.ErrorIs(t, err, createErr)
}

func TestService_Create_StoreFailureRollsBackBackend(t *testing.T) {
	svc, deps := newTestService(t)

	ws := testWorkspace(domain.StatusStopped)
	lockErr := domain.NewStateLockError("/state/locks/demo.lock", nil)
	deps.store.EXPECT().WorkspaceExists(mock.Anything, "demo").Return(false).Once()
	deps.backend.EXPECT().CreateWorkspace(mock.Anything, "ws-1", "demo", mock.Anything, "").Return(ws, nil).Once()
	deps.store.EXPECT().CreateWorkspace(mock.Anything, ws).Return(lockErr).Once()
	deps.backend.EXPECT().DeleteWorkspace(mock.Anything, ws).Return(nil).Once()

	_, err := svc.Create(testContext(), domain.CreateWorkspaceRequest{Name: "demo"})
	assert.True(t, errors.Is(err, domain.ErrStateLock))
}

func TestService_StartPersistsBackendResult(t *testing.T) {
	svc, deps := newTestService(t)

	stopped := testWorkspace(domain.StatusStopped)
	running := testWorkspace(domain.StatusRunning)
	deps.store.EXPECT().GetWorkspace(mock.Anything, "demo").Return(stopped, nil).Once()
	deps.backend.EXPECT().StartWorkspace(mock.Anything, stopped).Return(running, nil).Once()
	deps.store.EXPECT().SaveWorkspace(mock.Anything, running).Return(nil).Once()

	ws, err := svc.Start(testContext(), "demo")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusRunning, ws.Status)
}

func TestService_StartFailureIsRecordedAsError(t *testing.T) {
	svc, deps := newTestService(t)

	stopped := testWorkspace(domain.StatusStopped)
	startErr := domain.NewContainerError("c1", "health check timeout", nil)
	deps.store.EXPECT().GetWorkspace(mock.Anything, "demo").Return(stopped, nil).Once()
	deps.backend.EXPECT().StartWorkspace(mock.Anything, stopped).Return(nil, startErr).Once()

	var recorded domain.Workspace
	deps.store.EXPECT().UpdateWorkspace(mock.Anything, "demo", mock.Anything).
		RunAndReturn(func(_ context.Context, _ string, fn func(*domain.Workspace) error) (*domain.Workspace, error) {
			recorded = stopped.Clone()
			require.NoError(t, fn(&recorded))
			return &recorded, nil
		}).Once()

	_, err := svc.Start(testContext(), "demo")
	assert.ErrorIs(t, err, startErr)
	assert.Equal(t, domain.StatusError, recorded.Status)
	assert.Contains(t, recorded.StatusMessage, "health check timeout")
}

func TestService_StartRejectedTransitionIsNotRecorded(t *testing.T) {
	svc, deps := newTestService(t)

	running := testWorkspace(domain.StatusRunning)
	deps.store.EXPECT().GetWorkspace(mock.Anything, "demo").Return(running, nil).Once()
	deps.backend.EXPECT().StartWorkspace(mock.Anything, running).
		Return(nil, domain.NewWorkspaceInvalidTransitionError("demo", domain.StatusRunning, domain.StatusRunning)).Once()

	_, err := svc.Start(testContext(), "demo")
	assert.ErrorIs(t, err, domain.ErrWorkspaceInvalidTransition)
	deps.store.AssertNotCalled(t, "UpdateWorkspace", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_StartRetriesFromError(t *testing.T) {
	svc, deps := newTestService(t)

	failed := testWorkspace(domain.StatusError)
	failed.StatusMessage = "start failed: health check timeout"
	stopped := testWorkspace(domain.StatusStopped)
	running := testWorkspace(domain.StatusRunning)
	deps.store.EXPECT().GetWorkspace(mock.Anything, "demo").Return(failed, nil).Once()
	deps.store.EXPECT().UpdateStatus(mock.Anything, "demo", domain.StatusStopped, "").Return(stopped, nil).Once()
	deps.backend.EXPECT().StartWorkspace(mock.Anything, stopped).Return(running, nil).Once()
	deps.store.EXPECT().SaveWorkspace(mock.Anything, running).Return(nil).Once()

	ws, err := svc.Start(testContext(), "demo")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusRunning, ws.Status)
}

func TestService_StopPersistsBackendResult(t *testing.T) {
	svc, deps := newTestService(t)

	running := testWorkspace(domain.StatusRunning)
	stopped := testWorkspace(domain.StatusStopped)
	deps.store.EXPECT().GetWorkspace(mock.Anything, "demo").Return(running, nil).Once()
	deps.backend.EXPECT().StopWorkspace(mock.Anything, running).Return(stopped, nil).Once()
	deps.store.EXPECT().SaveWorkspace(mock.Anything, stopped).Return(nil).Once()

	ws, err := svc.Stop(testContext(), "demo")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusStopped, ws.Status)
}

func TestService_GetMissing(t *testing.T) {
	svc, deps := newTestService(t)
	deps.store.EXPECT().GetWorkspace(mock.Anything, "ghost").Return(nil, domain.NewWorkspaceNotFoundError("ghost", nil)).Once()

	_, err := svc.Start(testContext(), "ghost")
	assert.True(t, errors.Is(err, domain.ErrWorkspaceNotFound))
}

func TestService_Delete(t *testing.T) {
	svc, deps := newTestService(t)

	ws := testWorkspace(domain.StatusStopped)
	ws.Repository.LocalPath = "/repo"
	ws.WorktreePath = "/repo/.worktree/demo"
	destroying := ws.Clone()
	destroying.Status = domain.StatusDestroying

	var order []string
	deps.store.EXPECT().GetWorkspace(mock.Anything, "demo").Return(ws, nil).Once()
	deps.store.EXPECT().UpdateStatus(mock.Anything, "demo", domain.StatusDestroying, "").
		Run(func(context.Context, string, domain.WorkspaceStatus, string) { order = append(order, "destroying") }).
		Return(&destroying, nil).Once()
	deps.backend.EXPECT().DeleteWorkspace(mock.Anything, &destroying).
		Run(func(context.Context, *domain.Workspace) { order = append(order, "evict") }).Return(nil).Once()
	deps.worktrees.EXPECT().RemoveWorktree(mock.Anything, "/repo", "/repo/.worktree/demo").
		Run(func(context.Context, string, string) { order = append(order, "worktree") }).Return(nil).Once()
	deps.store.EXPECT().DeleteWorkspace(mock.Anything, "demo").
		Run(func(context.Context, string) { order = append(order, "record") }).Return(nil).Once()

	require.NoError(t, svc.Delete(testContext(), "demo"))
	assert.Equal(t, []string{"destroying", "evict", "worktree", "record"}, order)
}

func TestService_Delete_FailureRecordsError(t *testing.T) {
	svc, deps := newTestService(t)

	ws := testWorkspace(domain.StatusDestroying)
	removeErr := domain.NewContainerError("c1", "failed to remove container", nil)
	deps.store.EXPECT().GetWorkspace(mock.Anything, "demo").Return(ws, nil).Once()
	deps.backend.EXPECT().DeleteWorkspace(mock.Anything, ws).Return(removeErr).Once()
	deps.store.EXPECT().UpdateStatus(mock.Anything, "demo", domain.StatusError, mock.MatchedBy(func(msg string) bool {
		return msg != ""
	})).Return(testWorkspace(domain.StatusError), nil).Once()

	err := svc.Delete(testContext(), "demo")
	assert.ErrorIs(t, err, removeErr)
}

func TestService_Status_Reconciles(t *testing.T) {
	svc, deps := newTestService(t)

	running := testWorkspace(domain.StatusRunning)
	deps.store.EXPECT().GetWorkspace(mock.Anything, "demo").Return(running, nil).Once()
	deps.backend.EXPECT().GetWorkspaceStatus(mock.Anything, running).Return(domain.StatusStopped).Once()
	deps.store.EXPECT().UpdateStatus(mock.Anything, "demo", domain.StatusStopped, "observed stopped in runtime").
		Return(testWorkspace(domain.StatusStopped), nil).Once()

	ws, err := svc.Status(testContext(), "demo")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusStopped, ws.Status)
}

func TestService_Status_UnchangedOrInexpressible(t *testing.T) {
	tests := []struct {
		name     string
		recorded domain.WorkspaceStatus
		live     domain.WorkspaceStatus
	}{
		{"matching", domain.StatusRunning, domain.StatusRunning},
		{"destroying cannot become running", domain.StatusDestroying, domain.StatusRunning},
		{"stopped cannot become error", domain.StatusStopped, domain.StatusError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, deps := newTestService(t)
			ws := testWorkspace(tt.recorded)
			deps.store.EXPECT().GetWorkspace(mock.Anything, "demo").Return(ws, nil).Once()
			deps.backend.EXPECT().GetWorkspaceStatus(mock.Anything, ws).Return(tt.live).Once()

			got, err := svc.Status(testContext(), "demo")
			require.NoError(t, err)
			assert.Equal(t, tt.recorded, got.Status)
		})
	}
}

func TestService_Reconcile_KeepsFailedRecords(t *testing.T) {
	svc, deps := newTestService(t)

	a := testWorkspace(domain.StatusRunning)
	b := testWorkspace(domain.StatusStopped)
	b.Name = "other"
	deps.store.EXPECT().ListWorkspaces(mock.Anything).Return([]*domain.Workspace{a, b}, nil).Once()
	deps.store.EXPECT().GetWorkspace(mock.Anything, "demo").Return(a, nil).Once()
	deps.backend.EXPECT().GetWorkspaceStatus(mock.Anything, a).Return(domain.StatusRunning).Once()
	deps.store.EXPECT().GetWorkspace(mock.Anything, "other").Return(nil, domain.NewStateCorruptionError("other.json", "invalid JSON", nil)).Once()
	deps.backend.EXPECT().ListManagedContainers(mock.Anything).Return(nil, errors.New("daemon unreachable")).Once()

	got, err := svc.Reconcile(testContext())
	require.NoError(t, err)
	assert.Equal(t, []*domain.Workspace{a, b}, got)
}

func TestService_Reconcile_ListsManagedContainers(t *testing.T) {
	svc, deps := newTestService(t)

	ws := testWorkspace(domain.StatusStopped)
	deps.store.EXPECT().ListWorkspaces(mock.Anything).Return([]*domain.Workspace{ws}, nil).Once()
	deps.store.EXPECT().GetWorkspace(mock.Anything, "demo").Return(ws, nil).Once()
	deps.backend.EXPECT().GetWorkspaceStatus(mock.Anything, ws).Return(domain.StatusStopped).Once()
	deps.backend.EXPECT().ListManagedContainers(mock.Anything).Return([]*domain.ContainerInfo{
		{ID: "c1", Labels: map[string]string{domain.LabelWorkspace: "ws-1"}},
		{ID: "c9", Name: "nexus-gone", Labels: map[string]string{domain.LabelWorkspace: "ws-9"}},
	}, nil).Once()

	got, err := svc.Reconcile(testContext())
	require.NoError(t, err)
	assert.Equal(t, []*domain.Workspace{ws}, got)
}

func TestOrphanContainers(t *testing.T) {
	a := testWorkspace(domain.StatusRunning)
	b := testWorkspace(domain.StatusStopped)
	b.ID = "ws-2"

	containers := []*domain.ContainerInfo{
		{ID: "c1", Labels: map[string]string{domain.LabelWorkspace: "ws-1"}},
		{ID: "c2", Labels: map[string]string{domain.LabelWorkspace: "ws-2"}},
		{ID: "c3", Labels: map[string]string{domain.LabelWorkspace: "ws-3"}},
		{ID: "c4", Labels: map[string]string{domain.LabelManaged: "true"}},
	}

	got := orphanContainers([]*domain.Workspace{a, b}, containers)
	require.Len(t, got, 2)
	assert.Equal(t, "c3", got[0].ID)
	assert.Equal(t, "c4", got[1].ID)

	assert.Empty(t, orphanContainers([]*domain.Workspace{a}, nil))
}

func TestService_ExecAndLogs(t *testing.T) {
	svc, deps := newTestService(t)

	ws := testWorkspace(domain.StatusRunning)
	deps.store.EXPECT().GetWorkspace(mock.Anything, "demo").Return(ws, nil).Twice()
	deps.backend.EXPECT().ExecCommand(mock.Anything, ws, []string{"pwd"}, domain.ExecOptions{}).
		Return(&domain.ExecResult{Stdout: []byte("/workspace\n")}, nil).Once()
	deps.backend.EXPECT().GetLogs(mock.Anything, ws, domain.LogsOptions{Tail: 5}).Return("ok", nil).Once()

	fixed := time.Date(2026, 4, 5, 6, 7, 8, 0, time.UTC)
	svc.now = func() time.Time { return fixed }
	touched := ws.Clone()
	deps.store.EXPECT().UpdateWorkspace(mock.Anything, "demo", mock.Anything).
		RunAndReturn(func(_ context.Context, _ string, fn func(*domain.Workspace) error) (*domain.Workspace, error) {
			require.NoError(t, fn(&touched))
			return &touched, nil
		}).Once()

	res, err := svc.Exec(testContext(), "demo", []string{"pwd"}, domain.ExecOptions{})
	require.NoError(t, err)
	assert.Equal(t, "/workspace\n", string(res.Stdout))
	assert.Equal(t, fixed, touched.LastActiveAt)

	logs, err := svc.Logs(testContext(), "demo", domain.LogsOptions{Tail: 5})
	require.NoError(t, err)
	assert.Equal(t, "ok", logs)
}

func TestService_WatchResumesRunningWorkspaces(t *testing.T) {
	svc, deps := newTestService(t)
	svc.config.WatchInterval = time.Hour

	running := testWorkspace(domain.StatusRunning)
	stopped := testWorkspace(domain.StatusStopped)
	stopped.Name = "idle"
	deps.store.EXPECT().ListWorkspaces(mock.Anything).Return([]*domain.Workspace{running, stopped}, nil).Once()

	var watched sync.WaitGroup
	watched.Add(1)
	deps.backend.EXPECT().WatchWorkspace(mock.Anything, running).Run(func(context.Context, *domain.Workspace) { watched.Done() }).Return().Once()
	deps.backend.EXPECT().Close().Return().Once()

	ctx, cancel := context.WithCancel(testContext())
	done := make(chan error, 1)
	go func() { done <- svc.Watch(ctx) }()

	watched.Wait()
	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Watch did not return after cancellation")
	}
}

func TestService_WatchPicksUpWorkspacesStartedLater(t *testing.T) {
	svc, deps := newTestService(t)
	svc.config.WatchInterval = 5 * time.Millisecond

	first := testWorkspace(domain.StatusRunning)
	later := testWorkspace(domain.StatusRunning)
	later.ID = "ws-2"
	later.Name = "later"

	var scans atomic.Int32
	deps.store.EXPECT().ListWorkspaces(mock.Anything).RunAndReturn(func(context.Context) ([]*domain.Workspace, error) {
		if scans.Add(1) == 1 {
			return []*domain.Workspace{first}, nil
		}
		return []*domain.Workspace{first, later}, nil
	})

	var mu sync.Mutex
	seen := map[string]int{}
	deps.backend.EXPECT().WatchWorkspace(mock.Anything, mock.Anything).Run(func(_ context.Context, ws *domain.Workspace) {
		mu.Lock()
		seen[ws.Name]++
		mu.Unlock()
	}).Return()
	deps.backend.EXPECT().Close().Return().Once()

	ctx, cancel := context.WithCancel(testContext())
	done := make(chan error, 1)
	go func() { done <- svc.Watch(ctx) }()

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return seen["later"] > 0
	}, time.Second, 5*time.Millisecond)
	cancel()
	require.NoError(t, <-done)

	assert.Greater(t, int(scans.Load()), 1)
}

func TestService_WatchFailsWhenInitialScanFails(t *testing.T) {
	svc, deps := newTestService(t)
	deps.store.EXPECT().ListWorkspaces(mock.Anything).Return(nil, errors.New("disk gone")).Once()

	err := svc.Watch(testContext())
	require.Error(t, err)
	deps.backend.AssertNotCalled(t, "Close")
}

func TestService_Create_AppliesIdleDefaults(t *testing.T) {
	svc, deps := newTestService(t)
	svc.config.DefaultIdleTimeout = time.Hour
	svc.config.DefaultShutdownBehavior = domain.ShutdownStop

	deps.store.EXPECT().WorkspaceExists(mock.Anything, "demo").Return(false).Once()
	deps.backend.EXPECT().CreateWorkspace(mock.Anything, "ws-1", "demo", mock.MatchedBy(func(c domain.WorkspaceConfig) bool {
		return c.IdleTimeout == time.Hour && c.ShutdownBehavior == domain.ShutdownStop
	}), "").Return(testWorkspace(domain.StatusStopped), nil).Once()
	deps.store.EXPECT().CreateWorkspace(mock.Anything, mock.Anything).Return(nil).Once()

	_, err := svc.Create(testContext(), domain.CreateWorkspaceRequest{Name: "demo"})
	require.NoError(t, err)
}

func TestService_Create_RequestOverridesIdleDefaults(t *testing.T) {
	svc, deps := newTestService(t)
	svc.config.DefaultIdleTimeout = time.Hour
	svc.config.DefaultShutdownBehavior = domain.ShutdownStop

	deps.store.EXPECT().WorkspaceExists(mock.Anything, "demo").Return(false).Once()
	deps.backend.EXPECT().CreateWorkspace(mock.Anything, "ws-1", "demo", mock.MatchedBy(func(c domain.WorkspaceConfig) bool {
		return c.IdleTimeout == 5*time.Minute && c.ShutdownBehavior == domain.ShutdownDestroy
	}), "").Return(testWorkspace(domain.StatusStopped), nil).Once()
	deps.store.EXPECT().CreateWorkspace(mock.Anything, mock.Anything).Return(nil).Once()

	_, err := svc.Create(testContext(), domain.CreateWorkspaceRequest{
		Name:   "demo",
		Config: domain.WorkspaceConfig{IdleTimeout: 5 * time.Minute, ShutdownBehavior: domain.ShutdownDestroy},
	})
	require.NoError(t, err)
}
