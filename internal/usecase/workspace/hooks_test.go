package workspace

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/nexuslab/nexus/internal/boundaries/in"
	"github.com/nexuslab/nexus/internal/domain"
)

// callLog records the order of mocked calls.
type callLog []string

func (l *callLog) add(entry string) { *l = append(*l, entry) }

func exitZero() *domain.ExecResult { return &domain.ExecResult{} }

func shellCmd(script string) []string { return []string{"sh", "-c", script} }

func hookedWorkspace(status domain.WorkspaceStatus) *domain.Workspace {
	ws := testWorkspace(status)
	ws.WorktreePath = "/src/demo"
	ws.Config.Hooks = domain.WorkspaceHooks{
		PreStart:  []string{"make deps"},
		PostStart: []string{"npm run seed", "npm run warm"},
		PreStop:   []string{"pg_dump > /tmp/db.sql"},
		PostStop:  []string{"rm -f .nexus/running"},
	}
	return ws
}

func TestBackend_StartWorkspace_RunsHooksAroundStart(t *testing.T) {
	b, deps := newTestBackend(t)
	deps.allowEvents()
	ws := hookedWorkspace(domain.StatusStopped)
	opts := domain.ExecOptions{WorkingDir: "/workspace"}

	var calls callLog
	deps.host.EXPECT().RunScript(mock.Anything, "/src/demo", "make deps").
		Run(func(context.Context, string, string) { calls.add("host: make deps") }).Return(exitZero(), nil).Once()
	deps.runtime.EXPECT().StartContainer(mock.Anything, "c1").
		Run(func(context.Context, string) { calls.add("start") }).Return(nil).Once()
	deps.lifecycle.EXPECT().WaitForHealthy(mock.Anything, "c1", mock.Anything, mock.Anything).
		Run(func(context.Context, string, domain.WorkspaceConfig, func(string)) { calls.add("healthy") }).Return(nil).Once()
	deps.runtime.EXPECT().ExecInContainer(mock.Anything, "c1", shellCmd("npm run seed"), opts).
		Run(func(context.Context, string, []string, domain.ExecOptions) { calls.add("exec: npm run seed") }).Return(exitZero(), nil).Once()
	deps.runtime.EXPECT().ExecInContainer(mock.Anything, "c1", shellCmd("npm run warm"), opts).
		Run(func(context.Context, string, []string, domain.ExecOptions) { calls.add("exec: npm run warm") }).Return(exitZero(), nil).Once()
	deps.lifecycle.EXPECT().StartMonitoring(mock.Anything, "c1", mock.Anything).
		Run(func(context.Context, string, in.CrashHandler) { calls.add("monitor") }).Return().Once()

	updated, err := b.StartWorkspace(testContext(), ws)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusRunning, updated.Status)
	assert.Equal(t, callLog{
		"host: make deps",
		"start",
		"healthy",
		"exec: npm run seed",
		"exec: npm run warm",
		"monitor",
	}, calls)
}

func TestBackend_StartWorkspace_FailingPostStartHookStopsContainer(t *testing.T) {
	b, deps := newTestBackend(t)
	ws := hookedWorkspace(domain.StatusStopped)

	deps.host.EXPECT().RunScript(mock.Anything, "/src/demo", "make deps").Return(exitZero(), nil).Once()
	deps.runtime.EXPECT().StartContainer(mock.Anything, "c1").Return(nil).Once()
	deps.lifecycle.EXPECT().WaitForHealthy(mock.Anything, "c1", mock.Anything, mock.Anything).Return(nil).Once()
	deps.runtime.EXPECT().ExecInContainer(mock.Anything, "c1", shellCmd("npm run seed"), mock.Anything).
		Return(&domain.ExecResult{ExitCode: 2, Stderr: []byte("seed failed\n")}, nil).Once()
	deps.runtime.EXPECT().StopContainer(mock.Anything, "c1", 5*time.Second).Return(nil).Once()

	_, err := b.StartWorkspace(testContext(), ws)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrContainer))
	assert.Contains(t, err.Error(), "postStart hook 1 of 2 failed")
	assert.Contains(t, err.Error(), "seed failed")

	derr, ok := domain.AsError(err)
	require.True(t, ok)
	assert.Equal(t, "postStart", derr.Context["hook"])
	deps.lifecycle.AssertNotCalled(t, "StartMonitoring", mock.Anything, mock.Anything, mock.Anything)
}

func TestBackend_StartWorkspace_FailingPreStartHookSkipsStart(t *testing.T) {
	b, deps := newTestBackend(t)
	ws := hookedWorkspace(domain.StatusStopped)

	deps.host.EXPECT().RunScript(mock.Anything, "/src/demo", "make deps").
		Return(&domain.ExecResult{ExitCode: 1}, nil).Once()

	_, err := b.StartWorkspace(testContext(), ws)
	assert.True(t, errors.Is(err, domain.ErrWorkspaceStart))
	deps.runtime.AssertNotCalled(t, "StartContainer", mock.Anything, mock.Anything)
}

func TestBackend_StartWorkspace_HookTimeout(t *testing.T) {
	b, deps := newTestBackend(t)
	b.config.HookTimeout = 20 * time.Millisecond
	ws := testWorkspace(domain.StatusStopped)
	ws.Config.Hooks.PostStart = []string{"sleep 60"}

	deps.runtime.EXPECT().StartContainer(mock.Anything, "c1").Return(nil).Once()
	deps.lifecycle.EXPECT().WaitForHealthy(mock.Anything, "c1", mock.Anything, mock.Anything).Return(nil).Once()
	deps.runtime.EXPECT().ExecInContainer(mock.Anything, "c1", shellCmd("sleep 60"), mock.Anything).
		RunAndReturn(func(ctx context.Context, _ string, _ []string, _ domain.ExecOptions) (*domain.ExecResult, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		}).Once()
	deps.runtime.EXPECT().StopContainer(mock.Anything, "c1", mock.Anything).Return(nil).Once()

	_, err := b.StartWorkspace(testContext(), ws)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "timed out after 20ms")
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
}

func TestBackend_StopWorkspace_RunsHooksAroundShutdown(t *testing.T) {
	b, deps := newTestBackend(t)
	deps.allowEvents()
	ws := hookedWorkspace(domain.StatusRunning)

	var calls callLog
	deps.runtime.EXPECT().ExecInContainer(mock.Anything, "c1", shellCmd("pg_dump > /tmp/db.sql"), mock.Anything).
		Run(func(context.Context, string, []string, domain.ExecOptions) { calls.add("exec: preStop") }).Return(exitZero(), nil).Once()
	deps.lifecycle.EXPECT().GracefulShutdown(mock.Anything, "c1").
		Run(func(context.Context, string) { calls.add("shutdown") }).Return(nil).Once()
	deps.host.EXPECT().RunScript(mock.Anything, "/src/demo", "rm -f .nexus/running").
		Run(func(context.Context, string, string) { calls.add("host: postStop") }).Return(exitZero(), nil).Once()

	updated, err := b.StopWorkspace(testContext(), ws)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusStopped, updated.Status)
	assert.Equal(t, callLog{"exec: preStop", "shutdown", "host: postStop"}, calls)
}

func TestBackend_StopWorkspace_FailingHooksDoNotBlockStop(t *testing.T) {
	b, deps := newTestBackend(t)
	deps.allowEvents()
	ws := hookedWorkspace(domain.StatusRunning)

	deps.runtime.EXPECT().ExecInContainer(mock.Anything, "c1", mock.Anything, mock.Anything).
		Return(nil, domain.NewContainerError("c1", "failed to create exec", nil)).Once()
	deps.lifecycle.EXPECT().GracefulShutdown(mock.Anything, "c1").Return(nil).Once()
	deps.host.EXPECT().RunScript(mock.Anything, "/src/demo", mock.Anything).
		Return(&domain.ExecResult{ExitCode: 1}, nil).Once()

	updated, err := b.StopWorkspace(testContext(), ws)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusStopped, updated.Status)
}

func TestBackend_CreateWorkspace_RunsCreateHooksOnHost(t *testing.T) {
	b, deps := newTestBackend(t)
	deps.allowEvents()
	config := domain.WorkspaceConfig{
		Image: "ubuntu:22.04",
		Hooks: domain.WorkspaceHooks{
			PreCreate:  []string{"git lfs pull"},
			PostCreate: []string{"cp .env.example .env"},
		},
	}

	var calls callLog
	deps.host.EXPECT().RunScript(mock.Anything, "/src/demo", "git lfs pull").
		Run(func(context.Context, string, string) { calls.add("preCreate") }).Return(exitZero(), nil).Once()
	deps.ports.EXPECT().AllocatePorts(mock.Anything, "ws-1", mock.Anything).
		Run(func(context.Context, string, domain.WorkspaceConfig) { calls.add("allocate") }).Return(nil, nil).Once()
	deps.runtime.EXPECT().PullImage(mock.Anything, "ubuntu:22.04").Return(nil).Once()
	deps.runtime.EXPECT().CreateContainer(mock.Anything, mock.Anything).Return("c1", nil).Once()
	deps.sync.EXPECT().SyncToContainer(mock.Anything, "/src/demo", "c1", mock.Anything).
		Run(func(context.Context, string, string, domain.WorkspaceConfig) { calls.add("sync") }).Return(nil).Once()
	deps.host.EXPECT().RunScript(mock.Anything, "/src/demo", "cp .env.example .env").
		Run(func(context.Context, string, string) { calls.add("postCreate") }).Return(exitZero(), nil).Once()

	_, err := b.CreateWorkspace(testContext(), "ws-1", "demo", config, "/src/demo")
	require.NoError(t, err)
	assert.Equal(t, callLog{"preCreate", "allocate", "sync", "postCreate"}, calls)
}

func TestBackend_CreateWorkspace_FailingPostCreateHookRollsBack(t *testing.T) {
	b, deps := newTestBackend(t)
	config := domain.WorkspaceConfig{
		Image: "ubuntu:22.04",
		Hooks: domain.WorkspaceHooks{PostCreate: []string{"false"}},
	}

	deps.ports.EXPECT().AllocatePorts(mock.Anything, "ws-1", mock.Anything).Return([]domain.PortMapping{mainPort}, nil).Once()
	deps.runtime.EXPECT().PullImage(mock.Anything, "ubuntu:22.04").Return(nil).Once()
	deps.runtime.EXPECT().CreateContainer(mock.Anything, mock.Anything).Return("c1", nil).Once()
	deps.sync.EXPECT().SyncToContainer(mock.Anything, "/src/demo", "c1", mock.Anything).Return(nil).Once()
	deps.host.EXPECT().RunScript(mock.Anything, "/src/demo", "false").Return(&domain.ExecResult{ExitCode: 1}, nil).Once()
	deps.runtime.EXPECT().RemoveContainer(mock.Anything, "c1", true).Return(nil).Once()
	deps.ports.EXPECT().ReleasePorts(mock.Anything, "ws-1").Return(nil).Once()

	_, err := b.CreateWorkspace(testContext(), "ws-1", "demo", config, "/src/demo")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "postCreate hook 1 of 1 failed")
}

func TestBackend_HostHooksNeedAHostShell(t *testing.T) {
	b, _ := newTestBackend(t)
	b.SetHostShell(nil)
	ws := hookedWorkspace(domain.StatusStopped)

	_, err := b.StartWorkspace(testContext(), ws)
	assert.True(t, errors.Is(err, errNoHostShell))
}
