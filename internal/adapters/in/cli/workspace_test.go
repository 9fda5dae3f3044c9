package cli

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	inmocks "github.com/nexuslab/nexus/internal/boundaries/in/mocks"
	"github.com/nexuslab/nexus/internal/domain"
)

func sampleWorkspace(name string, status domain.WorkspaceStatus) *domain.Workspace {
	return &domain.Workspace{
		ID:     "ws-" + name,
		Name:   name,
		Status: status,
		BackendConfig: domain.BackendConfig{
			ContainerID: "0123456789abcdef0123",
		},
		Config: domain.WorkspaceConfig{
			Image:         "ubuntu:22.04",
			ResourceClass: domain.ResourceSmall,
		},
		Ports: []domain.PortMapping{
			{Name: "main", Protocol: domain.ProtocolTCP, ContainerPort: 3000, HostPort: 32801},
		},
		Branch:    "nexus/" + name,
		CreatedAt: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestRunCreate_PrintsDetails(t *testing.T) {
	svc := inmocks.NewMockWorkspaceService(t)
	req := domain.CreateWorkspaceRequest{Name: "demo"}
	svc.EXPECT().Create(mock.Anything, req).Return(sampleWorkspace("demo", domain.StatusStopped), nil).Once()

	var out bytes.Buffer
	require.NoError(t, runCreate(context.Background(), svc, req, &out))

	text := out.String()
	assert.Contains(t, text, "Workspace demo created")
	assert.Contains(t, text, "stopped")
	assert.Contains(t, text, "ubuntu:22.04")
	assert.Contains(t, text, "0123456789ab")
	assert.NotContains(t, text, "0123456789abcdef0123")
	assert.Contains(t, text, "main 32801->3000/tcp")
	assert.Contains(t, text, "nexus/demo")
}

func TestRunCreate_PropagatesError(t *testing.T) {
	svc := inmocks.NewMockWorkspaceService(t)
	want := domain.NewWorkspaceAlreadyExistsError("demo", nil)
	svc.EXPECT().Create(mock.Anything, mock.Anything).Return(nil, want).Once()

	var out bytes.Buffer
	err := runCreate(context.Background(), svc, domain.CreateWorkspaceRequest{Name: "demo"}, &out)
	assert.ErrorIs(t, err, domain.ErrWorkspaceAlreadyExists)
	assert.Empty(t, out.String())
}

func TestRunStart_ListsPorts(t *testing.T) {
	svc := inmocks.NewMockWorkspaceService(t)
	svc.EXPECT().Start(mock.Anything, "demo").Return(sampleWorkspace("demo", domain.StatusRunning), nil).Once()

	var out bytes.Buffer
	require.NoError(t, runStart(context.Background(), svc, "demo", &out))
	assert.Contains(t, out.String(), "Workspace demo started")
	assert.Contains(t, out.String(), "32801->3000")
}

func TestRunStopAndRemove(t *testing.T) {
	svc := inmocks.NewMockWorkspaceService(t)
	svc.EXPECT().Stop(mock.Anything, "demo").Return(sampleWorkspace("demo", domain.StatusStopped), nil).Once()
	svc.EXPECT().Delete(mock.Anything, "demo").Return(nil).Once()

	var out bytes.Buffer
	require.NoError(t, runStop(context.Background(), svc, "demo", &out))
	require.NoError(t, runRemove(context.Background(), svc, "demo", &out))

	assert.Contains(t, out.String(), "Workspace demo stopped")
	assert.Contains(t, out.String(), "Workspace demo removed")
}

func TestRunRemove_Error(t *testing.T) {
	svc := inmocks.NewMockWorkspaceService(t)
	svc.EXPECT().Delete(mock.Anything, "demo").Return(domain.NewStateLockError("demo", nil)).Once()

	var out bytes.Buffer
	err := runRemove(context.Background(), svc, "demo", &out)
	assert.ErrorIs(t, err, domain.ErrStateLock)
	assert.Empty(t, out.String())
}

func TestRunStatus_ShowsErrorMessage(t *testing.T) {
	svc := inmocks.NewMockWorkspaceService(t)
	ws := sampleWorkspace("demo", domain.StatusError)
	ws.StatusMessage = "container exited with exit code 137"
	svc.EXPECT().Status(mock.Anything, "demo").Return(ws, nil).Once()

	var out bytes.Buffer
	require.NoError(t, runStatus(context.Background(), svc, "demo", &out))
	assert.Contains(t, out.String(), "error")
	assert.Contains(t, out.String(), "container exited with exit code 137")
}

func TestRunList_RendersSortedTable(t *testing.T) {
	svc := inmocks.NewMockWorkspaceService(t)
	svc.EXPECT().List(mock.Anything).Return([]*domain.Workspace{
		sampleWorkspace("web", domain.StatusRunning),
		sampleWorkspace("api", domain.StatusStopped),
	}, nil).Once()

	var out bytes.Buffer
	require.NoError(t, runList(context.Background(), svc, &out))

	text := out.String()
	assert.Contains(t, text, "NAME")
	assert.Contains(t, text, "STATUS")
	assert.Contains(t, text, "32801->3000")
	assert.Contains(t, text, "Total workspaces: 2")
	assert.Less(t, bytes.Index(out.Bytes(), []byte("api")), bytes.Index(out.Bytes(), []byte("web")))
}

func TestRunList_Empty(t *testing.T) {
	svc := inmocks.NewMockWorkspaceService(t)
	svc.EXPECT().List(mock.Anything).Return(nil, nil).Once()

	var out bytes.Buffer
	require.NoError(t, runList(context.Background(), svc, &out))
	assert.Contains(t, out.String(), "No workspaces found")
}

func TestRunList_WrapsError(t *testing.T) {
	svc := inmocks.NewMockWorkspaceService(t)
	svc.EXPECT().List(mock.Anything).Return(nil, errors.New("disk gone")).Once()

	var out bytes.Buffer
	err := runList(context.Background(), svc, &out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to list workspaces")
}

func TestRunReconcile_UsesReconciledRecords(t *testing.T) {
	svc := inmocks.NewMockWorkspaceService(t)
	svc.EXPECT().Reconcile(mock.Anything).Return([]*domain.Workspace{
		sampleWorkspace("api", domain.StatusStopped),
	}, nil).Once()

	var out bytes.Buffer
	require.NoError(t, runReconcile(context.Background(), svc, &out))
	assert.Contains(t, out.String(), "reconciled")
	assert.Contains(t, out.String(), "api")
}

func TestRunExec_WritesStreams(t *testing.T) {
	svc := inmocks.NewMockWorkspaceService(t)
	opts := domain.ExecOptions{User: "dev"}
	svc.EXPECT().Exec(mock.Anything, "demo", []string{"ls", "-la"}, opts).
		Return(&domain.ExecResult{Stdout: []byte("file\n"), Stderr: []byte("warn\n")}, nil).Once()

	var stdout, stderr bytes.Buffer
	require.NoError(t, runExec(context.Background(), svc, "demo", []string{"ls", "-la"}, opts, &stdout, &stderr))
	assert.Equal(t, "file\n", stdout.String())
	assert.Equal(t, "warn\n", stderr.String())
}

func TestRunExec_NonZeroExitCode(t *testing.T) {
	svc := inmocks.NewMockWorkspaceService(t)
	svc.EXPECT().Exec(mock.Anything, "demo", []string{"false"}, domain.ExecOptions{}).
		Return(&domain.ExecResult{ExitCode: 3}, nil).Once()

	var stdout, stderr bytes.Buffer
	err := runExec(context.Background(), svc, "demo", []string{"false"}, domain.ExecOptions{}, &stdout, &stderr)

	var exitErr *exitCodeError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 3, exitErr.code)
}

func TestRunLogs(t *testing.T) {
	svc := inmocks.NewMockWorkspaceService(t)
	opts := domain.LogsOptions{Tail: 10}
	svc.EXPECT().Logs(mock.Anything, "demo", opts).Return("line 1\nline 2\n", nil).Once()

	var out bytes.Buffer
	require.NoError(t, runLogs(context.Background(), svc, "demo", opts, &out))
	assert.Equal(t, "line 1\nline 2\n", out.String())
}

func TestCreateOptions_Request(t *testing.T) {
	opts := createOptions{
		image:         "debian:12",
		resourceClass: "large",
		repo:          "/src/app",
		branch:        "develop",
		displayName:   "Demo",
		env:           []string{"A=1", "B=x=y"},
		envFiles:      []string{".env"},
		labels:        []string{"team=core"},
	}

	req, err := opts.request("demo")
	require.NoError(t, err)
	assert.Equal(t, "demo", req.Name)
	assert.Equal(t, "Demo", req.DisplayName)
	assert.Equal(t, "/src/app", req.RepoPath)
	assert.Equal(t, "develop", req.Branch)
	assert.Equal(t, "debian:12", req.Config.Image)
	assert.Equal(t, domain.ResourceLarge, req.Config.ResourceClass)
	assert.Equal(t, map[string]string{"A": "1", "B": "x=y"}, req.Config.Env)
	assert.Equal(t, []string{".env"}, req.Config.EnvFiles)
	assert.Equal(t, map[string]string{"team": "core"}, req.Labels)
}

func TestCreateOptions_RequestLifecycleFlags(t *testing.T) {
	opts := createOptions{
		ports:       []string{"web=8080", "api=9000"},
		healthCmd:   "curl -fs localhost:8080/health",
		hooks:       []string{"postStart=npm run seed", "preStop=pg_dump > /tmp/db.sql", "postStart=npm run warm"},
		idleTimeout: 90 * time.Minute,
		shutdown:    "destroy",
	}

	req, err := opts.request("demo")
	require.NoError(t, err)

	require.Len(t, req.Config.Services, 1)
	svc := req.Config.Services[0]
	assert.Equal(t, "main", svc.Name)
	assert.Equal(t, []domain.PortMapping{
		{Name: "api", Protocol: domain.ProtocolTCP, ContainerPort: 9000, Visibility: domain.VisibilityPrivate},
		{Name: "web", Protocol: domain.ProtocolTCP, ContainerPort: 8080, Visibility: domain.VisibilityPrivate},
	}, svc.Ports)
	require.NotNil(t, svc.HealthCheck)
	assert.Equal(t, []string{"curl -fs localhost:8080/health"}, svc.HealthCheck.Command)

	assert.Equal(t, []string{"npm run seed", "npm run warm"}, req.Config.Hooks.PostStart)
	assert.Equal(t, []string{"pg_dump > /tmp/db.sql"}, req.Config.Hooks.PreStop)
	assert.Equal(t, 90*time.Minute, req.Config.IdleTimeout)
	assert.Equal(t, domain.ShutdownDestroy, req.Config.ShutdownBehavior)
}

func TestCreateOptions_HealthCmdKeepsDefaultPort(t *testing.T) {
	req, err := createOptions{healthCmd: "true"}.request("demo")
	require.NoError(t, err)

	require.Len(t, req.Config.Services, 1)
	require.Len(t, req.Config.Services[0].Ports, 1)
	assert.Equal(t, 3000, req.Config.Services[0].Ports[0].ContainerPort)
}

func TestCreateOptions_WithoutLifecycleFlags(t *testing.T) {
	req, err := createOptions{}.request("demo")
	require.NoError(t, err)

	assert.Nil(t, req.Config.Services)
	assert.Zero(t, req.Config.IdleTimeout)
	assert.Empty(t, req.Config.ShutdownBehavior)
}

func TestCreateOptions_RejectsBadLifecycleFlags(t *testing.T) {
	tests := []struct {
		name string
		opts createOptions
		want string
	}{
		{name: "shutdown", opts: createOptions{shutdown: "hibernate"}, want: "invalid --shutdown"},
		{name: "negative idle timeout", opts: createOptions{idleTimeout: -time.Minute}, want: "invalid --idle-timeout"},
		{name: "port number", opts: createOptions{ports: []string{"web=http"}}, want: "invalid port"},
		{name: "port range", opts: createOptions{ports: []string{"web=70000"}}, want: "invalid port"},
		{name: "hook format", opts: createOptions{hooks: []string{"postStart"}}, want: "expected PHASE=SCRIPT"},
		{name: "hook phase", opts: createOptions{hooks: []string{"onBoot=true"}}, want: "unknown hook phase"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.opts.request("demo")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestParseKeyValues_Rejects(t *testing.T) {
	for _, pair := range []string{"NOVALUE", "=value"} {
		_, err := parseKeyValues([]string{pair}, "env")
		require.Error(t, err, pair)
		assert.Contains(t, err.Error(), "expected KEY=VALUE")
	}

	got, err := parseKeyValues(nil, "env")
	require.NoError(t, err)
	assert.Nil(t, got)
}
