package lifecycle

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/bnema/zerowrap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/nexuslab/nexus/internal/boundaries/out/mocks"
	"github.com/nexuslab/nexus/internal/domain"
)

func testContext() context.Context {
	return zerowrap.WithCtx(context.Background(), zerowrap.Default())
}

func fastConfig() Config {
	return Config{
		HealthCheckInterval:   5 * time.Millisecond,
		HealthCheckTimeout:    time.Second,
		MaxHealthCheckRetries: 60,
		ShutdownTimeout:       2 * time.Second,
	}
}

func newTestManager(t *testing.T, cfg Config) (*Manager, *mocks.MockContainerRuntime) {
	t.Helper()
	runtime := mocks.NewMockContainerRuntime(t)
	mgr := NewManager(runtime, cfg)
	t.Cleanup(mgr.Stop)
	return mgr, runtime
}

func withHealthCheck(retries int) domain.WorkspaceConfig {
	return domain.WorkspaceConfig{Services: []domain.ServiceConfig{{
		Name:        "main",
		HealthCheck: &domain.HealthCheckConfig{Command: []string{"true"}, Retries: retries},
	}}}
}

type crashRecorder struct {
	mu    sync.Mutex
	calls []domain.ContainerInfo
	flags []bool
}

func (r *crashRecorder) handle(_ context.Context, info domain.ContainerInfo, restarted bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, info)
	r.flags = append(r.flags, restarted)
}

func (r *crashRecorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.calls)
}

func TestWaitForHealthy_NoHealthCheckWaitsForRunning(t *testing.T) {
	mgr, runtime := newTestManager(t, fastConfig())

	runtime.EXPECT().InspectContainer(mock.Anything, "c1").
		Return(&domain.ContainerInfo{ID: "c1", State: domain.ContainerStateCreated}, nil).Twice()
	runtime.EXPECT().InspectContainer(mock.Anything, "c1").
		Return(&domain.ContainerInfo{ID: "c1", State: domain.ContainerStateRunning}, nil).Once()

	err := mgr.WaitForHealthy(testContext(), "c1", domain.WorkspaceConfig{}, nil)
	require.NoError(t, err)
}

func TestWaitForHealthy_NoHealthCheckTimesOut(t *testing.T) {
	cfg := fastConfig()
	cfg.HealthCheckTimeout = 40 * time.Millisecond
	mgr, runtime := newTestManager(t, cfg)

	runtime.EXPECT().InspectContainer(mock.Anything, "c1").
		Return(&domain.ContainerInfo{ID: "c1", State: domain.ContainerStateCreated}, nil)

	start := time.Now()
	err := mgr.WaitForHealthy(testContext(), "c1", domain.WorkspaceConfig{}, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrContainer))
	assert.Contains(t, err.Error(), "within timeout")
	assert.Less(t, time.Since(start), time.Second)
}

func TestWaitForHealthy_HealthCheckSucceeds(t *testing.T) {
	mgr, runtime := newTestManager(t, fastConfig())

	runtime.EXPECT().InspectContainer(mock.Anything, "c1").
		Return(&domain.ContainerInfo{ID: "c1", State: domain.ContainerStateRunning, Health: domain.HealthStarting}, nil).Twice()
	runtime.EXPECT().InspectContainer(mock.Anything, "c1").
		Return(&domain.ContainerInfo{ID: "c1", State: domain.ContainerStateRunning, Health: domain.HealthHealthy}, nil).Once()

	var seen []string
	err := mgr.WaitForHealthy(testContext(), "c1", withHealthCheck(5), func(health string) {
		seen = append(seen, health)
	})
	require.NoError(t, err)
	assert.Equal(t, []string{domain.HealthHealthy}, seen)
}

func TestWaitForHealthy_RetriesExhausted(t *testing.T) {
	mgr, runtime := newTestManager(t, fastConfig())

	runtime.EXPECT().InspectContainer(mock.Anything, "c1").
		Return(&domain.ContainerInfo{ID: "c1", State: domain.ContainerStateRunning, Health: domain.HealthUnhealthy}, nil).Times(3)

	var seen []string
	err := mgr.WaitForHealthy(testContext(), "c1", withHealthCheck(3), func(health string) {
		seen = append(seen, health)
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrContainer))
	assert.Contains(t, err.Error(), "after 3 retries")
	assert.Equal(t, []string{domain.HealthUnhealthy}, seen)
}

func TestWaitForHealthy_StoppedContainerIsTerminal(t *testing.T) {
	mgr, runtime := newTestManager(t, fastConfig())

	runtime.EXPECT().InspectContainer(mock.Anything, "c1").
		Return(&domain.ContainerInfo{ID: "c1", State: domain.ContainerStateExited, ExitCode: 1}, nil).Once()

	err := mgr.WaitForHealthy(testContext(), "c1", withHealthCheck(10), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "stopped during health check")

	var derr *domain.Error
	require.True(t, errors.As(err, &derr))
	assert.Equal(t, "exited", derr.Context["state"])
}

func TestWaitForHealthy_InspectErrorPropagates(t *testing.T) {
	mgr, runtime := newTestManager(t, fastConfig())

	daemonErr := domain.NewRuntimeDaemonError("inspect timed out", nil)
	runtime.EXPECT().InspectContainer(mock.Anything, "c1").Return(nil, daemonErr).Once()

	err := mgr.WaitForHealthy(testContext(), "c1", domain.WorkspaceConfig{}, nil)
	assert.True(t, errors.Is(err, domain.ErrRuntimeDaemon))
}

func TestMonitor_ReportsEachExitOnce(t *testing.T) {
	cfg := fastConfig()
	cfg.AutoRestart = true
	mgr, runtime := newTestManager(t, cfg)

	finished := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	runtime.EXPECT().InspectContainer(mock.Anything, "c1").
		Return(&domain.ContainerInfo{ID: "c1", State: domain.ContainerStateExited, ExitCode: 137, FinishedAt: finished}, nil)
	runtime.EXPECT().StartContainer(mock.Anything, "c1").Return(nil).Once()

	rec := &crashRecorder{}
	mgr.StartMonitoring(testContext(), "c1", rec.handle)

	require.Eventually(t, func() bool { return rec.count() == 1 }, time.Second, 5*time.Millisecond)
	time.Sleep(50 * time.Millisecond)
	mgr.StopMonitoring("c1")

	assert.Equal(t, 1, rec.count())
	assert.True(t, rec.flags[0])
	assert.Equal(t, 137, rec.calls[0].ExitCode)
}

func TestMonitor_NewExitIsReportedAgain(t *testing.T) {
	mgr, runtime := newTestManager(t, fastConfig())

	first := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	second := first.Add(time.Minute)
	var calls atomic.Int32
	runtime.EXPECT().InspectContainer(mock.Anything, "c1").
		RunAndReturn(func(context.Context, string) (*domain.ContainerInfo, error) {
			finished := first
			if calls.Add(1) > 3 {
				finished = second
			}
			return &domain.ContainerInfo{ID: "c1", State: domain.ContainerStateExited, FinishedAt: finished}, nil
		})

	rec := &crashRecorder{}
	mgr.StartMonitoring(testContext(), "c1", rec.handle)

	require.Eventually(t, func() bool { return rec.count() == 2 }, time.Second, 5*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	mgr.StopMonitoring("c1")

	assert.Equal(t, 2, rec.count())
	assert.False(t, rec.flags[0], "auto restart is disabled")
}

func TestMonitor_DeadContainerIsNotRestarted(t *testing.T) {
	cfg := fastConfig()
	cfg.AutoRestart = true
	mgr, runtime := newTestManager(t, cfg)

	runtime.EXPECT().InspectContainer(mock.Anything, "c1").
		Return(&domain.ContainerInfo{ID: "c1", State: domain.ContainerStateDead}, nil)

	rec := &crashRecorder{}
	mgr.StartMonitoring(testContext(), "c1", rec.handle)

	require.Eventually(t, func() bool { return rec.count() == 1 }, time.Second, 5*time.Millisecond)
	mgr.StopMonitoring("c1")

	assert.False(t, rec.flags[0])
	runtime.AssertNotCalled(t, "StartContainer", mock.Anything, mock.Anything)
}

func TestMonitor_MissingContainerCountsAsCrash(t *testing.T) {
	mgr, runtime := newTestManager(t, fastConfig())

	runtime.EXPECT().InspectContainer(mock.Anything, "c1").
		Return(nil, domain.NewContainerError("c1", "no such container", nil).WithContext("notFound", true))

	rec := &crashRecorder{}
	mgr.StartMonitoring(testContext(), "c1", rec.handle)

	require.Eventually(t, func() bool { return rec.count() == 1 }, time.Second, 5*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	mgr.StopMonitoring("c1")

	assert.Equal(t, 1, rec.count())
	assert.Equal(t, domain.ContainerStateDead, rec.calls[0].State)
}

func TestMonitor_DaemonErrorIsNotACrash(t *testing.T) {
	mgr, runtime := newTestManager(t, fastConfig())

	runtime.EXPECT().InspectContainer(mock.Anything, "c1").
		Return(nil, domain.NewRuntimeDaemonError("daemon busy", nil))

	rec := &crashRecorder{}
	mgr.StartMonitoring(testContext(), "c1", rec.handle)
	time.Sleep(40 * time.Millisecond)
	mgr.StopMonitoring("c1")

	assert.Equal(t, 0, rec.count())
}

func TestMonitor_ContainerErrorWithoutNotFoundIsNotACrash(t *testing.T) {
	mgr, runtime := newTestManager(t, fastConfig())

	var calls atomic.Int32
	runtime.EXPECT().InspectContainer(mock.Anything, "c1").
		RunAndReturn(func(context.Context, string) (*domain.ContainerInfo, error) {
			if calls.Add(1) <= 3 {
				return nil, domain.NewContainerError("c1", "failed to inspect container", errors.New("500 internal server error"))
			}
			return &domain.ContainerInfo{ID: "c1", State: domain.ContainerStateRunning}, nil
		})

	rec := &crashRecorder{}
	mgr.StartMonitoring(testContext(), "c1", rec.handle)

	require.Eventually(t, func() bool { return calls.Load() > 4 }, time.Second, 5*time.Millisecond)
	mgr.StopMonitoring("c1")

	assert.Equal(t, 0, rec.count())
}

func TestGracefulShutdown_CancelsMonitorFirst(t *testing.T) {
	mgr, runtime := newTestManager(t, fastConfig())

	runtime.EXPECT().InspectContainer(mock.Anything, "c1").
		Return(&domain.ContainerInfo{ID: "c1", State: domain.ContainerStateRunning}, nil).Maybe()
	runtime.EXPECT().StopContainer(mock.Anything, "c1", 2*time.Second).
		Run(func(context.Context, string, time.Duration) {
			assert.False(t, mgr.IsMonitoring("c1"), "monitor must be cancelled before stop")
		}).Return(nil).Once()

	rec := &crashRecorder{}
	mgr.StartMonitoring(testContext(), "c1", rec.handle)
	require.True(t, mgr.IsMonitoring("c1"))

	require.NoError(t, mgr.GracefulShutdown(testContext(), "c1"))
	assert.False(t, mgr.IsMonitoring("c1"))
	assert.Equal(t, 0, rec.count())
}

func TestStopMonitoring_IsolatedPerContainer(t *testing.T) {
	mgr, runtime := newTestManager(t, fastConfig())

	runtime.EXPECT().InspectContainer(mock.Anything, mock.Anything).
		Return(&domain.ContainerInfo{State: domain.ContainerStateRunning}, nil).Maybe()

	mgr.StartMonitoring(testContext(), "c1", nil)
	mgr.StartMonitoring(testContext(), "c2", nil)

	mgr.StopMonitoring("c1")
	assert.False(t, mgr.IsMonitoring("c1"))
	assert.True(t, mgr.IsMonitoring("c2"))

	mgr.StopMonitoring("unknown")

	mgr.Stop()
	assert.False(t, mgr.IsMonitoring("c2"))
}

func TestStartMonitoring_SurvivesCallerCancellation(t *testing.T) {
	mgr, runtime := newTestManager(t, fastConfig())

	runtime.EXPECT().InspectContainer(mock.Anything, "c1").
		Return(&domain.ContainerInfo{ID: "c1", State: domain.ContainerStateExited}, nil)

	ctx, cancel := context.WithCancel(testContext())
	rec := &crashRecorder{}
	mgr.StartMonitoring(ctx, "c1", rec.handle)
	cancel()

	require.Eventually(t, func() bool { return rec.count() == 1 }, time.Second, 5*time.Millisecond)
}

func TestCheckContainerHealth(t *testing.T) {
	mgr, runtime := newTestManager(t, fastConfig())

	runtime.EXPECT().InspectContainer(mock.Anything, "up").
		Return(&domain.ContainerInfo{State: domain.ContainerStateRunning, Health: domain.HealthHealthy}, nil)
	runtime.EXPECT().InspectContainer(mock.Anything, "sick").
		Return(&domain.ContainerInfo{State: domain.ContainerStateRunning, Health: domain.HealthUnhealthy}, nil)
	runtime.EXPECT().InspectContainer(mock.Anything, "gone").
		Return(nil, domain.NewContainerError("gone", "no such container", nil))

	up := mgr.CheckContainerHealth(testContext(), "up")
	assert.True(t, up.Healthy)
	assert.Equal(t, domain.ContainerStateRunning, up.State)

	sick := mgr.CheckContainerHealth(testContext(), "sick")
	assert.False(t, sick.Healthy)

	gone := mgr.CheckContainerHealth(testContext(), "gone")
	assert.False(t, gone.Healthy)
	assert.Equal(t, domain.ContainerStateUnknown, gone.State)
}
