// Package lifecycle implements health waiting, crash monitoring and graceful
// shutdown of workspace containers.
package lifecycle

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/bnema/zerowrap"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/nexuslab/nexus/internal/adapters/out/telemetry"
	"github.com/nexuslab/nexus/internal/boundaries/in"
	"github.com/nexuslab/nexus/internal/boundaries/out"
	"github.com/nexuslab/nexus/internal/domain"
)

// Config holds lifecycle timing and restart policy.
type Config struct {
	HealthCheckInterval   time.Duration
	HealthCheckTimeout    time.Duration
	MaxHealthCheckRetries int
	ShutdownTimeout       time.Duration
	AutoRestart           bool
}

// DefaultConfig returns the default lifecycle policy.
func DefaultConfig() Config {
	return Config{
		HealthCheckInterval:   5 * time.Second,
		HealthCheckTimeout:    30 * time.Second,
		MaxHealthCheckRetries: 60,
		ShutdownTimeout:       30 * time.Second,
	}
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.HealthCheckInterval <= 0 {
		c.HealthCheckInterval = d.HealthCheckInterval
	}
	if c.HealthCheckTimeout <= 0 {
		c.HealthCheckTimeout = d.HealthCheckTimeout
	}
	if c.MaxHealthCheckRetries <= 0 {
		c.MaxHealthCheckRetries = d.MaxHealthCheckRetries
	}
	if c.ShutdownTimeout <= 0 {
		c.ShutdownTimeout = d.ShutdownTimeout
	}
	return c
}

// monitor is one registered crash-watch loop.
type monitor struct {
	containerID string
	onCrash     in.CrashHandler
	cancel      context.CancelFunc
	done        chan struct{}

	// lastExit identifies the exit already handled so that each exit is
	// reported and restarted at most once. Only the loop goroutine touches it.
	lastExit string
}

// Manager implements in.LifecycleManager. Monitors are kept in an explicit
// registry keyed by container id; each runs its own ticker goroutine.
type Manager struct {
	runtime out.ContainerRuntime
	config  Config
	metrics *telemetry.Metrics

	mu       sync.Mutex
	monitors map[string]*monitor
}

// NewManager creates a lifecycle manager.
func NewManager(runtime out.ContainerRuntime, config Config) *Manager {
	return &Manager{
		runtime:  runtime,
		config:   config.withDefaults(),
		monitors: make(map[string]*monitor),
	}
}

// SetMetrics sets the telemetry metrics. Must be called before any monitor
// is started.
func (m *Manager) SetMetrics(metrics *telemetry.Metrics) {
	m.metrics = metrics
}

// WaitForHealthy blocks until the container is ready. With a declared health
// check on the primary service the runtime's probe must report healthy before
// the retry budget runs out; otherwise the container must reach the running
// state within the health check timeout.
func (m *Manager) WaitForHealthy(ctx context.Context, containerID string, config domain.WorkspaceConfig, onTransition func(health string)) error {
	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:    "usecase",
		zerowrap.FieldUseCase:  "WaitForHealthy",
		zerowrap.FieldEntityID: containerID,
	})
	log := zerowrap.FromCtx(ctx)

	start := time.Now()
	var err error
	mode := "running"
	if hc := config.PrimaryHealthCheck(); hc != nil {
		mode = "healthcheck"
		err = m.waitForHealthCheck(ctx, containerID, hc, onTransition)
	} else {
		err = m.waitForRunning(ctx, containerID)
	}

	elapsed := time.Since(start)
	if m.metrics != nil {
		attrs := metric.WithAttributes(attribute.String("mode", mode), attribute.Bool("ok", err == nil))
		m.metrics.HealthWaitDuration.Record(ctx, elapsed.Seconds(), attrs)
		if err != nil {
			m.metrics.HealthCheckFailures.Add(ctx, 1, attrs)
		}
	}

	if err != nil {
		log.Warn().Err(err).Str("mode", mode).Dur(zerowrap.FieldDuration, elapsed).Msg("container did not become healthy")
		return err
	}
	log.Info().Str("mode", mode).Dur(zerowrap.FieldDuration, elapsed).Msg("container is healthy")
	return nil
}

// waitForHealthCheck counts every non-healthy observation toward the retry
// limit, including ones that follow a healthy observation. A container that
// leaves the running state ends the wait immediately.
func (m *Manager) waitForHealthCheck(ctx context.Context, containerID string, hc *domain.HealthCheckConfig, onTransition func(string)) error {
	interval := m.config.HealthCheckInterval
	if hc.Interval > 0 {
		interval = hc.Interval
	}
	maxRetries := hc.Retries
	if maxRetries <= 0 {
		maxRetries = m.config.MaxHealthCheckRetries
	}

	notify := func(health string) {
		if onTransition != nil {
			onTransition(health)
		}
	}

	deadline := time.Now().Add(m.config.HealthCheckTimeout)
	retries := 0
	for {
		info, err := m.runtime.InspectContainer(ctx, containerID)
		if err != nil {
			return err
		}
		if info.State != domain.ContainerStateRunning {
			return domain.NewContainerError(containerID, "container stopped during health check", nil).
				WithContext("state", string(info.State)).
				WithContext("exitCode", info.ExitCode)
		}
		if info.Health == domain.HealthHealthy {
			notify(domain.HealthHealthy)
			return nil
		}

		retries++
		if retries >= maxRetries {
			notify(domain.HealthUnhealthy)
			return domain.NewContainerError(containerID, fmt.Sprintf("health check failed after %d retries", retries), nil)
		}

		if !time.Now().Add(interval).Before(deadline) {
			notify(domain.HealthUnhealthy)
			return domain.NewContainerError(containerID, "health check timeout", nil)
		}
		if err := sleep(ctx, interval); err != nil {
			return domain.NewContainerError(containerID, "health check interrupted", err)
		}
	}
}

func (m *Manager) waitForRunning(ctx context.Context, containerID string) error {
	deadline := time.Now().Add(m.config.HealthCheckTimeout)
	for {
		info, err := m.runtime.InspectContainer(ctx, containerID)
		if err != nil {
			return err
		}
		if info.State == domain.ContainerStateRunning {
			return nil
		}

		if !time.Now().Add(m.config.HealthCheckInterval).Before(deadline) {
			return domain.NewContainerError(containerID, "container failed to start within timeout", nil).
				WithContext("state", string(info.State))
		}
		if err := sleep(ctx, m.config.HealthCheckInterval); err != nil {
			return domain.NewContainerError(containerID, "wait for running interrupted", err)
		}
	}
}

func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// StartMonitoring watches containerID for exits until StopMonitoring,
// GracefulShutdown or Stop is called. An existing monitor for the same id is
// replaced. The monitor outlives ctx's cancellation but keeps its values.
// onCrash must not stop the monitor that invokes it.
func (m *Manager) StartMonitoring(ctx context.Context, containerID string, onCrash in.CrashHandler) {
	m.StopMonitoring(containerID)

	ctx = zerowrap.CtxWithFields(context.WithoutCancel(ctx), map[string]any{
		zerowrap.FieldLayer:    "usecase",
		zerowrap.FieldUseCase:  "MonitorContainer",
		zerowrap.FieldEntityID: containerID,
	})
	monCtx, cancel := context.WithCancel(ctx)
	mon := &monitor{
		containerID: containerID,
		onCrash:     onCrash,
		cancel:      cancel,
		done:        make(chan struct{}),
	}

	m.mu.Lock()
	m.monitors[containerID] = mon
	m.mu.Unlock()

	if m.metrics != nil {
		m.metrics.MonitoredContainers.Add(ctx, 1)
	}
	log := zerowrap.FromCtx(ctx)
	log.Debug().Dur("interval", m.config.HealthCheckInterval).Msg("crash monitor started")

	go m.run(monCtx, mon)
}

func (m *Manager) run(ctx context.Context, mon *monitor) {
	defer close(mon.done)

	ticker := time.NewTicker(m.config.HealthCheckInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.check(ctx, mon)
		}
	}
}

// check runs one monitoring tick. The loop goroutine is the only caller, so
// a restart never overlaps with the next observation.
func (m *Manager) check(ctx context.Context, mon *monitor) {
	log := zerowrap.FromCtx(ctx)

	info, err := m.runtime.InspectContainer(ctx, mon.containerID)
	if err != nil {
		if !domain.IsContainerGone(err) {
			log.Debug().Err(err).Msg("monitor: failed to inspect container, retrying next tick")
			return
		}
		info = &domain.ContainerInfo{ID: mon.containerID, State: domain.ContainerStateDead, ExitCode: -1}
	}

	if info.State != domain.ContainerStateExited && info.State != domain.ContainerStateDead {
		return
	}

	exitKey := string(info.State) + "@" + info.FinishedAt.UTC().Format(time.RFC3339Nano)
	if exitKey == mon.lastExit {
		return
	}
	mon.lastExit = exitKey

	if ctx.Err() != nil {
		return
	}

	log.Warn().Str("state", string(info.State)).Int("exit_code", info.ExitCode).Msg("monitor: container exited")
	if m.metrics != nil {
		m.metrics.ContainerCrashes.Add(ctx, 1, metric.WithAttributes(attribute.String("state", string(info.State))))
	}

	restarted := false
	if m.config.AutoRestart && info.State == domain.ContainerStateExited {
		if err := m.runtime.StartContainer(ctx, mon.containerID); err != nil {
			log.Warn().Err(err).Msg("monitor: failed to restart container")
		} else {
			restarted = true
			log.Info().Msg("monitor: container restarted")
			if m.metrics != nil {
				m.metrics.ContainerRestarts.Add(ctx, 1)
			}
		}
	}

	if mon.onCrash != nil {
		mon.onCrash(ctx, *info, restarted)
	}
}

// StopMonitoring cancels the monitor of containerID, if any, and waits for
// its loop to exit. Other monitors are unaffected.
func (m *Manager) StopMonitoring(containerID string) {
	m.mu.Lock()
	mon, ok := m.monitors[containerID]
	if ok {
		delete(m.monitors, containerID)
	}
	m.mu.Unlock()

	if !ok {
		return
	}
	mon.cancel()
	<-mon.done
	if m.metrics != nil {
		m.metrics.MonitoredContainers.Add(context.Background(), -1)
	}
}

// IsMonitoring reports whether a monitor is registered for containerID.
func (m *Manager) IsMonitoring(containerID string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.monitors[containerID]
	return ok
}

// GracefulShutdown cancels monitoring before stopping the container so that
// the stop is never reported as a crash.
func (m *Manager) GracefulShutdown(ctx context.Context, containerID string) error {
	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:    "usecase",
		zerowrap.FieldUseCase:  "GracefulShutdown",
		zerowrap.FieldEntityID: containerID,
	})
	log := zerowrap.FromCtx(ctx)

	m.StopMonitoring(containerID)

	if err := m.runtime.StopContainer(ctx, containerID, m.config.ShutdownTimeout); err != nil {
		return err
	}
	log.Info().Msg("container stopped")
	return nil
}

// CheckContainerHealth is a best-effort probe; it never fails.
func (m *Manager) CheckContainerHealth(ctx context.Context, containerID string) domain.HealthReport {
	info, err := m.runtime.InspectContainer(ctx, containerID)
	if err != nil {
		return domain.HealthReport{State: domain.ContainerStateUnknown}
	}
	return domain.HealthReport{
		Healthy:  info.State == domain.ContainerStateRunning && info.Health != domain.HealthUnhealthy,
		State:    info.State,
		Health:   info.Health,
		ExitCode: info.ExitCode,
	}
}

// Stop cancels every monitor and waits for all of them to exit.
func (m *Manager) Stop() {
	m.mu.Lock()
	ids := make([]string, 0, len(m.monitors))
	for id := range m.monitors {
		ids = append(ids, id)
	}
	m.mu.Unlock()

	for _, id := range ids {
		m.StopMonitoring(id)
	}
}
