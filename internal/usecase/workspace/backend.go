// Package workspace implements the workspace lifecycle use cases: the
// container backend and the persisting service in front of it.
package workspace

import (
	"context"
	"time"

	"github.com/bnema/zerowrap"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/nexuslab/nexus/internal/adapters/out/telemetry"
	"github.com/nexuslab/nexus/internal/boundaries/in"
	"github.com/nexuslab/nexus/internal/boundaries/out"
	"github.com/nexuslab/nexus/internal/domain"
)

// BackendConfig holds the container backend settings.
type BackendConfig struct {
	// DeleteStopTimeout bounds the stop issued before a container is removed.
	DeleteStopTimeout time.Duration
	WorkingDir        string
	// HookTimeout bounds all scripts of one hook phase.
	HookTimeout time.Duration
	// NetworkPrefix, when set, gives every workspace its own bridge network
	// named <prefix>-<name>-net.
	NetworkPrefix string
}

// DefaultBackendConfig returns the default backend settings.
func DefaultBackendConfig() BackendConfig {
	return BackendConfig{
		DeleteStopTimeout: 5 * time.Second,
		WorkingDir:        "/workspace",
		HookTimeout:       30 * time.Second,
	}
}

// Backend implements in.WorkspaceBackend on top of a container runtime.
// It never touches the state store.
type Backend struct {
	runtime   out.ContainerRuntime
	ports     in.PortManager
	lifecycle in.LifecycleManager
	sync      out.FileSync
	host      out.HostShell
	events    out.EventPublisher
	config    BackendConfig
	metrics   *telemetry.Metrics
	now       func() time.Time
}

// NewBackend creates a container backend. sync and events may be nil.
func NewBackend(
	runtime out.ContainerRuntime,
	ports in.PortManager,
	lifecycle in.LifecycleManager,
	sync out.FileSync,
	events out.EventPublisher,
	config BackendConfig,
) *Backend {
	d := DefaultBackendConfig()
	if config.DeleteStopTimeout <= 0 {
		config.DeleteStopTimeout = d.DeleteStopTimeout
	}
	if config.WorkingDir == "" {
		config.WorkingDir = d.WorkingDir
	}
	if config.HookTimeout <= 0 {
		config.HookTimeout = d.HookTimeout
	}
	return &Backend{
		runtime:   runtime,
		ports:     ports,
		lifecycle: lifecycle,
		sync:      sync,
		events:    events,
		config:    config,
		now:       time.Now,
	}
}

// SetHostShell sets the runner of hooks whose phase has no running
// container. Without one, such hooks fail.
func (b *Backend) SetHostShell(h out.HostShell) {
	b.host = h
}

// SetMetrics sets the telemetry metrics.
func (b *Backend) SetMetrics(m *telemetry.Metrics) {
	b.metrics = m
}

func (b *Backend) ctx(ctx context.Context, action string, ws *domain.Workspace) (context.Context, zerowrap.Logger) {
	fields := map[string]any{
		zerowrap.FieldLayer:   "usecase",
		zerowrap.FieldUseCase: action,
	}
	if ws != nil {
		fields[zerowrap.FieldEntityID] = ws.Name
		fields["container_id"] = ws.ContainerID()
	}
	ctx = zerowrap.CtxWithFields(ctx, fields)
	return ctx, zerowrap.FromCtx(ctx)
}

func (b *Backend) record(ctx context.Context, op string, start time.Time, err error) {
	if b.metrics == nil {
		return
	}
	attrs := metric.WithAttributes(attribute.String("operation", op))
	b.metrics.WorkspaceOps.Add(ctx, 1, attrs)
	b.metrics.WorkspaceOpDuration.Record(ctx, time.Since(start).Seconds(), attrs)
	if err != nil {
		b.metrics.WorkspaceOpErrors.Add(ctx, 1, attrs)
	}
}

func (b *Backend) publish(ctx context.Context, eventType domain.EventType, payload any) {
	if b.events == nil {
		return
	}
	if err := b.events.Publish(eventType, payload); err != nil {
		log := zerowrap.FromCtx(ctx)
		log.Warn().Err(err).Str(zerowrap.FieldEvent, string(eventType)).Msg("failed to publish event")
	}
}

func lifecyclePayload(ws *domain.Workspace) domain.WorkspaceEventPayload {
	return domain.WorkspaceEventPayload{
		WorkspaceID:   ws.ID,
		WorkspaceName: ws.Name,
		ContainerID:   ws.ContainerID(),
		Status:        ws.Status,
	}
}

// checkTransition rejects a transition the state machine does not allow.
func checkTransition(ws *domain.Workspace, to domain.WorkspaceStatus) error {
	if !domain.IsValidTransition(ws.Status, to) {
		return domain.NewWorkspaceInvalidTransitionError(ws.Name, ws.Status, to)
	}
	return nil
}

// CreateWorkspace allocates ports, pulls the image, creates the container and
// syncs the working tree into it. The preCreate and postCreate hooks run on
// the host in the worktree. Any failure after allocation removes the
// container and releases the ports before returning.
func (b *Backend) CreateWorkspace(ctx context.Context, id, name string, config domain.WorkspaceConfig, worktreePath string) (ws *domain.Workspace, err error) {
	ctx, log := b.ctx(ctx, "CreateWorkspace", &domain.Workspace{Name: name})
	start := time.Now()
	defer func() { b.record(ctx, "create", start, err) }()

	config = config.Clone()
	if config.Image == "" {
		return nil, domain.NewContainerError("", "workspace image is required", nil).WithContext("workspaceName", name)
	}
	resources := config.ResourceClass.Resources()

	if err = b.runHooks(ctx, hookPreCreate, config.Hooks.PreCreate, hookTarget{dir: worktreePath}); err != nil {
		return nil, err
	}

	mappings, err := b.ports.AllocatePorts(ctx, id, config)
	if err != nil {
		return nil, err
	}

	containerID, networkID := "", ""
	defer func() {
		if err != nil {
			b.rollbackCreate(ctx, id, containerID, networkID)
		}
	}()

	if err = b.runtime.PullImage(ctx, config.Image); err != nil {
		return nil, err
	}

	now := b.now().UTC()
	labels := domain.WorkspaceLabels(id, name, map[string]string{
		domain.LabelCreated: now.Format(time.RFC3339),
	})
	if config.ResourceClass != "" {
		labels[domain.LabelResourceClass] = string(config.ResourceClass)
	}

	networkMode := ""
	if b.config.NetworkPrefix != "" {
		networkMode = b.networkName(name)
		if networkID, err = b.runtime.CreateNetwork(ctx, networkMode, domain.WorkspaceLabels(id, name, nil)); err != nil {
			return nil, err
		}
	}

	containerID, err = b.runtime.CreateContainer(ctx, &domain.ContainerSpec{
		Name:        name,
		Image:       config.Image,
		Ports:       mappings,
		Env:         config.Env,
		Volumes:     config.Volumes,
		Resources:   resources,
		WorkingDir:  b.config.WorkingDir,
		Labels:      labels,
		NetworkMode: networkMode,
		HealthCheck: config.PrimaryHealthCheck(),
	})
	if err != nil {
		return nil, err
	}
	log.Info().Str("container_id", containerID).Int("ports", len(mappings)).Msg("container created")

	if b.sync != nil {
		if err = b.sync.SyncToContainer(ctx, worktreePath, containerID, config); err != nil {
			return nil, err
		}
	}
	if err = b.runHooks(ctx, hookPostCreate, config.Hooks.PostCreate, hookTarget{dir: worktreePath}); err != nil {
		return nil, err
	}

	ws = &domain.Workspace{
		ID:      id,
		Name:    name,
		Status:  domain.StatusStopped,
		Backend: domain.BackendDocker,
		BackendConfig: domain.BackendConfig{
			ContainerID: containerID,
			NetworkID:   networkID,
			Metadata:    map[string]any{},
		},
		WorktreePath: worktreePath,
		Resources:    resources,
		Ports:        mappings,
		Config:       config,
		Labels:       map[string]string{},
		Annotations:  map[string]string{},
		CreatedAt:    now,
		UpdatedAt:    now,
		LastActiveAt: now,
	}

	b.publish(ctx, domain.EventWorkspaceCreated, lifecyclePayload(ws))
	return ws, nil
}

// rollbackCreate undoes a partial create. It runs detached from ctx so a
// cancelled caller still gets its resources back.
func (b *Backend) rollbackCreate(ctx context.Context, workspaceID, containerID, networkID string) {
	ctx = context.WithoutCancel(ctx)
	log := zerowrap.FromCtx(ctx)

	if containerID != "" {
		if err := b.runtime.RemoveContainer(ctx, containerID, true); err != nil && !domain.IsContainerGone(err) {
			log.Warn().Err(err).Str("container_id", containerID).Msg("rollback: failed to remove container")
		}
	}
	if networkID != "" {
		if err := b.runtime.RemoveNetwork(ctx, networkID); err != nil {
			log.Warn().Err(err).Str("network_id", networkID).Msg("rollback: failed to remove network")
		}
	}
	if err := b.ports.ReleasePorts(ctx, workspaceID); err != nil {
		log.Warn().Err(err).Msg("rollback: failed to release ports")
	}
}

// StartWorkspace runs the preStart hooks on the host, starts the container,
// waits for it to become healthy, runs the postStart hooks inside it and
// begins crash monitoring. A container that never becomes healthy or whose
// postStart hooks fail is stopped again so the record stays truthful.
func (b *Backend) StartWorkspace(ctx context.Context, ws *domain.Workspace) (updated *domain.Workspace, err error) {
	ctx, log := b.ctx(ctx, "StartWorkspace", ws)
	start := time.Now()
	defer func() { b.record(ctx, "start", start, err) }()

	if err = checkTransition(ws, domain.StatusRunning); err != nil {
		return nil, err
	}
	containerID := ws.ContainerID()
	if containerID == "" {
		return nil, domain.NewWorkspaceStartError(ws.Name, nil).WithContext("reason", "no container recorded")
	}

	if err = b.runHooks(ctx, hookPreStart, ws.Config.Hooks.PreStart, hookTarget{dir: ws.WorktreePath}); err != nil {
		return nil, domain.NewWorkspaceStartError(ws.Name, err)
	}

	if err = b.runtime.StartContainer(ctx, containerID); err != nil {
		return nil, err
	}

	if err = b.lifecycle.WaitForHealthy(ctx, containerID, ws.Config, nil); err != nil {
		b.stopFailedStart(ctx, containerID)
		return nil, err
	}
	if err = b.runHooks(ctx, hookPostStart, ws.Config.Hooks.PostStart, hookTarget{containerID: containerID}); err != nil {
		b.stopFailedStart(ctx, containerID)
		return nil, err
	}

	b.lifecycle.StartMonitoring(ctx, containerID, b.crashHandler(ws))

	next := ws.Clone()
	now := b.now().UTC()
	next.Status = domain.StatusRunning
	next.StatusMessage = ""
	next.UpdatedAt = now
	next.LastActiveAt = now

	log.Info().Msg("workspace started")
	b.publish(ctx, domain.EventWorkspaceStarted, lifecyclePayload(&next))
	return &next, nil
}

func (b *Backend) stopFailedStart(ctx context.Context, containerID string) {
	ctx = context.WithoutCancel(ctx)
	if err := b.runtime.StopContainer(ctx, containerID, b.config.DeleteStopTimeout); err != nil {
		log := zerowrap.FromCtx(ctx)
		log.Warn().Err(err).Msg("failed to stop container after failed start")
	}
}

// crashHandler publishes one event per observed container exit.
func (b *Backend) crashHandler(ws *domain.Workspace) in.CrashHandler {
	id, name := ws.ID, ws.Name
	return func(ctx context.Context, info domain.ContainerInfo, restarted bool) {
		eventType := domain.EventWorkspaceCrashed
		if restarted {
			eventType = domain.EventWorkspaceRestarted
		}
		b.publish(ctx, eventType, domain.CrashPayload{
			WorkspaceID:   id,
			WorkspaceName: name,
			ContainerID:   info.ID,
			State:         info.State,
			ExitCode:      info.ExitCode,
			Restarted:     restarted,
		})
	}
}

// StopWorkspace runs the preStop hooks inside the container, stops it
// gracefully and runs the postStop hooks on the host. Hook failures are
// logged and never keep a workspace running. A workspace without a container
// is reported stopped as-is.
func (b *Backend) StopWorkspace(ctx context.Context, ws *domain.Workspace) (updated *domain.Workspace, err error) {
	ctx, log := b.ctx(ctx, "StopWorkspace", ws)
	start := time.Now()
	defer func() { b.record(ctx, "stop", start, err) }()

	if err = checkTransition(ws, domain.StatusStopped); err != nil {
		return nil, err
	}

	if containerID := ws.ContainerID(); containerID != "" {
		if hookErr := b.runHooks(ctx, hookPreStop, ws.Config.Hooks.PreStop, hookTarget{containerID: containerID}); hookErr != nil {
			log.Warn().Err(hookErr).Msg("preStop hooks failed, stopping anyway")
		}
		if err = b.lifecycle.GracefulShutdown(ctx, containerID); err != nil {
			return nil, err
		}
	} else {
		log.Debug().Msg("no container recorded, treating as stopped")
	}
	if hookErr := b.runHooks(ctx, hookPostStop, ws.Config.Hooks.PostStop, hookTarget{dir: ws.WorktreePath}); hookErr != nil {
		log.Warn().Err(hookErr).Msg("postStop hooks failed")
	}

	next := ws.Clone()
	next.Status = domain.StatusStopped
	next.StatusMessage = ""
	next.UpdatedAt = b.now().UTC()

	log.Info().Msg("workspace stopped")
	b.publish(ctx, domain.EventWorkspaceStopped, lifecyclePayload(&next))
	return &next, nil
}

// DeleteWorkspace stops and force-removes the container, then releases the
// workspace's ports. Ports are kept when the container could not be removed.
func (b *Backend) DeleteWorkspace(ctx context.Context, ws *domain.Workspace) (err error) {
	ctx, log := b.ctx(ctx, "DeleteWorkspace", ws)
	start := time.Now()
	defer func() { b.record(ctx, "delete", start, err) }()

	if ws.Status != domain.StatusDestroying {
		if err = checkTransition(ws, domain.StatusDestroying); err != nil {
			return err
		}
	}

	if containerID := ws.ContainerID(); containerID != "" {
		b.lifecycle.StopMonitoring(containerID)

		if stopErr := b.runtime.StopContainer(ctx, containerID, b.config.DeleteStopTimeout); stopErr != nil && !domain.IsContainerGone(stopErr) {
			log.Warn().Err(stopErr).Msg("failed to stop container, forcing removal")
		}
		if err = b.runtime.RemoveContainer(ctx, containerID, true); err != nil {
			if !domain.IsContainerGone(err) {
				return err
			}
			log.Debug().Msg("container already removed")
		}
	}
	if networkID := ws.BackendConfig.NetworkID; networkID != "" {
		if err = b.runtime.RemoveNetwork(ctx, networkID); err != nil {
			return err
		}
	}

	if err = b.ports.ReleasePorts(ctx, ws.ID); err != nil {
		return err
	}

	log.Info().Msg("workspace deleted")
	gone := ws.Clone()
	gone.Status = domain.StatusDestroyed
	b.publish(ctx, domain.EventWorkspaceDeleted, lifecyclePayload(&gone))
	return nil
}

// GetWorkspaceStatus maps the live container state onto the status enum.
// A failed inspection reports StatusError; a workspace without a container
// keeps its recorded status.
func (b *Backend) GetWorkspaceStatus(ctx context.Context, ws *domain.Workspace) domain.WorkspaceStatus {
	ctx, log := b.ctx(ctx, "GetWorkspaceStatus", ws)

	containerID := ws.ContainerID()
	if containerID == "" {
		return ws.Status
	}

	info, err := b.runtime.InspectContainer(ctx, containerID)
	if err != nil {
		log.Debug().Err(err).Msg("inspect failed, reporting error status")
		return domain.StatusError
	}
	return info.State.WorkspaceStatus()
}

// ExecCommand runs cmd in the workspace container.
func (b *Backend) ExecCommand(ctx context.Context, ws *domain.Workspace, cmd []string, opts domain.ExecOptions) (*domain.ExecResult, error) {
	ctx, _ = b.ctx(ctx, "ExecCommand", ws)

	containerID := ws.ContainerID()
	if containerID == "" {
		return nil, domain.NewContainerError("", "workspace has no container", nil).WithContext("workspaceName", ws.Name)
	}
	return b.runtime.ExecInContainer(ctx, containerID, cmd, opts)
}

// GetLogs returns the workspace container logs.
func (b *Backend) GetLogs(ctx context.Context, ws *domain.Workspace, opts domain.LogsOptions) (string, error) {
	ctx, _ = b.ctx(ctx, "GetLogs", ws)

	containerID := ws.ContainerID()
	if containerID == "" {
		return "", domain.NewContainerError("", "workspace has no container", nil).WithContext("workspaceName", ws.Name)
	}
	return b.runtime.GetContainerLogs(ctx, containerID, opts)
}

// WatchWorkspace resumes crash monitoring for a running workspace, for
// instance after a process restart.
func (b *Backend) WatchWorkspace(ctx context.Context, ws *domain.Workspace) {
	containerID := ws.ContainerID()
	if containerID == "" || ws.Status != domain.StatusRunning {
		return
	}
	if b.lifecycle.IsMonitoring(containerID) {
		return
	}
	b.lifecycle.StartMonitoring(ctx, containerID, b.crashHandler(ws))
}

func (b *Backend) networkName(name string) string {
	return b.config.NetworkPrefix + "-" + name + "-net"
}

// ListManagedContainers lists containers carrying the managed label.
func (b *Backend) ListManagedContainers(ctx context.Context) ([]*domain.ContainerInfo, error) {
	return b.runtime.ListContainers(ctx, map[string]string{domain.LabelManaged: "true"})
}

// Close cancels every crash monitor.
func (b *Backend) Close() {
	b.lifecycle.Stop()
}
