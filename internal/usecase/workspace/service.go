package workspace

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"time"

	"github.com/bnema/zerowrap"
	"github.com/google/uuid"

	"github.com/nexuslab/nexus/internal/boundaries/in"
	"github.com/nexuslab/nexus/internal/boundaries/out"
	"github.com/nexuslab/nexus/internal/domain"
)

// Config holds the defaults applied to new workspaces.
type Config struct {
	DefaultImage         string
	DefaultResourceClass domain.ResourceClass
	// DefaultIdleTimeout applies to requests without an idle timeout. Zero
	// leaves such workspaces running until stopped.
	DefaultIdleTimeout      time.Duration
	DefaultShutdownBehavior domain.ShutdownBehavior
	// WatchInterval is how often Watch rescans for running workspaces that
	// are not monitored yet.
	WatchInterval time.Duration
}

// DefaultWatchInterval is used when Config.WatchInterval is not set.
const DefaultWatchInterval = time.Minute

// Service implements in.WorkspaceService. It drives the backend and is the
// only caller that persists workspace records.
type Service struct {
	store     out.WorkspaceStore
	backend   in.WorkspaceBackend
	worktrees out.WorktreeManager
	config    Config
	newID     func() string
	now       func() time.Time
}

// NewService creates a workspace service. worktrees may be nil, in which
// case repository-backed creation is rejected.
func NewService(store out.WorkspaceStore, backend in.WorkspaceBackend, worktrees out.WorktreeManager, config Config) *Service {
	return &Service{
		store:     store,
		backend:   backend,
		worktrees: worktrees,
		config:    config,
		newID:     func() string { return uuid.New().String() },
		now:       time.Now,
	}
}

func (s *Service) ctx(ctx context.Context, action, name string) (context.Context, zerowrap.Logger) {
	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:    "usecase",
		zerowrap.FieldUseCase:  action,
		zerowrap.FieldEntityID: name,
	})
	return ctx, zerowrap.FromCtx(ctx)
}

// Create validates the request, creates an optional git worktree, provisions
// the workspace through the backend and persists the record. Failures after
// provisioning give the backend resources and the worktree back.
func (s *Service) Create(ctx context.Context, req domain.CreateWorkspaceRequest) (*domain.Workspace, error) {
	ctx, log := s.ctx(ctx, "Create", req.Name)

	if err := domain.ValidateWorkspaceName(req.Name); err != nil {
		return nil, err
	}
	if s.store.WorkspaceExists(ctx, req.Name) {
		return nil, domain.NewWorkspaceAlreadyExistsError(req.Name, nil)
	}

	config := req.Config.Clone()
	if config.Image == "" {
		config.Image = s.config.DefaultImage
	}
	if config.ResourceClass == "" {
		config.ResourceClass = s.config.DefaultResourceClass
	}
	if config.IdleTimeout == 0 {
		config.IdleTimeout = s.config.DefaultIdleTimeout
	}
	if config.ShutdownBehavior == "" {
		config.ShutdownBehavior = s.config.DefaultShutdownBehavior
	}

	sourcePath := req.SourcePath
	repo := domain.Repository{Provider: domain.ProviderOther}
	branch := req.Branch
	if req.RepoPath != "" {
		if s.worktrees == nil {
			return nil, domain.NewGitWorktreeError("create", "git worktrees are not available", nil)
		}
		path, err := s.worktrees.CreateWorktree(ctx, req.RepoPath, req.Name, req.Branch)
		if err != nil {
			return nil, err
		}
		commit, err := s.worktrees.CurrentCommit(ctx, path)
		if err != nil {
			log.Warn().Err(err).Msg("failed to resolve worktree commit")
		}
		sourcePath = path
		branch = domain.WorktreeBranch(req.Name)
		repo.LocalPath = req.RepoPath
		repo.DefaultBranch = req.Branch
		repo.CurrentCommit = commit
	}

	ws, err := s.backend.CreateWorkspace(ctx, s.newID(), req.Name, config, sourcePath)
	if err != nil {
		s.removeWorktree(ctx, repo.LocalPath, sourcePath)
		return nil, err
	}

	ws.DisplayName = req.DisplayName
	ws.Repository = repo
	ws.Branch = branch
	if ws.Labels == nil {
		ws.Labels = map[string]string{}
	}
	maps.Copy(ws.Labels, req.Labels)

	if err := s.store.CreateWorkspace(ctx, ws); err != nil {
		rollbackCtx := context.WithoutCancel(ctx)
		if delErr := s.backend.DeleteWorkspace(rollbackCtx, ws); delErr != nil {
			log.Warn().Err(delErr).Msg("rollback: failed to delete backend resources")
		}
		s.removeWorktree(rollbackCtx, repo.LocalPath, sourcePath)
		return nil, err
	}

	log.Info().Str("id", ws.ID).Str("container_id", ws.ContainerID()).Msg("workspace created")
	return ws, nil
}

func (s *Service) removeWorktree(ctx context.Context, repoPath, worktreePath string) {
	if repoPath == "" || s.worktrees == nil {
		return
	}
	if err := s.worktrees.RemoveWorktree(ctx, repoPath, worktreePath); err != nil {
		log := zerowrap.FromCtx(ctx)
		log.Warn().Err(err).Str(zerowrap.FieldPath, worktreePath).Msg("failed to remove worktree")
	}
}

// Start starts the named workspace and records it running. A workspace in
// error is moved back to stopped first. A start the backend attempted and
// failed, e.g. one that never became healthy, is recorded as error with the
// failure message; a rejected transition changes nothing.
func (s *Service) Start(ctx context.Context, name string) (*domain.Workspace, error) {
	ctx, log := s.ctx(ctx, "Start", name)

	ws, err := s.store.GetWorkspace(ctx, name)
	if err != nil {
		return nil, err
	}
	if ws.Status == domain.StatusError {
		if ws, err = s.store.UpdateStatus(ctx, name, domain.StatusStopped, ""); err != nil {
			return nil, err
		}
		log.Info().Msg("retrying start of failed workspace")
	}

	updated, err := s.backend.StartWorkspace(ctx, ws)
	if err != nil {
		if !errors.Is(err, domain.ErrWorkspaceInvalidTransition) {
			s.recordStartFailure(ctx, name, err)
		}
		return nil, err
	}
	if err := s.store.SaveWorkspace(ctx, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

// recordStartFailure writes the error status directly: the backend already
// stopped the container again, so the record is stopped and the table has no
// stopped to error edge.
func (s *Service) recordStartFailure(ctx context.Context, name string, cause error) {
	ctx = context.WithoutCancel(ctx)
	if _, err := s.store.UpdateWorkspace(ctx, name, func(w *domain.Workspace) error {
		w.Status = domain.StatusError
		w.StatusMessage = "start failed: " + cause.Error()
		return nil
	}); err != nil {
		log := zerowrap.FromCtx(ctx)
		log.Warn().Err(err).Msg("failed to record start failure")
	}
}

// Stop stops the named workspace and records it stopped.
func (s *Service) Stop(ctx context.Context, name string) (*domain.Workspace, error) {
	ctx, _ = s.ctx(ctx, "Stop", name)

	ws, err := s.store.GetWorkspace(ctx, name)
	if err != nil {
		return nil, err
	}
	updated, err := s.backend.StopWorkspace(ctx, ws)
	if err != nil {
		return nil, err
	}
	if err := s.store.SaveWorkspace(ctx, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete records the workspace as destroying, evicts its container and
// ports, removes its worktree and deletes the record. A failed eviction is
// recorded as an error status.
func (s *Service) Delete(ctx context.Context, name string) error {
	ctx, log := s.ctx(ctx, "Delete", name)

	ws, err := s.store.GetWorkspace(ctx, name)
	if err != nil {
		return err
	}
	if ws.Status != domain.StatusDestroying {
		if ws, err = s.store.UpdateStatus(ctx, name, domain.StatusDestroying, ""); err != nil {
			return err
		}
	}

	if err := s.backend.DeleteWorkspace(ctx, ws); err != nil {
		if _, updErr := s.store.UpdateStatus(context.WithoutCancel(ctx), name, domain.StatusError, "delete failed: "+err.Error()); updErr != nil {
			log.Warn().Err(updErr).Msg("failed to record delete failure")
		}
		return err
	}

	s.removeWorktree(ctx, ws.Repository.LocalPath, ws.WorktreePath)

	if err := s.store.DeleteWorkspace(ctx, name); err != nil {
		return err
	}
	log.Info().Msg("workspace deleted")
	return nil
}

// Get returns the recorded workspace.
func (s *Service) Get(ctx context.Context, name string) (*domain.Workspace, error) {
	return s.store.GetWorkspace(ctx, name)
}

// Status reconciles the recorded status with the runtime. A divergence the
// state machine cannot express is logged and the record is left alone.
func (s *Service) Status(ctx context.Context, name string) (*domain.Workspace, error) {
	ctx, log := s.ctx(ctx, "Status", name)

	ws, err := s.store.GetWorkspace(ctx, name)
	if err != nil {
		return nil, err
	}

	live := s.backend.GetWorkspaceStatus(ctx, ws)
	if live == ws.Status {
		return ws, nil
	}
	if !domain.IsValidTransition(ws.Status, live) {
		log.Debug().
			Str("recorded", string(ws.Status)).
			Str("observed", string(live)).
			Msg("runtime state diverges from record, leaving record unchanged")
		return ws, nil
	}

	updated, err := s.store.UpdateStatus(ctx, name, live, fmt.Sprintf("observed %s in runtime", live))
	if err != nil {
		if errors.Is(err, domain.ErrWorkspaceInvalidTransition) {
			// Raced with another writer.
			return s.store.GetWorkspace(ctx, name)
		}
		return nil, err
	}
	log.Info().Str("from", string(ws.Status)).Str("to", string(live)).Msg("workspace status reconciled")
	return updated, nil
}

// List returns every readable workspace record.
func (s *Service) List(ctx context.Context) ([]*domain.Workspace, error) {
	return s.store.ListWorkspaces(ctx)
}

// Reconcile runs Status for every workspace. Workspaces that fail to
// reconcile keep their recorded state in the result. Managed containers
// without a record are logged and left in place.
func (s *Service) Reconcile(ctx context.Context) ([]*domain.Workspace, error) {
	ctx, log := s.ctx(ctx, "Reconcile", "")

	all, err := s.store.ListWorkspaces(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*domain.Workspace, 0, len(all))
	for _, ws := range all {
		updated, err := s.Status(ctx, ws.Name)
		if err != nil {
			log.Warn().Err(err).Str(zerowrap.FieldEntityID, ws.Name).Msg("failed to reconcile workspace")
			result = append(result, ws)
			continue
		}
		result = append(result, updated)
	}

	containers, err := s.backend.ListManagedContainers(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("failed to list managed containers")
		return result, nil
	}
	for _, c := range orphanContainers(all, containers) {
		log.Warn().
			Str("container_id", c.ID).
			Str("container", c.Name).
			Str("workspace_id", c.Labels[domain.LabelWorkspace]).
			Msg("managed container has no workspace record")
	}
	return result, nil
}

// orphanContainers returns the containers whose workspace label matches no
// record.
func orphanContainers(records []*domain.Workspace, containers []*domain.ContainerInfo) []*domain.ContainerInfo {
	known := make(map[string]bool, len(records))
	for _, ws := range records {
		known[ws.ID] = true
	}
	var orphans []*domain.ContainerInfo
	for _, c := range containers {
		if !known[c.Labels[domain.LabelWorkspace]] {
			orphans = append(orphans, c)
		}
	}
	return orphans
}

// Exec runs cmd in the named workspace.
// A successful exec counts as activity for the idle reaper.
func (s *Service) Exec(ctx context.Context, name string, cmd []string, opts domain.ExecOptions) (*domain.ExecResult, error) {
	ctx, log := s.ctx(ctx, "Exec", name)

	ws, err := s.store.GetWorkspace(ctx, name)
	if err != nil {
		return nil, err
	}
	res, err := s.backend.ExecCommand(ctx, ws, cmd, opts)
	if err != nil {
		return nil, err
	}

	if _, err := s.store.UpdateWorkspace(ctx, name, func(w *domain.Workspace) error {
		w.LastActiveAt = s.now().UTC()
		return nil
	}); err != nil {
		log.Warn().Err(err).Msg("failed to record workspace activity")
	}
	return res, nil
}

// Logs returns the logs of the named workspace.
func (s *Service) Logs(ctx context.Context, name string, opts domain.LogsOptions) (string, error) {
	ctx, _ = s.ctx(ctx, "Logs", name)

	ws, err := s.store.GetWorkspace(ctx, name)
	if err != nil {
		return "", err
	}
	return s.backend.GetLogs(ctx, ws, opts)
}

// Watch resumes crash monitoring for every running workspace and blocks
// until ctx is done, then cancels every monitor.
func (s *Service) Watch(ctx context.Context) error {
	ctx, log := s.ctx(ctx, "Watch", "")

	watched, err := s.watchRunning(ctx)
	if err != nil {
		return err
	}
	log.Info().Int(zerowrap.FieldCount, watched).Msg("watching running workspaces")

	interval := s.config.WatchInterval
	if interval <= 0 {
		interval = DefaultWatchInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.backend.Close()
			log.Info().Msg("stopped watching workspaces")
			return nil
		case <-ticker.C:
			if _, err := s.watchRunning(ctx); err != nil {
				log.Warn().Err(err).Msg("failed to rescan running workspaces")
			}
		}
	}
}

// watchRunning hands every running record to the backend, which ignores
// containers it already monitors.
func (s *Service) watchRunning(ctx context.Context) (int, error) {
	all, err := s.store.ListWorkspaces(ctx)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, ws := range all {
		if ws.Status != domain.StatusRunning {
			continue
		}
		s.backend.WatchWorkspace(ctx, ws)
		n++
	}
	return n, nil
}
