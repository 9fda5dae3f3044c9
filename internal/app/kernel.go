package app

import (
	"context"
	"fmt"

	"github.com/bnema/zerowrap"

	"github.com/nexuslab/nexus/internal/adapters/out/docker"
	"github.com/nexuslab/nexus/internal/adapters/out/eventbus"
	"github.com/nexuslab/nexus/internal/adapters/out/filesync"
	"github.com/nexuslab/nexus/internal/adapters/out/filesystem"
	"github.com/nexuslab/nexus/internal/adapters/out/git"
	"github.com/nexuslab/nexus/internal/adapters/out/shell"
	"github.com/nexuslab/nexus/internal/adapters/out/telemetry"
	"github.com/nexuslab/nexus/internal/boundaries/in"
	"github.com/nexuslab/nexus/internal/domain"
	"github.com/nexuslab/nexus/internal/usecase/lifecycle"
	"github.com/nexuslab/nexus/internal/usecase/ports"
	"github.com/nexuslab/nexus/internal/usecase/workspace"
)

// Kernel provides in-process service access for CLI execution.
//
// It does not register signal handlers; serve mode does that on top of it.
type Kernel struct {
	cfg       Config
	log       zerowrap.Logger
	runtime   *docker.Runtime
	bus       *eventbus.InMemory
	backend   *workspace.Backend
	workspace *workspace.Service
	cleanup   []func()
}

// NewKernel loads the configuration and wires every adapter and use case.
func NewKernel(configPath string) (*Kernel, error) {
	_, cfg, err := initConfig(configPath)
	if err != nil {
		return nil, err
	}

	log, logCleanup, err := initLogger(cfg)
	if err != nil {
		return nil, err
	}

	k := &Kernel{cfg: cfg, log: log}
	if logCleanup != nil {
		k.cleanup = append(k.cleanup, logCleanup)
	}

	if err := k.wire(); err != nil {
		k.Close()
		return nil, err
	}
	return k, nil
}

func (k *Kernel) wire() error {
	cfg := k.cfg
	log := k.log.With().
		Str(zerowrap.FieldLayer, "app").
		Str(zerowrap.FieldComponent, "kernel").
		Logger()

	metrics, err := telemetry.NewMetrics()
	if err != nil {
		return fmt.Errorf("failed to create metrics: %w", err)
	}

	lockOpts := filesystem.LockOptions{
		Timeout:       cfg.State.LockTimeout,
		StaleAfter:    cfg.State.LockStaleAfter,
		RetryInterval: cfg.State.LockRetryInterval,
	}
	store, err := filesystem.NewWorkspaceStore(cfg.DataDir, lockOpts, k.log)
	if err != nil {
		return fmt.Errorf("failed to open workspace store: %w", err)
	}
	portStore, err := filesystem.NewPortStore(cfg.DataDir, lockOpts, k.log)
	if err != nil {
		return fmt.Errorf("failed to open port table: %w", err)
	}

	k.runtime, err = docker.NewRuntime(docker.Options{
		Timeout:         cfg.Runtime.Timeout,
		PullTimeout:     cfg.Runtime.PullTimeout,
		ContainerPrefix: cfg.Runtime.ContainerPrefix,
	})
	if err != nil {
		return err
	}
	k.cleanup = append(k.cleanup, func() {
		if err := k.runtime.Close(); err != nil {
			log.Warn().Err(err).Msg("failed to close runtime client")
		}
	})

	syncer, err := filesync.NewSyncer(k.runtime, filesync.Options{
		Ignore:    cfg.Sync.Ignore,
		TargetDir: cfg.Sync.TargetDir,
	})
	if err != nil {
		return fmt.Errorf("failed to create file sync: %w", err)
	}

	k.bus = eventbus.NewInMemory(100, k.log)
	k.bus.SetMetrics(metrics)
	if err := k.bus.Subscribe(workspace.NewCrashHandler(store)); err != nil {
		return fmt.Errorf("failed to subscribe crash handler: %w", err)
	}
	if err := k.bus.Start(); err != nil {
		return k.log.WrapErr(err, "failed to start event bus")
	}
	k.cleanup = append(k.cleanup, func() {
		if err := k.bus.Stop(); err != nil {
			log.Warn().Err(err).Msg("failed to stop event bus")
		}
	})

	lm := lifecycle.NewManager(k.runtime, lifecycle.Config{
		HealthCheckInterval:   cfg.Lifecycle.HealthCheckInterval,
		HealthCheckTimeout:    cfg.Lifecycle.HealthCheckTimeout,
		MaxHealthCheckRetries: cfg.Lifecycle.MaxHealthCheckRetries,
		ShutdownTimeout:       cfg.Lifecycle.ShutdownTimeout,
		AutoRestart:           cfg.Lifecycle.AutoRestart,
	})
	lm.SetMetrics(metrics)

	k.backend = workspace.NewBackend(
		k.runtime,
		ports.NewManager(portStore, cfg.PortRange()),
		lm,
		syncer,
		k.bus,
		workspace.BackendConfig{
			DeleteStopTimeout: cfg.Lifecycle.DeleteStopTimeout,
			WorkingDir:        cfg.Sync.TargetDir,
			HookTimeout:       cfg.Lifecycle.HookTimeout,
			NetworkPrefix:     networkPrefix(cfg),
		},
	)
	k.backend.SetHostShell(shell.NewHost())
	k.backend.SetMetrics(metrics)
	// Monitors are stopped before the bus so no crash event is published
	// into a stopped bus.
	k.cleanup = append(k.cleanup, k.backend.Close)

	k.workspace = workspace.NewService(store, k.backend, git.NewWorktreeManager(), workspace.Config{
		DefaultImage:            cfg.DefaultImage,
		DefaultResourceClass:    domain.ResourceClass(cfg.DefaultResourceClass),
		DefaultIdleTimeout:      cfg.Lifecycle.DefaultIdleTimeout,
		DefaultShutdownBehavior: domain.ShutdownBehavior(cfg.Lifecycle.DefaultShutdown),
		WatchInterval:           cfg.Lifecycle.IdleCheckInterval,
	})

	log.Debug().
		Str("data_dir", cfg.DataDir).
		Int("ports_start", cfg.Ports.Start).
		Int("ports_end", cfg.Ports.End).
		Msg("kernel wired")
	return nil
}

// Close releases everything the kernel opened, in reverse order.
func (k *Kernel) Close() {
	if k == nil {
		return
	}
	for i := len(k.cleanup) - 1; i >= 0; i-- {
		k.cleanup[i]()
	}
	k.cleanup = nil
}

// Context returns ctx carrying the kernel logger.
func (k *Kernel) Context(ctx context.Context) context.Context {
	return zerowrap.WithCtx(ctx, k.log)
}

// Logger returns the kernel logger.
func (k *Kernel) Logger() zerowrap.Logger { return k.log }

// Config returns the loaded configuration.
func (k *Kernel) Config() Config { return k.cfg }

// Workspaces returns the workspace service.
func (k *Kernel) Workspaces() in.WorkspaceService { return k.workspace }

// Ping checks that the container runtime is reachable and logs its version.
func (k *Kernel) Ping(ctx context.Context) error {
	if err := k.runtime.Ping(ctx); err != nil {
		return err
	}
	version, err := k.runtime.Version(ctx)
	if err != nil {
		k.log.Warn().Err(err).Msg("failed to read container runtime version")
		return nil
	}
	k.log.Info().Str("runtime_version", version).Msg("container runtime reachable")
	return nil
}

func networkPrefix(cfg Config) string {
	if !cfg.Runtime.NetworkPerWorkspace {
		return ""
	}
	return cfg.Runtime.ContainerPrefix
}
