package workspace

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/bnema/zerowrap"

	"github.com/nexuslab/nexus/internal/boundaries/in"
	"github.com/nexuslab/nexus/internal/domain"
)

// DefaultIdleSweepInterval is how often running workspaces are checked for
// an elapsed idle timeout.
const DefaultIdleSweepInterval = time.Minute

var errSweepInProgress = errors.New("idle sweep already in progress")

// IdleReaper applies the shutdown behavior of running workspaces whose
// idle timeout elapsed since their last activity. A zero IdleTimeout never
// expires.
type IdleReaper struct {
	workspaces in.WorkspaceService
	interval   time.Duration
	stopCh     chan struct{}
	stopOnce   sync.Once
	loopDone   chan struct{}
	running    atomic.Bool
	now        func() time.Time
}

// NewIdleReaper creates a reaper sweeping every interval.
func NewIdleReaper(workspaces in.WorkspaceService, interval time.Duration) *IdleReaper {
	if interval <= 0 {
		interval = DefaultIdleSweepInterval
	}
	return &IdleReaper{
		workspaces: workspaces,
		interval:   interval,
		stopCh:     make(chan struct{}),
		now:        time.Now,
	}
}

// Start begins the sweep loop. Call it at most once.
func (r *IdleReaper) Start(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	r.loopDone = make(chan struct{})
	go func() {
		defer close(r.loopDone)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-r.stopCh:
				return
			case <-ticker.C:
				if _, err := r.Sweep(ctx); err != nil && !errors.Is(err, errSweepInProgress) {
					log := zerowrap.FromCtx(ctx)
					log.Warn().Err(err).Msg("idle sweep failed")
				}
			}
		}
	}()
}

// Stop stops the sweep loop and waits for an in-flight sweep to finish.
func (r *IdleReaper) Stop() {
	r.stopOnce.Do(func() { close(r.stopCh) })
	if r.loopDone != nil {
		<-r.loopDone
	}
}

// Sweep shuts down every expired workspace once and returns their names.
// A failure on one workspace does not stop the sweep.
func (r *IdleReaper) Sweep(ctx context.Context) ([]string, error) {
	if !r.running.CompareAndSwap(false, true) {
		return nil, errSweepInProgress
	}
	defer r.running.Store(false)

	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:   "usecase",
		zerowrap.FieldUseCase: "IdleSweep",
	})
	log := zerowrap.FromCtx(ctx)

	all, err := r.workspaces.List(ctx)
	if err != nil {
		return nil, err
	}

	now := r.now()
	var reaped []string
	for _, ws := range all {
		if !r.expired(ws, now) {
			continue
		}

		behavior := ws.Config.ShutdownBehavior
		switch behavior {
		case domain.ShutdownDestroy:
			err = r.workspaces.Delete(ctx, ws.Name)
		default:
			// Pausing is not supported by the container backend; it stops.
			_, err = r.workspaces.Stop(ctx, ws.Name)
		}
		if err != nil {
			log.Warn().Err(err).Str("workspace", ws.Name).Msg("failed to shut down idle workspace")
			continue
		}

		log.Info().
			Str("workspace", ws.Name).
			Str("behavior", string(behavior)).
			Dur("idle_timeout", ws.Config.IdleTimeout).
			Msg("idle workspace shut down")
		reaped = append(reaped, ws.Name)
	}
	return reaped, nil
}

func (r *IdleReaper) expired(ws *domain.Workspace, now time.Time) bool {
	if ws.Status != domain.StatusRunning || ws.Config.IdleTimeout <= 0 {
		return false
	}
	last := ws.LastActiveAt
	if last.IsZero() {
		last = ws.UpdatedAt
	}
	return now.Sub(last) >= ws.Config.IdleTimeout
}
