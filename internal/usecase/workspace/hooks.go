package workspace

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/bnema/zerowrap"

	"github.com/nexuslab/nexus/internal/domain"
)

// Hook phases, as they appear in logs and error context.
const (
	hookPreCreate  = "preCreate"
	hookPostCreate = "postCreate"
	hookPreStart   = "preStart"
	hookPostStart  = "postStart"
	hookPreStop    = "preStop"
	hookPostStop   = "postStop"
)

var errNoHostShell = errors.New("no host shell configured")

// hookTarget says where the scripts of a phase run. An empty containerID
// runs them on the host in dir.
type hookTarget struct {
	containerID string
	dir         string
}

// runHooks runs the scripts of one phase in order and stops at the first
// failure. The whole phase shares one HookTimeout budget.
func (b *Backend) runHooks(ctx context.Context, phase string, scripts []string, target hookTarget) error {
	if len(scripts) == 0 {
		return nil
	}
	log := zerowrap.FromCtx(ctx)

	ctx, cancel := context.WithTimeout(ctx, b.config.HookTimeout)
	defer cancel()

	for i, script := range scripts {
		res, err := b.runHook(ctx, script, target)
		if err == nil && res.ExitCode != 0 {
			err = fmt.Errorf("exit code %d: %s", res.ExitCode, bytes.TrimSpace(res.Stderr))
		}
		if err != nil {
			if errors.Is(ctx.Err(), context.DeadlineExceeded) {
				err = fmt.Errorf("timed out after %s: %w", b.config.HookTimeout, err)
			}
			return domain.NewContainerError(target.containerID, fmt.Sprintf("%s hook %d of %d failed", phase, i+1, len(scripts)), err).
				WithContext("hook", phase)
		}
	}

	log.Info().Str("hook", phase).Int(zerowrap.FieldCount, len(scripts)).Msg("hooks completed")
	return nil
}

func (b *Backend) runHook(ctx context.Context, script string, target hookTarget) (*domain.ExecResult, error) {
	if target.containerID != "" {
		return b.runtime.ExecInContainer(ctx, target.containerID, []string{"sh", "-c", script}, domain.ExecOptions{
			WorkingDir: b.config.WorkingDir,
		})
	}
	if b.host == nil {
		return nil, errNoHostShell
	}
	return b.host.RunScript(ctx, target.dir, script)
}
