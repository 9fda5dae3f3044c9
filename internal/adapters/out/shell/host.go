// Package shell runs workspace hook scripts on the host.
package shell

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"time"

	"github.com/bnema/zerowrap"

	"github.com/nexuslab/nexus/internal/domain"
)

// waitDelay bounds how long output pipes are drained after ctx kills the
// shell, since a background child may still hold them open.
const waitDelay = time.Second

// Host implements out.HostShell with /bin/sh.
type Host struct {
	shell string
}

// NewHost creates a host shell runner.
func NewHost() *Host {
	return &Host{shell: "/bin/sh"}
}

// RunScript runs script with sh -c in dir. A script that exits non-zero is
// reported through ExecResult.ExitCode, not as an error; errors mean the
// script could not run or ctx ended first.
func (h *Host) RunScript(ctx context.Context, dir, script string) (*domain.ExecResult, error) {
	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:   "adapter",
		zerowrap.FieldAdapter: "shell",
		zerowrap.FieldPath:    dir,
	})
	log := zerowrap.FromCtx(ctx)

	cmd := exec.CommandContext(ctx, h.shell, "-c", script) // #nosec G204 -- hook scripts come from the workspace config
	cmd.Dir = dir
	cmd.WaitDelay = waitDelay
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	var exitErr *exec.ExitError
	if err != nil && !errors.As(err, &exitErr) {
		return nil, err
	}

	res := &domain.ExecResult{
		ExitCode: cmd.ProcessState.ExitCode(),
		Stdout:   stdout.Bytes(),
		Stderr:   stderr.Bytes(),
	}
	log.Debug().Int("exit_code", res.ExitCode).Msg("host script finished")
	return res, nil
}
