package app

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/bnema/zerowrap"
	"golang.org/x/sys/unix"

	"github.com/nexuslab/nexus/internal/usecase/workspace"
)

const (
	pidFileAttempts = 3
	pidFileGrace    = 2 * time.Second
)

// Serve resumes crash monitoring for every running workspace and reaps idle
// workspaces until ctx is done or SIGINT/SIGTERM is received.
func Serve(ctx context.Context, configPath string) error {
	k, err := NewKernel(configPath)
	if err != nil {
		return err
	}
	defer k.Close()

	log := k.Logger()
	ctx = k.Context(ctx)
	log.Info().
		Str(zerowrap.FieldLayer, "app").
		Str(zerowrap.FieldComponent, "serve").
		Str("data_dir", k.Config().DataDir).
		Msg("starting nexus serve")

	pidFile := pidFilePath(k.Config().DataDir)
	if err := createPidFile(pidFile); err != nil {
		return err
	}
	defer removePidFile(pidFile, log)

	if err := k.Ping(ctx); err != nil {
		return err
	}

	reconciled, err := k.Workspaces().Reconcile(ctx)
	if err != nil {
		return log.WrapErr(err, "failed to reconcile workspaces")
	}
	log.Info().Int("workspaces", len(reconciled)).Msg("workspaces reconciled")

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	reaper := workspace.NewIdleReaper(k.Workspaces(), k.Config().Lifecycle.IdleCheckInterval)
	reaper.Start(ctx)
	defer reaper.Stop()

	if err := k.Workspaces().Watch(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	log.Info().
		Str(zerowrap.FieldLayer, "app").
		Str(zerowrap.FieldComponent, "serve").
		Msg("shutting down")
	return nil
}

// createPidFile records the current pid, creating the file exclusively. A
// file naming a live process means another serve already owns the data
// directory; any other existing file is replaced.
func createPidFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("failed to create pid file directory: %w", err)
	}

	for attempt := 0; attempt < pidFileAttempts; attempt++ {
		f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
		if err == nil {
			_, writeErr := f.WriteString(strconv.Itoa(os.Getpid()))
			closeErr := f.Close()
			if writeErr != nil || closeErr != nil {
				_ = os.Remove(path)
				return fmt.Errorf("failed to write pid file: %w", errors.Join(writeErr, closeErr))
			}
			return nil
		}
		if !errors.Is(err, fs.ErrExist) {
			return fmt.Errorf("failed to create pid file: %w", err)
		}

		content, readErr := os.ReadFile(path)
		if readErr != nil {
			if errors.Is(readErr, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("failed to read pid file: %w", readErr)
		}
		pid, ok := parsePid(content)
		if ok && processAlive(pid) {
			return fmt.Errorf("nexus serve already running (pid %d)", pid)
		}
		if !ok && pidFileFresh(path) {
			// Its owner may still be writing the pid.
			return fmt.Errorf("pid file %s is being created by another process", path)
		}
		removeStalePidFile(path, content)
	}
	return fmt.Errorf("failed to create pid file %s: contended", path)
}

func pidFileFresh(path string) bool {
	info, err := os.Stat(path)
	return err == nil && time.Since(info.ModTime()) < pidFileGrace
}

// removeStalePidFile removes path only if it still holds content, leaving a
// file another serve wrote in between.
func removeStalePidFile(path string, content []byte) {
	current, err := os.ReadFile(path)
	if err != nil || !bytes.Equal(current, content) {
		return
	}
	_ = os.Remove(path)
}

func removePidFile(path string, log zerowrap.Logger) {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		log.Warn().Err(err).Str("pid_file", path).Msg("failed to remove PID file")
	}
}

func parsePid(data []byte) (int, bool) {
	pid, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil || pid <= 0 {
		return 0, false
	}
	return pid, true
}

func processAlive(pid int) bool {
	err := unix.Kill(pid, 0)
	return err == nil || errors.Is(err, unix.EPERM)
}
