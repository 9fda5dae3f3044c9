package filesystem

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sys/unix"

	"github.com/nexuslab/nexus/internal/domain"
)

// LockOptions bounds lock acquisition.
type LockOptions struct {
	// Timeout is the overall time spent retrying before StateLock is raised.
	Timeout time.Duration
	// StaleAfter is the age after which a marker is considered abandoned.
	StaleAfter time.Duration
	// RetryInterval is the backoff between attempts under contention.
	RetryInterval time.Duration
}

// DefaultLockOptions returns the stock lock timings.
func DefaultLockOptions() LockOptions {
	return LockOptions{
		Timeout:       5 * time.Second,
		StaleAfter:    30 * time.Second,
		RetryInterval: 50 * time.Millisecond,
	}
}

func (o LockOptions) withDefaults() LockOptions {
	d := DefaultLockOptions()
	if o.Timeout <= 0 {
		o.Timeout = d.Timeout
	}
	if o.StaleAfter <= 0 {
		o.StaleAfter = d.StaleAfter
	}
	if o.RetryInterval <= 0 {
		o.RetryInterval = d.RetryInterval
	}
	return o
}

// fileLock is an exclusive marker file holding "<pid>\n<unix millis>".
type fileLock struct {
	path  string
	token string
}

// acquireLock creates the marker at path exclusively, breaking markers that
// are older than StaleAfter or whose owner process is gone.
func acquireLock(ctx context.Context, path string, opts LockOptions) (*fileLock, error) {
	deadline := time.Now().Add(opts.Timeout)

	for {
		token := fmt.Sprintf("%d\n%d", os.Getpid(), time.Now().UnixMilli())
		f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0600)
		if err == nil {
			_, writeErr := f.WriteString(token)
			closeErr := f.Close()
			if writeErr != nil || closeErr != nil {
				_ = os.Remove(path)
				return nil, domain.NewStateLockError(path, errors.Join(writeErr, closeErr))
			}
			return &fileLock{path: path, token: token}, nil
		}

		if !errors.Is(err, fs.ErrExist) {
			return nil, domain.NewStateLockError(path, err)
		}

		if content, stale := inspectLock(path, opts.StaleAfter); stale {
			breakStaleLock(path, content)
			continue
		}

		if time.Now().After(deadline) {
			return nil, domain.NewStateLockError(path, fmt.Errorf("timed out after %s", opts.Timeout))
		}

		select {
		case <-ctx.Done():
			return nil, domain.NewStateLockError(path, ctx.Err())
		case <-time.After(opts.RetryInterval):
		}
	}
}

// release removes the marker if it is still the one this handle wrote.
func (l *fileLock) release() error {
	data, err := os.ReadFile(l.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return err
	}
	if string(data) != l.token {
		return nil
	}
	if err := os.Remove(l.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

// inspectLock reports whether the marker at path is stale, along with the
// content the decision was based on.
func inspectLock(path string, staleAfter time.Duration) (string, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		// Vanished between our create attempt and now: retry immediately.
		return "", errors.Is(err, fs.ErrNotExist)
	}
	content := string(data)

	pid, acquiredAt, ok := parseLock(content)
	if !ok {
		// The owner may still be writing its marker; only the file age counts.
		info, statErr := os.Stat(path)
		if statErr != nil {
			return content, errors.Is(statErr, fs.ErrNotExist)
		}
		return content, time.Since(info.ModTime()) > staleAfter
	}

	if time.Since(acquiredAt) > staleAfter {
		return content, true
	}
	return content, !processAlive(pid)
}

// breakStaleLock removes the marker only if it still holds the content that
// was judged stale, so a fresh marker written in between is left alone.
func breakStaleLock(path, content string) {
	current, err := os.ReadFile(path)
	if err != nil || string(current) != content {
		return
	}
	_ = os.Remove(path)
}

func parseLock(content string) (int, time.Time, bool) {
	pidStr, tsStr, found := strings.Cut(strings.TrimSpace(content), "\n")
	if !found {
		return 0, time.Time{}, false
	}
	pid, err := strconv.Atoi(strings.TrimSpace(pidStr))
	if err != nil {
		return 0, time.Time{}, false
	}
	ms, err := strconv.ParseInt(strings.TrimSpace(tsStr), 10, 64)
	if err != nil {
		return 0, time.Time{}, false
	}
	return pid, time.UnixMilli(ms), true
}

// processAlive probes pid with signal 0. EPERM means the process exists but
// belongs to another user.
func processAlive(pid int) bool {
	if pid <= 0 {
		return false
	}
	if pid == os.Getpid() {
		return true
	}
	err := unix.Kill(pid, 0)
	return err == nil || errors.Is(err, unix.EPERM)
}
