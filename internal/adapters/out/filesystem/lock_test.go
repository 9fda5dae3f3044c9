package filesystem

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLock(t *testing.T) {
	pid, at, ok := parseLock("1234\n1700000000000")
	require.True(t, ok)
	assert.Equal(t, 1234, pid)
	assert.Equal(t, int64(1700000000000), at.UnixMilli())

	for _, bad := range []string{"", "1234", "abc\n1", "1\nxyz"} {
		_, _, ok := parseLock(bad)
		assert.False(t, ok, "content %q", bad)
	}
}

func TestProcessAlive(t *testing.T) {
	assert.True(t, processAlive(os.Getpid()))
	assert.False(t, processAlive(0))
	assert.False(t, processAlive(-1))
	assert.False(t, processAlive(999999999))
}

func TestAcquireLock_ReleaseOnlyOwnMarker(t *testing.T) {
	path := filepath.Join(t.TempDir(), "demo.lock")

	lock, err := acquireLock(context.Background(), path, DefaultLockOptions())
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, lock.token, string(data))

	// Replace the marker as if another process broke and retook it.
	foreign := fmt.Sprintf("%d\n%d", os.Getpid(), time.Now().UnixMilli()+1)
	require.NoError(t, os.WriteFile(path, []byte(foreign), 0600))

	require.NoError(t, lock.release())
	data, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, foreign, string(data))
}

func TestAcquireLock_UnwrittenMarkerIsNotBrokenEarly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "demo.lock")
	require.NoError(t, os.WriteFile(path, nil, 0600))

	opts := LockOptions{Timeout: 80 * time.Millisecond, StaleAfter: time.Minute, RetryInterval: 10 * time.Millisecond}
	_, err := acquireLock(context.Background(), path, opts)
	require.Error(t, err)

	old := time.Now().Add(-2 * time.Minute)
	require.NoError(t, os.Chtimes(path, old, old))

	lock, err := acquireLock(context.Background(), path, opts)
	require.NoError(t, err)
	require.NoError(t, lock.release())
}

func TestAcquireLock_ContextCancelled(t *testing.T) {
	path := filepath.Join(t.TempDir(), "demo.lock")
	held, err := acquireLock(context.Background(), path, DefaultLockOptions())
	require.NoError(t, err)
	defer func() { _ = held.release() }()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = acquireLock(ctx, path, DefaultLockOptions())
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}
