package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestError_IsMatchesByKind(t *testing.T) {
	err := fmt.Errorf("saving: %w", NewWorkspaceNotFoundError("demo", nil))

	assert.True(t, errors.Is(err, ErrWorkspaceNotFound))
	assert.False(t, errors.Is(err, ErrWorkspaceAlreadyExists))

	e, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, "WS001", e.Code())
	assert.Equal(t, 404, e.StatusCode())
	assert.Equal(t, "demo", e.Context["workspaceName"])
}

func TestError_UnwrapsCause(t *testing.T) {
	err := NewStateCorruptionError("/tmp/foo.json", "invalid JSON", io.ErrUnexpectedEOF)

	assert.True(t, errors.Is(err, io.ErrUnexpectedEOF))
	assert.True(t, errors.Is(err, ErrStateCorruption))
	assert.Contains(t, err.Error(), "ST001")
	assert.Contains(t, err.Error(), "invalid JSON")
}

func TestError_RetryableFlags(t *testing.T) {
	tests := []struct {
		err       error
		retryable bool
		code      string
	}{
		{NewWorkspaceNotFoundError("x", nil), false, "WS001"},
		{NewWorkspaceAlreadyExistsError("x", nil), false, "WS002"},
		{NewWorkspaceStartError("x", nil), true, "WS003"},
		{NewWorkspaceInvalidNameError("x", "bad", nil), false, "WS004"},
		{NewWorkspaceInvalidTransitionError("x", StatusStopped, StatusDestroyed), false, "WS005"},
		{NewRuntimeDaemonError("boom", nil), true, "BE001"},
		{NewContainerError("c", "boom", nil), true, "BE002"},
		{NewRuntimeUnavailableError("docker", nil), true, "BE003"},
		{NewPortAllocationError(1, "taken", nil), true, "PT001"},
		{NewPortExhaustedError(nil), false, "PT002"},
		{NewResourceExhaustedError("cpu", nil), true, "RS001"},
		{NewStateCorruptionError("p", "r", nil), false, "ST001"},
		{NewStateLockError("p", nil), true, "ST002"},
		{NewGitWorktreeError("add", "m", nil), false, "GT001"},
		{NewPermissionDeniedError("a", nil), false, "AU001"},
		{NewAuthenticationError("m", nil), false, "AU002"},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.retryable, IsRetryable(tt.err))
			e, ok := AsError(tt.err)
			require.True(t, ok)
			assert.Equal(t, tt.code, e.Code())
		})
	}

	assert.False(t, IsRetryable(errors.New("plain")))
	assert.False(t, IsRetryable(nil))
}

func TestError_MarshalJSON(t *testing.T) {
	err := NewWorkspaceInvalidTransitionError("demo", StatusStopped, StatusDestroyed)

	data, mErr := json.Marshal(err)
	require.NoError(t, mErr)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "WorkspaceInvalidTransition", decoded["name"])
	assert.Equal(t, "WS005", decoded["code"])
	assert.Equal(t, float64(409), decoded["statusCode"])
	assert.Equal(t, false, decoded["retryable"])
	ctx := decoded["context"].(map[string]any)
	assert.Equal(t, "stopped", ctx["from"])
	assert.Equal(t, "destroyed", ctx["to"])
}

func TestError_WithContextCopies(t *testing.T) {
	base := NewContainerError("ctr-1", "boom", nil)
	enriched := base.WithContext("workspaceName", "demo")

	assert.Equal(t, "demo", enriched.Context["workspaceName"])
	assert.NotContains(t, base.Context, "workspaceName")
	assert.True(t, errors.Is(enriched, ErrContainer))
}

func TestErrorKind_String(t *testing.T) {
	assert.Equal(t, "StateLock", KindStateLock.String())
	assert.Equal(t, "ErrorKind(0)", ErrorKind(0).String())
}

func TestIsContainerGone(t *testing.T) {
	gone := NewContainerError("c1", "failed to inspect container", io.EOF).WithContext("notFound", true)

	assert.True(t, IsContainerGone(fmt.Errorf("delete: %w", gone)))
	assert.False(t, IsContainerGone(NewContainerError("c1", "failed to stop container", nil)))
	assert.False(t, IsContainerGone(NewRuntimeDaemonError("daemon error", nil)))
	assert.False(t, IsContainerGone(errors.New("plain")))
}
