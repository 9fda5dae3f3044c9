package docker

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/docker/docker/api/types/container"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexuslab/nexus/internal/domain"
)

// execDaemon answers the three calls of one exec: create, start (hijacked)
// and inspect.
type execDaemon struct {
	t        *testing.T
	exitCode int
	output   []byte

	mu      sync.Mutex
	created container.ExecOptions
}

func (d *execDaemon) request() container.ExecOptions {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.created
}

func (d *execDaemon) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch {
	case r.Method == http.MethodPost && r.URL.Path == "/v1.41/containers/abc123/exec":
		var opts container.ExecOptions
		assert.NoError(d.t, json.NewDecoder(r.Body).Decode(&opts))
		d.mu.Lock()
		d.created = opts
		d.mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"Id":"e1"}`))
	case r.Method == http.MethodPost && r.URL.Path == "/v1.41/exec/e1/start":
		conn, buf, err := w.(http.Hijacker).Hijack()
		if err != nil {
			d.t.Errorf("hijack: %v", err)
			return
		}
		defer conn.Close()
		_, _ = buf.WriteString("HTTP/1.1 101 UPGRADED\r\nContent-Type: application/vnd.docker.raw-stream\r\nConnection: Upgrade\r\nUpgrade: tcp\r\n\r\n")
		_, _ = buf.Write(d.output)
		_ = buf.Flush()
	case r.Method == http.MethodGet && r.URL.Path == "/v1.41/exec/e1/json":
		w.Header().Set("Content-Type", "application/json")
		_, _ = fmt.Fprintf(w, `{"ID":"e1","Running":false,"ExitCode":%d}`, d.exitCode)
	default:
		d.t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		w.WriteHeader(http.StatusNotFound)
	}
}

func TestRuntime_ExecInContainer_PassesOptions(t *testing.T) {
	daemon := &execDaemon{t: t, output: frameDockerStream(1, []byte("/srv/app\n"))}
	server := httptest.NewServer(daemon)
	defer server.Close()

	runtime := newRuntimeForHTTPServer(t, server, Options{})
	res, err := runtime.ExecInContainer(context.Background(), "abc123", []string{"sh", "-c", "pwd"}, domain.ExecOptions{
		User:       "dev",
		WorkingDir: "/srv/app",
		Env:        []string{"CI=1"},
	})
	require.NoError(t, err)

	created := daemon.request()
	assert.Equal(t, "dev", created.User)
	assert.Equal(t, "/srv/app", created.WorkingDir)
	assert.Equal(t, []string{"CI=1"}, created.Env)
	assert.Equal(t, []string{"sh", "-c", "pwd"}, created.Cmd)
	assert.True(t, created.AttachStdout)
	assert.True(t, created.AttachStderr)

	assert.Equal(t, 0, res.ExitCode)
	assert.Equal(t, "/srv/app\n", string(res.Stdout))
	assert.Empty(t, res.Stderr)
}

func TestRuntime_ExecInContainer_ExitCodes(t *testing.T) {
	tests := []struct {
		name       string
		exitCode   int
		output     []byte
		wantStdout string
		wantStderr string
	}{
		{
			name:       "success",
			exitCode:   0,
			output:     frameDockerStream(1, []byte("ok\n")),
			wantStdout: "ok\n",
		},
		{
			name:       "failure keeps both streams",
			exitCode:   3,
			output:     append(frameDockerStream(1, []byte("partial\n")), frameDockerStream(2, []byte("missing file\n"))...),
			wantStdout: "partial\n",
			wantStderr: "missing file\n",
		},
		{
			name:     "killed without output",
			exitCode: 137,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(&execDaemon{t: t, exitCode: tt.exitCode, output: tt.output})
			defer server.Close()

			runtime := newRuntimeForHTTPServer(t, server, Options{})
			res, err := runtime.ExecInContainer(context.Background(), "abc123", []string{"make", "test"}, domain.ExecOptions{})
			require.NoError(t, err)
			assert.Equal(t, tt.exitCode, res.ExitCode)
			assert.Equal(t, tt.wantStdout, string(res.Stdout))
			assert.Equal(t, tt.wantStderr, string(res.Stderr))
		})
	}
}

func TestRuntime_ExecInContainer_MissingContainer(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1.41/containers/abc123/exec", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message":"No such container: abc123"}`))
	}))
	defer server.Close()

	runtime := newRuntimeForHTTPServer(t, server, Options{})
	res, err := runtime.ExecInContainer(context.Background(), "abc123", []string{"true"}, domain.ExecOptions{})
	require.Error(t, err)
	assert.Nil(t, res)
	assert.True(t, errors.Is(err, domain.ErrContainer))
	assert.True(t, domain.IsContainerGone(err))
}

func TestRuntime_ExecInContainer_RejectsEmptyCommand(t *testing.T) {
	r := &Runtime{}

	for _, cmd := range [][]string{nil, {}} {
		result, err := r.ExecInContainer(context.Background(), "abc123", cmd, domain.ExecOptions{})
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrContainer))
		assert.Nil(t, result)
	}
}

func frameDockerStream(streamID byte, payload []byte) []byte {
	frame := make([]byte, 8+len(payload))
	frame[0] = streamID
	binary.BigEndian.PutUint32(frame[4:8], uint32(len(payload)))
	copy(frame[8:], payload)
	return frame
}
