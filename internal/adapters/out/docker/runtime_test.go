package docker

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/docker/docker/api/types/filters"
	"github.com/docker/docker/client"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexuslab/nexus/internal/domain"
)

func newRuntimeForHTTPServer(t *testing.T, server *httptest.Server, opts Options) *Runtime {
	t.Helper()

	host := strings.TrimPrefix(server.URL, "http://")
	cli, err := client.NewClientWithOpts(client.WithHost("tcp://"+host), client.WithVersion("1.41"), client.WithHTTPClient(server.Client()))
	require.NoError(t, err)

	return NewRuntimeWithClient(cli, opts)
}

func TestRuntime_InspectContainer_MapsState(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/v1.41/containers/abc123/json", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"Id":"abc123",
			"Name":"/nexus-demo",
			"State":{
				"Status":"exited","ExitCode":137,
				"StartedAt":"2025-01-01T10:00:00.5Z","FinishedAt":"2025-01-01T11:00:00Z",
				"Health":{"Status":"unhealthy","FailingStreak":3,"Log":[]}
			},
			"Config":{"Image":"ubuntu:22.04","Labels":{"nexus.workspace":"ws-1"}},
			"NetworkSettings":{"Ports":{"3000/tcp":[{"HostIp":"0.0.0.0","HostPort":"32801"}]}}
		}`))
	}))
	defer server.Close()

	runtime := newRuntimeForHTTPServer(t, server, Options{})
	info, err := runtime.InspectContainer(context.Background(), "abc123")
	require.NoError(t, err)

	assert.Equal(t, "abc123", info.ID)
	assert.Equal(t, "nexus-demo", info.Name)
	assert.Equal(t, domain.ContainerStateExited, info.State)
	assert.Equal(t, domain.HealthUnhealthy, info.Health)
	assert.Equal(t, 137, info.ExitCode)
	assert.Equal(t, time.Date(2025, 1, 1, 11, 0, 0, 0, time.UTC), info.FinishedAt.UTC())
	assert.Equal(t, "ubuntu:22.04", info.Image)
	assert.Equal(t, "ws-1", info.Labels[domain.LabelWorkspace])
	require.Len(t, info.Ports, 1)
	assert.Equal(t, 3000, info.Ports[0].ContainerPort)
	assert.Equal(t, 32801, info.Ports[0].HostPort)
	assert.False(t, info.Running())
}

func TestRuntime_InspectContainer_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message":"No such container: ghost"}`))
	}))
	defer server.Close()

	runtime := newRuntimeForHTTPServer(t, server, Options{})
	_, err := runtime.InspectContainer(context.Background(), "ghost")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrContainer))

	var derr *domain.Error
	require.True(t, errors.As(err, &derr))
	assert.Equal(t, true, derr.Context["notFound"])
}

func TestRuntime_CreateContainer_BuildsRequest(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1.41/containers/create", r.URL.Path)
		assert.Equal(t, "nexus-demo", r.URL.Query().Get("name"))

		var body struct {
			Image        string
			Env          []string
			WorkingDir   string
			Labels       map[string]string
			ExposedPorts map[string]struct{}
			Healthcheck  *struct{ Test []string }
			HostConfig   struct {
				NanoCPUs     int64 `json:"NanoCpus"`
				Memory       int64
				PortBindings map[string][]struct{ HostIP, HostPort string }
				Mounts       []struct {
					Type, Source, Target string
					ReadOnly             bool
				}
			}
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))

		assert.Equal(t, "ubuntu:22.04", body.Image)
		assert.Equal(t, []string{"FOO=bar"}, body.Env)
		assert.Equal(t, "/workspace", body.WorkingDir)
		assert.Equal(t, "ws-1", body.Labels[domain.LabelWorkspace])
		assert.Contains(t, body.ExposedPorts, "3000/tcp")
		assert.Equal(t, "32801", body.HostConfig.PortBindings["3000/tcp"][0].HostPort)
		assert.EqualValues(t, 2_000_000_000, body.HostConfig.NanoCPUs)
		assert.EqualValues(t, 4*1024*1024*1024, body.HostConfig.Memory)
		require.Len(t, body.HostConfig.Mounts, 1)
		assert.Equal(t, "volume", body.HostConfig.Mounts[0].Type)
		assert.True(t, body.HostConfig.Mounts[0].ReadOnly)
		require.NotNil(t, body.Healthcheck)
		assert.Equal(t, []string{"CMD-SHELL", "curl -f localhost:3000"}, body.Healthcheck.Test)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"Id":"abc123","Warnings":[]}`))
	}))
	defer server.Close()

	runtime := newRuntimeForHTTPServer(t, server, Options{})
	id, err := runtime.CreateContainer(context.Background(), &domain.ContainerSpec{
		Name:       "demo",
		Image:      "ubuntu:22.04",
		Env:        map[string]string{"FOO": "bar"},
		WorkingDir: "/workspace",
		Labels:     map[string]string{domain.LabelWorkspace: "ws-1"},
		Ports: []domain.PortMapping{
			{Name: "main", Protocol: domain.ProtocolTCP, ContainerPort: 3000, HostPort: 32801},
		},
		Volumes: []domain.VolumeConfig{
			{Type: domain.VolumeNamed, Source: "cache", Target: "/cache", ReadOnly: true},
		},
		Resources:   domain.ResourceMedium.Resources(),
		HealthCheck: &domain.HealthCheckConfig{Command: []string{"curl -f localhost:3000"}, Retries: 3},
	})
	require.NoError(t, err)
	assert.Equal(t, "abc123", id)
}

func TestRuntime_StopContainer_PassesTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1.41/containers/abc123/stop", r.URL.Path)
		assert.Equal(t, "5", r.URL.Query().Get("t"))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	runtime := newRuntimeForHTTPServer(t, server, Options{})
	require.NoError(t, runtime.StopContainer(context.Background(), "abc123", 5*time.Second))
}

func TestRuntime_SlowDaemonTimesOut(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	runtime := newRuntimeForHTTPServer(t, server, Options{Timeout: 30 * time.Millisecond})

	start := time.Now()
	err := runtime.StartContainer(context.Background(), "abc123")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrRuntimeDaemon))
	assert.True(t, domain.IsRetryable(err))
	assert.Less(t, time.Since(start), time.Second)
}

func TestRuntime_Ping_UnreachableDaemon(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	runtime := newRuntimeForHTTPServer(t, server, Options{Timeout: time.Second})
	server.Close()

	err := runtime.Ping(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrRuntimeUnavailable))
}

func TestRuntime_Version(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1.41/version", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"Version":"28.0.1","ApiVersion":"1.48"}`))
	}))
	defer server.Close()

	runtime := newRuntimeForHTTPServer(t, server, Options{})
	version, err := runtime.Version(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "28.0.1", version)
}

func TestRuntime_GetContainerLogs_Demultiplexes(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1.41/containers/abc123/logs", r.URL.Path)
		assert.Equal(t, "50", r.URL.Query().Get("tail"))
		assert.Equal(t, "1", r.URL.Query().Get("stdout"))
		assert.Equal(t, "1", r.URL.Query().Get("stderr"))

		_, _ = w.Write(frameDockerStream(1, []byte("booting\n")))
		_, _ = w.Write(frameDockerStream(2, []byte("warning\n")))
	}))
	defer server.Close()

	runtime := newRuntimeForHTTPServer(t, server, Options{})
	logs, err := runtime.GetContainerLogs(context.Background(), "abc123", domain.LogsOptions{Tail: 50})
	require.NoError(t, err)
	assert.Equal(t, "booting\nwarning\n", logs)
}

func TestRuntime_ListContainers_FiltersByLabel(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1.41/containers/json", r.URL.Path)
		assert.Equal(t, "1", r.URL.Query().Get("all"))

		parsed, err := filters.FromJSON(r.URL.Query().Get("filters"))
		require.NoError(t, err)
		assert.Equal(t, []string{"nexus.managed=true"}, parsed.Get("label"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{
			"Id":"abc123","Names":["/nexus-demo"],"Image":"ubuntu:22.04","State":"running",
			"Labels":{"nexus.managed":"true"},
			"Ports":[{"PrivatePort":3000,"PublicPort":32801,"Type":"tcp"},{"PrivatePort":9229,"Type":"tcp"}]
		}]`))
	}))
	defer server.Close()

	runtime := newRuntimeForHTTPServer(t, server, Options{})
	list, err := runtime.ListContainers(context.Background(), map[string]string{domain.LabelManaged: "true"})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "nexus-demo", list[0].Name)
	assert.Equal(t, domain.ContainerStateRunning, list[0].State)
	require.Len(t, list[0].Ports, 1)
	assert.Equal(t, 32801, list[0].Ports[0].HostPort)
}

func TestRuntime_CreateNetwork_LabelsManaged(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1.41/networks/create", r.URL.Path)

		var body struct {
			Name   string
			Driver string
			Labels map[string]string
		}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "nexus-demo-net", body.Name)
		assert.Equal(t, "bridge", body.Driver)
		assert.Equal(t, "true", body.Labels[domain.LabelManaged])
		assert.Equal(t, "ws-1", body.Labels[domain.LabelWorkspace])

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"Id":"n1","Warning":""}`))
	}))
	defer server.Close()

	runtime := newRuntimeForHTTPServer(t, server, Options{})
	id, err := runtime.CreateNetwork(context.Background(), "nexus-demo-net", map[string]string{domain.LabelWorkspace: "ws-1"})
	require.NoError(t, err)
	assert.Equal(t, "n1", id)
}

func TestRuntime_RemoveNetwork_MissingIsNotAnError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/v1.41/networks/n1", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message":"network n1 not found"}`))
	}))
	defer server.Close()

	runtime := newRuntimeForHTTPServer(t, server, Options{})
	assert.NoError(t, runtime.RemoveNetwork(context.Background(), "n1"))
}

func TestHealthConfig(t *testing.T) {
	assert.Nil(t, healthConfig(nil))
	assert.Nil(t, healthConfig(&domain.HealthCheckConfig{}))

	hc := healthConfig(&domain.HealthCheckConfig{Command: []string{"pg_isready", "-q"}, Retries: 2, Interval: time.Second})
	require.NotNil(t, hc)
	assert.Equal(t, []string{"CMD", "pg_isready", "-q"}, hc.Test)
	assert.Equal(t, 2, hc.Retries)
	assert.Equal(t, time.Second, hc.Interval)
}
