// Package docker implements the container runtime adapter using Docker API.
package docker

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/bnema/zerowrap"
	cerrdefs "github.com/containerd/errdefs"
	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/filters"
	"github.com/docker/docker/api/types/image"
	"github.com/docker/docker/api/types/mount"
	"github.com/docker/docker/api/types/network"
	"github.com/docker/docker/client"
	"github.com/docker/docker/pkg/stdcopy"
	"github.com/docker/go-connections/nat"

	"github.com/nexuslab/nexus/internal/domain"
)

const backendName = "docker"

// Options tunes the runtime adapter.
type Options struct {
	// Timeout bounds every call except image pulls.
	Timeout time.Duration
	// PullTimeout bounds image pulls.
	PullTimeout time.Duration
	// ContainerPrefix is prepended to container names as "<prefix>-<name>".
	ContainerPrefix string
}

// DefaultOptions returns the default runtime options.
func DefaultOptions() Options {
	return Options{
		Timeout:         30 * time.Second,
		PullTimeout:     120 * time.Second,
		ContainerPrefix: "nexus",
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.Timeout <= 0 {
		o.Timeout = d.Timeout
	}
	if o.PullTimeout <= 0 {
		o.PullTimeout = d.PullTimeout
	}
	if o.ContainerPrefix == "" {
		o.ContainerPrefix = d.ContainerPrefix
	}
	return o
}

// Runtime implements the ContainerRuntime interface using Docker API.
type Runtime struct {
	client *client.Client
	opts   Options
}

// NewRuntime creates a new Docker runtime instance.
func NewRuntime(opts Options) (*Runtime, error) {
	cli, err := client.NewClientWithOpts(client.FromEnv, client.WithAPIVersionNegotiation())
	if err != nil {
		return nil, domain.NewRuntimeUnavailableError(backendName, fmt.Errorf("failed to create Docker client: %w", err))
	}

	return &Runtime{
		client: cli,
		opts:   opts.withDefaults(),
	}, nil
}

// NewRuntimeWithClient creates a new Docker runtime instance with a custom client (for testing).
func NewRuntimeWithClient(cli *client.Client, opts Options) *Runtime {
	return &Runtime{
		client: cli,
		opts:   opts.withDefaults(),
	}
}

// ContainerName returns the runtime name of a workspace container.
func (r *Runtime) ContainerName(name string) string {
	return r.opts.ContainerPrefix + "-" + name
}

// Close releases the underlying client.
func (r *Runtime) Close() error {
	return r.client.Close()
}

// call bounds ctx by d.
func (r *Runtime) call(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, d)
}

// mapError converts a Docker client failure into a typed runtime error.
// Calls that address a container surface as ContainerError unless the daemon
// itself is unreachable or the call timed out.
func mapError(ctx context.Context, err error, containerID, message string) error {
	switch {
	case errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded):
		return domain.NewRuntimeDaemonError(message+": timed out", err)
	case client.IsErrConnectionFailed(err):
		return domain.NewRuntimeUnavailableError(backendName, err)
	case containerID != "":
		e := domain.NewContainerError(containerID, message, err)
		if cerrdefs.IsNotFound(err) {
			return e.WithContext("notFound", true)
		}
		return e
	default:
		return domain.NewRuntimeDaemonError(message, err)
	}
}

// CreateContainer creates a new container and returns its id.
func (r *Runtime) CreateContainer(ctx context.Context, spec *domain.ContainerSpec) (string, error) {
	name := r.ContainerName(spec.Name)
	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:   "adapter",
		zerowrap.FieldAdapter: "docker",
		zerowrap.FieldAction:  "CreateContainer",
		"container_name":      name,
		"image":               spec.Image,
	})
	log := zerowrap.FromCtx(ctx)

	exposedPorts, portBindings := portsToNat(spec.Ports)

	env := make([]string, 0, len(spec.Env))
	for k, v := range spec.Env {
		env = append(env, k+"="+v)
	}

	containerConfig := &container.Config{
		Image:        spec.Image,
		Env:          env,
		ExposedPorts: exposedPorts,
		WorkingDir:   spec.WorkingDir,
		Cmd:          spec.Cmd,
		Labels:       spec.Labels,
		OpenStdin:    true,
		Healthcheck:  healthConfig(spec.HealthCheck),
	}

	hostConfig := &container.HostConfig{
		PortBindings: portBindings,
		Mounts:       volumesToMounts(spec.Volumes),
		NetworkMode:  container.NetworkMode(spec.NetworkMode),
		Resources:    resources(spec.Resources),
	}

	callCtx, cancel := r.call(ctx, r.opts.Timeout)
	defer cancel()

	resp, err := r.client.ContainerCreate(callCtx, containerConfig, hostConfig, nil, nil, name)
	if err != nil {
		log.Warn().Err(err).Msg("failed to create container")
		return "", mapError(callCtx, err, name, "failed to create container")
	}

	log.Info().Str(zerowrap.FieldEntityID, resp.ID).Msg("container created")
	return resp.ID, nil
}

func portsToNat(ports []domain.PortMapping) (nat.PortSet, nat.PortMap) {
	exposed := make(nat.PortSet)
	bindings := make(nat.PortMap)
	for _, p := range ports {
		proto := string(p.Protocol)
		if proto == "" {
			proto = string(domain.ProtocolTCP)
		}
		port := nat.Port(fmt.Sprintf("%d/%s", p.ContainerPort, proto))
		exposed[port] = struct{}{}
		hostPort := ""
		if p.HostPort > 0 {
			hostPort = strconv.Itoa(p.HostPort)
		}
		bindings[port] = append(bindings[port], nat.PortBinding{HostIP: "0.0.0.0", HostPort: hostPort})
	}
	return exposed, bindings
}

func volumesToMounts(volumes []domain.VolumeConfig) []mount.Mount {
	var mounts []mount.Mount
	for _, v := range volumes {
		t := mount.TypeBind
		switch v.Type {
		case domain.VolumeNamed:
			t = mount.TypeVolume
		case domain.VolumeTmpfs:
			t = mount.TypeTmpfs
		}
		mounts = append(mounts, mount.Mount{
			Type:     t,
			Source:   v.Source,
			Target:   v.Target,
			ReadOnly: v.ReadOnly,
		})
	}
	return mounts
}

func resources(alloc domain.ResourceAllocation) container.Resources {
	var res container.Resources
	if alloc.CPU.Limit > 0 {
		res.NanoCPUs = int64(alloc.CPU.Limit * 1e9)
	}
	if alloc.Memory.Limit > 0 {
		res.Memory = alloc.Memory.Limit
	}
	if alloc.Memory.Swap > 0 {
		res.MemorySwap = alloc.Memory.Swap
	}
	return res
}

func healthConfig(hc *domain.HealthCheckConfig) *container.HealthConfig {
	if hc == nil || len(hc.Command) == 0 {
		return nil
	}
	test := append([]string{"CMD"}, hc.Command...)
	if len(hc.Command) == 1 {
		test = []string{"CMD-SHELL", hc.Command[0]}
	}
	return &container.HealthConfig{
		Test:        test,
		Interval:    hc.Interval,
		Timeout:     hc.Timeout,
		StartPeriod: hc.StartPeriod,
		Retries:     hc.Retries,
	}
}

// StartContainer starts a container.
func (r *Runtime) StartContainer(ctx context.Context, containerID string) error {
	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:    "adapter",
		zerowrap.FieldAdapter:  "docker",
		zerowrap.FieldAction:   "StartContainer",
		zerowrap.FieldEntityID: containerID,
	})
	log := zerowrap.FromCtx(ctx)

	callCtx, cancel := r.call(ctx, r.opts.Timeout)
	defer cancel()

	if err := r.client.ContainerStart(callCtx, containerID, container.StartOptions{}); err != nil {
		return mapError(callCtx, err, containerID, "failed to start container")
	}

	log.Info().Msg("container started")
	return nil
}

// StopContainer stops a container, giving it timeout to exit before it is
// killed. The call itself is bounded by timeout plus the adapter timeout.
func (r *Runtime) StopContainer(ctx context.Context, containerID string, timeout time.Duration) error {
	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:    "adapter",
		zerowrap.FieldAdapter:  "docker",
		zerowrap.FieldAction:   "StopContainer",
		zerowrap.FieldEntityID: containerID,
	})
	log := zerowrap.FromCtx(ctx)

	seconds := int(timeout.Seconds())
	callCtx, cancel := r.call(ctx, timeout+r.opts.Timeout)
	defer cancel()

	if err := r.client.ContainerStop(callCtx, containerID, container.StopOptions{Timeout: &seconds}); err != nil {
		return mapError(callCtx, err, containerID, "failed to stop container")
	}

	log.Info().Int("timeout_seconds", seconds).Msg("container stopped")
	return nil
}

// RemoveContainer removes a container.
func (r *Runtime) RemoveContainer(ctx context.Context, containerID string, force bool) error {
	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:    "adapter",
		zerowrap.FieldAdapter:  "docker",
		zerowrap.FieldAction:   "RemoveContainer",
		zerowrap.FieldEntityID: containerID,
		"force":                force,
	})
	log := zerowrap.FromCtx(ctx)

	callCtx, cancel := r.call(ctx, r.opts.Timeout)
	defer cancel()

	if err := r.client.ContainerRemove(callCtx, containerID, container.RemoveOptions{Force: force}); err != nil {
		return mapError(callCtx, err, containerID, "failed to remove container")
	}

	log.Info().Msg("container removed")
	return nil
}

// InspectContainer inspects a container.
func (r *Runtime) InspectContainer(ctx context.Context, containerID string) (*domain.ContainerInfo, error) {
	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:    "adapter",
		zerowrap.FieldAdapter:  "docker",
		zerowrap.FieldAction:   "InspectContainer",
		zerowrap.FieldEntityID: containerID,
	})

	callCtx, cancel := r.call(ctx, r.opts.Timeout)
	defer cancel()

	resp, err := r.client.ContainerInspect(callCtx, containerID)
	if err != nil {
		return nil, mapError(callCtx, err, containerID, "failed to inspect container")
	}
	if resp.ContainerJSONBase == nil {
		return nil, domain.NewContainerError(containerID, "inspect returned no container", nil)
	}

	info := &domain.ContainerInfo{
		ID:    resp.ID,
		Name:  strings.TrimPrefix(resp.Name, "/"),
		State: domain.ContainerStateUnknown,
	}
	if resp.Config != nil {
		info.Image = resp.Config.Image
		info.Labels = resp.Config.Labels
	}
	if resp.State != nil {
		info.State = domain.ContainerState(resp.State.Status)
		info.ExitCode = resp.State.ExitCode
		info.StartedAt = parseDockerTime(resp.State.StartedAt)
		info.FinishedAt = parseDockerTime(resp.State.FinishedAt)
		if resp.State.Health != nil {
			info.Health = resp.State.Health.Status
		}
	}
	if resp.NetworkSettings != nil {
		info.Ports = natToPorts(resp.NetworkSettings.Ports)
	}

	return info, nil
}

func parseDockerTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil || t.Year() <= 1 {
		return time.Time{}
	}
	return t
}

func natToPorts(pm nat.PortMap) []domain.PortMapping {
	var ports []domain.PortMapping
	for port, bindings := range pm {
		for _, b := range bindings {
			hostPort, err := strconv.Atoi(b.HostPort)
			if err != nil {
				continue
			}
			ports = append(ports, domain.PortMapping{
				Protocol:      domain.Protocol(port.Proto()),
				ContainerPort: port.Int(),
				HostPort:      hostPort,
			})
			break
		}
	}
	return ports
}

// ListContainers lists containers, running or not, carrying every given label.
func (r *Runtime) ListContainers(ctx context.Context, labels map[string]string) ([]*domain.ContainerInfo, error) {
	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:   "adapter",
		zerowrap.FieldAdapter: "docker",
		zerowrap.FieldAction:  "ListContainers",
	})
	log := zerowrap.FromCtx(ctx)

	args := filters.NewArgs()
	for k, v := range labels {
		args.Add("label", k+"="+v)
	}

	callCtx, cancel := r.call(ctx, r.opts.Timeout)
	defer cancel()

	containers, err := r.client.ContainerList(callCtx, container.ListOptions{All: true, Filters: args})
	if err != nil {
		return nil, mapError(callCtx, err, "", "failed to list containers")
	}

	result := make([]*domain.ContainerInfo, 0, len(containers))
	for _, c := range containers {
		name := ""
		if len(c.Names) > 0 {
			name = strings.TrimPrefix(c.Names[0], "/")
		}
		var ports []domain.PortMapping
		for _, p := range c.Ports {
			if p.PublicPort == 0 {
				continue
			}
			ports = append(ports, domain.PortMapping{
				Protocol:      domain.Protocol(p.Type),
				ContainerPort: int(p.PrivatePort),
				HostPort:      int(p.PublicPort),
			})
		}
		result = append(result, &domain.ContainerInfo{
			ID:     c.ID,
			Name:   name,
			Image:  c.Image,
			State:  domain.ContainerState(c.State),
			Ports:  ports,
			Labels: c.Labels,
		})
	}

	log.Debug().Int(zerowrap.FieldCount, len(result)).Msg("containers listed")
	return result, nil
}

// GetContainerLogs returns the combined stdout and stderr of a container.
func (r *Runtime) GetContainerLogs(ctx context.Context, containerID string, opts domain.LogsOptions) (string, error) {
	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:    "adapter",
		zerowrap.FieldAdapter:  "docker",
		zerowrap.FieldAction:   "GetContainerLogs",
		zerowrap.FieldEntityID: containerID,
	})

	logOpts := container.LogsOptions{
		ShowStdout: true,
		ShowStderr: true,
		Timestamps: opts.Timestamps,
	}
	if opts.Tail > 0 {
		logOpts.Tail = strconv.Itoa(opts.Tail)
	}
	if !opts.Since.IsZero() {
		logOpts.Since = strconv.FormatInt(opts.Since.Unix(), 10)
	}

	callCtx, cancel := r.call(ctx, r.opts.Timeout)
	defer cancel()

	logs, err := r.client.ContainerLogs(callCtx, containerID, logOpts)
	if err != nil {
		return "", mapError(callCtx, err, containerID, "failed to get container logs")
	}
	defer logs.Close()

	var buf bytes.Buffer
	if _, err := stdcopy.StdCopy(&buf, &buf, logs); err != nil {
		return "", mapError(callCtx, err, containerID, "failed to read container logs")
	}
	return buf.String(), nil
}

// PullImage pulls an image, bounded by the pull timeout.
func (r *Runtime) PullImage(ctx context.Context, imageRef string) error {
	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:   "adapter",
		zerowrap.FieldAdapter: "docker",
		zerowrap.FieldAction:  "PullImage",
		"image":               imageRef,
	})
	log := zerowrap.FromCtx(ctx)

	log.Info().Msg("pulling image")

	callCtx, cancel := r.call(ctx, r.opts.PullTimeout)
	defer cancel()

	reader, err := r.client.ImagePull(callCtx, imageRef, image.PullOptions{})
	if err != nil {
		return mapError(callCtx, err, "", "failed to pull image "+imageRef)
	}
	defer reader.Close()

	// The pull only completes once the progress stream is drained.
	if _, err := io.Copy(io.Discard, reader); err != nil {
		return mapError(callCtx, err, "", "failed to pull image "+imageRef)
	}

	log.Info().Msg("image pulled")
	return nil
}

// Ping checks if Docker is responsive.
func (r *Runtime) Ping(ctx context.Context) error {
	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:   "adapter",
		zerowrap.FieldAdapter: "docker",
		zerowrap.FieldAction:  "Ping",
	})
	log := zerowrap.FromCtx(ctx)

	callCtx, cancel := r.call(ctx, r.opts.Timeout)
	defer cancel()

	if _, err := r.client.Ping(callCtx); err != nil {
		log.Debug().Err(err).Msg("Docker ping failed")
		return domain.NewRuntimeUnavailableError(backendName, err)
	}
	return nil
}

// Version returns Docker version.
func (r *Runtime) Version(ctx context.Context) (string, error) {
	callCtx, cancel := r.call(ctx, r.opts.Timeout)
	defer cancel()

	version, err := r.client.ServerVersion(callCtx)
	if err != nil {
		return "", mapError(callCtx, err, "", "failed to get Docker version")
	}
	return version.Version, nil
}

// ExecInContainer runs cmd inside a container and collects its output.
func (r *Runtime) ExecInContainer(ctx context.Context, containerID string, cmd []string, opts domain.ExecOptions) (*domain.ExecResult, error) {
	if len(cmd) == 0 {
		return nil, domain.NewContainerError(containerID, "exec command must not be empty", nil)
	}

	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:    "adapter",
		zerowrap.FieldAdapter:  "docker",
		zerowrap.FieldAction:   "ExecInContainer",
		zerowrap.FieldEntityID: containerID,
	})
	log := zerowrap.FromCtx(ctx)

	callCtx, cancel := r.call(ctx, r.opts.Timeout)
	defer cancel()

	created, err := r.client.ContainerExecCreate(callCtx, containerID, container.ExecOptions{
		User:         opts.User,
		WorkingDir:   opts.WorkingDir,
		Env:          opts.Env,
		Cmd:          cmd,
		AttachStdout: true,
		AttachStderr: true,
	})
	if err != nil {
		return nil, mapError(callCtx, err, containerID, "failed to create exec")
	}

	attach, err := r.client.ContainerExecAttach(callCtx, created.ID, container.ExecAttachOptions{})
	if err != nil {
		return nil, mapError(callCtx, err, containerID, "failed to attach exec")
	}
	defer attach.Close()

	stdout, stderr, err := parseExecOutput(attach.Reader)
	if err != nil {
		return nil, mapError(callCtx, err, containerID, "failed to read exec output")
	}

	inspect, err := r.client.ContainerExecInspect(callCtx, created.ID)
	if err != nil {
		return nil, mapError(callCtx, err, containerID, "failed to inspect exec")
	}

	log.Debug().Int("exit_code", inspect.ExitCode).Msg("exec finished")
	return &domain.ExecResult{
		ExitCode: inspect.ExitCode,
		Stdout:   stdout,
		Stderr:   stderr,
	}, nil
}

// parseExecOutput demultiplexes a Docker attach stream.
func parseExecOutput(r io.Reader) ([]byte, []byte, error) {
	var stdout, stderr bytes.Buffer
	if _, err := stdcopy.StdCopy(&stdout, &stderr, r); err != nil {
		return nil, nil, err
	}
	return stdout.Bytes(), stderr.Bytes(), nil
}

// CopyToContainer extracts a tar archive into dstPath inside a container.
func (r *Runtime) CopyToContainer(ctx context.Context, containerID, dstPath string, content io.Reader) error {
	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:    "adapter",
		zerowrap.FieldAdapter:  "docker",
		zerowrap.FieldAction:   "CopyToContainer",
		zerowrap.FieldEntityID: containerID,
		zerowrap.FieldPath:     dstPath,
	})
	log := zerowrap.FromCtx(ctx)

	callCtx, cancel := r.call(ctx, r.opts.PullTimeout)
	defer cancel()

	if err := r.client.CopyToContainer(callCtx, containerID, dstPath, content, container.CopyToContainerOptions{}); err != nil {
		return mapError(callCtx, err, containerID, "failed to copy into container")
	}

	log.Debug().Msg("archive copied into container")
	return nil
}

// CreateNetwork creates a bridge network and returns its id.
func (r *Runtime) CreateNetwork(ctx context.Context, name string, labels map[string]string) (string, error) {
	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:   "adapter",
		zerowrap.FieldAdapter: "docker",
		zerowrap.FieldAction:  "CreateNetwork",
		"network":             name,
	})
	log := zerowrap.FromCtx(ctx)

	netLabels := map[string]string{domain.LabelManaged: "true"}
	for k, v := range labels {
		netLabels[k] = v
	}

	callCtx, cancel := r.call(ctx, r.opts.Timeout)
	defer cancel()

	resp, err := r.client.NetworkCreate(callCtx, name, network.CreateOptions{
		Driver: "bridge",
		Labels: netLabels,
	})
	if err != nil {
		return "", mapError(callCtx, err, "", "failed to create network "+name)
	}

	log.Info().Str(zerowrap.FieldEntityID, resp.ID).Msg("network created")
	return resp.ID, nil
}

// RemoveNetwork removes a Docker network. A missing network is not an error.
func (r *Runtime) RemoveNetwork(ctx context.Context, name string) error {
	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:   "adapter",
		zerowrap.FieldAdapter: "docker",
		zerowrap.FieldAction:  "RemoveNetwork",
		"network":             name,
	})
	log := zerowrap.FromCtx(ctx)

	callCtx, cancel := r.call(ctx, r.opts.Timeout)
	defer cancel()

	if err := r.client.NetworkRemove(callCtx, name); err != nil {
		if cerrdefs.IsNotFound(err) {
			log.Debug().Msg("network not found, already removed")
			return nil
		}
		return mapError(callCtx, err, "", "failed to remove network "+name)
	}

	log.Info().Msg("network removed")
	return nil
}
