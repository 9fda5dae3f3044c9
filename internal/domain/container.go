// Package domain contains pure business types without external dependencies.
package domain

import "time"

// ContainerState is the lifecycle state reported by the container runtime.
type ContainerState string

const (
	ContainerStateCreated    ContainerState = "created"
	ContainerStateRunning    ContainerState = "running"
	ContainerStatePaused     ContainerState = "paused"
	ContainerStateRestarting ContainerState = "restarting"
	ContainerStateRemoving   ContainerState = "removing"
	ContainerStateExited     ContainerState = "exited"
	ContainerStateDead       ContainerState = "dead"

	// ContainerStateUnknown is reported when the runtime could not be asked.
	ContainerStateUnknown ContainerState = "unknown"
)

// Health probe results as reported by the runtime. HealthNone means the
// container has no probe configured.
const (
	HealthNone      = ""
	HealthStarting  = "starting"
	HealthHealthy   = "healthy"
	HealthUnhealthy = "unhealthy"
)

// WorkspaceStatus maps a runtime state onto the workspace status enum.
// Unknown states map to pending.
func (s ContainerState) WorkspaceStatus() WorkspaceStatus {
	switch s {
	case ContainerStateRunning:
		return StatusRunning
	case ContainerStateExited:
		return StatusStopped
	case ContainerStatePaused:
		return StatusPaused
	case ContainerStateRestarting, ContainerStateRemoving:
		return StatusPending
	case ContainerStateDead:
		return StatusError
	default:
		return StatusPending
	}
}

// ContainerSpec is the request shape for creating a workspace container.
type ContainerSpec struct {
	Name        string
	Image       string
	Ports       []PortMapping
	Env         map[string]string
	Volumes     []VolumeConfig
	Resources   ResourceAllocation
	WorkingDir  string
	Labels      map[string]string
	Cmd         []string
	NetworkMode string
	// HealthCheck is installed as the container's runtime probe when set.
	HealthCheck *HealthCheckConfig
}

// ContainerInfo is the runtime's view of a container.
type ContainerInfo struct {
	ID         string
	Name       string
	Image      string
	State      ContainerState
	Health     string
	ExitCode   int
	StartedAt  time.Time
	FinishedAt time.Time
	Ports      []PortMapping
	Labels     map[string]string
}

// Running reports whether the container is in the running state.
func (c *ContainerInfo) Running() bool {
	return c.State == ContainerStateRunning
}

// NetworkInfo represents network configuration and state.
type NetworkInfo struct {
	ID     string
	Name   string
	Driver string
	Labels map[string]string
}

// ExecOptions overrides the user or working directory of an exec.
type ExecOptions struct {
	User       string
	WorkingDir string
	Env        []string
}

// ExecResult holds the result of executing a command in a container.
type ExecResult struct {
	ExitCode int
	Stdout   []byte
	Stderr   []byte
}

// LogsOptions bounds a log retrieval.
type LogsOptions struct {
	Tail       int
	Since      time.Time
	Timestamps bool
}

// HealthReport is a point-in-time health observation of a container. A
// failed inspection reports State "unknown" and Healthy false.
type HealthReport struct {
	Healthy  bool
	State    ContainerState
	Health   string
	ExitCode int
}
