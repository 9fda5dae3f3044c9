package domain

import (
	"fmt"
	"maps"
	"regexp"
	"slices"
	"time"
)

// WorkspaceStatus is the lifecycle state of a workspace.
type WorkspaceStatus string

const (
	StatusPending    WorkspaceStatus = "pending"
	StatusStopped    WorkspaceStatus = "stopped"
	StatusRunning    WorkspaceStatus = "running"
	StatusPaused     WorkspaceStatus = "paused"
	StatusError      WorkspaceStatus = "error"
	StatusDestroying WorkspaceStatus = "destroying"
	StatusDestroyed  WorkspaceStatus = "destroyed"
)

// workspaceTransitions is the adjacency table of the workspace state machine.
// A transition absent from this table is rejected before any side effect.
var workspaceTransitions = map[WorkspaceStatus][]WorkspaceStatus{
	StatusPending:    {StatusStopped, StatusError, StatusDestroying},
	StatusStopped:    {StatusRunning, StatusDestroying, StatusPaused},
	StatusRunning:    {StatusStopped, StatusPaused, StatusError, StatusDestroying},
	StatusPaused:     {StatusRunning, StatusDestroying},
	StatusError:      {StatusPending, StatusStopped, StatusDestroying},
	StatusDestroying: {StatusDestroyed, StatusError},
	StatusDestroyed:  {},
}

// IsValid reports whether s is one of the known statuses.
func (s WorkspaceStatus) IsValid() bool {
	_, ok := workspaceTransitions[s]
	return ok
}

// IsValidTransition reports whether the state machine allows from → to.
func IsValidTransition(from, to WorkspaceStatus) bool {
	return slices.Contains(workspaceTransitions[from], to)
}

// AllowedTransitions returns the statuses reachable from s.
func AllowedTransitions(s WorkspaceStatus) []WorkspaceStatus {
	return slices.Clone(workspaceTransitions[s])
}

// AllStatuses lists every workspace status in declaration order.
func AllStatuses() []WorkspaceStatus {
	return []WorkspaceStatus{
		StatusPending, StatusStopped, StatusRunning, StatusPaused,
		StatusError, StatusDestroying, StatusDestroyed,
	}
}

// BackendType tags the runtime kind backing a workspace.
type BackendType string

const (
	BackendDocker     BackendType = "docker"
	BackendSprite     BackendType = "sprite"
	BackendKubernetes BackendType = "kubernetes"
	BackendMock       BackendType = "mock"
)

// Workspace is the canonical workspace record. Values are passed between
// orchestrator calls by copy; mutating operations return a new record.
type Workspace struct {
	ID            string             `json:"id"`
	Name          string             `json:"name"`
	DisplayName   string             `json:"displayName,omitempty"`
	Status        WorkspaceStatus    `json:"status"`
	StatusMessage string             `json:"statusMessage,omitempty"`
	Backend       BackendType        `json:"backend"`
	BackendConfig BackendConfig      `json:"backendConfig"`
	Repository    Repository         `json:"repository"`
	Branch        string             `json:"branch"`
	WorktreePath  string             `json:"worktreePath"`
	Resources     ResourceAllocation `json:"resources"`
	Ports         []PortMapping      `json:"ports"`
	Config        WorkspaceConfig    `json:"config"`
	Labels        map[string]string  `json:"labels"`
	Annotations   map[string]string  `json:"annotations"`
	CreatedAt     time.Time          `json:"createdAt"`
	UpdatedAt     time.Time          `json:"updatedAt"`
	LastActiveAt  time.Time          `json:"lastActiveAt"`
	ExpiresAt     *time.Time         `json:"expiresAt,omitempty"`
}

// ContainerID returns the runtime handle recorded for the workspace, if any.
func (w Workspace) ContainerID() string {
	return w.BackendConfig.ContainerID
}

// Clone returns a deep copy of w so callers never share maps or slices.
func (w Workspace) Clone() Workspace {
	c := w
	c.BackendConfig.Metadata = maps.Clone(w.BackendConfig.Metadata)
	c.Ports = slices.Clone(w.Ports)
	c.Labels = maps.Clone(w.Labels)
	c.Annotations = maps.Clone(w.Annotations)
	c.Config = w.Config.Clone()
	if w.ExpiresAt != nil {
		t := *w.ExpiresAt
		c.ExpiresAt = &t
	}
	return c
}

// BackendConfig holds the runtime-specific handle of a workspace.
type BackendConfig struct {
	ContainerID string         `json:"containerId,omitempty"`
	NetworkID   string         `json:"networkId,omitempty"`
	ImageDigest string         `json:"imageDigest,omitempty"`
	Metadata    map[string]any `json:"metadata"`
}

// RepositoryProvider identifies the hosting service of a repository.
type RepositoryProvider string

const (
	ProviderGitHub    RepositoryProvider = "github"
	ProviderGitLab    RepositoryProvider = "gitlab"
	ProviderBitbucket RepositoryProvider = "bitbucket"
	ProviderOther     RepositoryProvider = "other"
)

// Repository describes the source tree a workspace was created from.
type Repository struct {
	URL           string             `json:"url"`
	Provider      RepositoryProvider `json:"provider"`
	LocalPath     string             `json:"localPath"`
	DefaultBranch string             `json:"defaultBranch"`
	CurrentCommit string             `json:"currentCommit"`
}

// ResourceAllocation is the compute budget of a workspace.
type ResourceAllocation struct {
	CPU     CPUAllocation     `json:"cpu"`
	Memory  MemoryAllocation  `json:"memory"`
	Storage StorageAllocation `json:"storage"`
}

// CPUAllocation is expressed in cores; Limit caps usage when non-zero.
type CPUAllocation struct {
	Cores float64 `json:"cores"`
	Limit float64 `json:"limit,omitempty"`
}

// MemoryAllocation is expressed in bytes.
type MemoryAllocation struct {
	Bytes int64 `json:"bytes"`
	Limit int64 `json:"limit,omitempty"`
	Swap  int64 `json:"swap,omitempty"`
}

// StorageAllocation is expressed in bytes.
type StorageAllocation struct {
	Bytes     int64 `json:"bytes"`
	Ephemeral int64 `json:"ephemeral,omitempty"`
}

// ShutdownBehavior selects what happens when a workspace goes idle.
type ShutdownBehavior string

const (
	ShutdownStop    ShutdownBehavior = "stop"
	ShutdownPause   ShutdownBehavior = "pause"
	ShutdownDestroy ShutdownBehavior = "destroy"
)

// IsValid reports whether b is a known behavior.
func (b ShutdownBehavior) IsValid() bool {
	switch b {
	case ShutdownStop, ShutdownPause, ShutdownDestroy:
		return true
	}
	return false
}

// WorkspaceConfig is the declarative configuration of a workspace.
type WorkspaceConfig struct {
	Image            string            `json:"image"`
	ResourceClass    ResourceClass     `json:"resourceClass,omitempty"`
	Env              map[string]string `json:"env"`
	EnvFiles         []string          `json:"envFiles"`
	Volumes          []VolumeConfig    `json:"volumes"`
	Services         []ServiceConfig   `json:"services"`
	Hooks            WorkspaceHooks    `json:"hooks"`
	IdleTimeout      time.Duration     `json:"idleTimeout"`
	ShutdownBehavior ShutdownBehavior  `json:"shutdownBehavior"`
}

// Clone returns a deep copy of c.
func (c WorkspaceConfig) Clone() WorkspaceConfig {
	out := c
	out.Env = maps.Clone(c.Env)
	out.EnvFiles = slices.Clone(c.EnvFiles)
	out.Volumes = slices.Clone(c.Volumes)
	out.Hooks = c.Hooks.Clone()
	out.Services = make([]ServiceConfig, len(c.Services))
	for i, svc := range c.Services {
		out.Services[i] = svc.Clone()
	}
	if c.Services == nil {
		out.Services = nil
	}
	return out
}

// PrimaryHealthCheck returns the health check of the first service, if any.
func (c WorkspaceConfig) PrimaryHealthCheck() *HealthCheckConfig {
	if len(c.Services) == 0 {
		return nil
	}
	return c.Services[0].HealthCheck
}

// VolumeType is the kind of mount.
type VolumeType string

const (
	VolumeBind  VolumeType = "bind"
	VolumeNamed VolumeType = "volume"
	VolumeTmpfs VolumeType = "tmpfs"
)

// VolumeConfig describes a mount into the workspace container.
type VolumeConfig struct {
	Type     VolumeType `json:"type"`
	Source   string     `json:"source"`
	Target   string     `json:"target"`
	ReadOnly bool       `json:"readOnly,omitempty"`
}

// ServiceConfig declares one service of a workspace and the ports it exposes.
type ServiceConfig struct {
	Name        string             `json:"name"`
	Image       string             `json:"image,omitempty"`
	Ports       []PortMapping      `json:"ports"`
	Env         map[string]string  `json:"env,omitempty"`
	Volumes     []VolumeConfig     `json:"volumes,omitempty"`
	DependsOn   []string           `json:"dependsOn,omitempty"`
	HealthCheck *HealthCheckConfig `json:"healthCheck,omitempty"`
}

// Clone returns a deep copy of s.
func (s ServiceConfig) Clone() ServiceConfig {
	out := s
	out.Ports = slices.Clone(s.Ports)
	out.Env = maps.Clone(s.Env)
	out.Volumes = slices.Clone(s.Volumes)
	out.DependsOn = slices.Clone(s.DependsOn)
	if s.HealthCheck != nil {
		hc := *s.HealthCheck
		hc.Command = slices.Clone(s.HealthCheck.Command)
		out.HealthCheck = &hc
	}
	return out
}

// HealthCheckConfig is the probe policy used to decide when a freshly started
// container is ready to serve traffic.
type HealthCheckConfig struct {
	Command     []string      `json:"command"`
	Interval    time.Duration `json:"interval"`
	Timeout     time.Duration `json:"timeout"`
	Retries     int           `json:"retries"`
	StartPeriod time.Duration `json:"startPeriod"`
}

// WorkspaceHooks are shell scripts run around lifecycle transitions, each
// with sh -c. postStart and preStop run inside the container; the other
// phases have no running container and run on the host in the worktree.
type WorkspaceHooks struct {
	PreCreate  []string `json:"preCreate,omitempty"`
	PostCreate []string `json:"postCreate,omitempty"`
	PreStart   []string `json:"preStart,omitempty"`
	PostStart  []string `json:"postStart,omitempty"`
	PreStop    []string `json:"preStop,omitempty"`
	PostStop   []string `json:"postStop,omitempty"`
}

// Clone returns a deep copy of h.
func (h WorkspaceHooks) Clone() WorkspaceHooks {
	return WorkspaceHooks{
		PreCreate:  slices.Clone(h.PreCreate),
		PostCreate: slices.Clone(h.PostCreate),
		PreStart:   slices.Clone(h.PreStart),
		PostStart:  slices.Clone(h.PostStart),
		PreStop:    slices.Clone(h.PreStop),
		PostStop:   slices.Clone(h.PostStop),
	}
}

// Add appends script to the hooks of phase, named as in the JSON form
// (preCreate, postStart, ...).
func (h *WorkspaceHooks) Add(phase, script string) error {
	var target *[]string
	switch phase {
	case "preCreate":
		target = &h.PreCreate
	case "postCreate":
		target = &h.PostCreate
	case "preStart":
		target = &h.PreStart
	case "postStart":
		target = &h.PostStart
	case "preStop":
		target = &h.PreStop
	case "postStop":
		target = &h.PostStop
	default:
		return fmt.Errorf("unknown hook phase %q", phase)
	}
	*target = append(*target, script)
	return nil
}

// ResourceClass is a named resource preset.
type ResourceClass string

const (
	ResourceSmall  ResourceClass = "small"
	ResourceMedium ResourceClass = "medium"
	ResourceLarge  ResourceClass = "large"
	ResourceXLarge ResourceClass = "xlarge"
)

const gib = int64(1024 * 1024 * 1024)

var resourceClasses = map[ResourceClass]ResourceAllocation{
	ResourceSmall:  {CPU: CPUAllocation{Cores: 1}, Memory: MemoryAllocation{Bytes: 2 * gib}, Storage: StorageAllocation{Bytes: 20 * gib}},
	ResourceMedium: {CPU: CPUAllocation{Cores: 2}, Memory: MemoryAllocation{Bytes: 4 * gib}, Storage: StorageAllocation{Bytes: 50 * gib}},
	ResourceLarge:  {CPU: CPUAllocation{Cores: 4}, Memory: MemoryAllocation{Bytes: 8 * gib}, Storage: StorageAllocation{Bytes: 100 * gib}},
	ResourceXLarge: {CPU: CPUAllocation{Cores: 8}, Memory: MemoryAllocation{Bytes: 16 * gib}, Storage: StorageAllocation{Bytes: 200 * gib}},
}

// Resources returns the allocation of a class, with limits set to the
// allocation itself. Unknown classes fall back to medium.
func (rc ResourceClass) Resources() ResourceAllocation {
	alloc, ok := resourceClasses[rc]
	if !ok {
		alloc = resourceClasses[ResourceMedium]
	}
	alloc.CPU.Limit = alloc.CPU.Cores
	alloc.Memory.Limit = alloc.Memory.Bytes
	return alloc
}

// Workspace name grammar.
const (
	MinWorkspaceNameLength = 2
	MaxWorkspaceNameLength = 64
)

var workspaceNameRegex = regexp.MustCompile(`^[a-z0-9][a-z0-9-]*[a-z0-9]$`)

// ReservedWorkspaceNames cannot be used as workspace names.
var ReservedWorkspaceNames = []string{"current", "default", "main", "master", "all"}

// ValidateWorkspaceName returns a WorkspaceInvalidName error when name does
// not satisfy the grammar or is reserved.
func ValidateWorkspaceName(name string) error {
	switch {
	case len(name) < MinWorkspaceNameLength || len(name) > MaxWorkspaceNameLength:
		return NewWorkspaceInvalidNameError(name, "must be between 2 and 64 characters", nil)
	case !workspaceNameRegex.MatchString(name):
		return NewWorkspaceInvalidNameError(name, "must contain only lowercase letters, digits and hyphens, and start and end with a letter or digit", nil)
	case slices.Contains(ReservedWorkspaceNames, name):
		return NewWorkspaceInvalidNameError(name, "name is reserved", nil)
	}
	return nil
}

// WorktreeBranch returns the git branch a workspace worktree is checked out on.
func WorktreeBranch(name string) string {
	return "nexus/" + name
}

// CreateWorkspaceRequest is the input of a workspace creation.
type CreateWorkspaceRequest struct {
	Name        string
	DisplayName string
	// RepoPath is a local git repository. When set, a worktree is created
	// for the workspace and synced into its container.
	RepoPath string
	// SourcePath is synced as-is when no repository is given.
	SourcePath string
	Branch     string
	Config     WorkspaceConfig
	Labels     map[string]string
}
