package domain

import "time"

// EventType defines the type of event that occurred.
type EventType string

const (
	EventWorkspaceCreated   EventType = "workspace.created"
	EventWorkspaceStarted   EventType = "workspace.started"
	EventWorkspaceStopped   EventType = "workspace.stopped"
	EventWorkspaceDeleted   EventType = "workspace.deleted"
	EventWorkspaceCrashed   EventType = "workspace.crashed"
	EventWorkspaceRestarted EventType = "workspace.restarted"
)

// Event represents a domain event that occurred in the system.
type Event struct {
	ID            string
	Type          EventType
	Timestamp     time.Time
	WorkspaceID   string
	WorkspaceName string
	ContainerID   string
	Data          any
}

// WorkspaceEventPayload contains data for workspace lifecycle events.
type WorkspaceEventPayload struct {
	WorkspaceID   string
	WorkspaceName string
	ContainerID   string
	Status        WorkspaceStatus
}

// CrashPayload contains data for workspace.crashed and workspace.restarted events.
type CrashPayload struct {
	WorkspaceID   string
	WorkspaceName string
	ContainerID   string
	State         ContainerState
	ExitCode      int
	Restarted     bool
}
