package domain

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrorKind is the closed set of failure kinds raised by the system.
type ErrorKind int

const (
	KindWorkspaceNotFound ErrorKind = iota + 1
	KindWorkspaceAlreadyExists
	KindWorkspaceStart
	KindWorkspaceInvalidName
	KindWorkspaceInvalidTransition
	KindRuntimeDaemon
	KindContainer
	KindRuntimeUnavailable
	KindPortAllocation
	KindPortExhausted
	KindResourceExhausted
	KindStateCorruption
	KindStateLock
	KindGitWorktree
	KindPermissionDenied
	KindAuthentication
)

type kindSpec struct {
	name       string
	code       string
	statusCode int
	retryable  bool
}

var kindSpecs = map[ErrorKind]kindSpec{
	KindWorkspaceNotFound:          {"WorkspaceNotFound", "WS001", 404, false},
	KindWorkspaceAlreadyExists:     {"WorkspaceAlreadyExists", "WS002", 409, false},
	KindWorkspaceStart:             {"WorkspaceStart", "WS003", 500, true},
	KindWorkspaceInvalidName:       {"WorkspaceInvalidName", "WS004", 400, false},
	KindWorkspaceInvalidTransition: {"WorkspaceInvalidTransition", "WS005", 409, false},
	KindRuntimeDaemon:              {"RuntimeDaemon", "BE001", 503, true},
	KindContainer:                  {"Container", "BE002", 500, true},
	KindRuntimeUnavailable:         {"RuntimeUnavailable", "BE003", 503, true},
	KindPortAllocation:             {"PortAllocation", "PT001", 409, true},
	KindPortExhausted:              {"PortExhausted", "PT002", 503, false},
	KindResourceExhausted:          {"ResourceExhausted", "RS001", 503, true},
	KindStateCorruption:            {"StateCorruption", "ST001", 500, false},
	KindStateLock:                  {"StateLock", "ST002", 423, true},
	KindGitWorktree:                {"GitWorktree", "GT001", 500, false},
	KindPermissionDenied:           {"PermissionDenied", "AU001", 403, false},
	KindAuthentication:             {"Authentication", "AU002", 401, false},
}

// String returns the kind name.
func (k ErrorKind) String() string {
	if spec, ok := kindSpecs[k]; ok {
		return spec.name
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// Code returns the stable, subsystem-namespaced code of the kind.
func (k ErrorKind) Code() string { return kindSpecs[k].code }

// StatusCode returns the HTTP-like status of the kind.
func (k ErrorKind) StatusCode() int { return kindSpecs[k].statusCode }

// Retryable reports whether failures of this kind are transient.
func (k ErrorKind) Retryable() bool { return kindSpecs[k].retryable }

// Error is the typed failure carried across every layer.
type Error struct {
	Kind    ErrorKind
	Message string
	Cause   error
	Context map[string]any
}

// Error implements error.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind.Code(), e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind.Code(), e.Message)
}

// Unwrap returns the wrapped cause.
func (e *Error) Unwrap() error { return e.Cause }

// Is matches any *Error of the same kind, so the sentinels below work with
// errors.Is regardless of message and context.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind
}

// Code returns the stable error code.
func (e *Error) Code() string { return e.Kind.Code() }

// StatusCode returns the HTTP-like status.
func (e *Error) StatusCode() int { return e.Kind.StatusCode() }

// Retryable reports whether the caller may retry.
func (e *Error) Retryable() bool { return e.Kind.Retryable() }

// WithContext returns a copy of e with key set in its context.
func (e *Error) WithContext(key string, value any) *Error {
	c := *e
	c.Context = make(map[string]any, len(e.Context)+1)
	for k, v := range e.Context {
		c.Context[k] = v
	}
	c.Context[key] = value
	return &c
}

// MarshalJSON renders the error for RPC front ends.
func (e *Error) MarshalJSON() ([]byte, error) {
	payload := struct {
		Name       string         `json:"name"`
		Code       string         `json:"code"`
		StatusCode int            `json:"statusCode"`
		Message    string         `json:"message"`
		Retryable  bool           `json:"retryable"`
		Context    map[string]any `json:"context,omitempty"`
		Cause      string         `json:"cause,omitempty"`
	}{
		Name:       e.Kind.String(),
		Code:       e.Kind.Code(),
		StatusCode: e.Kind.StatusCode(),
		Message:    e.Message,
		Retryable:  e.Kind.Retryable(),
		Context:    e.Context,
	}
	if e.Cause != nil {
		payload.Cause = e.Cause.Error()
	}
	return json.Marshal(payload)
}

// Sentinels for errors.Is matching by kind.
var (
	ErrWorkspaceNotFound          = &Error{Kind: KindWorkspaceNotFound}
	ErrWorkspaceAlreadyExists     = &Error{Kind: KindWorkspaceAlreadyExists}
	ErrWorkspaceStart             = &Error{Kind: KindWorkspaceStart}
	ErrWorkspaceInvalidName       = &Error{Kind: KindWorkspaceInvalidName}
	ErrWorkspaceInvalidTransition = &Error{Kind: KindWorkspaceInvalidTransition}
	ErrRuntimeDaemon              = &Error{Kind: KindRuntimeDaemon}
	ErrContainer                  = &Error{Kind: KindContainer}
	ErrRuntimeUnavailable         = &Error{Kind: KindRuntimeUnavailable}
	ErrPortAllocation             = &Error{Kind: KindPortAllocation}
	ErrPortExhausted              = &Error{Kind: KindPortExhausted}
	ErrResourceExhausted          = &Error{Kind: KindResourceExhausted}
	ErrStateCorruption            = &Error{Kind: KindStateCorruption}
	ErrStateLock                  = &Error{Kind: KindStateLock}
	ErrGitWorktree                = &Error{Kind: KindGitWorktree}
	ErrPermissionDenied           = &Error{Kind: KindPermissionDenied}
	ErrAuthentication             = &Error{Kind: KindAuthentication}
)

// AsError extracts the typed error from err's chain.
func AsError(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// IsRetryable reports whether err carries a retryable typed failure.
func IsRetryable(err error) bool {
	e, ok := AsError(err)
	return ok && e.Retryable()
}

// IsContainerGone reports whether err is a container failure raised because
// the runtime no longer knows the container.
func IsContainerGone(err error) bool {
	e, ok := AsError(err)
	if !ok || e.Kind != KindContainer {
		return false
	}
	gone, _ := e.Context["notFound"].(bool)
	return gone
}

func NewWorkspaceNotFoundError(name string, cause error) *Error {
	return &Error{
		Kind:    KindWorkspaceNotFound,
		Message: fmt.Sprintf("workspace %q not found", name),
		Cause:   cause,
		Context: map[string]any{"workspaceName": name},
	}
}

func NewWorkspaceAlreadyExistsError(name string, cause error) *Error {
	return &Error{
		Kind:    KindWorkspaceAlreadyExists,
		Message: fmt.Sprintf("workspace %q already exists", name),
		Cause:   cause,
		Context: map[string]any{"workspaceName": name},
	}
}

func NewWorkspaceStartError(name string, cause error) *Error {
	return &Error{
		Kind:    KindWorkspaceStart,
		Message: fmt.Sprintf("failed to start workspace %q", name),
		Cause:   cause,
		Context: map[string]any{"workspaceName": name},
	}
}

func NewWorkspaceInvalidNameError(name, reason string, cause error) *Error {
	return &Error{
		Kind:    KindWorkspaceInvalidName,
		Message: fmt.Sprintf("invalid workspace name %q: %s", name, reason),
		Cause:   cause,
		Context: map[string]any{"workspaceName": name, "reason": reason},
	}
}

func NewWorkspaceInvalidTransitionError(name string, from, to WorkspaceStatus) *Error {
	return &Error{
		Kind:    KindWorkspaceInvalidTransition,
		Message: fmt.Sprintf("cannot transition workspace %q from %q to %q", name, from, to),
		Context: map[string]any{"workspaceName": name, "from": string(from), "to": string(to)},
	}
}

func NewRuntimeDaemonError(message string, cause error) *Error {
	return &Error{
		Kind:    KindRuntimeDaemon,
		Message: "container runtime error: " + message,
		Cause:   cause,
	}
}

func NewContainerError(containerID, message string, cause error) *Error {
	return &Error{
		Kind:    KindContainer,
		Message: fmt.Sprintf("container error (%s): %s", containerID, message),
		Cause:   cause,
		Context: map[string]any{"containerId": containerID},
	}
}

func NewRuntimeUnavailableError(backend string, cause error) *Error {
	return &Error{
		Kind:    KindRuntimeUnavailable,
		Message: fmt.Sprintf("backend %q is unavailable", backend),
		Cause:   cause,
		Context: map[string]any{"backend": backend},
	}
}

func NewPortAllocationError(port int, message string, cause error) *Error {
	return &Error{
		Kind:    KindPortAllocation,
		Message: fmt.Sprintf("port allocation error (%d): %s", port, message),
		Cause:   cause,
		Context: map[string]any{"port": port},
	}
}

func NewPortExhaustedError(cause error) *Error {
	return &Error{
		Kind:    KindPortExhausted,
		Message: "no available ports in allocation range",
		Cause:   cause,
	}
}

func NewResourceExhaustedError(resource string, cause error) *Error {
	return &Error{
		Kind:    KindResourceExhausted,
		Message: "resource exhausted: " + resource,
		Cause:   cause,
		Context: map[string]any{"resource": resource},
	}
}

func NewStateCorruptionError(path, reason string, cause error) *Error {
	return &Error{
		Kind:    KindStateCorruption,
		Message: fmt.Sprintf("state corruption at %q: %s", path, reason),
		Cause:   cause,
		Context: map[string]any{"path": path, "reason": reason},
	}
}

func NewStateLockError(path string, cause error) *Error {
	return &Error{
		Kind:    KindStateLock,
		Message: fmt.Sprintf("could not acquire lock for %q", path),
		Cause:   cause,
		Context: map[string]any{"path": path},
	}
}

func NewGitWorktreeError(operation, message string, cause error) *Error {
	return &Error{
		Kind:    KindGitWorktree,
		Message: fmt.Sprintf("git worktree %s failed: %s", operation, message),
		Cause:   cause,
		Context: map[string]any{"operation": operation},
	}
}

func NewPermissionDeniedError(action string, cause error) *Error {
	return &Error{
		Kind:    KindPermissionDenied,
		Message: "permission denied: " + action,
		Cause:   cause,
		Context: map[string]any{"action": action},
	}
}

func NewAuthenticationError(message string, cause error) *Error {
	return &Error{
		Kind:    KindAuthentication,
		Message: "authentication failed: " + message,
		Cause:   cause,
	}
}
