package cli

import (
	"fmt"
	"strings"

	"github.com/nexuslab/nexus/internal/domain"
)

// exitCodeError carries the exit code of a command run inside a workspace.
type exitCodeError struct {
	code int
}

func (e *exitCodeError) Error() string {
	return fmt.Sprintf("command exited with code %d", e.code)
}

// describeError renders err for an operator: the coded message, a hint on
// what to do next, and whether retrying may help.
func describeError(err error) string {
	e, ok := domain.AsError(err)
	if !ok {
		return cliRenderError(err.Error())
	}

	var hint string
	switch e.Kind {
	case domain.KindWorkspaceNotFound:
		hint = "run 'nexus list' to see existing workspaces"
	case domain.KindWorkspaceAlreadyExists:
		hint = "pick another name, or remove the existing workspace with 'nexus rm'"
	case domain.KindWorkspaceStart:
		hint = "check 'nexus logs <name>' before starting again"
	case domain.KindWorkspaceInvalidName:
		hint = "names are 2-64 lowercase letters, digits and hyphens, and cannot be a reserved word"
	case domain.KindWorkspaceInvalidTransition:
		hint = "check the current status with 'nexus status <name>'"
	case domain.KindRuntimeDaemon:
		hint = "the container runtime rejected the request; check its logs"
	case domain.KindContainer:
		hint = "the workspace container misbehaved; 'nexus status' reconciles the record"
	case domain.KindRuntimeUnavailable:
		hint = "start the Docker daemon or point DOCKER_HOST at it"
	case domain.KindPortAllocation:
		hint = "another process took the port; try again"
	case domain.KindPortExhausted:
		hint = "remove unused workspaces or widen ports.start/ports.end"
	case domain.KindResourceExhausted:
		hint = "free host resources or use a smaller resource class"
	case domain.KindStateCorruption:
		// Never guess a repair: the operator decides what the record should be.
		hint = "the record was left untouched; repair or restore it by hand (a .bak copy sits next to it)"
	case domain.KindStateLock:
		hint = "another nexus process holds the lock; try again shortly"
	case domain.KindGitWorktree:
		hint = "check the repository path and that the workspace branch does not exist yet"
	case domain.KindPermissionDenied:
		hint = "check the permissions of the data directory"
	case domain.KindAuthentication:
		hint = "check the credentials of the container runtime or registry"
	default:
		hint = "unexpected failure"
	}

	var b strings.Builder
	b.WriteString(cliRenderError(e.Error()))
	b.WriteString("\n  ")
	b.WriteString(cliRenderMuted("hint: " + hint))
	if e.Retryable() {
		b.WriteString("\n  ")
		b.WriteString(cliRenderMuted("this failure is transient, retrying may succeed"))
	}
	return b.String()
}
