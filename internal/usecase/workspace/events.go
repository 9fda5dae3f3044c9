package workspace

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bnema/zerowrap"

	"github.com/nexuslab/nexus/internal/boundaries/out"
	"github.com/nexuslab/nexus/internal/domain"
)

// CrashHandler records container crashes and restarts reported by the
// lifecycle monitors.
type CrashHandler struct {
	store out.WorkspaceStore
	now   func() time.Time
}

// NewCrashHandler creates a new CrashHandler.
func NewCrashHandler(store out.WorkspaceStore) *CrashHandler {
	return &CrashHandler{store: store, now: time.Now}
}

// Handle records a crash as running → error, or notes a restart on the
// record. A workspace that has left the running state in the meantime is
// left alone.
func (h *CrashHandler) Handle(ctx context.Context, event domain.Event) error {
	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:    "usecase",
		zerowrap.FieldHandler:  "CrashHandler",
		zerowrap.FieldEvent:    string(event.Type),
		zerowrap.FieldEntityID: event.WorkspaceName,
		"event_id":             event.ID,
	})
	log := zerowrap.FromCtx(ctx)

	payload, ok := event.Data.(domain.CrashPayload)
	if !ok {
		return fmt.Errorf("unexpected payload %T for %s", event.Data, event.Type)
	}

	if payload.Restarted {
		_, err := h.store.UpdateWorkspace(ctx, payload.WorkspaceName, func(ws *domain.Workspace) error {
			ws.StatusMessage = fmt.Sprintf("restarted after container %s with exit code %d", payload.State, payload.ExitCode)
			ws.LastActiveAt = h.now().UTC()
			return nil
		})
		if err != nil {
			return err
		}
		log.Info().Int("exit_code", payload.ExitCode).Msg("workspace container restarted")
		return nil
	}

	message := fmt.Sprintf("container %s with exit code %d", payload.State, payload.ExitCode)
	_, err := h.store.UpdateStatus(ctx, payload.WorkspaceName, domain.StatusError, message)
	switch {
	case errors.Is(err, domain.ErrWorkspaceInvalidTransition), errors.Is(err, domain.ErrWorkspaceNotFound):
		log.Debug().Err(err).Msg("crash no longer applies to the recorded workspace")
		return nil
	case err != nil:
		return err
	}

	log.Warn().Int("exit_code", payload.ExitCode).Str("state", string(payload.State)).Msg("workspace container crashed")
	return nil
}

// CanHandle returns whether this handler can handle the given event type.
func (h *CrashHandler) CanHandle(eventType domain.EventType) bool {
	return eventType == domain.EventWorkspaceCrashed || eventType == domain.EventWorkspaceRestarted
}
