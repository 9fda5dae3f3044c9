// Package filesystem implements the durable state adapters on the local
// filesystem: workspace records, the port table, locks and the transaction log.
package filesystem

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/bnema/zerowrap"

	"github.com/nexuslab/nexus/internal/domain"
)

const (
	workspacesDir      = "workspaces"
	locksDir           = "locks"
	transactionLogFile = "transaction.log"
	recordExt          = ".json"
	backupExt          = ".json.bak"
)

// WorkspaceStore persists one JSON document per workspace under
// <base>/workspaces, guarded by per-name lock markers under <base>/locks.
type WorkspaceStore struct {
	baseDir  string
	stateDir string
	lockDir  string
	txlog    *TransactionLog
	lockOpts LockOptions
	log      zerowrap.Logger
	now      func() time.Time
}

// NewWorkspaceStore creates the directory layout under baseDir.
func NewWorkspaceStore(baseDir string, lockOpts LockOptions, log zerowrap.Logger) (*WorkspaceStore, error) {
	baseDir = expandTilde(baseDir)
	s := &WorkspaceStore{
		baseDir:  baseDir,
		stateDir: filepath.Join(baseDir, workspacesDir),
		lockDir:  filepath.Join(baseDir, locksDir),
		txlog:    NewTransactionLog(filepath.Join(baseDir, transactionLogFile)),
		lockOpts: lockOpts.withDefaults(),
		log:      log,
		now:      time.Now,
	}

	for _, dir := range []string{s.stateDir, s.lockDir} {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create state directory: %w", err)
		}
	}

	return s, nil
}

// TransactionLog exposes the audit trail of the store.
func (s *WorkspaceStore) TransactionLog() *TransactionLog {
	return s.txlog
}

func (s *WorkspaceStore) recordPath(name string) string {
	return filepath.Join(s.stateDir, name+recordExt)
}

func (s *WorkspaceStore) backupPath(name string) string {
	return filepath.Join(s.stateDir, name+backupExt)
}

func (s *WorkspaceStore) lockPath(name string) string {
	return filepath.Join(s.lockDir, name+".lock")
}

func (s *WorkspaceStore) ctx(ctx context.Context, action, name string) (context.Context, zerowrap.Logger) {
	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:    "adapter",
		zerowrap.FieldAdapter:  "filesystem",
		zerowrap.FieldAction:   action,
		zerowrap.FieldEntityID: name,
	})
	return ctx, zerowrap.FromCtx(ctx)
}

// checkName rejects names that would escape the state directory.
func checkName(name string) error {
	if name == "" || name != filepath.Base(name) || strings.HasPrefix(name, ".") {
		return domain.NewWorkspaceInvalidNameError(name, "not usable as a record name", nil)
	}
	return nil
}

// withLock runs fn while holding the lock for name.
func (s *WorkspaceStore) withLock(ctx context.Context, name string, fn func() error) error {
	lock, err := acquireLock(ctx, s.lockPath(name), s.lockOpts)
	if err != nil {
		return err
	}
	defer func() {
		if relErr := lock.release(); relErr != nil {
			log := zerowrap.FromCtx(ctx)
			log.Warn().Err(relErr).Msg("failed to release lock")
		}
	}()
	return fn()
}

// GetWorkspace reads and validates the record for name.
func (s *WorkspaceStore) GetWorkspace(ctx context.Context, name string) (*domain.Workspace, error) {
	if err := checkName(name); err != nil {
		return nil, err
	}
	return s.read(name)
}

func (s *WorkspaceStore) read(name string) (*domain.Workspace, error) {
	path := s.recordPath(name)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, domain.NewWorkspaceNotFoundError(name, nil)
		}
		return nil, fmt.Errorf("failed to read workspace record: %w", err)
	}
	return decodeWorkspace(path, data)
}

// decodeWorkspace parses a record and checks the fields every record must carry.
func decodeWorkspace(path string, data []byte) (*domain.Workspace, error) {
	var ws domain.Workspace
	if err := json.Unmarshal(data, &ws); err != nil {
		return nil, domain.NewStateCorruptionError(path, "invalid JSON", err)
	}
	switch {
	case ws.ID == "":
		return nil, domain.NewStateCorruptionError(path, "missing or invalid id", nil)
	case ws.Name == "":
		return nil, domain.NewStateCorruptionError(path, "missing or invalid name", nil)
	case !ws.Status.IsValid():
		return nil, domain.NewStateCorruptionError(path, fmt.Sprintf("missing or invalid status %q", ws.Status), nil)
	}
	return &ws, nil
}

func validateRecord(ws *domain.Workspace) error {
	if ws == nil {
		return domain.NewStateCorruptionError("", "nil workspace", nil)
	}
	if err := checkName(ws.Name); err != nil {
		return err
	}
	if ws.ID == "" {
		return domain.NewStateCorruptionError(ws.Name, "missing or invalid id", nil)
	}
	if !ws.Status.IsValid() {
		return domain.NewStateCorruptionError(ws.Name, fmt.Sprintf("missing or invalid status %q", ws.Status), nil)
	}
	return nil
}

// write persists ws. The caller holds the lock for ws.Name. UpdatedAt is
// stamped on ws itself and never moves backwards.
func (s *WorkspaceStore) write(ws *domain.Workspace, previous *domain.Workspace) error {
	hadPrevious, err := copyFileAtomic(s.recordPath(ws.Name), s.backupPath(ws.Name))
	if err != nil {
		return fmt.Errorf("failed to back up workspace record: %w", err)
	}

	now := s.now().UTC()
	if now.Before(ws.UpdatedAt) {
		now = ws.UpdatedAt
	}
	ws.UpdatedAt = now

	data, err := json.MarshalIndent(ws, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode workspace record: %w", err)
	}
	if err := writeFileAtomic(s.recordPath(ws.Name), data, 0600); err != nil {
		return err
	}

	entry := TxEntry{
		Timestamp:     now,
		Operation:     TxCreate,
		WorkspaceID:   ws.ID,
		WorkspaceName: ws.Name,
		NewStatus:     ws.Status,
	}
	if hadPrevious {
		entry.Operation = TxUpdate
	}
	if previous != nil {
		entry.PreviousStatus = previous.Status
	}
	return s.txlog.Append(entry)
}

// SaveWorkspace writes ws, creating or replacing its record.
func (s *WorkspaceStore) SaveWorkspace(ctx context.Context, ws *domain.Workspace) error {
	if err := validateRecord(ws); err != nil {
		return err
	}
	ctx, log := s.ctx(ctx, "SaveWorkspace", ws.Name)

	err := s.withLock(ctx, ws.Name, func() error {
		previous, readErr := s.read(ws.Name)
		if readErr != nil && !errors.Is(readErr, domain.ErrWorkspaceNotFound) {
			// A corrupt previous generation is replaced; the backup keeps it.
			log.Warn().Err(readErr).Msg("overwriting unreadable workspace record")
			previous = nil
		}
		return s.write(ws, previous)
	})
	if err != nil {
		return err
	}

	log.Debug().Str("status", string(ws.Status)).Msg("workspace saved")
	return nil
}

// CreateWorkspace writes ws only if no record exists for its name.
func (s *WorkspaceStore) CreateWorkspace(ctx context.Context, ws *domain.Workspace) error {
	if err := validateRecord(ws); err != nil {
		return err
	}
	ctx, log := s.ctx(ctx, "CreateWorkspace", ws.Name)

	err := s.withLock(ctx, ws.Name, func() error {
		if _, statErr := os.Stat(s.recordPath(ws.Name)); statErr == nil {
			return domain.NewWorkspaceAlreadyExistsError(ws.Name, nil)
		}
		return s.write(ws, nil)
	})
	if err != nil {
		return err
	}

	log.Info().Str("workspace_id", ws.ID).Msg("workspace created")
	return nil
}

// UpdateWorkspace applies fn to a copy of the current record under the lock
// and persists it. Nothing is written if fn fails.
func (s *WorkspaceStore) UpdateWorkspace(ctx context.Context, name string, fn func(ws *domain.Workspace) error) (*domain.Workspace, error) {
	if err := checkName(name); err != nil {
		return nil, err
	}
	ctx, log := s.ctx(ctx, "UpdateWorkspace", name)

	var updated *domain.Workspace
	err := s.withLock(ctx, name, func() error {
		current, err := s.read(name)
		if err != nil {
			return err
		}
		next := current.Clone()
		if err := fn(&next); err != nil {
			return err
		}
		if next.Name != name {
			return domain.NewWorkspaceInvalidNameError(next.Name, "records cannot be renamed", nil)
		}
		if err := validateRecord(&next); err != nil {
			return err
		}
		if err := s.write(&next, current); err != nil {
			return err
		}
		updated = &next
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Debug().Str("status", string(updated.Status)).Msg("workspace updated")
	return updated, nil
}

// UpdateStatus moves the record to status if the transition table allows it.
// The status message is replaced, so a stale message never outlives the
// status it described.
func (s *WorkspaceStore) UpdateStatus(ctx context.Context, name string, status domain.WorkspaceStatus, message string) (*domain.Workspace, error) {
	return s.UpdateWorkspace(ctx, name, func(ws *domain.Workspace) error {
		if !domain.IsValidTransition(ws.Status, status) {
			return domain.NewWorkspaceInvalidTransitionError(name, ws.Status, status)
		}
		ws.Status = status
		ws.StatusMessage = message
		if status == domain.StatusRunning {
			ws.LastActiveAt = s.now().UTC()
		}
		return nil
	})
}

// ListWorkspaces returns every valid record sorted by name. Unreadable
// records are logged and skipped.
func (s *WorkspaceStore) ListWorkspaces(ctx context.Context) ([]*domain.Workspace, error) {
	ctx, log := s.ctx(ctx, "ListWorkspaces", "")

	entries, err := os.ReadDir(s.stateDir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, log.WrapErr(err, "failed to read state directory")
	}

	var result []*domain.Workspace
	for _, entry := range entries {
		fileName := entry.Name()
		if entry.IsDir() || strings.HasPrefix(fileName, ".") || !strings.HasSuffix(fileName, recordExt) {
			continue
		}
		name := strings.TrimSuffix(fileName, recordExt)
		ws, err := s.read(name)
		if err != nil {
			log.Warn().Err(err).Str("workspace", name).Msg("skipping unreadable workspace record")
			continue
		}
		result = append(result, ws)
	}

	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	log.Debug().Int(zerowrap.FieldCount, len(result)).Msg("workspaces listed")
	return result, nil
}

// DeleteWorkspace removes the record for name, leaving its last generation
// in the backup file.
func (s *WorkspaceStore) DeleteWorkspace(ctx context.Context, name string) error {
	if err := checkName(name); err != nil {
		return err
	}
	ctx, log := s.ctx(ctx, "DeleteWorkspace", name)

	err := s.withLock(ctx, name, func() error {
		current, err := s.read(name)
		if err != nil {
			return err
		}
		if _, err := copyFileAtomic(s.recordPath(name), s.backupPath(name)); err != nil {
			return fmt.Errorf("failed to back up workspace record: %w", err)
		}
		if err := os.Remove(s.recordPath(name)); err != nil {
			return fmt.Errorf("failed to remove workspace record: %w", err)
		}
		return s.txlog.Append(TxEntry{
			Timestamp:      s.now().UTC(),
			Operation:      TxDelete,
			WorkspaceID:    current.ID,
			WorkspaceName:  name,
			PreviousStatus: current.Status,
		})
	})
	if err != nil {
		return err
	}

	log.Info().Msg("workspace record deleted")
	return nil
}

// WorkspaceExists reports whether a record file exists for name.
func (s *WorkspaceStore) WorkspaceExists(_ context.Context, name string) bool {
	if checkName(name) != nil {
		return false
	}
	_, err := os.Stat(s.recordPath(name))
	return err == nil
}
