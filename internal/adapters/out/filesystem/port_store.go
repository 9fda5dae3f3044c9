package filesystem

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/bnema/zerowrap"

	"github.com/nexuslab/nexus/internal/domain"
)

const (
	portTableFile = "ports.json"
	portLockName  = "ports"
)

// PortStore persists the host port table to <base>/ports.json. Writers are
// serialized by the same lock marker mechanism as workspace records, keyed
// on a fixed resource name.
type PortStore struct {
	path     string
	lockPath string
	lockOpts LockOptions
	log      zerowrap.Logger
	now      func() time.Time
}

// NewPortStore creates a port table store under baseDir.
func NewPortStore(baseDir string, lockOpts LockOptions, log zerowrap.Logger) (*PortStore, error) {
	baseDir = expandTilde(baseDir)
	lockDir := filepath.Join(baseDir, locksDir)
	if err := os.MkdirAll(lockDir, 0750); err != nil {
		return nil, fmt.Errorf("failed to create lock directory: %w", err)
	}

	return &PortStore{
		path:     filepath.Join(baseDir, portTableFile),
		lockPath: filepath.Join(lockDir, portLockName+".lock"),
		lockOpts: lockOpts.withDefaults(),
		log:      log,
		now:      time.Now,
	}, nil
}

// LoadPorts reads the table. A missing file is an empty table.
func (s *PortStore) LoadPorts(_ context.Context) (*domain.PortTable, error) {
	return s.load()
}

func (s *PortStore) load() (*domain.PortTable, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &domain.PortTable{}, nil
		}
		return nil, fmt.Errorf("failed to read port table: %w", err)
	}

	var table domain.PortTable
	if err := json.Unmarshal(data, &table); err != nil {
		return nil, domain.NewStateCorruptionError(s.path, "invalid JSON", err)
	}
	return &table, nil
}

// UpdatePorts applies fn to the table under the port lock. The table is
// written only when fn succeeds.
func (s *PortStore) UpdatePorts(ctx context.Context, fn func(table *domain.PortTable) error) error {
	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:   "adapter",
		zerowrap.FieldAdapter: "filesystem",
		zerowrap.FieldAction:  "UpdatePorts",
	})
	log := zerowrap.FromCtx(ctx)

	lock, err := acquireLock(ctx, s.lockPath, s.lockOpts)
	if err != nil {
		return err
	}
	defer func() {
		if relErr := lock.release(); relErr != nil {
			log.Warn().Err(relErr).Msg("failed to release port lock")
		}
	}()

	table, err := s.load()
	if err != nil {
		return err
	}
	if err := fn(table); err != nil {
		return err
	}

	table.UpdatedAt = s.now().UTC()
	data, err := json.MarshalIndent(table, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode port table: %w", err)
	}
	if err := writeFileAtomic(s.path, data, 0600); err != nil {
		return log.WrapErr(err, "failed to persist port table")
	}

	log.Debug().Int(zerowrap.FieldCount, len(table.Ports)).Msg("port table persisted")
	return nil
}
