package filesystem

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync"
	"time"

	"github.com/nexuslab/nexus/internal/domain"
)

// TxOperation is the kind of write recorded in the transaction log.
type TxOperation string

const (
	TxCreate TxOperation = "create"
	TxUpdate TxOperation = "update"
	TxDelete TxOperation = "delete"
)

// TxEntry is one line of the append-only transaction log.
type TxEntry struct {
	Timestamp      time.Time              `json:"timestamp"`
	Operation      TxOperation            `json:"operation"`
	WorkspaceID    string                 `json:"workspaceId"`
	WorkspaceName  string                 `json:"workspaceName"`
	PreviousStatus domain.WorkspaceStatus `json:"previousStatus,omitempty"`
	NewStatus      domain.WorkspaceStatus `json:"newStatus,omitempty"`
}

// TransactionLog is a JSON-lines audit trail. Lines are only ever appended.
type TransactionLog struct {
	path string
	mu   sync.Mutex
}

// NewTransactionLog returns a log writing to path.
func NewTransactionLog(path string) *TransactionLog {
	return &TransactionLog{path: path}
}

// Append writes entry as a single line.
func (l *TransactionLog) Append(entry TxEntry) error {
	line, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to encode transaction entry: %w", err)
	}
	line = append(line, '\n')

	l.mu.Lock()
	defer l.mu.Unlock()

	f, err := os.OpenFile(l.path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0600)
	if err != nil {
		return fmt.Errorf("failed to open transaction log: %w", err)
	}
	if _, err := f.Write(line); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to append transaction entry: %w", err)
	}
	return f.Close()
}

// Entries reads the log, optionally filtered by workspace name. Lines that
// do not decode are skipped.
func (l *TransactionLog) Entries(workspaceName string) ([]TxEntry, error) {
	f, err := os.Open(l.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to open transaction log: %w", err)
	}
	defer f.Close()

	var entries []TxEntry
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var e TxEntry
		if err := json.Unmarshal(scanner.Bytes(), &e); err != nil {
			continue
		}
		if workspaceName != "" && e.WorkspaceName != workspaceName {
			continue
		}
		entries = append(entries, e)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read transaction log: %w", err)
	}
	return entries, nil
}
