// Package diag records generation failures for later inspection.
//
// A Recorder is an append-only diagnostic log scoped to one process
// lifetime. It is passed explicitly to the pipeline rather than accessed
// through a global, so tests and embedders control exactly where (and
// whether) failures are recorded. The core layout engine never touches it.
package diag

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Entry is one recorded failure.
type Entry struct {
	Time    time.Time      `json:"time"`
	Code    string         `json:"code,omitempty"`
	Message string         `json:"message"`
	Context map[string]any `json:"context,omitempty"`
}

// Recorder accepts failure entries. Implementations must be safe for
// concurrent use.
type Recorder interface {
	Record(ctx context.Context, e Entry) error
}

// =============================================================================
// FileRecorder
// =============================================================================

// FileRecorder appends entries as JSON lines to a single file created at
// construction time, one file per process lifetime.
type FileRecorder struct {
	mu   sync.Mutex
	path string
}

// NewFileRecorder creates a recorder appending to the file at path.
// The parent directory is created if needed.
func NewFileRecorder(path string) (*FileRecorder, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}
	return &FileRecorder{path: path}, nil
}

// Record appends e to the log file. A zero Time is filled with the current
// time.
func (r *FileRecorder) Record(ctx context.Context, e Entry) error {
	if e.Time.IsZero() {
		e.Time = time.Now()
	}

	line, err := json.Marshal(e)
	if err != nil {
		return err
	}
	line = append(line, '\n')

	r.mu.Lock()
	defer r.mu.Unlock()

	f, err := os.OpenFile(r.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = f.Write(line)
	return err
}

// =============================================================================
// NullRecorder
// =============================================================================

// NullRecorder discards all entries. Used when diagnostics are disabled.
type NullRecorder struct{}

// NewNullRecorder creates a recorder that drops everything.
func NewNullRecorder() *NullRecorder { return &NullRecorder{} }

// Record discards e.
func (*NullRecorder) Record(context.Context, Entry) error { return nil }
