// Package history persists scan trend entries under the project root.
package history

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/abdidvp/modkraft/internal/domain"
	"github.com/abdidvp/modkraft/internal/logger"
)

const (
	historyFile = ".modkraft/history/scans.json"

	// DefaultMaxEntries bounds the trend file; older entries are dropped first.
	DefaultMaxEntries = 200
)

// ErrCorrupt marks a history file that exists but does not decode.
var ErrCorrupt = errors.New("history file is corrupt")

// FileHistory implements domain.ScanHistory on a JSON file. Writes go to a
// temp file in the same directory and are renamed into place.
type FileHistory struct {
	maxEntries int
}

// Option configures a FileHistory.
type Option func(*FileHistory)

// WithMaxEntries caps the number of retained entries. n <= 0 disables the cap.
func WithMaxEntries(n int) Option {
	return func(h *FileHistory) { h.maxEntries = n }
}

func New(opts ...Option) *FileHistory {
	h := &FileHistory{maxEntries: DefaultMaxEntries}
	for _, o := range opts {
		o(h)
	}
	return h
}

// Path returns the history file location for a project.
func Path(projectPath string) string {
	return filepath.Join(projectPath, historyFile)
}

// Save appends entry. A corrupt file is moved aside and a fresh history
// is started so one bad write never blocks later scans.
func (h *FileHistory) Save(projectPath string, entry domain.ScanEntry) error {
	entries, err := h.Load(projectPath)
	if errors.Is(err, ErrCorrupt) {
		backup, mvErr := h.quarantine(projectPath)
		if mvErr != nil {
			return mvErr
		}
		logger.WithFields(map[string]any{"backup": backup}).Warn("history file was corrupt, starting fresh")
		entries = nil
	} else if err != nil {
		return err
	}

	entries = append(entries, entry)
	if h.maxEntries > 0 && len(entries) > h.maxEntries {
		entries = entries[len(entries)-h.maxEntries:]
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding history: %w", err)
	}

	return writeAtomic(Path(projectPath), data)
}

// Load returns the stored entries, nil when no history exists yet, or an
// error wrapping ErrCorrupt when the file does not decode.
func (h *FileHistory) Load(projectPath string) ([]domain.ScanEntry, error) {
	fp := Path(projectPath)

	data, err := os.ReadFile(fp)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading history: %w", err)
	}

	var entries []domain.ScanEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorrupt, fp, err)
	}

	return entries, nil
}

func (h *FileHistory) quarantine(projectPath string) (string, error) {
	fp := Path(projectPath)
	backup := fmt.Sprintf("%s.corrupt-%s", fp, time.Now().UTC().Format("20060102T150405.000000000"))
	if err := os.Rename(fp, backup); err != nil {
		return "", fmt.Errorf("moving corrupt history aside: %w", err)
	}
	return backup, nil
}

func writeAtomic(fp string, data []byte) error {
	dir := filepath.Dir(fp)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating history dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(fp)+".tmp-*")
	if err != nil {
		return fmt.Errorf("creating temp history: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing temp history: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp history: %w", err)
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("setting history mode: %w", err)
	}
	if err := os.Rename(tmpName, fp); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replacing history: %w", err)
	}
	return nil
}
