// Package history remembers which program opened each file.
package history

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"go.trai.ch/ppd/internal/core/domain"
	"go.trai.ch/ppd/internal/core/ports"
	"go.trai.ch/zerr"
)

// Store implements ports.HistoryStore using a flat JSON object keyed by
// absolute file path.
type Store struct {
	path   string
	logger ports.Logger
	mu     sync.Mutex
}

// NewStore creates a Store backed by the file at path. logger may be nil.
func NewStore(path string, logger ports.Logger) *Store {
	return &Store{
		path:   filepath.Clean(path),
		logger: logger,
	}
}

// Load returns every entry. An absent, empty or malformed file yields an
// empty map; problems other than absence are logged.
func (s *Store) Load() map[string]string {
	//nolint:gosec // Path is cleaned and provided by trusted caller
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.warn(fmt.Sprintf("history unreadable, starting empty: %v", err))
		}
		return map[string]string{}
	}

	if len(data) == 0 {
		return map[string]string{}
	}

	var entries map[string]string
	if err := json.Unmarshal(data, &entries); err != nil {
		s.warn(fmt.Sprintf("history malformed, starting empty: %v", err))
		return map[string]string{}
	}
	if entries == nil {
		entries = map[string]string{}
	}
	return entries
}

// Save replaces the whole file.
func (s *Store) Save(entries map[string]string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(entries)
}

// Set records program for path, keeping every other entry.
func (s *Store) Set(path string, program domain.Program) error {
	if !program.IsKnown() {
		return zerr.With(domain.ErrNoProgram, "path", path)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entries := s.Load()
	entries[path] = program.String()
	return s.save(entries)
}

// save must be called with mu held. The file is replaced by rename so a
// crash never leaves it half written.
func (s *Store) save(entries map[string]string) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrHistoryMarshalFailed.Error())
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return s.writeErr(err)
	}

	tmp, err := os.CreateTemp(dir, ".history-*.json")
	if err != nil {
		return s.writeErr(err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return s.writeErr(err)
	}
	if err := tmp.Chmod(domain.FilePerm); err != nil {
		_ = tmp.Close()
		return s.writeErr(err)
	}
	if err := tmp.Close(); err != nil {
		return s.writeErr(err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return s.writeErr(err)
	}
	return nil
}

func (s *Store) writeErr(err error) error {
	return zerr.With(zerr.Wrap(err, domain.ErrHistoryWriteFailed.Error()), "path", s.path)
}

func (s *Store) warn(msg string) {
	if s.logger != nil {
		s.logger.Warn(msg)
	}
}
